package customer

import (
	"regexp"

	v "taproom/internal/core/validation"
)

const maxNameLength = 100

// namePattern accepts letters of any script, whitespace, hyphens and periods.
var namePattern = regexp.MustCompile(`^[\p{L}\s\-.]+$`)

var (
	nameRules = v.All(
		v.NotBlank(),
		v.MaxLength(maxNameLength),
		v.Pattern(namePattern, "Customer name can only contain letters, spaces, hyphens, and periods"),
	)
	containsRules = v.All(v.NotBlank(), v.MaxLength(maxNameLength))
	pageRules     = v.Range(1, 1000)
)

var CreateRules = v.All(
	v.Field("customerName", func(r CreateRequest) string { return r.Name }, nameRules),
)

var UpdateRules = v.All(
	v.Field("id", func(r UpdateRequest) int64 { return r.ID }, v.Min[int64](1)),
	v.Field("customerName", func(r UpdateRequest) *string { return r.Name }, v.Optional(nameRules)),
)

var (
	CreateListRules = v.Each(1, 100, CreateRules)
	UpdateListRules = v.Each(1, 100, UpdateRules)
)

var SearchRules = v.All(
	v.Field("page", func(r SearchRequest) *int { return r.Page }, v.Optional(pageRules)),
	v.Field("size", func(r SearchRequest) *int { return r.Size }, v.Optional(pageRules)),
	v.Field("ids", func(r SearchRequest) []int64 { return r.IDs }, func(path string, ids []int64) v.Errors {
		if ids == nil {
			return nil
		}
		return v.IDs(path, ids)
	}),
	v.Field("customerName", func(r SearchRequest) *string { return r.CustomerName }, v.Optional(nameRules)),
	v.Field("customerNameContains", func(r SearchRequest) *string { return r.CustomerNameContains }, v.Optional(containsRules)),
)
