package beer

import (
	"regexp"

	"taproom/internal/core/types"
	v "taproom/internal/core/validation"
)

const (
	maxNameLength  = 50
	maxStyleLength = 30
	upcLength      = 12
	maxQuantity    = 1000
	maxPageSize    = 1000
	maxListItems   = 100
)

var (
	upcPattern = regexp.MustCompile(`^\d{12}$`)
	maxPrice   = types.MustMoney("1000000000")
)

var (
	nameRules  = v.All(v.NotBlank(), v.MaxLength(maxNameLength))
	styleRules = v.All(v.NotBlank(), v.MaxLength(maxStyleLength))
	upcRules   = v.All(v.ExactLength(upcLength), v.Pattern(upcPattern, "UPC must contain only numbers"))
	qtyRules   = v.Range(0, maxQuantity)
	priceRules = priceBetween("Price")
	pageRules  = v.Range(1, maxPageSize)
)

func priceBetween(label string) v.Validator[types.Money] {
	return v.All(
		v.DecimalGreaterThan(types.Zero(), label+" must be positive"),
		v.DecimalAtMost(maxPrice, label+" cannot exceed 1000000000"),
	)
}

// CreateRules validates a single create request.
var CreateRules = v.All(
	v.Field("beerName", func(r CreateRequest) string { return r.Name }, nameRules),
	v.Field("beerStyle", func(r CreateRequest) string { return r.Style }, styleRules),
	v.Field("upc", func(r CreateRequest) string { return r.UPC }, upcRules),
	v.Field("quantityOnHand", func(r CreateRequest) int { return r.QuantityOnHand }, qtyRules),
	v.Field("price", func(r CreateRequest) types.Money { return r.Price }, priceRules),
)

// UpdateRules validates a single update request. Absent fields are not checked.
var UpdateRules = v.All(
	v.Field("id", func(r UpdateRequest) int64 { return r.ID }, v.Min[int64](1)),
	v.Field("beerName", func(r UpdateRequest) *string { return r.Name }, v.Optional(nameRules)),
	v.Field("beerStyle", func(r UpdateRequest) *string { return r.Style }, v.Optional(styleRules)),
	v.Field("upc", func(r UpdateRequest) *string { return r.UPC }, v.Optional(upcRules)),
	v.Field("quantityOnHand", func(r UpdateRequest) *int { return r.QuantityOnHand }, v.Optional(qtyRules)),
	v.Field("price", func(r UpdateRequest) *types.Money { return r.Price }, v.Optional(priceRules)),
)

var (
	CreateListRules = v.Each(1, maxListItems, CreateRules)
	UpdateListRules = v.Each(1, maxListItems, UpdateRules)
)

// SearchRules validates a search request, including the price range.
var SearchRules = v.All(
	v.Field("page", func(r SearchRequest) *int { return r.Page }, v.Optional(pageRules)),
	v.Field("size", func(r SearchRequest) *int { return r.Size }, v.Optional(pageRules)),
	v.Field("ids", func(r SearchRequest) []int64 { return r.IDs }, optionalIDs),
	v.Field("beerName", func(r SearchRequest) *string { return r.BeerName }, v.Optional(nameRules)),
	v.Field("beerNameContains", func(r SearchRequest) *string { return r.BeerNameContains }, v.Optional(nameRules)),
	v.Field("beerStyle", func(r SearchRequest) *string { return r.BeerStyle }, v.Optional(styleRules)),
	v.Field("beerStyleContains", func(r SearchRequest) *string { return r.BeerStyleContains }, v.Optional(styleRules)),
	v.Field("upc", func(r SearchRequest) *string { return r.UPC }, v.Optional(upcRules)),
	v.Field("quantityOnHand", func(r SearchRequest) *int { return r.QuantityOnHand }, v.Optional(qtyRules)),
	v.Field("minPrice", func(r SearchRequest) *types.Money { return r.MinPrice }, v.Optional(priceBetween("Minimum price"))),
	v.Field("maxPrice", func(r SearchRequest) *types.Money { return r.MaxPrice }, v.Optional(priceBetween("Maximum price"))),
	v.Check("Maximum price must be greater than minimum price", func(r SearchRequest) bool {
		if r.MinPrice == nil || r.MaxPrice == nil {
			return true
		}
		return r.MaxPrice.GreaterThan(*r.MinPrice)
	}),
)

// optionalIDs checks an id list only when one was sent.
func optionalIDs(path string, ids []int64) v.Errors {
	if ids == nil {
		return nil
	}
	return v.IDs(path, ids)
}
