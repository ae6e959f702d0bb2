package customer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"taproom/internal/core/validation"
)

func strPtr(s string) *string { return &s }

func TestCreateRules(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"plain", "Jane Doe", nil},
		{"hyphen and period", "Mary-Jane St. Claire", nil},
		{"hangul", "김 민수", nil},
		{"accented", "Zoë Ångström", nil},
		{"blank", "   ", []string{
			"customerName: must not be blank",
		}},
		{"digits", "R2D2", []string{"customerName: Customer name can only contain letters, spaces, hyphens, and periods"}},
		{"too long", strings.Repeat("a", 101), []string{"customerName: must have at most 100 characters"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validation.Validate(CreateRequest{Name: tt.in}, CreateRules)
			if tt.want == nil {
				assert.True(t, errs.Valid(), errs.Messages())
				return
			}
			assert.Equal(t, tt.want, errs.Messages())
		})
	}
}

func TestCreateRules_Empty(t *testing.T) {
	errs := validation.Validate(CreateRequest{}, CreateRules)

	assert.Equal(t, []string{
		"customerName: must not be blank",
		"customerName: Customer name can only contain letters, spaces, hyphens, and periods",
	}, errs.Messages())
}

func TestUpdateListRules(t *testing.T) {
	assert.True(t, validation.Validate([]UpdateRequest{{ID: 1}, {ID: 2, Name: strPtr("Bob")}}, UpdateListRules).Valid())

	errs := validation.Validate([]UpdateRequest{{ID: 0, Name: strPtr("B0b")}}, UpdateListRules)
	assert.Equal(t, []string{
		"[0].id: must be at least 1",
		"[0].customerName: Customer name can only contain letters, spaces, hyphens, and periods",
	}, errs.Messages())

	assert.False(t, validation.Validate([]UpdateRequest{}, UpdateListRules).Valid())
}

func TestSearchRules(t *testing.T) {
	assert.True(t, validation.Validate(SearchRequest{}, SearchRules).Valid())
	assert.True(t, validation.Validate(SearchRequest{CustomerNameContains: strPtr("an 42")}, SearchRules).Valid())

	errs := validation.Validate(SearchRequest{
		Page:         new(int),
		IDs:          []int64{},
		CustomerName: strPtr("x1"),
	}, SearchRules)
	assert.Equal(t, []string{
		"page: must be at least 1",
		"ids: must have at least 1 items",
		"customerName: Customer name can only contain letters, spaces, hyphens, and periods",
	}, errs.Messages())
}
