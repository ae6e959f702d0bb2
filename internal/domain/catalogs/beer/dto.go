package beer

import (
	"time"

	"taproom/internal/core/types"
	"taproom/internal/domain"
)

// CreateRequest is the payload of one beer in a create call.
type CreateRequest struct {
	Name           string      `json:"beerName"`
	Style          string      `json:"beerStyle"`
	UPC            string      `json:"upc"`
	QuantityOnHand int         `json:"quantityOnHand"`
	Price          types.Money `json:"price"`
}

// ToEntity maps the request onto a new Beer. Store-assigned fields stay zero.
func (r CreateRequest) ToEntity() Beer {
	return Beer{
		Name:           r.Name,
		Style:          r.Style,
		UPC:            r.UPC,
		QuantityOnHand: r.QuantityOnHand,
		Price:          r.Price,
	}
}

// UpdateRequest changes the fields that are present on the beer with ID.
type UpdateRequest struct {
	ID             int64        `json:"id"`
	Name           *string      `json:"beerName,omitempty"`
	Style          *string      `json:"beerStyle,omitempty"`
	UPC            *string      `json:"upc,omitempty"`
	QuantityOnHand *int         `json:"quantityOnHand,omitempty"`
	Price          *types.Money `json:"price,omitempty"`
}

// IsEmpty reports whether no field besides the id is set.
func (r UpdateRequest) IsEmpty() bool {
	return r.Name == nil && r.Style == nil && r.UPC == nil && r.QuantityOnHand == nil && r.Price == nil
}

// SearchRequest filters and paginates beers. Every field is optional.
type SearchRequest struct {
	Page              *int         `json:"page,omitempty"`
	Size              *int         `json:"size,omitempty"`
	IDs               []int64      `json:"ids,omitempty"`
	BeerName          *string      `json:"beerName,omitempty"`
	BeerNameContains  *string      `json:"beerNameContains,omitempty"`
	BeerStyle         *string      `json:"beerStyle,omitempty"`
	BeerStyleContains *string      `json:"beerStyleContains,omitempty"`
	UPC               *string      `json:"upc,omitempty"`
	QuantityOnHand    *int         `json:"quantityOnHand,omitempty"`
	MinPrice          *types.Money `json:"minPrice,omitempty"`
	MaxPrice          *types.Money `json:"maxPrice,omitempty"`
}

// ToFilter maps the request onto a repository filter, filling in the page defaults.
func (r SearchRequest) ToFilter(defaultSize int) Filter {
	return Filter{
		IDs:            r.IDs,
		Name:           r.BeerName,
		NameContains:   r.BeerNameContains,
		Style:          r.BeerStyle,
		StyleContains:  r.BeerStyleContains,
		UPC:            r.UPC,
		QuantityOnHand: r.QuantityOnHand,
		MinPrice:       r.MinPrice,
		MaxPrice:       r.MaxPrice,
		Page:           domain.PageOf(r.Page, r.Size, defaultSize),
	}
}

// Response is the public view of a stored beer.
type Response struct {
	ID             int64       `json:"id"`
	Name           string      `json:"beerName"`
	Style          string      `json:"beerStyle"`
	UPC            string      `json:"upc"`
	QuantityOnHand int         `json:"quantityOnHand"`
	Price          types.Money `json:"price"`
	Version        int         `json:"version"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

// FromEntity copies every field of b, server-assigned ones included.
func FromEntity(b Beer) Response {
	return Response{
		ID:             b.ID,
		Name:           b.Name,
		Style:          b.Style,
		UPC:            b.UPC,
		QuantityOnHand: b.QuantityOnHand,
		Price:          b.Price,
		Version:        b.Version,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
