// Package beer implements the beer resource: entity, request and response
// types, validation rules and the service.
package beer

import (
	"taproom/internal/core/entity"
	"taproom/internal/core/types"
	"taproom/internal/domain"
)

// Beer is a product on tap or in stock.
type Beer struct {
	entity.BaseEntity

	Name           string      `db:"beer_name"`
	Style          string      `db:"beer_style"`
	UPC            string      `db:"upc"`
	QuantityOnHand int         `db:"quantity_on_hand"`
	Price          types.Money `db:"price"`
}

// Filter selects a page of beers. Nil fields and an empty IDs list match
// everything; Page is ignored by Count.
type Filter struct {
	IDs            []int64
	Name           *string
	NameContains   *string
	Style          *string
	StyleContains  *string
	UPC            *string
	QuantityOnHand *int
	MinPrice       *types.Money
	MaxPrice       *types.Money
	Page           domain.Page
}
