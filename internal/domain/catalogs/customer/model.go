// Package customer implements the customer resource.
package customer

import (
	"taproom/internal/core/entity"
	"taproom/internal/domain"
)

// Customer is a buyer of beer.
type Customer struct {
	entity.BaseEntity

	Name string `db:"customer_name"`
}

// Filter selects a page of customers.
type Filter struct {
	IDs          []int64
	Name         *string
	NameContains *string
	Page         domain.Page
}
