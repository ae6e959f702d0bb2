package handlers

import (
	"taproom/internal/domain/catalogs/customer"
)

// CustomerHandler serves /api/v2/customer.
type CustomerHandler = ResourceHandler[customer.CreateRequest, customer.UpdateRequest, customer.SearchRequest, customer.Response]

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(base *BaseHandler, service *customer.Service, tagged bool) *CustomerHandler {
	return NewResourceHandler(base, ResourceHandlerConfig[customer.CreateRequest, customer.UpdateRequest, customer.SearchRequest, customer.Response]{
		Service:       service,
		CreateRules:   customer.CreateListRules,
		UpdateRules:   customer.UpdateListRules,
		SearchRules:   customer.SearchRules,
		TaggedResults: tagged,
	})
}
