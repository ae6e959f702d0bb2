package handlers

import (
	"taproom/internal/domain/catalogs/beer"
)

// BeerHandler serves /api/v2/beer.
type BeerHandler = ResourceHandler[beer.CreateRequest, beer.UpdateRequest, beer.SearchRequest, beer.Response]

// NewBeerHandler creates a new beer handler.
func NewBeerHandler(base *BaseHandler, service *beer.Service, tagged bool) *BeerHandler {
	return NewResourceHandler(base, ResourceHandlerConfig[beer.CreateRequest, beer.UpdateRequest, beer.SearchRequest, beer.Response]{
		Service:       service,
		CreateRules:   beer.CreateListRules,
		UpdateRules:   beer.UpdateListRules,
		SearchRules:   beer.SearchRules,
		TaggedResults: tagged,
	})
}
