package customer

import "taproom/internal/domain"

// Repository stores customers.
type Repository interface {
	domain.ResourceRepository[Customer, UpdateRequest, Filter]
}
