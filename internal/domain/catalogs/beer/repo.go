package beer

import "taproom/internal/domain"

// Repository stores beers.
type Repository interface {
	domain.ResourceRepository[Beer, UpdateRequest, Filter]
}
