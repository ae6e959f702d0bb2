package customer

import (
	"time"

	"taproom/internal/domain"
)

type CreateRequest struct {
	Name string `json:"customerName"`
}

func (r CreateRequest) ToEntity() Customer {
	return Customer{Name: r.Name}
}

// UpdateRequest renames the customer with ID when Name is present.
type UpdateRequest struct {
	ID   int64   `json:"id"`
	Name *string `json:"customerName,omitempty"`
}

func (r UpdateRequest) IsEmpty() bool {
	return r.Name == nil
}

type SearchRequest struct {
	Page                 *int    `json:"page,omitempty"`
	Size                 *int    `json:"size,omitempty"`
	IDs                  []int64 `json:"ids,omitempty"`
	CustomerName         *string `json:"customerName,omitempty"`
	CustomerNameContains *string `json:"customerNameContains,omitempty"`
}

func (r SearchRequest) ToFilter(defaultSize int) Filter {
	return Filter{
		IDs:          r.IDs,
		Name:         r.CustomerName,
		NameContains: r.CustomerNameContains,
		Page:         domain.PageOf(r.Page, r.Size, defaultSize),
	}
}

type Response struct {
	ID        int64     `json:"id"`
	Name      string    `json:"customerName"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromEntity(c Customer) Response {
	return Response{
		ID:        c.ID,
		Name:      c.Name,
		Version:   c.Version,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
