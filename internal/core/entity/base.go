// Package entity holds the persistence fields shared by every stored resource.
package entity

import "time"

// BaseEntity carries the store-assigned fields. Callers never set them:
// the database fills id, version and both timestamps on insert and bumps
// version and updated_at on every patch.
type BaseEntity struct {
	ID        int64     `db:"id" json:"id"`
	Version   int       `db:"version" json:"version"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
