package postgres

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"taproom/internal/core/entity"
)

type mockRow struct {
	entity.BaseEntity
	Name   string          `db:"name"`
	Price  decimal.Decimal `db:"price"`
	Ignore string          `db:"-"`
	NoTag  string
}

func TestExtractDBColumns_Embedded(t *testing.T) {
	cols := ExtractDBColumns[mockRow]()

	assert.Equal(t, []string{"id", "version", "created_at", "updated_at", "name", "price"}, cols)
}

func TestExtractDBColumns_Pointer(t *testing.T) {
	assert.Equal(t, ExtractDBColumns[mockRow](), ExtractDBColumns[*mockRow]())
}

func TestStructToMap(t *testing.T) {
	now := time.Now().UTC()
	row := mockRow{
		BaseEntity: entity.BaseEntity{ID: 7, Version: 2, CreatedAt: now, UpdatedAt: now},
		Name:       "Galaxy Cat",
		Price:      decimal.RequireFromString("12.99"),
		Ignore:     "x",
	}

	m := StructToMap(row)
	assert.Equal(t, int64(7), m["id"])
	assert.Equal(t, 2, m["version"])
	assert.Equal(t, now, m["created_at"])
	assert.Equal(t, "Galaxy Cat", m["name"])
	assert.Len(t, m, 6)

	m = StructToMap(&row, "id", "version", "created_at", "updated_at")
	assert.Equal(t, map[string]any{"name": "Galaxy Cat", "price": row.Price}, m)
}

func TestStructToMap_NotAStruct(t *testing.T) {
	assert.Nil(t, StructToMap(42))
}

func TestStructValues(t *testing.T) {
	row := mockRow{Name: "Mango Bobs"}

	vals := StructValues(row, []string{"name", "missing"})
	assert.Equal(t, []any{"Mango Bobs", nil}, vals)
}
