package catalog_repo

import (
	"context"
	"iter"

	"github.com/Masterminds/squirrel"

	"taproom/internal/domain/catalogs/beer"
	"taproom/internal/infrastructure/storage/postgres"
)

const beerTable = "beer"

var _ beer.Repository = (*BeerRepo)(nil)

// BeerRepo implements beer.Repository.
type BeerRepo struct {
	*BaseCatalogRepo[beer.Beer]
}

func NewBeerRepo(txm postgres.Transactor) *BeerRepo {
	return &BeerRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[beer.Beer](txm, beerTable, "beer"),
	}
}

// Patch applies the present fields of every update in one transaction.
// Updates without fields are skipped.
func (r *BeerRepo) Patch(ctx context.Context, updates []beer.UpdateRequest) error {
	stmts := make([]squirrel.Sqlizer, 0, len(updates))
	for _, u := range updates {
		if stmt, ok := r.buildPatch(u); ok {
			stmts = append(stmts, stmt)
		}
	}
	return r.execPatches(ctx, stmts)
}

func (r *BeerRepo) buildPatch(u beer.UpdateRequest) (squirrel.UpdateBuilder, bool) {
	if u.IsEmpty() {
		return squirrel.UpdateBuilder{}, false
	}

	set := make(map[string]any, 5)
	if u.Name != nil {
		set["beer_name"] = *u.Name
	}
	if u.Style != nil {
		set["beer_style"] = *u.Style
	}
	if u.UPC != nil {
		set["upc"] = *u.UPC
	}
	if u.QuantityOnHand != nil {
		set["quantity_on_hand"] = *u.QuantityOnHand
	}
	if u.Price != nil {
		set["price"] = *u.Price
	}
	return r.patch(u.ID, set), true
}

func (r *BeerRepo) Query(ctx context.Context, f beer.Filter) iter.Seq2[beer.Beer, error] {
	return r.query(ctx, beerConditions(f), f.Page)
}

func (r *BeerRepo) Count(ctx context.Context, f beer.Filter) (int64, error) {
	return r.count(ctx, beerConditions(f))
}

// beerConditions turns every present filter into a condition; they are ANDed.
func beerConditions(f beer.Filter) []squirrel.Sqlizer {
	var where []squirrel.Sqlizer
	where = append(where, idIn(f.IDs)...)
	where = append(where, eq("beer_name", f.Name)...)
	where = append(where, containsAll("beer_name", f.NameContains)...)
	where = append(where, eq("beer_style", f.Style)...)
	where = append(where, containsAll("beer_style", f.StyleContains)...)
	where = append(where, eq("upc", f.UPC)...)
	where = append(where, eq("quantity_on_hand", f.QuantityOnHand)...)
	if f.MinPrice != nil {
		where = append(where, squirrel.GtOrEq{"price": *f.MinPrice})
	}
	if f.MaxPrice != nil {
		where = append(where, squirrel.LtOrEq{"price": *f.MaxPrice})
	}
	return where
}
