package catalog_repo

import (
	"context"
	"iter"

	"github.com/Masterminds/squirrel"

	"taproom/internal/domain/catalogs/customer"
	"taproom/internal/infrastructure/storage/postgres"
)

const customerTable = "customer"

var _ customer.Repository = (*CustomerRepo)(nil)

// CustomerRepo implements customer.Repository.
type CustomerRepo struct {
	*BaseCatalogRepo[customer.Customer]
}

func NewCustomerRepo(txm postgres.Transactor) *CustomerRepo {
	return &CustomerRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[customer.Customer](txm, customerTable, "customer"),
	}
}

func (r *CustomerRepo) Patch(ctx context.Context, updates []customer.UpdateRequest) error {
	stmts := make([]squirrel.Sqlizer, 0, len(updates))
	for _, u := range updates {
		if u.IsEmpty() {
			continue
		}
		stmts = append(stmts, r.patch(u.ID, map[string]any{"customer_name": *u.Name}))
	}
	return r.execPatches(ctx, stmts)
}

func (r *CustomerRepo) Query(ctx context.Context, f customer.Filter) iter.Seq2[customer.Customer, error] {
	return r.query(ctx, customerConditions(f), f.Page)
}

func (r *CustomerRepo) Count(ctx context.Context, f customer.Filter) (int64, error) {
	return r.count(ctx, customerConditions(f))
}

func customerConditions(f customer.Filter) []squirrel.Sqlizer {
	var where []squirrel.Sqlizer
	where = append(where, idIn(f.IDs)...)
	where = append(where, eq("customer_name", f.Name)...)
	where = append(where, containsAll("customer_name", f.NameContains)...)
	return where
}
