//go:build integration

package catalog_repo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taproom/internal/core/apperror"
	"taproom/internal/core/stream"
	"taproom/internal/core/types"
	"taproom/internal/domain/catalogs/beer"
	"taproom/internal/domain/catalogs/customer"
	"taproom/internal/infrastructure/storage/postgres/catalog_repo"
	"taproom/internal/infrastructure/storage/postgres/pgtest"
)

func ptr[T any](v T) *T { return &v }

func newBeer(name, style string, qty int, price string) beer.CreateRequest {
	return beer.CreateRequest{
		Name:           name,
		Style:          style,
		UPC:            "012345678901",
		QuantityOnHand: qty,
		Price:          types.MustMoney(price),
	}
}

func TestIntegration(t *testing.T) {
	pool, txm := pgtest.Open(t, pgtest.Start(t))

	beers := beer.NewService(catalog_repo.NewBeerRepo(txm), 1000)
	customers := customer.NewService(catalog_repo.NewCustomerRepo(txm), 1000)
	ctx := context.Background()

	t.Run("create assigns unique ids", func(t *testing.T) {
		reqs := make([]beer.CreateRequest, 10)
		for i := range reqs {
			reqs[i] = newBeer(fmt.Sprintf("Batch %d", i), "Lager", i, "3.50")
		}

		out, err := beers.Create(ctx, reqs)
		require.NoError(t, err)
		require.Len(t, out, len(reqs))

		seen := map[int64]bool{}
		for i, b := range out {
			assert.Positive(t, b.ID)
			assert.False(t, seen[b.ID], "duplicate id %d", b.ID)
			seen[b.ID] = true
			assert.Equal(t, reqs[i].Name, b.Name)
			assert.Zero(t, b.Version)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		req := newBeer("Round Trip", "Porter", 12, "7.25")
		out, err := beers.Create(ctx, []beer.CreateRequest{req})
		require.NoError(t, err)

		got, err := stream.Collect(beers.List(ctx, beer.SearchRequest{IDs: []int64{out[0].ID}}))
		require.NoError(t, err)
		require.Len(t, got, 1)

		b := got[0]
		assert.Equal(t, req.Name, b.Name)
		assert.Equal(t, req.Style, b.Style)
		assert.Equal(t, req.UPC, b.UPC)
		assert.Equal(t, req.QuantityOnHand, b.QuantityOnHand)
		assert.True(t, req.Price.Equal(b.Price), "price %s", b.Price)
		assert.False(t, b.CreatedAt.IsZero())
		assert.False(t, b.UpdatedAt.IsZero())
	})

	t.Run("patch bumps version every time", func(t *testing.T) {
		out, err := beers.Create(ctx, []beer.CreateRequest{newBeer("Patched", "Stout", 1, "4")})
		require.NoError(t, err)
		id := out[0].ID

		for want := 1; want <= 2; want++ {
			require.NoError(t, beers.Update(ctx, []beer.UpdateRequest{{ID: id, QuantityOnHand: ptr(500)}}))

			got, err := stream.Collect(beers.List(ctx, beer.SearchRequest{IDs: []int64{id}}))
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, 500, got[0].QuantityOnHand)
			assert.Equal(t, want, got[0].Version)
			assert.Equal(t, "Patched", got[0].Name)
		}
	})

	t.Run("patch batch is atomic", func(t *testing.T) {
		out, err := beers.Create(ctx, []beer.CreateRequest{newBeer("Atomic", "Stout", 1, "4")})
		require.NoError(t, err)
		id := out[0].ID

		// The second statement overflows beer_name and fails the batch.
		err = beers.Update(ctx, []beer.UpdateRequest{
			{ID: id, QuantityOnHand: ptr(9)},
			{ID: id, Name: ptr(fmt.Sprintf("%051d", 0))},
		})
		require.Error(t, err)
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeDatabase, appErr.Code)

		got, err := stream.Collect(beers.List(ctx, beer.SearchRequest{IDs: []int64{id}}))
		require.NoError(t, err)
		assert.Equal(t, 1, got[0].QuantityOnHand)
		assert.Zero(t, got[0].Version)
	})

	t.Run("delete then fetch is empty", func(t *testing.T) {
		out, err := beers.Create(ctx, []beer.CreateRequest{newBeer("Doomed", "Ale", 1, "2")})
		require.NoError(t, err)
		id := out[0].ID

		require.NoError(t, beers.Delete(ctx, []int64{id}))
		require.NoError(t, beers.Delete(ctx, []int64{id}))

		got, err := stream.Collect(beers.List(ctx, beer.SearchRequest{IDs: []int64{id}}))
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("pagination", func(t *testing.T) {
		const total = 25
		reqs := make([]customer.CreateRequest, total)
		for i := range reqs {
			reqs[i] = customer.CreateRequest{Name: "Paged Guest " + string(rune('A'+i))}
		}
		_, err := customers.Create(ctx, reqs)
		require.NoError(t, err)

		n, err := customers.Count(ctx, customer.SearchRequest{CustomerNameContains: ptr("Paged")})
		require.NoError(t, err)
		require.Equal(t, int64(total), n)

		for _, size := range []int{1, 7, 10, 25, 30} {
			for page := 1; page <= 5; page++ {
				got, err := stream.Collect(customers.List(ctx, customer.SearchRequest{
					CustomerNameContains: ptr("Paged"),
					Page:                 ptr(page),
					Size:                 ptr(size),
				}))
				require.NoError(t, err)

				want := max(0, min(size, total-(page-1)*size))
				assert.Len(t, got, want, "page %d size %d", page, size)
			}
		}
	})

	t.Run("contains matches every word", func(t *testing.T) {
		_, err := beers.Create(ctx, []beer.CreateRequest{
			newBeer("Hazy Juicy IPA", "IPA", 1, "5"),
			newBeer("Juicy Hazy Pale", "Pale Ale", 1, "5"),
			newBeer("Juicy Lucy", "IPA", 1, "5"),
		})
		require.NoError(t, err)

		got, err := stream.Collect(beers.List(ctx, beer.SearchRequest{BeerNameContains: ptr("Hazy Juicy")}))
		require.NoError(t, err)

		names := make([]string, len(got))
		for i, b := range got {
			names[i] = b.Name
		}
		assert.ElementsMatch(t, []string{"Hazy Juicy IPA", "Juicy Hazy Pale"}, names)
	})

	t.Run("price range", func(t *testing.T) {
		_, err := beers.Create(ctx, []beer.CreateRequest{
			newBeer("Priced Low", "Sour", 1, "1.00"),
			newBeer("Priced Mid", "Sour", 1, "10.00"),
			newBeer("Priced High", "Sour", 1, "100.00"),
		})
		require.NoError(t, err)

		lo, hi := types.MustMoney("5"), types.MustMoney("50")
		got, err := stream.Collect(beers.List(ctx, beer.SearchRequest{
			BeerNameContains: ptr("Priced"),
			MinPrice:         &lo,
			MaxPrice:         &hi,
		}))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Priced Mid", got[0].Name)
	})

	t.Run("early break releases the connection", func(t *testing.T) {
		for b, err := range beers.List(ctx, beer.SearchRequest{}) {
			require.NoError(t, err)
			require.Positive(t, b.ID)
			break
		}

		assert.Eventually(t, func() bool {
			return pool.Stat().AcquiredConns() == 0
		}, time.Second, 10*time.Millisecond)

		n, err := beers.Count(ctx, beer.SearchRequest{})
		require.NoError(t, err)
		assert.Positive(t, n)
	})

	t.Run("nested calls share the outer transaction", func(t *testing.T) {
		rollback := fmt.Errorf("undo")
		err := txm.RunInTransaction(ctx, func(ctx context.Context) error {
			if _, err := customers.Create(ctx, []customer.CreateRequest{{Name: "Ghost"}}); err != nil {
				return err
			}
			return rollback
		})
		require.ErrorIs(t, err, rollback)

		n, err := customers.Count(ctx, customer.SearchRequest{CustomerName: ptr("Ghost")})
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("read only rejects writes", func(t *testing.T) {
		err := txm.ReadOnly(ctx, func(ctx context.Context) error {
			_, err := customers.Create(ctx, []customer.CreateRequest{{Name: "Intruder"}})
			return err
		})

		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok, "%v", err)
		assert.Equal(t, apperror.CodeDatabase, appErr.Code)
	})
}
