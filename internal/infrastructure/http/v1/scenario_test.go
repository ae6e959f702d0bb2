//go:build integration

package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taproom/internal/domain/catalogs/beer"
	"taproom/internal/infrastructure/storage/postgres/pgtest"
	"taproom/pkg/logger"
)

func TestScenario_CreatePatchDelete(t *testing.T) {
	pool, txm := pgtest.Open(t, pgtest.Start(t))
	h := NewHandler(RouterConfig{
		Health:          pool,
		TxManager:       txm,
		Logger:          logger.NewNop(),
		DefaultPageSize: 1000,
	})

	w := request(h, http.MethodPost, "/api/v2/beer", `[
		{"beerName":"Galaxy Cat","beerStyle":"Pale Ale","upc":"012345678901","quantityOnHand":12,"price":12.99},
		{"beerName":"No Hammers","beerStyle":"Wheat","upc":"012345678902","quantityOnHand":24,"price":9.50},
		{"beerName":"Mango Bobs","beerStyle":"IPA","upc":"012345678903","quantityOnHand":36,"price":11}
	]`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created []beer.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Len(t, created, 3)
	for _, b := range created {
		assert.Positive(t, b.ID)
	}
	id := created[0].ID

	w = request(h, http.MethodPatch, "/api/v2/beer", fmt.Sprintf(`[{"id":%d,"quantityOnHand":500}]`, id))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	byID := fmt.Sprintf(`{"ids":[%d]}`, id)
	w = request(h, http.MethodPost, "/api/v2/beer/get", byID)
	require.Equal(t, http.StatusOK, w.Code)
	var got []beer.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, 500, got[0].QuantityOnHand)
	assert.Greater(t, got[0].Version, created[0].Version)

	w = request(h, http.MethodDelete, "/api/v2/beer", fmt.Sprintf(`[%d]`, id))
	require.Equal(t, http.StatusNoContent, w.Code)

	w = request(h, http.MethodPost, "/api/v2/beer/get", byID)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	w = request(h, http.MethodPost, "/api/v2/beer/count", ``)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":2}`, w.Body.String())

	w = request(h, http.MethodGet, "/health/ready", ``)
	assert.Equal(t, http.StatusOK, w.Code)
}
