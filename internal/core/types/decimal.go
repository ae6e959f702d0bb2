// Package types provides shared value types.
package types

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Prices travel as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Money is an exact decimal amount. Backed by NUMERIC in Postgres.
type Money = decimal.Decimal

// MustMoney parses s and panics on error. Use only for constants.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Zero returns the zero amount.
func Zero() Money {
	return decimal.Zero
}
