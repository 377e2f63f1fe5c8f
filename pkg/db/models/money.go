package models

import "github.com/shopspring/decimal"

// Monetary fields serialize as plain JSON numbers, matching what the
// frontend expects for prices and totals.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
