package model

import "github.com/shopspring/decimal"

// TaxRate is the flat sales tax applied to every cart.
var TaxRate = decimal.RequireFromString("0.11")

func init() {
	// keep money as JSON numbers in the stored layout
	decimal.MarshalJSONWithoutQuotes = true
}
