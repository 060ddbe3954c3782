package model

import "github.com/shopspring/decimal"

// CartLine is a snapshot of a product taken when it was added, plus the
// quantity. It serialises flat: product fields and quantity in one object.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// LineTotal is price × quantity.
func (l CartLine) LineTotal() int64 {
	return l.Price * int64(l.Quantity)
}

type CartTotals struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"itemCount"`
}

func ComputeTotals(lines []CartLine) CartTotals {
	var subtotal int64
	count := 0
	for _, l := range lines {
		subtotal += l.LineTotal()
		count += l.Quantity
	}

	sub := decimal.NewFromInt(subtotal)
	tax := sub.Mul(TaxRate)
	return CartTotals{
		Subtotal:  sub,
		Tax:       tax,
		Total:     sub.Add(tax),
		ItemCount: count,
	}
}
