package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
	PaymentQRIS PaymentMethod = "qris"
)

type TransactionItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

// Transaction is a completed sale. Records written by checkout also carry the
// payment details; older records may only have id, items, total and date.
type Transaction struct {
	ID            string            `json:"id"`
	Items         []TransactionItem `json:"items"`
	Total         decimal.Decimal   `json:"total"`
	Date          time.Time         `json:"date"`
	PaymentMethod PaymentMethod     `json:"paymentMethod,omitempty"`
	CashAmount    decimal.Decimal   `json:"cashAmount"`
	Change        decimal.Decimal   `json:"change"`
	Subtotal      decimal.Decimal   `json:"subtotal"`
	Tax           decimal.Decimal   `json:"tax"`
}

// ItemCount is the number of units sold.
func (t Transaction) ItemCount() int {
	n := 0
	for _, it := range t.Items {
		n += it.Quantity
	}
	return n
}
