package model

// DateLayout is the YYYY-MM-DD format used for ValidUntil.
const DateLayout = "2006-01-02"

type Discount struct {
	ID          int64  `json:"id"`
	Code        string `json:"code" validate:"notblank"`
	Description string `json:"description" validate:"notblank"`
	Percentage  int    `json:"percentage" validate:"min=0,max=100"`
	Active      bool   `json:"active"`
	ValidUntil  string `json:"validUntil" validate:"required,datetime=2006-01-02"`
}

type FeeType string

const (
	FeeFixed      FeeType = "fixed"
	FeePercentage FeeType = "percentage"
)

type Fee struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name" validate:"notblank"`
	Description string  `json:"description" validate:"notblank"`
	Amount      int64   `json:"amount" validate:"min=0"`
	Type        FeeType `json:"type" validate:"oneof=fixed percentage"`
	Active      bool    `json:"active"`
}

func DefaultDiscounts() []Discount {
	return []Discount{{
		ID:          1,
		Code:        "WELCOME10",
		Description: "10% off for new customers",
		Percentage:  10,
		Active:      true,
		ValidUntil:  "2024-12-31",
	}}
}

func DefaultFees() []Fee {
	return []Fee{{
		ID:          1,
		Name:        "Admin Fee",
		Description: "Administrative processing fee",
		Amount:      5000,
		Type:        FeeFixed,
		Active:      true,
	}}
}
