package model

import "strings"

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name" validate:"notblank"`
	SKU         string   `json:"sku" validate:"notblank"`
	Description string   `json:"description" validate:"notblank"`
	Price       int64    `json:"price" validate:"min=0"`
	Stock       int      `json:"stock" validate:"min=0"`
	Category    string   `json:"category"`
	Image       string   `json:"image" validate:"notblank"`
	Gallery     []string `json:"gallery,omitempty"`
}

// InStock reports whether the product can be added to a cart at all.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// Images splits the primary image field, which may hold several
// comma-separated references.
func (p Product) Images() []string {
	var out []string
	for _, ref := range strings.Split(p.Image, ",") {
		if ref = strings.TrimSpace(ref); ref != "" {
			out = append(out, ref)
		}
	}
	return out
}
