package model

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"notblank"`
}

// DefaultCategories is written the first time categories are listed on an
// empty store.
func DefaultCategories() []Category {
	return []Category{
		{ID: 1, Name: "Beverages"},
		{ID: 2, Name: "Food"},
		{ID: 3, Name: "Desserts"},
	}
}
