package model

// Product is a catalog entry. ID is assigned by the API and is zero before creation.
type Product struct {
	ID                 int
	Title              string
	Description        string
	Price              float64
	DiscountPercentage float64
	Rating             float64
	Stock              int
	Brand              string
	Category           string
	Thumbnail          string
	Images             []string
}

// Persisted reports whether the product has a server-assigned identifier.
func (p Product) Persisted() bool {
	return p.ID > 0
}
