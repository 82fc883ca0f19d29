package product

// CreateInput holds every product field except the identifier.
type CreateInput struct {
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

// UpdateInput is a partial update: nil fields are left unchanged server-side.
type UpdateInput struct {
	Title              *string
	Description        *string
	Price              *float64
	DiscountPercentage *float64
	Rating             *float64
	Stock              *int
	Brand              *string
	Category           *string
	Thumbnail          *string
	Images             *[]string
}

// Empty reports whether no field is set.
func (in UpdateInput) Empty() bool {
	return in.Title == nil && in.Description == nil && in.Price == nil &&
		in.DiscountPercentage == nil && in.Rating == nil && in.Stock == nil &&
		in.Brand == nil && in.Category == nil && in.Thumbnail == nil && in.Images == nil
}
