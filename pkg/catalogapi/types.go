package catalogapi

// Product is the catalog API product object.
type Product struct {
	ID                 int      `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Price              float64  `json:"price"`
	DiscountPercentage float64  `json:"discountPercentage"`
	Rating             float64  `json:"rating"`
	Stock              int      `json:"stock"`
	Brand              string   `json:"brand"`
	Category           string   `json:"category"`
	Thumbnail          string   `json:"thumbnail"`
	Images             []string `json:"images"`
}

// ProductList is the body of GET /products.
type ProductList struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}

// AddProductRequest is the body for POST /products/add. It carries no id.
type AddProductRequest struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Price              float64  `json:"price"`
	DiscountPercentage float64  `json:"discountPercentage"`
	Rating             float64  `json:"rating"`
	Stock              int      `json:"stock"`
	Brand              string   `json:"brand"`
	Category           string   `json:"category"`
	Thumbnail          string   `json:"thumbnail,omitempty"`
	Images             []string `json:"images,omitempty"`
}

// UpdateProductRequest is the body for PUT /products/{id}. Nil fields are not sent.
type UpdateProductRequest struct {
	Title              *string   `json:"title,omitempty"`
	Description        *string   `json:"description,omitempty"`
	Price              *float64  `json:"price,omitempty"`
	DiscountPercentage *float64  `json:"discountPercentage,omitempty"`
	Rating             *float64  `json:"rating,omitempty"`
	Stock              *int      `json:"stock,omitempty"`
	Brand              *string   `json:"brand,omitempty"`
	Category           *string   `json:"category,omitempty"`
	Thumbnail          *string   `json:"thumbnail,omitempty"`
	Images             *[]string `json:"images,omitempty"`
}

// LoginRequest is the body for the login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the subset of the login response the console reads.
type LoginResponse struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	// Token is the field name used by older API revisions.
	Token string `json:"token"`
}

// AddUserRequest is the body for POST /users/add.
type AddUserRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// User is the catalog API user object.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
