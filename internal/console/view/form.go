package view

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"catalog-console/internal/model"
	"catalog-console/internal/product"
)

// FieldErrors maps a form field name to its message.
type FieldErrors map[string]string

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

func fieldErrors(err error) FieldErrors {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"form": err.Error()}
	}
	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = messageFor(fe.Tag())
	}
	return out
}

func messageFor(tag string) string {
	switch tag {
	case "required":
		return "Required"
	case "numeric":
		return "Must be a number"
	case "number":
		return "Must be a whole number"
	case "email":
		return "Must be a valid e-mail"
	default:
		return "Invalid value"
	}
}

// ProductForm holds the raw registration form values.
type ProductForm struct {
	Title              string `form:"title" validate:"required"`
	Description        string `form:"description" validate:"required"`
	Price              string `form:"price" validate:"required,numeric"`
	DiscountPercentage string `form:"discountPercentage" validate:"required,numeric"`
	Rating             string `form:"rating" validate:"required,numeric"`
	Stock              string `form:"stock" validate:"required,number"`
	Brand              string `form:"brand" validate:"required"`
	Category           string `form:"category" validate:"required"`
	Thumbnail          string `form:"thumbnail"`
	// Images is a comma-separated list of URLs.
	Images string `form:"images"`
}

// ProductFields is a validated ProductForm.
type ProductFields struct {
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

// Normalize trims surrounding whitespace from every value.
func (f ProductForm) Normalize() ProductForm {
	return ProductForm{
		Title:              strings.TrimSpace(f.Title),
		Description:        strings.TrimSpace(f.Description),
		Price:              strings.TrimSpace(f.Price),
		DiscountPercentage: strings.TrimSpace(f.DiscountPercentage),
		Rating:             strings.TrimSpace(f.Rating),
		Stock:              strings.TrimSpace(f.Stock),
		Brand:              strings.TrimSpace(f.Brand),
		Category:           strings.TrimSpace(f.Category),
		Thumbnail:          strings.TrimSpace(f.Thumbnail),
		Images:             strings.TrimSpace(f.Images),
	}
}

// Validate checks required and numeric fields and coerces the values.
func (f ProductForm) Validate() (ProductFields, FieldErrors) {
	f = f.Normalize()
	if err := validate.Struct(f); err != nil {
		return ProductFields{}, fieldErrors(err)
	}

	errs := FieldErrors{}
	price, err := strconv.ParseFloat(f.Price, 64)
	if err != nil {
		errs["price"] = messageFor("numeric")
	}
	discount, err := strconv.ParseFloat(f.DiscountPercentage, 64)
	if err != nil {
		errs["discountPercentage"] = messageFor("numeric")
	}
	rating, err := strconv.ParseFloat(f.Rating, 64)
	if err != nil {
		errs["rating"] = messageFor("numeric")
	} else if rating < 0 || rating > 5 {
		errs["rating"] = "Must be between 0 and 5"
	}
	stock, err := strconv.Atoi(f.Stock)
	if err != nil {
		errs["stock"] = messageFor("number")
	}
	if len(errs) > 0 {
		return ProductFields{}, errs
	}

	return ProductFields{
		Title:              f.Title,
		Description:        f.Description,
		Price:              price,
		DiscountPercentage: discount,
		Rating:             rating,
		Stock:              stock,
		Brand:              f.Brand,
		Category:           f.Category,
		Thumbnail:          f.Thumbnail,
		Images:             ParseImages(f.Images),
	}, nil
}

// CreateInput converts the fields for a create call.
func (p ProductFields) CreateInput() product.CreateInput {
	return product.CreateInput{
		Title:              p.Title,
		Description:        p.Description,
		Price:              p.Price,
		DiscountPercentage: p.DiscountPercentage,
		Rating:             p.Rating,
		Stock:              p.Stock,
		Brand:              p.Brand,
		Category:           p.Category,
		Thumbnail:          p.Thumbnail,
		Images:             p.Images,
	}
}

// UpdateInput converts the fields for a partial update. Optional fields left blank are not sent.
func (p ProductFields) UpdateInput() product.UpdateInput {
	in := product.UpdateInput{
		Title:              &p.Title,
		Description:        &p.Description,
		Price:              &p.Price,
		DiscountPercentage: &p.DiscountPercentage,
		Rating:             &p.Rating,
		Stock:              &p.Stock,
		Brand:              &p.Brand,
		Category:           &p.Category,
	}
	if p.Thumbnail != "" {
		in.Thumbnail = &p.Thumbnail
	}
	if len(p.Images) > 0 {
		in.Images = &p.Images
	}
	return in
}

// FormFromProduct fills every form field from p.
func FormFromProduct(p model.Product) ProductForm {
	return ProductForm{
		Title:              p.Title,
		Description:        p.Description,
		Price:              strconv.FormatFloat(p.Price, 'f', -1, 64),
		DiscountPercentage: strconv.FormatFloat(p.DiscountPercentage, 'f', -1, 64),
		Rating:             strconv.FormatFloat(p.Rating, 'f', -1, 64),
		Stock:              strconv.Itoa(p.Stock),
		Brand:              p.Brand,
		Category:           p.Category,
		Thumbnail:          p.Thumbnail,
		Images:             JoinImages(p.Images),
	}
}

// ParseImages splits a comma-separated URL list, trimming entries and dropping empty ones.
func ParseImages(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// JoinImages is the inverse of ParseImages.
func JoinImages(images []string) string {
	return strings.Join(images, ", ")
}

// LoginForm holds the raw credential fields. Values are not trimmed.
type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// SignUpForm holds the raw sign-up fields.
type SignUpForm struct {
	Username  string `form:"username" validate:"required"`
	Password  string `form:"password" validate:"required"`
	Email     string `form:"email" validate:"required,email"`
	FirstName string `form:"firstName"`
	LastName  string `form:"lastName"`
}
