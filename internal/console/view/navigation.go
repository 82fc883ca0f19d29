package view

import "fmt"

const (
	PathLogin        = "/"
	PathSignUp       = "/sign-up"
	PathDashboard    = "/dashboard"
	PathProducts     = "/products"
	PathRegistration = "/products/register"
)

// Navigator moves the user to another screen.
type Navigator interface {
	Navigate(path string)
}

// RegistrationPath is the edit-mode address of the registration screen for id.
func RegistrationPath(id int) string {
	return fmt.Sprintf("%s?id=%d", PathRegistration, id)
}

// DetailPath is the listing address with the detail modal of id open.
func DetailPath(id int) string {
	return fmt.Sprintf("%s?detail=%d", PathProducts, id)
}
