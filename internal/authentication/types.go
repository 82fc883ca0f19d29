package authentication

import "golang.org/x/oauth2"

// Credentials exist only for the duration of one sign-in call.
type Credentials struct {
	Username string
	Password string
}

// Session is what a successful sign-in yields.
type Session struct {
	UserID   int
	Username string
	Token    *oauth2.Token
}

// SignUpInput is the payload of the sign-up form.
type SignUpInput struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
}
