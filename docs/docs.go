// Package docs registers the OpenAPI description served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": ["text/html"],
                "tags": ["Console"],
                "summary": "Login page",
                "responses": {
                    "200": {"description": "HTML page"},
                    "303": {"description": "Already signed in, redirect to /dashboard"}
                }
            },
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["text/html"],
                "tags": ["Console"],
                "summary": "Sign in",
                "parameters": [
                    {"type": "string", "description": "Username", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "description": "Password", "name": "password", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "Form with errors"},
                    "303": {"description": "Signed in, redirect to /dashboard"}
                }
            }
        },
        "/sign-up": {
            "get": {
                "produces": ["text/html"],
                "tags": ["Console"],
                "summary": "Sign-up page",
                "responses": {"200": {"description": "HTML page"}}
            },
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["text/html"],
                "tags": ["Console"],
                "summary": "Create an account",
                "parameters": [
                    {"type": "string", "description": "Username", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "description": "Password", "name": "password", "in": "formData", "required": true},
                    {"type": "string", "description": "E-mail", "name": "email", "in": "formData", "required": true},
                    {"type": "string", "description": "First name", "name": "firstName", "in": "formData"},
                    {"type": "string", "description": "Last name", "name": "lastName", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "Form with errors"},
                    "303": {"description": "Account created, redirect to /"}
                }
            }
        },
        "/logout": {
            "post": {
                "tags": ["Console"],
                "summary": "Sign out",
                "responses": {"303": {"description": "Redirect to /"}}
            }
        },
        "/dashboard": {
            "get": {
                "produces": ["text/html"],
                "tags": ["Console"],
                "summary": "Dashboard",
                "responses": {
                    "200": {"description": "HTML page"},
                    "303": {"description": "Not signed in, redirect to /"}
                }
            }
        },
        "/products": {
            "get": {
                "produces": ["text/html"],
                "tags": ["Console"],
                "summary": "Product listing",
                "parameters": [
                    {"type": "integer", "description": "Open the detail modal of this product", "name": "detail", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "HTML page"},
                    "303": {"description": "Not signed in, redirect to /"}
                }
            }
        },
        "/products/{id}/delete": {
            "post": {
                "tags": ["Console"],
                "summary": "Delete a product",
                "parameters": [
                    {"type": "integer", "description": "Product ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "303": {"description": "Redirect to /products"}
                }
            }
        },
        "/products/{id}/edit": {
            "get": {
                "tags": ["Console"],
                "summary": "Open the edit form of a product",
                "parameters": [
                    {"type": "integer", "description": "Product ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"303": {"description": "Redirect to /products/register?id={id}"}}
            }
        },
        "/products/register": {
            "get": {
                "produces": ["text/html"],
                "tags": ["Console"],
                "summary": "Product registration form",
                "parameters": [
                    {"type": "integer", "description": "Edit this product instead of creating one", "name": "id", "in": "query"}
                ],
                "responses": {"200": {"description": "HTML page"}}
            },
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["text/html"],
                "tags": ["Console"],
                "summary": "Create or update a product",
                "parameters": [
                    {"type": "integer", "description": "Product ID (edit mode)", "name": "id", "in": "query"},
                    {"type": "string", "description": "Title", "name": "title", "in": "formData", "required": true},
                    {"type": "string", "description": "Description", "name": "description", "in": "formData", "required": true},
                    {"type": "number", "description": "Price", "name": "price", "in": "formData", "required": true},
                    {"type": "number", "description": "Discount percentage", "name": "discountPercentage", "in": "formData", "required": true},
                    {"type": "number", "description": "Rating (0-5)", "name": "rating", "in": "formData", "required": true},
                    {"type": "integer", "description": "Stock", "name": "stock", "in": "formData", "required": true},
                    {"type": "string", "description": "Brand", "name": "brand", "in": "formData", "required": true},
                    {"type": "string", "description": "Category", "name": "category", "in": "formData", "required": true},
                    {"type": "string", "description": "Thumbnail URL", "name": "thumbnail", "in": "formData"},
                    {"type": "string", "description": "Comma-separated image URLs", "name": "images", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "Form with errors"},
                    "303": {"description": "Saved, redirect to /products"}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the console is healthy",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "Console is healthy", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        },
        "/ready": {
            "get": {
                "description": "Check that the catalog API is reachable",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "Console is ready", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "503": {"description": "Catalog API unreachable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/live": {
            "get": {
                "description": "Check if the process is alive",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "Console is alive", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        }
    },
    "definitions": {
        "response.Resp": {
            "type": "object",
            "properties": {
                "data": {},
                "error_code": {"type": "integer"},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Catalog Console",
	Description:      "Server-rendered admin console for a REST product catalog.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
