package catalogapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL   = "https://dummyjson.com"
	DefaultLoginPath = "/auth/login"
)

// Observer receives one callback per finished API call. status is 0 when no response arrived.
type Observer interface {
	ObserveCall(op string, status int, elapsed time.Duration)
}

// Client is the HTTP wrapper for the catalog REST API.
type Client struct {
	baseURL    string
	loginPath  string
	httpClient *http.Client
	limiter    *rate.Limiter
	observer   Observer
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLoginPath overrides DefaultLoginPath.
func WithLoginPath(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.loginPath = path
		}
	}
}

// WithRateLimit delays calls to at most perSec per second. perSec <= 0 disables the limit.
func WithRateLimit(perSec float64, burst int) Option {
	return func(c *Client) {
		if perSec <= 0 {
			c.limiter = nil
			return
		}
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSec), burst)
	}
}

// WithObserver registers o for call metrics.
func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}

// NewClient creates a new catalog API client.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		loginPath:  DefaultLoginPath,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListProducts fetches the whole collection via GET /products.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var out ProductList
	if err := c.do(ctx, "list_products", http.MethodGet, "/products", nil, &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

// GetProduct fetches one product via GET /products/{id}.
func (c *Client) GetProduct(ctx context.Context, id int) (*Product, error) {
	var out Product
	if err := c.do(ctx, "get_product", http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddProduct creates a product via POST /products/add.
func (c *Client) AddProduct(ctx context.Context, req AddProductRequest) error {
	return c.do(ctx, "add_product", http.MethodPost, "/products/add", req, nil)
}

// UpdateProduct changes the supplied fields via PUT /products/{id}.
func (c *Client) UpdateProduct(ctx context.Context, id int, req UpdateProductRequest) error {
	return c.do(ctx, "update_product", http.MethodPut, fmt.Sprintf("/products/%d", id), req, nil)
}

// DeleteProduct removes a product via DELETE /products/{id}.
func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.do(ctx, "delete_product", http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
}

// Login exchanges credentials for a token.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.do(ctx, "login", http.MethodPost, c.loginPath, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddUser registers a user via POST /users/add.
func (c *Client) AddUser(ctx context.Context, req AddUserRequest) (*User, error) {
	var out User
	if err := c.do(ctx, "add_user", http.MethodPost, "/users/add", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Ping checks that the API answers. It fetches a single product and discards it.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, "ping", http.MethodGet, "/products?limit=1", nil, nil)
}

func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("catalog API %s: rate limiter: %w", op, err)
		}
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal %s request: %w", op, err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", op, err)
	}
	if in != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")
	if tok := TokenFromContext(ctx); tok != nil && tok.AccessToken != "" {
		tok.SetAuthHeader(httpReq)
	}

	start := time.Now()
	status := 0
	defer func() {
		if c.observer != nil {
			c.observer.ObserveCall(op, status, time.Since(start))
		}
	}()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call catalog API %s: %w", op, err)
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return &APIError{Op: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", op, err)
	}
	return nil
}
