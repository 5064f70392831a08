// Package client implements the catalog's remote product store over the catalog API's REST/JSON interface.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/iyhunko/product-catalog/internal/catalog"
	"github.com/iyhunko/product-catalog/internal/metrics"
)

// ErrNotFound matches a 404 from the catalog API.
var ErrNotFound = errors.New("product not found")

// StatusError is a non-2xx response from the catalog API.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("catalog api: %d %s", e.Code, e.Message)
	}
	return fmt.Sprintf("catalog api: %d %s", e.Code, http.StatusText(e.Code))
}

// Is makes errors.Is(err, ErrNotFound) true for 404 responses.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Code == http.StatusNotFound
}

// productPayload is the create/update body. Price is sent as a JSON number.
type productPayload struct {
	Name  string      `json:"nome"`
	Price json.Number `json:"preco"`
}

type errorBody struct {
	Error string `json:"error"`
}

// ProductClient talks to the catalog API.
type ProductClient struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the catalog API at baseURL.
func New(baseURL string, timeout time.Duration) *ProductClient {
	return &ProductClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// NewWithHTTPClient creates a client that sends requests through hc.
func NewWithHTTPClient(baseURL string, hc *http.Client) *ProductClient {
	return &ProductClient{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

func (c *ProductClient) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := c.do(ctx, "list", http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []catalog.Product{}
	}
	return products, nil
}

func (c *ProductClient) GetProduct(ctx context.Context, id string) (catalog.Product, error) {
	var p catalog.Product
	err := c.do(ctx, "get", http.MethodGet, productPath(id), nil, &p)
	return p, err
}

func (c *ProductClient) CreateProduct(ctx context.Context, in catalog.ProductInput) (catalog.Product, error) {
	var p catalog.Product
	err := c.do(ctx, "create", http.MethodPost, "/products", toPayload(in), &p)
	return p, err
}

func (c *ProductClient) UpdateProduct(ctx context.Context, id string, in catalog.ProductInput) (catalog.Product, error) {
	var p catalog.Product
	err := c.do(ctx, "update", http.MethodPut, productPath(id), toPayload(in), &p)
	return p, err
}

func (c *ProductClient) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, "delete", http.MethodDelete, productPath(id), nil, nil)
}

func (c *ProductClient) do(ctx context.Context, op, method, path string, body, out any) error {
	err := c.roundTrip(ctx, method, path, body, out)
	if err != nil {
		metrics.RemoteFailures.WithLabelValues(op).Inc()
		slog.Warn("catalog api call failed",
			slog.String("op", op),
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("err", err))
	}
	return err
}

func (c *ProductClient) roundTrip(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call catalog api: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var eb errorBody
		_ = json.NewDecoder(res.Body).Decode(&eb)
		return &StatusError{Code: res.StatusCode, Message: eb.Error}
	}

	if out == nil || res.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func productPath(id string) string {
	return "/products/" + url.PathEscape(id)
}

func toPayload(in catalog.ProductInput) productPayload {
	return productPayload{Name: in.Name, Price: json.Number(in.Price.String())}
}
