// Package catalog talks to the external product catalog endpoint and
// degrades to a built-in sample set when the endpoint is unreachable.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	domainErrors "github.com/monisha-uniforms/storefront/internal/domain/errors"
	"github.com/monisha-uniforms/storefront/internal/domain/model"
)

// Client exposes operations to query the product catalog.
type Client interface {
	List(ctx context.Context) ([]model.Product, error)
	Get(ctx context.Context, id int64) (*model.Product, error)
}

// HTTPClient implements Client via the catalog HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates an HTTP catalog client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse catalog url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("catalog url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// List fetches every catalog product.
func (c *HTTPClient) List(ctx context.Context) ([]model.Product, error) {
	body, err := c.get(ctx, "/products")
	if err != nil {
		return nil, err
	}
	var products []model.Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}
	return products, nil
}

// Get fetches a single product by id.
func (c *HTTPClient) Get(ctx context.Context, id int64) (*model.Product, error) {
	body, err := c.get(ctx, path.Join("/products", strconv.FormatInt(id, 10)))
	if err != nil {
		return nil, err
	}
	var product model.Product
	if err := json.Unmarshal(body, &product); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}
	return &product, nil
}

func (c *HTTPClient) get(ctx context.Context, endpointPath string) ([]byte, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, endpointPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return io.ReadAll(resp.Body)
	case http.StatusNotFound:
		return nil, domainErrors.ErrNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("catalog request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("catalog error: %s", resp.Status)
	}
}
