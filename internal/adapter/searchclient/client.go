// Package searchclient talks to the external product-search collaborator:
// an HTTP scraper backend with plain and natural-language search
// endpoints. The backend assigns no stable product identifiers, so this
// adapter mints a fresh random ID per response item; downstream dedup
// relies on (name, price) as a secondary identity.
package searchclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/styleloom/outfitter/internal/core/domain"
	"github.com/styleloom/outfitter/internal/core/port"
	"github.com/styleloom/outfitter/pkg/retry"
)

var _ port.SearchClient = (*Client)(nil)

const (
	defaultTimeout = 15 * time.Second
	maxAttempts    = 3
	retryDelay     = 200 * time.Millisecond
	defaultSource  = "meesho"
)

type apiProduct struct {
	Title string `json:"title"`
	Price string `json:"price"`
	Link  string `json:"link"`
	Image string `json:"image"`
}

type searchResponse struct {
	Success  bool         `json:"success"`
	Products []apiProduct `json:"products"`
	Error    string       `json:"error"`
}

type naturalSearchResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Results struct {
		Total   int          `json:"total"`
		Results []apiProduct `json:"results"`
	} `json:"results"`
}

type Client struct {
	baseURL string
	httpCl  *http.Client
}

func New(baseURL string, timeout time.Duration) Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpCl:  &http.Client{Timeout: timeout},
	}
}

// Search queries the plain keyword search endpoint.
func (c Client) Search(
	ctx context.Context, query string,
) ([]domain.Product, error) {
	const op = "searchclient.Search"

	endpoint := c.baseURL + "/api/search?q=" + url.QueryEscape(query)

	var resp searchResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("%s: backend refused: %s", op, resp.Error)
	}

	return c.toDomain(resp.Products), nil
}

// SearchNatural queries the natural-language search endpoint used for
// outfit-style prompts.
func (c Client) SearchNatural(
	ctx context.Context, prompt string,
) ([]domain.Product, error) {
	const op = "searchclient.SearchNatural"

	endpoint := c.baseURL + "/api/llmsearch?prompt=" + url.QueryEscape(prompt)

	var resp naturalSearchResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("%s: backend refused: %s", op, resp.Error)
	}

	return c.toDomain(resp.Results.Results), nil
}

func (c Client) getJSON(ctx context.Context, endpoint string, v any) error {
	cfg := retry.RetryConfig{
		MaxAttempts: maxAttempts,
		Backoff:     retry.ExponentialBackoff(retryDelay),
	}

	return retry.Do(ctx, cfg, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return err
		}

		res, err := c.httpCl.Do(req)
		if err != nil {
			return err
		}
		defer res.Body.Close()

		if res.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("backend status %d", res.StatusCode)
		}

		return json.NewDecoder(res.Body).Decode(v)
	})
}

func (c Client) toDomain(items []apiProduct) []domain.Product {
	ps := make([]domain.Product, 0, len(items))
	for _, item := range items {
		price := parsePrice(item.Price)
		ps = append(ps, domain.Product{
			ID:            uuid.NewString(),
			Name:          item.Title,
			Price:         price,
			OriginalPrice: price * 1.2,
			Rating:        4.0,
			Image:         item.Image,
			Category:      "Meesho",
			Seller:        "Meesho Seller",
			Description:   item.Title,
			InStock:       true,
			Source:        defaultSource,
			URL:           item.Link,
		})
	}
	return ps
}

// parsePrice strips the rupee sign and thousands separators from the
// backend's price strings, e.g. "₹1,299".
func parsePrice(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "₹", "")
	s = strings.ReplaceAll(s, ",", "")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
