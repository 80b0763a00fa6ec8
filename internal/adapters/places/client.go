// internal/adapters/places/client.go
package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"stay_resolver/internal/adapters/observability"
	"stay_resolver/internal/domain"
)

var (
	ErrUnauthorized = errors.New("places: unauthorized")
	ErrForbidden    = errors.New("places: forbidden")
)

// Client talks to the place-search provider. One attempt per call, explicit
// timeout, client-side rate limiting; the resolver treats any failure as
// "skip augmentation", so retrying here would only stretch request latency.
type Client struct {
	base string
	hc   *http.Client
	key  string
	rl   *rate.Limiter
}

func New(base, key string, rps int, timeout time.Duration) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if rps <= 0 {
		rps = 5
	}
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &Client{
		base: base,
		hc:   &http.Client{Timeout: timeout},
		key:  key,
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// ---- provider wire types ----

type resultItem struct {
	Title    string    `json:"title"`
	Address  wireAddr  `json:"address"`
	Position []float64 `json:"position"` // [longitude, latitude]
	Contacts *contacts `json:"contacts,omitempty"`
}

type wireAddr struct {
	AddressNumber string `json:"addressNumber"`
	Street        string `json:"street"`
	Locality      string `json:"locality"`
	Country       struct {
		Name string `json:"name"`
	} `json:"country"`
	PostalCode string `json:"postalCode"`
}

type contacts struct {
	Phones []struct {
		Value string `json:"value"`
	} `json:"phones"`
}

type searchResponse struct {
	ResultItems []resultItem `json:"resultItems"`
}

// ---- Public API ----

// SearchText resolves a free-text location to coordinates, taking the first
// result's position. No results is (nil, nil), not an error.
func (c *Client) SearchText(ctx context.Context, query string, bias domain.Coordinates) (*domain.Coordinates, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("bias", fmt.Sprintf("%f,%f", bias.Longitude, bias.Latitude))
	q.Set("maxResults", "1")

	var resp searchResponse
	if err := c.get(ctx, "search-text", c.base+"/v2/search-text?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	if len(resp.ResultItems) == 0 {
		return nil, nil
	}
	pos := resp.ResultItems[0].Position
	if len(pos) != 2 {
		return nil, nil
	}
	return &domain.Coordinates{Longitude: pos[0], Latitude: pos[1]}, nil
}

// SearchNearby fetches places around a position with category and country
// filters applied provider-side.
func (c *Client) SearchNearby(ctx context.Context, pos domain.Coordinates, nq domain.NearbyQuery) ([]domain.RawPlace, error) {
	q := url.Values{}
	q.Set("position", fmt.Sprintf("%f,%f", pos.Longitude, pos.Latitude))
	if nq.Category != "" {
		q.Set("category", nq.Category)
	}
	if nq.Country != "" {
		q.Set("country", nq.Country)
	}
	if nq.MaxResults > 0 {
		q.Set("maxResults", strconv.Itoa(nq.MaxResults))
	}
	if nq.Contacts {
		q.Set("features", "contact")
	}

	var resp searchResponse
	if err := c.get(ctx, "search-nearby", c.base+"/v2/search-nearby?"+q.Encode(), &resp); err != nil {
		return nil, err
	}

	out := make([]domain.RawPlace, 0, len(resp.ResultItems))
	for _, item := range resp.ResultItems {
		place := domain.RawPlace{
			Title: item.Title,
			Address: domain.PlaceAddress{
				Number:     item.Address.AddressNumber,
				Street:     item.Address.Street,
				Locality:   item.Address.Locality,
				Country:    item.Address.Country.Name,
				PostalCode: item.Address.PostalCode,
			},
		}
		if len(item.Position) == 2 {
			place.Position = &domain.Coordinates{Longitude: item.Position[0], Latitude: item.Position[1]}
		}
		if item.Contacts != nil {
			for _, ph := range item.Contacts.Phones {
				place.Phones = append(place.Phones, ph.Value)
			}
		}
		out = append(out, place)
	}
	return out, nil
}

// ---- Internals ----

func (c *Client) get(ctx context.Context, endpoint, url string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-API-Key", c.key)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "stay-resolver/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("places", endpoint, 0, time.Since(start))
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("places", endpoint, resp.StatusCode, time.Since(start))

	switch resp.StatusCode {
	case http.StatusOK:
		return json.NewDecoder(resp.Body).Decode(out)
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	default:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
}
