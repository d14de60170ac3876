package petstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout is the default timeout for API requests.
const DefaultTimeout = 10 * time.Second

// ErrNotFound is returned when the store has no pet with the requested ID.
var ErrNotFound = errors.New("pet not found")

// API is the subset of the pet store surface the agent uses.
type API interface {
	// ListPets returns every pet in the store.
	ListPets(ctx context.Context) ([]Pet, error)
	// GetPet returns a single pet by ID, or ErrNotFound.
	GetPet(ctx context.Context, id int64) (*Pet, error)
	// FindByStatus returns pets matching the given adoption status.
	FindByStatus(ctx context.Context, status Status) ([]Pet, error)
}

// Client calls the pet store REST API over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the given base URL. A zero timeout falls
// back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// ListPets returns every pet in the store.
func (c *Client) ListPets(ctx context.Context) ([]Pet, error) {
	body, err := c.get(ctx, "/pets")
	if err != nil {
		return nil, err
	}

	var pets []Pet
	if err := json.Unmarshal(body, &pets); err != nil {
		return nil, fmt.Errorf("parse pets response: %w", err)
	}
	return pets, nil
}

// GetPet returns a single pet by ID.
func (c *Client) GetPet(ctx context.Context, id int64) (*Pet, error) {
	body, err := c.get(ctx, fmt.Sprintf("/pets/%d", id))
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("pet %d: %w", id, ErrNotFound)
		}
		return nil, err
	}

	var pet Pet
	if err := json.Unmarshal(body, &pet); err != nil {
		return nil, fmt.Errorf("parse pet response: %w", err)
	}
	return &pet, nil
}

// FindByStatus returns pets matching the given adoption status.
func (c *Client) FindByStatus(ctx context.Context, status Status) ([]Pet, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid status %q", status)
	}

	path := "/pets/findByStatus?status=" + url.QueryEscape(string(status))
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}

	var pets []Pet
	if err := json.Unmarshal(body, &pets); err != nil {
		return nil, fmt.Errorf("parse pets response: %w", err)
	}
	return pets, nil
}

// APIError carries the status code and body of a failed API call.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (%d): %s", e.StatusCode, e.Body)
}

// get performs a GET request against the API. A single attempt, no retries.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}
