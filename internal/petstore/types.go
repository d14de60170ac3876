// Package petstore provides the client for the pet store REST API.
package petstore

// Status is a pet's adoption status.
type Status string

const (
	StatusAvailable Status = "available"
	StatusPending   Status = "pending"
	StatusSold      Status = "sold"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusPending, StatusSold:
		return true
	}
	return false
}

// Category groups pets by kind (Dogs, Cats, ...).
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Tag is a free-form label attached to a pet.
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Pet is a single pet record as returned by the store API.
type Pet struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Category  Category `json:"category"`
	Status    Status   `json:"status"`
	Tags      []Tag    `json:"tags,omitempty"`
	PhotoURLs []string `json:"photoUrls,omitempty"`
}
