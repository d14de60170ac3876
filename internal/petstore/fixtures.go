package petstore

import (
	"context"
	"fmt"
	"strings"
)

// Fixtures returns the reference pet records used by offline mode, the local
// mock server, and tests.
func Fixtures() []Pet {
	return []Pet{
		{
			ID:       1,
			Name:     "Buddy",
			Category: Category{ID: 1, Name: "Dogs"},
			Status:   StatusAvailable,
			Tags: []Tag{
				{ID: 1, Name: "friendly"},
				{ID: 2, Name: "trained"},
			},
			PhotoURLs: []string{
				"https://example.com/buddy1.jpg",
				"https://example.com/buddy2.jpg",
			},
		},
		{
			ID:       2,
			Name:     "Whiskers",
			Category: Category{ID: 2, Name: "Cats"},
			Status:   StatusAvailable,
			Tags: []Tag{
				{ID: 3, Name: "calm"},
				{ID: 4, Name: "indoor"},
			},
			PhotoURLs: []string{"https://example.com/whiskers.jpg"},
		},
		{
			ID:       3,
			Name:     "Charlie",
			Category: Category{ID: 1, Name: "Dogs"},
			Status:   StatusPending,
			Tags: []Tag{
				{ID: 1, Name: "friendly"},
				{ID: 5, Name: "energetic"},
			},
			PhotoURLs: []string{"https://example.com/charlie.jpg"},
		},
		{
			ID:       4,
			Name:     "Luna",
			Category: Category{ID: 2, Name: "Cats"},
			Status:   StatusSold,
			Tags: []Tag{
				{ID: 6, Name: "quiet"},
				{ID: 4, Name: "indoor"},
			},
			PhotoURLs: []string{
				"https://example.com/luna1.jpg",
				"https://example.com/luna2.jpg",
			},
		},
		{
			ID:       42,
			Name:     "Max",
			Category: Category{ID: 1, Name: "Dogs"},
			Status:   StatusAvailable,
			Tags: []Tag{
				{ID: 7, Name: "guard dog"},
				{ID: 1, Name: "friendly"},
			},
			PhotoURLs: []string{"https://example.com/max.jpg"},
		},
	}
}

// FixtureClient serves the fixture pets in-memory. It implements API and is
// used for offline demo mode and as a test double.
type FixtureClient struct {
	pets []Pet
}

// NewFixtureClient creates a FixtureClient seeded with Fixtures().
func NewFixtureClient() *FixtureClient {
	return &FixtureClient{pets: Fixtures()}
}

// NewFixtureClientWith creates a FixtureClient with a custom pet set.
func NewFixtureClientWith(pets []Pet) *FixtureClient {
	return &FixtureClient{pets: append([]Pet(nil), pets...)}
}

// ListPets returns all fixture pets.
func (c *FixtureClient) ListPets(ctx context.Context) ([]Pet, error) {
	return append([]Pet(nil), c.pets...), nil
}

// GetPet returns the fixture pet with the given ID, or ErrNotFound.
func (c *FixtureClient) GetPet(ctx context.Context, id int64) (*Pet, error) {
	for _, pet := range c.pets {
		if pet.ID == id {
			p := pet
			return &p, nil
		}
	}
	return nil, fmt.Errorf("pet %d: %w", id, ErrNotFound)
}

// FindByStatus returns fixture pets matching the given status.
func (c *FixtureClient) FindByStatus(ctx context.Context, status Status) ([]Pet, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid status %q", status)
	}

	var out []Pet
	for _, pet := range c.pets {
		if pet.Status == status {
			out = append(out, pet)
		}
	}
	return out, nil
}

// FilterByCategory returns the pets whose category name matches (case
// insensitive). Used for the dog/cat intents, which the store API has no
// endpoint for.
func FilterByCategory(pets []Pet, category string) []Pet {
	var out []Pet
	for _, pet := range pets {
		if strings.EqualFold(pet.Category.Name, category) {
			out = append(out, pet)
		}
	}
	return out
}

// FilterByStatus returns the pets matching the given status.
func FilterByStatus(pets []Pet, status Status) []Pet {
	var out []Pet
	for _, pet := range pets {
		if pet.Status == status {
			out = append(out, pet)
		}
	}
	return out
}
