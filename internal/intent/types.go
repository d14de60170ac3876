// Package intent provides keyword-based routing of prompts to store queries.
package intent

import "github.com/fentz26/petstore-agent/internal/petstore"

// Intent is the discrete query category selected for a prompt.
type Intent string

const (
	// IntentListAll lists every pet in the store.
	IntentListAll Intent = "list-all"
	// IntentPetByID looks up a single pet by numeric ID.
	IntentPetByID Intent = "by-id"
	// IntentByStatus lists pets with a given adoption status.
	IntentByStatus Intent = "by-status"
	// IntentDogs lists available dogs.
	IntentDogs Intent = "dogs"
	// IntentCats lists all cats.
	IntentCats Intent = "cats"
	// IntentHelp answers anything the other intents don't cover.
	IntentHelp Intent = "help"
)

// Valid reports whether i is a known intent.
func (i Intent) Valid() bool {
	switch i {
	case IntentListAll, IntentPetByID, IntentByStatus, IntentDogs, IntentCats, IntentHelp:
		return true
	}
	return false
}

// Decision is the result of routing a single prompt.
type Decision struct {
	Prompt string `json:"prompt"`
	Intent Intent `json:"intent"`
	// PetID is set when Intent is IntentPetByID and a number was found.
	PetID    int64 `json:"pet_id,omitempty"`
	HasPetID bool  `json:"has_pet_id,omitempty"`
	// Status is set when Intent is IntentByStatus.
	Status petstore.Status `json:"status,omitempty"`
	// MatchedKeywords lists the keywords that triggered the selected rule.
	MatchedKeywords []string `json:"matched_keywords,omitempty"`
}
