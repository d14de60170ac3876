package agent

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fentz26/petstore-agent/internal/intent"
	"github.com/fentz26/petstore-agent/internal/petstore"
	"github.com/fentz26/petstore-agent/internal/render"
	"github.com/fentz26/petstore-agent/internal/store"
)

func newTestAgent(t *testing.T, history *store.Store) *Agent {
	t.Helper()
	return New(petstore.NewFixtureClient(), intent.NewRouter(nil), history, nil)
}

func TestAgent_DemoPrompts(t *testing.T) {
	a := newTestAgent(t, nil)
	ctx := context.Background()

	tests := []struct {
		prompt   string
		contains []string
		excludes []string
	}{
		{
			prompt:   "Show me all pets in the store",
			contains: []string{render.HeaderAllPets, "Buddy", "Whiskers", "Charlie", "Luna", "Max"},
		},
		{
			prompt:   "What pets are available for adoption?",
			contains: []string{render.HeaderAvailable, "Buddy", "Whiskers", "Max"},
			excludes: []string{"Charlie", "Luna"},
		},
		{
			prompt:   "Find me pet with ID 1",
			contains: []string{"**Pet Details**", "🆔 ID: 1", "Buddy"},
		},
		{
			prompt:   "Which pets are currently pending adoption?",
			contains: []string{render.HeaderPending, "Charlie"},
			excludes: []string{"Buddy"},
		},
		{
			prompt:   "Show me all sold pets",
			contains: []string{render.HeaderSold, "Luna"},
			excludes: []string{"Max"},
		},
		{
			prompt:   "Tell me about pet number 42",
			contains: []string{"**Pet Details**", "🆔 ID: 42", "Max"},
		},
		{
			// "available" wins the rule ordering over "dog", so this lists
			// every available pet.
			prompt:   "List available dogs",
			contains: []string{render.HeaderAvailable, "Buddy", "Whiskers", "Max"},
		},
		{
			prompt:   "What cats do you have?",
			contains: []string{render.HeaderCats, "Whiskers", "Luna"},
			excludes: []string{"Buddy"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.prompt, func(t *testing.T) {
			out := a.Process(ctx, tt.prompt)

			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("response to %q missing %q\n%s", tt.prompt, want, out)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(out, unwanted) {
					t.Errorf("response to %q should not contain %q\n%s", tt.prompt, unwanted, out)
				}
			}
		})
	}
}

func TestAgent_PetNotFound(t *testing.T) {
	a := newTestAgent(t, nil)

	out := a.Process(context.Background(), "Find me pet with ID 999")
	if !strings.Contains(out, "❌") || !strings.Contains(out, "999") {
		t.Errorf("expected not-found error line, got %q", out)
	}
}

func TestAgent_MissingPetID(t *testing.T) {
	a := newTestAgent(t, nil)

	out := a.Process(context.Background(), "Show me the pet with that ID")
	if out != render.MissingID() {
		t.Errorf("expected clarification message, got %q", out)
	}
}

func TestAgent_HelpFallback(t *testing.T) {
	a := newTestAgent(t, nil)

	out := a.Process(context.Background(), "What is the weather today?")
	if !strings.Contains(out, "Welcome to our Pet Store") {
		t.Errorf("expected help response, got %q", out)
	}
	if !strings.Contains(out, "What is the weather today?") {
		t.Error("help response should echo the prompt")
	}
}

type failingAPI struct{}

func (failingAPI) ListPets(ctx context.Context) ([]petstore.Pet, error) {
	return nil, errors.New("connection refused")
}

func (failingAPI) GetPet(ctx context.Context, id int64) (*petstore.Pet, error) {
	return nil, errors.New("connection refused")
}

func (failingAPI) FindByStatus(ctx context.Context, status petstore.Status) ([]petstore.Pet, error) {
	return nil, errors.New("connection refused")
}

func TestAgent_QueryErrorsDoNotAbort(t *testing.T) {
	a := New(failingAPI{}, intent.NewRouter(nil), nil, nil)
	ctx := context.Background()

	for _, prompt := range DemoPrompts() {
		out := a.Process(ctx, prompt)
		if out == "" {
			t.Errorf("prompt %q produced empty response", prompt)
		}
	}
}

func TestAgent_RecordsHistory(t *testing.T) {
	history, err := store.New(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	defer history.Close()

	a := newTestAgent(t, history)
	ctx := context.Background()

	a.Process(ctx, "Find me pet with ID 42")
	a.Process(ctx, "Find me pet with ID 999")

	queries, err := history.Recent(10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(queries) != 2 {
		t.Fatalf("expected 2 history records, got %d", len(queries))
	}

	var ok, failed int
	for _, q := range queries {
		if q.Intent != string(intent.IntentPetByID) {
			t.Errorf("intent = %q", q.Intent)
		}
		switch q.Outcome {
		case store.OutcomeOK:
			ok++
		case store.OutcomeError:
			failed++
		}
	}
	if ok != 1 || failed != 1 {
		t.Errorf("expected one ok and one error record, got ok=%d failed=%d", ok, failed)
	}
}

func TestDemoPrompts(t *testing.T) {
	prompts := DemoPrompts()
	if len(prompts) != 8 {
		t.Fatalf("expected 8 demo prompts, got %d", len(prompts))
	}
	if prompts[0] != "Show me all pets in the store" {
		t.Errorf("first prompt = %q", prompts[0])
	}
}
