// Package agent wires the prompt router, the store client, and the renderer.
package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fentz26/petstore-agent/internal/intent"
	"github.com/fentz26/petstore-agent/internal/petstore"
	"github.com/fentz26/petstore-agent/internal/render"
	"github.com/fentz26/petstore-agent/internal/store"
)

// Agent processes a prompt end to end, from routing through formatting. It
// holds no state between prompts beyond the write-only history record.
type Agent struct {
	api     petstore.API
	router  intent.Router
	history *store.Store
	log     *zap.Logger
}

// New creates an Agent. history may be nil to disable recording; a nil
// logger is replaced with a no-op one.
func New(api petstore.API, router intent.Router, history *store.Store, log *zap.Logger) *Agent {
	if log == nil {
		log = zap.NewNop()
	}
	return &Agent{api: api, router: router, history: history, log: log}
}

// Process routes a prompt, performs the selected query, and returns the
// formatted response. Query failures are rendered as error lines rather than
// returned, so a failing prompt never aborts a demo run.
func (a *Agent) Process(ctx context.Context, prompt string) string {
	started := time.Now()

	decision, err := a.router.Route(ctx, prompt)
	if err != nil {
		a.log.Error("routing failed", zap.String("prompt", prompt), zap.Error(err))
		return fmt.Sprintf("❌ Sorry, I couldn't process your request: %v", err)
	}

	response, queryErr := a.dispatch(ctx, decision)

	a.log.Info("prompt processed",
		zap.String("prompt", prompt),
		zap.String("intent", string(decision.Intent)),
		zap.Duration("duration", time.Since(started)),
		zap.Error(queryErr),
	)
	a.record(decision, queryErr, time.Since(started))

	return response
}

// Route exposes the routing decision without performing the query.
func (a *Agent) Route(ctx context.Context, prompt string) (*intent.Decision, error) {
	return a.router.Route(ctx, prompt)
}

// dispatch performs the query for a routing decision and formats the result.
// The returned error is for the history record; the string is always a
// complete console response.
func (a *Agent) dispatch(ctx context.Context, d *intent.Decision) (string, error) {
	switch d.Intent {
	case intent.IntentListAll:
		pets, err := a.api.ListPets(ctx)
		if err != nil {
			return fmt.Sprintf("❌ Sorry, I couldn't fetch the pets: %v", err), err
		}
		return render.PetList(render.HeaderAllPets, pets), nil

	case intent.IntentPetByID:
		if !d.HasPetID {
			return render.MissingID(), nil
		}
		pet, err := a.api.GetPet(ctx, d.PetID)
		if err != nil {
			if errors.Is(err, petstore.ErrNotFound) {
				return fmt.Sprintf("❌ Sorry, I couldn't find pet %d: %v", d.PetID, err), err
			}
			return fmt.Sprintf("❌ Sorry, I couldn't fetch pet %d: %v", d.PetID, err), err
		}
		return render.PetDetail(pet), nil

	case intent.IntentByStatus:
		pets, err := a.api.FindByStatus(ctx, d.Status)
		if err != nil {
			return fmt.Sprintf("❌ Sorry, I couldn't fetch %s pets: %v", d.Status, err), err
		}
		return render.PetList(render.StatusHeader(d.Status), pets), nil

	case intent.IntentDogs:
		pets, err := a.api.ListPets(ctx)
		if err != nil {
			return fmt.Sprintf("❌ Sorry, I couldn't fetch the pets: %v", err), err
		}
		dogs := petstore.FilterByStatus(petstore.FilterByCategory(pets, "dogs"), petstore.StatusAvailable)
		return render.PetList(render.HeaderDogs, dogs), nil

	case intent.IntentCats:
		pets, err := a.api.ListPets(ctx)
		if err != nil {
			return fmt.Sprintf("❌ Sorry, I couldn't fetch the pets: %v", err), err
		}
		return render.PetList(render.HeaderCats, petstore.FilterByCategory(pets, "cats")), nil
	}

	return render.Help(d.Prompt), nil
}

// record persists the outcome of a processed prompt.
func (a *Agent) record(d *intent.Decision, queryErr error, elapsed time.Duration) {
	if a.history == nil {
		return
	}

	q := store.Query{
		Prompt:     d.Prompt,
		Intent:     string(d.Intent),
		Status:     string(d.Status),
		DurationMs: elapsed.Milliseconds(),
		Outcome:    store.OutcomeOK,
	}
	if d.HasPetID {
		q.PetID = d.PetID
	}
	if queryErr != nil {
		q.Outcome = store.OutcomeError
		q.Error = queryErr.Error()
	}

	if _, err := a.history.Add(q); err != nil {
		a.log.Warn("history write failed", zap.Error(err))
	}
}
