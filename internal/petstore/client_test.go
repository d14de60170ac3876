package petstore

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"
)

func fixtureServer(t *testing.T) *httptest.Server {
	t.Helper()

	pets := Fixtures()
	mux := http.NewServeMux()

	mux.HandleFunc("/pets", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(pets)
	})
	mux.HandleFunc("/pets/findByStatus", func(w http.ResponseWriter, r *http.Request) {
		status := Status(r.URL.Query().Get("status"))
		json.NewEncoder(w).Encode(FilterByStatus(pets, status))
	})
	mux.HandleFunc("/pets/", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/pets/"), 10, 64)
		if err == nil {
			for _, pet := range pets {
				if pet.ID == id {
					json.NewEncoder(w).Encode(pet)
					return
				}
			}
		}
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_ListPets(t *testing.T) {
	srv := fixtureServer(t)
	client := NewClient(srv.URL, 5*time.Second)

	pets, err := client.ListPets(context.Background())
	if err != nil {
		t.Fatalf("ListPets() error = %v", err)
	}
	if len(pets) != 5 {
		t.Fatalf("expected 5 pets, got %d", len(pets))
	}
	if pets[0].Name != "Buddy" {
		t.Errorf("expected first pet Buddy, got %s", pets[0].Name)
	}
}

func TestClient_GetPet(t *testing.T) {
	srv := fixtureServer(t)
	client := NewClient(srv.URL, 5*time.Second)

	pet, err := client.GetPet(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetPet() error = %v", err)
	}
	if pet.Name != "Buddy" {
		t.Errorf("expected Buddy, got %s", pet.Name)
	}
	if pet.Category.Name != "Dogs" {
		t.Errorf("expected category Dogs, got %s", pet.Category.Name)
	}
}

func TestClient_GetPet_NotFound(t *testing.T) {
	srv := fixtureServer(t)
	client := NewClient(srv.URL, 5*time.Second)

	_, err := client.GetPet(context.Background(), 999)
	if err == nil {
		t.Fatal("expected error for missing pet")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_FindByStatus(t *testing.T) {
	srv := fixtureServer(t)
	client := NewClient(srv.URL, 5*time.Second)

	tests := []struct {
		status Status
		want   int
	}{
		{StatusAvailable, 3},
		{StatusPending, 1},
		{StatusSold, 1},
	}

	for _, tt := range tests {
		pets, err := client.FindByStatus(context.Background(), tt.status)
		if err != nil {
			t.Fatalf("FindByStatus(%s) error = %v", tt.status, err)
		}
		if len(pets) != tt.want {
			t.Errorf("FindByStatus(%s) = %d pets, want %d", tt.status, len(pets), tt.want)
		}
	}
}

func TestClient_FindByStatus_Invalid(t *testing.T) {
	client := NewClient("http://127.0.0.1:0", time.Second)
	if _, err := client.FindByStatus(context.Background(), "bogus"); err == nil {
		t.Fatal("expected error for invalid status")
	}
}

func TestClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.ListPets(context.Background())
	if err == nil {
		t.Fatal("expected error on 500 response")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", apiErr.StatusCode)
	}
}

func TestFixtureClient(t *testing.T) {
	client := NewFixtureClient()
	ctx := context.Background()

	pets, err := client.ListPets(ctx)
	if err != nil {
		t.Fatalf("ListPets() error = %v", err)
	}
	if len(pets) != 5 {
		t.Fatalf("expected 5 fixture pets, got %d", len(pets))
	}

	pet, err := client.GetPet(ctx, 42)
	if err != nil {
		t.Fatalf("GetPet(42) error = %v", err)
	}
	if pet.Name != "Max" {
		t.Errorf("expected Max, got %s", pet.Name)
	}

	if _, err := client.GetPet(ctx, 7); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	pending, err := client.FindByStatus(ctx, StatusPending)
	if err != nil {
		t.Fatalf("FindByStatus(pending) error = %v", err)
	}
	if len(pending) != 1 || pending[0].Name != "Charlie" {
		t.Errorf("expected [Charlie], got %v", pending)
	}
}

func TestFilterByCategory(t *testing.T) {
	dogs := FilterByCategory(Fixtures(), "dogs")
	if len(dogs) != 3 {
		t.Fatalf("expected 3 dogs, got %d", len(dogs))
	}

	available := FilterByStatus(dogs, StatusAvailable)
	if len(available) != 2 {
		t.Fatalf("expected 2 available dogs, got %d", len(available))
	}
}
