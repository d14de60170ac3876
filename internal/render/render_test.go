package render

import (
	"strings"
	"testing"

	"github.com/fentz26/petstore-agent/internal/petstore"
)

func TestPetEmoji(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{"Dogs", "🐕"},
		{"Cats", "🐱"},
		{"Birds", "🐦"},
		{"Fish", "🐠"},
		{"Rabbits", "🐰"},
		{"Reptiles", "🐾"},
		{"", "🐾"},
	}

	for _, tt := range tests {
		if got := PetEmoji(tt.category); got != tt.want {
			t.Errorf("PetEmoji(%q) = %s, want %s", tt.category, got, tt.want)
		}
	}
}

func TestStatusEmoji(t *testing.T) {
	tests := []struct {
		status petstore.Status
		want   string
	}{
		{petstore.StatusAvailable, "🟢"},
		{petstore.StatusPending, "🟡"},
		{petstore.StatusSold, "🔴"},
		{"unknown", "❓"},
	}

	for _, tt := range tests {
		if got := StatusEmoji(tt.status); got != tt.want {
			t.Errorf("StatusEmoji(%q) = %s, want %s", tt.status, got, tt.want)
		}
	}
}

func TestStatusHeader(t *testing.T) {
	if got := StatusHeader(petstore.StatusPending); got != HeaderPending {
		t.Errorf("StatusHeader(pending) = %q", got)
	}
	if got := StatusHeader(petstore.StatusSold); got != HeaderSold {
		t.Errorf("StatusHeader(sold) = %q", got)
	}
}

func TestPetList(t *testing.T) {
	pets := petstore.Fixtures()[:2]

	out := PetList(HeaderAllPets, pets)

	if !strings.HasPrefix(out, HeaderAllPets) {
		t.Error("list should start with its header")
	}
	for _, want := range []string{
		"🐕 **Pet #1**: Buddy",
		"📂 Category: Dogs",
		"🟢 Status: Available",
		"🏷️  Tags: friendly, trained",
		"🐱 **Pet #2**: Whiskers",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q\n%s", want, out)
		}
	}
}

func TestPetList_Empty(t *testing.T) {
	out := PetList(HeaderCats, nil)
	if !strings.Contains(out, "😔 No pets found.") {
		t.Errorf("empty list should say no pets found, got %q", out)
	}
}

func TestPetDetail(t *testing.T) {
	pet := petstore.Fixtures()[4] // Max, id 42

	out := PetDetail(&pet)

	for _, want := range []string{
		"**Pet Details**",
		"🆔 ID: 42",
		"📛 Name: Max",
		"📂 Category: Dogs",
		"🟢 Status: Available",
		"🏷️  Tags: guard dog, friendly",
		"📸 Photos: 1 available",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("detail output missing %q\n%s", want, out)
		}
	}
}

func TestPetDetail_NoTagsNoPhotos(t *testing.T) {
	pet := petstore.Pet{
		ID:       9,
		Name:     "Nameless",
		Category: petstore.Category{Name: "Reptiles"},
		Status:   petstore.StatusPending,
	}

	out := PetDetail(&pet)
	if strings.Contains(out, "Tags:") {
		t.Error("detail should omit tags line when there are none")
	}
	if strings.Contains(out, "Photos:") {
		t.Error("detail should omit photos line when there are none")
	}
}

func TestHelp(t *testing.T) {
	out := Help("order me a pizza")
	if !strings.Contains(out, `"order me a pizza"`) {
		t.Error("help should echo the original prompt")
	}
	if !strings.Contains(out, "List all pets") {
		t.Error("help should list capabilities")
	}
}

func TestBanner(t *testing.T) {
	online := Banner("https://store.example.com", false)
	if !strings.Contains(online, "https://store.example.com") {
		t.Error("online banner should show the API URL")
	}

	offline := Banner("https://store.example.com", true)
	if !strings.Contains(offline, "OFFLINE MODE") {
		t.Error("offline banner should mention offline mode")
	}
}

func TestPromptHeader(t *testing.T) {
	out := PromptHeader(3, 8, "Show me all sold pets")
	if !strings.Contains(out, "Prompt 3/8") {
		t.Errorf("prompt header missing counter: %q", out)
	}
	if !strings.Contains(out, "Show me all sold pets") {
		t.Errorf("prompt header missing prompt text: %q", out)
	}
}
