// Package render formats pet store responses for the console.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fentz26/petstore-agent/internal/petstore"
)

var (
	primaryColor = lipgloss.Color("#7C3AED")
	mutedColor   = lipgloss.Color("#6B7280")
	successColor = lipgloss.Color("#10B981")

	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	promptStyle = lipgloss.NewStyle().
			Bold(true)

	dividerStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	summaryStyle = lipgloss.NewStyle().
			Foreground(successColor)
)

// Response headers per query kind.
const (
	HeaderAllPets   = "🐾 Here are all the pets in our store:"
	HeaderAvailable = "🟢 Here are the pets available for adoption:"
	HeaderPending   = "🟡 Here are the pets with pending adoptions:"
	HeaderSold      = "🔴 Here are the pets that have been sold:"
	HeaderDogs      = "🐕 Here are the available dogs in our store:"
	HeaderCats      = "🐱 Here are all the cats in our store:"
)

// StatusHeader returns the list header for a by-status query.
func StatusHeader(status petstore.Status) string {
	switch status {
	case petstore.StatusAvailable:
		return HeaderAvailable
	case petstore.StatusPending:
		return HeaderPending
	case petstore.StatusSold:
		return HeaderSold
	}
	return HeaderAllPets
}

// PetEmoji returns the emoji for a pet category.
func PetEmoji(category string) string {
	c := strings.ToLower(category)
	switch {
	case strings.Contains(c, "dog"):
		return "🐕"
	case strings.Contains(c, "cat"):
		return "🐱"
	case strings.Contains(c, "bird"):
		return "🐦"
	case strings.Contains(c, "fish"):
		return "🐠"
	case strings.Contains(c, "rabbit"):
		return "🐰"
	}
	return "🐾"
}

// StatusEmoji returns the emoji for an adoption status.
func StatusEmoji(status petstore.Status) string {
	switch status {
	case petstore.StatusAvailable:
		return "🟢"
	case petstore.StatusPending:
		return "🟡"
	case petstore.StatusSold:
		return "🔴"
	}
	return "❓"
}

// PetList formats a list of pets under a header.
func PetList(header string, pets []petstore.Pet) string {
	if len(pets) == 0 {
		return header + "\n\n😔 No pets found."
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")

	for _, pet := range pets {
		fmt.Fprintf(&b, "%s **Pet #%d**: %s\n", PetEmoji(pet.Category.Name), pet.ID, pet.Name)
		fmt.Fprintf(&b, "   📂 Category: %s\n", pet.Category.Name)
		fmt.Fprintf(&b, "   %s Status: %s\n", StatusEmoji(pet.Status), titleCase(string(pet.Status)))
		if len(pet.Tags) > 0 {
			fmt.Fprintf(&b, "   🏷️  Tags: %s\n", joinTags(pet.Tags))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// PetDetail formats a single pet as a detail block.
func PetDetail(pet *petstore.Pet) string {
	emoji := PetEmoji(pet.Category.Name)

	var b strings.Builder
	fmt.Fprintf(&b, "%s **Pet Details** %s\n\n", emoji, emoji)
	fmt.Fprintf(&b, "🆔 ID: %d\n", pet.ID)
	fmt.Fprintf(&b, "📛 Name: %s\n", pet.Name)
	fmt.Fprintf(&b, "📂 Category: %s\n", pet.Category.Name)
	fmt.Fprintf(&b, "%s Status: %s\n", StatusEmoji(pet.Status), titleCase(string(pet.Status)))
	if len(pet.Tags) > 0 {
		fmt.Fprintf(&b, "🏷️  Tags: %s\n", joinTags(pet.Tags))
	}
	if len(pet.PhotoURLs) > 0 {
		fmt.Fprintf(&b, "📸 Photos: %d available\n", len(pet.PhotoURLs))
	}

	return strings.TrimRight(b.String(), "\n")
}

// Help answers prompts that matched no query intent.
func Help(prompt string) string {
	return fmt.Sprintf(`🐕 Welcome to our Pet Store! 🐱

I can help you with:
• 📋 List all pets: "Show me all pets"
• 🔍 Find a specific pet: "Show me pet with ID 123"
• 🟢 Available pets: "What pets are available?"
• 🟡 Pending adoptions: "Which pets are pending?"
• 🔴 Sold pets: "What pets have been sold?"
• 🐕 Dogs: "List available dogs"
• 🐱 Cats: "What cats do you have?"

Your request: %q
Try rephrasing your question using one of the examples above! 😊`, prompt)
}

// MissingID asks for a pet ID when a by-id prompt contained no number.
func MissingID() string {
	return "🤔 I couldn't find a valid pet ID in your request. Please specify a pet ID number."
}

// Banner returns the demo opening banner.
func Banner(baseURL string, offline bool) string {
	var b strings.Builder
	b.WriteString(bannerStyle.Render("🏪 Welcome to the Pet Store Demo! 🏪"))
	b.WriteString("\n")
	b.WriteString(dividerStyle.Render(strings.Repeat("=", 50)))
	b.WriteString("\n\n")
	b.WriteString("🤖 This demo routes predefined prompts through a keyword matcher.\n")
	if offline {
		b.WriteString("📊 Running in OFFLINE MODE with fixture data\n")
	} else {
		b.WriteString("🔗 Target pet store API: " + baseURL + "\n")
	}
	return b.String()
}

// PromptHeader labels prompt i of n in the demo run.
func PromptHeader(i, n int, prompt string) string {
	label := fmt.Sprintf("📝 Prompt %d/%d: %s", i, n, prompt)
	return promptStyle.Render(label) + "\n" + dividerStyle.Render(strings.Repeat("-", 60))
}

// Divider separates responses in the demo run.
func Divider() string {
	return dividerStyle.Render(strings.Repeat("=", 80))
}

// Summary returns the demo closing line.
func Summary() string {
	return summaryStyle.Render("✅ Demo completed! Thank you for visiting the pet store! 🎉")
}

func joinTags(tags []petstore.Tag) string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return strings.Join(names, ", ")
}

// titleCase upper-cases the first letter only, matching the store's status
// display convention.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
