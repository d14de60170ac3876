package agent

// DemoPrompts returns the fixed ordered prompt list the demo runs through.
func DemoPrompts() []string {
	return []string{
		"Show me all pets in the store",
		"What pets are available for adoption?",
		"Find me pet with ID 1",
		"Which pets are currently pending adoption?",
		"Show me all sold pets",
		"Tell me about pet number 42",
		"List available dogs",
		"What cats do you have?",
	}
}
