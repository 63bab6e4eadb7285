package words

import (
	"fmt"
	"math/rand"
)

// DefaultCategory is the category used when a caller asks for one the bank
// doesn't know.
const DefaultCategory = "general"

// Bank manages categories of secret words. Category order is stable: the
// built-in categories first (default leading), then loaded ones in the
// order they were added.
type Bank struct {
	order      []string
	categories map[string][]string

	// pick selects an index in [0, n) when drawing a random word.
	// Replaceable so tests can pin the outcome.
	pick func(n int) int
}

// NewBank creates a bank pre-seeded with the built-in categories.
func NewBank() *Bank {
	b := &Bank{
		categories: make(map[string][]string),
		pick:       rand.Intn,
	}
	b.AddCategory(DefaultCategory, []string{"gopher", "hangman", "developer", "keyboard"})
	b.AddCategory("animals", []string{"elephant", "giraffe", "kangaroo", "alligator"})
	b.AddCategory("fruits", []string{"banana", "strawberry", "pineapple", "watermelon"})
	return b
}

// AddCategory registers words under a category name, appending to the
// category if it already exists.
func (b *Bank) AddCategory(name string, words []string) {
	if _, ok := b.categories[name]; !ok {
		b.order = append(b.order, name)
	}
	b.categories[name] = append(b.categories[name], words...)
}

// Categories returns the category names in their stable order.
func (b *Bank) Categories() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Words returns the word list for a category. An unknown category silently
// falls back to the default one.
func (b *Bank) Words(category string) []string {
	if _, ok := b.categories[category]; !ok {
		category = DefaultCategory
	}
	return b.categories[category]
}

// RandomWord draws one word from the category (after the unknown-category
// fallback). An empty resolved list is a configuration error and is
// reported with the offending category name.
func (b *Bank) RandomWord(category string) (string, error) {
	if _, ok := b.categories[category]; !ok {
		category = DefaultCategory
	}
	words := b.categories[category]
	if len(words) == 0 {
		return "", fmt.Errorf("no words available for category %q", category)
	}
	return words[b.pick(len(words))], nil
}
