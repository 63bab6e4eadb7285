package game

import (
	"math/rand"
	"slices"
	"strings"
	"unicode"
)

const (
	// DefaultMaxAttempts is the wrong-guess budget used when the caller
	// doesn't ask for a specific one.
	DefaultMaxAttempts = 6

	// HintCost is how many wrong-guess-equivalents a hint debits.
	HintCost = 2

	// AutoRevealLetters are granted for free at the start of every round,
	// whether or not they occur in the secret word.
	AutoRevealLetters = "rstlne"
)

// Game holds the state of a single Hangman round: the secret word, the set
// of letters already revealed or consumed, and the wrong-guess counter.
// Won/lost are recomputed from that state on every query; there is no
// stored "finished" flag. One instance per round; callers replace it
// wholesale when a new round starts.
type Game struct {
	SecretWord   string
	MaxAttempts  int
	UsedLetters  map[rune]bool
	WrongGuesses int

	// pick selects an index in [0, n) for hint letters. Replaceable so
	// tests can pin the outcome.
	pick func(n int) int
}

// New creates a round for secretWord with the given wrong-guess budget.
// The budget is stored as given; zero or negative values are legal and
// simply make the round unwinnable by guessing.
func New(secretWord string, maxAttempts int) *Game {
	g := &Game{
		MaxAttempts: maxAttempts,
		pick:        rand.Intn,
	}
	g.Reset(secretWord)
	return g
}

// Reset re-seeds the round with a new secret word, clears the used-letter
// set, zeroes the wrong-guess counter and re-applies the auto-reveal bonus.
// Identical to constructing a fresh round with the same budget.
func (g *Game) Reset(newSecretWord string) {
	g.SecretWord = strings.ToLower(newSecretWord)
	g.UsedLetters = make(map[rune]bool)
	g.WrongGuesses = 0
	for _, r := range AutoRevealLetters {
		g.UsedLetters[r] = true
	}
}

// MaskedWord renders the secret word with unrevealed characters replaced
// by underscores, space-separated, e.g. "_ _ n _ _ _ n".
func (g *Game) MaskedWord() string {
	parts := make([]string, 0, len(g.SecretWord))
	for _, r := range g.SecretWord {
		if g.UsedLetters[r] {
			parts = append(parts, string(r))
		} else {
			parts = append(parts, "_")
		}
	}
	return strings.Join(parts, " ")
}

// Guess processes a single letter guess. It reports true only for a valid,
// new letter that occurs in the secret word. Invalid input and repeated
// letters are no-ops: they return false without touching any state, so a
// duplicate never costs a second attempt. A valid new letter that is absent
// from the word costs one attempt.
func (g *Game) Guess(letter string) bool {
	runes := []rune(strings.ToLower(letter))
	if len(runes) != 1 || !unicode.IsLetter(runes[0]) {
		return false
	}
	r := runes[0]
	if g.UsedLetters[r] {
		return false
	}

	g.UsedLetters[r] = true
	if !strings.ContainsRune(g.SecretWord, r) {
		g.WrongGuesses++
		return false
	}
	return true
}

// Hint reveals one random unguessed letter of the secret word at a cost of
// HintCost attempts. The revealed letter is always correct, but the cost is
// charged anyway. It reports false without mutating anything when the
// remaining budget cannot cover the cost, or when no letters are left to
// reveal.
func (g *Game) Hint() (rune, bool) {
	if g.MaxAttempts-g.WrongGuesses < HintCost {
		return 0, false
	}

	unguessed := g.unguessedLetters()
	if len(unguessed) == 0 {
		return 0, false
	}

	r := unguessed[g.pick(len(unguessed))]
	g.UsedLetters[r] = true
	g.WrongGuesses += HintCost
	return r, true
}

// unguessedLetters returns the distinct alphabetic characters of the secret
// word not yet in the used set, sorted so the pick function sees a stable
// order.
func (g *Game) unguessedLetters() []rune {
	seen := make(map[rune]bool)
	var letters []rune
	for _, r := range g.SecretWord {
		if unicode.IsLetter(r) && !g.UsedLetters[r] && !seen[r] {
			seen[r] = true
			letters = append(letters, r)
		}
	}
	slices.Sort(letters)
	return letters
}

// IsWon reports whether every alphabetic character of the secret word has
// been revealed.
func (g *Game) IsWon() bool {
	for _, r := range g.SecretWord {
		if unicode.IsLetter(r) && !g.UsedLetters[r] {
			return false
		}
	}
	return true
}

// IsLost reports whether the wrong-guess budget is exhausted.
//
// IsWon and IsLost are evaluated independently; with a degenerate budget
// (say 0) a word fully covered by the auto-reveal bonus satisfies both.
// The engine reports both truthfully and leaves the precedence to callers,
// which by convention check win first.
func (g *Game) IsLost() bool {
	return g.WrongGuesses >= g.MaxAttempts
}

// IsFinished reports whether the round is over, won or lost. The engine
// does not lock itself afterwards: Guess and Hint keep working, and it is
// the caller's job to stop feeding input once this returns true.
func (g *Game) IsFinished() bool {
	return g.IsWon() || g.IsLost()
}

// Remaining returns the attempts left before the round is lost.
func (g *Game) Remaining() int {
	return g.MaxAttempts - g.WrongGuesses
}
