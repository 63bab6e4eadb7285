package session

import (
	"context"
	"strings"

	"go-hangman/internal/game"
	"go-hangman/internal/scoring"
	"go-hangman/internal/words"

	"github.com/looplab/fsm"
)

// GameFactory turns a secret word into a fresh round. Keeping construction
// behind a function value lets the owner decide the budget (or substitute a
// doctored engine in tests) without the session knowing.
type GameFactory func(secretWord string) *game.Game

// Session owns the current round and drives the guess/hint/evaluate flow
// through a state machine. It replaces the round wholesale on deal; the
// engine itself never learns about rounds beyond Reset.
//
// The session is also where input stops once a round is decided: guess and
// hint events are only legal in the playing state, so the engine's
// permissive post-finish behavior is never reachable through here.
type Session struct {
	Bank     *words.Bank
	Game     *game.Game
	Category string
	Score    *scoring.Scoring

	// Feedback from the most recent action, for the surfaces.
	LastGuess        rune
	LastGuessCorrect bool
	LastHint         rune
	HintRefused      bool

	newGame GameFactory
	fsm     *fsm.FSM
}

// NewSession creates a session over the bank and deals the first round from
// the given category. A nil factory builds rounds with the default budget.
func NewSession(bank *words.Bank, category string, factory GameFactory) (*Session, error) {
	if factory == nil {
		factory = func(secretWord string) *game.Game {
			return game.New(secretWord, game.DefaultMaxAttempts)
		}
	}

	s := &Session{
		Bank:    bank,
		Score:   scoring.New(),
		newGame: factory,
	}
	s.fsm = fsm.NewFSM(
		"start",
		getSessionTransitions(),
		getSessionCallbacks(s),
	)

	if err := s.NewRound(category); err != nil {
		return nil, err
	}
	return s, nil
}

// NewRound draws a word from the category and replaces the current round.
// Legal at any time, including mid-round (changing category restarts).
func (s *Session) NewRound(category string) error {
	word, err := s.Bank.RandomWord(category)
	if err != nil {
		return err
	}
	s.Category = category
	_ = s.fsm.Event(context.Background(), "deal", word)
	return nil
}

// Guess feeds one letter into the round. Reports whether the guess revealed
// something. No-op once the round is over.
func (s *Session) Guess(letter string) bool {
	s.LastGuess, s.LastGuessCorrect = 0, false
	s.LastHint, s.HintRefused = 0, false
	_ = s.fsm.Event(context.Background(), "guess", letter)
	return s.LastGuessCorrect
}

// Hint asks the round for a paid hint. Reports the revealed letter, or
// false when the hint was refused (or the round is over).
func (s *Session) Hint() (rune, bool) {
	s.LastHint, s.HintRefused = 0, true
	_ = s.fsm.Event(context.Background(), "hint")
	return s.LastHint, !s.HintRefused
}

// RoundOver reports whether the current round has been decided and tallied.
func (s *Session) RoundOver() bool {
	return s.fsm.Current() == "roundOver"
}

// NextCategory returns the category after the current one, wrapping around.
func (s *Session) NextCategory() string {
	cats := s.Bank.Categories()
	for i, c := range cats {
		if c == s.Category {
			return cats[(i+1)%len(cats)]
		}
	}
	return words.DefaultCategory
}

func getSessionTransitions() []fsm.EventDesc {
	return fsm.Events{
		{Name: "deal", Src: []string{"start", "playing", "roundOver"}, Dst: "dealing"},
		{Name: "dealt", Src: []string{"dealing"}, Dst: "playing"},

		{Name: "guess", Src: []string{"playing"}, Dst: "checkingGuess"},
		{Name: "hint", Src: []string{"playing"}, Dst: "revealingHint"},
		{Name: "checked", Src: []string{"checkingGuess", "revealingHint"}, Dst: "evaluating"},

		{Name: "wait", Src: []string{"evaluating"}, Dst: "playing"},
		// roundEnd fires from playing too: a dealt word the bonus letters
		// fully cover is decided before any input arrives.
		{Name: "roundEnd", Src: []string{"evaluating", "playing"}, Dst: "roundOver"},
	}
}

func getSessionCallbacks(s *Session) map[string]fsm.Callback {
	return fsm.Callbacks{
		"enter_dealing": func(ctx context.Context, e *fsm.Event) {
			word := e.Args[0].(string)
			s.Game = s.newGame(word)
			s.LastGuess, s.LastGuessCorrect = 0, false
			s.LastHint, s.HintRefused = 0, false
			e.FSM.Event(ctx, "dealt")
		},
		"enter_playing": func(ctx context.Context, e *fsm.Event) {
			if s.Game.IsFinished() {
				e.FSM.Event(ctx, "roundEnd")
			}
		},
		"enter_checkingGuess": func(ctx context.Context, e *fsm.Event) {
			letter := e.Args[0].(string)
			prevWrong := s.Game.WrongGuesses

			s.LastGuessCorrect = s.Game.Guess(letter)
			if runes := []rune(strings.ToLower(letter)); len(runes) == 1 {
				s.LastGuess = runes[0]
			}
			if s.Game.WrongGuesses > prevWrong {
				s.Score.ScoreEvent("wrongLetter")
			}

			e.FSM.Event(ctx, "checked")
		},
		"enter_revealingHint": func(ctx context.Context, e *fsm.Event) {
			r, ok := s.Game.Hint()
			s.LastHint, s.HintRefused = r, !ok
			if ok {
				s.Score.ScoreEvent("hint")
			}
			e.FSM.Event(ctx, "checked")
		},
		"enter_evaluating": func(ctx context.Context, e *fsm.Event) {
			if s.Game.IsFinished() {
				e.FSM.Event(ctx, "roundEnd")
				return
			}
			e.FSM.Event(ctx, "wait")
		},
		"enter_roundOver": func(ctx context.Context, e *fsm.Event) {
			// Win before loss: with a degenerate budget both can hold,
			// and the win reading is the one the player sees.
			if s.Game.IsWon() {
				s.Score.ScoreEvent("win")
				s.Score.AddWinBonus(s.Game.Remaining(), len(s.Game.SecretWord))
			} else {
				s.Score.ScoreEvent("loss")
			}
		},
	}
}
