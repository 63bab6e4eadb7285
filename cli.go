package main

import (
	"bufio"
	"fmt"
	"os"
	"slices"
	"strings"

	"go-hangman/internal/game"
	"go-hangman/internal/session"
)

// runCli plays rounds through a plain stdin/stdout loop. Intended for
// terminals where the TUI is unwanted (pipes, dumb terminals, manual
// testing).
func runCli(sess *session.Session) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("Welcome to Hangman (CLI)!")
	fmt.Printf("Category: %s | Bonus letters: %s\n", sess.Category, game.AutoRevealLetters)

	for {
		g := sess.Game

		for !sess.RoundOver() {
			fmt.Printf("\nWord: %s\n", g.MaskedWord())
			fmt.Printf("Lives: %d/%d | Used: %s\n", g.Remaining(), g.MaxAttempts, usedLetterList(g))
			fmt.Print("Guess a letter (? for a hint): ")

			if !scanner.Scan() {
				return
			}
			input := strings.TrimSpace(scanner.Text())

			if input == "?" {
				if r, ok := sess.Hint(); ok {
					fmt.Printf("Hint revealed %q at a cost of %d lives.\n", string(r), game.HintCost)
				} else {
					fmt.Println("No hint available: not enough lives or nothing left to reveal.")
				}
				continue
			}

			sess.Guess(input)
		}

		// Win before loss when both hold.
		if g.IsWon() {
			fmt.Printf("\nYou won! The word was: %s\n", g.SecretWord)
		} else {
			fmt.Printf("\nYou lost! The word was: %s\n", g.SecretWord)
		}
		fmt.Printf("Score: %d (%d won / %d lost)\n", sess.Score.CurrentScore, sess.Score.Wins, sess.Score.Losses)

		fmt.Print("\nPlay again? [y/N] ")
		if !scanner.Scan() {
			return
		}
		if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(scanner.Text())), "y") {
			return
		}
		if err := sess.NewRound(sess.Category); err != nil {
			fmt.Fprintf(os.Stderr, "Error starting new round: %v\n", err)
			return
		}
	}
}

func usedLetterList(g *game.Game) string {
	letters := make([]rune, 0, len(g.UsedLetters))
	for r := range g.UsedLetters {
		letters = append(letters, r)
	}
	slices.Sort(letters)

	var b strings.Builder
	for i, r := range letters {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
