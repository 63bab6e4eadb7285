package main

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"go-hangman/internal/game"
	"go-hangman/internal/session"
	"go-hangman/internal/words"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	redStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // Red for losses and absent letters
	greenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // Green for wins and present letters
	scoreStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // Color for the status line
	gallowsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")) // Cyan gallows
	bannerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	wordStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type keyMap struct {
	Hint     key.Binding
	NewRound key.Binding
	Category key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Hint, k.Category, k.NewRound, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Hint, k.Category}, {k.NewRound, k.Quit}}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Hint: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", fmt.Sprintf("hint (-%d lives)", game.HintCost)),
		),
		NewRound: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "new round"),
		),
		Category: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next category"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

type LocalState struct {
	Session *session.Session
	Keys    keyMap
	Help    help.Model
	Err     error
}

func initialModel(sess *session.Session) *LocalState {
	return &LocalState{
		Session: sess,
		Keys:    defaultKeyMap(),
		Help:    help.New(),
	}
}

func (s *LocalState) Init() tea.Cmd {
	return nil
}

func (s *LocalState) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.Help.Width = msg.Width

	case tea.KeyMsg:
		s.Err = nil

		switch {
		case key.Matches(msg, s.Keys.Quit):
			return s, tea.Quit

		case key.Matches(msg, s.Keys.Hint):
			s.Session.Hint()

		case key.Matches(msg, s.Keys.Category):
			s.Err = s.Session.NewRound(s.Session.NextCategory())

		case key.Matches(msg, s.Keys.NewRound):
			if s.Session.RoundOver() {
				s.Err = s.Session.NewRound(s.Session.Category)
			}

		default:
			// Single printable keys are letter guesses. The session
			// rejects them once the round is decided.
			ch := msg.String()
			if len([]rune(ch)) == 1 {
				s.Session.Guess(ch)
			}
		}
	}

	return s, nil
}

// gallows renders the stick figure, one body part per wrong guess in the
// classic order: head, body, left arm, right arm, left leg, right leg.
func gallows(wrong int) string {
	parts := []string{" ", " ", " ", " ", " ", " "}
	figures := []string{"O", "|", "/", "\\", "/", "\\"}
	for i := 0; i < wrong && i < len(parts); i++ {
		parts[i] = figures[i]
	}

	head, body := parts[0], parts[1]
	leftArm, rightArm := parts[2], parts[3]
	leftLeg, rightLeg := parts[4], parts[5]

	return fmt.Sprintf(`  +---+
  |   |
  %s   |
 %s%s%s  |
 %s %s  |
      |
=========`, head, leftArm, body, rightArm, leftLeg, rightLeg)
}

// bonusLetters formats the auto-reveal set the way the banner shows it,
// sorted and uppercased.
func bonusLetters() string {
	letters := []rune(game.AutoRevealLetters)
	slices.Sort(letters)
	parts := make([]string, len(letters))
	for i, r := range letters {
		parts[i] = strings.ToUpper(string(r))
	}
	return strings.Join(parts, " ")
}

func (s *LocalState) letterRow() string {
	g := s.Session.Game
	var b strings.Builder
	for r := 'a'; r <= 'z'; r++ {
		style := dimStyle
		if g.UsedLetters[r] {
			if strings.ContainsRune(g.SecretWord, r) {
				style = greenStyle
			} else {
				style = redStyle
			}
		}
		b.WriteString(style.Render(string(r)))
		if r != 'z' {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func (s *LocalState) View() string {
	g := s.Session.Game
	var b strings.Builder

	banner := fmt.Sprintf("CATEGORY: %s | BONUS: %s", strings.ToUpper(s.Session.Category), bonusLetters())
	b.WriteString(bannerStyle.Render(banner) + "\n\n")

	b.WriteString(gallowsStyle.Render(gallows(g.WrongGuesses)) + "\n\n")

	if s.Session.RoundOver() && !g.IsWon() {
		b.WriteString(redStyle.Bold(true).Render(strings.ToUpper(strings.Join(strings.Split(g.SecretWord, ""), " "))) + "\n\n")
	} else {
		b.WriteString(wordStyle.Render(g.MaskedWord()) + "\n\n")
	}

	b.WriteString(s.letterRow() + "\n")

	statusLine := fmt.Sprintf("LIVES: %d/%d | SCORE: %d | HINTS: %d | ERRORS: %d",
		g.Remaining(), g.MaxAttempts, s.Session.Score.CurrentScore,
		s.Session.Score.HintCount, s.Session.Score.ErrorCount)
	b.WriteString(scoreStyle.Render(statusLine) + "\n")

	if r := s.Session.LastHint; r != 0 {
		b.WriteString(fmt.Sprintf("Hint revealed: %s\n", strings.ToUpper(string(r))))
	} else if s.Session.HintRefused {
		b.WriteString(dimStyle.Render("No hint: not enough lives or nothing left to reveal.") + "\n")
	}

	if s.Session.RoundOver() {
		// Win before loss: the degenerate overlap reads as a win.
		if g.IsWon() {
			b.WriteString("\n" + greenStyle.Render(fmt.Sprintf("You won! The word was %q.", g.SecretWord)) + "\n")
		} else {
			b.WriteString("\n" + redStyle.Render(fmt.Sprintf("You lost! The word was %q.", g.SecretWord)) + "\n")
		}
	}

	if s.Err != nil {
		b.WriteString("\n" + redStyle.Render(fmt.Sprintf("Error: %v", s.Err)) + "\n")
	}

	b.WriteString("\n" + s.Help.View(s.Keys))
	return b.String()
}

type strictIntFlag int

func (i *strictIntFlag) String() string {
	return fmt.Sprint(int(*i))
}

func (i *strictIntFlag) Set(s string) error {
	if s == "true" {
		return fmt.Errorf("value required (format: -flag=value)")
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*i = strictIntFlag(v)
	return nil
}

func (i *strictIntFlag) IsBoolFlag() bool { return true }

func main() {
	var cliMode bool
	var listCategories bool
	var category string
	var attempts strictIntFlag = game.DefaultMaxAttempts

	flag.BoolVar(&cliMode, "cli", false, "Play in the plain read-print loop instead of the TUI")

	flag.Var(&attempts, "attempts", "Wrong-guess budget per round")
	flag.Var(&attempts, "a", "Wrong-guess budget per round (shorthand)")

	flag.StringVar(&category, "category", words.DefaultCategory, "Starting word category")
	flag.StringVar(&category, "c", words.DefaultCategory, "Starting word category (shorthand)")

	flag.BoolVar(&listCategories, "list-categories", false, "List available categories and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [word-list files or dirs...]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nExtra word-list files become categories named after the file,\none word per line ('#' starts a comment).\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		fmt.Fprintf(os.Stderr, "   -a, --attempts=N        Wrong-guess budget per round (default %d)\n", game.DefaultMaxAttempts)
		fmt.Fprintf(os.Stderr, "   -c, --category=NAME     Starting word category (default %q)\n", words.DefaultCategory)
		fmt.Fprintf(os.Stderr, "       --cli               Play in the plain read-print loop\n")
		fmt.Fprintf(os.Stderr, "       --list-categories   List available categories and exit\n")
		fmt.Fprintf(os.Stderr, "   -h, --help              Show this help message\n")
	}

	flag.Parse()

	bank := words.NewBank()
	if err := bank.LoadPaths(flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading word lists: %v\n", err)
		os.Exit(1)
	}

	if listCategories {
		for _, c := range bank.Categories() {
			fmt.Println(c)
		}
		return
	}

	factory := func(secretWord string) *game.Game {
		return game.New(secretWord, int(attempts))
	}

	sess, err := session.NewSession(bank, category, factory)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting game: %v\n", err)
		os.Exit(1)
	}

	if cliMode {
		runCli(sess)
		return
	}

	p := tea.NewProgram(initialModel(sess))
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error starting the program: %v\n", err)
	}
}
