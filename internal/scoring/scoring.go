package scoring

// Scoring tracks the running score and the event counters for one program
// run. Scores do not persist across runs.
type Scoring struct {
	CurrentScore int
	Wins         int
	Losses       int
	HintCount    int
	ErrorCount   int
}

// New creates a zeroed score tracker.
func New() *Scoring {
	return &Scoring{}
}

// ScoreEvent updates the counters for a game event.
func (s *Scoring) ScoreEvent(event string) {
	switch event {
	case "hint":
		s.HintCount++
	case "wrongLetter":
		s.ErrorCount++
	case "win":
		s.Wins++
	case "loss":
		s.Losses++
	}
}

// AddWinBonus awards the points for a won round: one point per letter of
// the word for every attempt still in the bank. Returns the bonus awarded.
func (s *Scoring) AddWinBonus(remainingAttempts, wordLength int) int {
	bonus := remainingAttempts * wordLength
	if bonus < 0 {
		bonus = 0
	}
	s.CurrentScore += bonus
	return bonus
}
