package session

import "fmt"

// Summary is the notice shown after each submission.
type Summary struct {
	HighScore   int
	GamesPlayed int
	Average     float64
}

// BuildSummary captures the current session stats.
func BuildSummary(s *Session) Summary {
	st := s.Stats()
	avg, _ := st.Average()
	return Summary{
		HighScore:   st.HighScore,
		GamesPlayed: st.GamesPlayed,
		Average:     avg,
	}
}

// Lines renders the summary, one stat per line.
func (s Summary) Lines() []string {
	return []string{
		fmt.Sprintf("High Score: %d", s.HighScore),
		fmt.Sprintf("Games Played: %d", s.GamesPlayed),
		fmt.Sprintf("Average Score: %.2f", s.Average),
	}
}
