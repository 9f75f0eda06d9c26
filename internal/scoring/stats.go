package scoring

// Stats aggregates round totals for the lifetime of a session.
type Stats struct {
	GamesPlayed int
	HighScore   int
	TotalScore  int
}

// Record returns s with one more game of the given total folded in.
func (s Stats) Record(total int) Stats {
	s.GamesPlayed++
	s.TotalScore += total
	if total > s.HighScore {
		s.HighScore = total
	}
	return s
}

// Average returns TotalScore / GamesPlayed. ok is false before the first game.
func (s Stats) Average() (avg float64, ok bool) {
	if s.GamesPlayed == 0 {
		return 0, false
	}
	return float64(s.TotalScore) / float64(s.GamesPlayed), true
}
