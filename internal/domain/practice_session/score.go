package practicesession

import "math"

// Score tracks a session's correct answers and streaks.
type Score struct {
	Correct       int
	CurrentStreak int // consecutive correct answers since the last miss
	BestStreak    int // highest CurrentStreak seen this session
}

// Record counts one answer. Streaks are only maintained when trackStreaks is set.
func (s *Score) Record(correct bool, trackStreaks bool) {
	if !correct {
		if trackStreaks {
			s.CurrentStreak = 0
		}
		return
	}

	s.Correct++
	if trackStreaks {
		s.CurrentStreak++
		s.BestStreak = max(s.BestStreak, s.CurrentStreak)
	}
}

// Percentage returns Correct/total*100 rounded to the nearest whole percent.
func (s Score) Percentage(total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(s.Correct) * 100 / float64(total)))
}
