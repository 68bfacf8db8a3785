package tetris

import "time"

// Scoring and gravity tunables.
const (
	LinesPerLevel       = 10
	InitialDropInterval = 1000 * time.Millisecond
	MinDropInterval     = 100 * time.Millisecond
	DropIntervalStep    = 100 * time.Millisecond
)

// lineScores is indexed by rows cleared in a single lock.
var lineScores = [...]int{0, 100, 300, 500, 800}

// Stats holds the running score counters.
type Stats struct {
	Score int
	Lines int
	Level int
}

// LineScore returns the points for clearing n rows at once at the given level.
func LineScore(n, level int) int {
	if n <= 0 {
		return 0
	}
	if n >= len(lineScores) {
		n = len(lineScores) - 1
	}
	return lineScores[n] * level
}

// LevelFor returns the level reached after clearing lines rows in total.
func LevelFor(lines int) int {
	if lines < 0 {
		lines = 0
	}
	return lines/LinesPerLevel + 1
}

// DropIntervalFor returns the gravity period at level, floored at MinDropInterval.
func DropIntervalFor(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	return max(MinDropInterval, InitialDropInterval-time.Duration(level-1)*DropIntervalStep)
}

// award applies a lock that cleared n rows and reports whether the level rose.
func (s *Stats) award(n int) bool {
	if n <= 0 {
		return false
	}
	s.Score += LineScore(n, s.Level)
	s.Lines += n
	if level := LevelFor(s.Lines); level > s.Level {
		s.Level = level
		return true
	}
	return false
}
