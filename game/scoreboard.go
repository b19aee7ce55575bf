package game

// Scoreboard tracks cumulative round wins per seat. It is not
// goroutine-safe; the session coordinator is its only writer.
type Scoreboard struct {
	wins []int
}

func NewScoreboard(seats int) *Scoreboard {
	return &Scoreboard{
		wins: make([]int, seats),
	}
}

// Add credits one win to the given seat.
func (s *Scoreboard) Add(seat int) {
	s.wins[seat]++
}

// Reset zeroes every score, preserving seat count.
func (s *Scoreboard) Reset() {
	for i := range s.wins {
		s.wins[i] = 0
	}
}

// Snapshot returns a copy of the current scores, indexed by seat.
func (s *Scoreboard) Snapshot() []int {
	return append([]int(nil), s.wins...)
}
