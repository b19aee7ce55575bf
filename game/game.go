// Package game holds the rock-paper-scissors-lizard-spock rules: which
// move beats which, and who wins a round of committed moves.
package game

// Move is one slot in the pentagram. The zero value Unset marks a seat
// that has not committed a move this round.
type Move int

const (
	Unset Move = iota
	Rock
	Paper
	Scissors
	Lizard
	Spock
)

// beats lists, for each move, the two moves it defeats.
var beats = map[Move][2]Move{
	Rock:     {Scissors, Lizard},
	Paper:    {Rock, Spock},
	Scissors: {Paper, Lizard},
	Lizard:   {Spock, Paper},
	Spock:    {Scissors, Rock},
}

func (m Move) String() string {
	switch m {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	case Lizard:
		return "Lizard"
	case Spock:
		return "Spock"
	default:
		return "Invalid"
	}
}

// Beats reports whether move a defeats move b. A move never beats
// itself, and Unset neither beats nor is beaten.
func Beats(a, b Move) bool {
	pair, ok := beats[a]

	return ok && (pair[0] == b || pair[1] == b)
}

// Winners returns the seat indices holding dominant moves, in ascending
// order. A move is dominant when no other committed move beats it and it
// beats at least one other committed move. An empty result means the
// round is a tie (uniform moves, a cyclic standoff, or fewer than two
// distinct committed moves).
//
// Seats holding Unset are ignored entirely. The input is not modified.
func Winners(moves []Move) []int {
	winners := make([]int, 0, len(moves))

	for i, mine := range moves {
		if mine == Unset {
			continue
		}

		beaten := false
		beatsAny := false

		for j, theirs := range moves {
			if j == i || theirs == Unset {
				continue
			}

			if Beats(theirs, mine) {
				beaten = true

				break
			}

			if Beats(mine, theirs) {
				beatsAny = true
			}
		}

		if !beaten && beatsAny {
			winners = append(winners, i)
		}
	}

	return winners
}
