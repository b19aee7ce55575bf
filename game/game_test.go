package game

import (
	"reflect"
	"testing"
)

var allMoves = []Move{Rock, Paper, Scissors, Lizard, Spock}

func TestBeatsIsATournament(t *testing.T) {
	for _, a := range allMoves {
		if Beats(a, a) {
			t.Errorf("%s beats itself", a)
		}

		outgoing := 0

		for _, b := range allMoves {
			if a == b {
				continue
			}

			forward := Beats(a, b)
			backward := Beats(b, a)

			if forward == backward {
				t.Errorf("%s vs %s: exactly one direction must win (got forward=%v backward=%v)",
					a, b, forward, backward)
			}

			if forward {
				outgoing++
			}
		}

		if outgoing != 2 {
			t.Errorf("%s beats %d moves, want 2", a, outgoing)
		}
	}
}

func TestBeatsIgnoresUnset(t *testing.T) {
	for _, m := range allMoves {
		if Beats(Unset, m) {
			t.Errorf("Unset beats %s", m)
		}

		if Beats(m, Unset) {
			t.Errorf("%s beats Unset", m)
		}
	}
}

func TestBeatsClassicalPairs(t *testing.T) {
	wins := []struct {
		winner, loser Move
	}{
		{Scissors, Paper},
		{Paper, Rock},
		{Rock, Lizard},
		{Lizard, Spock},
		{Spock, Scissors},
		{Scissors, Lizard},
		{Lizard, Paper},
		{Paper, Spock},
		{Spock, Rock},
		{Rock, Scissors},
	}

	for _, w := range wins {
		if !Beats(w.winner, w.loser) {
			t.Errorf("%s should beat %s", w.winner, w.loser)
		}

		if Beats(w.loser, w.winner) {
			t.Errorf("%s should not beat %s", w.loser, w.winner)
		}
	}
}

func TestWinners(t *testing.T) {
	cases := []struct {
		name  string
		moves []Move
		want  []int
	}{
		{"empty round", []Move{}, []int{}},
		{"single seat never wins", []Move{Rock}, []int{}},
		{"two-player classic", []Move{Rock, Scissors}, []int{0}},
		{"two-player reversed", []Move{Scissors, Rock}, []int{1}},
		{"two-player tie", []Move{Spock, Spock}, []int{}},
		{"uniform three-way tie", []Move{Lizard, Lizard, Lizard}, []int{}},
		{"cyclic standoff", []Move{Rock, Paper, Scissors}, []int{}},
		{"shared dominant move", []Move{Rock, Rock, Scissors}, []int{0, 1}},
		{"lone dominant move", []Move{Paper, Rock, Rock}, []int{0}},
		{"spock over the classics", []Move{Spock, Rock, Scissors}, []int{0}},
		{"lizard poisons spock", []Move{Lizard, Spock, Spock}, []int{0}},
		{"four seats two camps", []Move{Paper, Spock, Paper, Spock}, []int{0, 2}},
		{"unset seats excluded", []Move{Rock, Unset, Scissors}, []int{0}},
		{"lone committed move beats nobody", []Move{Unset, Lizard, Unset}, []int{}},
		{"all unset", []Move{Unset, Unset}, []int{}},
		{"seven seats", []Move{Rock, Rock, Lizard, Lizard, Rock, Lizard, Rock}, []int{0, 1, 4, 6}},
		{"unbeaten but winless among unset", []Move{Spock, Spock, Unset, Unset}, []int{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Winners(c.moves)

			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("Winners(%v) = %v, want %v", c.moves, got, c.want)
			}
		})
	}
}

func TestWinnersDoesNotMutateInput(t *testing.T) {
	moves := []Move{Rock, Paper, Unset, Spock}
	before := append([]Move(nil), moves...)

	Winners(moves)
	Winners(moves)

	if !reflect.DeepEqual(moves, before) {
		t.Errorf("input mutated: %v, want %v", moves, before)
	}
}

func TestWinnersIsPure(t *testing.T) {
	moves := []Move{Paper, Rock, Spock, Rock}

	first := Winners(moves)
	second := Winners(moves)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated calls disagree: %v then %v", first, second)
	}
}

func TestMoveString(t *testing.T) {
	names := map[Move]string{
		Rock:     "Rock",
		Paper:    "Paper",
		Scissors: "Scissors",
		Lizard:   "Lizard",
		Spock:    "Spock",
		Unset:    "Invalid",
		Move(99): "Invalid",
	}

	for m, want := range names {
		if got := m.String(); got != want {
			t.Errorf("Move(%d).String() = %q, want %q", int(m), got, want)
		}
	}
}
