package game

import (
	"reflect"
	"testing"
)

func TestScoreboardAdd(t *testing.T) {
	s := NewScoreboard(3)

	s.Add(1)
	s.Add(1)
	s.Add(2)

	if got, want := s.Snapshot(), []int{0, 2, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("Snapshot() = %v, want %v", got, want)
	}
}

func TestScoreboardReset(t *testing.T) {
	s := NewScoreboard(4)

	s.Add(0)
	s.Add(3)
	s.Reset()

	if got, want := s.Snapshot(), []int{0, 0, 0, 0}; !reflect.DeepEqual(got, want) {
		t.Errorf("Snapshot() after Reset() = %v, want %v", got, want)
	}
}

func TestScoreboardSnapshotIsACopy(t *testing.T) {
	s := NewScoreboard(2)

	s.Add(0)

	snap := s.Snapshot()
	snap[0] = 99
	snap[1] = 99

	if got, want := s.Snapshot(), []int{1, 0}; !reflect.DeepEqual(got, want) {
		t.Errorf("mutating a snapshot leaked into the scoreboard: %v, want %v", got, want)
	}
}
