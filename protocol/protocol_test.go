package protocol

import (
	"reflect"
	"testing"

	"github.com/Seednode/spockbox/game"
)

func TestParseCommand(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want Command
	}{
		{"rock", "MOVE:R", Command{Kind: CommandMove, Move: game.Rock}},
		{"lowercase letter", "MOVE:p", Command{Kind: CommandMove, Move: game.Paper}},
		{"spock", "MOVE:K", Command{Kind: CommandMove, Move: game.Spock}},
		{"lizard with newline", "MOVE:L\n", Command{Kind: CommandMove, Move: game.Lizard}},
		{"scissors with crlf", "MOVE:s\r\n", Command{Kind: CommandMove, Move: game.Scissors}},
		{"trailing spaces", "MOVE:R  \t", Command{Kind: CommandMove, Move: game.Rock}},
		{"quit", "QUIT", Command{Kind: CommandQuit}},
		{"quit with suffix", "QUIT now please", Command{Kind: CommandQuit}},
		{"reset", "RESET", Command{Kind: CommandReset}},
		{"reset with suffix", "RESETALL", Command{Kind: CommandReset}},
		{"empty move", "MOVE:", Command{}},
		{"unknown letter", "MOVE:X", Command{}},
		{"two letters", "MOVE:RP", Command{}},
		{"letter with suffix", "MOVE:R extra", Command{}},
		{"lowercase token", "move:r", Command{}},
		{"leading space", " MOVE:R", Command{}},
		{"empty message", "", Command{}},
		{"whitespace only", "\r\n", Command{}},
		{"garbage", "hello there", Command{}},
		{"result is not a command", "RESULT:1:Rock,Paper:1,0", Command{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ParseCommand([]byte(c.raw)); got != c.want {
				t.Errorf("ParseCommand(%q) = %+v, want %+v", c.raw, got, c.want)
			}
		})
	}
}

func TestParseEvent(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want Event
	}{
		{"result", "RESULT:1,2:Rock,Rock,Scissors:1,1,0", Event{Kind: EventResult, Payload: "1,2:Rock,Rock,Scissors:1,1,0"}},
		{"tied result", "RESULT::Rock,Paper,Scissors:0,0,0", Event{Kind: EventResult, Payload: ":Rock,Paper,Scissors:0,0,0"}},
		{"reset", "RESET", Event{Kind: EventReset}},
		{"quit", "QUIT\n", Event{Kind: EventQuit}},
		{"info", "INFO:Starting Round 2. Score P1:0 P2:1", Event{Kind: EventInfo, Payload: "Starting Round 2. Score P1:0 P2:1"}},
		{"unknown", "howdy", Event{Kind: EventUnknown, Payload: "howdy"}},
		{"trailing newline trimmed", "RESULT:1:Rock,Scissors:1,0\n", Event{Kind: EventResult, Payload: "1:Rock,Scissors:1,0"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ParseEvent([]byte(c.raw)); got != c.want {
				t.Errorf("ParseEvent(%q) = %+v, want %+v", c.raw, got, c.want)
			}
		})
	}
}

func TestFormatResult(t *testing.T) {
	cases := []struct {
		name    string
		winners []int
		moves   []game.Move
		scores  []int
		want    string
	}{
		{
			"three-way tie",
			[]int{},
			[]game.Move{game.Rock, game.Paper, game.Scissors},
			[]int{0, 0, 0},
			"RESULT::Rock,Paper,Scissors:0,0,0",
		},
		{
			"shared win",
			[]int{0, 1},
			[]game.Move{game.Rock, game.Rock, game.Scissors},
			[]int{1, 1, 0},
			"RESULT:1,2:Rock,Rock,Scissors:1,1,0",
		},
		{
			"two players",
			[]int{1},
			[]game.Move{game.Lizard, game.Rock},
			[]int{0, 3},
			"RESULT:2:Lizard,Rock:0,3",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := string(FormatResult(c.winners, c.moves, c.scores)); got != c.want {
				t.Errorf("FormatResult() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestParseResult(t *testing.T) {
	got, err := ParseResult("1,3:Rock,Paper,Rock:2,0,1")
	if err != nil {
		t.Fatalf("ParseResult: %v", err)
	}

	want := Result{
		Winners: []int{0, 2},
		Moves:   []string{"Rock", "Paper", "Rock"},
		Scores:  []int{2, 0, 1},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseResult = %+v, want %+v", got, want)
	}
}

func TestParseResultTie(t *testing.T) {
	got, err := ParseResult(":Spock,Spock:0,0")
	if err != nil {
		t.Fatalf("ParseResult: %v", err)
	}

	if len(got.Winners) != 0 {
		t.Errorf("tie should have no winners, got %v", got.Winners)
	}

	if !reflect.DeepEqual(got.Scores, []int{0, 0}) {
		t.Errorf("Scores = %v, want [0 0]", got.Scores)
	}
}

func TestParseResultMalformed(t *testing.T) {
	for _, payload := range []string{"", "nope", "1:Rock", "x:Rock:0", "1:Rock:y", "1:Rock:0:extra"} {
		if _, err := ParseResult(payload); err == nil {
			t.Errorf("ParseResult(%q) should fail", payload)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	winners := []int{1}
	moves := []game.Move{game.Scissors, game.Spock}
	scores := []int{0, 1}

	ev := ParseEvent(FormatResult(winners, moves, scores))
	if ev.Kind != EventResult {
		t.Fatalf("event kind = %d, want EventResult", ev.Kind)
	}

	res, err := ParseResult(ev.Payload)
	if err != nil {
		t.Fatalf("ParseResult: %v", err)
	}

	if !reflect.DeepEqual(res.Winners, winners) {
		t.Errorf("Winners = %v, want %v", res.Winners, winners)
	}

	if !reflect.DeepEqual(res.Moves, []string{"Scissors", "Spock"}) {
		t.Errorf("Moves = %v, want [Scissors Spock]", res.Moves)
	}

	if !reflect.DeepEqual(res.Scores, scores) {
		t.Errorf("Scores = %v, want %v", res.Scores, scores)
	}
}

func TestFormatMove(t *testing.T) {
	if got := string(FormatMove('r')); got != "MOVE:R" {
		t.Errorf("FormatMove('r') = %q, want %q", got, "MOVE:R")
	}

	if got := string(FormatMove('K')); got != "MOVE:K" {
		t.Errorf("FormatMove('K') = %q, want %q", got, "MOVE:K")
	}
}

func TestFormatTokens(t *testing.T) {
	if got := string(FormatReset()); got != "RESET" {
		t.Errorf("FormatReset() = %q", got)
	}

	if got := string(FormatQuit()); got != "QUIT" {
		t.Errorf("FormatQuit() = %q", got)
	}

	if got := string(FormatInfo("table is full")); got != "INFO:table is full" {
		t.Errorf("FormatInfo() = %q", got)
	}
}

func TestIsMoveLetter(t *testing.T) {
	for _, r := range "RPSLKrpslk" {
		if !IsMoveLetter(r) {
			t.Errorf("IsMoveLetter(%q) = false, want true", r)
		}
	}

	for _, r := range "QTMXqtz0 ?" {
		if IsMoveLetter(r) {
			t.Errorf("IsMoveLetter(%q) = true, want false", r)
		}
	}
}
