// Package protocol defines the plain-text message vocabulary spoken
// between a table and its players. Each Recv/Send carries exactly one
// message; newlines inside a message are insignificant.
//
// Player to table:
//
//	MOVE:<letter>  commit a move (R, P, S, L or K, either case)
//	RESET          zero every score and restart the current round
//	QUIT           end the session for everyone
//
// Table to player:
//
//	RESULT:<winners>:<moves>:<scores>  a resolved round (winners are
//	                                   1-based seat numbers, empty on a tie)
//	RESET                              scores were zeroed
//	QUIT                               the session is over
//	INFO:<text>                        free-form notice
package protocol

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/Seednode/spockbox/game"
)

const (
	moveToken   = "MOVE:"
	resetToken  = "RESET"
	quitToken   = "QUIT"
	resultToken = "RESULT:"
	infoToken   = "INFO:"
)

var moveLetters = map[rune]game.Move{
	'R': game.Rock,
	'P': game.Paper,
	'S': game.Scissors,
	'L': game.Lizard,
	'K': game.Spock,
}

type CommandKind int

const (
	CommandUnknown CommandKind = iota
	CommandMove
	CommandReset
	CommandQuit
)

// Command is one decoded player message. Move is set only for CommandMove.
type Command struct {
	Kind CommandKind
	Move game.Move
}

// ParseCommand decodes one inbound player message. QUIT and RESET match
// by prefix, MOVE: requires exactly one move letter after the colon, and
// trailing whitespace is stripped first. Anything else is CommandUnknown.
func ParseCommand(raw []byte) Command {
	msg := strings.TrimRight(string(raw), " \t\r\n")

	switch {
	case strings.HasPrefix(msg, quitToken):
		return Command{Kind: CommandQuit}
	case strings.HasPrefix(msg, resetToken):
		return Command{Kind: CommandReset}
	case strings.HasPrefix(msg, moveToken):
		rest := msg[len(moveToken):]
		if len(rest) != 1 {
			break
		}

		if move, ok := moveLetters[unicode.ToUpper(rune(rest[0]))]; ok {
			return Command{Kind: CommandMove, Move: move}
		}
	}

	return Command{}
}

type EventKind int

const (
	EventUnknown EventKind = iota
	EventResult
	EventReset
	EventQuit
	EventInfo
)

// Event is one decoded table message. Payload carries the text after the
// RESULT: or INFO: token, or the whole message for EventUnknown.
type Event struct {
	Kind    EventKind
	Payload string
}

// ParseEvent decodes one message received from a table.
func ParseEvent(raw []byte) Event {
	msg := strings.TrimRight(string(raw), " \t\r\n")

	switch {
	case strings.HasPrefix(msg, resultToken):
		return Event{Kind: EventResult, Payload: msg[len(resultToken):]}
	case strings.HasPrefix(msg, resetToken):
		return Event{Kind: EventReset}
	case strings.HasPrefix(msg, quitToken):
		return Event{Kind: EventQuit}
	case strings.HasPrefix(msg, infoToken):
		return Event{Kind: EventInfo, Payload: msg[len(infoToken):]}
	}

	return Event{Payload: msg}
}

// Result is the decoded payload of a RESULT event. Winners holds 0-based
// seat indices; the wire carries them 1-based.
type Result struct {
	Winners []int
	Moves   []string
	Scores  []int
}

// ParseResult decodes a RESULT payload of the form
// <winners>:<moves>:<scores>.
func ParseResult(payload string) (Result, error) {
	parts := strings.Split(payload, ":")
	if len(parts) != 3 {
		return Result{}, fmt.Errorf("malformed result payload %q", payload)
	}

	winners, err := parseInts(parts[0])
	if err != nil {
		return Result{}, fmt.Errorf("malformed winner list %q: %w", parts[0], err)
	}

	for i := range winners {
		winners[i]--
	}

	scores, err := parseInts(parts[2])
	if err != nil {
		return Result{}, fmt.Errorf("malformed score list %q: %w", parts[2], err)
	}

	moves := []string{}
	if parts[1] != "" {
		moves = strings.Split(parts[1], ",")
	}

	return Result{Winners: winners, Moves: moves, Scores: scores}, nil
}

func parseInts(csv string) ([]int, error) {
	out := []int{}

	if csv == "" {
		return out, nil
	}

	for _, field := range strings.Split(csv, ",") {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, err
		}

		out = append(out, n)
	}

	return out, nil
}

// FormatResult encodes a resolved round. Winners are 0-based seat
// indices and leave the winner field empty when the round is a tie.
func FormatResult(winners []int, moves []game.Move, scores []int) []byte {
	var b strings.Builder

	b.WriteString(resultToken)

	for i, w := range winners {
		if i > 0 {
			b.WriteByte(',')
		}

		b.WriteString(strconv.Itoa(w + 1))
	}

	b.WriteByte(':')

	for i, m := range moves {
		if i > 0 {
			b.WriteByte(',')
		}

		b.WriteString(m.String())
	}

	b.WriteByte(':')

	for i, s := range scores {
		if i > 0 {
			b.WriteByte(',')
		}

		b.WriteString(strconv.Itoa(s))
	}

	return []byte(b.String())
}

// FormatMove encodes a move command from its letter, uppercasing it.
// The letter is not validated; see IsMoveLetter.
func FormatMove(letter rune) []byte {
	return []byte(moveToken + string(unicode.ToUpper(letter)))
}

func FormatReset() []byte {
	return []byte(resetToken)
}

func FormatQuit() []byte {
	return []byte(quitToken)
}

func FormatInfo(text string) []byte {
	return []byte(infoToken + text)
}

// IsMoveLetter reports whether r names a move (R, P, S, L or K, either
// case).
func IsMoveLetter(r rune) bool {
	_, ok := moveLetters[unicode.ToUpper(r)]

	return ok
}
