// Spockbox table
//
// A table seats a fixed roster of players and referees rounds of
// rock-paper-scissors-lizard-spock between them. Every player commits
// one move per round; once the last move lands the table resolves the
// dominant set, updates the running scores, and broadcasts the result
// to everyone.
//
// Features:
// - One goroutine owns all session state; seat readers only feed an inbox
// - Per wake-up, at most one command per seat, applied in seat order
// - Commands beyond the first per seat are deferred, never dropped
// - RESET zeroes the scores mid-round and restarts collection
// - QUIT or a dropped connection ends the session for the whole table
// - Duplicate moves within a round keep the first commit
// - Unrecognized input is logged and ignored
package table

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Seednode/spockbox/game"
	"github.com/Seednode/spockbox/protocol"
)

// Cause classifies why a session ended.
type Cause int

const (
	CauseQuit Cause = iota
	CauseDisconnect
)

func (c Cause) String() string {
	if c == CauseDisconnect {
		return "disconnect"
	}

	return "quit"
}

// Termination reports how a session ended and which seat ended it.
type Termination struct {
	Seat  int
	Cause Cause
}

// Options tunes a table. Logf receives progress lines when set. Banner
// makes the table open every round with an INFO line carrying the round
// number and scores.
type Options struct {
	Logf   func(format string, args ...any)
	Banner bool
}

type seat struct {
	index int
	conn  Conn
	move  game.Move
}

// envelope is one unit of seat readiness: a decoded command, or a
// hangup when the seat's Recv failed.
type envelope struct {
	seat   int
	cmd    protocol.Command
	raw    []byte
	hangup bool
}

type roundKind int

const (
	roundResolved roundKind = iota
	roundReset
	roundTerminated
)

type outcome struct {
	kind    roundKind
	winners []int
	moves   []game.Move
	seat    int
	cause   Cause
}

// Table drives one session. All session state belongs to the goroutine
// running Run; seat readers never touch it.
type Table struct {
	seats   []*seat
	scores  *game.Scoreboard
	inbox   chan envelope
	pending []envelope
	done    chan struct{}
	round   int
	banner  bool
	logf    func(format string, args ...any)
}

// New seats conns in order. Seat numbers shown to players are 1-based.
// The session does not start until Run.
func New(conns []Conn, opts Options) *Table {
	t := &Table{
		seats:  make([]*seat, len(conns)),
		scores: game.NewScoreboard(len(conns)),
		inbox:  make(chan envelope, len(conns)),
		done:   make(chan struct{}),
		round:  1,
		banner: opts.Banner,
		logf:   opts.Logf,
	}

	if t.logf == nil {
		t.logf = func(string, ...any) {}
	}

	for i, c := range conns {
		t.seats[i] = &seat{index: i, conn: c}
	}

	return t
}

// Run referees rounds until a quit or a dropped connection ends the
// session, then closes every seat. It blocks; callers own the goroutine.
func (t *Table) Run() Termination {
	for _, s := range t.seats {
		go t.readSeat(s)
	}

	defer t.teardown()

	for {
		if t.banner {
			t.broadcast(protocol.FormatInfo(t.bannerLine()))
		}

		out := t.collectRound()

		switch out.kind {
		case roundTerminated:
			t.broadcast(protocol.FormatQuit())

			return Termination{Seat: out.seat, Cause: out.cause}
		case roundReset:
			t.scores.Reset()
			t.broadcast(protocol.FormatReset())
			t.logf("GAME: player %d reset the scores", out.seat+1)
		case roundResolved:
			for _, w := range out.winners {
				t.scores.Add(w)
			}

			t.broadcast(protocol.FormatResult(out.winners, out.moves, t.scores.Snapshot()))

			if len(out.winners) == 0 {
				t.logf("GAME: round %d ends in a tie", t.round)
			} else {
				t.logf("GAME: round %d won by %s", t.round, seatList(out.winners))
			}

			t.round++
		}
	}
}

// collectRound gathers one move per seat, waking once per batch of seat
// readiness. Quit and hangup end the round immediately; a reset hands
// the round back to Run; the round resolves the moment the last seat
// commits. Whatever part of a batch was not yet applied when the round
// ends is deferred to the next round, except on termination.
func (t *Table) collectRound() outcome {
	for _, s := range t.seats {
		s.move = game.Unset
	}

	committed := 0

	for {
		batch := t.nextBatch()

		for i, env := range batch {
			s := t.seats[env.seat]

			switch {
			case env.hangup:
				t.logf("GAME: player %d disconnected", env.seat+1)

				return outcome{kind: roundTerminated, seat: env.seat, cause: CauseDisconnect}
			case env.cmd.Kind == protocol.CommandQuit:
				t.logf("GAME: player %d quit", env.seat+1)

				return outcome{kind: roundTerminated, seat: env.seat, cause: CauseQuit}
			case env.cmd.Kind == protocol.CommandReset:
				t.requeue(batch[i+1:])

				return outcome{kind: roundReset, seat: env.seat}
			case env.cmd.Kind == protocol.CommandMove:
				if s.move != game.Unset {
					t.logf("GAME: player %d already moved, dropping %s", env.seat+1, env.cmd.Move)

					continue
				}

				s.move = env.cmd.Move
				committed++
				t.logf("GAME: player %d played %s", env.seat+1, env.cmd.Move)

				if committed == len(t.seats) {
					t.requeue(batch[i+1:])

					moves := make([]game.Move, len(t.seats))
					for _, st := range t.seats {
						moves[st.index] = st.move
					}

					return outcome{kind: roundResolved, winners: game.Winners(moves), moves: moves}
				}
			default:
				t.logf("GAME: player %d sent unrecognized input %q", env.seat+1, env.raw)
			}
		}
	}
}

// nextBatch returns the commands to apply this wake-up: at most one per
// seat, ordered by seat index. Envelopes deferred by earlier wake-ups go
// first; beyond that the inbox is drained without blocking, after one
// blocking receive when nothing is pending. Seats with more than one
// envelope keep the extras for the next wake-up, in arrival order.
func (t *Table) nextBatch() []envelope {
	ready := t.pending
	t.pending = nil

	if len(ready) == 0 {
		ready = append(ready, <-t.inbox)
	}

drain:
	for {
		select {
		case env := <-t.inbox:
			ready = append(ready, env)
		default:
			break drain
		}
	}

	batch := make([]envelope, 0, len(ready))
	taken := make([]bool, len(t.seats))

	for _, env := range ready {
		if taken[env.seat] {
			t.pending = append(t.pending, env)

			continue
		}

		taken[env.seat] = true
		batch = append(batch, env)
	}

	sort.Slice(batch, func(i, j int) bool {
		return batch[i].seat < batch[j].seat
	})

	return batch
}

// requeue pushes unapplied envelopes back to the front of the deferred
// queue, ahead of this wake-up's surplus.
func (t *Table) requeue(rest []envelope) {
	if len(rest) == 0 {
		return
	}

	merged := make([]envelope, 0, len(rest)+len(t.pending))
	merged = append(merged, rest...)
	merged = append(merged, t.pending...)

	t.pending = merged
}

// readSeat turns one seat's connection into inbox envelopes. It exits
// when the seat hangs up or the session ends.
func (t *Table) readSeat(s *seat) {
	for {
		raw, err := s.conn.Recv()

		env := envelope{seat: s.index, raw: raw}
		if err != nil {
			env.hangup = true
		} else {
			env.cmd = protocol.ParseCommand(raw)
		}

		select {
		case t.inbox <- env:
		case <-t.done:
			return
		}

		if env.hangup {
			return
		}
	}
}

// broadcast fans one message out to every seat in order. Send failures
// are logged and otherwise ignored; a dead connection surfaces as a
// hangup on its next read.
func (t *Table) broadcast(p []byte) {
	for _, s := range t.seats {
		if err := s.conn.Send(p); err != nil {
			t.logf("GAME: send to player %d failed: %v", s.index+1, err)
		}
	}
}

func (t *Table) teardown() {
	close(t.done)

	for _, s := range t.seats {
		_ = s.conn.Close()
	}
}

func (t *Table) bannerLine() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Starting Round %d. Score", t.round)

	for i, score := range t.scores.Snapshot() {
		fmt.Fprintf(&b, " P%d:%d", i+1, score)
	}

	return b.String()
}

func seatList(seats []int) string {
	parts := make([]string, len(seats))

	for i, s := range seats {
		parts[i] = fmt.Sprintf("player %d", s+1)
	}

	return strings.Join(parts, ", ")
}
