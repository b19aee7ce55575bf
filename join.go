package main

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/Seednode/spockbox/protocol"
	"github.com/Seednode/spockbox/table"
)

const menu = `--------------------------------------------------
Enter command:
  R: Rock      P: Paper
  S: Scissors  L: Lizard
  K: Spock     T: Reset
  Q: Quit      M: Show scores
Your command: `

// joinTable connects to a remote table and plays from this terminal.
func joinTable(cfg *Config, host string, port int) error {
	conn, err := net.Dial("tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return err
	}
	defer conn.Close()

	logf(cfg, "JOIN: connected to %s", conn.RemoteAddr())
	fmt.Printf("%sConnected to %s. Waiting for the table to fill.%s\n", colorCyan, conn.RemoteAddr(), colorReset)

	seat := table.NewNetConn(conn)

	events := make(chan protocol.Event)
	go func() {
		defer close(events)

		for {
			raw, err := seat.Recv()
			if err != nil {
				return
			}

			events <- protocol.ParseEvent(raw)
		}
	}()

	lines := readLines(os.Stdin)

	// reprinted before each wait until a move or reset is in flight
	promptNeeded := true

	var lastResult *protocol.Result

	for {
		if promptNeeded {
			fmt.Print(colorGreen + menu + colorReset)
		}

		select {
		case ev, ok := <-events:
			if !ok {
				fmt.Printf("\n%sServer closed the connection.%s\n", colorCyan, colorReset)

				return nil
			}

			switch ev.Kind {
			case protocol.EventQuit:
				fmt.Printf("\n%sServer signaled QUIT. Goodbye.%s\n", colorCyan, colorReset)

				return nil
			case protocol.EventReset:
				fmt.Printf("\n%sScores have been reset.%s\n", colorCyan, colorReset)

				lastResult = nil
				promptNeeded = true
			case protocol.EventResult:
				res, err := protocol.ParseResult(ev.Payload)
				if err != nil {
					fmt.Printf("\n%sGarbled result: %s%s\n", colorCyan, ev.Payload, colorReset)
				} else {
					lastResult = &res
					fmt.Printf("\n%s%s%s\n", colorGreen, summarizeResult(res), colorReset)
				}

				promptNeeded = true
			case protocol.EventInfo:
				fmt.Printf("\n%s%s%s\n", colorCyan, ev.Payload, colorReset)

				promptNeeded = true
			default:
				fmt.Printf("\n%sServer says: %s%s\n", colorBlue, ev.Payload, colorReset)
			}
		case line, ok := <-lines:
			if !ok {
				_ = seat.Send(protocol.FormatQuit())
				fmt.Printf("%sGoodbye.%s\n", colorCyan, colorReset)

				return nil
			}

			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			r := unicode.ToUpper(rune(line[0]))
			switch {
			case r == 'Q':
				if err := seat.Send(protocol.FormatQuit()); err != nil {
					return err
				}

				fmt.Printf("%sYou chose to quit.%s\n", colorCyan, colorReset)

				return nil
			case r == 'T':
				if err := seat.Send(protocol.FormatReset()); err != nil {
					return err
				}

				promptNeeded = false
			case r == 'M':
				showScores(lastResult)
			case protocol.IsMoveLetter(r):
				if err := seat.Send(protocol.FormatMove(r)); err != nil {
					return err
				}

				fmt.Printf("%sMove sent. Waiting for the other players...%s\n", colorBlue, colorReset)

				promptNeeded = false
			default:
				fmt.Printf("%sInvalid command. Use R/P/S/L/K, T, M or Q.%s\n", colorCyan, colorReset)
			}
		}
	}
}

// showScores prints the standings from the last resolved round. The
// table never pushes a standalone scoreboard, so this is all a player
// can know between results.
func showScores(last *protocol.Result) {
	if last == nil {
		fmt.Printf("%sNo rounds scored yet.%s\n", colorCyan, colorReset)

		return
	}

	var b strings.Builder

	for i, score := range last.Scores {
		if i > 0 {
			b.WriteString("  ")
		}

		fmt.Fprintf(&b, "P%d: %d", i+1, score)
	}

	fmt.Printf("%s%s%s\n", colorCyan, b.String(), colorReset)
}
