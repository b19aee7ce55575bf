package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode"

	"github.com/Seednode/spockbox/protocol"
	"github.com/Seednode/spockbox/table"
)

const (
	colorReset = "\x1b[0m"
	colorGreen = "\x1b[32m"
	colorBlue  = "\x1b[34m"
	colorCyan  = "\x1b[36m"
)

func clearScreen(w io.Writer) {
	fmt.Fprint(w, "\x1b[H\x1b[J")
}

// readLines pumps whole lines from r until EOF, then closes the channel.
func readLines(r io.Reader) <-chan string {
	lines := make(chan string)

	go func() {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lines <- scanner.Text()
		}

		close(lines)
	}()

	return lines
}

// summarizeResult renders one resolved round for a terminal.
func summarizeResult(res protocol.Result) string {
	var b strings.Builder

	for i, move := range res.Moves {
		if i > 0 {
			b.WriteString("  ")
		}

		fmt.Fprintf(&b, "P%d: %s (%d)", i+1, move, scoreAt(res.Scores, i))
	}

	if len(res.Winners) == 0 {
		b.WriteString("  =>  tie")
	} else {
		parts := make([]string, len(res.Winners))
		for i, w := range res.Winners {
			parts[i] = fmt.Sprintf("P%d", w+1)
		}

		fmt.Fprintf(&b, "  =>  %s", strings.Join(parts, ", "))
	}

	return b.String()
}

func scoreAt(scores []int, i int) int {
	if i < len(scores) {
		return scores[i]
	}

	return 0
}

// consoleConn seats the hosting terminal at the table. Recv translates
// keyboard shorthand into protocol commands; Send renders table events.
type consoleConn struct {
	lines <-chan string
	out   io.Writer
	mu    sync.Mutex
}

var _ table.Conn = (*consoleConn)(nil)

func newConsoleConn(in io.Reader, out io.Writer) *consoleConn {
	return &consoleConn{
		lines: readLines(in),
		out:   out,
	}
}

// Recv blocks until the host types something that maps to a command.
// Anything else gets a local hint and is never sent.
func (c *consoleConn) Recv() ([]byte, error) {
	for {
		line, ok := <-c.lines
		if !ok {
			return nil, io.EOF
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r := unicode.ToUpper(rune(line[0]))
		switch {
		case r == 'Q':
			return protocol.FormatQuit(), nil
		case r == 'T':
			return protocol.FormatReset(), nil
		case protocol.IsMoveLetter(r):
			return protocol.FormatMove(r), nil
		default:
			c.printf("%sInvalid input. Use R/P/S/L/K to play, T to reset, Q to quit.%s\n", colorCyan, colorReset)
			c.prompt()
		}
	}
}

func (c *consoleConn) Send(p []byte) error {
	ev := protocol.ParseEvent(p)

	switch ev.Kind {
	case protocol.EventInfo:
		c.printf("%s%s%s\n", colorCyan, ev.Payload, colorReset)
		c.prompt()
	case protocol.EventResult:
		res, err := protocol.ParseResult(ev.Payload)
		if err != nil {
			c.printf("%sGarbled result: %s%s\n", colorCyan, ev.Payload, colorReset)

			break
		}

		c.printf("%s%s%s\n", colorGreen, summarizeResult(res), colorReset)
	case protocol.EventReset:
		c.printf("%sScores have been reset.%s\n", colorCyan, colorReset)
	case protocol.EventQuit:
		c.printf("%sThe session is over.%s\n", colorCyan, colorReset)
	}

	return nil
}

func (c *consoleConn) Close() error {
	return nil
}

func (c *consoleConn) prompt() {
	c.printf("%sYour move (R/P/S/L/K), T to reset, Q to quit: %s", colorGreen, colorReset)
}

func (c *consoleConn) printf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintf(c.out, format, args...)
}
