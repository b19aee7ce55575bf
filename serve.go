package main

import (
	"context"
	"crypto/rand"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/Seednode/spockbox/table"
)

// serveTable seats players arriving over TCP (and the browser lobby when
// enabled) until the roster is full, then referees the session to its
// end. Connections arriving after the roster fills are turned away.
func serveTable(ctx context.Context, cfg *Config, port, players int) error {
	timeZone := os.Getenv("TZ")
	if timeZone != "" {
		var err error
		time.Local, err = time.LoadLocation(timeZone)
		if err != nil {
			return err
		}
	}

	session := newSessionID()

	logf(cfg, "START: spockbox v%s, session %s", releaseVersion, session)

	ln, err := net.Listen("tcp", net.JoinHostPort(cfg.bind, strconv.Itoa(port)))
	if err != nil {
		return err
	}
	defer ln.Close()

	logf(cfg, "SERVE: Table listening on %s for %d players", ln.Addr(), players)

	seats := make(chan table.Conn)
	started := make(chan struct{})
	acceptErrs := make(chan error, 1)

	var startOnce sync.Once
	closeRoster := func() { startOnce.Do(func() { close(started) }) }

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				acceptErrs <- err

				return
			}

			logf(cfg, "JOIN: player connected from %s", conn.RemoteAddr())

			select {
			case seats <- table.NewNetConn(conn):
			case <-started:
				_ = conn.Close()

				return
			}
		}
	}()

	var lobby *http.Server
	if cfg.webPort != 0 {
		lobby = startLobby(cfg, seats, started)
		defer stopLobby(lobby)
	}

	// on every exit path, late seat offers must see a closed roster
	defer closeRoster()

	conns := make([]table.Conn, 0, players)
	for len(conns) < players {
		select {
		case conn := <-seats:
			conns = append(conns, conn)
			logf(cfg, "JOIN: seat %d of %d taken", len(conns), players)
		case err := <-acceptErrs:
			return fmt.Errorf("accepting players: %w", err)
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	closeRoster()
	_ = ln.Close()

	logf(cfg, "GAME: table is full, starting session %s", session)

	term := table.New(conns, table.Options{Logf: func(format string, args ...any) {
		logf(cfg, format, args...)
	}}).Run()

	logf(cfg, "GAME: session %s ended by player %d (%s)", session, term.Seat+1, term.Cause)

	return nil
}

// newSessionID generates a random identifier to tag this session's log lines.
func newSessionID() string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		panic("crypto/rand failure: " + err.Error())
	}

	out := make([]byte, 8)
	for i := range out {
		out[i] = letters[int(buf[i])%len(letters)]
	}

	return string(out)
}
