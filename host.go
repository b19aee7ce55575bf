package main

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/Seednode/spockbox/protocol"
	"github.com/Seednode/spockbox/table"
)

// hostTable referees a session while seating the hosting terminal as
// player 1. Remote players are greeted with the house rules as they
// connect.
func hostTable(cfg *Config, port, players int) error {
	local := newConsoleConn(os.Stdin, os.Stdout)

	conns := make([]table.Conn, 0, players)
	conns = append(conns, local)

	if players > 1 {
		ln, err := net.Listen("tcp", net.JoinHostPort(cfg.bind, strconv.Itoa(port)))
		if err != nil {
			return err
		}

		fmt.Printf("%sYou are Player 1. Waiting for %d more on port %d...%s\n",
			colorCyan, players-1, port, colorReset)

		for len(conns) < players {
			conn, err := ln.Accept()
			if err != nil {
				_ = ln.Close()

				return err
			}

			number := len(conns) + 1
			logf(cfg, "JOIN: player %d connected from %s", number, conn.RemoteAddr())
			fmt.Printf("%sPlayer %d joined from %s.%s\n", colorCyan, number, conn.RemoteAddr(), colorReset)

			seat := table.NewNetConn(conn)
			welcomeSeat(seat, number)
			conns = append(conns, seat)
		}

		_ = ln.Close()
	}

	term := table.New(conns, table.Options{
		Banner: true,
		Logf: func(format string, args ...any) {
			logf(cfg, format, args...)
		},
	}).Run()

	fmt.Printf("\n%sTable closed (player %d, %s).%s\n", colorCyan, term.Seat+1, term.Cause, colorReset)

	return nil
}

// welcomeSeat greets a freshly seated remote player with one INFO
// message carrying the rules. A dead socket here is not fatal; it will
// surface as a hangup once the session starts.
func welcomeSeat(seat table.Conn, number int) {
	text := fmt.Sprintf("Welcome! You are Player %d.\n"+
		"Rock crushes Scissors and Lizard. Paper covers Rock and disproves Spock.\n"+
		"Scissors cut Paper and decapitate Lizard. Lizard eats Paper and poisons Spock.\n"+
		"Spock smashes Scissors and vaporizes Rock.\n"+
		"Send R, P, S, L or K to play, T to reset the scores, Q to quit.", number)

	_ = seat.Send(protocol.FormatInfo(text))
}
