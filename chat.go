package main

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/Seednode/spockbox/table"
)

const chatHelp = `Commands:
  x      end your turn
  xx     end the chat
  help   show this message
  clear  clear the screen`

// chatListen waits for a single peer on the given port, then runs the
// alternating chat. The listener speaks second.
func chatListen(cfg *Config, port int) error {
	ln, err := net.Listen("tcp", net.JoinHostPort(cfg.bind, strconv.Itoa(port)))
	if err != nil {
		return err
	}
	defer ln.Close()

	fmt.Printf("%sWaiting for a peer on port %d...%s\n", colorCyan, port, colorReset)

	conn, err := ln.Accept()
	if err != nil {
		return err
	}

	logf(cfg, "JOIN: peer connected from %s", conn.RemoteAddr())
	fmt.Printf("%sPeer connected from %s. They speak first.%s\n", colorCyan, conn.RemoteAddr(), colorReset)

	return chatLoop(conn, false)
}

// chatDial connects to a listening peer. The dialer speaks first.
func chatDial(cfg *Config, host string, port int) error {
	conn, err := net.Dial("tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return err
	}

	logf(cfg, "JOIN: connected to %s", conn.RemoteAddr())
	fmt.Printf("%sConnected to %s. You speak first.%s\n", colorCyan, conn.RemoteAddr(), colorReset)

	return chatLoop(conn, true)
}

// chatLoop alternates strict turns: one side types until it yields with
// x or ends the chat with xx, while the other side prints what arrives.
func chatLoop(conn net.Conn, myTurn bool) error {
	defer conn.Close()

	peer := table.NewNetConn(conn)

	msgs := make(chan string)
	go func() {
		defer close(msgs)

		for {
			raw, err := peer.Recv()
			if err != nil {
				return
			}

			msgs <- strings.TrimRight(string(raw), "\r\n")
		}
	}()

	lines := readLines(os.Stdin)

	fmt.Println(chatHelp)

	for {
		if myTurn {
			fmt.Print(colorGreen + "> " + colorReset)

			line, ok := <-lines
			if !ok {
				_ = peer.Send([]byte("xx"))
				fmt.Printf("\n%sChat over.%s\n", colorCyan, colorReset)

				return nil
			}

			line = strings.TrimSpace(line)
			switch line {
			case "":
				continue
			case "help":
				fmt.Println(chatHelp)

				continue
			case "clear":
				clearScreen(os.Stdout)

				continue
			}

			if err := peer.Send([]byte(line)); err != nil {
				return err
			}

			switch line {
			case "xx":
				fmt.Printf("%sChat over.%s\n", colorCyan, colorReset)

				return nil
			case "x":
				myTurn = false

				fmt.Printf("%sYour turn is over. Waiting...%s\n", colorBlue, colorReset)
			}
		} else {
			msg, ok := <-msgs
			if !ok {
				fmt.Printf("%sPeer disconnected.%s\n", colorCyan, colorReset)

				return nil
			}

			switch msg {
			case "xx":
				fmt.Printf("%sPeer ended the chat.%s\n", colorCyan, colorReset)

				return nil
			case "x":
				myTurn = true

				fmt.Printf("%sYour turn.%s\n", colorCyan, colorReset)
			default:
				fmt.Printf("%s[Peer]%s %s\n", colorBlue, colorReset, msg)
			}
		}
	}
}
