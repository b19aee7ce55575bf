package table

import (
	"io"
	"net"
)

const recvBufferSize = 1024

// Conn is one seat's bidirectional message stream. Recv blocks until one
// whole inbound message arrives and returns its payload; Send writes one
// whole outbound message. Recv and Send may be used from different
// goroutines, but each from at most one at a time.
type Conn interface {
	Recv() ([]byte, error)
	Send(p []byte) error
	Close() error
}

// NetConn adapts a stream socket: one Read is one message, one Send is
// one Write.
type NetConn struct {
	conn net.Conn
}

func NewNetConn(conn net.Conn) *NetConn {
	return &NetConn{conn: conn}
}

// Recv returns the next chunk read from the socket. A zero-length read
// is reported as io.EOF, the same as a peer hangup.
func (n *NetConn) Recv() ([]byte, error) {
	buf := make([]byte, recvBufferSize)

	sz, err := n.conn.Read(buf)
	if sz == 0 {
		if err == nil {
			err = io.EOF
		}

		return nil, err
	}

	return buf[:sz], nil
}

func (n *NetConn) Send(p []byte) error {
	_, err := n.conn.Write(p)

	return err
}

func (n *NetConn) Close() error {
	return n.conn.Close()
}
