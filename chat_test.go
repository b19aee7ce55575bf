package main

import (
	"net"
	"testing"
	"time"
)

func TestChatLoopPeerEndsChat(t *testing.T) {
	server, client := net.Pipe()
	defer client.Close()

	done := make(chan error, 1)
	go func() {
		done <- chatLoop(server, false)
	}()

	if _, err := client.Write([]byte("xx")); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("chatLoop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("chatLoop did not return")
	}
}

func TestChatLoopPeerDisconnects(t *testing.T) {
	server, client := net.Pipe()

	done := make(chan error, 1)
	go func() {
		done <- chatLoop(server, false)
	}()

	if _, err := client.Write([]byte("one small step")); err != nil {
		t.Fatalf("write: %v", err)
	}

	client.Close()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("chatLoop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("chatLoop did not return")
	}
}
