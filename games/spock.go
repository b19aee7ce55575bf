// Package games holds design notes for table games under consideration.
package games

// Rock-paper-scissors-lizard-spock, any number of players
// Every player commits one move per round, then all moves are shown at once
// A move wins the round if nothing beats it and it beats at least one other move
// Several players holding the same unbeaten move all score; identical or circular rounds are ties
// Scores accumulate across rounds until someone resets them

// Transports:
// - Raw TCP, one command per segment (netcat-friendly)
// - WebSocket text frames carrying the same commands, for phones via QR code

// Implementation details:
// - One goroutine per session owns the whole game state, fed by a channel(?)
// - Late joiners after the table fills are turned away, not queued
// - No reconnect: a dropped player ends the session for the table

// Ideas not taken yet:
// - Best-of-N match play with a match winner announcement
// - Per-round shot clock with a forfeit move on expiry
// - Observer seats that receive RESULT lines but cannot play
