package ackhandler

import "github.com/sack-go/sack-go/internal/protocol"

// State holds the transmission control variables shared between a connection
// and its ACK handlers. The connection owns the State; the loss recovery
// handler reads all of it and updates the send side variables while
// processing ACK events. It is never accessed concurrently: exactly one
// event is processed against a connection at a time.
type State struct {
	SndUna protocol.SeqNum // HighACK: lowest unacknowledged sequence number
	SndNxt protocol.SeqNum // next sequence number to be sent
	SndMax protocol.SeqNum // HighData: highest sequence number sent so far

	SndWnd protocol.ByteCount // receiver advertised window
	SndMss protocol.ByteCount // sender maximum segment size

	SndCwnd  protocol.ByteCount // congestion window
	Ssthresh protocol.ByteCount // slow start threshold

	RcvNxt protocol.SeqNum // next sequence number expected from the peer

	DupAcks   int // consecutive duplicate ACKs received
	DupThresh int // duplicate ACK threshold, conventionally 3

	SackEnabled bool // SACK support negotiated on this connection
	TsEnabled   bool // Timestamps option in use, shrinks the payload per segment
}
