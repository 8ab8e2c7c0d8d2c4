package ackhandler

import (
	"github.com/sack-go/sack-go/internal/utils"
	"github.com/sack-go/sack-go/logging"
)

// NewAckHandler creates the two ACK handlers of a connection: the loss
// recovery handler driving retransmissions on the send side, and the SACK
// generator building the SACK options of outgoing ACKs on the receive side.
// Both share the connection's State.
func NewAckHandler(
	state *State,
	conn Connection,
	rexmitQueue RexmitQueue,
	rcvQueue ReceiveQueue,
	tracer *logging.ConnectionTracer,
	logger utils.Logger,
) (LossRecovery, SackGenerator) {
	return newSentSegmentHandler(state, conn, rexmitQueue, tracer, logger),
		newReceivedSackTracker(state, rcvQueue, tracer, logger)
}
