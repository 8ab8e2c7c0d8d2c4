package ackhandler

import (
	"github.com/sack-go/sack-go/internal/protocol"
	"github.com/sack-go/sack-go/internal/wire"
)

// A LossRecovery implements the sender side of SACK based loss recovery
// (RFC 6675, using the scoreboard algorithms of RFC 3517).
type LossRecovery interface {
	// ReceivedDataAck is called for every ACK that advances SndUna.
	ReceivedDataAck(firstSeqAcked protocol.SeqNum)
	// ReceivedDuplicateAck is called after the connection incremented
	// DupAcks for an ACK that qualifies as a duplicate.
	ReceivedDuplicateAck()
	// ProcessSackOption updates the scoreboard with the SACK information of
	// an incoming ACK. ackNo is the acknowledgment number carried in the
	// same segment. It reports if the option was accepted.
	ProcessSackOption(ackNo protocol.SeqNum, opt *wire.SackOption) bool

	// IsLost says if the byte at seq is considered lost.
	IsLost(seq protocol.SeqNum) bool
	// SetPipe recomputes the estimate of bytes in flight.
	SetPipe()
	// NextSeg returns the sequence number of the next segment to transmit,
	// if there is one.
	NextSeg() (protocol.SeqNum, bool)

	InLossRecovery() bool
	Pipe() protocol.ByteCount
	HighRxt() protocol.SeqNum
}

// A SackGenerator implements the receiver side of SACK: it tracks the
// ranges that still need to be reported and builds the SACK option of
// outgoing ACKs.
type SackGenerator interface {
	// SegmentArrived is called for every inbound data segment, before the
	// receive queue updates RcvNxt.
	SegmentArrived(start, end protocol.SeqNum)
	// AppendSackOption builds the SACK option for the next outgoing ACK.
	// usedOptionsLen is the number of option bytes already in use.
	// It returns nil if there is nothing to report or nothing fits.
	AppendSackOption(usedOptionsLen protocol.ByteCount) *wire.SackOption
	// HasPendingSacks says if an option would be built.
	HasPendingSacks() bool
}

// A Connection is the connection a recovery handler operates on. It is
// injected per handler; all sequence number state is shared through State.
type Connection interface {
	// SendSegment transmits up to maxBytes starting at the current SndNxt
	// and returns the number of payload bytes sent. The connection updates
	// SndNxt and, for previously unsent data, SndMax.
	SendSegment(maxBytes protocol.ByteCount) protocol.ByteCount
	// RetransmitOneSegment retransmits the first segment presumed dropped,
	// the one starting at SndUna.
	RetransmitOneSegment(calledAtRto bool)
	// BytesInFlight returns the sender's current FlightSize.
	BytesInFlight() protocol.ByteCount
	// BytesAvailable returns the number of queued but unsent bytes at and
	// above SndMax.
	BytesAvailable() protocol.ByteCount
	// RestartRexmitTimer restarts the retransmission timer. Called after a
	// retransmission sent during loss recovery.
	RestartRexmitTimer()
	// ConnState returns the current state of the connection state machine.
	ConnState() protocol.ConnState
}

// A RexmitQueue tracks the SACKed and retransmitted status of every byte in
// [SndUna, SndMax). Scoreboard is the canonical implementation.
type RexmitQueue interface {
	// EnqueueSentData records that [start, end) was (re)transmitted.
	EnqueueSentData(start, end protocol.SeqNum)
	// SetSackedBit marks [start, end) as selectively acknowledged.
	SetSackedBit(start, end protocol.SeqNum)
	// CheckSackBlock reports the status of the block starting at seq: its
	// run length (capped at the SMSS and at status boundaries) and whether
	// it is SACKed and retransmitted.
	CheckSackBlock(seq protocol.SeqNum) (length protocol.ByteCount, sacked, rexmitted bool)
	// NumDiscontiguousSacksAbove counts the discontiguous SACKed blocks
	// entirely or partly above seq.
	NumDiscontiguousSacksAbove(seq protocol.SeqNum) int
	// SackedBytesAbove returns the number of SACKed bytes above seq.
	SackedBytesAbove(seq protocol.SeqNum) protocol.ByteCount
	// TotalSackedBytes returns the number of SACKed bytes in the queue.
	TotalSackedBytes() protocol.ByteCount
	HighestSackedSeqNum() protocol.SeqNum
	HighestRexmittedSeqNum() protocol.SeqNum
	// DiscardUpTo drops all bookkeeping below seq.
	DiscardUpTo(seq protocol.SeqNum)
}

// A ReceiveQueue reports the contiguous block of received bytes around a
// sequence number.
type ReceiveQueue interface {
	// LE returns the left edge of the contiguous block containing seq.
	LE(seq protocol.SeqNum) protocol.SeqNum
	// RE returns the right edge of the contiguous block containing seq.
	RE(seq protocol.SeqNum) protocol.SeqNum
}
