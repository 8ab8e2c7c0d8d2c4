// Package logging defines a logging interface for sack-go.
// This package should not be considered stable
package logging

import (
	"github.com/sack-go/sack-go/internal/protocol"
	"github.com/sack-go/sack-go/internal/wire"
)

type (
	// A ByteCount in TCP
	ByteCount = protocol.ByteCount
	// A SeqNum is a TCP sequence number.
	SeqNum = protocol.SeqNum
	// A SackBlock is a selectively acknowledged range of bytes.
	SackBlock = wire.SackBlock
	// The Perspective is the role of an endpoint in the traced data flow.
	Perspective = protocol.Perspective
)

const (
	// PerspectiveSender is used for the data sending side
	PerspectiveSender = protocol.PerspectiveSender
	// PerspectiveReceiver is used for the data receiving side
	PerspectiveReceiver = protocol.PerspectiveReceiver
)

// A SegmentLossReason is the reason why a segment is declared lost.
type SegmentLossReason uint8

const (
	// LossReasonDupThreshBlocks means that at least DupThresh discontiguous
	// SACKed blocks arrived above the segment.
	LossReasonDupThreshBlocks SegmentLossReason = iota
	// LossReasonDupThreshBytes means that at least DupThresh * SMSS bytes
	// were SACKed above the segment.
	LossReasonDupThreshBytes
)

// A ConnectionTracer records recovery events of a single connection.
// Any of the callbacks may be nil.
type ConnectionTracer struct {
	EnteredLossRecovery  func(recoveryPoint SeqNum, ssthresh ByteCount)
	ExitedLossRecovery   func(sndUna SeqNum)
	UpdatedRecoveryState func(cwnd, ssthresh, pipe ByteCount, dupAcks int)
	RetransmittedSegment func(seq SeqNum, length ByteCount)
	SentSegment          func(seq SeqNum, length ByteCount, retransmission bool)
	ReceivedSack         func(blocks []SackBlock)
	SentSack             func(blocks []SackBlock, dsack bool)
	LimitedTransmit      func(seq SeqNum, length ByteCount)
	RestartedRexmitTimer func()
	DiscardedUpTo        func(seq SeqNum)
	Close                func()
}

// NewMultiplexedConnectionTracer creates a new connection tracer that
// multiplexes events to all given tracers.
func NewMultiplexedConnectionTracer(tracers ...*ConnectionTracer) *ConnectionTracer {
	if len(tracers) == 0 {
		return nil
	}
	if len(tracers) == 1 {
		return tracers[0]
	}
	return &ConnectionTracer{
		EnteredLossRecovery: func(recoveryPoint SeqNum, ssthresh ByteCount) {
			for _, t := range tracers {
				if t.EnteredLossRecovery != nil {
					t.EnteredLossRecovery(recoveryPoint, ssthresh)
				}
			}
		},
		ExitedLossRecovery: func(sndUna SeqNum) {
			for _, t := range tracers {
				if t.ExitedLossRecovery != nil {
					t.ExitedLossRecovery(sndUna)
				}
			}
		},
		UpdatedRecoveryState: func(cwnd, ssthresh, pipe ByteCount, dupAcks int) {
			for _, t := range tracers {
				if t.UpdatedRecoveryState != nil {
					t.UpdatedRecoveryState(cwnd, ssthresh, pipe, dupAcks)
				}
			}
		},
		RetransmittedSegment: func(seq SeqNum, length ByteCount) {
			for _, t := range tracers {
				if t.RetransmittedSegment != nil {
					t.RetransmittedSegment(seq, length)
				}
			}
		},
		SentSegment: func(seq SeqNum, length ByteCount, retransmission bool) {
			for _, t := range tracers {
				if t.SentSegment != nil {
					t.SentSegment(seq, length, retransmission)
				}
			}
		},
		ReceivedSack: func(blocks []SackBlock) {
			for _, t := range tracers {
				if t.ReceivedSack != nil {
					t.ReceivedSack(blocks)
				}
			}
		},
		SentSack: func(blocks []SackBlock, dsack bool) {
			for _, t := range tracers {
				if t.SentSack != nil {
					t.SentSack(blocks, dsack)
				}
			}
		},
		LimitedTransmit: func(seq SeqNum, length ByteCount) {
			for _, t := range tracers {
				if t.LimitedTransmit != nil {
					t.LimitedTransmit(seq, length)
				}
			}
		},
		RestartedRexmitTimer: func() {
			for _, t := range tracers {
				if t.RestartedRexmitTimer != nil {
					t.RestartedRexmitTimer()
				}
			}
		},
		DiscardedUpTo: func(seq SeqNum) {
			for _, t := range tracers {
				if t.DiscardedUpTo != nil {
					t.DiscardedUpTo(seq)
				}
			}
		},
		Close: func() {
			for _, t := range tracers {
				if t.Close != nil {
					t.Close()
				}
			}
		},
	}
}
