package ackhandler

import (
	"fmt"

	"github.com/sack-go/sack-go/internal/protocol"
	"github.com/sack-go/sack-go/internal/utils"
	"github.com/sack-go/sack-go/internal/wire"
	"github.com/sack-go/sack-go/logging"
)

// The sentSegmentHandler implements SACK based loss recovery (RFC 6675,
// with the IsLost / SetPipe / NextSeg scoreboard routines of RFC 3517 and
// Limited Transmit of RFC 5681). It owns the per-connection recovery state;
// the window variables live in the shared State and are also read by the
// connection itself.
type sentSegmentHandler struct {
	state       *State
	conn        Connection
	rexmitQueue RexmitQueue

	lossRecovery  bool
	recoveryPoint protocol.SeqNum
	highRxt       protocol.SeqNum
	pipe          protocol.ByteCount

	// total number of SACK blocks received, for tracing
	rcvSacks uint64

	tracer *logging.ConnectionTracer
	logger utils.Logger
}

var _ LossRecovery = &sentSegmentHandler{}

func newSentSegmentHandler(
	state *State,
	conn Connection,
	rexmitQueue RexmitQueue,
	tracer *logging.ConnectionTracer,
	logger utils.Logger,
) *sentSegmentHandler {
	return &sentSegmentHandler{
		state:       state,
		conn:        conn,
		rexmitQueue: rexmitQueue,
		highRxt:     state.SndUna,
		tracer:      tracer,
		logger:      logger,
	}
}

func (h *sentSegmentHandler) InLossRecovery() bool     { return h.lossRecovery }
func (h *sentSegmentHandler) Pipe() protocol.ByteCount { return h.pipe }
func (h *sentSegmentHandler) HighRxt() protocol.SeqNum { return h.highRxt }

// ReceivedDataAck handles an ACK that advanced SndUna. Outside of loss
// recovery a cumulative ACK needs no action here, the congestion controller
// handles it. During recovery it runs steps A, B and C of RFC 6675.
func (h *sentSegmentHandler) ReceivedDataAck(firstSeqAcked protocol.SeqNum) {
	h.state.DupAcks = 0
	if !h.lossRecovery {
		return
	}
	if h.logger.Debug() {
		h.logger.Debugf("Cumulative ACK during loss recovery: %d -> %d, recovery point %d", firstSeqAcked, h.state.SndUna, h.recoveryPoint)
	}
	h.stepA()
	h.stepB()
	h.stepC()
}

// ReceivedDuplicateAck handles a duplicate ACK, after the connection
// incremented DupAcks. It either enters loss recovery, performs Limited
// Transmit, or (when already recovering) reruns steps A, B and C.
func (h *sentSegmentHandler) ReceivedDuplicateAck() {
	if h.lossRecovery {
		h.stepA()
		h.stepB()
		h.stepC()
		return
	}
	if h.state.DupAcks >= h.state.DupThresh {
		h.enterRecovery()
		return
	}
	if h.IsLost(h.state.SndUna + 1) {
		// Fewer than DupThresh duplicate ACKs, but the SACK information
		// already proves the loss of the first outstanding segment.
		h.enterRecovery()
		return
	}
	h.limitedTransmit()
}

// enterRecovery is step 4 of RFC 6675: invoke fast retransmit and enter the
// loss recovery phase.
func (h *sentSegmentHandler) enterRecovery() {
	h.lossRecovery = true
	h.recoveryPoint = h.state.SndMax
	// cwnd and ssthresh are reduced to half of FlightSize (RFC 5681).
	// Segments sent by Limited Transmit are not part of FlightSize.
	h.state.Ssthresh = h.conn.BytesInFlight() / 2
	h.state.SndCwnd = h.state.Ssthresh
	if h.logger.Debug() {
		h.logger.Debugf("Entering loss recovery. Recovery point: %d, ssthresh: %d", h.recoveryPoint, h.state.Ssthresh)
	}
	if h.tracer != nil && h.tracer.EnteredLossRecovery != nil {
		h.tracer.EnteredLossRecovery(h.recoveryPoint, h.state.Ssthresh)
	}
	// Retransmit the first segment presumed dropped, the one starting at
	// SndUna.
	h.conn.RetransmitOneSegment(false)
	if h.tracer != nil && h.tracer.RetransmittedSegment != nil {
		h.tracer.RetransmittedSegment(h.state.SndUna, h.state.SndMss)
	}
	h.SetPipe()
	h.stepC()
}

// limitedTransmit implements RFC 5681 Limited Transmit: on the first two
// duplicate ACKs, previously unsent data may be transmitted as long as pipe
// and cwnd allow.
func (h *sentSegmentHandler) limitedTransmit() {
	h.highRxt = h.state.SndUna
	h.SetPipe()
	for int64(h.state.SndCwnd)-int64(h.pipe) >= int64(h.state.SndMss) {
		seq, ok := h.NextSeg()
		if !ok {
			return
		}
		if !seq.Add(h.state.SndMss).LessThanEq(h.state.SndUna.Add(h.state.SndWnd)) {
			return
		}
		h.state.SndNxt = seq
		sentBytes := h.conn.SendSegment(h.state.SndMss)
		h.pipe += sentBytes
		if h.logger.Debug() {
			h.logger.Debugf("Limited Transmit: sent %d bytes starting at %d", sentBytes, seq)
		}
		if h.tracer != nil && h.tracer.LimitedTransmit != nil {
			h.tracer.LimitedTransmit(seq, sentBytes)
		}
	}
}

// stepA terminates the loss recovery phase once the cumulative ACK covers
// the recovery point. Scoreboard information above the new SndUna is kept.
func (h *sentSegmentHandler) stepA() {
	if h.state.SndUna.GreaterThanEq(h.recoveryPoint) {
		h.lossRecovery = false
		h.rexmitQueue.DiscardUpTo(h.state.SndUna)
		if h.logger.Debug() {
			h.logger.Debugf("Loss recovery terminated, SndUna %d covers recovery point %d", h.state.SndUna, h.recoveryPoint)
		}
		if h.tracer != nil && h.tracer.ExitedLossRecovery != nil {
			h.tracer.ExitedLossRecovery(h.state.SndUna)
		}
		if h.tracer != nil && h.tracer.DiscardedUpTo != nil {
			h.tracer.DiscardedUpTo(h.state.SndUna)
		}
	}
}

// stepB recomputes pipe on every ACK that does not cover the recovery
// point. The new SACK information was already recorded by
// ProcessSackOption.
func (h *sentSegmentHandler) stepB() {
	if h.state.SndUna.LessThanEq(h.recoveryPoint) {
		h.SetPipe()
	}
}

// stepC transmits segments as long as cwnd - pipe >= 1 SMSS, asking NextSeg
// for the sequence number to send.
func (h *sentSegmentHandler) stepC() {
	for int64(h.state.SndCwnd)-int64(h.pipe) >= int64(h.state.SndMss) {
		seq, ok := h.NextSeg()
		if !ok {
			return
		}
		// determined before SndMax is advanced below
		isRexmit := seq.LessThan(h.state.SndMax)
		if isRexmit {
			h.highRxt = seq.Add(h.state.SndMss)
		}
		if seq.GreaterThan(h.state.SndMax) {
			h.state.SndMax = seq.Add(h.state.SndMss)
		}
		if !seq.Add(h.state.SndMss).LessThanEq(h.state.SndUna.Add(h.state.SndWnd)) {
			// doesn't fit into the receiver's advertised window
			return
		}
		h.state.SndNxt = seq
		sentBytes := h.conn.SendSegment(h.state.SndMss)
		h.pipe += sentBytes
		if isRexmit {
			if h.logger.Debug() {
				h.logger.Debugf("Retransmission sent during recovery, %d bytes starting at %d. Restarting REXMIT timer.", sentBytes, seq)
			}
			if h.tracer != nil && h.tracer.RetransmittedSegment != nil {
				h.tracer.RetransmittedSegment(seq, sentBytes)
			}
			// Restart of the REXMIT timer on a retransmission sent during
			// recovery, as permitted by RFC 3517, section 6.
			h.conn.RestartRexmitTimer()
			if h.tracer != nil && h.tracer.RestartedRexmitTimer != nil {
				h.tracer.RestartedRexmitTimer()
			}
		}
	}
}

// ProcessSackOption records the SACK information of an incoming ACK in the
// scoreboard. ackNo is the acknowledgment number carried in the same
// segment. Malformed or unexpected options are logged and ignored.
func (h *sentSegmentHandler) ProcessSackOption(ackNo protocol.SeqNum, opt *wire.SackOption) bool {
	if !h.state.SackEnabled {
		h.logger.Errorf("Received %d SACK block(s), but SACK is not enabled on this connection", len(opt.Blocks))
		return false
	}
	if connState := h.conn.ConnState(); !connState.AcceptsSackOptions() {
		h.logger.Errorf("Received a SACK option in state %s, ignoring it", connState)
		return false
	}
	if len(opt.Blocks) == 0 {
		return true
	}
	for i, block := range opt.Blocks {
		// D-SACK detection (RFC 2883, section 4). The first block is
		// compared against the cumulative ACK carried in the same segment,
		// not against SndUna: ACK reordering would make the latter draw the
		// wrong conclusion.
		if i == 0 && block.End.LessThanEq(ackNo) {
			h.logger.Debugf("Received D-SACK below cumulative ACK %d: %s", ackNo, block)
		} else if i == 0 && len(opt.Blocks) > 1 && block.End.GreaterThan(ackNo) && opt.Blocks[1].Contains(block) {
			h.logger.Debugf("Received D-SACK above cumulative ACK %d: %s, contained in %s", ackNo, block, opt.Blocks[1])
		}
		if block.End.GreaterThan(ackNo) && block.End.GreaterThan(h.state.SndUna) {
			h.rexmitQueue.SetSackedBit(block.Start, block.End)
		} else if h.logger.Debug() {
			h.logger.Debugf("Ignoring SACK %s below the cumulative ACK point %d", block, h.state.SndUna)
		}
	}
	h.rcvSacks += uint64(len(opt.Blocks))
	if h.tracer != nil && h.tracer.ReceivedSack != nil {
		h.tracer.ReceivedSack(opt.Blocks)
	}
	return true
}

// IsLost says if the byte at seq is considered lost: either DupThresh
// discontiguous SACKed blocks arrived above seq, or DupThresh * SMSS bytes
// above seq were SACKed (RFC 3517, section 4).
func (h *sentSegmentHandler) IsLost(seq protocol.SeqNum) bool {
	if !h.state.SackEnabled {
		panic("ackhandler BUG: IsLost called without SACK enabled")
	}
	if seq.LessThan(h.state.SndUna) {
		panic(fmt.Sprintf("ackhandler BUG: IsLost(%d) called below SndUna %d", seq, h.state.SndUna))
	}
	return h.rexmitQueue.NumDiscontiguousSacksAbove(seq) >= h.state.DupThresh ||
		h.rexmitQueue.SackedBytesAbove(seq) >= protocol.ByteCount(h.state.DupThresh)*h.state.SndMss
}

// SetPipe recomputes the estimate of the number of bytes in flight by
// walking the sequence space between SndUna and SndMax (RFC 3517, section
// 4). A segment that was retransmitted without being considered lost is
// counted twice, once per branch. RFC 3517 documents this double counting
// and reference implementations depend on it.
func (h *sentSegmentHandler) SetPipe() {
	if !h.state.SackEnabled {
		panic("ackhandler BUG: SetPipe called without SACK enabled")
	}
	h.highRxt = h.rexmitQueue.HighestRexmittedSeqNum()
	h.pipe = 0
	var length protocol.ByteCount
	for s1 := h.state.SndUna; s1.LessThan(h.state.SndMax); s1 = s1.Add(length) {
		var sacked bool
		length, sacked, _ = h.rexmitQueue.CheckSackBlock(s1)
		if sacked {
			continue
		}
		if !h.IsLost(s1) {
			h.pipe += length
		}
		if s1.LessThan(h.highRxt) {
			h.pipe += length
		}
	}
	if h.tracer != nil && h.tracer.UpdatedRecoveryState != nil {
		h.tracer.UpdatedRecoveryState(h.state.SndCwnd, h.state.Ssthresh, h.pipe, h.state.DupAcks)
	}
}

// NextSeg determines the next segment to transmit, applying the four rules
// of RFC 3517, section 4, in order.
func (h *sentSegmentHandler) NextSeg() (protocol.SeqNum, bool) {
	if !h.state.SackEnabled {
		panic("ackhandler BUG: NextSeg called without SACK enabled")
	}
	h.highRxt = h.rexmitQueue.HighestRexmittedSeqNum()
	highestSacked := h.rexmitQueue.HighestSackedSeqNum()
	step := h.state.SndMss
	if h.state.TsEnabled {
		// the Timestamps option shrinks the payload of every segment
		step -= protocol.TimestampsOptionPaddedSize
	}

	// Rule 1: the smallest unSACKed sequence number above HighRxt and below
	// the highest SACKed byte that is considered lost.
	for s2 := h.highRxt; s2.LessThan(h.state.SndMax) && s2.LessThan(highestSacked); s2 = s2.Add(step) {
		var sacked bool
		step, sacked, _ = h.rexmitQueue.CheckSackBlock(s2)
		if !sacked {
			if h.IsLost(s2) {
				return s2, true
			}
			// if s2 is not lost, no higher sequence number is either
			break
		}
	}

	// Rule 2: previously unsent data, if there is any and the receiver's
	// advertised window allows.
	if buffered := h.conn.BytesAvailable(); buffered > 0 && int64(h.state.SndWnd)-int64(h.pipe) >= int64(h.state.SndMss) {
		return h.state.SndMax, true
	}

	// Rule 3: retransmission last resort, the positional criteria of rule 1
	// without the loss test. Keeps the ACK clock going and can avoid a
	// retransmission timeout.
	for s3 := h.highRxt; s3.LessThan(h.state.SndMax) && s3.LessThan(highestSacked); s3 = s3.Add(step) {
		var sacked bool
		step, sacked, _ = h.rexmitQueue.CheckSackBlock(s3)
		if !sacked {
			return s3, true
		}
	}

	// Rule 4: nothing to send.
	return 0, false
}
