package ackhandler

import (
	"github.com/sack-go/sack-go/internal/protocol"
	"github.com/sack-go/sack-go/internal/utils"
	"github.com/sack-go/sack-go/internal/wire"
	"github.com/sack-go/sack-go/logging"
)

// The receivedSackTracker tracks the out-of-order ranges a receiver still
// needs to report and builds the SACK option of outgoing ACKs, applying the
// block ordering rules of RFC 2018 and the D-SACK rules of RFC 2883.
type receivedSackTracker struct {
	state    *State
	rcvQueue ReceiveQueue

	// blocks awaiting (re-)transmission, most recently reported first
	pending []wire.SackBlock

	// the range of the segment that triggered the next ACK
	start protocol.SeqNum
	end   protocol.SeqNum

	sndSack  bool
	sndDsack bool

	// total number of SACK blocks sent, for tracing
	sndSacks uint64

	tracer *logging.ConnectionTracer
	logger utils.Logger
}

var _ SackGenerator = &receivedSackTracker{}

func newReceivedSackTracker(
	state *State,
	rcvQueue ReceiveQueue,
	tracer *logging.ConnectionTracer,
	logger utils.Logger,
) *receivedSackTracker {
	return &receivedSackTracker{
		state:    state,
		rcvQueue: rcvQueue,
		tracer:   tracer,
		logger:   logger,
	}
}

// SegmentArrived records an inbound data segment. It must be called before
// the receive queue advances RcvNxt. A segment entirely below RcvNxt, or
// one that duplicates an already-reported block above it, triggers a D-SACK
// report; a segment extending above RcvNxt triggers a plain SACK.
func (t *receivedSackTracker) SegmentArrived(start, end protocol.SeqNum) {
	if start == end {
		return
	}
	t.start, t.end = start, end
	switch {
	case end.LessThanEq(t.state.RcvNxt):
		t.logger.Debugf("Received duplicate segment [%d..%d) below RcvNxt %d, scheduling a D-SACK", start, end, t.state.RcvNxt)
		t.sndDsack = true
	case t.duplicatesPendingBlock(start, end):
		t.logger.Debugf("Received duplicate segment [%d..%d) above RcvNxt %d, scheduling a D-SACK", start, end, t.state.RcvNxt)
		t.sndDsack = true
	default:
		t.sndSack = true
	}
}

func (t *receivedSackTracker) duplicatesPendingBlock(start, end protocol.SeqNum) bool {
	b := wire.SackBlock{Start: start, End: end}
	for _, p := range t.pending {
		if p.End.GreaterThan(t.state.RcvNxt) && p.Contains(b) {
			return true
		}
	}
	return false
}

// HasPendingSacks says if the next outgoing ACK should carry a SACK option.
func (t *receivedSackTracker) HasPendingSacks() bool {
	return t.sndSack || t.sndDsack
}

// AppendSackOption builds the SACK option for the next outgoing ACK.
// usedOptionsLen is the number of option bytes the header already uses. The
// option value is immutable, the caller attaches it to the header. It
// returns nil when there is nothing to report or no block fits.
func (t *receivedSackTracker) AppendSackOption(usedOptionsLen protocol.ByteCount) *wire.SackOption {
	start, end := t.start, t.end

	// prune blocks below the cumulative ACK point and empty blocks
	pending := t.pending[:0]
	for _, b := range t.pending {
		if b.Empty() || b.End.LessThanEq(t.state.RcvNxt) {
			continue
		}
		pending = append(pending, b)
	}
	t.pending = pending

	if usedOptionsLen > protocol.MaxOptionsSize-protocol.SackOptionHeaderSize-protocol.SackBlockSize {
		t.logger.Errorf("No room for a SACK option: %d option bytes already in use", usedOptionsLen)
		t.reset()
		return nil
	}

	var dsackInserted bool
	if start != end {
		if t.sndDsack {
			// The right edge of the D-SACK block is the sequence number
			// immediately following the duplicate contiguous sequence
			// (RFC 2883, section 3), so a block straddling the cumulative
			// ACK point is clipped at RcvNxt.
			if start.LessThan(t.state.RcvNxt) && t.state.RcvNxt.LessThan(end) {
				end = t.state.RcvNxt
			}
			t.pending = append([]wire.SackBlock{{Start: start, End: end}}, t.pending...)
			dsackInserted = true
		} else if end.GreaterThan(t.state.RcvNxt) {
			// The first block must describe the contiguous block of data
			// containing the segment that triggered this ACK (RFC 2018,
			// section 4), so the triggering range is expanded to the edges
			// the receive queue reports.
			block := wire.SackBlock{Start: t.rcvQueue.LE(start), End: t.rcvQueue.RE(end)}
			t.pending = append([]wire.SackBlock{block}, t.pending...)
		}

		// Blocks that became subsets of an earlier (more recent) block are
		// not repeated. The D-SACK block is exempt: it may well be a subset
		// of the block following it.
		first := 0
		if dsackInserted {
			first = 1
		}
		for i := first; i < len(t.pending); i++ {
			for j := i + 1; j < len(t.pending); j++ {
				if t.pending[i].Contains(t.pending[j]) {
					t.pending = append(t.pending[:j], t.pending[j+1:]...)
					j--
				}
			}
		}
	}

	n := len(t.pending)
	if maxBlocks := int((protocol.MaxOptionsSize - usedOptionsLen - protocol.SackOptionHeaderSize) / protocol.SackBlockSize); n > maxBlocks {
		n = maxBlocks
	}
	if n == 0 {
		if dsackInserted {
			t.pending = t.pending[1:]
		}
		t.reset()
		return nil
	}

	// NOP padding, so that the option ends on a 4 byte boundary
	var padding int
	for l := usedOptionsLen; l%4 != 2; l++ {
		padding++
	}

	opt := &wire.SackOption{
		Padding: padding,
		DSack:   dsackInserted,
		Blocks:  append([]wire.SackBlock(nil), t.pending[:n]...),
	}

	// Each duplicate contiguous sequence is reported in at most one D-SACK
	// block (RFC 2883, section 3), so the entry is dropped right away.
	if dsackInserted {
		t.pending = t.pending[1:]
	}

	t.sndSacks += uint64(n)
	if t.logger.Debug() {
		t.logger.Debugf("Added %d SACK block(s) to the outgoing ACK, %d sent in total", n, t.sndSacks)
	}
	if t.tracer != nil && t.tracer.SentSack != nil {
		t.tracer.SentSack(opt.Blocks, opt.DSack)
	}
	t.reset()
	return opt
}

func (t *receivedSackTracker) reset() {
	t.sndSack = false
	t.sndDsack = false
	t.start = 0
	t.end = 0
}
