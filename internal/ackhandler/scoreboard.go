package ackhandler

import (
	"fmt"

	"github.com/sack-go/sack-go/internal/protocol"
)

// A scoreboardRegion is a run of bytes with uniform SACKed / retransmitted
// status. Regions are kept contiguous: the end of one region is the begin of
// the next.
type scoreboardRegion struct {
	begin     protocol.SeqNum
	end       protocol.SeqNum
	sacked    bool
	rexmitted bool
}

// The Scoreboard records, for every byte in [SndUna, SndMax), whether it has
// been selectively acknowledged and whether it has been retransmitted. It
// answers the queries the loss recovery algorithms of RFC 3517 are built on.
//
// It implements RexmitQueue.
type Scoreboard struct {
	begin   protocol.SeqNum // lowest sequence number covered, tracks SndUna
	end     protocol.SeqNum // one past the highest sequence number covered, tracks SndMax
	mss     protocol.ByteCount
	regions []scoreboardRegion
}

var _ RexmitQueue = &Scoreboard{}

// NewScoreboard creates a scoreboard starting empty at iss.
func NewScoreboard(iss protocol.SeqNum, mss protocol.ByteCount) *Scoreboard {
	return &Scoreboard{begin: iss, end: iss, mss: mss}
}

// EnqueueSentData records the transmission of [start, end). Bytes already
// covered by the scoreboard are marked as retransmitted, bytes beyond the
// covered range extend it.
func (s *Scoreboard) EnqueueSentData(start, end protocol.SeqNum) {
	if start == end {
		return
	}
	if end.GreaterThan(s.end) && start.GreaterThan(s.end) {
		panic(fmt.Sprintf("ackhandler BUG: scoreboard gap, sent [%d..%d) with coverage ending at %d", start, end, s.end))
	}
	if start.LessThan(s.end) {
		rexmitEnd := protocol.Min(end, s.end)
		s.split(start)
		s.split(rexmitEnd)
		for i := range s.regions {
			r := &s.regions[i]
			if r.begin.GreaterThanEq(start) && r.end.LessThanEq(rexmitEnd) {
				r.rexmitted = true
			}
		}
	}
	if end.GreaterThan(s.end) {
		if n := len(s.regions); n > 0 && !s.regions[n-1].sacked && !s.regions[n-1].rexmitted {
			s.regions[n-1].end = end
		} else {
			s.regions = append(s.regions, scoreboardRegion{begin: s.end, end: end})
		}
		s.end = end
	}
	s.coalesce()
}

// SetSackedBit marks [start, end) as selectively acknowledged. Parts of the
// range outside the scoreboard's coverage are ignored: SACK blocks below the
// cumulative ACK point or above SndMax carry no usable information.
func (s *Scoreboard) SetSackedBit(start, end protocol.SeqNum) {
	start = protocol.Max(start, s.begin)
	end = protocol.Min(end, s.end)
	if !start.LessThan(end) {
		return
	}
	s.split(start)
	s.split(end)
	for i := range s.regions {
		r := &s.regions[i]
		if r.begin.GreaterThanEq(start) && r.end.LessThanEq(end) {
			r.sacked = true
		}
	}
	s.coalesce()
}

// CheckSackBlock reports the status of the block starting at seq. The run
// length is capped at the SMSS and never crosses a status boundary.
func (s *Scoreboard) CheckSackBlock(seq protocol.SeqNum) (length protocol.ByteCount, sacked, rexmitted bool) {
	if !seq.InRange(s.begin, s.end) {
		return 0, false, false
	}
	for _, r := range s.regions {
		if seq.GreaterThanEq(r.begin) && seq.LessThan(r.end) {
			length = seq.Size(r.end)
			if length > s.mss {
				length = s.mss
			}
			return length, r.sacked, r.rexmitted
		}
	}
	return 0, false, false
}

// NumDiscontiguousSacksAbove counts the discontiguous SACKed areas that
// extend above seq. Adjacent SACKed regions count as one area.
func (s *Scoreboard) NumDiscontiguousSacksAbove(seq protocol.SeqNum) int {
	var count int
	var inSackedArea bool
	for _, r := range s.regions {
		if !r.sacked {
			inSackedArea = false
			continue
		}
		if r.end.GreaterThan(seq) && !inSackedArea {
			count++
		}
		inSackedArea = true
	}
	return count
}

// SackedBytesAbove returns the number of SACKed bytes at or above seq.
func (s *Scoreboard) SackedBytesAbove(seq protocol.SeqNum) protocol.ByteCount {
	var total protocol.ByteCount
	for _, r := range s.regions {
		if !r.sacked || r.end.LessThanEq(seq) {
			continue
		}
		from := protocol.Max(r.begin, seq)
		total += from.Size(r.end)
	}
	return total
}

// TotalSackedBytes returns the number of SACKed bytes in the scoreboard.
func (s *Scoreboard) TotalSackedBytes() protocol.ByteCount {
	return s.SackedBytesAbove(s.begin)
}

// HighestSackedSeqNum returns the sequence number one past the highest
// SACKed byte, or the scoreboard's begin if nothing has been SACKed.
func (s *Scoreboard) HighestSackedSeqNum() protocol.SeqNum {
	highest := s.begin
	for _, r := range s.regions {
		if r.sacked {
			highest = r.end
		}
	}
	return highest
}

// HighestRexmittedSeqNum returns the sequence number one past the highest
// retransmitted byte, or the scoreboard's begin if nothing has been
// retransmitted.
func (s *Scoreboard) HighestRexmittedSeqNum() protocol.SeqNum {
	highest := s.begin
	for _, r := range s.regions {
		if r.rexmitted {
			highest = r.end
		}
	}
	return highest
}

// DiscardUpTo drops all bookkeeping below seq, the new cumulative ACK
// point. Regions above seq are preserved.
func (s *Scoreboard) DiscardUpTo(seq protocol.SeqNum) {
	if seq.LessThanEq(s.begin) {
		return
	}
	if seq.GreaterThan(s.end) {
		seq = s.end
	}
	s.split(seq)
	for len(s.regions) > 0 && s.regions[0].end.LessThanEq(seq) {
		s.regions = s.regions[1:]
	}
	s.begin = seq
}

// split introduces a region boundary at seq, if seq falls strictly inside a
// region.
func (s *Scoreboard) split(at protocol.SeqNum) {
	for i := range s.regions {
		r := s.regions[i]
		if at.GreaterThan(r.begin) && at.LessThan(r.end) {
			s.regions = append(s.regions, scoreboardRegion{})
			copy(s.regions[i+2:], s.regions[i+1:])
			s.regions[i].end = at
			s.regions[i+1] = scoreboardRegion{begin: at, end: r.end, sacked: r.sacked, rexmitted: r.rexmitted}
			return
		}
	}
}

// coalesce merges adjacent regions with identical status.
func (s *Scoreboard) coalesce() {
	for i := 0; i+1 < len(s.regions); {
		a, b := s.regions[i], s.regions[i+1]
		if a.sacked == b.sacked && a.rexmitted == b.rexmitted {
			s.regions[i].end = b.end
			s.regions = append(s.regions[:i+1], s.regions[i+2:]...)
		} else {
			i++
		}
	}
}

func (s *Scoreboard) String() string {
	str := fmt.Sprintf("scoreboard [%d..%d):", s.begin, s.end)
	for _, r := range s.regions {
		str += fmt.Sprintf(" [%d..%d)", r.begin, r.end)
		if r.sacked {
			str += "S"
		}
		if r.rexmitted {
			str += "R"
		}
	}
	return str
}
