// Command example simulates a unidirectional TCP data transfer over a lossy
// link and drives SACK based loss recovery on the sending side. It writes a
// qlog trace for both endpoints when the QLOGDIR environment variable is set
// and prints Prometheus recovery metrics when done.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sack-go/sack-go/bitstream"
	"github.com/sack-go/sack-go/internal/ackhandler"
	"github.com/sack-go/sack-go/internal/protocol"
	"github.com/sack-go/sack-go/internal/utils"
	"github.com/sack-go/sack-go/internal/utils/ringbuffer"
	"github.com/sack-go/sack-go/internal/wire"
	"github.com/sack-go/sack-go/logging"
	"github.com/sack-go/sack-go/metrics"
	"github.com/sack-go/sack-go/qlog"
)

const (
	iss       = protocol.SeqNum(1000)
	mss       = protocol.ByteCount(1000)
	rto       = 200 * time.Millisecond
	maxRounds = 100000
)

// A segment is what travels over the simulated link, in either direction.
type segment struct {
	seq    protocol.SeqNum
	length protocol.ByteCount

	ack     bool
	ackNo   protocol.SeqNum
	sackRaw []byte // serialized SACK option, without the NOP padding
}

// The link delivers segments in order. Data segments are dropped with the
// configured loss rate, ACKs always arrive.
type link struct {
	queue    ringbuffer.RingBuffer[segment]
	rand     utils.Rand
	lossPct  int32
	dropped  int
	delivers int
}

func (l *link) send(s segment) {
	if !s.ack && l.lossPct > 0 && l.rand.Int31n(100) < l.lossPct {
		l.dropped++
		return
	}
	l.queue.PushBack(s)
}

func (l *link) recv() (segment, bool) {
	if l.queue.Empty() {
		return segment{}, false
	}
	l.delivers++
	return l.queue.PopFront(), true
}

// sender owns the send side connection state and implements
// ackhandler.Connection for the loss recovery handler.
type sender struct {
	state      *ackhandler.State
	scoreboard *ackhandler.Scoreboard
	recovery   ackhandler.LossRecovery
	link       *link
	tracer     *logging.ConnectionTracer
	timer      *utils.Timer
	dataEnd    protocol.SeqNum // sequence number past the last byte to send
}

var _ ackhandler.Connection = &sender{}

func (s *sender) SendSegment(maxBytes protocol.ByteCount) protocol.ByteCount {
	seq := s.state.SndNxt
	length := maxBytes
	if remaining := seq.Size(s.dataEnd); remaining < length {
		length = remaining
	}
	if length == 0 {
		return 0
	}
	retransmission := seq.LessThan(s.state.SndMax)
	s.scoreboard.EnqueueSentData(seq, seq.Add(length))
	s.link.send(segment{seq: seq, length: length})
	s.state.SndNxt = seq.Add(length)
	if s.state.SndNxt.GreaterThan(s.state.SndMax) {
		s.state.SndMax = s.state.SndNxt
	}
	if s.tracer != nil && s.tracer.SentSegment != nil {
		s.tracer.SentSegment(seq, length, retransmission)
	}
	return length
}

func (s *sender) RetransmitOneSegment(calledAtRto bool) {
	seq := s.state.SndUna
	length := mss
	if remaining := seq.Size(s.dataEnd); remaining < length {
		length = remaining
	}
	if length == 0 {
		return
	}
	s.scoreboard.EnqueueSentData(seq, seq.Add(length))
	s.link.send(segment{seq: seq, length: length})
	if calledAtRto && s.tracer != nil && s.tracer.RetransmittedSegment != nil {
		s.tracer.RetransmittedSegment(seq, length)
	}
}

func (s *sender) BytesInFlight() protocol.ByteCount {
	return s.state.SndUna.Size(s.state.SndMax)
}

func (s *sender) BytesAvailable() protocol.ByteCount {
	return s.state.SndMax.Size(s.dataEnd)
}

func (s *sender) RestartRexmitTimer() {
	s.timer.Reset(time.Now().Add(rto))
}

func (s *sender) ConnState() protocol.ConnState { return protocol.StateEstablished }

// fillWindow sends new data until the congestion window is used up.
func (s *sender) fillWindow() {
	// new data starts at SndMax, recovery may have left SndNxt below it
	if s.state.SndNxt.LessThan(s.state.SndMax) {
		s.state.SndNxt = s.state.SndMax
	}
	for {
		inFlight := s.BytesInFlight()
		if inFlight >= s.state.SndCwnd || s.BytesAvailable() == 0 {
			return
		}
		if !s.state.SndNxt.Add(mss).LessThanEq(s.state.SndUna.Add(s.state.SndWnd)) {
			return
		}
		if s.SendSegment(mss) == 0 {
			return
		}
	}
}

func (s *sender) processAck(seg segment) {
	var opt *wire.SackOption
	if seg.sackRaw != nil {
		parsed, err := wire.ParseSackOption(seg.sackRaw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "dropping malformed SACK option: %s\n", err)
		} else {
			opt = parsed
		}
	}
	if opt != nil {
		s.recovery.ProcessSackOption(seg.ackNo, opt)
	}
	switch {
	case seg.ackNo.GreaterThan(s.state.SndUna):
		firstSeqAcked := s.state.SndUna
		s.state.SndUna = seg.ackNo
		if s.state.SndNxt.LessThan(seg.ackNo) {
			s.state.SndNxt = seg.ackNo
		}
		s.scoreboard.DiscardUpTo(seg.ackNo)
		s.recovery.ReceivedDataAck(firstSeqAcked)
	case seg.ackNo == s.state.SndUna && s.state.SndUna != s.state.SndMax:
		s.state.DupAcks++
		s.recovery.ReceivedDuplicateAck()
	}
}

func (s *sender) done() bool { return s.state.SndUna == s.dataEnd }

// receiver tracks the out-of-order segments it received and generates the
// SACK options of its ACKs. The interval list doubles as the
// ackhandler.ReceiveQueue consulted by the SACK generator.
type receiver struct {
	state     *ackhandler.State
	generator ackhandler.SackGenerator
	link      *link
	intervals []wire.SackBlock // disjoint, sorted, all above RcvNxt
}

var _ ackhandler.ReceiveQueue = &receiver{}

func (r *receiver) LE(seq protocol.SeqNum) protocol.SeqNum {
	for _, iv := range r.intervals {
		if seq.InRange(iv.Start, iv.End) || seq == iv.End {
			return iv.Start
		}
	}
	return seq
}

func (r *receiver) RE(seq protocol.SeqNum) protocol.SeqNum {
	for _, iv := range r.intervals {
		if seq.InRange(iv.Start, iv.End) || seq == iv.Start {
			return iv.End
		}
	}
	return seq
}

// insert merges [start, end) into the interval list.
func (r *receiver) insert(start, end protocol.SeqNum) {
	merged := wire.SackBlock{Start: start, End: end}
	var rest []wire.SackBlock
	for _, iv := range r.intervals {
		switch {
		case iv.End.LessThan(merged.Start) || iv.Start.GreaterThan(merged.End):
			rest = append(rest, iv)
		default:
			merged.Start = protocol.Min(merged.Start, iv.Start)
			merged.End = protocol.Max(merged.End, iv.End)
		}
	}
	// keep the list sorted
	intervals := make([]wire.SackBlock, 0, len(rest)+1)
	inserted := false
	for _, iv := range rest {
		if !inserted && merged.Start.LessThan(iv.Start) {
			intervals = append(intervals, merged)
			inserted = true
		}
		intervals = append(intervals, iv)
	}
	if !inserted {
		intervals = append(intervals, merged)
	}
	r.intervals = intervals
}

func (r *receiver) processData(seg segment) {
	start := seg.seq
	end := seg.seq.Add(seg.length)
	r.generator.SegmentArrived(start, end)
	if end.GreaterThan(r.state.RcvNxt) {
		r.insert(protocol.Max(start, r.state.RcvNxt), end)
	}
	// advance RcvNxt over the first interval if the gap closed
	if len(r.intervals) > 0 && r.intervals[0].Start.LessThanEq(r.state.RcvNxt) {
		r.state.RcvNxt = protocol.Max(r.state.RcvNxt, r.intervals[0].End)
		r.intervals = r.intervals[1:]
	}
	r.sendAck()
}

func (r *receiver) sendAck() {
	ack := segment{ack: true, ackNo: r.state.RcvNxt}
	if opt := r.generator.AppendSackOption(0); opt != nil {
		s := bitstream.New()
		s.Grow(int(opt.Length()))
		opt.Write(s)
		ack.sackRaw = s.Data()[opt.Padding:]
	}
	r.link.send(ack)
}

func main() {
	lossPct := flag.Int("loss", 10, "data segment loss rate in percent")
	amount := flag.Int("bytes", 200_000, "number of bytes to transfer")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	logger := utils.DefaultLogger
	if *verbose {
		logger.SetLogLevel(utils.LogLevelDebug)
	}

	registry := prometheus.NewRegistry()
	newMetricsTracer := metrics.DefaultTracerWithRegisterer(registry)

	newTracer := func(p logging.Perspective) *logging.ConnectionTracer {
		tracers := []*logging.ConnectionTracer{newMetricsTracer(context.Background(), p, "example")}
		if qlogTracer := qlog.DefaultTracer(context.Background(), p, "example"); qlogTracer != nil {
			tracers = append(tracers, qlogTracer)
		}
		return logging.NewMultiplexedConnectionTracer(tracers...)
	}
	senderTracer := newTracer(logging.PerspectiveSender)
	receiverTracer := newTracer(logging.PerspectiveReceiver)

	toReceiver := &link{lossPct: int32(*lossPct)}
	toSender := &link{}

	sndState := &ackhandler.State{
		SndUna:      iss,
		SndNxt:      iss,
		SndMax:      iss,
		SndWnd:      1 << 20,
		SndMss:      mss,
		SndCwnd:     10 * mss,
		Ssthresh:    1 << 20,
		DupThresh:   protocol.DupThresh,
		SackEnabled: true,
	}
	snd := &sender{
		state:      sndState,
		scoreboard: ackhandler.NewScoreboard(iss, mss),
		link:       toReceiver,
		tracer:     senderTracer,
		timer:      utils.NewTimer(),
		dataEnd:    iss.Add(protocol.ByteCount(*amount)),
	}
	recovery, _ := ackhandler.NewAckHandler(sndState, snd, snd.scoreboard, nil, senderTracer, logger.WithPrefix("sender"))
	snd.recovery = recovery

	rcvState := &ackhandler.State{RcvNxt: iss, SackEnabled: true}
	rcv := &receiver{state: rcvState, link: toSender}
	_, generator := ackhandler.NewAckHandler(rcvState, nil, nil, rcv, receiverTracer, logger.WithPrefix("receiver"))
	rcv.generator = generator

	snd.RestartRexmitTimer()
	snd.fillWindow()

	rounds := 0
	for !snd.done() && rounds < maxRounds {
		rounds++
		if seg, ok := toReceiver.recv(); ok {
			rcv.processData(seg)
		}
		if seg, ok := toSender.recv(); ok {
			snd.processAck(seg)
			snd.fillWindow()
		}
		if toReceiver.queue.Empty() && toSender.queue.Empty() && !snd.done() {
			// everything in flight was lost, wait for the REXMIT timeout
			<-snd.timer.Chan()
			snd.timer.SetRead()
			sndState.DupAcks = 0
			snd.RetransmitOneSegment(true)
			snd.RestartRexmitTimer()
		}
	}
	snd.timer.Stop()

	if senderTracer != nil && senderTracer.Close != nil {
		senderTracer.Close()
	}
	if receiverTracer != nil && receiverTracer.Close != nil {
		receiverTracer.Close()
	}

	fmt.Printf("transferred %d bytes in %d rounds (%d segments dropped, %d delivered)\n",
		*amount, rounds, toReceiver.dropped, toReceiver.delivers+toSender.delivers)

	families, err := registry.Gather()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gathering metrics failed: %s\n", err)
		os.Exit(1)
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var value float64
			switch {
			case m.GetCounter() != nil:
				value = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				value = m.GetGauge().GetValue()
			}
			labels := ""
			for _, l := range m.GetLabel() {
				labels += fmt.Sprintf(" %s=%s", l.GetName(), l.GetValue())
			}
			fmt.Printf("%-45s%s: %v\n", mf.GetName(), labels, value)
		}
	}
}
