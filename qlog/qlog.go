// Package qlog records the loss recovery events of a connection in a
// qlog-like NDJSON format.
package qlog

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/francoispqt/gojay"

	"github.com/sack-go/sack-go/logging"
)

const eventChanSize = 50

type connectionTracer struct {
	w             io.WriteCloser
	connID        string
	perspective   logging.Perspective
	referenceTime time.Time

	events     chan event
	encodeErr  error
	runStopped chan struct{}

	lastMetrics *metrics
}

// NewConnectionTracer records the recovery events of a connection to w.
func NewConnectionTracer(w io.WriteCloser, p logging.Perspective, connID string) *logging.ConnectionTracer {
	t := &connectionTracer{
		w:             w,
		connID:        connID,
		perspective:   p,
		runStopped:    make(chan struct{}),
		events:        make(chan event, eventChanSize),
		referenceTime: time.Now(),
	}
	go t.run()
	return &logging.ConnectionTracer{
		EnteredLossRecovery: func(recoveryPoint logging.SeqNum, ssthresh logging.ByteCount) {
			t.recordEvent(time.Now(), eventLossRecoveryStarted{RecoveryPoint: recoveryPoint, Ssthresh: ssthresh})
		},
		ExitedLossRecovery: func(sndUna logging.SeqNum) {
			t.recordEvent(time.Now(), eventLossRecoveryFinished{SndUna: sndUna})
		},
		UpdatedRecoveryState: func(cwnd, ssthresh, pipe logging.ByteCount, dupAcks int) {
			m := &metrics{Cwnd: cwnd, Ssthresh: ssthresh, Pipe: pipe, DupAcks: dupAcks}
			t.recordEvent(time.Now(), eventMetricsUpdated{Last: t.lastMetrics, Current: m})
			t.lastMetrics = m
		},
		RetransmittedSegment: func(seq logging.SeqNum, length logging.ByteCount) {
			t.recordEvent(time.Now(), eventSegmentRetransmitted{Seq: seq, Length: length})
		},
		SentSegment: func(seq logging.SeqNum, length logging.ByteCount, retransmission bool) {
			t.recordEvent(time.Now(), eventSegmentSent{Seq: seq, Length: length, Retransmission: retransmission})
		},
		ReceivedSack: func(blocks []logging.SackBlock) {
			t.recordEvent(time.Now(), eventSackReceived{Blocks: blocks})
		},
		SentSack: func(blocks []logging.SackBlock, dsack bool) {
			t.recordEvent(time.Now(), eventSackSent{Blocks: blocks, DSack: dsack})
		},
		LimitedTransmit: func(seq logging.SeqNum, length logging.ByteCount) {
			t.recordEvent(time.Now(), eventLimitedTransmit{Seq: seq, Length: length})
		},
		RestartedRexmitTimer: func() {
			t.recordEvent(time.Now(), eventRexmitTimerRestarted{})
		},
		DiscardedUpTo: func(seq logging.SeqNum) {
			t.recordEvent(time.Now(), eventScoreboardDiscarded{UpTo: seq})
		},
		Close: func() { t.Close() },
	}
}

func (t *connectionTracer) run() {
	defer close(t.runStopped)
	buf := &bytes.Buffer{}
	enc := gojay.NewEncoder(buf)
	tl := &topLevel{trace: trace{
		VantagePoint: vantagePoint{Type: t.perspective},
		CommonFields: commonFields{
			ConnID:        t.connID,
			ReferenceTime: t.referenceTime,
		},
	}}
	if err := enc.Encode(tl); err != nil {
		panic(fmt.Sprintf("qlog encoding into a bytes.Buffer failed: %s", err))
	}
	buf.WriteByte('\n')
	if _, err := t.w.Write(buf.Bytes()); err != nil {
		t.encodeErr = err
	}
	enc = gojay.NewEncoder(t.w)
	for ev := range t.events {
		if t.encodeErr != nil { // if encoding failed, just continue draining the event channel
			continue
		}
		if err := enc.Encode(ev); err != nil {
			t.encodeErr = err
			continue
		}
		if _, err := t.w.Write([]byte{'\n'}); err != nil {
			t.encodeErr = err
		}
	}
}

func (t *connectionTracer) Close() {
	if err := t.export(); err != nil {
		log.Printf("exporting qlog failed: %s\n", err)
	}
}

// export writes a qlog.
func (t *connectionTracer) export() error {
	close(t.events)
	<-t.runStopped
	if t.encodeErr != nil {
		return t.encodeErr
	}
	return t.w.Close()
}

func (t *connectionTracer) recordEvent(eventTime time.Time, details eventDetails) {
	t.events <- event{
		RelativeTime: eventTime.Sub(t.referenceTime),
		eventDetails: details,
	}
}
