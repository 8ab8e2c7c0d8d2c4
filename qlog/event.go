package qlog

import (
	"time"

	"github.com/francoispqt/gojay"

	"github.com/sack-go/sack-go/logging"
)

func milliseconds(dur time.Duration) float64 { return float64(dur.Nanoseconds()) / 1e6 }

type eventDetails interface {
	Category() category
	Name() string
	gojay.MarshalerJSONObject
}

type event struct {
	RelativeTime time.Duration
	eventDetails
}

var _ gojay.MarshalerJSONObject = event{}

func (e event) IsNil() bool { return false }
func (e event) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Float64Key("time", milliseconds(e.RelativeTime))
	enc.StringKey("name", e.Category().String()+":"+e.Name())
	enc.ObjectKey("data", e.eventDetails)
}

type sackBlock logging.SackBlock

var _ gojay.MarshalerJSONArray = sackBlock{}

func (b sackBlock) IsNil() bool { return false }
func (b sackBlock) MarshalJSONArray(enc *gojay.Encoder) {
	enc.Uint64(uint64(b.Start))
	enc.Uint64(uint64(b.End))
}

type sackBlocks []logging.SackBlock

var _ gojay.MarshalerJSONArray = sackBlocks{}

func (bs sackBlocks) IsNil() bool { return bs == nil }
func (bs sackBlocks) MarshalJSONArray(enc *gojay.Encoder) {
	for _, b := range bs {
		enc.Array(sackBlock(b))
	}
}

type eventLossRecoveryStarted struct {
	RecoveryPoint logging.SeqNum
	Ssthresh      logging.ByteCount
}

func (e eventLossRecoveryStarted) Category() category { return categoryRecovery }
func (e eventLossRecoveryStarted) Name() string       { return "loss_recovery_started" }
func (e eventLossRecoveryStarted) IsNil() bool        { return false }

func (e eventLossRecoveryStarted) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Uint64Key("recovery_point", uint64(e.RecoveryPoint))
	enc.Uint64Key("ssthresh", uint64(e.Ssthresh))
}

type eventLossRecoveryFinished struct {
	SndUna logging.SeqNum
}

func (e eventLossRecoveryFinished) Category() category { return categoryRecovery }
func (e eventLossRecoveryFinished) Name() string       { return "loss_recovery_finished" }
func (e eventLossRecoveryFinished) IsNil() bool        { return false }

func (e eventLossRecoveryFinished) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Uint64Key("snd_una", uint64(e.SndUna))
}

type metrics struct {
	Cwnd     logging.ByteCount
	Ssthresh logging.ByteCount
	Pipe     logging.ByteCount
	DupAcks  int
}

// eventMetricsUpdated only encodes the fields that changed since the last
// metrics update of the trace.
type eventMetricsUpdated struct {
	Last    *metrics
	Current *metrics
}

func (e eventMetricsUpdated) Category() category { return categoryRecovery }
func (e eventMetricsUpdated) Name() string       { return "metrics_updated" }
func (e eventMetricsUpdated) IsNil() bool        { return false }

func (e eventMetricsUpdated) MarshalJSONObject(enc *gojay.Encoder) {
	if e.Last == nil || e.Last.Cwnd != e.Current.Cwnd {
		enc.Uint64Key("congestion_window", uint64(e.Current.Cwnd))
	}
	if e.Last == nil || e.Last.Ssthresh != e.Current.Ssthresh {
		enc.Uint64Key("ssthresh", uint64(e.Current.Ssthresh))
	}
	if e.Last == nil || e.Last.Pipe != e.Current.Pipe {
		enc.Uint64Key("pipe", uint64(e.Current.Pipe))
	}
	if e.Last == nil || e.Last.DupAcks != e.Current.DupAcks {
		enc.Uint64Key("dup_acks", uint64(e.Current.DupAcks))
	}
}

type eventSegmentRetransmitted struct {
	Seq    logging.SeqNum
	Length logging.ByteCount
}

func (e eventSegmentRetransmitted) Category() category { return categoryRecovery }
func (e eventSegmentRetransmitted) Name() string       { return "segment_retransmitted" }
func (e eventSegmentRetransmitted) IsNil() bool        { return false }

func (e eventSegmentRetransmitted) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Uint64Key("seq", uint64(e.Seq))
	enc.Uint64Key("length", uint64(e.Length))
}

type eventSegmentSent struct {
	Seq            logging.SeqNum
	Length         logging.ByteCount
	Retransmission bool
}

func (e eventSegmentSent) Category() category { return categoryTransport }
func (e eventSegmentSent) Name() string       { return "segment_sent" }
func (e eventSegmentSent) IsNil() bool        { return false }

func (e eventSegmentSent) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Uint64Key("seq", uint64(e.Seq))
	enc.Uint64Key("length", uint64(e.Length))
	if e.Retransmission {
		enc.BoolKey("retransmission", true)
	}
}

type eventLimitedTransmit struct {
	Seq    logging.SeqNum
	Length logging.ByteCount
}

func (e eventLimitedTransmit) Category() category { return categoryRecovery }
func (e eventLimitedTransmit) Name() string       { return "limited_transmit" }
func (e eventLimitedTransmit) IsNil() bool        { return false }

func (e eventLimitedTransmit) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Uint64Key("seq", uint64(e.Seq))
	enc.Uint64Key("length", uint64(e.Length))
}

type eventSackReceived struct {
	Blocks sackBlocks
}

func (e eventSackReceived) Category() category { return categoryRecovery }
func (e eventSackReceived) Name() string       { return "sack_received" }
func (e eventSackReceived) IsNil() bool        { return false }

func (e eventSackReceived) MarshalJSONObject(enc *gojay.Encoder) {
	enc.ArrayKey("blocks", e.Blocks)
}

type eventSackSent struct {
	Blocks sackBlocks
	DSack  bool
}

func (e eventSackSent) Category() category { return categoryTransport }
func (e eventSackSent) Name() string       { return "sack_sent" }
func (e eventSackSent) IsNil() bool        { return false }

func (e eventSackSent) MarshalJSONObject(enc *gojay.Encoder) {
	enc.ArrayKey("blocks", e.Blocks)
	if e.DSack {
		enc.BoolKey("dsack", true)
	}
}

type eventRexmitTimerRestarted struct{}

func (e eventRexmitTimerRestarted) Category() category { return categoryRecovery }
func (e eventRexmitTimerRestarted) Name() string       { return "rexmit_timer_restarted" }
func (e eventRexmitTimerRestarted) IsNil() bool        { return false }

func (e eventRexmitTimerRestarted) MarshalJSONObject(enc *gojay.Encoder) {}

type eventScoreboardDiscarded struct {
	UpTo logging.SeqNum
}

func (e eventScoreboardDiscarded) Category() category { return categoryRecovery }
func (e eventScoreboardDiscarded) Name() string       { return "scoreboard_discarded" }
func (e eventScoreboardDiscarded) IsNil() bool        { return false }

func (e eventScoreboardDiscarded) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Uint64Key("up_to", uint64(e.UpTo))
}
