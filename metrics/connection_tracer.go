// Package metrics exposes loss recovery metrics via Prometheus.
package metrics

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sack-go/sack-go/logging"
)

const metricNamespace = "sackgo"

var (
	recoveriesStarted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "loss_recoveries_started_total",
			Help:      "Loss Recovery Episodes Started",
		},
		[]string{"dir"},
	)
	recoveriesFinished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "loss_recoveries_finished_total",
			Help:      "Loss Recovery Episodes Finished",
		},
		[]string{"dir"},
	)
	segmentsRetransmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "segments_retransmitted_total",
			Help:      "Segments Retransmitted",
		},
		[]string{"dir"},
	)
	bytesRetransmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "bytes_retransmitted_total",
			Help:      "Bytes Retransmitted",
		},
		[]string{"dir"},
	)
	segmentsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "segments_sent_total",
			Help:      "Segments Sent",
		},
		[]string{"dir"},
	)
	limitedTransmits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "limited_transmit_segments_total",
			Help:      "Segments Sent by Limited Transmit",
		},
		[]string{"dir"},
	)
	sacksReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "sack_options_received_total",
			Help:      "SACK Options Received",
		},
		[]string{"dir"},
	)
	sacksSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "sack_options_sent_total",
			Help:      "SACK Options Sent",
		},
		[]string{"dir", "dsack"},
	)
	rexmitTimerRestarts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "rexmit_timer_restarts_total",
			Help:      "Retransmission Timer Restarts",
		},
		[]string{"dir"},
	)
	pipeBytes = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: metricNamespace,
			Name:      "recovery_pipe_bytes",
			Help:      "Pipe Estimate of Bytes in Flight",
		},
		[]string{"dir"},
	)
	congestionWindowBytes = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: metricNamespace,
			Name:      "congestion_window_bytes",
			Help:      "Congestion Window",
		},
		[]string{"dir"},
	)
	ssthreshBytes = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: metricNamespace,
			Name:      "ssthresh_bytes",
			Help:      "Slow Start Threshold",
		},
		[]string{"dir"},
	)
)

// DefaultTracer returns a callback that creates a metrics ConnectionTracer
// using the default Prometheus registerer.
func DefaultTracer() func(_ context.Context, p logging.Perspective, connID string) *logging.ConnectionTracer {
	return DefaultTracerWithRegisterer(prometheus.DefaultRegisterer)
}

// DefaultTracerWithRegisterer returns a callback that creates a metrics
// ConnectionTracer using a given Prometheus registerer.
func DefaultTracerWithRegisterer(registerer prometheus.Registerer) func(_ context.Context, p logging.Perspective, connID string) *logging.ConnectionTracer {
	return func(_ context.Context, p logging.Perspective, _ string) *logging.ConnectionTracer {
		return NewConnectionTracerWithRegisterer(registerer, p)
	}
}

// NewConnectionTracerWithRegisterer creates a new connection tracer with a
// given Prometheus registerer.
func NewConnectionTracerWithRegisterer(registerer prometheus.Registerer, p logging.Perspective) *logging.ConnectionTracer {
	for _, c := range [...]prometheus.Collector{
		recoveriesStarted,
		recoveriesFinished,
		segmentsRetransmitted,
		bytesRetransmitted,
		segmentsSent,
		limitedTransmits,
		sacksReceived,
		sacksSent,
		rexmitTimerRestarts,
		pipeBytes,
		congestionWindowBytes,
		ssthreshBytes,
	} {
		if err := registerer.Register(c); err != nil {
			if ok := errors.As(err, &prometheus.AlreadyRegisteredError{}); !ok {
				panic(err)
			}
		}
	}

	direction := p.String()

	return &logging.ConnectionTracer{
		EnteredLossRecovery: func(_ logging.SeqNum, ssthresh logging.ByteCount) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, direction)
			recoveriesStarted.WithLabelValues(*tags...).Inc()
			ssthreshBytes.WithLabelValues(*tags...).Set(float64(ssthresh))
		},
		ExitedLossRecovery: func(_ logging.SeqNum) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, direction)
			recoveriesFinished.WithLabelValues(*tags...).Inc()
		},
		UpdatedRecoveryState: func(cwnd, ssthresh, pipe logging.ByteCount, _ int) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, direction)
			congestionWindowBytes.WithLabelValues(*tags...).Set(float64(cwnd))
			ssthreshBytes.WithLabelValues(*tags...).Set(float64(ssthresh))
			pipeBytes.WithLabelValues(*tags...).Set(float64(pipe))
		},
		RetransmittedSegment: func(_ logging.SeqNum, length logging.ByteCount) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, direction)
			segmentsRetransmitted.WithLabelValues(*tags...).Inc()
			bytesRetransmitted.WithLabelValues(*tags...).Add(float64(length))
		},
		SentSegment: func(_ logging.SeqNum, _ logging.ByteCount, _ bool) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, direction)
			segmentsSent.WithLabelValues(*tags...).Inc()
		},
		ReceivedSack: func(_ []logging.SackBlock) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, direction)
			sacksReceived.WithLabelValues(*tags...).Inc()
		},
		SentSack: func(_ []logging.SackBlock, dsack bool) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, direction)
			if dsack {
				*tags = append(*tags, "true")
			} else {
				*tags = append(*tags, "false")
			}
			sacksSent.WithLabelValues(*tags...).Inc()
		},
		LimitedTransmit: func(_ logging.SeqNum, _ logging.ByteCount) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, direction)
			limitedTransmits.WithLabelValues(*tags...).Inc()
		},
		RestartedRexmitTimer: func() {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, direction)
			rexmitTimerRestarts.WithLabelValues(*tags...).Inc()
		},
	}
}
