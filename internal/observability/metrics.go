package observability

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/danmuck/tlwire/internal/protocol/bin"
	"github.com/danmuck/tlwire/internal/protocol/tl"
)

// CodecMetrics records envelope decodes. It implements tl.Observer.
type CodecMetrics struct {
	decodes      *prometheus.CounterVec
	decodeErrors *prometheus.CounterVec
	decodedBytes *prometheus.HistogramVec
}

var _ tl.Observer = (*CodecMetrics)(nil)

// NewCodecMetrics creates the collectors and registers them on reg.
func NewCodecMetrics(reg prometheus.Registerer) (*CodecMetrics, error) {
	m := &CodecMetrics{
		decodes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "tlwire",
				Subsystem: "codec",
				Name:      "decodes_total",
				Help:      "Objects decoded through the envelope.",
			},
			[]string{"constructor", "result"},
		),
		decodeErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "tlwire",
				Subsystem: "codec",
				Name:      "decode_errors_total",
				Help:      "Envelope decode failures by kind.",
			},
			[]string{"kind"},
		),
		decodedBytes: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "tlwire",
				Subsystem: "codec",
				Name:      "decoded_bytes",
				Help:      "Wire size of decoded objects in bytes.",
				Buckets:   prometheus.ExponentialBuckets(16, 4, 8),
			},
			[]string{"constructor"},
		),
	}
	for _, c := range []prometheus.Collector{m.decodes, m.decodeErrors, m.decodedBytes} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MustCodecMetrics is NewCodecMetrics that panics on registration failure.
func MustCodecMetrics(reg prometheus.Registerer) *CodecMetrics {
	m, err := NewCodecMetrics(reg)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *CodecMetrics) ObserveDecode(name string, size int, err error) {
	if name == "" {
		name = "unknown"
	}
	if err != nil {
		m.decodes.WithLabelValues(name, "error").Inc()
		m.decodeErrors.WithLabelValues(ErrorKind(err)).Inc()
		return
	}
	m.decodes.WithLabelValues(name, "ok").Inc()
	m.decodedBytes.WithLabelValues(name).Observe(float64(size))
}

// ErrorKind maps a codec error onto a short label value.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, bin.ErrTruncated):
		return "truncated"
	case errors.Is(err, bin.ErrUnknownConstructor):
		return "unknown_constructor"
	case errors.Is(err, bin.ErrMalformedVector):
		return "malformed_vector"
	case errors.Is(err, bin.ErrEncoding):
		return "encoding"
	case errors.Is(err, bin.ErrLimitExceeded):
		return "limit_exceeded"
	case errors.Is(err, bin.ErrInvalidLength):
		return "invalid_length"
	case errors.Is(err, tl.ErrCorruptPacked):
		return "corrupt_packed"
	case errors.Is(err, tl.ErrTrailingData):
		return "trailing_data"
	default:
		return "other"
	}
}
