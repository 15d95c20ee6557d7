package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK             = "ok"
	resultAPIError       = "api_error"
	resultTransportError = "transport_error"
)

type Metrics struct {
	vtsRequestCounter          *prometheus.CounterVec
	vtsTokenIssuedCounter      prometheus.Counter
	vtsTokenInvalidatedCounter prometheus.Counter
	ttsRequestCounter          *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	metrics := new(Metrics)

	metrics.vtsRequestCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "yuna_vts_request_count",
		Help: "The number of requests sent to VTube Studio per message type and result",
	}, []string{"message_type", "result"})

	metrics.vtsTokenIssuedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "yuna_vts_token_issued_count",
		Help: "The number of authentication tokens issued by VTube Studio",
	})

	metrics.vtsTokenInvalidatedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "yuna_vts_token_invalidated_count",
		Help: "The number of times a stored token was rejected and discarded",
	})

	metrics.ttsRequestCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "yuna_tts_request_count",
		Help: "The number of synthesis requests forwarded to VOICEVOX per result",
	}, []string{"result"})

	return metrics
}

var (
	metrics = NewMetrics()
)
