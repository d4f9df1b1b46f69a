package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	badgesAwarded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agencydesk_badges_awarded_total",
			Help: "Total number of achievements unlocked",
		},
		[]string{"type"},
	)
	digestMessages = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agencydesk_digest_messages_total",
			Help: "Daily digest deliveries by result",
		},
		[]string{"result"},
	)
)

// RegisterMetrics registers service collectors. Call it once from main.
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(badgesAwarded, digestMessages)
}
