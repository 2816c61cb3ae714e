package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	reportsGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "attend",
			Name:      "reports_generated_total",
			Help:      "Count of attendance reports generated by kind.",
		},
		[]string{"kind"},
	)

	punchesMarked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "attend",
			Name:      "punches_marked_total",
			Help:      "Count of punch events flagged by bookkeeping state.",
		},
		[]string{"state"},
	)

	deviceOnline = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "attend",
			Name:      "device_online",
			Help:      "Whether a terminal has produced events recently (1=online).",
		},
		[]string{"device"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(reportsGenerated, punchesMarked, deviceOnline)
	})
}

func IncReportGenerated(kind string) {
	reportsGenerated.WithLabelValues(kind).Inc()
}

func AddPunchesMarked(state string, n int) {
	punchesMarked.WithLabelValues(state).Add(float64(n))
}

func SetDeviceOnline(device string, online bool) {
	v := 0.0
	if online {
		v = 1.0
	}
	deviceOnline.WithLabelValues(device).Set(v)
}
