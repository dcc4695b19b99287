package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los contadores del servicio. Registry propio (no el
// global) para poder instanciar varios en tests sin colisiones.
type Metrics struct {
	reg *prometheus.Registry

	TreatmentsCreated    prometheus.Counter
	OccurrencesGenerated prometheus.Counter
	TreatmentFailures    *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)

	return &Metrics{
		reg: reg,
		TreatmentsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "treatments_created_total",
			Help: "Planes de tratamiento creados exitosamente.",
		}),
		OccurrencesGenerated: factory.NewCounter(prometheus.CounterOpts{
			Name: "dose_occurrences_generated_total",
			Help: "Tomas agendadas generadas (sumadas por batch).",
		}),
		TreatmentFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "treatment_failures_total",
			Help: "Creaciones de tratamiento fallidas, por motivo.",
		}, []string{"reason"}),
	}
}

// Handler expone el registry en formato prometheus (montar en /metrics).
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}
