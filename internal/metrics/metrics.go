// Package metrics exposes the process counters served at /metrics.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	denunciasSubmetidas = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vozurbana_denuncias_submetidas_total",
		Help: "Reports submitted, labeled by computed priority level.",
	}, []string{"prioridade"})

	confirmacoesRegistradas = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vozurbana_confirmacoes_total",
		Help: "Confirmation votes accepted.",
	})

	comentariosRegistrados = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vozurbana_comentarios_total",
		Help: "Comments accepted.",
	})
)

func DenunciaSubmetida(prioridade int) {
	denunciasSubmetidas.WithLabelValues(strconv.Itoa(prioridade)).Inc()
}

func ConfirmacaoRegistrada() { confirmacoesRegistradas.Inc() }

func ComentarioRegistrado() { comentariosRegistrados.Inc() }
