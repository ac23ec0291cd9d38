package httpserver

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	metricRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pulse",
		Subsystem: "web",
		Name:      "sidebar_renders_total",
		Help:      "Sidebar renders by route and panel state.",
	}, []string{"route", "panel"})
	metricSelections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pulse",
		Subsystem: "web",
		Name:      "active_entry_renders_total",
		Help:      "Sidebar renders by active entry label.",
	}, []string{"entry"})
	metricRejected = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pulse",
		Subsystem: "web",
		Name:      "rejected_queries_total",
		Help:      "Requests rejected for naming an unknown entry.",
	})
)

func panelLabel(expanded bool) string {
	if expanded {
		return "expanded"
	}
	return "collapsed"
}

// observeRender records one successful sidebar render.
func observeRender(route string, v sidebarView) {
	metricRenders.WithLabelValues(route, panelLabel(v.Expanded)).Inc()
	metricSelections.WithLabelValues(v.Active).Inc()
}

func metricsHandler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
