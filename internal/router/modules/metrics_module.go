package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/oksasatya/shopcart-api/internal/interface/middleware"
	"github.com/oksasatya/shopcart-api/internal/metrics"
)

// MetricsModule serves the Prometheus scrape endpoint at /api/metrics.
type MetricsModule struct {
	Gatherer prometheus.Gatherer
}

func NewMetricsModule(g prometheus.Gatherer) *MetricsModule { return &MetricsModule{Gatherer: g} }

func (m *MetricsModule) Register(rg *gin.RouterGroup) {
	rl := limiter(120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/metrics", rl, gin.WrapH(metrics.Handler(m.Gatherer)))
}
