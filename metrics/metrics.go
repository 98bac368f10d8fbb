package metrics

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shop_http_requests_total",
		Help: "HTTP requests processed, by method, route and status code.",
	}, []string{"method", "route", "status"})

	CheckoutsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shop_checkouts_total",
		Help: "Checkout attempts by result (ok, empty_cart, insufficient_stock, error).",
	}, []string{"result"})
)

// Middleware counts every routed request. Unrouted paths are skipped so 404
// probing does not blow up label cardinality.
func Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			return
		}
		httpRequestsTotal.WithLabelValues(
			ctx.Request.Method,
			route,
			strconv.Itoa(ctx.Writer.Status()),
		).Inc()
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
