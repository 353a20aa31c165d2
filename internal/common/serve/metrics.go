package serve

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// ListenAndServeMetrics exposes the prometheus registry on /metrics and
// returns a function that shuts the server down.
func ListenAndServeMetrics(port int) (shutdown func()) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("Metrics server failure")
		}
	}()
	return func() {
		if err := srv.Shutdown(context.Background()); err != nil {
			log.WithError(err).Warn("Error shutting down metrics server")
		}
	}
}
