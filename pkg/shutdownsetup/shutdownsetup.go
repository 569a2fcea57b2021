package shutdownsetup

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hector17rock/SeatServe/pkg/logger"
)

// ShutdownTimeout bounds how long in-flight requests may take to drain.
const ShutdownTimeout = 10 * time.Second

// SetupGracefulShutdown blocks until SIGINT or SIGTERM arrives, then drains
// the HTTP server. Cleanup funcs run after the server has stopped, in order.
func SetupGracefulShutdown(server *http.Server, log *logger.Logger, cleanup ...func()) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	sig := <-stop
	log.Info("Shutdown signal received", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Graceful shutdown failed, forcing close", "error", err)
		if err := server.Close(); err != nil {
			log.Error("Server close failed", "error", err)
		}
	} else {
		log.Info("Server stopped gracefully")
	}

	for _, fn := range cleanup {
		fn()
	}
}
