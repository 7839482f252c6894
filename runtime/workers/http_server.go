package workers

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"
)

const shutdownTimeout = 5 * time.Second

// HTTPServerWorker serves the router until the context is cancelled,
// then drains in-flight requests.
type HTTPServerWorker struct {
	log    *slog.Logger
	server *http.Server
	ready  chan net.Addr
}

func NewHTTPServerWorker(log *slog.Logger, addr string, handler http.Handler) *HTTPServerWorker {
	return &HTTPServerWorker{
		log:    log,
		server: &http.Server{Addr: addr, Handler: handler, ReadHeaderTimeout: 10 * time.Second},
		ready:  make(chan net.Addr, 1),
	}
}

// Ready yields the bound address once the listener is open.
func (w *HTTPServerWorker) Ready() <-chan net.Addr {
	return w.ready
}

func (w *HTTPServerWorker) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", w.server.Addr)
	if err != nil {
		return err
	}
	w.log.Info("HTTP server listening", "addr", listener.Addr().String())
	select {
	case w.ready <- listener.Addr():
	default:
	}

	serveErr := make(chan error, 1)
	go func() { serveErr <- w.server.Serve(listener) }()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := w.server.Shutdown(shutdownCtx); err != nil {
			w.log.Warn("HTTP server shutdown", "error", err)
		}
		w.log.Info("HTTP server stopped")
		return ctx.Err()
	}
}
