package httpserver

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/andrewmaci/KebabManager/internal/runtime"
	"github.com/andrewmaci/KebabManager/internal/server/http/controllers"
	logpkg "github.com/andrewmaci/KebabManager/pkg/log"
)

// Server hosts the order API, the event stream, and the operational
// endpoints.
type Server struct {
	rt     *runtime.Runtime
	srv    *http.Server
	lis    net.Listener
	logger *logpkg.Logger
}

// New builds the server and registers all routes.
func New(rt *runtime.Runtime) *Server {
	router := mux.NewRouter()
	s := &Server{
		rt:     rt,
		srv:    &http.Server{Handler: cors(router)},
		logger: rt.Logger().With(logpkg.Component("http")),
	}
	controllers.NewRegistry(rt).RegisterAllRoutes(router)
	return s
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully:
// in-flight requests get a drain window, and the runtime's hub close (done
// by the caller) terminates open stream sessions.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.lis = l
	s.logger.Info("listening", logpkg.Str("addr", l.Addr().String()))
	errCh := make(chan error, 1)
	go func() { errCh <- s.srv.Serve(l) }()
	select {
	case <-ctx.Done():
		cctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.srv.Shutdown(cctx)
		return nil
	case err := <-errCh:
		return err
	}
}

// Close force-closes the listener.
func (s *Server) Close() {
	if s.lis != nil {
		_ = s.lis.Close()
	}
}

// Handler exposes the root handler for tests.
func (s *Server) Handler() http.Handler { return s.srv.Handler }

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
