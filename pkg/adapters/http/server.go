package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/awsh/pkg/domain"
	"github.com/aretw0/awsh/pkg/namespace"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// TreeNode is the JSON form of a namespace entry.
type TreeNode struct {
	Name        string     `json:"name"`
	Kind        string     `json:"kind"`
	Path        string     `json:"path"`
	Description string     `json:"description,omitempty"`
	Children    []TreeNode `json:"children,omitempty"`
}

// Server exposes read-only introspection of a running console.
// It only touches the immutable tree and the metrics registry, never the
// session Position.
type Server struct {
	Tree     *namespace.Tree
	Gatherer prometheus.Gatherer
}

// NewHandler creates the router: /metrics, /healthz and /tree.
func NewHandler(tree *namespace.Tree, gatherer prometheus.Gatherer) http.Handler {
	s := &Server{Tree: tree, Gatherer: gatherer}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	r.Get("/healthz", s.Health)
	r.Get("/tree", s.GetTree)
	return r
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok\n"))
}

// GetTree handles GET /tree.
func (s *Server) GetTree(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(Snapshot(s.Tree)); err != nil {
		slog.Error("GetTree: encode failed", "err", err)
	}
}

// Snapshot converts the tree to its JSON form.
func Snapshot(tree *namespace.Tree) TreeNode {
	return snapshot(tree.Root(), []string{tree.Root().Name()})
}

func snapshot(n *namespace.Node, path []string) TreeNode {
	out := TreeNode{
		Name:        n.Name(),
		Kind:        n.Kind().String(),
		Path:        domain.Position(path).String(),
		Description: n.Description(),
	}
	for _, child := range n.Children() {
		childPath := append(append([]string{}, path...), child.Name())
		out.Children = append(out.Children, snapshot(child, childPath))
	}
	return out
}

// ListenAndServe runs handler on addr until ctx is cancelled.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("metrics server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
