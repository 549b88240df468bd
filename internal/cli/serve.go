package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphson/pkg/errors"
	"github.com/matzehuels/graphson/pkg/graphson"
	"github.com/matzehuels/graphson/pkg/observability"
	"github.com/matzehuels/graphson/pkg/render/nodelink"
)

const (
	maxBodySize     = 8 << 20
	shutdownTimeout = 5 * time.Second
)

var responseJSON = jsoniter.ConfigCompatibleWithStandardLibrary

func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the codec over HTTP for debugging",
		Long: `Serve exposes the codec on a local HTTP endpoint:

  POST /v1/normalize   decode a GraphSON body and encode it again
  POST /v1/dot         decode a GraphSON body and return Graphviz DOT
  GET  /v1/tags        list registered wire tags`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}
			w, r, err := c.newCodec()
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			return runServer(cmd.Context(), addr, newHandler(w, r, logger), logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, "+defaultAddr+")")
	return cmd
}

// runServer serves h until ctx is cancelled.
func runServer(ctx context.Context, addr string, h http.Handler, logger *log.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

// newHandler returns the HTTP routes for w and r.
func newHandler(w *graphson.Writer, r *graphson.Reader, logger *log.Logger) http.Handler {
	h := &handler{writer: w, reader: r, logger: logger}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(hooksMiddleware)

	router.Route("/v1", func(api chi.Router) {
		api.Post("/normalize", h.normalize)
		api.Post("/dot", h.dot)
		api.Get("/tags", h.tags)
	})
	return router
}

// hooksMiddleware reports every request to the observability HTTP hooks.
func hooksMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		hooks := observability.HTTP()
		hooks.OnRequest(req.Context(), req.Method, req.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, req)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(req.Context(), req.Method, req.URL.Path, status, time.Since(start))
	})
}

type handler struct {
	writer *graphson.Writer
	reader *graphson.Reader
	logger *log.Logger
}

func (h *handler) normalize(w http.ResponseWriter, req *http.Request) {
	body, err := readBody(req)
	if err != nil {
		h.fail(w, req, err)
		return
	}
	out, err := normalize(h.writer, h.reader, body)
	if err != nil {
		h.fail(w, req, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	io.WriteString(w, out)
}

func (h *handler) dot(w http.ResponseWriter, req *http.Request) {
	body, err := readBody(req)
	if err != nil {
		h.fail(w, req, err)
		return
	}
	v, err := h.reader.ReadObject(string(body))
	if err != nil {
		h.fail(w, req, err)
		return
	}
	detailed := req.URL.Query().Get("detailed") == "true"
	dot := nodelink.ToDOT(nodelink.Collect(v), nodelink.Options{Detailed: detailed})

	if req.URL.Query().Get("format") == formatSVG {
		svg, err := nodelink.RenderSVG(req.Context(), dot)
		if err != nil {
			h.fail(w, req, err)
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Write(svg)
		return
	}
	w.Header().Set("Content-Type", "text/vnd.graphviz")
	io.WriteString(w, dot)
}

func (h *handler) tags(w http.ResponseWriter, req *http.Request) {
	reg := h.reader.Registry()
	writeJSON(w, http.StatusOK, map[string]any{
		"tags":  reg.Tags(),
		"types": reg.Types(),
	})
}

// fail maps codec errors onto HTTP statuses.
func (h *handler) fail(w http.ResponseWriter, req *http.Request, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidJSON, errors.ErrCodeInvalidInput, errors.ErrCodeMalformedEnvelope, errors.ErrCodeInvalidTag:
		status = http.StatusBadRequest
	case errors.ErrCodeUnsupportedType:
		status = http.StatusUnprocessableEntity
	}
	h.logger.Debug("request failed", "path", req.URL.Path, "status", status, "err", err)
	writeJSON(w, status, map[string]any{
		"error": err.Error(),
		"code":  string(errors.GetCode(err)),
	})
}

func readBody(req *http.Request) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(req.Body, maxBodySize+1))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read body")
	}
	if len(body) > maxBodySize {
		return nil, errors.New(errors.ErrCodeInvalidInput, "body exceeds %d bytes", maxBodySize)
	}
	return body, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := responseJSON.Marshal(v)
	if err != nil {
		http.Error(w, fmt.Sprintf("encode response: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}
