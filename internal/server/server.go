// Package server exposes plan generation over HTTP.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/iwvelando/sem-planner/internal/plan"
	"github.com/iwvelando/sem-planner/pkg/constants"
	"github.com/iwvelando/sem-planner/pkg/output"
)

const shutdownTimeout = 5 * time.Second

type handler struct {
	logger         *zap.Logger
	tables         plan.Tables
	maxRequestSize int64
	version        string
}

// DefaultInput is the campaign input used when a request omits a field.
func DefaultInput() plan.Input {
	return plan.Input{
		Locations:      []string{},
		TotalBudget:    constants.DefaultTotalBudget,
		TargetCPA:      constants.DefaultTargetCPA,
		ConversionRate: constants.DefaultConversionRate,
	}
}

// NewHandler constructs the HTTP handler serving the plan API.
func NewHandler(logger *zap.Logger, tables plan.Tables, maxRequestSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}
	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, tables: tables, maxRequestSize: maxRequestSize, version: trimmedVersion}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/plan", h.handlePlan)
	mux.HandleFunc("/api/plan/export", h.handleExport)
	mux.HandleFunc("/api/defaults", h.handleDefaults)
	mux.HandleFunc("/api/version", h.handleVersion)
	return mux
}

// Run serves handler on cfg.Address until ctx is cancelled, then shuts down
// gracefully.
func Run(ctx context.Context, cfg *Config, handler http.Handler, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	listener, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Address, err)
	}
	return Serve(ctx, listener, handler, logger)
}

// Serve serves handler on listener until ctx is cancelled.
func Serve(ctx context.Context, listener net.Listener, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			zap.String("op", "server.Serve"),
			zap.String("address", listener.Addr().String()),
		)
		errCh <- srv.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	logger.Info("server stopped", zap.String("op", "server.Serve"))
	return nil
}

func (h *handler) handlePlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	p, ok := h.generate(w, r, "server.handlePlan")
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, p)
}

func (h *handler) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	if format == "" {
		format = constants.OutputFormatJSON
	}
	contentType, ok := exportContentTypes[format]
	if !ok {
		h.respondErrorWithOp(w, http.StatusBadRequest,
			fmt.Sprintf("%v: %q", output.ErrUnsupportedFormat, format), "server.handleExport")
		return
	}

	p, ok := h.generate(w, r, "server.handleExport")
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := output.Write(&buf, format, p); err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError,
			fmt.Sprintf("failed to export plan: %v", err), "server.handleExport")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="sem-plan-%s.%s"`, p.Metadata.PlanID, exportExtension(format)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Warn("failed to write export response",
			zap.String("op", "server.handleExport"),
			zap.Error(err),
		)
	}
}

var exportContentTypes = map[string]string{
	constants.OutputFormatJSON:   "application/json",
	constants.OutputFormatCSV:    "text/csv; charset=utf-8",
	constants.OutputFormatXLSX:   "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	constants.OutputFormatPretty: "text/plain; charset=utf-8",
}

func exportExtension(format string) string {
	if format == constants.OutputFormatPretty {
		return "txt"
	}
	return format
}

func (h *handler) handleDefaults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	h.writeJSON(w, http.StatusOK, DefaultInput())
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// generate decodes the request input and runs the generator, writing the
// error response itself when it returns false.
func (h *handler) generate(w http.ResponseWriter, r *http.Request, op string) (*plan.Plan, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)

	in := DefaultInput()
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize), op)
			return nil, false
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode input: %v", err), op)
		return nil, false
	}
	if len(in.Pages) > 0 {
		h.respondErrorWithOp(w, http.StatusBadRequest, "keyword discovery pages are not accepted over HTTP", op)
		return nil, false
	}

	start := time.Now()
	p, err := plan.NewGenerator(h.logger, h.tables).Generate(in)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, plan.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		h.respondErrorWithOp(w, status, err.Error(), op)
		return nil, false
	}

	h.logger.Debug("plan request served",
		zap.String("op", op),
		zap.String("planID", p.Metadata.PlanID),
		zap.Duration("duration", time.Since(start)),
	)
	return p, true
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	if status >= http.StatusInternalServerError {
		h.logger.Error(msg, zap.String("op", op), zap.Int("status", status))
	} else {
		h.logger.Warn(msg, zap.String("op", op), zap.Int("status", status))
	}
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Warn("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}
