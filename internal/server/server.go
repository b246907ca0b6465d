package server

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strconv"
	"strings"

	"github.com/aromadata/aromadata/internal/contact"
	"github.com/aromadata/aromadata/internal/price"
	"github.com/aromadata/aromadata/internal/yield"
	"github.com/aromadata/aromadata/pkg/constants"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger         *zap.Logger
	prices         *price.Cell
	estimator      *yield.Estimator
	desk           *contact.Desk
	maxRequestSize int64
	version        string
}

// NewHandler constructs the HTTP handler that serves the dashboard page and its
// JSON API. prices is read on every request and is never written.
func NewHandler(logger *zap.Logger, prices *price.Cell, maxRequestSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if prices == nil {
		prices = price.NewCell(constants.InitialPrice, constants.PriceFloor, constants.DefaultHistorySize)
	}

	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:         logger,
		prices:         prices,
		estimator:      yield.NewEstimator(logger, prices),
		desk:           contact.NewDesk(logger),
		maxRequestSize: maxRequestSize,
		version:        trimmedVersion,
	}

	mux := http.NewServeMux()

	// Summary cards, live price and datasets
	mux.HandleFunc("/api/dashboard", h.handleDashboard)
	mux.HandleFunc("/api/datasets/", h.handleDataset)
	mux.HandleFunc("/api/analysis/summary", h.handleSummary)

	// Simulated price ticker
	mux.HandleFunc("/api/price", h.handlePrice)
	mux.HandleFunc("/api/price/history", h.handlePriceHistory)
	mux.HandleFunc("/api/price/compare", h.handlePriceCompare)

	// Tools
	mux.HandleFunc("/api/yield", h.handleYield)
	mux.HandleFunc("/api/export", h.handleExport)
	mux.HandleFunc("/api/charts/", h.handleChart)
	mux.HandleFunc("/api/contact", h.handleContact)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	fileServer := http.FileServer(http.FS(sub))
	mux.Handle("/", fileServer)

	return mux
}

func (h *handler) allow(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		w.Header().Set("Allow", method)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

// respondValidation reports rejected user input. It is logged at debug level
// since it is an expected outcome of a form submission.
func (h *handler) respondValidation(w http.ResponseWriter, err error, op string) {
	h.logger.Debug("request rejected",
		zap.String("op", op),
		zap.Error(err),
	)

	resp := validationResponse{Error: err.Error()}
	var yerr *yield.ValidationError
	var cerr *contact.ValidationError
	switch {
	case errors.As(err, &yerr):
		resp.Fields = yerr.Fields()
		resp.Problems = yerr.Problems
		resp.Prompt = yield.PromptMessage
	case errors.As(err, &cerr):
		resp.Fields = cerr.Fields
		resp.Prompt = contact.PromptMessage
	}
	h.writeJSON(w, http.StatusBadRequest, resp)
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

type validationResponse struct {
	Error    string             `json:"error"`
	Prompt   string             `json:"prompt,omitempty"`
	Fields   []string           `json:"fields,omitempty"`
	Problems []yield.FieldError `json:"problems,omitempty"`
}

// decodeLoose reads a JSON object or a urlencoded form into a map of strings.
// JSON numbers and booleans are accepted and converted to their text form.
func (h *handler) decodeLoose(w http.ResponseWriter, r *http.Request) (map[string]string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/x-www-form-urlencoded") ||
		strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(h.maxRequestSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return nil, err
		}
		values := make(map[string]string, len(r.PostForm))
		for key := range r.PostForm {
			values[key] = r.PostForm.Get(key)
		}
		return values, nil
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return nil, err
	}

	values := make(map[string]string, len(payload))
	for key, value := range payload {
		values[key] = coerceString(value)
	}
	return values, nil
}

func coerceString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	}
	return fmt.Sprint(value)
}

func requestStatus(err error) int {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}
