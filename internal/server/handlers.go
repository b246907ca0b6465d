package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/aromadata/aromadata/internal/chart"
	"github.com/aromadata/aromadata/internal/contact"
	"github.com/aromadata/aromadata/internal/dataset"
	"github.com/aromadata/aromadata/internal/price"
	"github.com/aromadata/aromadata/internal/yield"
	"github.com/aromadata/aromadata/pkg/constants"
	"github.com/aromadata/aromadata/pkg/export"
	"github.com/aromadata/aromadata/pkg/format"
	"github.com/aromadata/aromadata/pkg/validation"
	"go.uber.org/zap"
)

type dashboardResponse struct {
	Headline dataset.Headline `json:"headline"`
	Price    priceResponse    `json:"price"`
}

type priceResponse struct {
	price.Snapshot
	Display string `json:"display"`
	Ticker  string `json:"ticker"`
}

type yieldResponse struct {
	Request yield.Request `json:"request"`
	Factors yield.Factors `json:"factors"`
	Result  yield.Result  `json:"result"`
	Display yieldDisplay  `json:"display"`
}

type yieldDisplay struct {
	TotalYield       string `json:"totalYield"`
	YieldPerHectare  string `json:"yieldPerHectare"`
	EstimatedRevenue string `json:"estimatedRevenue"`
}

func newPriceResponse(snap price.Snapshot) priceResponse {
	return priceResponse{
		Snapshot: snap,
		Display:  format.Currency(snap.Price),
		Ticker:   format.Ticker(snap.Delta),
	}
}

func (h *handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, http.MethodGet) {
		return
	}

	h.writeJSON(w, http.StatusOK, dashboardResponse{
		Headline: dataset.Headlines(),
		Price:    newPriceResponse(h.prices.Snapshot()),
	})
}

func (h *handler) handleDataset(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, http.MethodGet) {
		return
	}

	name := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/datasets/"), "/")
	table, err := dataset.Lookup(name)
	if err != nil {
		h.writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"error":    err.Error(),
			"datasets": dataset.Tables,
		})
		return
	}

	h.writeJSON(w, http.StatusOK, table)
}

func (h *handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, http.MethodGet) {
		return
	}

	summary, err := dataset.Summarize(dataset.Production())
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, err.Error(), "server.handleSummary")
		return
	}
	h.writeJSON(w, http.StatusOK, summary)
}

func (h *handler) handlePrice(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, http.MethodGet) {
		return
	}
	h.writeJSON(w, http.StatusOK, newPriceResponse(h.prices.Snapshot()))
}

func (h *handler) handlePriceHistory(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, http.MethodGet) {
		return
	}
	h.writeJSON(w, http.StatusOK, h.prices.History())
}

func (h *handler) handlePriceCompare(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, http.MethodGet) {
		return
	}
	h.writeJSON(w, http.StatusOK, price.Compare(h.prices.Price()))
}

func (h *handler) handleYield(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleYield"
	if !h.allow(w, r, http.MethodPost) {
		return
	}

	values, err := h.decodeLoose(w, r)
	if err != nil {
		h.respondErrorWithOp(w, requestStatus(err), fmt.Sprintf("failed to decode calculator input: %v", err), op)
		return
	}

	req, err := yield.ParseRequest(yield.FormInput{
		Area:     firstOf(values, "area", "hectares"),
		Variety:  values["variety"],
		Climate:  values["climate"],
		Altitude: values["altitude"],
	})
	if err != nil {
		h.respondValidation(w, err, op)
		return
	}

	result, err := h.estimator.Estimate(req)
	if err != nil {
		h.respondValidation(w, err, op)
		return
	}

	rounded := result.Rounded()
	h.writeJSON(w, http.StatusOK, yieldResponse{
		Request: req,
		Factors: yield.FactorsFor(req),
		Result:  result,
		Display: yieldDisplay{
			TotalYield:       format.Decimal(rounded.TotalYieldSacks, 1),
			YieldPerHectare:  format.Decimal(rounded.YieldPerHectare, 1),
			EstimatedRevenue: format.WholeCurrency(rounded.EstimatedRevenueUSD),
		},
	})
}

func (h *handler) handleExport(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleExport"
	if !h.allow(w, r, http.MethodGet) {
		return
	}

	exportFormat := r.URL.Query().Get("format")
	if exportFormat == "" {
		exportFormat = constants.ExportFormatCSV
	}
	if err := validation.ValidateDownloadFormat(exportFormat); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, exportFormat, dataset.Production()); err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to export: %v", err), op)
		return
	}

	h.logger.Info("dataset exported",
		zap.String("op", op),
		zap.String("format", exportFormat),
		zap.Int("bytes", buf.Len()),
	)

	w.Header().Set("Content-Type", export.ContentType(exportFormat))
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.FileName(exportFormat)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Warn("failed to write export", zap.String("op", op), zap.Error(err))
	}
}

func (h *handler) handleChart(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleChart"
	if !h.allow(w, r, http.MethodGet) {
		return
	}

	var buf bytes.Buffer
	var err error
	switch strings.TrimPrefix(r.URL.Path, "/api/charts/") {
	case "production.png":
		err = chart.ProductionChart(&buf, dataset.Production())
	case "price.png":
		err = chart.PriceHistoryChart(&buf, h.prices.History())
	default:
		http.NotFound(w, r)
		return
	}

	if errors.Is(err, chart.ErrNoData) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, err.Error(), op)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Warn("failed to write chart", zap.String("op", op), zap.Error(err))
	}
}

func (h *handler) handleContact(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleContact"
	if !h.allow(w, r, http.MethodPost) {
		return
	}

	values, err := h.decodeLoose(w, r)
	if err != nil {
		h.respondErrorWithOp(w, requestStatus(err), fmt.Sprintf("failed to decode contact message: %v", err), op)
		return
	}

	receipt, err := h.desk.Submit(contact.Message{
		Name:    values["name"],
		Email:   values["email"],
		Subject: values["subject"],
		Message: values["message"],
	})
	if err != nil {
		h.respondValidation(w, err, op)
		return
	}

	h.writeJSON(w, http.StatusOK, receipt)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, http.MethodGet) {
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func firstOf(values map[string]string, keys ...string) string {
	for _, key := range keys {
		if v, ok := values[key]; ok {
			return v
		}
	}
	return ""
}
