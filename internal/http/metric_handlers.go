package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"fittrack-backend-go/internal/models"
	"fittrack-backend-go/internal/services"
)

type BodyMetricDTO struct {
	ID         string    `json:"id"`
	WeightKg   float64   `json:"weightKg"`
	BodyFatPct *float64  `json:"bodyFatPct"`
	Date       time.Time `json:"date"`
}

func buildBodyMetricDTO(metric models.BodyMetric) BodyMetricDTO {
	return BodyMetricDTO{
		ID:         metric.ID,
		WeightKg:   metric.WeightKg,
		BodyFatPct: metric.BodyFatPct,
		Date:       metric.Date,
	}
}

type BodyMetricCreateRequest struct {
	WeightKg   OptionalNumber `json:"weightKg"`
	BodyFatPct OptionalNumber `json:"bodyFatPct"`
	Date       string         `json:"date"`
}

// ListBodyMetrics returns the account's observations newest first.
func (s *Server) ListBodyMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := services.ListBodyMetrics(r.Context(), s.DB, CurrentUserID(r), services.OrderDesc)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	items := make([]BodyMetricDTO, 0, len(metrics))
	for _, metric := range metrics {
		items = append(items, buildBodyMetricDTO(metric))
	}
	WriteJSON(w, http.StatusOK, items)
}

func (s *Server) CreateBodyMetric(w http.ResponseWriter, r *http.Request) {
	var req BodyMetricCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	weight := req.WeightKg.Float()
	if weight == nil {
		WriteError(w, http.StatusBadRequest, "Weight is required")
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid date")
		return
	}
	metric, err := services.RecordBodyMetric(r.Context(), s.DB, CurrentUserID(r), *weight, req.BodyFatPct.Float(), date)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, buildBodyMetricDTO(metric))
}
