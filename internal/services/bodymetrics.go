package services

import (
	"context"
	"time"

	"fittrack-backend-go/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Order controls listing direction: ascending for trend math, descending
// for newest-first display.
type Order string

const (
	OrderAsc  Order = "ASC"
	OrderDesc Order = "DESC"
)

// RecordBodyMetric appends one observation. Date defaults to the moment of
// the call. Weight is the only required field.
func RecordBodyMetric(ctx context.Context, db *sqlx.DB, userID string, weightKg float64, bodyFatPct *float64, date *time.Time) (models.BodyMetric, error) {
	if weightKg <= 0 {
		return models.BodyMetric{}, ErrBadRequest("Weight is required")
	}
	when := time.Now().UTC()
	if date != nil {
		when = date.UTC()
	}
	metric := models.BodyMetric{
		ID:         uuid.NewString(),
		UserID:     userID,
		WeightKg:   weightKg,
		BodyFatPct: bodyFatPct,
		Date:       when,
		CreatedAt:  time.Now().UTC(),
	}
	_, err := db.ExecContext(ctx, `
INSERT INTO body_metrics (id, user_id, weight_kg, body_fat_pct, date, created_at)
VALUES ($1,$2,$3,$4,$5,$6)
`, metric.ID, metric.UserID, metric.WeightKg, metric.BodyFatPct, metric.Date, metric.CreatedAt)
	if err != nil {
		return models.BodyMetric{}, WrapError(err, "insert body metric")
	}
	return metric, nil
}

func ListBodyMetrics(ctx context.Context, db *sqlx.DB, userID string, order Order) ([]models.BodyMetric, error) {
	direction := "DESC"
	if order == OrderAsc {
		direction = "ASC"
	}
	metrics := []models.BodyMetric{}
	err := db.SelectContext(ctx, &metrics, `
SELECT id, user_id, weight_kg, body_fat_pct, date, created_at
FROM body_metrics
WHERE user_id = $1
ORDER BY date `+direction, userID)
	if err != nil {
		return nil, WrapError(err, "list body metrics")
	}
	return metrics, nil
}
