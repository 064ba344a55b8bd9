package services

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestRecordBodyMetric_RequiresWeight(t *testing.T) {
	db, _ := newMockDB(t)

	_, err := RecordBodyMetric(context.Background(), db, "u1", 0, nil, nil)
	if got := serviceStatus(t, err); got != 400 {
		t.Fatalf("expected 400, got %d", got)
	}
}

func TestRecordBodyMetric_DefaultsDateToNow(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`INSERT INTO body_metrics`).
		WithArgs(sqlmock.AnyArg(), "u1", 75.5, nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	before := time.Now().UTC()
	metric, err := RecordBodyMetric(context.Background(), db, "u1", 75.5, nil, nil)
	if err != nil {
		t.Fatalf("RecordBodyMetric error: %v", err)
	}
	after := time.Now().UTC()

	if metric.Date.Before(before) || metric.Date.After(after) {
		t.Fatalf("date %v not defaulted to now", metric.Date)
	}
	if metric.BodyFatPct != nil {
		t.Fatalf("expected nil body fat, got %v", *metric.BodyFatPct)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRecordBodyMetric_ExplicitDateAndBodyFat(t *testing.T) {
	db, mock := newMockDB(t)

	date := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)
	bodyFat := 18.5
	mock.ExpectExec(`INSERT INTO body_metrics`).
		WithArgs(sqlmock.AnyArg(), "u1", 80.0, 18.5, date, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	metric, err := RecordBodyMetric(context.Background(), db, "u1", 80.0, &bodyFat, &date)
	if err != nil {
		t.Fatalf("RecordBodyMetric error: %v", err)
	}
	if !metric.Date.Equal(date) {
		t.Fatalf("date mismatch: got %v want %v", metric.Date, date)
	}
}

func TestListBodyMetrics_OrderDirection(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now().UTC()
	columns := []string{"id", "user_id", "weight_kg", "body_fat_pct", "date", "created_at"}

	mock.ExpectQuery(`ORDER BY date ASC`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("m1", "u1", 82.0, nil, now.Add(-48*time.Hour), now).
			AddRow("m2", "u1", 81.0, nil, now, now))

	ascending, err := ListBodyMetrics(context.Background(), db, "u1", OrderAsc)
	if err != nil {
		t.Fatalf("ListBodyMetrics asc error: %v", err)
	}
	if len(ascending) != 2 || ascending[0].ID != "m1" {
		t.Fatalf("unexpected ascending result: %+v", ascending)
	}

	mock.ExpectQuery(`ORDER BY date DESC`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("m2", "u1", 81.0, nil, now, now).
			AddRow("m1", "u1", 82.0, nil, now.Add(-48*time.Hour), now))

	descending, err := ListBodyMetrics(context.Background(), db, "u1", OrderDesc)
	if err != nil {
		t.Fatalf("ListBodyMetrics desc error: %v", err)
	}
	if len(descending) != 2 || descending[0].ID != "m2" {
		t.Fatalf("unexpected descending result: %+v", descending)
	}
}
