package services

import (
	"context"
	"strings"
	"time"

	"fittrack-backend-go/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// RecordWorkout logs one workout. Exercises arrive as already-encoded JSON;
// an empty set is stored as an empty array.
func RecordWorkout(ctx context.Context, db *sqlx.DB, userID, name string, date *time.Time, notes *string, exercises []byte) (models.Workout, error) {
	if strings.TrimSpace(name) == "" {
		return models.Workout{}, ErrBadRequest("Workout name is required")
	}
	when := time.Now().UTC()
	if date != nil {
		when = date.UTC()
	}
	if len(exercises) == 0 {
		exercises = []byte("[]")
	}
	workout := models.Workout{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      strings.TrimSpace(name),
		Date:      when,
		Notes:     notes,
		Exercises: exercises,
		CreatedAt: time.Now().UTC(),
	}
	_, err := db.ExecContext(ctx, `
INSERT INTO workouts (id, user_id, name, date, notes, exercises, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)
`, workout.ID, workout.UserID, workout.Name, workout.Date, workout.Notes, workout.Exercises, workout.CreatedAt)
	if err != nil {
		return models.Workout{}, WrapError(err, "insert workout")
	}
	return workout, nil
}

func ListWorkouts(ctx context.Context, db *sqlx.DB, userID string) ([]models.Workout, error) {
	workouts := []models.Workout{}
	err := db.SelectContext(ctx, &workouts, `
SELECT id, user_id, name, date, notes, exercises, created_at
FROM workouts
WHERE user_id = $1
ORDER BY date DESC`, userID)
	if err != nil {
		return nil, WrapError(err, "list workouts")
	}
	return workouts, nil
}

func CountWorkouts(ctx context.Context, db *sqlx.DB, userID string) (int, error) {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT count(*) FROM workouts WHERE user_id = $1`, userID); err != nil {
		return 0, WrapError(err, "count workouts")
	}
	return count, nil
}
