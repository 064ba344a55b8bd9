package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"fittrack-backend-go/internal/models"
	"fittrack-backend-go/internal/services"
)

// ExerciseDTO is one line of a workout, shaped like the original workout
// builder form.
type ExerciseDTO struct {
	Name     string  `json:"name"`
	Sets     int     `json:"sets"`
	Reps     int     `json:"reps"`
	Weight   float64 `json:"weight"`
	RestTime int     `json:"restTime"`
}

type WorkoutDTO struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Date      time.Time       `json:"date"`
	Notes     *string         `json:"notes"`
	Exercises json.RawMessage `json:"exercises"`
}

func buildWorkoutDTO(workout models.Workout) WorkoutDTO {
	exercises := json.RawMessage(workout.Exercises)
	if len(exercises) == 0 {
		exercises = json.RawMessage("[]")
	}
	return WorkoutDTO{
		ID:        workout.ID,
		Name:      workout.Name,
		Date:      workout.Date,
		Notes:     workout.Notes,
		Exercises: exercises,
	}
}

type WorkoutCreateRequest struct {
	Name      string        `json:"name"`
	Date      string        `json:"date"`
	Notes     *string       `json:"notes"`
	Exercises []ExerciseDTO `json:"exercises"`
}

func (s *Server) ListWorkouts(w http.ResponseWriter, r *http.Request) {
	workouts, err := services.ListWorkouts(r.Context(), s.DB, CurrentUserID(r))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	items := make([]WorkoutDTO, 0, len(workouts))
	for _, workout := range workouts {
		items = append(items, buildWorkoutDTO(workout))
	}
	WriteJSON(w, http.StatusOK, items)
}

func (s *Server) CreateWorkout(w http.ResponseWriter, r *http.Request) {
	var req WorkoutCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid date")
		return
	}
	exercises, err := json.Marshal(req.Exercises)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if req.Exercises == nil {
		exercises = []byte("[]")
	}
	workout, err := services.RecordWorkout(r.Context(), s.DB, CurrentUserID(r), req.Name, date, optionalString(req.Notes), exercises)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, buildWorkoutDTO(workout))
}
