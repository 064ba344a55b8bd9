package httpapi

import (
	"encoding/json"
	"net/http"

	"fittrack-backend-go/internal/models"
	"fittrack-backend-go/internal/services"
)

// ProfileDTO mirrors the field names the original API exposed.
type ProfileDTO struct {
	ID           string   `json:"id"`
	Name         *string  `json:"name"`
	Email        string   `json:"email"`
	Age          *int     `json:"age"`
	Height       *float64 `json:"height"`
	CurrWeight   *float64 `json:"currWeight"`
	GoalWeight   *float64 `json:"goalWeight"`
	FitnessLevel *string  `json:"fitnessLevel"`
}

func buildProfileDTO(user models.User) ProfileDTO {
	return ProfileDTO{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Age:          user.Age,
		Height:       user.HeightCm,
		CurrWeight:   user.CurrWeightKg,
		GoalWeight:   user.GoalWeightKg,
		FitnessLevel: user.FitnessLevel,
	}
}

type ProfileUpdateRequest struct {
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	Age          OptionalNumber `json:"age"`
	Height       OptionalNumber `json:"height"`
	CurrWeight   OptionalNumber `json:"currWeight"`
	GoalWeight   OptionalNumber `json:"goalWeight"`
	FitnessLevel *string        `json:"fitnessLevel"`
}

type ProfileUpdateResponse struct {
	Message string     `json:"message"`
	User    ProfileDTO `json:"user"`
}

func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := services.GetUser(r.Context(), s.DB, CurrentUserID(r))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, buildProfileDTO(user))
}

func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req ProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	age, err := req.Age.Int()
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Age must be a whole number")
		return
	}
	update := services.ProfileUpdate{
		Name:         req.Name,
		Email:        req.Email,
		Age:          age,
		HeightCm:     req.Height.Float(),
		CurrWeightKg: req.CurrWeight.Float(),
		GoalWeightKg: req.GoalWeight.Float(),
		FitnessLevel: optionalString(req.FitnessLevel),
	}
	user, err := services.UpdateProfile(r.Context(), s.DB, CurrentUserID(r), update)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, ProfileUpdateResponse{Message: "Profile updated", User: buildProfileDTO(user)})
}

type ProfileSummaryResponse struct {
	Email            string   `json:"email"`
	Name             *string  `json:"name"`
	MemberSince      string   `json:"memberSince"`
	WorkoutCount     int      `json:"workoutCount"`
	LatestWeightLb   *int     `json:"latestWeightLb"`
	LatestBodyFatPct *float64 `json:"latestBodyFatPct"`
	ProgressPct      int      `json:"progressPct"`
	WeightTrend      string   `json:"weightTrend"`
}

// ProfileSummary aggregates the account identity with derived fitness
// statistics: membership duration, workout count, the latest metric in
// pounds, and progress toward a 10%-of-starting-weight loss.
func (s *Server) ProfileSummary(w http.ResponseWriter, r *http.Request) {
	userID := CurrentUserID(r)
	user, err := services.GetUser(r.Context(), s.DB, userID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	workoutCount, err := services.CountWorkouts(r.Context(), s.DB, userID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	metrics, err := services.ListBodyMetrics(r.Context(), s.DB, userID, services.OrderAsc)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	summary := ProfileSummaryResponse{
		Email:        user.Email,
		Name:         user.Name,
		MemberSince:  user.CreatedAt.Format("January 2006"),
		WorkoutCount: workoutCount,
		WeightTrend:  string(services.TrendStable),
	}
	if len(metrics) > 0 {
		latest := metrics[len(metrics)-1]
		lb := services.KgToLb(latest.WeightKg)
		summary.LatestWeightLb = &lb
		summary.LatestBodyFatPct = latest.BodyFatPct

		weights := make([]float64, len(metrics))
		for i, metric := range metrics {
			weights[i] = metric.WeightKg
		}
		summary.ProgressPct = services.ProgressPercent(weights[0], weights[len(weights)-1], len(weights))
		summary.WeightTrend = string(services.WeightTrend(weights))
	}
	WriteJSON(w, http.StatusOK, summary)
}
