package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"fittrack-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
)

type UserCreateRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserDetailResponse struct {
	ID          string          `json:"id"`
	Email       string          `json:"email"`
	Name        *string         `json:"name"`
	CreatedAt   time.Time       `json:"createdAt"`
	Workouts    []WorkoutDTO    `json:"workouts"`
	BodyMetrics []BodyMetricDTO `json:"bodyMetrics"`
}

type UserEmailUpdateRequest struct {
	Email string `json:"email"`
}

// ListUsers is the admin account listing: id, email, and creation time only.
func (s *Server) ListUsers(w http.ResponseWriter, r *http.Request) {
	accounts, err := services.ListAccounts(r.Context(), s.DB)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, accounts)
}

// CreateUser is the alternate registration path.
func (s *Server) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req UserCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Missing fields")
		return
	}
	if req.Email == "" || req.Password == "" {
		WriteError(w, http.StatusBadRequest, "Missing fields")
		return
	}
	userID, err := services.Register(r.Context(), s.DB, s.Tokens, req.Email, req.Password)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, RegisterResponse{Message: "User created", UserID: userID})
}

// GetUserDetail returns an account with its workout and metric relations.
func (s *Server) GetUserDetail(w http.ResponseWriter, r *http.Request) {
	targetID := chi.URLParam(r, "userId")
	if err := s.authorizeOwnerOrAdmin(r, targetID); err != nil {
		WriteServiceError(w, err)
		return
	}
	user, err := services.GetUser(r.Context(), s.DB, targetID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	workouts, err := services.ListWorkouts(r.Context(), s.DB, targetID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	metrics, err := services.ListBodyMetrics(r.Context(), s.DB, targetID, services.OrderDesc)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	resp := UserDetailResponse{
		ID:          user.ID,
		Email:       user.Email,
		Name:        user.Name,
		CreatedAt:   user.CreatedAt,
		Workouts:    make([]WorkoutDTO, 0, len(workouts)),
		BodyMetrics: make([]BodyMetricDTO, 0, len(metrics)),
	}
	for _, workout := range workouts {
		resp.Workouts = append(resp.Workouts, buildWorkoutDTO(workout))
	}
	for _, metric := range metrics {
		resp.BodyMetrics = append(resp.BodyMetrics, buildBodyMetricDTO(metric))
	}
	WriteJSON(w, http.StatusOK, resp)
}

func (s *Server) UpdateUserEmail(w http.ResponseWriter, r *http.Request) {
	targetID := chi.URLParam(r, "userId")
	if err := s.authorizeOwnerOrAdmin(r, targetID); err != nil {
		WriteServiceError(w, err)
		return
	}
	var req UserEmailUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := services.UpdateAccountEmail(r.Context(), s.DB, targetID, req.Email); err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "User updated"})
}

func (s *Server) DeleteUser(w http.ResponseWriter, r *http.Request) {
	targetID := chi.URLParam(r, "userId")
	if err := s.authorizeOwnerOrAdmin(r, targetID); err != nil {
		WriteServiceError(w, err)
		return
	}
	if err := services.DeleteAccount(r.Context(), s.DB, targetID); err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "User deleted"})
}
