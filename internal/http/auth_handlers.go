package httpapi

import (
	"encoding/json"
	"net/http"

	"fittrack-backend-go/internal/services"
)

type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Mode     string `json:"mode"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

// Auth is the combined registration/login endpoint: the mode field selects
// the flow, as the original API shaped it.
func (s *Server) Auth(w http.ResponseWriter, r *http.Request) {
	var req AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if req.Email == "" || req.Password == "" || (req.Mode != "register" && req.Mode != "login") {
		WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	switch req.Mode {
	case "register":
		userID, err := services.Register(r.Context(), s.DB, s.Tokens, req.Email, req.Password)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, RegisterResponse{Message: "User registered", UserID: userID})
	case "login":
		userID, err := services.VerifyCredentials(r.Context(), s.DB, s.Tokens, req.Email, req.Password)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		token, err := s.Tokens.Issue(userID)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, LoginResponse{Token: token, UserID: userID})
	}
}
