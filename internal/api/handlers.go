package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"onbo/internal/auth"
)

// RegisterRequest is the body of a registration call.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInRequest is the body of a credentials sign-in.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

const (
	msgUserCreated    = "user created"
	errCreateUser     = "failed to create user"
	errUserExists     = "a user with that email already exists"
	errInvalidInput   = "name, email and password are required"
	errBadCredentials = "invalid email or password"
	errSignIn         = "sign-in failed"
	errBadRequest     = "malformed request"
	errUnauthorized   = "unauthorized"
)

type handlers struct {
	provider Authenticator
}

func (h *handlers) register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[API] register: decode body: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: errCreateUser})
		return
	}

	_, err := h.provider.Register(req.Name, req.Email, req.Password)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, messageResponse{Message: msgUserCreated})
	case errors.Is(err, auth.ErrUserExists):
		writeJSON(w, http.StatusConflict, errorResponse{Error: errUserExists})
	case errors.Is(err, auth.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: errInvalidInput})
	default:
		log.Printf("[API] register: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: errCreateUser})
	}
}

func (h *handlers) signIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: errBadRequest})
		return
	}

	s, err := h.provider.SignIn(req.Email, req.Password)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, s)
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: errBadCredentials})
	default:
		log.Printf("[API] sign-in: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: errSignIn})
	}
}

func (h *handlers) session(w http.ResponseWriter, r *http.Request) {
	s, _ := sessionFrom(r.Context())
	writeJSON(w, http.StatusOK, s)
}

func (h *handlers) signOut(w http.ResponseWriter, r *http.Request) {
	s, _ := sessionFrom(r.Context())
	h.provider.SignOut(s.Token)
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[API] encode response: %v", err)
	}
}
