package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"changemoney-backend/internal/service"
	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	Service service.AuthService
}

func (h AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.login)
}

func (h AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	res, err := h.Service.Login(req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPassword) {
			writeError(w, http.StatusUnauthorized, "Mật khẩu không đúng!")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token":     res.AccessToken,
		"expiresAt": res.ExpiresAt.UTC().Format(time.RFC3339),
	})
}
