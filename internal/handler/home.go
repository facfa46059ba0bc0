package handler

import (
	"net/http"

	"changemoney-backend/internal/domain"
	"github.com/go-chi/chi/v5"
)

// HomeHandler serves the service description shown on the landing page.
type HomeHandler struct {
	ZaloPhone string
}

func (h HomeHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.welcome)
}

func (h HomeHandler) welcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":          "Dịch Vụ Đổi Tiền Lì Xì Tết",
		"description":   "Đổi tiền cũ thành mới - Chào đón năm mới thịnh vượng",
		"minOrderTotal": domain.MinOrderTotal,
		"deliveryArea":  "Giao hàng tận nơi trong khu vực Bảo Lộc",
		"zalo":          h.ZaloPhone,
		"denominations": domain.Denominations(),
	})
}
