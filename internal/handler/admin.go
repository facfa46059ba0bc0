package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"changemoney-backend/internal/domain"
	"changemoney-backend/internal/repository"
	"changemoney-backend/internal/service"
	"github.com/go-chi/chi/v5"
)

// AdminHandler manages the order list: listing, status toggles, clear-all
// and derived statistics. Mounted behind the admin auth middleware.
type AdminHandler struct {
	Orders  *service.OrderService
	Reports *service.ReportService
}

func (h AdminHandler) RegisterRoutes(r chi.Router) {
	r.Get("/admin/orders", h.list)
	r.Get("/admin/orders/stats", h.stats)
	r.Put("/admin/orders/{id}/status", h.updateStatus)
	r.Delete("/admin/orders", h.clearAll)
}

func (h AdminHandler) list(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Lỗi khi lấy danh sách đơn hàng")
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h AdminHandler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Reports.Stats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Lỗi khi lấy danh sách đơn hàng")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h AdminHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if id == "" || req.Status == "" {
		writeError(w, http.StatusBadRequest, "Thiếu orderId hoặc status")
		return
	}

	order, err := h.Orders.UpdateStatus(r.Context(), id, domain.OrderStatus(req.Status))
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeError(w, http.StatusBadRequest, vErr.Error())
		return
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "Không tìm thấy đơn hàng")
		return
	case errors.Is(err, repository.ErrDegraded):
		writeMessageJSON(w, http.StatusOK, "Đã cập nhật trạng thái đơn hàng (lưu cục bộ)", order)
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Lỗi khi lưu đơn hàng")
		return
	}
	writeMessageJSON(w, http.StatusOK, "Đã cập nhật trạng thái đơn hàng", order)
}

func (h AdminHandler) clearAll(w http.ResponseWriter, r *http.Request) {
	err := h.Orders.ClearAll(r.Context())
	switch {
	case errors.Is(err, repository.ErrDegraded):
		writeMessageJSON(w, http.StatusOK, "Đã xóa tất cả đơn hàng (lưu cục bộ)", nil)
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Lỗi khi xóa đơn hàng")
		return
	}
	writeMessageJSON(w, http.StatusOK, "Đã xóa tất cả đơn hàng", nil)
}
