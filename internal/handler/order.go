package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"changemoney-backend/internal/domain"
	"changemoney-backend/internal/repository"
	"changemoney-backend/internal/service"
	"github.com/go-chi/chi/v5"
)

// OrderHandler is the public intake surface.
type OrderHandler struct {
	Orders    *service.OrderService
	ZaloPhone string
}

func (h OrderHandler) RegisterRoutes(r chi.Router) {
	r.Get("/denominations", h.listDenominations)
	r.Post("/orders", h.createOrder)
}

func (h OrderHandler) listDenominations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"denominations":  domain.Denominations(),
		"minOrderTotal":  domain.MinOrderTotal,
		"defaultFeeRate": domain.DefaultFeePercent,
	})
}

type createOrderPayload struct {
	Denomination int64  `json:"denomination"`
	Quantity     any    `json:"quantity"`
	CustomerName string `json:"customerName"`
	PhoneNumber  string `json:"phoneNumber"`
	Address      string `json:"address"`
	Note         string `json:"note"`
}

func (h OrderHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	order, err := h.Orders.Create(r.Context(), service.CreateOrderInput{
		Denomination: req.Denomination,
		Quantity:     coerceQuantity(req.Quantity),
		CustomerName: req.CustomerName,
		PhoneNumber:  req.PhoneNumber,
		Address:      req.Address,
		Note:         req.Note,
	})

	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeRawJSON(w, http.StatusBadRequest, apiResponse{
			Status:  "error",
			Message: "Thiếu thông tin bắt buộc",
			Data:    map[string]any{"fields": vErr.Fields},
			Error:   &apiError{Code: http.StatusBadRequest, Status: http.StatusText(http.StatusBadRequest)},
		})
		return
	case errors.Is(err, repository.ErrDegraded):
		// Remote unreachable; the order is safe in the local cache.
		writeMessageJSON(w, http.StatusOK, "Đơn hàng đã được lưu cục bộ (không kết nối được kho từ xa)", h.createdPayload(order))
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Lỗi khi lưu đơn hàng")
		return
	}

	writeMessageJSON(w, http.StatusOK, "Đơn hàng đã được lưu thành công", h.createdPayload(order))
}

func (h OrderHandler) createdPayload(order *domain.Order) map[string]any {
	return map[string]any{
		"orderId":  order.ID,
		"order":    order,
		"zaloLink": "https://zalo.me/" + h.ZaloPhone,
	}
}

// coerceQuantity mirrors the intake form: any non-numeric or missing
// quantity becomes 1.
func coerceQuantity(v any) int {
	switch q := v.(type) {
	case float64:
		return int(q)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(q)); err == nil {
			return n
		}
		return 1
	default:
		return 1
	}
}
