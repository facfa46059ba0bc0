package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"changemoney-backend/internal/domain"
	"changemoney-backend/internal/ports"
)

// Validation messages, one per failing condition, in the display language.
const (
	FieldCustomerName = "Tên khách hàng"
	FieldPhoneNumber  = "Số điện thoại"
	FieldAddress      = "Địa chỉ giao hàng"
	FieldMinTotal     = "Đơn hàng tối thiểu 1,000,000 VNĐ"
)

// ValidationError lists every failing intake condition independently.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "thiếu thông tin bắt buộc: " + strings.Join(e.Fields, ", ")
}

type CreateOrderInput struct {
	Denomination int64
	Quantity     int
	CustomerName string
	PhoneNumber  string
	Address      string
	Note         string
}

// OrderService implements the intake and admin order operations over
// whichever store backend is configured.
type OrderService struct {
	Store ports.OrderStore
	Now   func() time.Time
}

func NewOrderService(store ports.OrderStore) *OrderService {
	return &OrderService{Store: store, Now: time.Now}
}

// Create validates the intake, builds the order with charges frozen at this
// instant, and appends it. The returned error may wrap
// repository.ErrDegraded when the order reached local persistence only.
func (s *OrderService) Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	totals := domain.ComputeTotals(in.Denomination, in.Quantity)

	var missing []string
	if strings.TrimSpace(in.CustomerName) == "" {
		missing = append(missing, FieldCustomerName)
	}
	if strings.TrimSpace(in.PhoneNumber) == "" {
		missing = append(missing, FieldPhoneNumber)
	}
	if strings.TrimSpace(in.Address) == "" {
		missing = append(missing, FieldAddress)
	}
	if totals.Total < domain.MinOrderTotal {
		missing = append(missing, FieldMinTotal)
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	quantity := in.Quantity
	if quantity < 1 {
		quantity = 1
	}
	note := in.Note
	if strings.TrimSpace(note) == "" {
		note = domain.NoteEmpty
	}

	now := s.Now()
	order := domain.Order{
		// Millisecond timestamp, unique by convention only: two orders in
		// the same millisecond would collide. Matches the stored format.
		ID:                strconv.FormatInt(now.UnixMilli(), 10),
		CreatedAt:         domain.FormatTimestamp(now),
		Denomination:      in.Denomination,
		DenominationLabel: domain.FormatVND(in.Denomination),
		Quantity:          quantity,
		CustomerName:      in.CustomerName,
		PhoneNumber:       in.PhoneNumber,
		Subtotal:          totals.Subtotal,
		SubtotalFormatted: domain.FormatVND(totals.Subtotal),
		Fee:               totals.Fee,
		FeeFormatted:      domain.FormatVND(totals.Fee),
		FeeRate:           totals.FeeRate,
		FeePercentage:     totals.FeePercent,
		Total:             totals.Total,
		TotalFormatted:    domain.FormatVND(totals.Total),
		Address:           in.Address,
		Note:              note,
		Status:            domain.StatusPending,
	}

	if err := s.Store.Append(ctx, order); err != nil {
		return &order, err
	}
	return &order, nil
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.Store.List(ctx)
}

// UpdateStatus transitions one order between the two defined statuses.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	if !domain.ValidStatus(status) {
		return nil, &ValidationError{Fields: []string{"trạng thái không hợp lệ"}}
	}
	return s.Store.UpdateStatus(ctx, id, status, domain.FormatTimestamp(s.Now()))
}

func (s *OrderService) ClearAll(ctx context.Context) error {
	return s.Store.Clear(ctx)
}
