package service

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"strconv"
	"testing"
	"time"

	"changemoney-backend/internal/domain"
	"changemoney-backend/internal/repository"
)

func newTestService(t *testing.T) *OrderService {
	t.Helper()
	store := repository.NewFileOrderRepository(filepath.Join(t.TempDir(), "orders.json"))
	svc := NewOrderService(store)
	svc.Now = func() time.Time {
		return time.Date(2026, time.February, 1, 10, 0, 0, 0, time.Local)
	}
	return svc
}

func validInput() CreateOrderInput {
	return CreateOrderInput{
		Denomination: 500_000,
		Quantity:     2,
		CustomerName: "Nguyễn Văn A",
		PhoneNumber:  "0901234567",
		Address:      "Bảo Lộc, Lâm Đồng",
	}
}

func TestCreateOrder(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	order, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if order.Status != domain.StatusPending {
		t.Errorf("Status = %q, want pending", order.Status)
	}
	if order.Subtotal != 1_000_000 || order.Fee != 30_000 || order.Total != 1_030_000 {
		t.Errorf("totals = %d/%d/%d", order.Subtotal, order.Fee, order.Total)
	}
	if order.FeePercentage != 3 || order.FeeRate != 0.03 {
		t.Errorf("fee rate = %d%% (%v)", order.FeePercentage, order.FeeRate)
	}
	if order.Note != domain.NoteEmpty {
		t.Errorf("blank note = %q, want %q", order.Note, domain.NoteEmpty)
	}
	if order.TotalFormatted != "1.030.000 ₫" {
		t.Errorf("TotalFormatted = %q", order.TotalFormatted)
	}
	wantID := strconv.FormatInt(svc.Now().UnixMilli(), 10)
	if order.ID != wantID {
		t.Errorf("ID = %q, want millisecond timestamp %q", order.ID, wantID)
	}

	persisted, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(persisted) != 1 || persisted[0].ID != order.ID {
		t.Fatalf("order not persisted: %+v", persisted)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*CreateOrderInput)
		wantField string
	}{
		{"blank customer name", func(in *CreateOrderInput) { in.CustomerName = "   " }, FieldCustomerName},
		{"blank phone", func(in *CreateOrderInput) { in.PhoneNumber = "" }, FieldPhoneNumber},
		{"blank address", func(in *CreateOrderInput) { in.Address = "" }, FieldAddress},
		{"below minimum", func(in *CreateOrderInput) { in.Denomination = 10_000; in.Quantity = 1 }, FieldMinTotal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(t)
			in := validInput()
			tc.mutate(&in)

			_, err := svc.Create(context.Background(), in)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Create err = %v, want ValidationError", err)
			}
			if !slices.Contains(vErr.Fields, tc.wantField) {
				t.Errorf("Fields = %v, want to contain %q", vErr.Fields, tc.wantField)
			}
			if len(vErr.Fields) != 1 {
				t.Errorf("Fields = %v, want exactly the one failing condition", vErr.Fields)
			}

			orders, listErr := svc.List(context.Background())
			if listErr != nil {
				t.Fatalf("List: %v", listErr)
			}
			if len(orders) != 0 {
				t.Errorf("rejected order was persisted: %+v", orders)
			}
		})
	}
}

func TestCreateOrderReportsAllFailures(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), CreateOrderInput{Denomination: 10_000, Quantity: 1})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Create err = %v, want ValidationError", err)
	}
	want := []string{FieldCustomerName, FieldPhoneNumber, FieldAddress, FieldMinTotal}
	if !slices.Equal(vErr.Fields, want) {
		t.Errorf("Fields = %v, want %v", vErr.Fields, want)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.UpdateStatus(context.Background(), "1", "Đang giao")
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("UpdateStatus err = %v, want ValidationError", err)
	}
}

func TestUpdateStatusToggle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	order, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.UpdateStatus(ctx, order.ID, domain.StatusCompleted)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != domain.StatusCompleted || updated.UpdatedAt == "" {
		t.Errorf("updated = %+v", updated)
	}

	back, err := svc.UpdateStatus(ctx, order.ID, domain.StatusPending)
	if err != nil {
		t.Fatalf("UpdateStatus back: %v", err)
	}
	if back.Status != domain.StatusPending {
		t.Errorf("toggle back = %q", back.Status)
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.UpdateStatus(context.Background(), "999", domain.StatusCompleted)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("UpdateStatus err = %v, want ErrNotFound", err)
	}
}

func TestClearAll(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, validInput()); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.ClearAll(ctx); err != nil {
		t.Fatalf("ClearAll: %v", err)
	}
	orders, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("List after ClearAll = %d orders", len(orders))
	}
}
