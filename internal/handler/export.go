package handler

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"changemoney-backend/internal/domain"
	"changemoney-backend/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Đơn Hàng Lì Xì"

// ExportHandler projects the current order list into a spreadsheet. The
// export is never a second source of truth: every call re-reads the store.
type ExportHandler struct {
	Orders     *service.OrderService
	ExportFile string
}

func (h ExportHandler) RegisterRoutes(r chi.Router) {
	r.Get("/admin/orders/export", h.download)
	r.Post("/admin/orders/export", h.refreshFile)
}

func (h ExportHandler) download(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Lỗi khi lấy danh sách đơn hàng")
		return
	}
	data, err := exportOrdersXLSX(orders)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Lỗi khi tạo file Excel")
		return
	}

	fileName := fmt.Sprintf("don-hang-li-xi-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	_, _ = w.Write(data)
}

// refreshFile regenerates the fixed spreadsheet on disk without downloading.
func (h ExportHandler) refreshFile(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Lỗi khi lấy danh sách đơn hàng")
		return
	}
	data, err := exportOrdersXLSX(orders)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Lỗi khi tạo file Excel")
		return
	}
	if err := os.MkdirAll(filepath.Dir(h.ExportFile), 0o755); err != nil {
		writeError(w, http.StatusInternalServerError, "Lỗi khi cập nhật file Excel")
		return
	}
	if err := os.WriteFile(h.ExportFile, data, 0o644); err != nil {
		writeError(w, http.StatusInternalServerError, "Lỗi khi cập nhật file Excel")
		return
	}
	writeMessageJSON(w, http.StatusOK, "File Excel đã được cập nhật", map[string]string{
		"filePath": h.ExportFile,
	})
}

// exportHeader is the fixed column set, in order.
var exportHeader = []string{
	"ID Đơn Hàng", "Thời Gian", "Tên Khách Hàng", "Số Điện Thoại", "Mệnh Giá",
	"Số Lượng Tờ", "Giá Trị Tiền Đổi", "Tỷ Lệ Phí", "Phí Dịch Vụ",
	"Tổng Thanh Toán", "Địa Chỉ Giao Hàng", "Ghi Chú", "Trạng Thái",
}

// Presentation hints only.
var exportColWidths = []float64{15, 20, 25, 15, 15, 12, 18, 12, 18, 18, 40, 30, 15}

func exportOrdersXLSX(orders []domain.Order) ([]byte, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	for c, v := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		_ = f.SetCellValue(exportSheet, cell, v)
	}

	for r, o := range orders {
		row := r + 2
		feePercent := fmt.Sprintf("%d%%", domain.DefaultFeePercent)
		if o.FeePercentage > 0 {
			feePercent = fmt.Sprintf("%d%%", o.FeePercentage)
		}
		note := o.Note
		if note == "" {
			note = domain.NoteEmpty
		}
		values := []any{
			o.ID,
			o.CreatedAt,
			o.CustomerName,
			o.PhoneNumber,
			o.DenominationLabel,
			o.Quantity,
			o.SubtotalFormatted,
			feePercent,
			o.FeeFormatted,
			o.TotalFormatted,
			o.Address,
			note,
			string(o.Status),
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, row)
			_ = f.SetCellValue(exportSheet, cell, v)
		}
	}

	for c, width := range exportColWidths {
		col, _ := excelize.ColumnNumberToName(c + 1)
		_ = f.SetColWidth(exportSheet, col, col, width)
	}

	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	last, _ := excelize.CoordinatesToCellName(len(exportHeader), 1)
	_ = f.SetCellStyle(exportSheet, "A1", last, style)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
