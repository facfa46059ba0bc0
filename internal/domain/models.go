package domain

// Order statuses use the Vietnamese display strings as wire and storage
// values, matching the persisted order file.
const (
	StatusPending   OrderStatus = "Chờ xử lý"
	StatusCompleted OrderStatus = "Hoàn tất"

	// NoteEmpty is stored when the customer leaves the note blank.
	NoteEmpty = "Không có"
)

type OrderStatus string

// ValidStatus reports whether s is one of the two defined order statuses.
func ValidStatus(s OrderStatus) bool {
	return s == StatusPending || s == StatusCompleted
}

// Order is the sole persisted entity: one exchange request with its charges
// frozen at creation time. Amounts are integer VND.
type Order struct {
	ID                string      `json:"id"`
	CreatedAt         string      `json:"createdAt"`
	Denomination      int64       `json:"denomination"`
	DenominationLabel string      `json:"denominationLabel"`
	Quantity          int         `json:"quantity"`
	CustomerName      string      `json:"customerName"`
	PhoneNumber       string      `json:"phoneNumber"`
	Subtotal          int64       `json:"subtotal"`
	SubtotalFormatted string      `json:"subtotalFormatted"`
	Fee               int64       `json:"fee"`
	FeeFormatted      string      `json:"feeFormatted"`
	FeeRate           float64     `json:"feeRate"`
	FeePercentage     int         `json:"feePercentage"`
	Total             int64       `json:"total"`
	TotalFormatted    string      `json:"totalFormatted"`
	Address           string      `json:"address"`
	Note              string      `json:"note"`
	Status            OrderStatus `json:"status"`
	UpdatedAt         string      `json:"updatedAt,omitempty"`
}
