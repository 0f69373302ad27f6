package types

// BlockValue is one custom-form field value attached to a checkout or
// a line item. Value stays loosely typed because block schemas are
// defined per business at runtime.
type BlockValue struct {
	BlockID string `json:"blockId"`
	Value   any    `json:"value"`
}

// CheckoutItem is one line of a checkout payload. For reservation
// items From/To bound the booked window in unix seconds.
type CheckoutItem struct {
	ServiceID         string       `json:"serviceId"`
	ProviderID        string       `json:"providerId,omitempty"`
	From              int64        `json:"from,omitempty"`
	To                int64        `json:"to,omitempty"`
	Quantity          int          `json:"quantity,omitempty"`
	Blocks            []BlockValue `json:"blocks,omitempty"`
	ReservationMethod string       `json:"reservationMethod,omitempty"`
}

// CheckoutRequest is the order checkout payload.
type CheckoutRequest struct {
	Items         []CheckoutItem `json:"items"`
	PaymentMethod string         `json:"paymentMethod,omitempty"`
	PromoCode     string         `json:"promoCode,omitempty"`
	Blocks        []BlockValue   `json:"blocks,omitempty"`
}

// CheckoutResult is the platform's answer to a checkout.
type CheckoutResult struct {
	OrderID      string        `json:"orderId"`
	Status       string        `json:"status"`
	Total        *Price        `json:"total,omitempty"`
	PaymentURL   string        `json:"paymentUrl,omitempty"`
	Reservations []Reservation `json:"reservations,omitempty"`
}

// QuoteItem references a service for a pricing preview.
type QuoteItem struct {
	ServiceID string `json:"serviceId"`
	Quantity  int    `json:"quantity,omitempty"`
}

// QuoteRequest is the read-only pricing preview payload.
type QuoteRequest struct {
	Items         []QuoteItem `json:"items"`
	PaymentMethod string      `json:"paymentMethod"`
	PromoCode     string      `json:"promoCode,omitempty"`
}

// Quote is a pricing preview. It never creates an order.
type Quote struct {
	Subtotal *Price `json:"subtotal,omitempty"`
	Discount *Price `json:"discount,omitempty"`
	Total    *Price `json:"total"`
	Currency string `json:"currency,omitempty"`
}

// Order is a placed order.
type Order struct {
	ID            string         `json:"id"`
	BusinessID    string         `json:"businessId,omitempty"`
	Status        string         `json:"status"`
	Items         []CheckoutItem `json:"items"`
	Total         *Price         `json:"total,omitempty"`
	PaymentMethod string         `json:"paymentMethod,omitempty"`
	CreatedAt     int64          `json:"createdAt,omitempty"`
}

// OrderList is a paginated order listing.
type OrderList struct {
	Items  []Order `json:"items"`
	Cursor string  `json:"cursor,omitempty"`
}
