package types

// Business is a tenant on the platform.
type Business struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Slug     string   `json:"slug,omitempty"`
	Timezone string   `json:"timezone,omitempty"`
	Currency string   `json:"currency,omitempty"`
	Locales  []string `json:"locales,omitempty"`
}

// BusinessConfig carries the tenant-level settings the SDK needs
// repeatedly (timezone, currency, enabled reservation methods). It is
// fetched once per client and cached with a TTL instead of being held
// in process-wide mutable state.
type BusinessConfig struct {
	BusinessID         string   `json:"businessId"`
	Timezone           string   `json:"timezone"`
	Currency           string   `json:"currency"`
	ReservationMethods []string `json:"reservationMethods,omitempty"`
	PaymentMethods     []string `json:"paymentMethods,omitempty"`
}

// BusinessList is a paginated business listing.
type BusinessList struct {
	Items  []Business `json:"items"`
	Cursor string     `json:"cursor,omitempty"`
}

// Price is an amount in the smallest currency unit.
type Price struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// Product is a catalog item (physical or digital goods, as opposed to
// bookable services).
type Product struct {
	ID          string `json:"id"`
	BusinessID  string `json:"businessId,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       *Price `json:"price,omitempty"`
	Stock       *int   `json:"stock,omitempty"`
}

// ProductList is a paginated product listing.
type ProductList struct {
	Items  []Product `json:"items"`
	Cursor string    `json:"cursor,omitempty"`
}

// ServiceList is a paginated service listing.
type ServiceList struct {
	Items  []Service `json:"items"`
	Cursor string    `json:"cursor,omitempty"`
}
