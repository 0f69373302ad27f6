package reservation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/0xDjole/arky-go/types"
)

var (
	// ErrEmptyCart is returned by Checkout when nothing was added.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrNoService is returned when a month load runs before SetService.
	ErrNoService = errors.New("no service selected")
)

// Options configures an Engine.
type Options struct {
	// Timezone is the IANA zone all calendar math runs in. Empty means UTC.
	Timezone string

	Logger *slog.Logger

	// Now overrides the clock, for tests.
	Now func() time.Time

	// SlotInterval is the step between generated slot starts in
	// minutes. Zero means the service's total duration.
	SlotInterval int
}

// Engine drives the booking flow: select a service, pick a method and
// provider, navigate the calendar, pick a slot, fill the cart, check
// out. It owns all of that state exclusively; every mutation goes
// through an action method.
//
// The engine is not safe for concurrent use. It is built for
// serialized, caller-driven invocation: the caller is expected to
// disable further actions while Loading reports true, the same way a
// UI disables its controls during a fetch.
type Engine struct {
	api    API
	logger *slog.Logger
	loc    *time.Location
	now    func() time.Time

	slotInterval int

	service          *types.Service
	providers        []types.Provider
	selectedProvider *types.Provider
	method           string

	currentMonth time.Time
	calendar     []CalendarDay

	selectedDate *time.Time
	startDate    *time.Time
	endDate      *time.Time

	slots        []Slot
	selectedSlot *Slot
	cart         []Slot

	loading bool

	// monthGen invalidates in-flight month fetches: a response whose
	// generation no longer matches is discarded instead of clobbering
	// newer state.
	monthGen uint64
}

// NewEngine builds an idle engine anchored to the first of the current
// month in the configured zone.
func NewEngine(api API, opts Options) *Engine {
	loc := LocationOrUTC(opts.Timezone)

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Engine{
		api:          api,
		logger:       logger,
		loc:          loc,
		now:          now,
		slotInterval: opts.SlotInterval,
		currentMonth: firstOfMonth(now().In(loc)),
	}
}

// SetService fetches the service and resets every downstream selection
// (provider, dates, slots), then loads the current month. When the
// service offers exactly one reservation method it becomes the default.
func (e *Engine) SetService(ctx context.Context, id string) error {
	e.loading = true
	defer func() { e.loading = false }()

	svc, err := e.api.GetService(ctx, GetServiceInput{ID: id})
	if err != nil {
		return fmt.Errorf("set service: %w", err)
	}

	e.service = svc
	e.method = ""
	if len(svc.ReservationMethods) == 1 {
		e.method = svc.ReservationMethods[0]
	}
	e.selectedProvider = nil
	e.clearDates()
	e.currentMonth = firstOfMonth(e.now().In(e.loc))

	return e.loadMonth(ctx)
}

// LoadMonth fetches the providers-with-timeline window for the current
// month and rebuilds the calendar. An empty provider list is fine; the
// calendar simply renders all-unavailable.
func (e *Engine) LoadMonth(ctx context.Context) error {
	e.loading = true
	defer func() { e.loading = false }()
	return e.loadMonth(ctx)
}

func (e *Engine) loadMonth(ctx context.Context) error {
	if e.service == nil {
		return ErrNoService
	}

	e.monthGen++
	gen := e.monthGen

	from := e.currentMonth.Unix()
	to := e.currentMonth.AddDate(0, 1, 0).Unix()

	providers, err := e.api.GetServiceProviders(ctx, GetServiceProvidersInput{
		ServiceID: e.service.ID,
		From:      from,
		To:        to,
	})
	if err != nil {
		return fmt.Errorf("load month: %w", err)
	}

	if gen != e.monthGen {
		e.logger.Debug("discarding stale month response",
			"generation", gen, "month", e.currentMonth.Format("2006-01"))
		return nil
	}

	e.providers = providers
	e.rebuildCalendar()
	return nil
}

// NextMonth navigates forward one month. Provider timelines are
// month-scoped, so navigation always refetches.
func (e *Engine) NextMonth(ctx context.Context) error {
	return e.shiftMonth(ctx, 1)
}

// PrevMonth navigates back one month.
func (e *Engine) PrevMonth(ctx context.Context) error {
	return e.shiftMonth(ctx, -1)
}

func (e *Engine) shiftMonth(ctx context.Context, months int) error {
	e.currentMonth = e.currentMonth.AddDate(0, months, 0)
	return e.LoadMonth(ctx)
}

// SelectMethod switches the reservation method. Availability depends on
// which providers serve the method, so provider, date and slot
// selections are cleared and the calendar rebuilt.
func (e *Engine) SelectMethod(method string) {
	e.method = method
	e.selectedProvider = nil
	e.clearDates()
	e.rebuildCalendar()
}

// SelectProvider restricts availability to one provider, or pools all
// providers again when passed nil.
func (e *Engine) SelectProvider(p *types.Provider) {
	e.selectedProvider = p
	e.clearDates()
	e.rebuildCalendar()
}

// SetTimezone switches the zone all calendar math runs in and rebuilds
// the grid.
func (e *Engine) SetTimezone(name string) {
	e.loc = LocationOrUTC(name)
	e.currentMonth = firstOfMonth(e.currentMonth.In(e.loc))
	e.rebuildCalendar()
}

// SelectDate computes the slots for a day. Blank or unavailable cells
// are a no-op, so stale UI clicks cannot select impossible days.
func (e *Engine) SelectDate(day CalendarDay) {
	if day.Blank || !day.Available {
		return
	}
	if e.service == nil {
		return
	}

	date := day.Date
	e.selectedDate = &date
	e.selectedSlot = nil
	e.slots = GenerateSlots(SlotRequest{
		ServiceID: e.service.ID,
		Providers: e.activeProviders(),
		Date:      date,
		Phases:    e.service.Durations,
		Location:  e.loc,
		Interval:  e.slotInterval,
		Now:       e.now(),
	})
}

// SelectRange marks a multi-day span; days strictly inside it render
// as in-range.
func (e *Engine) SelectRange(start, end time.Time) {
	e.startDate = &start
	e.endDate = &end
	e.rebuildCalendar()
}

// SelectSlot is a pure state set; nothing is recomputed.
func (e *Engine) SelectSlot(s Slot) {
	e.selectedSlot = &s
}

// AddToCart appends the selected slot to the cart and returns the
// calendar to its pre-date state. With no slot selected it is a no-op.
//
// Cart contents are not held against newly fetched timelines, so a
// user can race their own cart into a double booking; the server
// re-validates at checkout. That mirrors the platform's behavior and
// is deliberately left unresolved here.
func (e *Engine) AddToCart() {
	if e.selectedSlot == nil {
		return
	}
	e.cart = append(e.cart, *e.selectedSlot)
	e.clearDates()
	e.rebuildCalendar()
}

// RemoveFromCart drops one cart entry by slot ID.
func (e *Engine) RemoveFromCart(slotID string) {
	kept := e.cart[:0]
	for _, s := range e.cart {
		if s.ID != slotID {
			kept = append(kept, s)
		}
	}
	e.cart = kept
}

// ClearCart empties the cart.
func (e *Engine) ClearCart() {
	e.cart = nil
}

// CheckoutOptions carries payment choices and custom-form blocks into
// checkout.
type CheckoutOptions struct {
	PaymentMethod string
	PromoCode     string
	Blocks        []types.BlockValue
}

// Checkout submits the cart as an order. The cart is cleared only on
// success; fetch failures propagate unmodified and the engine stays
// reusable for further booking cycles.
func (e *Engine) Checkout(ctx context.Context, opts CheckoutOptions) (*types.CheckoutResult, error) {
	if len(e.cart) == 0 {
		return nil, ErrEmptyCart
	}

	e.loading = true
	defer func() { e.loading = false }()

	items := make([]types.CheckoutItem, 0, len(e.cart))
	for _, s := range e.cart {
		items = append(items, types.CheckoutItem{
			ServiceID:         s.ServiceID,
			ProviderID:        s.ProviderID,
			From:              s.From,
			To:                s.To,
			ReservationMethod: e.method,
		})
	}

	result, err := e.api.Checkout(ctx, types.CheckoutRequest{
		Items:         items,
		PaymentMethod: opts.PaymentMethod,
		PromoCode:     opts.PromoCode,
		Blocks:        opts.Blocks,
	})
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}

	e.cart = nil
	return result, nil
}

// QuoteOptions selects the payment method a pricing preview should
// assume.
type QuoteOptions struct {
	PaymentMethod string
	PromoCode     string
}

// Quote returns a read-only pricing preview for the cart, or nil when
// the cart is empty. It never mutates the cart.
func (e *Engine) Quote(ctx context.Context, opts QuoteOptions) (*types.Quote, error) {
	if len(e.cart) == 0 {
		return nil, nil
	}

	e.loading = true
	defer func() { e.loading = false }()

	items := make([]types.QuoteItem, 0, len(e.cart))
	for _, s := range e.cart {
		items = append(items, types.QuoteItem{ServiceID: s.ServiceID})
	}

	quote, err := e.api.GetQuote(ctx, types.QuoteRequest{
		Items:         items,
		PaymentMethod: opts.PaymentMethod,
		PromoCode:     opts.PromoCode,
	})
	if err != nil {
		return nil, fmt.Errorf("quote: %w", err)
	}
	return quote, nil
}

// --- read accessors ---

func (e *Engine) Service() *types.Service          { return e.service }
func (e *Engine) Providers() []types.Provider      { return e.providers }
func (e *Engine) SelectedProvider() *types.Provider { return e.selectedProvider }
func (e *Engine) Method() string                   { return e.method }
func (e *Engine) CurrentMonth() time.Time          { return e.currentMonth }
func (e *Engine) Calendar() []CalendarDay          { return e.calendar }
func (e *Engine) SelectedDate() *time.Time         { return e.selectedDate }
func (e *Engine) Slots() []Slot                    { return e.slots }
func (e *Engine) SelectedSlot() *Slot              { return e.selectedSlot }
func (e *Engine) Cart() []Slot                     { return e.cart }
func (e *Engine) Loading() bool                    { return e.loading }
func (e *Engine) Location() *time.Location         { return e.loc }

// --- internals ---

func (e *Engine) clearDates() {
	e.selectedDate = nil
	e.startDate = nil
	e.endDate = nil
	e.slots = nil
	e.selectedSlot = nil
}

// activeProviders narrows the month's provider pool to the selected
// provider, then to providers serving the chosen method. Providers
// that declare no methods serve all of them.
func (e *Engine) activeProviders() []types.Provider {
	if e.selectedProvider != nil {
		return []types.Provider{*e.selectedProvider}
	}
	if e.method == "" {
		return e.providers
	}

	var out []types.Provider
	for _, p := range e.providers {
		if len(p.ReservationMethods) == 0 || slices.Contains(p.ReservationMethods, e.method) {
			out = append(out, p)
		}
	}
	return out
}

func (e *Engine) rebuildCalendar() {
	var phases []types.DurationPhase
	serviceID := ""
	if e.service != nil {
		phases = e.service.Durations
		serviceID = e.service.ID
	}

	e.calendar = BuildCalendar(CalendarRequest{
		ServiceID: serviceID,
		Providers: e.activeProviders(),
		Month:     e.currentMonth,
		Phases:    phases,
		Selection: Selection{Date: e.selectedDate, Start: e.startDate, End: e.endDate},
		Location:  e.loc,
		Interval:  e.slotInterval,
		Now:       e.now(),
	})
}

func firstOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}
