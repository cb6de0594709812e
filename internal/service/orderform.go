package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/casadulce/storefront/internal/domain/model"
	"github.com/casadulce/storefront/internal/i18n"
	"github.com/casadulce/storefront/internal/metrics"
)

// SubmitState is the submission state of an order form.
type SubmitState int

const (
	// StateIdle means the form is editable and not yet submitted.
	StateIdle SubmitState = iota
	// StateSubmitting means a submission is in flight; further submits are no-ops.
	StateSubmitting
	// StateSucceeded means the order was submitted; terminal until Reset.
	StateSucceeded
	// StateFailed means the last submission failed; cleared by the next edit or Reset.
	StateFailed
)

// String returns the string representation of the state.
func (s SubmitState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SubmitResult is the outcome of a submission attempt. Message carries the
// user-facing text for failures; Order is set only on success.
type SubmitResult struct {
	Success bool
	OrderID string
	Order   *model.Order
	Message string
}

// OrderForm owns the mutable state of one in-progress order: customer info,
// line items, field errors, and the submission state machine. Each form
// instance is independent; a presentation layer feeds edits in and observes
// validity and submission state.
type OrderForm struct {
	catalog    CatalogService
	translator *i18n.Translator
	locale     string
	delay      time.Duration
	wait       func(ctx context.Context, d time.Duration) error

	mu     sync.Mutex
	data   model.OrderFormData
	errors map[string]string
	state  SubmitState
	gen    uint64
}

// FormOption configures an OrderForm.
type FormOption func(*OrderForm)

// WithSubmitDelay sets the simulated backend delay applied on submission.
func WithSubmitDelay(d time.Duration) FormOption {
	return func(f *OrderForm) { f.delay = d }
}

// WithLocale sets the language of user-facing messages.
func WithLocale(locale string) FormOption {
	return func(f *OrderForm) { f.locale = locale }
}

// WithTranslator overrides the message translator.
func WithTranslator(t *i18n.Translator) FormOption {
	return func(f *OrderForm) { f.translator = t }
}

// NewOrderForm creates an empty order form backed by the given catalog.
func NewOrderForm(catalog CatalogService, opts ...FormOption) *OrderForm {
	f := &OrderForm{
		catalog:    catalog,
		translator: i18n.GetTranslator(),
		locale:     i18n.DefaultLocale,
		delay:      1500 * time.Millisecond,
		errors:     make(map[string]string),
	}
	f.wait = waitFor
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// waitFor sleeps for d, honoring context cancellation.
func waitFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *OrderForm) tr(key string) string {
	return f.translator.Translate(key, f.locale)
}

// markEditedLocked applies the Failed → Idle transition on edits.
// Caller must hold the lock.
func (f *OrderForm) markEditedLocked() {
	if f.state == StateFailed {
		f.state = StateIdle
	}
}

// UpdateCustomer merges the non-nil fields of the update into the customer
// record and re-validates only those fields, replacing any prior error for
// each. Errors on untouched fields persist unchanged.
func (f *OrderForm) UpdateCustomer(update model.CustomerUpdate) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.markEditedLocked()

	update.Apply(&f.data.Customer)

	for _, fv := range update.Fields() {
		if key := validateField(fv.Field, fv.Value, len(f.data.Items)); key != "" {
			f.errors[fv.Field] = f.tr(key)
			metrics.RecordValidationError(fv.Field)
		} else {
			delete(f.errors, fv.Field)
		}
	}
}

// AddItem appends a selection to the order after checking it against the
// catalog: the product must exist and be orderable, and the flavor and box
// size must belong to it. Mismatches are rejected with typed errors.
func (f *OrderForm) AddItem(ctx context.Context, selection model.ProductSelection) error {
	if err := f.resolveSelection(ctx, selection); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.markEditedLocked()
	f.data.Items = append(f.data.Items, selection)
	return nil
}

// RemoveItem removes the line item at the given index. An out-of-range index
// is a deliberate no-op: the presentation layer may race a removal against a
// list refresh, and a stale index must not fault the form.
func (f *OrderForm) RemoveItem(index int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if index < 0 || index >= len(f.data.Items) {
		return
	}
	f.markEditedLocked()
	f.data.Items = append(f.data.Items[:index], f.data.Items[index+1:]...)
}

// UpdateItem replaces the line item at the given index with a new selection,
// validated like AddItem. An out-of-range index is a no-op, same boundary
// decision as RemoveItem.
func (f *OrderForm) UpdateItem(ctx context.Context, index int, selection model.ProductSelection) error {
	f.mu.Lock()
	inRange := index >= 0 && index < len(f.data.Items)
	f.mu.Unlock()
	if !inRange {
		return nil
	}

	if err := f.resolveSelection(ctx, selection); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if index >= len(f.data.Items) {
		return nil
	}
	f.markEditedLocked()
	f.data.Items[index] = selection
	return nil
}

// resolveSelection checks a selection against the catalog.
func (f *OrderForm) resolveSelection(ctx context.Context, selection model.ProductSelection) error {
	product, err := f.catalog.GetProductByID(ctx, selection.ProductID)
	if err != nil {
		return err
	}
	if !product.Orderable() {
		return model.ErrProductNotOrderable
	}
	_, _, err = selection.Resolve(*product)
	return err
}

// SetDeliveryDate sets the requested delivery date. No validation side effects.
func (f *OrderForm) SetDeliveryDate(date *time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.markEditedLocked()
	f.data.DeliveryDate = date
}

// SetPaymentMethod sets the payment method. No validation side effects.
func (f *OrderForm) SetPaymentMethod(method model.PaymentMethod) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.markEditedLocked()
	f.data.PaymentMethod = method
}

// SetSpecialInstructions sets the free-text instructions. No validation side effects.
func (f *OrderForm) SetSpecialInstructions(instructions string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.markEditedLocked()
	f.data.SpecialInstructions = instructions
}

// ValidateForm runs the full rule set over the required customer fields and
// the item list, replacing the entire error set atomically, and reports
// whether the form is fully valid.
func (f *OrderForm) ValidateForm() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validateLocked()
}

func (f *OrderForm) validateLocked() bool {
	newErrors := make(map[string]string)

	for _, field := range requiredCustomerFields {
		var value string
		switch field {
		case "name":
			value = f.data.Customer.Name
		case "email":
			value = f.data.Customer.Email
		case "phone":
			value = f.data.Customer.Phone
		}
		if key := validateField(field, value, 0); key != "" {
			newErrors[field] = f.tr(key)
			metrics.RecordValidationError(field)
		}
	}
	if key := validateField("items", "", len(f.data.Items)); key != "" {
		newErrors["items"] = f.tr(key)
		metrics.RecordValidationError("items")
	}

	f.errors = newErrors
	return len(newErrors) == 0
}

// IsValid is the fast-path validity signal used to enable the submit
// control: the error set is empty, the trimmed name has at least two
// characters, the email contains an "@", the phone has at least ten
// characters, and the order has at least one item. It is deliberately looser
// than ValidateForm, which performs the authoritative regex checks at submit
// time; the two tiers must not be unified.
func (f *OrderForm) IsValid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.errors) == 0 &&
		len([]rune(strings.TrimSpace(f.data.Customer.Name))) >= 2 &&
		strings.Contains(f.data.Customer.Email, "@") &&
		len([]rune(f.data.Customer.Phone)) >= 10 &&
		len(f.data.Items) > 0
}

// Errors returns the active field errors, sorted by field name.
func (f *OrderForm) Errors() []model.FieldError {
	f.mu.Lock()
	defer f.mu.Unlock()

	errs := make([]model.FieldError, 0, len(f.errors))
	for field, message := range f.errors {
		errs = append(errs, model.FieldError{Field: field, Message: message})
	}
	sort.Slice(errs, func(i, j int) bool { return errs[i].Field < errs[j].Field })
	return errs
}

// FieldError returns the active error message for one field, if any.
func (f *OrderForm) FieldError(field string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	msg, ok := f.errors[field]
	return msg, ok
}

// Data returns a copy of the current form data.
func (f *OrderForm) Data() model.OrderFormData {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

func (f *OrderForm) snapshotLocked() model.OrderFormData {
	data := f.data
	data.Items = make([]model.ProductSelection, len(f.data.Items))
	copy(data.Items, f.data.Items)
	return data
}

// State returns the current submission state.
func (f *OrderForm) State() SubmitState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// IsSubmitting reports whether a submission is in flight.
func (f *OrderForm) IsSubmitting() bool {
	return f.State() == StateSubmitting
}

// ctxResolver adapts the catalog service to the model.ProductResolver
// interface for one submission.
type ctxResolver struct {
	ctx     context.Context
	catalog CatalogService
}

func (r ctxResolver) ResolveProduct(id string) (model.Product, error) {
	product, err := r.catalog.GetProductByID(r.ctx, id)
	if err != nil {
		return model.Product{}, err
	}
	return *product, nil
}

// SubmitOrder validates the form and, if valid, performs the simulated
// asynchronous submission: wait out the configured delay, build the priced
// order with a unique identifier, and transition to Succeeded. Submission is
// not reentrant; calls while Submitting (or after success) are no-ops. Any
// failure along the way becomes a failure result carrying the underlying
// message, never a fault, and leaves the form data intact for a retry.
func (f *OrderForm) SubmitOrder(ctx context.Context) SubmitResult {
	f.mu.Lock()
	switch f.state {
	case StateSubmitting:
		f.mu.Unlock()
		return SubmitResult{Success: false, Message: f.tr(i18n.ErrKeySubmitInFlight)}
	case StateSucceeded:
		f.mu.Unlock()
		return SubmitResult{Success: false, Message: f.tr(i18n.ErrKeyAlreadySubmitted)}
	}
	if !f.validateLocked() {
		f.mu.Unlock()
		metrics.RecordOrderSubmission(0, "rejected")
		return SubmitResult{Success: false, Message: f.tr(i18n.ErrKeyFormInvalid)}
	}
	f.state = StateSubmitting
	gen := f.gen
	data := f.snapshotLocked()
	delay := f.delay
	f.mu.Unlock()

	start := time.Now()
	if err := f.wait(ctx, delay); err != nil {
		return f.settle(gen, start, nil, err)
	}

	order, err := model.BuildOrder(data, ctxResolver{ctx: ctx, catalog: f.catalog})
	return f.settle(gen, start, order, err)
}

// settle applies the outcome of an in-flight submission. A form reset while
// the submission was in flight bumps the generation; the stale outcome is
// then discarded without touching state.
func (f *OrderForm) settle(gen uint64, start time.Time, order *model.Order, err error) SubmitResult {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.gen != gen {
		log.Debug().Msg("Discarding stale submission result after reset")
		metrics.RecordOrderSubmission(time.Since(start), "stale")
		return SubmitResult{Success: false, Message: f.tr(i18n.ErrKeySubmitFailed)}
	}

	if err != nil {
		f.state = StateFailed
		metrics.RecordOrderSubmission(time.Since(start), "error")
		log.Error().Err(err).Msg("Order submission failed")
		return SubmitResult{Success: false, Message: err.Error()}
	}

	f.state = StateSucceeded
	metrics.RecordOrderSubmission(time.Since(start), "success")
	log.Info().
		Str("order_id", order.ID).
		Int("items", len(order.Items)).
		Float64("total", order.Total).
		Msg("Order submitted")
	return SubmitResult{Success: true, OrderID: order.ID, Order: order}
}

// Reset restores the form to its initial empty state: fresh data, no errors,
// Idle. Usable after both success and failure; an in-flight submission is
// orphaned and its result discarded.
func (f *OrderForm) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.gen++
	f.data = model.OrderFormData{}
	f.errors = make(map[string]string)
	f.state = StateIdle
}
