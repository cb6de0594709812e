package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle state of a submitted order.
type OrderStatus string

// Order statuses. Only StatusPending is produced by the storefront core;
// the remaining states belong to the fulfillment side of the business.
const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// PaymentMethod enumerates the accepted payment options.
type PaymentMethod string

// Accepted payment methods.
const (
	PaymentCash        PaymentMethod = "cash"
	PaymentTransfer    PaymentMethod = "transfer"
	PaymentMercadoPago PaymentMethod = "mercadopago"
)

// CustomerInfo holds the contact details collected by the order form.
// Name, Email, and Phone are required for a valid order.
type CustomerInfo struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// CustomerUpdate is a partial update of CustomerInfo. Nil fields are left
// untouched by Apply, so callers can update any subset of fields.
type CustomerUpdate struct {
	Name       *string
	Email      *string
	Phone      *string
	Address    *string
	City       *string
	PostalCode *string
	Notes      *string
}

// Apply merges the non-nil fields of the update into the customer record.
func (u CustomerUpdate) Apply(c *CustomerInfo) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Email != nil {
		c.Email = *u.Email
	}
	if u.Phone != nil {
		c.Phone = *u.Phone
	}
	if u.Address != nil {
		c.Address = *u.Address
	}
	if u.City != nil {
		c.City = *u.City
	}
	if u.PostalCode != nil {
		c.PostalCode = *u.PostalCode
	}
	if u.Notes != nil {
		c.Notes = *u.Notes
	}
}

// Fields returns the names and values of the fields present in the update,
// in a stable order, so validation can cover exactly the edited fields.
func (u CustomerUpdate) Fields() []FieldValue {
	var fields []FieldValue
	if u.Name != nil {
		fields = append(fields, FieldValue{Field: "name", Value: *u.Name})
	}
	if u.Email != nil {
		fields = append(fields, FieldValue{Field: "email", Value: *u.Email})
	}
	if u.Phone != nil {
		fields = append(fields, FieldValue{Field: "phone", Value: *u.Phone})
	}
	if u.Address != nil {
		fields = append(fields, FieldValue{Field: "address", Value: *u.Address})
	}
	if u.City != nil {
		fields = append(fields, FieldValue{Field: "city", Value: *u.City})
	}
	if u.PostalCode != nil {
		fields = append(fields, FieldValue{Field: "postal_code", Value: *u.PostalCode})
	}
	if u.Notes != nil {
		fields = append(fields, FieldValue{Field: "notes", Value: *u.Notes})
	}
	return fields
}

// FieldValue pairs a form field name with its updated value.
type FieldValue struct {
	Field string
	Value string
}

// FieldError pairs a form field name with a validation message.
// At most one message per field is active at any time.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// OrderFormData is the mutable state of an in-progress order. Item order is
// significant: it determines line-item order on the submitted order.
type OrderFormData struct {
	Customer            CustomerInfo       `json:"customer"`
	Items               []ProductSelection `json:"items"`
	DeliveryDate        *time.Time         `json:"delivery_date,omitempty"`
	PaymentMethod       PaymentMethod      `json:"payment_method,omitempty"`
	SpecialInstructions string             `json:"special_instructions,omitempty"`
}

// OrderItem is a product selection enriched with pricing at order time.
type OrderItem struct {
	ProductSelection
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

// Order is the immutable result of a successful submission.
type Order struct {
	ID            string        `json:"id"`
	Customer      CustomerInfo  `json:"customer"`
	Items         []OrderItem   `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	Tax           float64       `json:"tax,omitempty"`
	Delivery      float64       `json:"delivery,omitempty"`
	Total         float64       `json:"total"`
	Currency      Currency      `json:"currency"`
	Status        OrderStatus   `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	DeliveryDate  *time.Time    `json:"delivery_date,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
	Notes         string        `json:"notes,omitempty"`
}

// ProductResolver resolves a product id to the full product record.
// It is satisfied by the catalog service.
type ProductResolver interface {
	ResolveProduct(id string) (Product, error)
}

// BuildOrder turns validated form data into a pending Order, pricing each
// line from its selected box size. Selection integrity is re-checked here:
// a mismatched flavor or box size, or an unorderable product, fails the
// build with a typed error.
func BuildOrder(data OrderFormData, resolver ProductResolver) (*Order, error) {
	items := make([]OrderItem, 0, len(data.Items))
	var subtotal float64
	var currency Currency

	for _, sel := range data.Items {
		product, err := resolver.ResolveProduct(sel.ProductID)
		if err != nil {
			return nil, err
		}
		if !product.Orderable() {
			return nil, ErrProductNotOrderable
		}
		_, box, err := sel.Resolve(product)
		if err != nil {
			return nil, err
		}
		item := OrderItem{
			ProductSelection: sel,
			UnitPrice:        box.Price,
			TotalPrice:       box.Price * float64(sel.Quantity),
		}
		items = append(items, item)
		subtotal += item.TotalPrice
		currency = product.Currency
	}

	now := time.Now()
	return &Order{
		ID:            NewOrderID(),
		Customer:      data.Customer,
		Items:         items,
		Subtotal:      subtotal,
		Total:         subtotal,
		Currency:      currency,
		Status:        StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
		DeliveryDate:  data.DeliveryDate,
		PaymentMethod: data.PaymentMethod,
		Notes:         data.SpecialInstructions,
	}, nil
}

// NewOrderID generates an order identifier unique within the process lifetime.
func NewOrderID() string {
	return "ORDER-" + uuid.NewString()
}
