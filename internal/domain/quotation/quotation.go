// Package quotation holds the quotation model and the text document
// contract: a formatter that renders a quotation into the canonical
// fixed-layout document, and a parser that recovers the structured view
// from such a document. Both sides share the layout constants below;
// Parse(Format(q)) must round-trip every item.
package quotation

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	AgencyName = "CENTURY CLEANING AGENCY"
	AgencyTIN  = "TIN: 120240444"
	AgencyTel  = "Tel: 0783500312"

	TaxRate = 0.18

	// DefaultInstructions is used when a quotation carries no special
	// instructions of its own.
	DefaultInstructions = "Payment is required upon completion of the service."

	// ServiceCatalog is the fixed service list printed at the bottom of
	// every document, slash-separated for display as tags.
	ServiceCatalog = "General Cleaning / Deep Cleaning / Window Cleaning / Sofa Cleaning / Tile And Grout Cleaning\n" +
		"Carpet Cleaning / Janitors Cleaning / Fumigation And Pest Control / Event Cleanup"

	// MaxItems bounds a quotation to two-digit item numbers. The NN.
	// field is fixed-width; a 100th item would not survive re-parsing.
	MaxItems = 99
)

type Item struct {
	Description   string
	AIDescription string
	Unity         string
	Qty           int
	PricePerUnit  int64
	LineTotal     int64
}

type Quotation struct {
	ID                  string
	Client              string
	Location            string
	Date                time.Time
	Items               []Item
	IncludeTax          bool
	SpecialInstructions string
}

// Totals are always derived from the items, never set directly.
// Subtotal is exact; tax and grand total keep full precision and are
// rounded only at display time.
type Totals struct {
	Subtotal   int64
	Tax        float64
	GrandTotal float64
}

func ComputeTotals(items []Item, includeTax bool) Totals {
	var subtotal int64
	for _, it := range items {
		subtotal += int64(it.Qty) * it.PricePerUnit
	}
	t := Totals{Subtotal: subtotal}
	if includeTax {
		t.Tax = float64(subtotal) * TaxRate
	}
	t.GrandTotal = float64(subtotal) + t.Tax
	return t
}

// FieldError is a validation failure on a single input field, reported
// inline so the caller can attach it to the right form control.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string { return e.Field + ": " + e.Message }

// ValidationError aggregates all field errors found in one pass.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 1 {
		return "invalid quotation: " + e.Fields[0].Error()
	}
	return fmt.Sprintf("invalid quotation: %d invalid fields", len(e.Fields))
}

// Validate checks everything generation depends on. Totals and the
// formatter assume items are present, within the numbering range and
// individually well-formed.
func (q *Quotation) Validate() error {
	var fields []FieldError
	if len(q.Items) == 0 {
		fields = append(fields, FieldError{Field: "items", Message: "at least one service item is required"})
	}
	if len(q.Items) > MaxItems {
		fields = append(fields, FieldError{Field: "items", Message: fmt.Sprintf("at most %d items are supported", MaxItems)})
	}
	for i, it := range q.Items {
		if it.Description == "" {
			fields = append(fields, FieldError{Field: fmt.Sprintf("items[%d].description", i), Message: "description is required"})
		}
		if it.Qty <= 0 {
			fields = append(fields, FieldError{Field: fmt.Sprintf("items[%d].qty", i), Message: "quantity must be positive"})
		}
		if it.PricePerUnit < 0 {
			fields = append(fields, FieldError{Field: fmt.Sprintf("items[%d].price_per_unit", i), Message: "price must not be negative"})
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Instructions returns the special instructions, falling back to the
// fixed payment-due notice.
func (q *Quotation) Instructions() string {
	if q.SpecialInstructions == "" {
		return DefaultInstructions
	}
	return q.SpecialInstructions
}

// NewID produces a quotation number in the agency's CCQ-NNNN series.
func NewID() string {
	return fmt.Sprintf("CCQ-%04d", 1000+rand.Intn(9000))
}
