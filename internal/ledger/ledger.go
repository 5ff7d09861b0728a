package ledger

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNoItems is returned by Submission when every row was dropped for having
// an empty name. Callers must block the submit and must not contact the host.
var ErrNoItems = errors.New("invoice must contain at least one named item")

// ErrItemNotFound is returned when an update/remove targets an unknown row.
var ErrItemNotFound = errors.New("line item not found")

// LineItem is one editable row of an in-progress invoice. Rows live only
// inside a Ledger; they are never persisted directly.
type LineItem struct {
	ID         uuid.UUID
	ProductID  *int64 // nil for free-text items
	Name       string
	Quantity   int64
	UnitPrice  decimal.Decimal
	TaxPercent decimal.Decimal
}

// Base returns quantity × unit price, before tax.
func (it LineItem) Base() decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity))
}

// Tax returns the tax amount for the row.
func (it LineItem) Tax() decimal.Decimal {
	return it.Base().Mul(it.TaxPercent).Div(decimal.NewFromInt(100))
}

// LineTotal returns base + tax, the amount shown in the row's total cell.
func (it LineItem) LineTotal() decimal.Decimal {
	return it.Base().Add(it.Tax())
}

// Totals is the fully derived summary of a ledger. It is recomputed on every
// mutation and never stored independently.
type Totals struct {
	Subtotal        decimal.Decimal
	TaxTotal        decimal.Decimal
	Advance         decimal.Decimal
	DiscountPercent decimal.Decimal
	DiscountAmount  decimal.Decimal
	TotalDue        decimal.Decimal
}

// CatalogProduct is the subset of a catalog product a new row is pre-filled
// from.
type CatalogProduct struct {
	ID         int64
	Name       string
	UnitPrice  decimal.Decimal
	TaxPercent decimal.Decimal
}

// Ledger holds the ordered line items and invoice-level adjustments of one
// in-progress invoice. Each invoice form owns exactly one Ledger; it is
// discarded on navigation away, so no locking is needed.
type Ledger struct {
	items           []LineItem
	advance         decimal.Decimal
	discountPercent decimal.Decimal
}

func New() *Ledger {
	return &Ledger{}
}

// AddItem appends a new row. With a catalog product the row is pre-filled
// from it; otherwise the row starts at defaults (qty 1, price 0, tax 0,
// empty name).
func (l *Ledger) AddItem(p *CatalogProduct) LineItem {
	item := LineItem{
		ID:         uuid.New(),
		Quantity:   1,
		UnitPrice:  decimal.Zero,
		TaxPercent: decimal.Zero,
	}
	if p != nil {
		id := p.ID
		item.ProductID = &id
		item.Name = p.Name
		item.UnitPrice = p.UnitPrice
		item.TaxPercent = p.TaxPercent
	}
	l.items = append(l.items, item)
	return item
}

// UpdateName sets the name of one row.
func (l *Ledger) UpdateName(id uuid.UUID, name string) error {
	it, err := l.find(id)
	if err != nil {
		return err
	}
	it.Name = name
	return nil
}

// UpdateQuantity sets the quantity of one row.
func (l *Ledger) UpdateQuantity(id uuid.UUID, qty int64) error {
	it, err := l.find(id)
	if err != nil {
		return err
	}
	it.Quantity = qty
	return nil
}

// UpdateUnitPrice sets the unit price of one row.
func (l *Ledger) UpdateUnitPrice(id uuid.UUID, price decimal.Decimal) error {
	it, err := l.find(id)
	if err != nil {
		return err
	}
	it.UnitPrice = price
	return nil
}

// UpdateTaxPercent sets the tax percentage of one row.
func (l *Ledger) UpdateTaxPercent(id uuid.UUID, pct decimal.Decimal) error {
	it, err := l.find(id)
	if err != nil {
		return err
	}
	it.TaxPercent = pct
	return nil
}

// RemoveItem deletes a row. The ledger may become empty.
func (l *Ledger) RemoveItem(id uuid.UUID) error {
	for i := range l.items {
		if l.items[i].ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// SetAdvance sets the advance payment applied to the invoice.
func (l *Ledger) SetAdvance(v decimal.Decimal) {
	l.advance = v
}

// SetDiscountPercent sets the percentage discount applied to subtotal + tax.
func (l *Ledger) SetDiscountPercent(v decimal.Decimal) {
	l.discountPercent = v
}

// Items returns a copy of the current rows in order.
func (l *Ledger) Items() []LineItem {
	out := make([]LineItem, len(l.items))
	copy(out, l.items)
	return out
}

// ComputeTotals derives the invoice totals from the current state. It is a
// pure function of the ledger: calling it twice without a mutation in
// between yields identical results, and the sums do not depend on row order.
//
// discountAmount = (subtotal + taxTotal) * discountPercent / 100
// totalDue       = subtotal + taxTotal - advance - discountAmount
func (l *Ledger) ComputeTotals() Totals {
	subtotal := decimal.Zero
	taxTotal := decimal.Zero
	for _, it := range l.items {
		subtotal = subtotal.Add(it.Base())
		taxTotal = taxTotal.Add(it.Tax())
	}

	hundred := decimal.NewFromInt(100)
	discountAmount := subtotal.Add(taxTotal).Mul(l.discountPercent).Div(hundred)
	totalDue := subtotal.Add(taxTotal).Sub(l.advance).Sub(discountAmount)

	return Totals{
		Subtotal:        subtotal,
		TaxTotal:        taxTotal,
		Advance:         l.advance,
		DiscountPercent: l.discountPercent,
		DiscountAmount:  discountAmount,
		TotalDue:        totalDue,
	}
}

// Submission returns the rows that cross the boundary at submit time. Rows
// with an empty name are dropped silently, matching the invoice form's
// behavior. When nothing survives the filter it returns ErrNoItems and the
// caller must not perform the create_invoice call.
func (l *Ledger) Submission() ([]LineItem, error) {
	out := make([]LineItem, 0, len(l.items))
	for _, it := range l.items {
		if it.Name == "" {
			continue
		}
		out = append(out, it)
	}
	if len(out) == 0 {
		return nil, ErrNoItems
	}
	return out, nil
}

func (l *Ledger) find(id uuid.UUID) (*LineItem, error) {
	for i := range l.items {
		if l.items[i].ID == id {
			return &l.items[i], nil
		}
	}
	return nil, ErrItemNotFound
}
