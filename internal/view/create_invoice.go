package view

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"billdesk/internal/bridge"
	"billdesk/internal/ledger"
	"billdesk/internal/render"
	"billdesk/internal/template"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNoCustomer blocks submission until a customer is selected.
var ErrNoCustomer = errors.New("select a customer before saving the invoice")

// CreateInvoiceForm is the invoice-creation view: the customer/product
// catalogs fetched on entry plus the ledger the user edits. It exists for
// one session; navigating away discards it together with any entered rows.
type CreateInvoiceForm struct {
	session Session
	client  *bridge.Client

	Customers []bridge.Customer
	Products  []bridge.Product

	Ledger     *ledger.Ledger
	CustomerID int64
	Status     string
	IssueDate  string
	DueDate    string
	Notes      string
}

// NewCreateInvoiceForm loads the catalogs the form depends on. The two
// fetches run concurrently; if either fails the whole view fails and
// nothing is partially rendered.
func NewCreateInvoiceForm(ctx context.Context, session Session, client *bridge.Client) (*CreateInvoiceForm, error) {
	form := &CreateInvoiceForm{
		session: session,
		client:  client,
		Ledger:  ledger.New(),
		Status:  "Draft",
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		customers, err := client.GetCustomers(gctx)
		if err != nil {
			return err
		}
		form.Customers = customers
		return nil
	})
	g.Go(func() error {
		products, err := client.GetProducts(gctx)
		if err != nil {
			return err
		}
		form.Products = products
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// The form always opens with one empty row.
	form.Ledger.AddItem(nil)
	return form, nil
}

// SelectProduct pre-fills an existing row from the catalog, mirroring the
// product dropdown on each row.
func (f *CreateInvoiceForm) SelectProduct(rowID uuid.UUID, productID int64) error {
	for _, p := range f.Products {
		if p.ID == productID {
			if err := f.Ledger.UpdateName(rowID, p.Name); err != nil {
				return err
			}
			if err := f.Ledger.UpdateUnitPrice(rowID, decimal.NewFromFloat(p.UnitPrice)); err != nil {
				return err
			}
			return f.Ledger.UpdateTaxPercent(rowID, decimal.NewFromFloat(p.TaxPercent))
		}
	}
	return ledger.ErrItemNotFound
}

// Totals recomputes the displayed totals from the current ledger state.
func (f *CreateInvoiceForm) Totals() ledger.Totals {
	return f.Ledger.ComputeTotals()
}

// Preview renders the in-progress invoice with the active template, for the
// live preview pane.
func (f *CreateInvoiceForm) Preview(profile *render.BusinessProfile, spec template.RenderSpec) *render.Node {
	customer := render.CustomerSnapshot{}
	for _, c := range f.Customers {
		if c.ID == f.CustomerID {
			customer = render.CustomerSnapshot{Name: c.Name, Company: c.Company, Address: c.Address, Phone: c.Phone}
			break
		}
	}
	meta := render.Meta{IssueDate: f.IssueDate, DueDate: f.DueDate, Status: f.Status, Notes: f.Notes}
	return render.Render(profile, customer, meta, f.Ledger.Items(), f.Ledger.ComputeTotals(), spec)
}

// Submit validates locally, then sends the filtered items and adjustments
// across the boundary. Validation failures never reach the host: the submit
// is blocked and the message shown to the user.
func (f *CreateInvoiceForm) Submit(ctx context.Context) (int64, error) {
	if f.CustomerID == 0 {
		return 0, ErrNoCustomer
	}
	items, err := f.Ledger.Submission()
	if err != nil {
		return 0, err
	}

	totals := f.Ledger.ComputeTotals()
	args := bridge.CreateInvoiceArgs{
		CustomerID:      f.CustomerID,
		Status:          f.Status,
		IssueDate:       f.IssueDate,
		DueDate:         f.DueDate,
		Notes:           f.Notes,
		DiscountPercent: totals.DiscountPercent.InexactFloat64(),
		Advance:         totals.Advance.InexactFloat64(),
		Items:           toBoundaryItems(items),
	}
	return f.client.CreateInvoice(ctx, args)
}

func toBoundaryItems(items []ledger.LineItem) []bridge.InvoiceItem {
	out := make([]bridge.InvoiceItem, 0, len(items))
	for _, it := range items {
		out = append(out, bridge.InvoiceItem{
			ProductName: it.Name,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice.InexactFloat64(),
			TaxPercent:  it.TaxPercent.InexactFloat64(),
			LineTotal:   it.LineTotal().InexactFloat64(),
		})
	}
	return out
}
