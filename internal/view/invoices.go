package view

import (
	"context"

	"golang.org/x/sync/errgroup"

	"billdesk/internal/bridge"
	"billdesk/internal/ledger"
	"billdesk/internal/render"
	"billdesk/internal/template"

	"github.com/shopspring/decimal"
)

// InvoiceListView is the invoice-history page: the full list plus
// client-side filters.
type InvoiceListView struct {
	session  Session
	client   *bridge.Client
	Invoices []bridge.Invoice

	FilterStatus   string
	FilterCustomer string
	FilterFrom     string // inclusive issue-date bound, YYYY-MM-DD
	FilterTo       string
}

func NewInvoiceListView(ctx context.Context, session Session, client *bridge.Client) (*InvoiceListView, error) {
	invoices, err := client.GetInvoices(ctx)
	if err != nil {
		return nil, err
	}
	return &InvoiceListView{session: session, client: client, Invoices: invoices}, nil
}

// Visible applies the current filters. Date strings compare lexically in
// YYYY-MM-DD form.
func (v *InvoiceListView) Visible() []bridge.Invoice {
	out := make([]bridge.Invoice, 0, len(v.Invoices))
	for _, inv := range v.Invoices {
		if v.FilterStatus != "" && inv.Status != v.FilterStatus {
			continue
		}
		if v.FilterCustomer != "" && inv.CustomerName != v.FilterCustomer {
			continue
		}
		if v.FilterFrom != "" && inv.IssueDate < v.FilterFrom {
			continue
		}
		if v.FilterTo != "" && inv.IssueDate > v.FilterTo {
			continue
		}
		out = append(out, inv)
	}
	return out
}

// CustomerNames returns the distinct customer names present in the list,
// for the filter dropdown.
func (v *InvoiceListView) CustomerNames() []string {
	seen := make(map[string]bool)
	var out []string
	for _, inv := range v.Invoices {
		if inv.CustomerName == "" || seen[inv.CustomerName] {
			continue
		}
		seen[inv.CustomerName] = true
		out = append(out, inv.CustomerName)
	}
	return out
}

// SetStatus updates one invoice's status at the host, then mirrors the
// change locally so the list stays current without a refetch.
func (v *InvoiceListView) SetStatus(ctx context.Context, id int64, status string) error {
	if err := v.client.UpdateInvoiceStatus(ctx, id, status); err != nil {
		return err
	}
	for i := range v.Invoices {
		if v.Invoices[i].ID == id {
			v.Invoices[i].Status = status
		}
	}
	return nil
}

// InvoiceDetailView is the read-only invoice page with its rendered
// document. It needs the invoice, the business profile, and the custom
// templates (to resolve the active template); the three fetches are joined
// fail-fast.
type InvoiceDetailView struct {
	session Session
	client  *bridge.Client

	Invoice  bridge.Invoice
	Settings bridge.Settings
	Spec     template.RenderSpec

	resolve AssetResolver
}

func NewInvoiceDetailView(ctx context.Context, session Session, client *bridge.Client, id int64, resolve AssetResolver) (*InvoiceDetailView, error) {
	v := &InvoiceDetailView{session: session, client: client, resolve: resolve}

	var customs []template.CustomTemplate
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		inv, err := client.GetInvoiceDetail(gctx, id)
		if err != nil {
			return err
		}
		v.Invoice = inv
		return nil
	})
	g.Go(func() error {
		s, err := client.GetSettings(gctx)
		if err != nil {
			return err
		}
		v.Settings = s
		return nil
	})
	g.Go(func() error {
		cts, err := client.GetCustomTemplates(gctx)
		if err != nil {
			return err
		}
		customs = cts
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	v.Spec = template.ResolveActive(v.Settings.TemplateType, customs)
	return v, nil
}

// Document renders the stored invoice with the active template.
func (v *InvoiceDetailView) Document() *render.Node {
	profile := Profile(v.Settings, v.resolve)
	customer := render.CustomerSnapshot{Name: v.Invoice.CustomerName, Phone: v.Invoice.CustomerPhone}
	meta := render.Meta{
		InvoiceNumber: v.Invoice.InvoiceNumber,
		IssueDate:     v.Invoice.IssueDate,
		DueDate:       v.Invoice.DueDate,
		Status:        v.Invoice.Status,
		Notes:         v.Invoice.Notes,
	}
	items, totals := fromBoundaryInvoice(v.Invoice)
	return render.Render(&profile, customer, meta, items, totals, v.Spec)
}

// Export asks the host to write the invoice PDF to the chosen path.
func (v *InvoiceDetailView) Export(ctx context.Context, filePath string) error {
	return v.client.ExportInvoicePDF(ctx, v.Invoice.ID, filePath)
}

// fromBoundaryInvoice rebuilds renderer inputs from a persisted invoice.
// Totals are replayed through a ledger so the detail page and the create
// form share one computation.
func fromBoundaryInvoice(inv bridge.Invoice) ([]ledger.LineItem, ledger.Totals) {
	l := ledger.New()
	for _, it := range inv.Items {
		row := l.AddItem(nil)
		_ = l.UpdateName(row.ID, it.ProductName)
		_ = l.UpdateQuantity(row.ID, it.Quantity)
		_ = l.UpdateUnitPrice(row.ID, decimal.NewFromFloat(it.UnitPrice))
		_ = l.UpdateTaxPercent(row.ID, decimal.NewFromFloat(it.TaxPercent))
	}
	l.SetAdvance(decimal.NewFromFloat(inv.Advance))
	l.SetDiscountPercent(decimal.NewFromFloat(inv.DiscountPercent))
	return l.Items(), l.ComputeTotals()
}
