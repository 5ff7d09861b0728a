package view

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"billdesk/internal/bridge"
	"billdesk/internal/ledger"
	"billdesk/internal/template"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeInvoker serves canned results per command and records every call, so
// tests can assert which boundary calls happened (and which did not).
type fakeInvoker struct {
	mu      sync.Mutex
	results map[string]any
	fail    map[string]error
	calls   []string
	args    map[string]any
}

func newFakeInvoker() *fakeInvoker {
	return &fakeInvoker{
		results: make(map[string]any),
		fail:    make(map[string]error),
		args:    make(map[string]any),
	}
}

func (f *fakeInvoker) Invoke(_ context.Context, command string, args any, out any) error {
	f.mu.Lock()
	f.calls = append(f.calls, command)
	f.args[command] = args
	result, ok := f.results[command]
	err := f.fail[command]
	f.mu.Unlock()

	if err != nil {
		return &bridge.Error{Command: command, Message: err.Error()}
	}
	if !ok || out == nil {
		return nil
	}
	raw, merr := json.Marshal(result)
	if merr != nil {
		return merr
	}
	return json.Unmarshal(raw, out)
}

func (f *fakeInvoker) called(command string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c == command {
			return true
		}
	}
	return false
}

func adminSession() Session {
	return Session{UserID: 1, Username: "owner", Role: "Admin"}
}

func TestCreateInvoiceFormLoadsCatalogs(t *testing.T) {
	inv := newFakeInvoker()
	inv.results["get_customers"] = []bridge.Customer{{ID: 1, Name: "Acme"}}
	inv.results["get_products"] = []bridge.Product{{ID: 5, Name: "Hosting", UnitPrice: 25, TaxPercent: 10}}

	form, err := NewCreateInvoiceForm(context.Background(), adminSession(), bridge.NewClient(inv))
	require.NoError(t, err)
	assert.Len(t, form.Customers, 1)
	assert.Len(t, form.Products, 1)
	// One empty row ready for input.
	assert.Len(t, form.Ledger.Items(), 1)
}

func TestCreateInvoiceFormFailFast(t *testing.T) {
	inv := newFakeInvoker()
	inv.results["get_customers"] = []bridge.Customer{{ID: 1, Name: "Acme"}}
	inv.fail["get_products"] = errors.New("host unavailable")

	form, err := NewCreateInvoiceForm(context.Background(), adminSession(), bridge.NewClient(inv))
	assert.Nil(t, form)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "host unavailable")
}

func TestCreateInvoiceFormSelectProduct(t *testing.T) {
	inv := newFakeInvoker()
	inv.results["get_customers"] = []bridge.Customer{}
	inv.results["get_products"] = []bridge.Product{{ID: 5, Name: "Hosting", UnitPrice: 25, TaxPercent: 10}}

	form, err := NewCreateInvoiceForm(context.Background(), adminSession(), bridge.NewClient(inv))
	require.NoError(t, err)

	row := form.Ledger.Items()[0]
	require.NoError(t, form.SelectProduct(row.ID, 5))

	got := form.Ledger.Items()[0]
	assert.Equal(t, "Hosting", got.Name)
	assert.True(t, got.UnitPrice.Equal(decimal.NewFromInt(25)))
	assert.True(t, got.TaxPercent.Equal(decimal.NewFromInt(10)))
}

func TestSubmitBlockedWithoutItems(t *testing.T) {
	inv := newFakeInvoker()
	inv.results["get_customers"] = []bridge.Customer{{ID: 1, Name: "Acme"}}
	inv.results["get_products"] = []bridge.Product{}

	form, err := NewCreateInvoiceForm(context.Background(), adminSession(), bridge.NewClient(inv))
	require.NoError(t, err)
	form.CustomerID = 1

	// The single row is unnamed, so the filtered submission is empty.
	_, err = form.Submit(context.Background())
	assert.ErrorIs(t, err, ledger.ErrNoItems)
	assert.False(t, inv.called("create_invoice"), "validation failure must not reach the boundary")
}

func TestSubmitBlockedWithoutCustomer(t *testing.T) {
	inv := newFakeInvoker()
	inv.results["get_customers"] = []bridge.Customer{}
	inv.results["get_products"] = []bridge.Product{}

	form, err := NewCreateInvoiceForm(context.Background(), adminSession(), bridge.NewClient(inv))
	require.NoError(t, err)

	_, err = form.Submit(context.Background())
	assert.ErrorIs(t, err, ErrNoCustomer)
	assert.False(t, inv.called("create_invoice"))
}

func TestSubmitSendsFilteredItems(t *testing.T) {
	inv := newFakeInvoker()
	inv.results["get_customers"] = []bridge.Customer{{ID: 1, Name: "Acme"}}
	inv.results["get_products"] = []bridge.Product{}
	inv.results["create_invoice"] = int64(42)

	form, err := NewCreateInvoiceForm(context.Background(), adminSession(), bridge.NewClient(inv))
	require.NoError(t, err)
	form.CustomerID = 1
	form.IssueDate = "2024-01-15"
	form.DueDate = "2024-02-15"

	row := form.Ledger.Items()[0]
	require.NoError(t, form.Ledger.UpdateName(row.ID, "Consulting"))
	require.NoError(t, form.Ledger.UpdateUnitPrice(row.ID, decimal.NewFromInt(150)))
	form.Ledger.AddItem(nil) // stays unnamed, must be dropped
	form.Ledger.SetAdvance(decimal.NewFromInt(20))

	id, err := form.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	sent, ok := inv.args["create_invoice"].(bridge.CreateInvoiceArgs)
	require.True(t, ok)
	require.Len(t, sent.Items, 1)
	assert.Equal(t, "Consulting", sent.Items[0].ProductName)
	assert.Equal(t, float64(20), sent.Advance)
}

func TestInvoiceDetailViewJoinsAndRenders(t *testing.T) {
	inv := newFakeInvoker()
	inv.results["get_invoice_detail"] = bridge.Invoice{
		ID: 9, InvoiceNumber: "INV-20240115-00009", CustomerName: "Acme",
		Status: "Sent", IssueDate: "2024-01-15", DueDate: "2024-02-15",
		Advance: 50, DiscountPercent: 0,
		Items: []bridge.InvoiceItem{{ProductName: "Consulting", Quantity: 1, UnitPrice: 100, TaxPercent: 10}},
	}
	inv.results["get_settings"] = bridge.Settings{BusinessName: "Ruky Stores", CurrencySymbol: "$", TaxLabel: "Tax", TemplateType: "Custom-3"}
	inv.results["get_custom_templates"] = []template.CustomTemplate{{ID: 3, Name: "Brand", LayoutStyle: template.LayoutBold}}

	v, err := NewInvoiceDetailView(context.Background(), adminSession(), bridge.NewClient(inv), 9, nil)
	require.NoError(t, err)
	assert.Equal(t, "Brand", v.Spec.Name)

	doc := v.Document()
	assert.Contains(t, doc.Find("header").InnerText(), "Ruky Stores")
	require.NotNil(t, doc.Find("totals-row advance-row"))
	assert.Contains(t, doc.Find("totals-row advance-row").InnerText(), "-$50.00")
}

func TestInvoiceDetailViewFailFast(t *testing.T) {
	inv := newFakeInvoker()
	inv.results["get_invoice_detail"] = bridge.Invoice{ID: 9}
	inv.results["get_custom_templates"] = []template.CustomTemplate{}
	inv.fail["get_settings"] = errors.New("boom")

	v, err := NewInvoiceDetailView(context.Background(), adminSession(), bridge.NewClient(inv), 9, nil)
	assert.Nil(t, v)
	assert.Error(t, err)
}

func TestInvoiceDetailViewTemplateFallback(t *testing.T) {
	inv := newFakeInvoker()
	inv.results["get_invoice_detail"] = bridge.Invoice{ID: 9}
	inv.results["get_settings"] = bridge.Settings{BusinessName: "Ruky", CurrencySymbol: "$", TemplateType: "Custom-999"}
	inv.results["get_custom_templates"] = []template.CustomTemplate{}

	v, err := NewInvoiceDetailView(context.Background(), adminSession(), bridge.NewClient(inv), 9, nil)
	require.NoError(t, err)
	assert.Equal(t, "Basic", v.Spec.Name)
}

func TestInvoiceListFilters(t *testing.T) {
	v := &InvoiceListView{Invoices: []bridge.Invoice{
		{ID: 1, Status: "Paid", CustomerName: "Acme", IssueDate: "2024-01-10"},
		{ID: 2, Status: "Sent", CustomerName: "Globex", IssueDate: "2024-02-01"},
		{ID: 3, Status: "Paid", CustomerName: "Globex", IssueDate: "2024-03-05"},
	}}

	v.FilterStatus = "Paid"
	assert.Len(t, v.Visible(), 2)

	v.FilterCustomer = "Globex"
	require.Len(t, v.Visible(), 1)
	assert.Equal(t, int64(3), v.Visible()[0].ID)

	v.FilterStatus = ""
	v.FilterCustomer = ""
	v.FilterFrom = "2024-02-01"
	v.FilterTo = "2024-02-28"
	require.Len(t, v.Visible(), 1)
	assert.Equal(t, int64(2), v.Visible()[0].ID)

	assert.Equal(t, []string{"Acme", "Globex"}, v.CustomerNames())
}

func TestTemplatesViewDeleteResetsActive(t *testing.T) {
	inv := newFakeInvoker()
	inv.results["get_settings"] = bridge.Settings{BusinessName: "Ruky", TemplateType: "Custom-4"}
	inv.results["get_custom_templates"] = []template.CustomTemplate{{ID: 4, Name: "Mine"}}

	v, err := NewTemplatesView(context.Background(), adminSession(), bridge.NewClient(inv), nil)
	require.NoError(t, err)
	require.True(t, v.IsActive("Custom-4"))

	require.NoError(t, v.Delete(context.Background(), 4))
	assert.True(t, inv.called("delete_custom_template"))
	assert.Equal(t, "Basic", v.ActiveRef())
	assert.Empty(t, v.CustomTemplates)
}

func TestSessionCapabilities(t *testing.T) {
	admin := Session{Role: "Admin"}
	user := Session{Role: "User"}

	assert.True(t, admin.Can("delete_invoice"))
	assert.True(t, admin.Can("create_invoice"))
	assert.False(t, user.Can("delete_invoice"))
	assert.False(t, user.Can("manage_settings"))
	assert.True(t, user.Can("create_invoice"))
}

func TestProfileResolvesAssets(t *testing.T) {
	s := bridge.Settings{BusinessName: "Ruky", LogoPath: "logo.png"}
	p := Profile(s, func(path string) string { return "asset://" + path })
	assert.Equal(t, "asset://logo.png", p.LogoURI)
	assert.Empty(t, p.SignatureURI)
}
