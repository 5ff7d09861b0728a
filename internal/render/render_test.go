package render

import (
	"strings"
	"testing"

	"billdesk/internal/ledger"
	"billdesk/internal/template"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildLedger(t *testing.T, advance, discountPercent string) *ledger.Ledger {
	t.Helper()
	l := ledger.New()
	a := l.AddItem(nil)
	require.NoError(t, l.UpdateName(a.ID, "Web Design Services"))
	require.NoError(t, l.UpdateUnitPrice(a.ID, dec("3000")))
	require.NoError(t, l.UpdateTaxPercent(a.ID, dec("10")))
	b := l.AddItem(nil)
	require.NoError(t, l.UpdateName(b.ID, "Development & Implementation"))
	require.NoError(t, l.UpdateQuantity(b.ID, 2))
	require.NoError(t, l.UpdateUnitPrice(b.ID, dec("1000")))
	require.NoError(t, l.UpdateTaxPercent(b.ID, dec("10")))
	l.SetAdvance(dec(advance))
	l.SetDiscountPercent(dec(discountPercent))
	return l
}

func testProfile() *BusinessProfile {
	return &BusinessProfile{
		BusinessName:   "Ruky Stores",
		Address:        "12 Main Street",
		Phone:          "+94 11 222 3333",
		Email:          "sales@ruky.example",
		CurrencySymbol: "$",
		TaxLabel:       "Tax",
	}
}

func TestRenderDeterministic(t *testing.T) {
	l := buildLedger(t, "1000", "5")
	customer := CustomerSnapshot{Name: "Acme Corporation"}
	meta := Meta{InvoiceNumber: "INV-20240115-00001", IssueDate: "2024-01-15", DueDate: "2024-02-15"}
	spec := template.BuiltinSpec("Professional")

	first := Render(testProfile(), customer, meta, l.Items(), l.ComputeTotals(), spec)
	second := Render(testProfile(), customer, meta, l.Items(), l.ComputeTotals(), spec)
	assert.Equal(t, first.HTML(), second.HTML())
}

func TestRenderConditionalTotalsRows(t *testing.T) {
	customer := CustomerSnapshot{Name: "Acme"}
	meta := Meta{InvoiceNumber: "1"}
	spec := template.BuiltinSpec("Basic")

	t.Run("no_advance_no_discount", func(t *testing.T) {
		l := buildLedger(t, "0", "0")
		tree := Render(testProfile(), customer, meta, l.Items(), l.ComputeTotals(), spec)

		assert.Nil(t, tree.Find("totals-row advance-row"))
		assert.Nil(t, tree.Find("totals-row discount-row"))
		grand := tree.Find("totals-row grand-total")
		require.NotNil(t, grand)
		assert.Contains(t, grand.InnerText(), "$5500.00")
	})

	t.Run("advance_only", func(t *testing.T) {
		l := buildLedger(t, "50", "0")
		tree := Render(testProfile(), customer, meta, l.Items(), l.ComputeTotals(), spec)

		rows := tree.FindAll("totals-row advance-row")
		require.Len(t, rows, 1)
		assert.Contains(t, rows[0].InnerText(), "-$50.00")
		assert.Nil(t, tree.Find("totals-row discount-row"))
	})

	t.Run("discount_shows_amount_not_percent", func(t *testing.T) {
		l := buildLedger(t, "0", "5")
		tree := Render(testProfile(), customer, meta, l.Items(), l.ComputeTotals(), spec)

		row := tree.Find("totals-row discount-row")
		require.NotNil(t, row)
		assert.Contains(t, row.InnerText(), "Discount (5%)")
		assert.Contains(t, row.InnerText(), "-$275.00")
	})
}

func TestRenderEscapesUserText(t *testing.T) {
	l := ledger.New()
	item := l.AddItem(nil)
	require.NoError(t, l.UpdateName(item.ID, `<script>alert("x")</script>`))
	require.NoError(t, l.UpdateUnitPrice(item.ID, dec("10")))

	customer := CustomerSnapshot{Name: `<script>steal()</script>`, Address: `"quoted" & <tagged>`}
	tree := Render(testProfile(), customer, Meta{InvoiceNumber: "1"}, l.Items(), l.ComputeTotals(), template.BuiltinSpec("Basic"))
	html := tree.HTML()

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;steal()&lt;/script&gt;")
	assert.Contains(t, html, "&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;")
}

func TestRenderLayoutStrategies(t *testing.T) {
	l := buildLedger(t, "0", "0")
	customer := CustomerSnapshot{Name: "Acme"}
	meta := Meta{InvoiceNumber: "2024-001"}

	for _, layout := range []string{template.LayoutClassic, template.LayoutModern, template.LayoutMinimal, template.LayoutBold} {
		t.Run(layout, func(t *testing.T) {
			spec := template.BuiltinSpec("Basic")
			spec.LayoutStyle = layout
			tree := Render(testProfile(), customer, meta, l.Items(), l.ComputeTotals(), spec)

			assert.Equal(t, layout, tree.Attrs["data-layout"])
			require.NotNil(t, tree.Find("header"))
			assert.Contains(t, tree.Find("header").InnerText(), "Ruky Stores")
		})
	}
}

func TestRenderColumnVisibility(t *testing.T) {
	l := buildLedger(t, "0", "0")
	customer := CustomerSnapshot{Name: "Acme"}
	meta := Meta{InvoiceNumber: "1"}

	spec := template.BuiltinSpec("Basic")
	spec.ShowTaxColumn = false
	spec.ShowDescription = false
	tree := Render(testProfile(), customer, meta, l.Items(), l.ComputeTotals(), spec)
	table := tree.Find("item-table")
	require.NotNil(t, table)
	assert.NotContains(t, table.InnerText(), "Tax %")
	assert.Empty(t, tree.FindAll("item-description"))

	spec.ShowTaxColumn = true
	spec.ShowDescription = true
	tree = Render(testProfile(), customer, meta, l.Items(), l.ComputeTotals(), spec)
	table = tree.Find("item-table")
	assert.Contains(t, table.InnerText(), "Tax %")
	assert.Len(t, tree.FindAll("item-description"), 2)
}

func TestRenderFallsBackToSampleProfile(t *testing.T) {
	l := buildLedger(t, "0", "0")
	tree := Render(nil, CustomerSnapshot{Name: "Acme"}, Meta{InvoiceNumber: "1"}, l.Items(), l.ComputeTotals(), template.BuiltinSpec("Basic"))

	assert.Contains(t, tree.Find("header").InnerText(), "My Business")
	assert.Contains(t, tree.Find("totals").InnerText(), "$")

	empty := Render(&BusinessProfile{}, CustomerSnapshot{Name: "Acme"}, Meta{InvoiceNumber: "1"}, l.Items(), l.ComputeTotals(), template.BuiltinSpec("Basic"))
	assert.Contains(t, empty.Find("header").InnerText(), "My Business")
}

func TestRenderAssetPlacement(t *testing.T) {
	l := buildLedger(t, "0", "0")
	customer := CustomerSnapshot{Name: "Acme"}
	meta := Meta{InvoiceNumber: "1"}
	spec := template.BuiltinSpec("ClearStyle")

	p := testProfile()
	p.LogoURI = "asset://logo.png"
	p.SignatureURI = "asset://sig.png"
	p.BankAccountNo = "100200300"
	p.BankName = "First National"
	tree := Render(p, customer, meta, l.Items(), l.ComputeTotals(), spec)
	assert.NotNil(t, tree.Find("logo"))
	assert.NotNil(t, tree.Find("signature"))
	assert.Contains(t, tree.Find("bank-details").InnerText(), "100200300")

	// Empty path suppresses placement even when the flag is on.
	p.LogoURI = ""
	tree = Render(p, customer, meta, l.Items(), l.ComputeTotals(), spec)
	assert.Nil(t, tree.Find("logo"))
}

func TestMoneyAndPercentFormatting(t *testing.T) {
	assert.Equal(t, "$0.00", Money("$", decimal.Zero))
	assert.Equal(t, "Rs.1234.50", Money("Rs.", dec("1234.5")))
	assert.Equal(t, "-$50.00", NegMoney("$", dec("50")))
	assert.Equal(t, "10%", Percent(dec("10")))
	assert.Equal(t, "7.5%", Percent(dec("7.5")))
}

func TestHTMLSerializerStableAttrOrder(t *testing.T) {
	n := El("div").WithAttr("b", "2").WithAttr("a", "1")
	assert.True(t, strings.HasPrefix(n.HTML(), `<div a="1" b="2">`))
}
