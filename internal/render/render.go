// Package render turns invoice data plus a resolved RenderSpec into a typed
// document tree. The same inputs always produce the same tree, so previews
// can be snapshot-tested and the on-screen preview stays consistent with the
// exported document.
package render

import (
	"billdesk/internal/ledger"
	"billdesk/internal/template"
)

// BusinessProfile is the settings snapshot the renderer consumes read-only.
// Asset fields hold displayable URIs resolved by the caller; the renderer
// only decides whether to place them.
type BusinessProfile struct {
	BusinessName    string
	Address         string
	Phone           string
	Email           string
	Tagline         string
	CurrencySymbol  string
	TaxLabel        string
	LogoURI         string
	SignatureURI    string
	QRCodeURI       string
	FooterText      string
	BankName        string
	BankAccountName string
	BankAccountNo   string
	BankBranch      string
}

// CustomerSnapshot is the bill-to block's data.
type CustomerSnapshot struct {
	Name    string
	Company string
	Address string
	Phone   string
}

// Meta carries the invoice-level fields outside items and totals.
type Meta struct {
	InvoiceNumber string
	IssueDate     string
	DueDate       string
	Status        string
	Notes         string
}

// SampleProfile is substituted when the profile is absent or has no business
// name, so the live preview never renders empty against draft settings.
func SampleProfile() BusinessProfile {
	return BusinessProfile{
		BusinessName:   "My Business",
		Address:        "123 Business Street, City",
		Phone:          "+1 (555) 123-4567",
		Email:          "hello@example.com",
		CurrencySymbol: "$",
		TaxLabel:       "Tax",
	}
}

// SampleInvoice returns the fixed preview data used by the template gallery
// and designer: two items, a 1000 advance and a 5% discount, so every
// conditional totals row is visible in previews.
func SampleInvoice() (CustomerSnapshot, Meta, []ledger.LineItem, ledger.Totals) {
	customer := CustomerSnapshot{
		Name:    "Acme Corporation",
		Address: "456 Client Ave, City, State 12345",
		Phone:   "+94 77 123 4567",
	}
	meta := Meta{
		InvoiceNumber: "2024-001",
		IssueDate:     "2024-01-28",
		DueDate:       "2024-02-28",
		Status:        "Draft",
	}
	l := ledger.New()
	a := l.AddItem(nil)
	_ = l.UpdateName(a.ID, "Web Design Services")
	_ = l.UpdateUnitPrice(a.ID, dec("3000"))
	_ = l.UpdateTaxPercent(a.ID, dec("10"))
	b := l.AddItem(nil)
	_ = l.UpdateName(b.ID, "Development & Implementation")
	_ = l.UpdateQuantity(b.ID, 2)
	_ = l.UpdateUnitPrice(b.ID, dec("1000"))
	_ = l.UpdateTaxPercent(b.ID, dec("10"))
	l.SetAdvance(dec("1000"))
	l.SetDiscountPercent(dec("5"))
	return customer, meta, l.Items(), l.ComputeTotals()
}

// Render maps (profile, customer, items, totals, spec) to a document tree.
// Pure: no clock, no I/O, no hidden state.
func Render(profile *BusinessProfile, customer CustomerSnapshot, meta Meta, items []ledger.LineItem, totals ledger.Totals, spec template.RenderSpec) *Node {
	p := SampleProfile()
	if profile != nil && profile.BusinessName != "" {
		p = *profile
	}
	if p.CurrencySymbol == "" {
		p.CurrencySymbol = "$"
	}
	if p.TaxLabel == "" {
		p.TaxLabel = "Tax"
	}

	doc := El("div").WithAttr("class", "invoice-doc").
		WithAttr("data-layout", spec.LayoutStyle).
		WithAttr("data-font", spec.FontFamily)

	doc.Append(
		header(p, meta, spec),
		billTo(customer, meta),
		itemTable(p, items, spec),
		totalsBlock(p, totals),
	)

	if meta.Notes != "" {
		doc.Append(El("div",
			El("strong", Text("Notes:")),
			El("p", Text(meta.Notes)),
		).WithAttr("class", "notes"))
	}
	if spec.ShowBankDetails && p.BankAccountNo != "" {
		doc.Append(bankDetails(p))
	}
	if spec.ShowSignature && p.SignatureURI != "" {
		doc.Append(El("div",
			El("img").WithAttr("src", p.SignatureURI),
			El("span", Text("Authorized Signature")),
		).WithAttr("class", "signature"))
	}

	footer := spec.FooterText
	if footer == "" {
		footer = p.FooterText
	}
	if footer != "" {
		doc.Append(El("div", Text(footer)).WithAttr("class", "footer"))
	}

	return doc
}

// header composes the business identity block. The layout styles are
// mutually exclusive branches over the same data.
func header(p BusinessProfile, meta Meta, spec template.RenderSpec) *Node {
	identity := El("div").WithAttr("class", "business-identity").WithAttr("data-align", spec.HeaderPosition)
	identity.Append(El("h1", Text(p.BusinessName)))
	if p.Tagline != "" {
		identity.Append(El("p", Text(p.Tagline)).WithAttr("class", "tagline"))
	}

	contact := El("p").WithAttr("class", "business-contact")
	if spec.ShowAddress && p.Address != "" {
		contact.Append(El("span", Text(p.Address)).WithAttr("class", "business-address"))
	}
	if spec.ShowPhone && p.Phone != "" {
		contact.Append(El("span", Text(p.Phone)).WithAttr("class", "business-phone"))
	}
	if spec.ShowEmail && p.Email != "" {
		contact.Append(El("span", Text(p.Email)).WithAttr("class", "business-email"))
	}
	identity.Append(contact)

	title := El("div",
		El("span", Text("INVOICE")).WithAttr("class", "doc-title"),
		El("span", Text("#"+meta.InvoiceNumber)).WithAttr("class", "doc-number"),
	).WithAttr("class", "invoice-title")

	h := El("div").WithAttr("class", "header").
		WithAttr("data-bg", spec.HeaderBgColor).
		WithAttr("data-fg", spec.HeaderTextColor).
		WithAttr("data-accent", spec.AccentColor).
		WithAttr("data-border", borderValue(spec))

	if spec.ShowLogo && p.LogoURI != "" {
		h.Append(El("img").WithAttr("src", p.LogoURI).WithAttr("class", "logo"))
	}

	switch spec.LayoutStyle {
	case template.LayoutBold:
		// Full-bleed banner: title dominates, identity sits inside the band.
		h.Append(title, identity)
	case template.LayoutModern:
		// Accent-ruled header with the number as the focal point.
		h.Append(identity, title)
	case template.LayoutMinimal:
		// Identity only; the number moves into a quiet rule below it.
		h.Append(identity, El("div", Text("Invoice #"+meta.InvoiceNumber)).WithAttr("class", "doc-number"))
	default:
		// Classic: identity left, title block right.
		h.Append(identity, title)
	}
	return h
}

func billTo(customer CustomerSnapshot, meta Meta) *Node {
	who := El("div", El("strong", Text("BILL TO:"))).WithAttr("class", "bill-to")
	name := customer.Name
	if name == "" {
		name = "—"
	}
	who.Append(El("p", Text(name)).WithAttr("class", "customer-name"))
	if customer.Company != "" {
		who.Append(El("p", Text(customer.Company)).WithAttr("class", "customer-company"))
	}
	if customer.Address != "" {
		who.Append(El("p", Text(customer.Address)).WithAttr("class", "customer-address"))
	}
	if customer.Phone != "" {
		who.Append(El("p", Text(customer.Phone)).WithAttr("class", "customer-phone"))
	}

	dates := El("div",
		El("div", El("span", Text("ISSUE DATE")), El("span", Text(meta.IssueDate))),
		El("div", El("span", Text("DUE DATE")), El("span", Text(meta.DueDate))),
	).WithAttr("class", "invoice-dates")
	if meta.Status != "" {
		dates.Append(El("div", El("span", Text("STATUS")), El("span", Text(meta.Status))))
	}

	return El("div", who, dates).WithAttr("class", "parties")
}

func itemTable(p BusinessProfile, items []ledger.LineItem, spec template.RenderSpec) *Node {
	head := El("tr", El("th", Text("ITEM")))
	if spec.ShowDescription {
		head.Append(El("th", Text("DESCRIPTION")))
	}
	head.Append(
		El("th", Text("QTY")),
		El("th", Text("RATE")),
	)
	if spec.ShowTaxColumn {
		head.Append(El("th", Text(p.TaxLabel+" %")))
	}
	head.Append(El("th", Text("AMOUNT")))

	body := El("tbody")
	for _, it := range items {
		row := El("tr", El("td", Text(it.Name))).WithAttr("class", "item-row")
		if spec.ShowDescription {
			row.Append(El("td", Text(it.Name)).WithAttr("class", "item-description"))
		}
		row.Append(
			El("td", Text(decimalInt(it.Quantity))),
			El("td", Text(Money(p.CurrencySymbol, it.UnitPrice))),
		)
		if spec.ShowTaxColumn {
			row.Append(El("td", Text(Percent(it.TaxPercent))))
		}
		row.Append(El("td", Text(Money(p.CurrencySymbol, it.LineTotal()))))
		body.Append(row)
	}

	return El("table", El("thead", head), body).
		WithAttr("class", "item-table").
		WithAttr("data-table-style", spec.TableStyle)
}

// totalsBlock renders subtotal/tax always, advance and discount only when
// non-zero, then the grand total.
func totalsBlock(p BusinessProfile, totals ledger.Totals) *Node {
	block := El("div").WithAttr("class", "totals")
	row := func(class, label, value string) *Node {
		return El("div",
			El("span", Text(label)).WithAttr("class", "label"),
			El("span", Text(value)).WithAttr("class", "value"),
		).WithAttr("class", class)
	}

	block.Append(
		row("totals-row subtotal-row", "Subtotal", Money(p.CurrencySymbol, totals.Subtotal)),
		row("totals-row tax-row", p.TaxLabel, Money(p.CurrencySymbol, totals.TaxTotal)),
	)
	if totals.Advance.IsPositive() {
		block.Append(row("totals-row advance-row", "Advance", NegMoney(p.CurrencySymbol, totals.Advance)))
	}
	if totals.DiscountPercent.IsPositive() {
		label := "Discount (" + Percent(totals.DiscountPercent) + ")"
		block.Append(row("totals-row discount-row", label, NegMoney(p.CurrencySymbol, totals.DiscountAmount)))
	}
	block.Append(row("totals-row grand-total", "Total Due", Money(p.CurrencySymbol, totals.TotalDue)))
	return block
}

func bankDetails(p BusinessProfile) *Node {
	b := El("div", El("strong", Text("Bank Details"))).WithAttr("class", "bank-details")
	if p.BankName != "" {
		b.Append(El("p", Text("Bank: "+p.BankName)))
	}
	if p.BankAccountName != "" {
		b.Append(El("p", Text("Account Name: "+p.BankAccountName)))
	}
	b.Append(El("p", Text("Account No: "+p.BankAccountNo)))
	if p.BankBranch != "" {
		b.Append(El("p", Text("Branch: "+p.BankBranch)))
	}
	if p.QRCodeURI != "" {
		b.Append(El("img").WithAttr("src", p.QRCodeURI).WithAttr("class", "qr-code"))
	}
	return b
}

func borderValue(spec template.RenderSpec) string {
	if spec.BorderStyle == template.BorderNone {
		return "none"
	}
	return "1px " + spec.BorderStyle + " " + spec.BorderColor
}
