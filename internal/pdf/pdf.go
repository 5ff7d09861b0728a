// Package pdf writes an invoice to an A4 PDF file. The layout matches the
// printable document: business header on the left, invoice title and dates
// on the right, item table, then the totals column.
package pdf

import (
	"fmt"

	"billdesk/internal/model"

	"github.com/jung-kurt/gofpdf"
)

// Generate renders the invoice into filePath and returns the path written.
func Generate(invoice *model.Invoice, settings *model.Settings, filePath string) (string, error) {
	currency := settings.CurrencySymbol

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle("Invoice "+invoice.InvoiceNumber, false)
	doc.AddPage()

	// Business header
	doc.SetFont("Helvetica", "B", 20)
	doc.SetXY(20, 20)
	doc.Cell(100, 8, settings.BusinessName)
	doc.SetFont("Helvetica", "", 9)
	y := 30.0
	if settings.BusinessAddress != "" {
		doc.SetXY(20, y)
		doc.Cell(100, 5, settings.BusinessAddress)
		y += 5
	}
	if settings.BusinessPhone != "" {
		doc.SetXY(20, y)
		doc.Cell(100, 5, "Phone: "+settings.BusinessPhone)
		y += 5
	}
	if settings.BusinessEmail != "" {
		doc.SetXY(20, y)
		doc.Cell(100, 5, "Email: "+settings.BusinessEmail)
		y += 5
	}

	// Invoice title and dates
	doc.SetFont("Helvetica", "B", 24)
	doc.SetXY(140, 20)
	doc.Cell(50, 10, "INVOICE")
	doc.SetFont("Helvetica", "", 11)
	doc.SetXY(140, 30)
	doc.Cell(50, 6, "# "+invoice.InvoiceNumber)
	doc.SetFont("Helvetica", "", 10)
	doc.SetXY(140, 38)
	doc.Cell(50, 5, "Issue Date: "+invoice.IssueDate)
	doc.SetXY(140, 43)
	doc.Cell(50, 5, "Due Date: "+invoice.DueDate)
	doc.SetXY(140, 48)
	doc.Cell(50, 5, "Status: "+invoice.Status)

	// Bill to
	y += 8
	doc.SetFont("Helvetica", "B", 11)
	doc.SetXY(20, y)
	doc.Cell(100, 6, "Bill To:")
	y += 6
	doc.SetFont("Helvetica", "", 10)
	customerName := "-"
	if invoice.Customer != nil {
		customerName = invoice.Customer.Name
	}
	doc.SetXY(20, y)
	doc.Cell(100, 5, customerName)
	y += 15

	// Item table
	doc.SetFont("Helvetica", "B", 10)
	doc.SetXY(20, y)
	doc.CellFormat(80, 6, "Item", "", 0, "L", false, 0, "")
	doc.CellFormat(15, 6, "Qty", "", 0, "R", false, 0, "")
	doc.CellFormat(30, 6, "Unit Price", "", 0, "R", false, 0, "")
	doc.CellFormat(20, 6, "Tax %", "", 0, "R", false, 0, "")
	doc.CellFormat(25, 6, "Total", "", 0, "R", false, 0, "")
	y += 6
	doc.Line(20, y, 190, y)
	y += 2

	doc.SetFont("Helvetica", "", 9)
	for _, item := range invoice.Items {
		doc.SetXY(20, y)
		doc.CellFormat(80, 6, item.ProductName, "", 0, "L", false, 0, "")
		doc.CellFormat(15, 6, fmt.Sprintf("%d", item.Quantity), "", 0, "R", false, 0, "")
		doc.CellFormat(30, 6, currency+item.UnitPrice.StringFixed(2), "", 0, "R", false, 0, "")
		doc.CellFormat(20, 6, item.TaxPercent.StringFixed(1)+"%", "", 0, "R", false, 0, "")
		doc.CellFormat(25, 6, currency+item.LineTotal.StringFixed(2), "", 0, "R", false, 0, "")
		y += 6
	}

	// Totals
	y += 3
	doc.Line(120, y, 190, y)
	y += 2
	doc.SetFont("Helvetica", "", 10)

	totalsRow := func(label, value string) {
		doc.SetXY(130, y)
		doc.CellFormat(35, 6, label, "", 0, "L", false, 0, "")
		doc.CellFormat(25, 6, value, "", 0, "R", false, 0, "")
		y += 6
	}

	totalsRow("Subtotal:", currency+invoice.Subtotal.StringFixed(2))
	totalsRow(settings.TaxLabel+":", currency+invoice.Tax.StringFixed(2))
	if invoice.Advance.IsPositive() {
		totalsRow("Advance Paid:", "-"+currency+invoice.Advance.StringFixed(2))
	}
	if invoice.Discount.IsPositive() {
		totalsRow("Discount:", "-"+currency+invoice.Discount.StringFixed(2))
	}

	doc.SetFont("Helvetica", "B", 12)
	doc.SetXY(130, y)
	doc.CellFormat(35, 7, "TOTAL:", "", 0, "L", false, 0, "")
	doc.CellFormat(25, 7, currency+invoice.Total.StringFixed(2), "", 0, "R", false, 0, "")
	y += 13

	// Notes
	if invoice.Notes != "" {
		doc.SetFont("Helvetica", "B", 10)
		doc.SetXY(20, y)
		doc.Cell(100, 5, "Notes:")
		y += 5
		doc.SetFont("Helvetica", "", 9)
		doc.SetXY(20, y)
		doc.MultiCell(170, 5, invoice.Notes, "", "L", false)
	}

	// Footer
	doc.SetFont("Helvetica", "", 10)
	doc.SetXY(20, 282)
	doc.CellFormat(170, 5, "Thank you for your business!", "", 0, "C", false, 0, "")

	if err := doc.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("failed to write pdf: %w", err)
	}
	return filePath, nil
}
