// Package receipt renders a single transaction as a printable A4 PDF:
// letterhead background, billed-to block, a one-line item table with 5%
// tax, a QR code pointing at the clinic site, and a signature block.
package receipt

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/boombuler/barcode/qr"
	"github.com/phpdave11/gofpdf"
	pdfbarcode "github.com/phpdave11/gofpdf/contrib/barcode"
	"github.com/shopspring/decimal"

	"surokkha/internal/core"
)

// TaxRate is the fixed receipt tax applied to the line total.
var TaxRate = decimal.NewFromFloat(0.05)

// DefaultQRURL is printed as a QR code on every receipt.
const DefaultQRURL = "https://www.surokkhavetclinics.com"

// Renderer draws receipts with a fixed page layout. The letterhead image
// is optional; when the file is missing the receipt falls back to a plain
// text header.
type Renderer struct {
	LetterheadPath string
	QRURL          string

	// Now stamps the receipt; tests pin it.
	Now func() time.Time
}

func NewRenderer(letterheadPath, qrURL string) *Renderer {
	if qrURL == "" {
		qrURL = DefaultQRURL
	}
	return &Renderer{
		LetterheadPath: letterheadPath,
		QRURL:          qrURL,
		Now:            time.Now,
	}
}

// Totals computes the receipt math for a line total: the subtotal equals
// the transaction amount (quantity is fixed at one), tax is 5% rounded to
// two decimals, and the grand total is their sum.
func Totals(amount decimal.Decimal) (subtotal, tax, total decimal.Decimal) {
	subtotal = amount
	tax = amount.Mul(TaxRate).Round(2)
	total = subtotal.Add(tax)
	return subtotal, tax, total
}

// Filename names the PDF download from the client and transaction date,
// with spaces underscored: receipt_Rahim_Uddin_2026-04-12.pdf.
func Filename(tx core.Transaction) string {
	name := strings.ReplaceAll(strings.TrimSpace(tx.ClientName), " ", "_")
	return fmt.Sprintf("receipt_%s_%s.pdf", name, tx.Date.Format("2006-01-02"))
}

// Render draws the single-page receipt and returns the PDF bytes.
func (r *Renderer) Render(tx core.Transaction) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetTitle("Surokkha Vet Clinics - Receipt", true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	width, height := pdf.GetPageSize()

	r.drawLetterhead(pdf, width, height)

	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0x0B, 0x6E, 0x4F)
	drawCentered(pdf, width/2, 180, "Receipt")

	// Timestamp, upper right below the title
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	stamp := r.Now().Format("2006-01-02 03:04 PM")
	drawRight(pdf, width-50, 195, "Time: "+stamp)

	// Billed-to block
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Text(50, 220, "Billed To:")
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(120, 220, tx.ClientName+" | "+tx.Phone)
	pdf.Text(120, 235, "Address: "+tx.Address)

	// Item table header
	y := 270.0
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Text(50, y, "Service")
	pdf.Text(250, y, "Unit Price")
	pdf.Text(350, y, "Quantity")
	pdf.Text(450, y, "Total")
	y += 15
	pdf.Line(50, y, 550, y)
	y += 20

	// Single line item: the service is the category, quantity fixed at 1.
	subtotal, tax, total := Totals(tx.Amount)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(50, y, tx.Category)
	pdf.Text(250, y, money(tx.Amount))
	pdf.Text(350, y, "1")
	pdf.Text(450, y, money(subtotal))
	y += 30

	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(350, y, "Subtotal:")
	pdf.Text(450, y, money(subtotal))
	y += 15
	pdf.Text(350, y, "Tax (5%):")
	pdf.Text(450, y, money(tax))
	y += 15
	pdf.Text(350, y, "Total:")
	pdf.Text(450, y, money(total))

	r.drawFooter(pdf, tx, width, height)

	if pdf.Err() {
		return nil, fmt.Errorf("render receipt: %w", pdf.Error())
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawLetterhead(pdf *gofpdf.Fpdf, width, height float64) {
	if r.LetterheadPath != "" {
		if _, err := os.Stat(r.LetterheadPath); err == nil {
			opts := gofpdf.ImageOptions{ReadDpi: true}
			pdf.ImageOptions(r.LetterheadPath, 0, 0, width, height, false, opts, 0, "")
			if !pdf.Err() {
				return
			}
			// A broken image behaves like a missing one.
			pdf.ClearError()
		}
	}
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(50, 50, "Surokkha Vet Clinics")
}

func (r *Renderer) drawFooter(pdf *gofpdf.Fpdf, tx core.Transaction, width, height float64) {
	// Footer geometry is measured up from the page bottom.
	footerY := height - 140

	// QR code, lower right
	key := pdfbarcode.RegisterQR(pdf, r.QRURL, qr.H, qr.Unicode)
	pdfbarcode.Barcode(pdf, key, width-120, footerY-60, 60, 60, false)

	// Duty doctor signature block
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(width-200, footerY-70, "Duty Doctor: "+tx.DutyDoctor)
	pdf.Line(width-200, footerY-65, width-50, footerY-65)
	pdf.Text(width-200, footerY-50, "Signature")

	// Footer notes
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Text(50, footerY-20, "Thank you for choosing Surokkha Vet Clinics.")
	pdf.Text(50, footerY-5, "This receipt was generated digitally and does not require a signature.")
}

// money renders an amount for the PDF. The core fonts cannot encode the
// taka sign, so receipts use the "Tk" abbreviation instead.
func money(d decimal.Decimal) string {
	return "Tk " + core.GroupDigits(d)
}

func drawCentered(pdf *gofpdf.Fpdf, x, y float64, s string) {
	pdf.Text(x-pdf.GetStringWidth(s)/2, y, s)
}

func drawRight(pdf *gofpdf.Fpdf, x, y float64, s string) {
	pdf.Text(x-pdf.GetStringWidth(s), y, s)
}
