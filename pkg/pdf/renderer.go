// Package pdf renders finished document models to PDF bytes. It is a pure
// consumer of the document value: nothing it does feeds back into the
// computation that produced the document.
package pdf

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/kerrwood/stagebill-api/internal/config"
	"github.com/kerrwood/stagebill-api/internal/domain/entity"
)

// Renderer turns a document plus business details into PDF bytes.
type Renderer interface {
	Render(doc entity.Document, biz *config.BusinessConfig) ([]byte, error)
}

type documentRenderer struct{}

// NewRenderer creates the default gofpdf-backed renderer.
func NewRenderer() Renderer {
	return &documentRenderer{}
}

const (
	pageWidth   = 210.0 // A4 portrait, mm
	marginLeft  = 15.0
	marginRight = 15.0
	contentW    = pageWidth - marginLeft - marginRight
	descColW    = contentW * 0.72
	priceColW   = contentW - descColW
)

func (r *documentRenderer) Render(doc entity.Document, biz *config.BusinessConfig) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, 15, marginRight)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	r.header(pdf, biz)
	r.titleBlock(pdf, doc)

	for _, section := range doc.Sections {
		r.section(pdf, section)
	}

	r.footer(pdf, biz)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: failed to render %s %s: %w", doc.Type, doc.InvoiceNumber, err)
	}
	return buf.Bytes(), nil
}

func (r *documentRenderer) header(pdf *gofpdf.Fpdf, biz *config.BusinessConfig) {
	if biz.LogoPath != "" {
		if _, err := os.Stat(biz.LogoPath); err == nil {
			pdf.ImageOptions(biz.LogoPath, pageWidth-marginRight-30, 12, 30, 0, false,
				gofpdf.ImageOptions{ReadDpi: true}, 0, "")
		}
	}

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, biz.BusinessName, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, line := range biz.AddressLines() {
		pdf.CellFormat(0, 4.5, line, "", 1, "L", false, 0, "")
	}
	if biz.Phone != "" {
		pdf.CellFormat(0, 4.5, biz.Phone, "", 1, "L", false, 0, "")
	}
	if biz.Email != "" {
		pdf.CellFormat(0, 4.5, biz.Email, "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)
}

func (r *documentRenderer) titleBlock(pdf *gofpdf.Fpdf, doc entity.Document) {
	heading := "INVOICE"
	if doc.Type == entity.TypeReceipt {
		heading = "RECEIPT"
	}

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, heading, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5.5, fmt.Sprintf("Invoice number: %s", doc.InvoiceNumber), "", 1, "L", false, 0, "")
	if doc.Type == entity.TypeReceipt && doc.LinkedInvoiceNumber != "" {
		pdf.CellFormat(0, 5.5, fmt.Sprintf("In settlement of invoice %s", doc.LinkedInvoiceNumber), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 5.5, fmt.Sprintf("Customer: %s", doc.CustomerName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5.5, doc.Title, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5.5, fmt.Sprintf("Date: %s", time.Now().Format("02/01/2006")), "", 1, "L", false, 0, "")
	pdf.Ln(4)
}

func (r *documentRenderer) section(pdf *gofpdf.Fpdf, section entity.Section) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(contentW, 7, section.Heading, "1", 1, "L", true, 0, "")

	for _, row := range section.Rows {
		style := ""
		if row.Bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.CellFormat(descColW, 6.5, row.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(priceColW, 6.5, fmt.Sprintf("%.2f", row.Price), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)
}

func (r *documentRenderer) footer(pdf *gofpdf.Fpdf, biz *config.BusinessConfig) {
	if biz.AccountNumber == "" && biz.SortCode == "" {
		return
	}
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 5.5, "Payment details", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	if biz.AccountNumber != "" {
		pdf.CellFormat(0, 4.5, fmt.Sprintf("Account number: %s", biz.AccountNumber), "", 1, "L", false, 0, "")
	}
	if biz.SortCode != "" {
		pdf.CellFormat(0, 4.5, fmt.Sprintf("Sort code: %s", biz.SortCode), "", 1, "L", false, 0, "")
	}
}
