package entity

// DocumentType discriminates the two document variants.
type DocumentType string

const (
	TypeInvoice DocumentType = "invoice"
	TypeReceipt DocumentType = "receipt"
)

// LineItem represents one billable item or adjustment entry.
type LineItem struct {
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Bold        bool    `json:"bold,omitempty"`
}

// SummaryRow is a display-ready row with its sign already applied
// (e.g. a payment row carries the negated payment amount).
type SummaryRow struct {
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Bold        bool    `json:"bold,omitempty"`
}

// Section is a named, ordered group of rows. Row order is meaningful
// and preserved exactly as produced.
type Section struct {
	Heading string       `json:"heading"`
	Rows    []SummaryRow `json:"rows"`
}

// Document is a value object representing a renderable invoice or receipt.
// It is composed fresh per generation request and never persisted.
type Document struct {
	CustomerName  string       `json:"customer_name"`
	InvoiceNumber string       `json:"invoice_number"`
	Title         string       `json:"title"`
	Type          DocumentType `json:"document_type"`
	// LinkedInvoiceNumber is set on receipts only: the invoice this
	// receipt settles. Empty for invoices.
	LinkedInvoiceNumber string    `json:"linked_invoice_number,omitempty"`
	Sections            []Section `json:"sections"`
}

// ItemRows converts raw line items into display rows, preserving order.
func ItemRows(items []LineItem) []SummaryRow {
	rows := make([]SummaryRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, SummaryRow{
			Description: item.Description,
			Price:       item.Price,
			Bold:        item.Bold,
		})
	}
	return rows
}
