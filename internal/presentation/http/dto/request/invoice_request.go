package request

// ItemRequest is a free-form priced entry: a custom line item, an
// additional charge, or a payment made.
type ItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price"`
	Bold        bool    `json:"bold"`
}

// GenerateInvoiceRequest is the request body for generating an invoice PDF.
type GenerateInvoiceRequest struct {
	CustomerName      string        `json:"customer_name" binding:"required"`
	EventDate         string        `json:"event_date" binding:"required"`
	Venue             string        `json:"venue" binding:"required"`
	InvoiceNumber     string        `json:"invoice_number" binding:"required"`
	PresetIDs         []string      `json:"preset_ids"`
	CustomItems       []ItemRequest `json:"custom_items"`
	DiscountPercent   float64       `json:"discount_percent"`
	TravelCost        float64       `json:"travel_cost"`
	AdditionalCharges []ItemRequest `json:"additional_charges"`
	PaymentMade       []ItemRequest `json:"payment_made"`
	ShowDeposit       *bool         `json:"show_deposit"`
	DepositOnly       bool          `json:"deposit_only"`
	AmountDueOverride *float64      `json:"amount_due_override"`
}

// GenerateReceiptRequest is the request body for generating a receipt PDF.
// Receipts take the same inputs as the invoice they close out, minus the
// amount-due policy flags: a receipt's balance is always zero.
type GenerateReceiptRequest struct {
	CustomerName      string        `json:"customer_name" binding:"required"`
	EventDate         string        `json:"event_date" binding:"required"`
	Venue             string        `json:"venue" binding:"required"`
	InvoiceNumber     string        `json:"invoice_number" binding:"required"`
	PresetIDs         []string      `json:"preset_ids"`
	CustomItems       []ItemRequest `json:"custom_items"`
	DiscountPercent   float64       `json:"discount_percent"`
	TravelCost        float64       `json:"travel_cost"`
	AdditionalCharges []ItemRequest `json:"additional_charges"`
	PaymentMade       []ItemRequest `json:"payment_made"`
	ShowDeposit       *bool         `json:"show_deposit"`
}
