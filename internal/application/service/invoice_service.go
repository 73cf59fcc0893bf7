package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kerrwood/stagebill-api/internal/domain/entity"
	"github.com/kerrwood/stagebill-api/pkg/apperror"
)

// InvoiceOptions is the validated input bundle for one generation request.
// It is constructed once per request and never mutated afterwards.
type InvoiceOptions struct {
	CustomerName      string
	EventDate         string
	Venue             string
	InvoiceNumber     string
	LineItems         []entity.LineItem
	DiscountPercent   float64
	TravelCost        float64
	PaymentMade       []entity.LineItem
	AdditionalCharges []entity.LineItem
}

// GenerateFlags controls the amount-due policy for invoice generation.
type GenerateFlags struct {
	// DepositOnly makes only the deposit (plus charges, minus payments) due
	// rather than the full balance.
	DepositOnly bool
	// AmountDueOverride, when set, wins over every computed value.
	AmountDueOverride *float64
	// ShowDeposit controls whether the deposit row appears in the summary.
	// The deposit itself is always computed.
	ShowDeposit bool
}

// InvoiceService computes document summaries and assembles invoices and
// receipts. All operations are pure functions of their inputs.
type InvoiceService struct {
	depositPercent float64
}

// NewInvoiceService creates a new invoice service with the given deposit
// percentage (e.g. 20 for a 20% deposit).
func NewInvoiceService(depositPercent float64) *InvoiceService {
	return &InvoiceService{depositPercent: depositPercent}
}

// BuildSummary produces the summary rows common to invoices and receipts,
// together with the total (before additional charges) and the deposit.
//
// Row order is fixed: Subtotal, Discount, Travel Cost, Total, Deposit,
// additional charges, payments. Discount and travel rows are emitted only
// for positive values; zero or negative inputs behave as if absent.
func (s *InvoiceService) BuildSummary(opts InvoiceOptions, showDeposit, showPayments bool) ([]entity.SummaryRow, float64, float64) {
	var subtotal float64
	for _, item := range opts.LineItems {
		subtotal += item.Price
	}
	rows := []entity.SummaryRow{
		{Description: "Subtotal", Price: subtotal},
	}

	var discountAmount float64
	if opts.DiscountPercent > 0 {
		discountAmount = round2(subtotal * opts.DiscountPercent / 100)
		rows = append(rows, entity.SummaryRow{
			Description: fmt.Sprintf("Discount (%s%%)", formatNumber(opts.DiscountPercent)),
			Price:       -discountAmount,
		})
	}

	var travelCost float64
	if opts.TravelCost > 0 {
		travelCost = opts.TravelCost
		rows = append(rows, entity.SummaryRow{Description: "Travel Cost", Price: travelCost})
	}

	// Total after discount and travel, before additional charges.
	total := subtotal - discountAmount + travelCost
	rows = append(rows, entity.SummaryRow{Description: "Total", Price: total, Bold: true})

	// The deposit is always computed off this total; amount-due logic
	// needs it even when the row is hidden.
	deposit := round2(total * s.depositPercent / 100)
	if showDeposit {
		rows = append(rows, entity.SummaryRow{
			Description: fmt.Sprintf("Deposit (%s%%)", formatNumber(s.depositPercent)),
			Price:       deposit,
		})
	}

	// Additional charges are listed after the deposit and excluded from
	// the total above.
	for _, charge := range opts.AdditionalCharges {
		rows = append(rows, entity.SummaryRow{Description: charge.Description, Price: charge.Price})
	}

	// Payments always display as deductions regardless of the stored sign.
	if showPayments {
		for _, payment := range opts.PaymentMade {
			rows = append(rows, entity.SummaryRow{
				Description: payment.Description,
				Price:       -math.Abs(payment.Price),
				Bold:        payment.Bold,
			})
		}
	}

	return rows, total, deposit
}

// GenerateInvoice assembles a full invoice document from the options.
func (s *InvoiceService) GenerateInvoice(opts InvoiceOptions, flags GenerateFlags) (entity.Document, error) {
	if err := validateOptions(opts); err != nil {
		return entity.Document{}, err
	}

	summaryRows, total, deposit := s.BuildSummary(opts, flags.ShowDeposit, true)

	var additionalChargesTotal float64
	for _, charge := range opts.AdditionalCharges {
		additionalChargesTotal += charge.Price
	}
	totalWithCharges := total + additionalChargesTotal

	// Payments are summed with their raw signs here, unlike the displayed
	// rows which negate absolute values.
	var paymentTotal float64
	for _, payment := range opts.PaymentMade {
		paymentTotal += payment.Price
	}

	var amountDue float64
	switch {
	case flags.AmountDueOverride != nil:
		amountDue = *flags.AmountDueOverride
	case flags.DepositOnly:
		amountDue = deposit + additionalChargesTotal - paymentTotal
	default:
		amountDue = totalWithCharges - paymentTotal
	}

	return entity.Document{
		CustomerName:  opts.CustomerName,
		InvoiceNumber: opts.InvoiceNumber,
		Title:         fmt.Sprintf("%s - %s", opts.EventDate, opts.Venue),
		Type:          entity.TypeInvoice,
		Sections: []entity.Section{
			{Heading: "Items", Rows: entity.ItemRows(opts.LineItems)},
			{Heading: "Summary", Rows: summaryRows},
			{Heading: "Totals", Rows: []entity.SummaryRow{
				{Description: "Amount Due", Price: amountDue, Bold: true},
			}},
		},
	}, nil
}

// GenerateReceipt assembles a receipt for a fully settled invoice. The
// summary is computed identically to the invoice, but the balance is
// always zero: a receipt asserts the invoice is paid in full.
func (s *InvoiceService) GenerateReceipt(opts InvoiceOptions, showDeposit bool) (entity.Document, error) {
	if err := validateOptions(opts); err != nil {
		return entity.Document{}, err
	}

	summaryRows, _, _ := s.BuildSummary(opts, showDeposit, true)

	return entity.Document{
		CustomerName:        opts.CustomerName,
		InvoiceNumber:       opts.InvoiceNumber,
		Title:               fmt.Sprintf("%s - %s", opts.EventDate, opts.Venue),
		Type:                entity.TypeReceipt,
		LinkedInvoiceNumber: opts.InvoiceNumber,
		Sections: []entity.Section{
			{Heading: "Items", Rows: entity.ItemRows(opts.LineItems)},
			{Heading: "Summary", Rows: summaryRows},
			{Heading: "Totals", Rows: []entity.SummaryRow{
				{Description: "Balance Due", Price: 0.0, Bold: true},
			}},
		},
	}, nil
}

func validateOptions(opts InvoiceOptions) error {
	var fieldErrors []apperror.FieldError
	required := []struct {
		field string
		value string
	}{
		{"customer_name", opts.CustomerName},
		{"event_date", opts.EventDate},
		{"venue", opts.Venue},
		{"invoice_number", opts.InvoiceNumber},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   f.field,
				Message: f.field + " is required",
			})
		}
	}
	if len(opts.LineItems) == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "line_items",
			Message: "at least one line item is required",
		})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// round2 rounds to two decimal places. Applied only to derived values
// (discount and deposit amounts); raw input prices pass through unrounded.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// formatNumber renders a percentage without trailing zeros (10, 12.5).
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
