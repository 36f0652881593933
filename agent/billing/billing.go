package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	// ToolInitiateRefund is the declared name of the refund tool.
	ToolInitiateRefund = "initiateRefund"

	// PlaceholderReason replaces a missing refund justification.
	PlaceholderReason = "Not specified"

	refundFormURL = "https://support.example.com/refund-form"
)

// PolicyContext returns the policy knowledge injected into the billing
// agent's system prompt so the agent follows company rules.
func PolicyContext() string {
	return "REFUND POLICY: Full refunds allowed within 14 days of purchase. Processing takes 3-5 business days.\n" +
		"PRICING PLANS:\n" +
		"- Basic Plan: 0 PLN/mo (Limited features)\n" +
		"- Pro Plan: 49 PLN/mo (All features included)\n" +
		"- Enterprise: Custom pricing for large teams.\n" +
		"REFUND PROCEDURE: If a refund is requested, inform the user a ticket is being opened and provide a support link."
}

// PricingInfo returns the current plan pricing.
func PricingInfo() string {
	return "Available plans: Basic (0 PLN), Pro (49 PLN/month), Enterprise (custom). All plans include 24/7 basic support."
}

// RefundPolicy returns the refund terms.
func RefundPolicy() string {
	return "Refund Policy: You can request a full refund within 14 days of purchase. " +
		"Processing time is 3-5 business days depending on your bank."
}

// RefundDesk opens refund tickets. This implementation is in-process; the
// executor interface leaves room for a networked ticketing backend.
type RefundDesk struct {
	newTicketID func() string
}

func NewRefundDesk() *RefundDesk {
	return &RefundDesk{
		newTicketID: func() string {
			return "REF-" + strings.ToUpper(uuid.NewString()[:8])
		},
	}
}

func (d *RefundDesk) Name() string {
	return ToolInitiateRefund
}

// Invoke opens a refund ticket and returns the human-readable confirmation
// including ticket id, reason, and the finalization link.
func (d *RefundDesk) Invoke(_ context.Context, reason string) (string, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = PlaceholderReason
	}

	ticketID := d.newTicketID()
	log.Info().Str("ticket_id", ticketID).Str("reason", reason).Msg("refund ticket opened")

	return fmt.Sprintf(
		"I have initiated a refund request (Ticket ID: %s). Reason provided: %s. Please finalize the process here: %s",
		ticketID, reason, refundFormURL,
	), nil
}
