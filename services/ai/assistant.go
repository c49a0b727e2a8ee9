// Package ai is the boundary to the assistant features. Consumers depend on
// the Assistant interface only, so the canned stand-in can be swapped for a
// real inference backend without touching the aggregation or controller
// code.
package ai

import (
	"context"
	"os"

	"travelplans/models/booking"
	"travelplans/models/customer"
	"travelplans/models/itinerary"
)

// CollateralFeedback is the structured outcome of a compliance review.
type CollateralFeedback struct {
	IssuesFound bool   `json:"issuesFound"`
	Feedback    string `json:"feedback"`
}

// DocumentVerdict is the outcome of an AI document verification.
type DocumentVerdict struct {
	Status   customer.DocumentStatus `json:"status"`
	Feedback string                  `json:"feedback"`
}

// Assistant generates customer summaries, reviews marketing collaterals and
// verifies customer documents.
type Assistant interface {
	CustomerSummary(ctx context.Context, cust customer.Customer, bookings []booking.Booking) (string, error)
	ReviewCollateral(ctx context.Context, col itinerary.Collateral) (CollateralFeedback, error)
	VerifyDocument(ctx context.Context, doc customer.Document) (DocumentVerdict, error)
}

// FromEnv selects the assistant backend: AI_BACKEND=gemini with a
// GEMINI_API_KEY enables real inference, anything else gets the canned
// stand-in.
func FromEnv() Assistant {
	if os.Getenv("AI_BACKEND") == "gemini" && os.Getenv("GEMINI_API_KEY") != "" {
		return NewGeminiAssistant()
	}
	return NewMockAssistant()
}
