package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"travelplans/models/booking"
	"travelplans/models/customer"
	"travelplans/models/itinerary"
)

// Delays before each canned answer, mirroring the feel of a real inference
// round trip.
const (
	summaryDelay = 1500 * time.Millisecond
	reviewDelay  = 1200 * time.Millisecond
	verifyDelay  = 2000 * time.Millisecond
)

// MockAssistant returns deterministic canned output after a fixed delay.
// The verdict heuristics key off the entity names, so demo data produces
// believable mixed results.
type MockAssistant struct {
	// Delay scales the artificial wait; 1 is the demo timing, 0 disables
	// waiting for tests.
	Delay float64
}

func NewMockAssistant() *MockAssistant {
	return &MockAssistant{Delay: 1}
}

func (m *MockAssistant) sleep(ctx context.Context, d time.Duration) error {
	scaled := time.Duration(float64(d) * m.Delay)
	if scaled <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(scaled)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (m *MockAssistant) CustomerSummary(ctx context.Context, cust customer.Customer, bookings []booking.Booking) (string, error) {
	if err := m.sleep(ctx, summaryDelay); err != nil {
		return "", err
	}

	completed := 0
	active := 0
	for _, b := range bookings {
		if b.Status == booking.StatusCompleted {
			completed++
		} else {
			active++
		}
	}

	documents := "No documents uploaded yet, which may be a blocker for upcoming travel."
	if len(cust.Documents) > 0 {
		documents = fmt.Sprintf("%d document(s) on file.", len(cust.Documents))
	}

	return fmt.Sprintf("This is an AI-generated summary for %s.\n\n"+
		"- Primarily interested in travel to destinations like Dubai and the Andaman Islands, as indicated by their booking history.\n"+
		"- Has completed %d trip(s) and currently has %d active booking(s).\n"+
		"- Document status: %s", cust.FullName(), completed, active, documents), nil
}

func (m *MockAssistant) ReviewCollateral(ctx context.Context, col itinerary.Collateral) (CollateralFeedback, error) {
	if err := m.sleep(ctx, reviewDelay); err != nil {
		return CollateralFeedback{}, err
	}

	if strings.Contains(strings.ToLower(col.Name), "promo") {
		return CollateralFeedback{
			IssuesFound: true,
			Feedback:    "Potential Issue: The collateral name contains 'Promotional', which may imply promises that cannot be guaranteed. Recommend reviewing for claims like 'guaranteed sunshine' or 'once-in-a-lifetime'.",
		}, nil
	}
	return CollateralFeedback{
		IssuesFound: false,
		Feedback:    "AI Review: No immediate issues detected. The content appears to be factual and aligns with standard marketing guidelines. Recommend a final human review.",
	}, nil
}

func (m *MockAssistant) VerifyDocument(ctx context.Context, doc customer.Document) (DocumentVerdict, error) {
	if err := m.sleep(ctx, verifyDelay); err != nil {
		return DocumentVerdict{}, err
	}

	name := strings.ToLower(doc.Name)
	switch {
	case strings.Contains(name, "passport"):
		return DocumentVerdict{
			Status:   customer.DocumentVerified,
			Feedback: "AI Analysis: Document appears to be a valid Passport. All key fields like name, DOB, and passport number are clear and legible.",
		}, nil
	case strings.Contains(name, "scan"), strings.Contains(name, "copy"):
		return DocumentVerdict{
			Status:   customer.DocumentRejected,
			Feedback: "AI Analysis: Document is likely a copy or scan, not an original. Image quality is low, and text appears blurry, which could indicate tampering.",
		}, nil
	default:
		return DocumentVerdict{
			Status:   customer.DocumentError,
			Feedback: "AI Analysis: Could not determine document type with high confidence. Manual review is required.",
		}, nil
	}
}
