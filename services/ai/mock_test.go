package ai

import (
	"context"
	"testing"

	"travelplans/models/booking"
	"travelplans/models/customer"
	"travelplans/models/itinerary"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func instantAssistant() *MockAssistant {
	return &MockAssistant{Delay: 0}
}

func TestVerifyDocumentHeuristics(t *testing.T) {
	m := instantAssistant()
	ctx := context.Background()

	tests := []struct {
		name   string
		status customer.DocumentStatus
	}{
		{"Passport_Copy_2024.pdf", customer.DocumentVerified},
		{"Visa_Scan.jpg", customer.DocumentRejected},
		{"id_copy.png", customer.DocumentRejected},
		{"Travel_Insurance.pdf", customer.DocumentError},
	}
	for _, tc := range tests {
		verdict, err := m.VerifyDocument(ctx, customer.Document{Name: tc.name})
		require.NoError(t, err)
		assert.Equal(t, tc.status, verdict.Status, tc.name)
		assert.NotEmpty(t, verdict.Feedback)
	}
}

// "passport" wins over "copy" when both appear in the name.
func TestVerifyDocumentPassportTakesPrecedence(t *testing.T) {
	m := instantAssistant()

	verdict, err := m.VerifyDocument(context.Background(), customer.Document{Name: "Passport_Copy.pdf"})
	require.NoError(t, err)
	assert.Equal(t, customer.DocumentVerified, verdict.Status)
}

func TestReviewCollateralFlagsPromotionalNames(t *testing.T) {
	m := instantAssistant()
	ctx := context.Background()

	flagged, err := m.ReviewCollateral(ctx, itinerary.Collateral{Name: "Promotional Video"})
	require.NoError(t, err)
	assert.True(t, flagged.IssuesFound)

	clean, err := m.ReviewCollateral(ctx, itinerary.Collateral{Name: "Desert Safari Brochure"})
	require.NoError(t, err)
	assert.False(t, clean.IssuesFound)
	assert.NotEmpty(t, clean.Feedback)
}

func TestCustomerSummaryCountsBookings(t *testing.T) {
	m := instantAssistant()

	cust := customer.Customer{
		FirstName: "Sabu",
		LastName:  "J",
		Documents: []customer.Document{{ID: "doc-1"}},
	}
	bookings := []booking.Booking{
		{ID: "b1", Status: booking.StatusCompleted},
		{ID: "b2", Status: booking.StatusConfirmed},
		{ID: "b3", Status: booking.StatusPending},
	}

	summary, err := m.CustomerSummary(context.Background(), cust, bookings)
	require.NoError(t, err)
	assert.Contains(t, summary, "Sabu J")
	assert.Contains(t, summary, "completed 1 trip(s)")
	assert.Contains(t, summary, "2 active booking(s)")
	assert.Contains(t, summary, "1 document(s) on file")
}

func TestCustomerSummaryWithoutDocuments(t *testing.T) {
	m := instantAssistant()

	summary, err := m.CustomerSummary(context.Background(), customer.Customer{FirstName: "diya"}, nil)
	require.NoError(t, err)
	assert.Contains(t, summary, "No documents uploaded yet")
}

func TestSleepHonorsContextCancellation(t *testing.T) {
	m := &MockAssistant{Delay: 1}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.VerifyDocument(ctx, customer.Document{Name: "Passport.pdf"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestFromEnvDefaultsToMock(t *testing.T) {
	t.Setenv("AI_BACKEND", "")
	t.Setenv("GEMINI_API_KEY", "")
	_, ok := FromEnv().(*MockAssistant)
	assert.True(t, ok)
}
