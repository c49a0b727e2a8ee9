package store

import (
	"context"
	"testing"

	"travelplans/models/itinerary"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateItineraryDefaults(t *testing.T) {
	s := New()

	created, err := s.CreateItinerary(context.Background(), NewItinerary{
		Title:       "Goa Beach Week",
		Destination: "Goa, India",
		Duration:    7,
		Price:       2100,
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultItineraryImage, created.ImageURL)
	assert.NotNil(t, created.Collaterals)
	assert.Empty(t, created.Collaterals)
}

func TestCreateItineraryValidation(t *testing.T) {
	s := New()

	_, err := s.CreateItinerary(context.Background(), NewItinerary{Duration: 5})
	require.ErrorIs(t, err, ErrValidation)

	_, err = s.CreateItinerary(context.Background(), NewItinerary{Title: "Goa", Duration: 0})
	require.ErrorIs(t, err, ErrValidation)

	_, err = s.CreateItinerary(context.Background(), NewItinerary{Title: "Goa", Duration: 5, Price: -1})
	require.ErrorIs(t, err, ErrValidation)
}

func TestAddCollateralApproval(t *testing.T) {
	s := Seed()

	queued, err := s.AddCollateral(context.Background(), "iti-1", NewCollateral{
		Name: "Dune Bashing Flyer",
		Type: itinerary.CollateralPDF,
	}, false)
	require.NoError(t, err)
	assert.False(t, queued.Approved)
	assert.Equal(t, "#", queued.URL)

	autoApproved, err := s.AddCollateral(context.Background(), "iti-1", NewCollateral{
		Name: "Official Price Sheet",
		Type: itinerary.CollateralPDF,
	}, true)
	require.NoError(t, err)
	assert.True(t, autoApproved.Approved)

	it, found := s.FindItineraryByID("iti-1")
	require.True(t, found)
	assert.Len(t, it.Collaterals, 4)
}

func TestAddCollateralUnknownItinerary(t *testing.T) {
	s := Seed()
	_, err := s.AddCollateral(context.Background(), "iti-missing", NewCollateral{
		Name: "Flyer",
		Type: itinerary.CollateralPDF,
	}, false)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateCollateralPatch(t *testing.T) {
	s := Seed()

	approved := true
	name := "Promotional Video (revised)"
	err := s.UpdateCollateral(context.Background(), "iti-1", "col-1-3", CollateralPatch{
		Name:     &name,
		Approved: &approved,
	})
	require.NoError(t, err)

	it, _ := s.FindItineraryByID("iti-1")
	var col itinerary.Collateral
	for _, c := range it.Collaterals {
		if c.ID == "col-1-3" {
			col = c
		}
	}
	assert.Equal(t, name, col.Name)
	assert.True(t, col.Approved)
	// Untouched fields survive the patch.
	assert.Equal(t, itinerary.CollateralVideo, col.Type)
	assert.Equal(t, "#", col.URL)
}

func TestUpdateCollateralNotFound(t *testing.T) {
	s := Seed()
	approved := true

	err := s.UpdateCollateral(context.Background(), "iti-missing", "col-1-3", CollateralPatch{Approved: &approved})
	require.ErrorIs(t, err, ErrNotFound)

	err = s.UpdateCollateral(context.Background(), "iti-1", "col-missing", CollateralPatch{Approved: &approved})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCollateral(t *testing.T) {
	s := Seed()

	require.NoError(t, s.DeleteCollateral(context.Background(), "iti-1", "col-1-3"))
	it, _ := s.FindItineraryByID("iti-1")
	assert.Len(t, it.Collaterals, 1)
	assert.Equal(t, "col-1-1", it.Collaterals[0].ID)

	require.ErrorIs(t, s.DeleteCollateral(context.Background(), "iti-1", "col-1-3"), ErrNotFound)
}

func TestDeleteItinerary(t *testing.T) {
	s := Seed()
	before := len(s.Read().Itineraries)

	require.NoError(t, s.DeleteItinerary(context.Background(), "iti-7"))
	assert.Len(t, s.Read().Itineraries, before-1)
	require.ErrorIs(t, s.DeleteItinerary(context.Background(), "iti-7"), ErrNotFound)
}

func TestCreateThenUpdateItineraryRoundTrip(t *testing.T) {
	s := New()

	created, err := s.CreateItinerary(context.Background(), NewItinerary{
		Title:       "Goa Beach Week",
		Destination: "Goa, India",
		Duration:    7,
		Price:       2100,
		Description: "Seven days of sun and sand.",
		ImageURL:    "https://example.com/goa.jpg",
	})
	require.NoError(t, err)

	replacement := itinerary.Itinerary{
		ID:          created.ID,
		Title:       "Goa Beach Fortnight",
		Destination: "Goa, India",
		Duration:    14,
		Price:       3900,
		Description: "Two weeks of sun and sand.",
		ImageURL:    "https://example.com/goa2.jpg",
		Collaterals: []itinerary.Collateral{},
	}
	require.NoError(t, s.UpdateItinerary(context.Background(), replacement))

	stored, found := s.FindItineraryByID(created.ID)
	require.True(t, found)
	assert.Equal(t, replacement, stored)
}

func TestUpdateItineraryRoundTrip(t *testing.T) {
	s := Seed()

	it, found := s.FindItineraryByID("iti-3")
	require.True(t, found)
	it.AssignedAgentID = "user-agent-2"
	it.Price = 3400

	require.NoError(t, s.UpdateItinerary(context.Background(), it))
	stored, _ := s.FindItineraryByID("iti-3")
	assert.Equal(t, "user-agent-2", stored.AssignedAgentID)
	assert.Equal(t, 3400.0, stored.Price)
}
