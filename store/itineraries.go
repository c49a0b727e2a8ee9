package store

import (
	"context"
	"fmt"

	"travelplans/models/itinerary"
)

// DefaultItineraryImage is used when a new itinerary carries no image URL.
const DefaultItineraryImage = "https://images.unsplash.com/photo-1501785888041-af3ef285b470?q=80&w=2070"

// NewItinerary is the creation input for an itinerary.
type NewItinerary struct {
	Title           string
	Destination     string
	Duration        int
	Price           float64
	Description     string
	ImageURL        string
	AssignedAgentID string
}

// NewCollateral is the creation input for a collateral asset.
type NewCollateral struct {
	Name string
	Type itinerary.CollateralType
	URL  string
}

// CollateralPatch enumerates the collateral fields a caller may change.
// Nil pointers leave the stored value untouched.
type CollateralPatch struct {
	Name       *string
	Type       *itinerary.CollateralType
	URL        *string
	Approved   *bool
	AiFeedback *itinerary.AiReviewResult
}

// CreateItinerary assigns a fresh id and stores the itinerary with an empty
// collateral list. A missing image URL falls back to the placeholder.
func (s *Store) CreateItinerary(ctx context.Context, input NewItinerary) (itinerary.Itinerary, error) {
	if input.Title == "" {
		return itinerary.Itinerary{}, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if input.Duration <= 0 {
		return itinerary.Itinerary{}, fmt.Errorf("%w: duration must be a positive number of days", ErrValidation)
	}
	if input.Price < 0 {
		return itinerary.Itinerary{}, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	imageURL := input.ImageURL
	if imageURL == "" {
		imageURL = DefaultItineraryImage
	}

	newItinerary := itinerary.Itinerary{
		ID:              newID("iti"),
		Title:           input.Title,
		Destination:     input.Destination,
		Duration:        input.Duration,
		Price:           input.Price,
		Description:     input.Description,
		ImageURL:        imageURL,
		AssignedAgentID: input.AssignedAgentID,
		Collaterals:     []itinerary.Collateral{},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	snap := *s.snap
	snap.Itineraries = append(append([]itinerary.Itinerary(nil), snap.Itineraries...), newItinerary)
	s.publish(snap)
	return newItinerary, nil
}

// UpdateItinerary replaces the stored record with the same id.
func (s *Store) UpdateItinerary(ctx context.Context, updated itinerary.Itinerary) error {
	if updated.Duration <= 0 {
		return fmt.Errorf("%w: duration must be a positive number of days", ErrValidation)
	}
	if updated.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	itins, found := replaceItinerary(s.snap.Itineraries, updated)
	if !found {
		return ErrNotFound
	}
	snap := *s.snap
	snap.Itineraries = itins
	s.publish(snap)
	return nil
}

// DeleteItinerary removes the itinerary and its collaterals.
func (s *Store) DeleteItinerary(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	itins := make([]itinerary.Itinerary, 0, len(s.snap.Itineraries))
	found := false
	for _, it := range s.snap.Itineraries {
		if it.ID == id {
			found = true
			continue
		}
		itins = append(itins, it)
	}
	if !found {
		return ErrNotFound
	}
	snap := *s.snap
	snap.Itineraries = itins
	s.publish(snap)
	return nil
}

// AddCollateral appends a collateral to the itinerary. Assets created by an
// admin are auto-approved; everyone else enters the compliance queue.
func (s *Store) AddCollateral(ctx context.Context, itineraryID string, input NewCollateral, creatorIsAdmin bool) (itinerary.Collateral, error) {
	if input.Name == "" {
		return itinerary.Collateral{}, fmt.Errorf("%w: collateral name is required", ErrValidation)
	}
	if !input.Type.IsValid() {
		return itinerary.Collateral{}, fmt.Errorf("%w: unknown collateral type %q", ErrValidation, input.Type)
	}

	url := input.URL
	if url == "" {
		url = "#"
	}
	newCollateral := itinerary.Collateral{
		ID:       newID("col"),
		Name:     input.Name,
		Type:     input.Type,
		URL:      url,
		Approved: creatorIsAdmin,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range s.snap.Itineraries {
		if it.ID != itineraryID {
			continue
		}
		it.Collaterals = append(append([]itinerary.Collateral(nil), it.Collaterals...), newCollateral)
		itins, _ := replaceItinerary(s.snap.Itineraries, it)
		snap := *s.snap
		snap.Itineraries = itins
		s.publish(snap)
		return newCollateral, nil
	}
	return itinerary.Collateral{}, ErrNotFound
}

// UpdateCollateral merges the patch into the matching collateral. Unknown
// itinerary or collateral ids are an error, not a silent no-op.
func (s *Store) UpdateCollateral(ctx context.Context, itineraryID, collateralID string, patch CollateralPatch) error {
	if patch.Type != nil && !patch.Type.IsValid() {
		return fmt.Errorf("%w: unknown collateral type %q", ErrValidation, *patch.Type)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range s.snap.Itineraries {
		if it.ID != itineraryID {
			continue
		}
		collaterals := make([]itinerary.Collateral, len(it.Collaterals))
		found := false
		for i, col := range it.Collaterals {
			if col.ID == collateralID {
				applyCollateralPatch(&col, patch)
				found = true
			}
			collaterals[i] = col
		}
		if !found {
			return ErrNotFound
		}
		it.Collaterals = collaterals
		itins, _ := replaceItinerary(s.snap.Itineraries, it)
		snap := *s.snap
		snap.Itineraries = itins
		s.publish(snap)
		return nil
	}
	return ErrNotFound
}

// DeleteCollateral removes the collateral from the itinerary. This is also
// the compliance rejection path: rejected assets do not persist.
func (s *Store) DeleteCollateral(ctx context.Context, itineraryID, collateralID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range s.snap.Itineraries {
		if it.ID != itineraryID {
			continue
		}
		collaterals := make([]itinerary.Collateral, 0, len(it.Collaterals))
		found := false
		for _, col := range it.Collaterals {
			if col.ID == collateralID {
				found = true
				continue
			}
			collaterals = append(collaterals, col)
		}
		if !found {
			return ErrNotFound
		}
		it.Collaterals = collaterals
		itins, _ := replaceItinerary(s.snap.Itineraries, it)
		snap := *s.snap
		snap.Itineraries = itins
		s.publish(snap)
		return nil
	}
	return ErrNotFound
}

// FindItineraryByID scans the itinerary table by id.
func (s *Store) FindItineraryByID(id string) (itinerary.Itinerary, bool) {
	snap := s.Read()
	for _, it := range snap.Itineraries {
		if it.ID == id {
			return it, true
		}
	}
	return itinerary.Itinerary{}, false
}

func applyCollateralPatch(col *itinerary.Collateral, patch CollateralPatch) {
	if patch.Name != nil {
		col.Name = *patch.Name
	}
	if patch.Type != nil {
		col.Type = *patch.Type
	}
	if patch.URL != nil {
		col.URL = *patch.URL
	}
	if patch.Approved != nil {
		col.Approved = *patch.Approved
	}
	if patch.AiFeedback != nil {
		feedback := *patch.AiFeedback
		col.AiFeedback = &feedback
	}
}

func replaceItinerary(itins []itinerary.Itinerary, updated itinerary.Itinerary) ([]itinerary.Itinerary, bool) {
	out := make([]itinerary.Itinerary, len(itins))
	found := false
	for i, it := range itins {
		if it.ID == updated.ID {
			out[i] = updated
			found = true
		} else {
			out[i] = it
		}
	}
	return out, found
}
