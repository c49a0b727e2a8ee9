// Package aggregate derives cross-entity views from a store snapshot.
// Every function is pure: it reads the slices it is given, allocates its
// result and touches nothing else, so recomputation is free of side effects
// and safe to repeat after any mutation.
package aggregate

import (
	"fmt"

	"travelplans/models/booking"
	"travelplans/models/customer"
	"travelplans/models/itinerary"
)

// StatusCounts is the per-itinerary booking tally shown on dashboards.
// Cancelled bookings are not tallied unless explicitly filtered for.
type StatusCounts struct {
	Pending   int `json:"Pending"`
	Confirmed int `json:"Confirmed"`
	Completed int `json:"Completed"`
	Cancelled int `json:"Cancelled,omitempty"`
}

// BookingCountsByItinerary maps itinerary id to booking counts per status.
// When statusFilter is given, only bookings in one of those statuses are
// counted. Every itinerary gets an entry, including ones with no bookings;
// callers that need stable output should iterate the itinerary slice, which
// preserves store insertion order.
func BookingCountsByItinerary(itins []itinerary.Itinerary, bookings []booking.Booking, statusFilter ...booking.Status) map[string]StatusCounts {
	wanted := func(s booking.Status) bool {
		if len(statusFilter) == 0 {
			return s != booking.StatusCancelled
		}
		for _, f := range statusFilter {
			if s == f {
				return true
			}
		}
		return false
	}

	counts := make(map[string]StatusCounts, len(itins))
	for _, it := range itins {
		counts[it.ID] = StatusCounts{}
	}
	for _, b := range bookings {
		c, ok := counts[b.ItineraryID]
		if !ok || !wanted(b.Status) {
			continue
		}
		switch b.Status {
		case booking.StatusPending:
			c.Pending++
		case booking.StatusConfirmed:
			c.Confirmed++
		case booking.StatusCompleted:
			c.Completed++
		case booking.StatusCancelled:
			c.Cancelled++
		}
		counts[b.ItineraryID] = c
	}
	return counts
}

// ItinerariesVisibleToAgent filters itineraries an agent may work with: the
// ones assigned to them plus every unassigned one. Unassigned itineraries
// are visible to all agents simultaneously, not exclusively.
func ItinerariesVisibleToAgent(agentID string, itins []itinerary.Itinerary) []itinerary.Itinerary {
	visible := make([]itinerary.Itinerary, 0, len(itins))
	for _, it := range itins {
		if it.AssignedAgentID == agentID || it.AssignedAgentID == "" {
			visible = append(visible, it)
		}
	}
	return visible
}

// CustomersForAgent filters customers registered by the given agent.
func CustomersForAgent(agentID string, customers []customer.Customer) []customer.Customer {
	out := make([]customer.Customer, 0, len(customers))
	for _, c := range customers {
		if c.RegisteredByAgentID == agentID {
			out = append(out, c)
		}
	}
	return out
}

// CustomersForRM filters customers assigned to the given relationship
// manager.
func CustomersForRM(rmID string, customers []customer.Customer) []customer.Customer {
	out := make([]customer.Customer, 0, len(customers))
	for _, c := range customers {
		if c.AssignedRmID == rmID {
			out = append(out, c)
		}
	}
	return out
}

// PendingCollateral is one unapproved asset flattened with its parent
// itinerary, as consumed by the compliance queue.
type PendingCollateral struct {
	itinerary.Collateral
	ItineraryID    string `json:"itineraryId"`
	ItineraryTitle string `json:"itineraryTitle"`
}

// PendingCollaterals flattens every unapproved collateral, preserving
// itinerary iteration order and then collateral order within an itinerary.
func PendingCollaterals(itins []itinerary.Itinerary) []PendingCollateral {
	pending := []PendingCollateral{}
	for _, it := range itins {
		for _, col := range it.Collaterals {
			if !col.Approved {
				pending = append(pending, PendingCollateral{
					Collateral:     col,
					ItineraryID:    it.ID,
					ItineraryTitle: it.Title,
				})
			}
		}
	}
	return pending
}

// Recommendation pairs an itinerary with a reason shown to the customer.
type Recommendation struct {
	Itinerary itinerary.Itinerary `json:"itinerary"`
	Reason    string              `json:"reason"`
}

// RecommendedItineraries suggests up to two itineraries the customer has
// not booked: the first unbooked one in store order and, when a second
// exists, the last one in store order for variety. The head/tail pick is
// deliberate and load-bearing for parity with the portal. An unknown
// customer yields an empty list.
func RecommendedItineraries(customerID string, itins []itinerary.Itinerary, bookings []booking.Booking, customers []customer.Customer) []Recommendation {
	known := false
	for _, c := range customers {
		if c.ID == customerID {
			known = true
			break
		}
	}
	if !known {
		return []Recommendation{}
	}

	booked := make(map[string]bool)
	for _, b := range bookings {
		if b.CustomerID == customerID {
			booked[b.ItineraryID] = true
		}
	}

	unbooked := make([]itinerary.Itinerary, 0, len(itins))
	for _, it := range itins {
		if !booked[it.ID] {
			unbooked = append(unbooked, it)
		}
	}

	recommendations := []Recommendation{}
	if len(unbooked) > 0 {
		first := unbooked[0]
		recommendations = append(recommendations, Recommendation{
			Itinerary: first,
			Reason:    fmt.Sprintf("Based on your interest in exciting destinations, you'll love this trip to %s.", first.Destination),
		})
	}
	if len(unbooked) > 1 {
		last := unbooked[len(unbooked)-1]
		recommendations = append(recommendations, Recommendation{
			Itinerary: last,
			Reason:    fmt.Sprintf("For a change of pace, consider this relaxing escape to %s.", last.Destination),
		})
	}
	return recommendations
}

// BookingsForCustomerRecord filters bookings belonging to one customer.
func BookingsForCustomerRecord(customerID string, bookings []booking.Booking) []booking.Booking {
	out := make([]booking.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.CustomerID == customerID {
			out = append(out, b)
		}
	}
	return out
}

// DocumentEntry is one customer document flattened with its owner, as
// consumed by the documents roster.
type DocumentEntry struct {
	customer.Document
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
}

// DocumentsRoster flattens every customer document in customer-then-upload
// order.
func DocumentsRoster(customers []customer.Customer) []DocumentEntry {
	roster := []DocumentEntry{}
	for _, c := range customers {
		for _, doc := range c.Documents {
			roster = append(roster, DocumentEntry{
				Document:     doc,
				CustomerID:   c.ID,
				CustomerName: c.FullName(),
			})
		}
	}
	return roster
}
