package store

import (
	"travelplans/models/booking"
	"travelplans/models/customer"
	"travelplans/models/itinerary"
	"travelplans/models/user"
)

// Seed returns a store preloaded with the demo dataset so the service is
// usable straight after boot. IDs are fixed so that seeded foreign keys and
// demo logins line up.
func Seed() *Store {
	s := New()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.publish(Snapshot{
		Users:       seedUsers(),
		Itineraries: seedItineraries(),
		Customers:   seedCustomers(),
		Bookings:    seedBookings(),
	})
	return s
}

func seedUsers() []user.User {
	return []user.User{
		{
			ID:     "user-admin-1",
			Name:   "Suresh Kumar",
			Email:  "suresh@travelplans.fun",
			Roles:  []user.Role{user.RoleAdmin},
			Status: user.StatusActive,
		},
		{
			ID:     "user-agent-1",
			Name:   "Arjun",
			Email:  "arjun@travelplans.fun",
			Roles:  []user.Role{user.RoleAgent, user.RoleRelationshipManager},
			Status: user.StatusActive,
		},
		{
			ID:     "user-customer-1",
			Name:   "Sabu",
			Email:  "mail@jsabu.com",
			Roles:  []user.Role{user.RoleCustomer, user.RoleAdmin},
			Status: user.StatusActive,
		},
		{
			ID:     "user-rm-1",
			Name:   "Rohith",
			Email:  "Rohith@travelplans.fun",
			Roles:  []user.Role{user.RoleRelationshipManager},
			Status: user.StatusActive,
		},
		{
			ID:     "user-agent-2",
			Name:   "Sameer",
			Email:  "sameer@agent.com",
			Roles:  []user.Role{user.RoleAgent},
			Status: user.StatusActive,
		},
	}
}

func seedItineraries() []itinerary.Itinerary {
	return []itinerary.Itinerary{
		{
			ID:              "iti-1",
			Title:           "Dubai Desert Dreams",
			Destination:     "Dubai, UAE",
			Duration:        5,
			Price:           3500,
			Description:     "Experience the magic of the Arabian desert with thrilling dune bashing, traditional Bedouin camps, and starlit dinners.",
			AssignedAgentID: "user-agent-1",
			ImageURL:        "https://images.unsplash.com/photo-1518684079-3c830dcef090?q=80&w=1974&auto=format&fit=crop",
			Collaterals: []itinerary.Collateral{
				{ID: "col-1-1", Name: "Desert Safari Brochure", Type: itinerary.CollateralPDF, URL: "#", Approved: true},
				{ID: "col-1-3", Name: "Promotional Video", Type: itinerary.CollateralVideo, URL: "#", Approved: false},
			},
		},
		{
			ID:              "iti-2",
			Title:           "Blissful Bali Retreat",
			Destination:     "Bali, Indonesia",
			Duration:        8,
			Price:           4800,
			Description:     "Immerse yourself in the spiritual heart of Bali. Explore lush rice paddies, ancient temples, and vibrant local markets.",
			AssignedAgentID: "user-agent-1",
			ImageURL:        "https://images.unsplash.com/photo-1573790387438-4da905039392?q=80&w=1925&auto=format&fit=crop",
			Collaterals: []itinerary.Collateral{
				{ID: "col-2-1", Name: "Full Itinerary", Type: itinerary.CollateralPDF, URL: "#", Approved: true},
			},
		},
		{
			ID:          "iti-3",
			Title:       "Andaman Island Hopping",
			Destination: "Andaman & Nicobar, India",
			Duration:    7,
			Price:       3200,
			Description: "Discover the pristine beaches and turquoise waters of the Andaman Islands. A perfect escape for snorkeling, diving, and pure relaxation in a tropical paradise.",
			ImageURL:    "https://images.unsplash.com/photo-1594922439115-27a3a3d34e6c?q=80&w=1974&auto=format&fit=crop",
			Collaterals: []itinerary.Collateral{},
		},
		{
			ID:              "iti-4",
			Title:           "Kerala Backwater Escape",
			Destination:     "Kerala, India",
			Duration:        6,
			Price:           2800,
			Description:     "Cruise through the serene backwaters of Kerala on a traditional houseboat. Enjoy local cuisine and breathtaking views of \"God's Own Country\".",
			AssignedAgentID: "user-agent-2",
			ImageURL:        "https://images.unsplash.com/photo-1605276374104-dee2a0ed3cd6?q=80&w=2070&auto=format&fit=crop",
			Collaterals: []itinerary.Collateral{
				{ID: "col-4-2", Name: "Cultural Events Schedule", Type: itinerary.CollateralPDF, URL: "#", Approved: false},
			},
		},
		{
			ID:              "iti-5",
			Title:           "Swiss Alps Adventure",
			Destination:     "Interlaken, Switzerland",
			Duration:        7,
			Price:           7500,
			Description:     "Embark on a breathtaking journey through the Swiss Alps. Experience thrilling mountain excursions, scenic train rides, and charming alpine villages.",
			AssignedAgentID: "user-agent-2",
			ImageURL:        "https://images.unsplash.com/photo-1539635278303-d4002c07eae3?q=80&w=2070&auto=format&fit=crop",
			Collaterals: []itinerary.Collateral{
				{ID: "col-5-1", Name: "Jungfrau Region Guide", Type: itinerary.CollateralPDF, URL: "#", Approved: true},
			},
		},
		{
			ID:              "iti-6",
			Title:           "Japanese Cultural Journey",
			Destination:     "Tokyo & Kyoto, Japan",
			Duration:        10,
			Price:           9200,
			Description:     "Explore the best of Japan, from the bustling metropolis of Tokyo to the serene temples of Kyoto. A perfect blend of ancient tradition and futuristic innovation.",
			AssignedAgentID: "user-agent-1",
			ImageURL:        "https://images.unsplash.com/photo-1524413840807-0c3cb6fa808d?q=80&w=2070&auto=format&fit=crop",
			Collaterals: []itinerary.Collateral{
				{ID: "col-6-1", Name: "Tokyo City Guide", Type: itinerary.CollateralPDF, URL: "#", Approved: false},
				{ID: "col-6-2", Name: "Kyoto Temple Guide", Type: itinerary.CollateralPDF, URL: "#", Approved: true},
			},
		},
		{
			ID:          "iti-7",
			Title:       "Egyptian Pharaohs Tour",
			Destination: "Cairo & Luxor, Egypt",
			Duration:    8,
			Price:       5600,
			Description: "Step back in time to the land of the Pharaohs. Witness the majestic Pyramids of Giza, explore the Valley of the Kings, and cruise the legendary Nile River.",
			ImageURL:    "https://images.unsplash.com/photo-1572252123247-990e3ade9a23?q=80&w=1974&auto=format&fit=crop",
			Collaterals: []itinerary.Collateral{},
		},
	}
}

func seedCustomers() []customer.Customer {
	return []customer.Customer{
		{
			ID:                  "cust-1",
			FirstName:           "Sabu",
			LastName:            "J",
			Email:               "mail@jsabu.com",
			DOB:                 "1990-05-15",
			RegistrationDate:    "2025-08-05",
			RegisteredByAgentID: "user-agent-1",
			AssignedRmID:        "user-rm-1",
			BookingStatus:       customer.BookingConfirmed,
			Documents: []customer.Document{
				{ID: "doc-1", Name: "Passport_Copy.pdf", Type: "PDF", URL: "#", UploadDate: "2025-08-10"},
				{ID: "doc-2", Name: "Visa_Scan.jpg", Type: "JPG", URL: "#", UploadDate: "2025-08-11"},
			},
		},
		{
			ID:                  "cust-2",
			FirstName:           "diya",
			Email:               "diya@diya.com",
			DOB:                 "1985-11-20",
			RegistrationDate:    "2025-08-15",
			RegisteredByAgentID: "user-agent-1",
			AssignedRmID:        "user-rm-1",
			BookingStatus:       customer.BookingPending,
			Documents:           []customer.Document{},
		},
		{
			ID:                  "cust-3",
			FirstName:           "anand",
			Email:               "anand@anand.com",
			DOB:                 "1992-02-10",
			RegistrationDate:    "2025-08-02",
			RegisteredByAgentID: "user-agent-2",
			BookingStatus:       customer.BookingConfirmed,
			Documents: []customer.Document{
				{ID: "doc-3", Name: "Travel_Insurance.pdf", Type: "PDF", URL: "#", UploadDate: "2025-08-03"},
			},
		},
	}
}

func seedBookings() []booking.Booking {
	return []booking.Booking{
		{ID: "book-1", CustomerID: "cust-1", ItineraryID: "iti-1", BookingDate: "2025-08-15T09:00:00Z", Status: booking.StatusConfirmed, PaymentStatus: booking.PaymentPaid},
		{ID: "book-2", CustomerID: "cust-1", ItineraryID: "iti-3", BookingDate: "2025-08-20T14:30:00Z", Status: booking.StatusCompleted, PaymentStatus: booking.PaymentPaid},
		{ID: "book-3", CustomerID: "cust-2", ItineraryID: "iti-2", BookingDate: "2025-08-28T11:00:00Z", Status: booking.StatusPending, PaymentStatus: booking.PaymentUnpaid},
		{ID: "book-4", CustomerID: "cust-3", ItineraryID: "iti-4", BookingDate: "2025-09-01T18:00:00Z", Status: booking.StatusConfirmed, PaymentStatus: booking.PaymentUnpaid},
	}
}
