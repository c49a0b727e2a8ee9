package store

import (
	"errors"
	"sync"
	"time"

	"travelplans/models/booking"
	"travelplans/models/customer"
	"travelplans/models/itinerary"
	"travelplans/models/user"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a mutation references an unknown id.
	// Lookups never silently no-op; callers decide how to surface this.
	ErrNotFound = errors.New("record not found")

	// ErrNoRoles is returned when a user would end up with an empty role set.
	ErrNoRoles = errors.New("user must hold at least one role")

	// ErrValidation wraps field-level validation failures.
	ErrValidation = errors.New("validation failed")
)

// Snapshot is an immutable view of the four collections at a point in time.
// Mutations never touch a published snapshot; they build fresh slices and
// swap the pointer, so holders of an older snapshot keep reading stable data.
type Snapshot struct {
	Users       []user.User
	Itineraries []itinerary.Itinerary
	Customers   []customer.Customer
	Bookings    []booking.Booking
}

// Store holds the back-office dataset in memory. It is an explicit
// dependency: every consumer receives a *Store, there is no package-level
// instance. All writes serialize behind one mutex (single logical writer),
// so read-after-write in one goroutine always observes the latest snapshot.
type Store struct {
	mu   sync.Mutex
	snap *Snapshot
	now  func() time.Time
}

// New returns an empty store using the wall clock.
func New() *Store {
	return NewWithClock(time.Now)
}

// NewWithClock returns an empty store with an injectable clock. The clock
// drives the forced registrationDate and bookingDate fields.
func NewWithClock(now func() time.Time) *Store {
	return &Store{
		snap: &Snapshot{},
		now:  now,
	}
}

// Read returns the latest snapshot. The returned value must be treated as
// read-only; all four collections preserve insertion order.
func (s *Store) Read() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.snap
}

// publish swaps in a new snapshot. Callers must hold s.mu.
func (s *Store) publish(snap Snapshot) {
	s.snap = &snap
}

// newID mints an opaque identifier. IDs are unique and never reused.
func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

func (s *Store) today() string {
	return s.now().Format("2006-01-02")
}
