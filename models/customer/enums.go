package customer

// BookingStatus is the customer-level pipeline state shown on roster views.
type BookingStatus string

const (
	BookingPending   BookingStatus = "Pending"
	BookingConfirmed BookingStatus = "Confirmed"
)

func (bs BookingStatus) String() string {
	return string(bs)
}

func (bs BookingStatus) IsValid() bool {
	switch bs {
	case BookingPending, BookingConfirmed:
		return true
	default:
		return false
	}
}

// DocumentStatus is the verification state of an uploaded document.
type DocumentStatus string

const (
	DocumentPending  DocumentStatus = "Pending"
	DocumentVerified DocumentStatus = "Verified"
	DocumentRejected DocumentStatus = "Rejected"
	DocumentError    DocumentStatus = "Error"
)

func (ds DocumentStatus) String() string {
	return string(ds)
}

func (ds DocumentStatus) IsValid() bool {
	switch ds {
	case DocumentPending, DocumentVerified, DocumentRejected, DocumentError:
		return true
	default:
		return false
	}
}
