package models

// Payment intent statuses the reconciler cares about.
const (
	PaymentIntentSucceeded = "succeeded"
)

// PaymentIntent mirrors the processor-side record. It is authoritative:
// status, amount and metadata are never taken from the client.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Status       string
	Amount       int64 // minor currency units
	Currency     string
	Metadata     map[string]string
}

// PaymentIntentParams describes a new intent.
type PaymentIntentParams struct {
	Amount   int64
	Currency string
	HotelID  string
	UserID   string
}

// Metadata keys stamped on every intent.
const (
	MetadataHotelID = "hotelId"
	MetadataUserID  = "userId"
)
