// File: models/booking.go
package models

import "time"

// Booking is a paid stay, embedded in the hotel it belongs to.
type Booking struct {
	ID              string    `bson:"id" json:"_id"`
	UserID          string    `bson:"userId" json:"userId"`
	FirstName       string    `bson:"firstName" json:"firstName"`
	LastName        string    `bson:"lastName" json:"lastName"`
	Email           string    `bson:"email" json:"email"`
	AdultCount      int       `bson:"adultCount" json:"adultCount"`
	ChildCount      int       `bson:"childCount" json:"childCount"`
	CheckIn         time.Time `bson:"checkIn" json:"checkIn"`
	CheckOut        time.Time `bson:"checkOut" json:"checkOut"`
	NumberOfNights  int       `bson:"numberOfNights" json:"numberOfNights"`
	TotalCost       float64   `bson:"totalCost" json:"totalCost"`
	PaymentIntentID string    `bson:"paymentIntentId" json:"paymentIntentId"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}

// BookingRequest is the body of POST /api/hotels/:hotelId/bookings.
// Any userId or totalCost the client sends is ignored.
type BookingRequest struct {
	PaymentIntentID string    `json:"paymentIntentId"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	AdultCount      int       `json:"adultCount"`
	ChildCount      int       `json:"childCount"`
	CheckIn         time.Time `json:"checkIn"`
	CheckOut        time.Time `json:"checkOut"`
	NumberOfNights  int       `json:"numberOfNights"`
}

// PaymentIntentRequest is the body of POST /api/hotels/:hotelId/bookings/payment-intent.
type PaymentIntentRequest struct {
	NumberOfNights int `json:"numberOfNights"`
}

// PaymentIntentResponse is returned to the browser after phase one.
type PaymentIntentResponse struct {
	PaymentIntentID string  `json:"paymentIntentId"`
	ClientSecret    string  `json:"clientSecret"`
	TotalCost       float64 `json:"totalCost"`
}
