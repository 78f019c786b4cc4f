// File: models/hotel.go
package models

import "time"

// Hotel is a listing owned by the user that created it. Bookings are embedded.
type Hotel struct {
	ID            string    `bson:"id" json:"_id"`
	UserID        string    `bson:"userId" json:"userId"`
	Name          string    `bson:"name" json:"name"`
	City          string    `bson:"city" json:"city"`
	Country       string    `bson:"country" json:"country"`
	Description   string    `bson:"description" json:"description"`
	Type          string    `bson:"type" json:"type"`
	AdultCount    int       `bson:"adultCount" json:"adultCount"`
	ChildCount    int       `bson:"childCount" json:"childCount"`
	Facilities    []string  `bson:"facilities" json:"facilities"`
	PricePerNight float64   `bson:"pricePerNight" json:"pricePerNight"`
	StarRating    int       `bson:"starRating" json:"starRating"`
	ImageURLs     []string  `bson:"imageUrls" json:"imageUrls"`
	LastUpdated   time.Time `bson:"lastUpdated" json:"lastUpdated"`
	Bookings      []Booking `bson:"bookings" json:"bookings"`
}

// HotelForm is the multipart body for creating or updating an owned hotel.
// Facilities and kept image URLs are collected by the handler because the
// browser may send them as either "facilities" or "facilities[n]".
type HotelForm struct {
	Name          string   `form:"name" binding:"required"`
	City          string   `form:"city" binding:"required"`
	Country       string   `form:"country" binding:"required"`
	Description   string   `form:"description" binding:"required"`
	Type          string   `form:"type" binding:"required"`
	PricePerNight float64  `form:"pricePerNight" binding:"required,gt=0"`
	StarRating    int      `form:"starRating" binding:"required,min=1,max=5"`
	AdultCount    int      `form:"adultCount" binding:"required,min=1"`
	ChildCount    int      `form:"childCount" binding:"min=0"`
	Facilities    []string `form:"-"`
	ImageURLs     []string `form:"-"`
}

// BookingsOf returns a copy of the hotel that only carries the given user's bookings.
func (h Hotel) BookingsOf(userID string) Hotel {
	out := h
	out.Bookings = make([]Booking, 0, len(h.Bookings))
	for _, b := range h.Bookings {
		if b.UserID == userID {
			out.Bookings = append(out.Bookings, b)
		}
	}
	return out
}

// HasBookingFor reports whether the user booked this hotel at least once.
func (h Hotel) HasBookingFor(userID string) bool {
	for _, b := range h.Bookings {
		if b.UserID == userID {
			return true
		}
	}
	return false
}

// HasPaymentIntent reports whether a booking for the payment intent already exists.
func (h Hotel) HasPaymentIntent(paymentIntentID string) bool {
	for _, b := range h.Bookings {
		if b.PaymentIntentID == paymentIntentID {
			return true
		}
	}
	return false
}
