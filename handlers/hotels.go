package handlers

import (
	"net/http"

	"hotelbooking/models"
	"hotelbooking/services/booking"
	"hotelbooking/services/hotel"
	"hotelbooking/services/search"
	"hotelbooking/utils"

	"github.com/gin-gonic/gin"
)

// HotelHandler serves the public hotel endpoints and the booking flow.
type HotelHandler struct {
	Hotels   hotel.HotelService
	Search   search.SearchService
	Bookings booking.BookingService
}

func NewHotelHandler(hotels hotel.HotelService, searchSvc search.SearchService, bookings booking.BookingService) *HotelHandler {
	return &HotelHandler{Hotels: hotels, Search: searchSvc, Bookings: bookings}
}

// ListHotelsHandler handles GET /api/hotels.
func (h *HotelHandler) ListHotelsHandler(c *gin.Context) {
	hotels, err := h.Hotels.ListHotels(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err, "Error fetching hotels")
		return
	}
	c.JSON(http.StatusOK, hotels)
}

// SearchHotelsHandler handles GET /api/hotels/search.
func (h *HotelHandler) SearchHotelsHandler(c *gin.Context) {
	resp, err := h.Search.Search(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		utils.RespondError(c, err, "Could not fetch Hotels!")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetHotelHandler handles GET /api/hotels/:hotelId.
func (h *HotelHandler) GetHotelHandler(c *gin.Context) {
	found, err := h.Hotels.GetHotel(c.Request.Context(), c.Param("hotelId"))
	if err != nil {
		utils.RespondError(c, err, "Error fetching hotel")
		return
	}
	c.JSON(http.StatusOK, found)
}

// CreatePaymentIntentHandler handles POST /api/hotels/:hotelId/bookings/payment-intent.
func (h *HotelHandler) CreatePaymentIntentHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.BindingError(err), "")
		return
	}

	resp, err := h.Bookings.CreatePaymentIntent(c.Request.Context(), c.Param("hotelId"), userID, req.NumberOfNights)
	if err != nil {
		utils.RespondError(c, err, "Error creating payment intent")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ConfirmBookingHandler handles POST /api/hotels/:hotelId/bookings.
func (h *HotelHandler) ConfirmBookingHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.BindingError(err), "")
		return
	}

	if _, err := h.Bookings.ConfirmBooking(c.Request.Context(), c.Param("hotelId"), userID, req); err != nil {
		utils.RespondError(c, err, "Something went wrong")
		return
	}
	c.Status(http.StatusCreated)
}

// MyBookingsHandler handles GET /api/my-bookings.
func (h *HotelHandler) MyBookingsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	hotels, err := h.Bookings.ListMyBookings(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err, "Unable to fetch bookings")
		return
	}
	c.JSON(http.StatusOK, hotels)
}
