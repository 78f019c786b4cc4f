package handlers

import (
	"net/http"

	"hotelbooking/middleware"
	"hotelbooking/services/booking"
	"hotelbooking/services/hotel"
	"hotelbooking/services/search"
	"hotelbooking/services/user"
	"hotelbooking/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Tokens   *utils.TokenManager
	Denylist utils.TokenDenylist

	// Auth endpoints
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	ValidateTokenHandler    gin.HandlerFunc
	LogoutHandler           gin.HandlerFunc

	// User endpoints
	GetCurrentUserHandler gin.HandlerFunc
	GetAllUsersHandler    gin.HandlerFunc

	// Public hotel endpoints
	ListHotelsHandler   gin.HandlerFunc
	SearchHotelsHandler gin.HandlerFunc
	GetHotelHandler     gin.HandlerFunc

	// Booking endpoints
	CreatePaymentIntentHandler gin.HandlerFunc
	ConfirmBookingHandler      gin.HandlerFunc
	MyBookingsHandler          gin.HandlerFunc

	// Owner hotel endpoints
	CreateMyHotelHandler gin.HandlerFunc
	ListMyHotelsHandler  gin.HandlerFunc
	GetMyHotelHandler    gin.HandlerFunc
	UpdateMyHotelHandler gin.HandlerFunc

	HealthHandler  gin.HandlerFunc
	MetricsHandler gin.HandlerFunc
}

// Services are the dependencies the bundle is assembled from. Denylist,
// HealthChecks and Metrics are optional.
type Services struct {
	Users    user.UserService
	Hotels   hotel.HotelService
	Search   search.SearchService
	Bookings booking.BookingService

	Tokens       *utils.TokenManager
	Denylist     utils.TokenDenylist
	HealthChecks map[string]utils.HealthCheck
	Metrics      http.Handler
}

// NewHandlerBundle wires every handler to its service.
func NewHandlerBundle(s Services) *HandlerBundle {
	userHandler := NewUserHandler(s.Users)
	hotelHandler := NewHotelHandler(s.Hotels, s.Search, s.Bookings)
	myHotelHandler := NewMyHotelHandler(s.Hotels)

	hb := &HandlerBundle{
		Tokens:   s.Tokens,
		Denylist: s.Denylist,

		RegisterUserHandler:     userHandler.RegisterUserHandler,
		AuthenticateUserHandler: userHandler.AuthenticateUserHandler,
		ValidateTokenHandler:    userHandler.ValidateTokenHandler,
		LogoutHandler:           userHandler.LogoutHandler,
		GetCurrentUserHandler:   userHandler.GetCurrentUserHandler,
		GetAllUsersHandler:      userHandler.GetAllUsersHandler,

		ListHotelsHandler:          hotelHandler.ListHotelsHandler,
		SearchHotelsHandler:        hotelHandler.SearchHotelsHandler,
		GetHotelHandler:            hotelHandler.GetHotelHandler,
		CreatePaymentIntentHandler: hotelHandler.CreatePaymentIntentHandler,
		ConfirmBookingHandler:      hotelHandler.ConfirmBookingHandler,
		MyBookingsHandler:          hotelHandler.MyBookingsHandler,

		CreateMyHotelHandler: myHotelHandler.CreateMyHotelHandler,
		ListMyHotelsHandler:  myHotelHandler.ListMyHotelsHandler,
		GetMyHotelHandler:    myHotelHandler.GetMyHotelHandler,
		UpdateMyHotelHandler: myHotelHandler.UpdateMyHotelHandler,

		HealthHandler: NewHealthHandler(s.HealthChecks),
	}
	if s.Metrics != nil {
		hb.MetricsHandler = gin.WrapH(s.Metrics)
	}
	return hb
}

// currentUserID reads the id VerifyToken stored on the context.
func currentUserID(c *gin.Context) (string, bool) {
	id := c.GetString(middleware.ContextUserID)
	if id == "" {
		utils.RespondError(c, utils.NewAuthError("Unauthorized"), "")
		return "", false
	}
	return id, true
}
