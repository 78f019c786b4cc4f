package booking

import (
	"context"
	"errors"
	"strings"
	"testing"

	hotelRepo "hotelbooking/database/repository/hotel"
	"hotelbooking/models"
	"hotelbooking/services/payment"
	"hotelbooking/utils"

	"go.uber.org/zap"
)

type fixture struct {
	svc      *DefaultBookingService
	hotels   *hotelRepo.MemoryHotelRepo
	payments *payment.FakeProcessor
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	hotels := hotelRepo.NewMemoryHotelRepo()
	for _, h := range []models.Hotel{
		{ID: "h1", UserID: "owner", Name: "Seaview", PricePerNight: 120.5},
		{ID: "h2", UserID: "owner", Name: "Hillside", PricePerNight: 60},
	} {
		h := h
		if err := hotels.Create(context.Background(), &h); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	payments := payment.NewFakeProcessor()
	return fixture{
		svc: &DefaultBookingService{
			Hotels:   hotels,
			Payments: payments,
			Currency: "gbp",
			Logger:   zap.NewNop(),
		},
		hotels:   hotels,
		payments: payments,
	}
}

func kindOf(t *testing.T, err error) *utils.AppError {
	t.Helper()
	var appErr *utils.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	return appErr
}

// paidIntent runs phase one and settles the intent as succeeded.
func (f fixture) paidIntent(t *testing.T, hotelID, userID string, nights int) string {
	t.Helper()
	resp, err := f.svc.CreatePaymentIntent(context.Background(), hotelID, userID, nights)
	if err != nil {
		t.Fatalf("create intent: %v", err)
	}
	f.payments.Settle(resp.PaymentIntentID, models.PaymentIntentSucceeded)
	return resp.PaymentIntentID
}

func TestCreatePaymentIntentPricesServerSide(t *testing.T) {
	f := newFixture(t)
	resp, err := f.svc.CreatePaymentIntent(context.Background(), "h1", "u1", 3)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if resp.TotalCost != 361.5 {
		t.Fatalf("totalCost: %v", resp.TotalCost)
	}
	if resp.ClientSecret == "" {
		t.Fatalf("missing client secret")
	}

	pi, _ := f.payments.RetrieveIntent(context.Background(), resp.PaymentIntentID)
	if pi.Amount != 36150 || pi.Currency != "gbp" {
		t.Fatalf("intent amount/currency: %d %s", pi.Amount, pi.Currency)
	}
	if pi.Metadata[models.MetadataHotelID] != "h1" || pi.Metadata[models.MetadataUserID] != "u1" {
		t.Fatalf("metadata: %v", pi.Metadata)
	}
}

func TestCreatePaymentIntentRejects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.CreatePaymentIntent(ctx, "h1", "u1", 0); kindOf(t, err).Kind != utils.KindValidation {
		t.Fatalf("zero nights: %v", err)
	}
	if _, err := f.svc.CreatePaymentIntent(ctx, "h1", "u1", MaxNights+1); kindOf(t, err).Kind != utils.KindValidation {
		t.Fatalf("too many nights: %v", err)
	}
	if _, err := f.svc.CreatePaymentIntent(ctx, "h1", "u1", int(^uint(0)>>1)); kindOf(t, err).Kind != utils.KindValidation {
		t.Fatalf("overflowing nights: %v", err)
	}
	if _, err := f.svc.CreatePaymentIntent(ctx, "nope", "u1", 1); kindOf(t, err).Kind != utils.KindNotFound {
		t.Fatalf("missing hotel: %v", err)
	}

	f.payments.OmitClientSecret = true
	if _, err := f.svc.CreatePaymentIntent(ctx, "h1", "u1", 1); kindOf(t, err).Kind != utils.KindUpstream {
		t.Fatalf("no client secret: %v", err)
	}

	f.payments.OmitClientSecret = false
	f.payments.Err = errors.New("card network down")
	if _, err := f.svc.CreatePaymentIntent(ctx, "h1", "u1", 1); kindOf(t, err).Kind != utils.KindUpstream {
		t.Fatalf("processor failure: %v", err)
	}
}

func TestCreatePaymentIntentRejectsOversizedAmount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pricey := models.Hotel{ID: "h9", UserID: "owner", PricePerNight: 500000}
	if err := f.hotels.Create(ctx, &pricey); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := f.svc.CreatePaymentIntent(ctx, "h9", "u1", 1); err != nil {
		t.Fatalf("one night: %v", err)
	}
	if _, err := f.svc.CreatePaymentIntent(ctx, "h9", "u1", 2); kindOf(t, err).Kind != utils.KindValidation {
		t.Fatalf("over the processor limit: %v", err)
	}
}

func TestConfirmBookingAppends(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.paidIntent(t, "h1", "u1", 2)

	b, err := f.svc.ConfirmBooking(ctx, "h1", "u1", models.BookingRequest{
		PaymentIntentID: id,
		FirstName:       "Ada",
		Email:           "ada@example.com",
		NumberOfNights:  2,
	})
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if b.UserID != "u1" || b.PaymentIntentID != id || b.TotalCost != 241 {
		t.Fatalf("booking: %+v", b)
	}

	h, _ := f.hotels.GetByID(ctx, "h1")
	if len(h.Bookings) != 1 || h.Bookings[0].FirstName != "Ada" {
		t.Fatalf("stored bookings: %+v", h.Bookings)
	}
}

func TestConfirmBookingRejectsHotelMismatchEvenWhenSucceeded(t *testing.T) {
	f := newFixture(t)
	id := f.paidIntent(t, "h1", "u1", 1)

	_, err := f.svc.ConfirmBooking(context.Background(), "h2", "u1", models.BookingRequest{PaymentIntentID: id})
	appErr := kindOf(t, err)
	if appErr.Kind != utils.KindConflict || appErr.Message != "payment intent mismatch" {
		t.Fatalf("got %v", err)
	}
	h, _ := f.hotels.GetByID(context.Background(), "h2")
	if len(h.Bookings) != 0 {
		t.Fatalf("booking leaked into h2")
	}
}

func TestConfirmBookingRejectsUserMismatch(t *testing.T) {
	f := newFixture(t)
	id := f.paidIntent(t, "h1", "u1", 1)

	_, err := f.svc.ConfirmBooking(context.Background(), "h1", "someone-else", models.BookingRequest{PaymentIntentID: id})
	if kindOf(t, err).Kind != utils.KindConflict {
		t.Fatalf("got %v", err)
	}
}

func TestConfirmBookingRejectsUnsettledIntent(t *testing.T) {
	f := newFixture(t)
	resp, err := f.svc.CreatePaymentIntent(context.Background(), "h1", "u1", 1)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	f.payments.Settle(resp.PaymentIntentID, "requires_action")

	_, err = f.svc.ConfirmBooking(context.Background(), "h1", "u1", models.BookingRequest{PaymentIntentID: resp.PaymentIntentID})
	appErr := kindOf(t, err)
	if appErr.Kind.Status() != 400 || !strings.Contains(appErr.Message, "requires_action") {
		t.Fatalf("got %v", err)
	}
}

func TestConfirmBookingUnknownIntent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.ConfirmBooking(ctx, "h1", "u1", models.BookingRequest{PaymentIntentID: "pi_missing"})
	if appErr := kindOf(t, err); appErr.Message != "Payment Intent not found" || appErr.Kind.Status() != 400 {
		t.Fatalf("got %v", err)
	}

	_, err = f.svc.ConfirmBooking(ctx, "h1", "u1", models.BookingRequest{})
	if kindOf(t, err).Kind != utils.KindValidation {
		t.Fatalf("empty id: %v", err)
	}

	f.payments.Err = errors.New("timeout")
	_, err = f.svc.ConfirmBooking(ctx, "h1", "u1", models.BookingRequest{PaymentIntentID: "pi_x"})
	if kindOf(t, err).Kind != utils.KindUpstream {
		t.Fatalf("processor failure: %v", err)
	}
}

func TestConfirmBookingIgnoresClientCost(t *testing.T) {
	f := newFixture(t)
	// The intent carries what phase one charged, whatever the client claims later.
	f.payments.Put(models.PaymentIntent{
		ID:       "pi_paid",
		Status:   models.PaymentIntentSucceeded,
		Amount:   6000,
		Metadata: map[string]string{models.MetadataHotelID: "h2", models.MetadataUserID: "u1"},
	})

	b, err := f.svc.ConfirmBooking(context.Background(), "h2", "u1", models.BookingRequest{PaymentIntentID: "pi_paid", NumberOfNights: 1})
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if b.TotalCost != 60 {
		t.Fatalf("totalCost: %v", b.TotalCost)
	}
}

func TestConfirmBookingHotelVanished(t *testing.T) {
	f := newFixture(t)
	f.payments.Put(models.PaymentIntent{
		ID:       "pi_orphan",
		Status:   models.PaymentIntentSucceeded,
		Metadata: map[string]string{models.MetadataHotelID: "gone", models.MetadataUserID: "u1"},
	})

	_, err := f.svc.ConfirmBooking(context.Background(), "gone", "u1", models.BookingRequest{PaymentIntentID: "pi_orphan"})
	if appErr := kindOf(t, err); appErr.Message != "Hotel not found" || appErr.Kind.Status() != 400 {
		t.Fatalf("got %v", err)
	}
}

// Resubmitting a confirmed intent appends a second booking. This is a known
// gap; RejectDuplicates closes it.
func TestConfirmBookingDuplicateIntentAppendsTwice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.paidIntent(t, "h1", "u1", 1)
	req := models.BookingRequest{PaymentIntentID: id}

	for i := 0; i < 2; i++ {
		if _, err := f.svc.ConfirmBooking(ctx, "h1", "u1", req); err != nil {
			t.Fatalf("confirm %d: %v", i, err)
		}
	}
	h, _ := f.hotels.GetByID(ctx, "h1")
	if len(h.Bookings) != 2 {
		t.Fatalf("bookings: %d", len(h.Bookings))
	}
}

func TestConfirmBookingRejectDuplicates(t *testing.T) {
	f := newFixture(t)
	f.svc.RejectDuplicates = true
	ctx := context.Background()
	id := f.paidIntent(t, "h1", "u1", 1)
	req := models.BookingRequest{PaymentIntentID: id}

	if _, err := f.svc.ConfirmBooking(ctx, "h1", "u1", req); err != nil {
		t.Fatalf("first confirm: %v", err)
	}
	if _, err := f.svc.ConfirmBooking(ctx, "h1", "u1", req); kindOf(t, err).Kind != utils.KindConflict {
		t.Fatalf("second confirm: %v", err)
	}
	h, _ := f.hotels.GetByID(ctx, "h1")
	if len(h.Bookings) != 1 {
		t.Fatalf("bookings: %d", len(h.Bookings))
	}
}

func TestListMyBookingsFiltersToCaller(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for _, user := range []string{"u1", "u2"} {
		id := f.paidIntent(t, "h1", user, 1)
		if _, err := f.svc.ConfirmBooking(ctx, "h1", user, models.BookingRequest{PaymentIntentID: id}); err != nil {
			t.Fatalf("confirm for %s: %v", user, err)
		}
	}

	hotels, err := f.svc.ListMyBookings(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(hotels) != 1 || len(hotels[0].Bookings) != 1 || hotels[0].Bookings[0].UserID != "u1" {
		t.Fatalf("got %+v", hotels)
	}
}

func TestToMinorUnits(t *testing.T) {
	if got := ToMinorUnits(0.29 * 3); got != 87 {
		t.Fatalf("got %d", got)
	}
}
