package hotelRepo

import (
	"context"
	"sort"
	"sync"

	"hotelbooking/models"
)

// MemoryHotelRepo keeps hotels in process. Search evaluates the typed
// params of the plan, so results match what the MongoDB filter selects.
type MemoryHotelRepo struct {
	mu     sync.RWMutex
	hotels map[string]models.Hotel
}

func NewMemoryHotelRepo() *MemoryHotelRepo {
	return &MemoryHotelRepo{hotels: map[string]models.Hotel{}}
}

// clone copies the slices so callers never alias stored state.
func clone(h models.Hotel) models.Hotel {
	h.Facilities = append([]string(nil), h.Facilities...)
	h.ImageURLs = append([]string(nil), h.ImageURLs...)
	h.Bookings = append([]models.Booking{}, h.Bookings...)
	return h
}

func (r *MemoryHotelRepo) Create(_ context.Context, hotel *models.Hotel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if hotel.Bookings == nil {
		hotel.Bookings = []models.Booking{}
	}
	r.hotels[hotel.ID] = clone(*hotel)
	return nil
}

func (r *MemoryHotelRepo) GetByID(_ context.Context, id string) (*models.Hotel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.hotels[id]
	if !ok {
		return nil, ErrNotFound
	}
	h = clone(h)
	return &h, nil
}

func (r *MemoryHotelRepo) GetByOwner(ctx context.Context, id, userID string) (*models.Hotel, error) {
	h, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if h.UserID != userID {
		return nil, ErrNotFound
	}
	return h, nil
}

func (r *MemoryHotelRepo) collect(keep func(models.Hotel) bool) []models.Hotel {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Hotel{}
	for _, h := range r.hotels {
		if keep(h) {
			out = append(out, clone(h))
		}
	}
	return out
}

func byLastUpdated(hotels []models.Hotel) {
	sort.SliceStable(hotels, func(i, j int) bool {
		if !hotels[i].LastUpdated.Equal(hotels[j].LastUpdated) {
			return hotels[i].LastUpdated.After(hotels[j].LastUpdated)
		}
		return hotels[i].ID < hotels[j].ID
	})
}

func (r *MemoryHotelRepo) GetAll(_ context.Context) ([]models.Hotel, error) {
	hotels := r.collect(func(models.Hotel) bool { return true })
	byLastUpdated(hotels)
	return hotels, nil
}

func (r *MemoryHotelRepo) ListByOwner(_ context.Context, userID string) ([]models.Hotel, error) {
	hotels := r.collect(func(h models.Hotel) bool { return h.UserID == userID })
	byLastUpdated(hotels)
	return hotels, nil
}

func (r *MemoryHotelRepo) ListWithBookingsFor(_ context.Context, userID string) ([]models.Hotel, error) {
	hotels := r.collect(func(h models.Hotel) bool { return h.HasBookingFor(userID) })
	sort.Slice(hotels, func(i, j int) bool { return hotels[i].ID < hotels[j].ID })
	return hotels, nil
}

func (r *MemoryHotelRepo) Search(_ context.Context, plan models.SearchPlan) ([]models.Hotel, int64, error) {
	matched := r.collect(plan.Params.Matches)
	sort.SliceStable(matched, func(i, j int) bool { return plan.Params.Sort.Less(matched[i], matched[j]) })

	total := int64(len(matched))
	start := plan.Skip
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	end := total
	if plan.Limit > 0 && start+plan.Limit < end {
		end = start + plan.Limit
	}
	return matched[start:end], total, nil
}

func (r *MemoryHotelRepo) Update(_ context.Context, hotel *models.Hotel) (*models.Hotel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.hotels[hotel.ID]
	if !ok || cur.UserID != hotel.UserID {
		return nil, ErrNotFound
	}
	cur.Name = hotel.Name
	cur.City = hotel.City
	cur.Country = hotel.Country
	cur.Description = hotel.Description
	cur.Type = hotel.Type
	cur.AdultCount = hotel.AdultCount
	cur.ChildCount = hotel.ChildCount
	cur.Facilities = hotel.Facilities
	cur.PricePerNight = hotel.PricePerNight
	cur.StarRating = hotel.StarRating
	cur.ImageURLs = hotel.ImageURLs
	cur.LastUpdated = hotel.LastUpdated
	r.hotels[hotel.ID] = clone(cur)

	out := clone(cur)
	return &out, nil
}

func (r *MemoryHotelRepo) AddBooking(_ context.Context, hotelID string, booking models.Booking, rejectDuplicate bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.hotels[hotelID]
	if !ok {
		return ErrNotFound
	}
	if rejectDuplicate && h.HasPaymentIntent(booking.PaymentIntentID) {
		return ErrDuplicateBooking
	}
	h.Bookings = append(h.Bookings, booking)
	r.hotels[hotelID] = h
	return nil
}
