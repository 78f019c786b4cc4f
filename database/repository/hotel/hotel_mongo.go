package hotelRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotelbooking/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoHotelRepo implements HotelRepository using MongoDB.
type MongoHotelRepo struct {
	coll *mongo.Collection
}

// NewMongoHotelRepo creates a new instance of HotelRepository using MongoDB.
func NewMongoHotelRepo(db *mongo.Database) (*MongoHotelRepo, error) {
	repo := &MongoHotelRepo{coll: db.Collection("hotels")}
	if err := repo.ensureIndexes(); err != nil {
		return nil, err
	}
	return repo, nil
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoHotelRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "bookings.userId", Value: 1}}},
		{Keys: bson.D{{Key: "bookings.paymentIntentId", Value: 1}}},
		{Keys: bson.D{{Key: "starRating", Value: -1}, {Key: "id", Value: 1}}},
		{Keys: bson.D{{Key: "pricePerNight", Value: 1}, {Key: "id", Value: 1}}},
		{Keys: bson.D{{Key: "lastUpdated", Value: -1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create hotel indexes: %w", err)
	}
	return nil
}

func (r *MongoHotelRepo) Create(ctx context.Context, hotel *models.Hotel) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if hotel.Bookings == nil {
		hotel.Bookings = []models.Booking{}
	}
	if _, err := r.coll.InsertOne(ctx, hotel); err != nil {
		return fmt.Errorf("failed to create hotel: %w", err)
	}
	return nil
}

func (r *MongoHotelRepo) GetByID(ctx context.Context, id string) (*models.Hotel, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *MongoHotelRepo) GetByOwner(ctx context.Context, id, userID string) (*models.Hotel, error) {
	return r.findOne(ctx, bson.M{"id": id, "userId": userID})
}

func (r *MongoHotelRepo) findOne(ctx context.Context, filter bson.M) (*models.Hotel, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var hotel models.Hotel
	if err := r.coll.FindOne(ctx, filter).Decode(&hotel); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch hotel: %w", err)
	}
	return &hotel, nil
}

func (r *MongoHotelRepo) GetAll(ctx context.Context) ([]models.Hotel, error) {
	opts := options.Find().SetSort(bson.D{{Key: "lastUpdated", Value: -1}, {Key: "id", Value: 1}})
	return r.find(ctx, bson.M{}, opts)
}

func (r *MongoHotelRepo) ListByOwner(ctx context.Context, userID string) ([]models.Hotel, error) {
	opts := options.Find().SetSort(bson.D{{Key: "lastUpdated", Value: -1}})
	return r.find(ctx, bson.M{"userId": userID}, opts)
}

func (r *MongoHotelRepo) ListWithBookingsFor(ctx context.Context, userID string) ([]models.Hotel, error) {
	filter := bson.M{"bookings": bson.M{"$elemMatch": bson.M{"userId": userID}}}
	return r.find(ctx, filter, options.Find())
}

func (r *MongoHotelRepo) Search(ctx context.Context, plan models.SearchPlan) ([]models.Hotel, int64, error) {
	opts := options.Find().SetSort(plan.Sort).SetSkip(plan.Skip).SetLimit(plan.Limit)
	hotels, err := r.find(ctx, plan.Filter, opts)
	if err != nil {
		return nil, 0, err
	}

	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()
	total, err := r.coll.CountDocuments(ctx, plan.Filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count hotels: %w", err)
	}
	return hotels, total, nil
}

func (r *MongoHotelRepo) find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]models.Hotel, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find hotels: %w", err)
	}
	defer cursor.Close(ctx)

	hotels := []models.Hotel{}
	if err := cursor.All(ctx, &hotels); err != nil {
		return nil, fmt.Errorf("failed to decode hotels: %w", err)
	}
	return hotels, nil
}

func (r *MongoHotelRepo) Update(ctx context.Context, hotel *models.Hotel) (*models.Hotel, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":          hotel.Name,
		"city":          hotel.City,
		"country":       hotel.Country,
		"description":   hotel.Description,
		"type":          hotel.Type,
		"adultCount":    hotel.AdultCount,
		"childCount":    hotel.ChildCount,
		"facilities":    hotel.Facilities,
		"pricePerNight": hotel.PricePerNight,
		"starRating":    hotel.StarRating,
		"imageUrls":     hotel.ImageURLs,
		"lastUpdated":   hotel.LastUpdated,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Hotel
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": hotel.ID, "userId": hotel.UserID}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update hotel: %w", err)
	}
	return &updated, nil
}

func (r *MongoHotelRepo) AddBooking(ctx context.Context, hotelID string, booking models.Booking, rejectDuplicate bool) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": hotelID}
	if rejectDuplicate {
		filter["bookings.paymentIntentId"] = bson.M{"$ne": booking.PaymentIntentID}
	}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$push": bson.M{"bookings": booking}})
	if err != nil {
		return fmt.Errorf("failed to add booking: %w", err)
	}
	if res.MatchedCount > 0 {
		return nil
	}
	if !rejectDuplicate {
		return ErrNotFound
	}

	// Nothing matched: either the hotel is gone or the guard tripped.
	n, err := r.coll.CountDocuments(ctx, bson.M{"id": hotelID})
	if err != nil {
		return fmt.Errorf("failed to check hotel: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return ErrDuplicateBooking
}
