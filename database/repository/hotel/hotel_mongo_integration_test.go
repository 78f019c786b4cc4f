//go:build integration

package hotelRepo_test

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	hotelRepo "hotelbooking/database/repository/hotel"
	"hotelbooking/models"
	"hotelbooking/services/search"
)

func startMongo(t *testing.T) *mongo.Database {
	t.Helper()
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mongo",
		Tag:        "7.0",
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mongo: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	uri := fmt.Sprintf("mongodb://127.0.0.1:%s", resource.GetPort("27017/tcp"))

	var client *mongo.Client
	if err := pool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		var e error
		client, e = mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if e != nil {
			return e
		}
		return client.Ping(ctx, nil)
	}); err != nil {
		t.Fatalf("connect mongo: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	return client.Database("hotel-booking-test")
}

func TestRepo_Mongo_SearchAndBookings(t *testing.T) {
	db := startMongo(t)
	repo, err := hotelRepo.NewMongoHotelRepo(db)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	ctx := context.Background()

	seed := []models.Hotel{
		{ID: "h1", UserID: "o1", City: "London", Country: "UK", Type: "Budget", AdultCount: 2, Facilities: []string{"Free WiFi", "Parking"}, PricePerNight: 80, StarRating: 3},
		{ID: "h2", UserID: "o1", City: "Paris", Country: "France", Type: "Luxury", AdultCount: 4, Facilities: []string{"Free WiFi", "Parking"}, PricePerNight: 300, StarRating: 5},
		{ID: "h3", UserID: "o2", City: "Lyon", Country: "France", Type: "Budget", AdultCount: 1, Facilities: []string{"Free WiFi"}, PricePerNight: 9, StarRating: 2},
	}
	for i := range seed {
		if err := repo.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	// The compiled filter and the in-process predicate must agree.
	for _, raw := range []string{
		"destination=fran",
		"facilities=Free+WiFi&facilities=Parking",
		"maxPrice=100&sortOptions=pricePerNightAsc",
		"stars=2&stars=5&types=Budget",
	} {
		q, _ := url.ParseQuery(raw)
		p, err := search.ParseSearchParams(q)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		plan := search.BuildSearchPlan(p)

		got, total, err := repo.Search(ctx, plan)
		if err != nil {
			t.Fatalf("search %q: %v", raw, err)
		}
		mem := hotelRepo.NewMemoryHotelRepo()
		for i := range seed {
			_ = mem.Create(ctx, &seed[i])
		}
		want, wantTotal, _ := mem.Search(ctx, plan)
		if total != wantTotal || len(got) != len(want) {
			t.Fatalf("%q: mongo %d/%d, memory %d/%d", raw, len(got), total, len(want), wantTotal)
		}
		for i := range got {
			if got[i].ID != want[i].ID {
				t.Fatalf("%q: order differs at %d: %s vs %s", raw, i, got[i].ID, want[i].ID)
			}
		}
	}

	b := models.Booking{ID: "b1", UserID: "guest", PaymentIntentID: "pi_1"}
	if err := repo.AddBooking(ctx, "h1", b, true); err != nil {
		t.Fatalf("add booking: %v", err)
	}
	if err := repo.AddBooking(ctx, "h1", b, true); !errors.Is(err, hotelRepo.ErrDuplicateBooking) {
		t.Fatalf("duplicate guard: got %v", err)
	}
	if err := repo.AddBooking(ctx, "nope", b, true); !errors.Is(err, hotelRepo.ErrNotFound) {
		t.Fatalf("missing hotel: got %v", err)
	}

	booked, err := repo.ListWithBookingsFor(ctx, "guest")
	if err != nil || len(booked) != 1 || booked[0].ID != "h1" {
		t.Fatalf("ListWithBookingsFor: %v %+v", err, booked)
	}

	if _, err := repo.Update(ctx, &models.Hotel{ID: "h1", UserID: "o2", Name: "stolen"}); !errors.Is(err, hotelRepo.ErrNotFound) {
		t.Fatalf("non-owner update: got %v", err)
	}
}
