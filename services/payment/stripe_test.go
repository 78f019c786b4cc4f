package payment

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stripe/stripe-go/v76"
)

func TestIsMissing(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"resource missing", &stripe.Error{Code: stripe.ErrorCodeResourceMissing}, true},
		{"404", &stripe.Error{HTTPStatusCode: http.StatusNotFound}, true},
		{"wrapped", fmt.Errorf("get: %w", &stripe.Error{Code: stripe.ErrorCodeResourceMissing}), true},
		{"auth", &stripe.Error{HTTPStatusCode: http.StatusUnauthorized}, false},
		{"network", errors.New("dial tcp: timeout"), false},
	}
	for _, tc := range cases {
		if got := isMissing(tc.err); got != tc.want {
			t.Fatalf("%s: got %v", tc.name, got)
		}
	}
}

func TestToModel(t *testing.T) {
	pi := toModel(&stripe.PaymentIntent{
		ID:           "pi_1",
		ClientSecret: "secret",
		Status:       stripe.PaymentIntentStatusSucceeded,
		Amount:       12345,
		Currency:     stripe.CurrencyGBP,
		Metadata:     map[string]string{"hotelId": "h1", "userId": "u1"},
	})
	if pi.Status != "succeeded" || pi.Amount != 12345 || pi.Currency != "gbp" || pi.Metadata["hotelId"] != "h1" {
		t.Fatalf("unexpected model: %+v", pi)
	}
}
