package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"

	userRepo "hotelbooking/database/repository/user"
	"hotelbooking/models"
	"hotelbooking/utils"
)

func newService() *DefaultUserService {
	return &DefaultUserService{
		Repo:   userRepo.NewMemoryUserRepo(),
		Tokens: utils.NewTokenManager("test-secret", utils.SessionTTL),
	}
}

func register(t *testing.T, s *DefaultUserService, email string) *AuthResponse {
	t.Helper()
	resp, err := s.RegisterUser(context.Background(), models.UserRegistration{
		FirstName: "Ada", LastName: "Lovelace", Email: email, Password: "secret1",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return resp
}

func TestRegisterIssuesTokenForNewUser(t *testing.T) {
	s := newService()
	resp := register(t, s, "Ada@Example.com")

	sub, _, err := s.Tokens.ExtractIDFromToken(resp.Token)
	if err != nil || sub != resp.ID {
		t.Fatalf("token sub %q, err %v", sub, err)
	}

	u, err := s.GetUserByID(context.Background(), resp.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if u.Email != "ada@example.com" || u.PasswordHash != "" {
		t.Fatalf("stored user: %+v", u)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := newService()
	register(t, s, "ada@example.com")

	_, err := s.RegisterUser(context.Background(), models.UserRegistration{
		FirstName: "A", LastName: "L", Email: "ADA@example.com", Password: "another",
	})
	var appErr *utils.AppError
	if !errors.As(err, &appErr) || appErr.Message != "User already exists" || appErr.Kind.Status() != 400 {
		t.Fatalf("got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	s := newService()
	reg := register(t, s, "ada@example.com")
	ctx := context.Background()

	resp, err := s.AuthenticateUser(ctx, "ada@example.com", "secret1")
	if err != nil || resp.ID != reg.ID {
		t.Fatalf("login: %v %+v", err, resp)
	}

	for _, tc := range []struct{ email, password string }{
		{"ada@example.com", "wrong-password"},
		{"nobody@example.com", "secret1"},
	} {
		_, err := s.AuthenticateUser(ctx, tc.email, tc.password)
		var appErr *utils.AppError
		if !errors.As(err, &appErr) || appErr.Message != "Invalid login details" || appErr.Kind.Status() != 400 {
			t.Fatalf("%s/%s: got %v", tc.email, tc.password, err)
		}
	}
}

func TestGetUserByIDMissing(t *testing.T) {
	_, err := newService().GetUserByID(context.Background(), "nope")
	if utils.KindOf(err) != utils.KindNotFound {
		t.Fatalf("got %v", err)
	}
}

func TestGetAllUsersHidesHashes(t *testing.T) {
	s := newService()
	register(t, s, "a@example.com")
	register(t, s, "b@example.com")

	users, err := s.GetAllUsers(context.Background())
	if err != nil || len(users) != 2 {
		t.Fatalf("list: %v %d", err, len(users))
	}
	for _, u := range users {
		if u.PasswordHash != "" {
			t.Fatalf("hash leaked for %s", u.Email)
		}
	}
}

func TestRevokeTokenDenylists(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	s := newService()
	s.Denylist = utils.NewRedisTokenDenylist(client)
	resp := register(t, s, "ada@example.com")
	ctx := context.Background()

	if err := s.RevokeToken(ctx, resp.Token); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	revoked, err := s.Denylist.IsRevoked(ctx, utils.HashToken(resp.Token))
	if err != nil || !revoked {
		t.Fatalf("revoked=%v err=%v", revoked, err)
	}

	mr.FastForward(utils.SessionTTL + time.Minute)
	if revoked, _ := s.Denylist.IsRevoked(ctx, utils.HashToken(resp.Token)); revoked {
		t.Fatalf("denylist entry should expire with the token")
	}

	if err := s.RevokeToken(ctx, "garbage"); err != nil {
		t.Fatalf("garbage token: %v", err)
	}
}
