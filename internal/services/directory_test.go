package services

import (
	"context"
	"errors"
	"testing"

	"github.com/skillforge/dashboard-backend/internal/logger"
)

func newDirectoryService(users *fakeUserRepo) DirectoryService {
	log := logger.Nop()
	return NewDirectoryService(log, NewIdentityService(log, users), users)
}

func TestDirectoryListNonAdmin(t *testing.T) {
	cases := []struct {
		name   string
		caller string
	}{
		{"plain_user", "sarah"},
		{"unauthenticated", ""},
		{"unknown_caller", "ghost"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newDirectoryService(&fakeUserRepo{users: testUsers()})
			listing, err := svc.List(context.Background(), tc.caller)
			if err != nil {
				t.Fatalf("non-admin listing must not error: %v", err)
			}
			if listing.IsAdmin {
				t.Fatal("caller is not an admin")
			}
			if listing.Users == nil || len(listing.Users) != 0 {
				t.Fatalf("non-admin must see an empty list, got %+v", listing.Users)
			}
			if listing.Message != nonAdminDirectoryMessage {
				t.Fatalf("message: got %q", listing.Message)
			}
		})
	}
}

func TestDirectoryListAdmin(t *testing.T) {
	svc := newDirectoryService(&fakeUserRepo{users: testUsers()})
	listing, err := svc.List(context.Background(), "yeswanth")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if !listing.IsAdmin {
		t.Fatal("admin caller must be flagged")
	}
	if len(listing.Users) != 3 {
		t.Fatalf("admin must see every user, got %d", len(listing.Users))
	}
	if listing.Message != adminDirectoryMessage {
		t.Fatalf("message: got %q", listing.Message)
	}
}

func TestDirectoryListReadFailure(t *testing.T) {
	repo := &fakeUserRepo{users: testUsers()}
	svc := newDirectoryService(repo)
	repo.listErr = errors.New("boom")

	_, err := svc.List(context.Background(), "yeswanth")
	var readErr *ReadFailureError
	if !errors.As(err, &readErr) {
		t.Fatalf("want ReadFailureError, got %v", err)
	}
}
