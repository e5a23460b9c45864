package services

import (
	"context"

	"github.com/skillforge/dashboard-backend/internal/logger"
	"github.com/skillforge/dashboard-backend/internal/repos"
	"github.com/skillforge/dashboard-backend/internal/types"
)

const (
	adminDirectoryMessage    = "Admin access: You can view all users."
	nonAdminDirectoryMessage = "Only admins can view all users. Please enter your name to access your dashboard."
)

// DirectoryListing always renders, even for unauthorized callers: a
// non-admin gets an empty list and an explanatory message, never an error.
type DirectoryListing struct {
	Users   []types.UserSummary `json:"users"`
	IsAdmin bool                `json:"isAdmin"`
	Message string              `json:"message"`
}

type DirectoryService interface {
	List(ctx context.Context, callerName string) (DirectoryListing, error)
}

type directoryService struct {
	log      *logger.Logger
	identity IdentityService
	userRepo repos.UserRepo
}

func NewDirectoryService(log *logger.Logger, identity IdentityService, userRepo repos.UserRepo) DirectoryService {
	serviceLog := log.With("service", "DirectoryService")
	return &directoryService{log: serviceLog, identity: identity, userRepo: userRepo}
}

func (ds *directoryService) List(ctx context.Context, callerName string) (DirectoryListing, error) {
	if !ds.identity.CallerIsAdmin(ctx, callerName) {
		return DirectoryListing{
			Users:   []types.UserSummary{},
			IsAdmin: false,
			Message: nonAdminDirectoryMessage,
		}, nil
	}

	users, err := ds.userRepo.ListSummaries(ctx, nil)
	if err != nil {
		ds.log.Error("Directory read failed", "error", err)
		return DirectoryListing{}, &ReadFailureError{Which: "users", Err: err}
	}
	if users == nil {
		users = []types.UserSummary{}
	}

	return DirectoryListing{
		Users:   users,
		IsAdmin: true,
		Message: adminDirectoryMessage,
	}, nil
}
