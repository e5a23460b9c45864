package services

import (
	"context"
	"strings"

	"github.com/skillforge/dashboard-backend/internal/logger"
	"github.com/skillforge/dashboard-backend/internal/repos"
	"github.com/skillforge/dashboard-backend/internal/types"
)

// DefaultPrincipal is the explicit anonymous/demo identity used when neither
// a caller nor a target name is supplied. A demo convenience, not a security
// model.
const DefaultPrincipal = "yeswanth"

// Resolution is the outcome of an authorization check: which user's data to
// return and whether the caller holds the admin role.
type Resolution struct {
	Target        string
	CallerIsAdmin bool
}

type IdentityService interface {
	// Resolve decides the target of a lookup and authorizes the caller.
	// Returns ErrAccessDenied when a named non-admin caller requests a
	// different target. An unauthenticated request (empty caller) is never
	// blocked here; that ordering is a documented weak point of the demo.
	Resolve(ctx context.Context, callerName, targetName string) (Resolution, error)
	// CallerIsAdmin reports whether the named caller resolves to the admin
	// role. Lookup failures count as non-admin.
	CallerIsAdmin(ctx context.Context, callerName string) bool
}

type identityService struct {
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewIdentityService(log *logger.Logger, userRepo repos.UserRepo) IdentityService {
	serviceLog := log.With("service", "IdentityService")
	return &identityService{log: serviceLog, userRepo: userRepo}
}

func (is *identityService) CallerIsAdmin(ctx context.Context, callerName string) bool {
	if callerName == "" {
		return false
	}
	caller, err := is.userRepo.GetByName(ctx, nil, callerName)
	if err != nil {
		is.log.Debug("Caller role lookup failed, treating as plain user", "caller", callerName, "error", err)
		return false
	}
	return caller.Role == types.RoleAdmin
}

func (is *identityService) Resolve(ctx context.Context, callerName, targetName string) (Resolution, error) {
	isAdmin := is.CallerIsAdmin(ctx, callerName)

	target := targetName
	if target == "" {
		target = callerName
	}
	if target == "" {
		target = DefaultPrincipal
	}

	// Non-admins can only access their own data.
	if !isAdmin && callerName != "" && !strings.EqualFold(target, callerName) {
		is.log.Warn("Access denied", "caller", callerName, "target", target)
		return Resolution{}, ErrAccessDenied
	}

	return Resolution{Target: target, CallerIsAdmin: isAdmin}, nil
}
