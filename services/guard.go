package services

import (
	"context"

	"github.com/upb/course-registry/auth"
	"github.com/upb/course-registry/models"
)

// The authorization guard is called explicitly at the top of each mutating
// business operation rather than hung on routes: the ownership check needs
// the loaded resource, so role and ownership live in one visible sequence.
// Nothing is cached between calls; every invocation re-reads the identity
// from the request context.

// RequireIdentity returns the identity resolved for the current request, or
// ErrUnauthenticated when the token validator degraded the request to
// anonymous (missing, malformed, tampered or expired token).
func RequireIdentity(ctx context.Context) (*auth.Identity, error) {
	identity := auth.IdentityFromContext(ctx)
	if identity == nil {
		return nil, ErrUnauthenticated
	}
	return identity, nil
}

// RequireRole returns the current identity if it holds exactly the required
// role. An unauthenticated request fails with ErrUnauthenticated before any
// role comparison; a resolved identity with the wrong role fails with
// ErrInsufficientRole.
func RequireRole(ctx context.Context, role models.Role) (*auth.Identity, error) {
	identity, err := RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	if identity.Role != role {
		return nil, ErrInsufficientRole
	}
	return identity, nil
}

// RequireOwner fails with ErrNotOwner unless the course belongs to the given
// teacher. Callers must load the course first so that a missing course
// reports ErrCourseNotFound before ownership is ever considered.
func RequireOwner(course *models.Course, teacher *models.User) error {
	if !course.IsOwnedBy(teacher.ID) {
		return ErrNotOwner
	}
	return nil
}
