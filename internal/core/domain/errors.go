package domain

import (
	"errors"
	"fmt"
)

// Token validation failures. None of these reach API clients; the request
// simply proceeds without a principal.
var (
	ErrTokenInvalidArgument = errors.New("token is empty")
	ErrTokenMalformed       = errors.New("token is malformed")
	ErrTokenExpired         = errors.New("token has expired")
	ErrTokenUnsupported     = errors.New("token uses an unsupported algorithm")
)

// Identity and access errors.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrBadCredentials  = errors.New("invalid email or password")
	ErrConflict        = errors.New("conflict")
	ErrEmailInUse      = fmt.Errorf("%w: email is already in use", ErrConflict)
	ErrUsernameTaken   = fmt.Errorf("%w: username is already taken", ErrConflict)
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("access forbidden")
	ErrUnknownRole     = errors.New("unknown role")
)

// Catalog and booking errors.
var (
	ErrServiceNotFound     = errors.New("service not found")
	ErrServiceInactive     = errors.New("service is not available")
	ErrContentNotFound     = errors.New("content not found")
	ErrTestimonialNotFound = errors.New("testimonial not found")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrDuplicateBooking    = errors.New("booking already submitted")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrInvalidInput        = errors.New("invalid input")
)
