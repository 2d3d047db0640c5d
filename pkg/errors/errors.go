package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed domain error with HTTP awareness.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Generic errors shared across modules.
var (
	ErrInvalidCredentials = New("INVALID_CREDENTIALS", http.StatusUnauthorized, "invalid username or password")
	ErrInactiveAccount    = New("ACCOUNT_INACTIVE", http.StatusForbidden, "account is inactive")
	ErrNotFound           = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrForbidden          = New("FORBIDDEN", http.StatusForbidden, "forbidden")
	ErrUnauthorized       = New("UNAUTHORIZED", http.StatusUnauthorized, "unauthorized")
	ErrConflict           = New("CONFLICT", http.StatusConflict, "conflict")
	ErrValidation         = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrInternal           = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
)

// Registration ledger errors.
var (
	ErrPasswordMismatch   = New("PASSWORD_MISMATCH", http.StatusBadRequest, "password and confirmation do not match")
	ErrWeakPassword       = New("WEAK_PASSWORD", http.StatusBadRequest, "password does not meet the strength policy")
	ErrUsernameTaken      = New("USERNAME_TAKEN", http.StatusConflict, "username is already registered")
	ErrMissingCredentials = New("MISSING_CREDENTIALS", http.StatusBadRequest, "captain credentials are required at signup")
)

// Catch workflow errors.
var (
	ErrNotCaptain           = New("NOT_CAPTAIN", http.StatusForbidden, "only captains may submit catches")
	ErrRoleError            = New("ROLE_ERROR", http.StatusForbidden, "only anglers may check in for the day")
	ErrAnglerNotRegistered  = New("ANGLER_NOT_REGISTERED", http.StatusConflict, "angler is not checked in for today")
	ErrConfirmationMismatch = New("CONFIRMATION_MISMATCH", http.StatusForbidden, "action confirmation failed")
	ErrMediaTooShort        = New("MEDIA_TOO_SHORT", http.StatusBadRequest, "evidence video is below the minimum length")
	ErrNotOwner             = New("NOT_OWNER", http.StatusForbidden, "only the certifying captain may decide this entry")
	ErrNotPending           = New("NOT_PENDING", http.StatusConflict, "entry has already been decided")
	ErrUnknownDivision      = New("UNKNOWN_DIVISION", http.StatusBadRequest, "division is not part of the tournament")
	ErrUnknownSpecies       = New("UNKNOWN_SPECIES", http.StatusBadRequest, "species is not one of the tournament options")
	ErrUnknownVenue         = New("UNKNOWN_VENUE", http.StatusBadRequest, "weigh-in location is not an approved venue")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}
