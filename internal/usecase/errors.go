package usecase

import (
	"fmt"
	"strings"
	"time"

	"hotel-booking/internal/data/entity"
)

// The engine rejects, it never coerces: every failed precondition surfaces as
// one of these types so the HTTP layer can answer distinctly. Nothing is
// retried automatically; re-submission is the caller's call.

// ValidationError covers malformed or missing input: bad dates, guest count
// over capacity, incomplete profile.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Msg
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// AvailabilityError means the requested range has no capacity. ConflictDates
// lists the fully-booked days when known.
type AvailabilityError struct {
	Reason        string
	ConflictDates []time.Time
}

func (e *AvailabilityError) Error() string {
	if len(e.ConflictDates) == 0 {
		return "no availability: " + e.Reason
	}
	days := make([]string, len(e.ConflictDates))
	for i, d := range e.ConflictDates {
		days[i] = d.Format("2006-01-02")
	}
	return fmt.Sprintf("no availability: %s (fully booked on %s)", e.Reason, strings.Join(days, ", "))
}

// ConflictError means a concurrent transaction claimed the room between read
// and write. Distinct from AvailabilityError so the caller can offer a
// different room instead of reporting the range as fully booked.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string {
	return "conflict: " + e.Msg
}

// StateTransitionError is an attempted transition that is illegal for the
// booking's current status.
type StateTransitionError struct {
	From entity.BookingStatus
	To   entity.BookingStatus
	Op   string
}

func (e *StateTransitionError) Error() string {
	if e.To == "" {
		return fmt.Sprintf("cannot %s a booking in status %s", e.Op, e.From)
	}
	return fmt.Sprintf("cannot %s: transition %s -> %s is not allowed", e.Op, e.From, e.To)
}

// NotFoundError identifies a missing resource by kind and id.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func notFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}
