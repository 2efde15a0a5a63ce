// Package faults is the error taxonomy shared by the production services.
// Validation and capacity problems are rejected before any write and carry
// the requested-vs-available detail the UI surfaces to the user.
package faults

import (
	"errors"
	"fmt"
	"net/http"
)

type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

func Validation(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// CapacityError: the request exceeds what the farm currently holds
// (mortality count vs live animals, stock removal vs current quantity).
type CapacityError struct {
	Ressource  string
	Demande    float64
	Disponible float64
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: %g demande, %g disponible", e.Ressource, e.Demande, e.Disponible)
}

func Capacity(ressource string, demande, disponible float64) *CapacityError {
	return &CapacityError{Ressource: ressource, Demande: demande, Disponible: disponible}
}

type NotFoundError struct {
	Entite string
	Ref    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s introuvable: %s", e.Entite, e.Ref)
}

func NotFound(entite, ref string) *NotFoundError {
	return &NotFoundError{Entite: entite, Ref: ref}
}

// HTTPStatus maps a service error onto the status the controllers answer with.
func HTTPStatus(err error) int {
	var v *ValidationError
	var c *CapacityError
	var n *NotFoundError
	switch {
	case errors.As(err, &v):
		return http.StatusBadRequest
	case errors.As(err, &n):
		return http.StatusNotFound
	case errors.As(err, &c):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
