// Package service holds the payment reconciliation core: it turns a
// verified gateway transaction into a payment audit row plus a
// time-bounded membership.
package service

import "errors"

// Reconciliation business errors. All are recoverable and user-facing,
// the controller maps each one to an HTTP status.
var (
	// ErrNoReference is returned when the callback carries no reference.
	ErrNoReference = errors.New("no transaction reference provided")

	// ErrDuplicateActiveMembership is returned when the user already holds
	// an active, unexpired membership. The gateway is not contacted.
	ErrDuplicateActiveMembership = errors.New("user already has an active membership")

	// ErrReferenceAlreadyUsed is returned when a reference was reconciled
	// before. Replayed callbacks must not grant a second membership.
	ErrReferenceAlreadyUsed = errors.New("transaction reference already reconciled")

	// ErrPaymentNotSuccessful is returned when the gateway reports the
	// transaction as anything other than successful.
	ErrPaymentNotSuccessful = errors.New("payment failed or could not be verified")

	// ErrInsufficientAmount is returned when the paid amount is below the
	// minimum membership price.
	ErrInsufficientAmount = errors.New("payment amount is insufficient")

	// ErrDurationExceeded is returned when the paid amount maps to more
	// than the maximum membership duration.
	ErrDurationExceeded = errors.New("maximum membership duration is 12 months")

	// ErrGatewayUnavailable is returned when the gateway cannot be reached
	// or times out.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)
