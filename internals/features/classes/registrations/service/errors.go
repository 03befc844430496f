// Package service holds the class enrollment admission core: the
// decision whether a (student, class) registration may be created, and
// the transactional creation when it may.
package service

import "errors"

// Admission business errors. All are recoverable and user-facing.
var (
	// ErrMembershipExpired is returned when the student has no active,
	// unexpired membership. Checked first: a caller with an invalid
	// membership never learns whether the class is full.
	ErrMembershipExpired = errors.New("membership expired or missing")

	// ErrClassNotEligible covers cancelled, completed and past classes.
	ErrClassNotEligible = errors.New("class is not open for registration")

	// ErrClassFull is returned when registrations have reached capacity.
	ErrClassFull = errors.New("class is already full")

	// ErrNotRegistered is returned by Cancel when no registration exists.
	ErrNotRegistered = errors.New("not registered for this class")
)
