package service

import "errors"

var (
	// ErrInvalidReference is returned when a mutation names a record that
	// does not exist, such as an unknown media id.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrInUse is returned when deleting a record other records depend on.
	ErrInUse = errors.New("record is in use")
)
