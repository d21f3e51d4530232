package event

import "errors"

var (
	ErrMissingUserID = errors.New("user_id is required")
	ErrInvalidRange  = errors.New("from must be before to")
)
