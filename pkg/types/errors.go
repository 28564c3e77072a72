package types

import "errors"

var (
	ErrLifeGroupNotFound = errors.New("life group not found")
	ErrSermonNotFound    = errors.New("sermon not found")
)
