package asset

import "errors"

var (
	ErrDuplicateID      = errors.New("asset id already exists")
	ErrCategoryRejected = errors.New("category rejected by assets table constraint")
)
