package mocks

import apperrors "github.com/bankim/content-admin/internal/core/errors"

var (
	// ErrContentItemNotFound is returned when an item id doesn't exist.
	ErrContentItemNotFound = apperrors.ErrContentItemNotFound
)
