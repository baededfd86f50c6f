package domain

import "errors"

var (
	ErrInvalidProduct   = errors.New("product requires identifier and non-negative price")
	ErrNotFound         = errors.New("not found")
	ErrFolderNotFound   = errors.New("wishlist folder not found")
	ErrDuplicateProduct = errors.New("product already in folder")
	ErrEmptyQuery       = errors.New("search query is empty")
)
