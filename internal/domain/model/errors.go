package model

import "errors"

// Catalog validation errors.
var (
	ErrCatalogNoPacks           = errors.New("catalog defines no packs")
	ErrCatalogInvalidPack       = errors.New("catalog contains a pack with invalid capacity, shirt limit or price")
	ErrCatalogMissingUnitPrice  = errors.New("catalog is missing a unit price for a pack-eligible item")
	ErrCatalogInvalidUnitPrice  = errors.New("catalog contains a negative unit price")
	ErrCatalogMissingDefaultFee = errors.New("catalog delivery fee table has no default entry")
)
