package life

import (
	"errors"
	"fmt"
)

// Precondition failures. All recoverable; the HTTP adapter maps them to 4xx.
var (
	ErrAlreadyOwned           = errors.New("item already owned")
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrInsufficientAuthority  = errors.New("insufficient authority")
	ErrInsufficientPossession = errors.New("missing required possession")
)

// ErrBadCatalogData marks a misconfigured catalog row. It is a data bug, not
// a user error, and is surfaced separately from the precondition failures.
var ErrBadCatalogData = errors.New("malformed catalog item")

// PossessionError names the category whose requirement the player does not
// satisfy.
type PossessionError struct {
	Category Category
}

func (e *PossessionError) Error() string {
	return fmt.Sprintf("missing required possession: %s", e.Category)
}

func (e *PossessionError) Unwrap() error {
	return ErrInsufficientPossession
}

// DataError points at the catalog field that failed validation.
type DataError struct {
	Category Category
	ItemID   int64
	Field    string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("malformed catalog item %s/%d: field %s", e.Category, e.ItemID, e.Field)
}

func (e *DataError) Unwrap() error {
	return ErrBadCatalogData
}
