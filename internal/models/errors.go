package models

import "errors"

// Sentinel errors shared by both services. Handlers map these to HTTP
// status codes; everything else surfaces as a 500.
var (
	// ErrUnknownProduct: the product name is not in the catalog/ledger.
	ErrUnknownProduct = errors.New("unknown product")

	// ErrInvalidInput: a negative stock level or non-positive quantity.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSupplierUnreachable: a cross-service call failed or timed out.
	// Callers treat a timeout identically to any other transport failure.
	ErrSupplierUnreachable = errors.New("supplier unreachable")
)
