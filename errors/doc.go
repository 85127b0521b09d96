/*
Package errors provides semantic error types for the multikeydict library.

The package defines the library's error taxonomy with specific types that can
be checked using the standard errors.Is() function or the provided helper
functions.

Common Errors:

	var (
	    ErrUnknownType    = errors.New("unknown key type")
	    ErrKeyNotFound    = errors.New("key not found")
	    ErrEntityNotFound = errors.New("entity not found")
	    ErrKeyConflict    = errors.New("conflicting keys")
	    ErrConfiguration  = errors.New("invalid configuration")
	)

Usage:

	// Check error type
	v, err := c.GetBy(registry.ByName("stock_code"), "AAPL")
	if err != nil {
	    if errors.IsKeyNotFound(err) {
	        // Handle missing key
	        return nil, fmt.Errorf("no record for %q", "AAPL")
	    }
	    return nil, err
	}

	// Create typed errors
	err := errors.NewKeyNotFoundError("stock_code", "AAPL")
	err := errors.NewConfigurationError("types", "duplicate key type")

ErrEntityNotFound marks an internal-consistency violation: an entity id held
by the index without a corresponding value record. It is never expected in
correct operation.

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
