/*
Package errors provides semantic error types for the ripple library.

The package defines the error scenarios of the association layer with specific
types that can be checked using the standard errors.Is() function or the
provided helper functions.

Common Errors:

	var (
	    ErrUnresolvedType    = errors.New("document type not registered")
	    ErrAssociationType   = errors.New("invalid association value")
	    ErrNotFound          = errors.New("document not found")
	    ErrAlreadyRegistered = errors.New("already registered")
	)

Usage:

	// Check error type
	if err := mgr.Replace("account", value); err != nil {
	    if errors.IsAssociationType(err) {
	        // the value did not match the association's target type;
	        // the association's cached value is unchanged
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewUnresolvedTypeError("Account")
	err := errors.NewAssociationTypeError("account", "Customer", "Account", "Order")

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
