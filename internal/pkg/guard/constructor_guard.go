// Package guard provides the constructor-guard pattern used across the
// application layer. Command and query value objects embed a ConstructorGuard
// so that handlers can reject zero-value instances that bypassed the
// designated constructor and its validation rules.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate() when
// the caller passes a nil validation error. Validation of an unconstructed
// object always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor function. A zero-value struct carries a zero-value guard and
// fails validation, which lets handlers distinguish properly built commands
// and queries from accidental literals.
//
// Example usage:
//
//	type ListGroupsQuery struct {
//	    guard guard.ConstructorGuard
//	}
//
//	func NewListGroupsQuery() ListGroupsQuery {
//	    return ListGroupsQuery{guard: guard.NewConstructorGuard()}
//	}
//
//	func (q ListGroupsQuery) Validate() error {
//	    return q.guard.Validate(errListGroupsQueryNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its holder as properly
// constructed. Call it in every constructor of a guarded object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the guarded object went through its constructor.
//
// Returns nil for a constructed object. For a zero-value guard it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
