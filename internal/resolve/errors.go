package resolve

import "errors"

var (
	// ErrUnknownNamespace means a resolver was requested for a namespace the
	// table does not know.
	ErrUnknownNamespace = errors.New("unknown namespace")

	// ErrClassNotMapped means the class has no entry for the namespace pair.
	ErrClassNotMapped = errors.New("class not mapped")

	// ErrMemberNotMapped means no field or method with that name was found.
	ErrMemberNotMapped = errors.New("member not mapped")

	// ErrDescriptorMismatch means methods with that name exist but none
	// takes the requested parameters.
	ErrDescriptorMismatch = errors.New("no overload matches descriptor")
)
