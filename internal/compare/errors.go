package compare

import "errors"

// ErrInvalidPrecondition marks malformed comparison input: a row with no
// resolvable identifier, or duplicate identifiers that classify to
// conflicting stages. The caller decides how to recover; the core only
// refuses to produce a misleading count.
var ErrInvalidPrecondition = errors.New("invalid comparison precondition")
