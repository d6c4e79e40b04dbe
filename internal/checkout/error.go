package checkout

import "errors"

// ErrStoreInconsistency means the conditional insert was rejected but the
// record it supposedly conflicted with cannot be read back. The store broke
// its contract; this is fatal for the request, never retried here.
var ErrStoreInconsistency = errors.New("order store inconsistency: conditional create rejected but no order exists for cart")

// ValidationError is a caller-correctable input defect. Reason is safe to
// return to the client verbatim.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
