package artifact

import "errors"

// Classification aborts with one of these errors before any feature
// computation starts; a partial annotation grid is never returned.
var (
	// ErrMissingSampleRate reports a call without a positive sampling rate.
	ErrMissingSampleRate = errors.New("artifact: sampling rate is required")

	// ErrInsufficientLength reports a signal shorter than one second.
	ErrInsufficientLength = errors.New("artifact: signal shorter than one second")

	// ErrUnknownMethod reports an unrecognized classification method.
	ErrUnknownMethod = errors.New("artifact: unknown method")

	// ErrModelLoad reports that the persisted decision-tree model store
	// could not be resolved.
	ErrModelLoad = errors.New("artifact: decision-tree model unavailable")

	// ErrInvalidParameter reports a tuning override outside its valid range.
	ErrInvalidParameter = errors.New("artifact: invalid parameter")
)
