package errs

import (
	"errors"
	"fmt"
)

// ErrHook indicates that a lifecycle hook returned an error or panicked.
var ErrHook = errors.New("hook failed")

// NewError wraps an error with additional context fields for structured
// error reporting.
//
//   - errType: the base error to wrap.
//   - kv: key-value pairs providing additional context; may be nil.
//
// Returns an error that includes both the original error and the
// provided fields, matchable with errors.Is against errType.
func NewError(errType error, kv map[string]interface{}) error {
	if len(kv) == 0 {
		return fmt.Errorf("[memofn error], [%w]", errType)
	}
	var details string
	for k, v := range kv {
		switch val := v.(type) {
		case error:
			details += fmt.Sprintf("%s: %v; ", k, val.Error())
		default:
			details += fmt.Sprintf("%s: %v; ", k, val)
		}
	}
	return fmt.Errorf("[memofn error], [%w], details: [%s]", errType, details)
}
