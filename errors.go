package extent

import (
	"fmt"
	"reflect"

	"github.com/vdobler/extent/data"
)

// ErrInvalidArgument is wrapped by all errors reporting a violated call
// contract: a nil dataset, a nil key list where one is required, a series
// or group index out of range. Degenerate data is never an error.
var ErrInvalidArgument = data.ErrInvalidArgument

func invalid(format string, args ...any) error {
	return fmt.Errorf("extent: %w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// isNil reports whether v is nil or an interface holding a nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
