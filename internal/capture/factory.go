package capture

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/enrichgo/enrich/core"
	"github.com/enrichgo/enrich/selflog"
)

// Null is a sentinel for nil values that renders as "nil" in strings but
// null in JSON.
type Null struct{}

// String returns "nil" for Go-idiomatic string representation.
func (Null) String() string { return "nil" }

// MarshalJSON returns JSON null.
func (Null) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// PropertyFactory is the default implementation of
// core.LogEventPropertyFactory. Non-destructured values pass through as
// scalars or render to flat strings; destructured values are decomposed with
// reflection, bounded by depth and size limits.
type PropertyFactory struct {
	maxDepth           int
	maxStringLength    int
	maxCollectionCount int
}

// NewPropertyFactory creates a factory with default limits.
func NewPropertyFactory() *PropertyFactory {
	return &PropertyFactory{
		maxDepth:           5,
		maxStringLength:    1000,
		maxCollectionCount: 100,
	}
}

// NewPropertyFactoryWithLimits creates a factory with custom limits.
func NewPropertyFactoryWithLimits(maxDepth, maxStringLength, maxCollectionCount int) *PropertyFactory {
	return &PropertyFactory{
		maxDepth:           maxDepth,
		maxStringLength:    maxStringLength,
		maxCollectionCount: maxCollectionCount,
	}
}

// CreateProperty builds a log event property from the given name and value.
func (f *PropertyFactory) CreateProperty(name string, value any, destructure bool) (prop *core.LogEventProperty, err error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("capture: property name must not be empty")
	}

	// Conversion walks arbitrary user types; a panic falls back to the
	// flat rendering rather than escaping to the caller.
	defer func() {
		if r := recover(); r != nil {
			if selflog.IsEnabled() {
				selflog.Printf("[capture] panic converting value: %v (type=%T)", r, value)
			}
			prop = &core.LogEventProperty{Name: name, Value: fmt.Sprintf("%T(%v)", value, value)}
			err = nil
		}
	}()

	if value == nil {
		return &core.LogEventProperty{Name: name, Value: Null{}}, nil
	}

	if lv, ok := value.(core.LogValue); ok {
		value = f.safeLogValue(lv, value)
		if value == nil {
			return &core.LogEventProperty{Name: name, Value: Null{}}, nil
		}
	}

	if destructure {
		return &core.LogEventProperty{Name: name, Value: f.decompose(reflect.ValueOf(value), 0)}, nil
	}
	return &core.LogEventProperty{Name: name, Value: f.flatten(value)}, nil
}

// safeLogValue invokes LogValue, keeping the original value if it panics.
func (f *PropertyFactory) safeLogValue(lv core.LogValue, original any) (result any) {
	defer func() {
		if r := recover(); r != nil {
			if selflog.IsEnabled() {
				selflog.Printf("[capture] LogValue() panicked: %v (type=%T)", r, original)
			}
			result = original
		}
	}()
	return lv.LogValue()
}

// flatten keeps basic kinds as scalars and renders everything else to a
// flat string.
func (f *PropertyFactory) flatten(value any) any {
	switch v := value.(type) {
	case bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64,
		time.Time, time.Duration:
		return v
	case string:
		return f.truncate(v)
	case []byte:
		return f.bytesValue(v)
	case error:
		return f.truncate(v.Error())
	case fmt.Stringer:
		return f.truncate(v.String())
	default:
		return f.truncate(fmt.Sprintf("%v", value))
	}
}

// decompose converts a value into a structured representation: maps for
// structs and maps, slices of converted elements for sequences.
func (f *PropertyFactory) decompose(rv reflect.Value, depth int) any {
	if !rv.IsValid() {
		return Null{}
	}
	if depth > f.maxDepth {
		return f.truncate(fmt.Sprintf("%v", rv.Interface()))
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null{}
		}
		return f.decompose(rv.Elem(), depth)

	case reflect.Struct:
		if t, ok := rv.Interface().(time.Time); ok {
			return t
		}
		fields := make(map[string]any, rv.NumField())
		rt := rv.Type()
		for i := 0; i < rt.NumField(); i++ {
			sf := rt.Field(i)
			if !sf.IsExported() {
				continue
			}
			fields[sf.Name] = f.decompose(rv.Field(i), depth+1)
		}
		return fields

	case reflect.Map:
		m := make(map[string]any, rv.Len())
		count := 0
		iter := rv.MapRange()
		for iter.Next() {
			if count >= f.maxCollectionCount {
				break
			}
			m[fmt.Sprint(iter.Key().Interface())] = f.decompose(iter.Value(), depth+1)
			count++
		}
		return m

	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			// Byte slices render as text or base64 rather than one
			// element per byte.
			return f.bytesValue(rv.Bytes())
		}
		n := rv.Len()
		limit := n
		if limit > f.maxCollectionCount {
			limit = f.maxCollectionCount
		}
		elems := make([]any, 0, limit)
		for i := 0; i < limit; i++ {
			elems = append(elems, f.decompose(rv.Index(i), depth+1))
		}
		if limit < n {
			elems = append(elems, fmt.Sprintf("... (%d total)", n))
		}
		return elems

	case reflect.String:
		return f.truncate(rv.String())

	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return rv.Interface()

	default:
		return f.truncate(fmt.Sprintf("%v", rv.Interface()))
	}
}

// bytesValue renders printable UTF-8 byte slices as text and binary data
// as base64, the forms a structured sink expects.
func (f *PropertyFactory) bytesValue(b []byte) any {
	if utf8.Valid(b) && bytes.IndexByte(b, 0) < 0 {
		return f.truncate(string(b))
	}
	return base64.StdEncoding.EncodeToString(b)
}

func (f *PropertyFactory) truncate(s string) string {
	if f.maxStringLength > 0 && len(s) > f.maxStringLength {
		return s[:f.maxStringLength] + "..."
	}
	return s
}

// MarshalAsJSON is a debug helper rendering a converted value the way a
// structured sink would serialize it.
func MarshalAsJSON(value any) (string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("capture: marshal failed: %w", err)
	}
	return string(data), nil
}
