// Package values implements the value comparison and formatting shared by
// hyperparameter domains and condition evaluation.
package values

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Equal compares two hyperparameter values.
// Integers compare exactly regardless of their Go type, and an integral float
// equals the integer it represents. Other numbers compare as float64.
// Everything else uses deep equality, so "1" never equals 1.
func Equal(actual, expected any) bool {
	if actual == nil && expected == nil {
		return true
	}
	if actual == nil || expected == nil {
		return false
	}

	actualNum, actualOK := ToFloat64(actual)
	expectedNum, expectedOK := ToFloat64(expected)
	if actualOK != expectedOK {
		return false
	}
	if actualOK {
		a, aInt := toInteger(actual)
		e, eInt := toInteger(expected)
		if aInt && eInt {
			return a == e
		}
		return actualNum == expectedNum
	}

	return reflect.DeepEqual(actual, expected)
}

// Contains reports whether any element of values equals actual.
func Contains(values []any, actual any) bool {
	for _, v := range values {
		if Equal(actual, v) {
			return true
		}
	}
	return false
}

// ToFloat64 converts any Go numeric type to float64.
func ToFloat64(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint8:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	default:
		return 0, false
	}
}

// ToInt64 returns v as an int64 when it is an integer kind, or a float
// without fractional part, that fits in int64 without loss.
func ToInt64(v any) (int64, bool) {
	n, ok := toInteger(v)
	if !ok {
		return 0, false
	}
	if n.neg {
		if n.mag > 1<<63 {
			return 0, false
		}
		return int64(-n.mag), true
	}
	if n.mag > math.MaxInt64 {
		return 0, false
	}
	return int64(n.mag), true
}

// integer is an exact sign and magnitude. Zero is never negative.
type integer struct {
	neg bool
	mag uint64
}

func signed(i int64) integer {
	if i < 0 {
		return integer{neg: true, mag: uint64(-(i + 1)) + 1}
	}
	return integer{mag: uint64(i)}
}

// toInteger converts integer kinds exactly. Floats qualify only when they are
// finite, integral and within the uint64 magnitude range.
func toInteger(v any) (integer, bool) {
	switch val := v.(type) {
	case int:
		return signed(int64(val)), true
	case int8:
		return signed(int64(val)), true
	case int16:
		return signed(int64(val)), true
	case int32:
		return signed(int64(val)), true
	case int64:
		return signed(val), true
	case uint:
		return integer{mag: uint64(val)}, true
	case uint8:
		return integer{mag: uint64(val)}, true
	case uint16:
		return integer{mag: uint64(val)}, true
	case uint32:
		return integer{mag: uint64(val)}, true
	case uint64:
		return integer{mag: val}, true
	case float32:
		return floatInteger(float64(val))
	case float64:
		return floatInteger(val)
	default:
		return integer{}, false
	}
}

func floatInteger(f float64) (integer, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return integer{}, false
	}
	abs := math.Abs(f)
	if abs >= 1<<64 {
		return integer{}, false
	}
	return integer{neg: f < 0, mag: uint64(abs)}, true
}

// Format renders a value the way it appears in a condition string.
func Format(v any) string {
	return fmt.Sprintf("%v", v)
}

// FormatSet renders IN values as "{v1, v2, ...}" in construction order.
func FormatSet(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = Format(v)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Key is a canonical encoding of a value for structural hashing.
// Values that Equal treats as equal produce the same key.
func Key(v any) string {
	if v == nil {
		return "nil"
	}
	if n, ok := toInteger(v); ok {
		if n.neg {
			return "i:-" + strconv.FormatUint(n.mag, 10)
		}
		return "i:" + strconv.FormatUint(n.mag, 10)
	}
	if f, ok := ToFloat64(v); ok {
		return "f:" + strconv.FormatFloat(f, 'g', -1, 64)
	}
	switch val := v.(type) {
	case string:
		return "s:" + strconv.Quote(val)
	case bool:
		return "b:" + strconv.FormatBool(val)
	default:
		return fmt.Sprintf("v:%T:", v) + deepKey(reflect.ValueOf(v), 0)
	}
}

// maxKeyDepth bounds deepKey on self-referencing values.
const maxKeyDepth = 32

// deepKey encodes the contents of a value so that reflect.DeepEqual values
// encode identically. Pointers contribute what they point to, not addresses.
func deepKey(rv reflect.Value, depth int) string {
	if depth > maxKeyDepth {
		return "..."
	}
	switch rv.Kind() {
	case reflect.Invalid:
		return "nil"
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "nil"
		}
		prefix := "&"
		if rv.Kind() == reflect.Interface {
			prefix = rv.Elem().Type().String() + ":"
		}
		return prefix + deepKey(rv.Elem(), depth+1)
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return "nil"
		}
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = deepKey(rv.Index(i), depth+1)
		}
		return "[" + strings.Join(parts, ",") + "]"
	case reflect.Map:
		if rv.IsNil() {
			return "nil"
		}
		entries := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			entries = append(entries, deepKey(iter.Key(), depth+1)+":"+deepKey(iter.Value(), depth+1))
		}
		sort.Strings(entries)
		return "map[" + strings.Join(entries, ",") + "]"
	case reflect.Struct:
		parts := make([]string, rv.NumField())
		for i := range parts {
			parts[i] = deepKey(rv.Field(i), depth+1)
		}
		return "{" + strings.Join(parts, ",") + "}"
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return formatFloat(rv.Float())
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		return "(" + formatFloat(real(c)) + "," + formatFloat(imag(c)) + ")"
	case reflect.String:
		return strconv.Quote(rv.String())
	default:
		// Funcs, channels and unsafe pointers are only deeply equal when
		// identical, so their identity is the key.
		return fmt.Sprintf("%s@%x", rv.Kind(), rv.Pointer())
	}
}

// formatFloat folds -0 into 0, since they compare equal.
func formatFloat(f float64) string {
	if f == 0 {
		f = 0
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
