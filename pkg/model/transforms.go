package model

import (
	"math"
	"reflect"
)

// To maps truthy values to trueValue and falsy ones to falseValue.
func To(trueValue, falseValue any) func(any) any {
	return func(v any) any {
		if Truthy(v) {
			return trueValue
		}
		return falseValue
	}
}

// FalseTo maps falsy values to falseValue and truthy ones to nil.
func FalseTo(falseValue any) func(any) any {
	return To(nil, falseValue)
}

// Negate returns the boolean negation of v's truthiness.
func Negate(v any) any {
	return !Truthy(v)
}

// Invert returns the arithmetic negation of a numeric v. Non-numeric values
// are returned unchanged.
func Invert(v any) any {
	switch n := v.(type) {
	case int:
		return -n
	case int8:
		return -n
	case int16:
		return -n
	case int32:
		return -n
	case int64:
		return -n
	case float32:
		return -n
	case float64:
		return -n
	}
	return v
}

// Truthy reports whether v counts as true: nil, false, numeric zero, NaN,
// the empty string and nil pointers, maps and slices are false.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0 && !math.IsNaN(t)
	case float32:
		return t != 0 && !math.IsNaN(float64(t))
	case int:
		return t != 0
	case int64:
		return t != 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}
