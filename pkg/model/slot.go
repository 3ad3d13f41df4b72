package model

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/QAddict/ruix/internal/errors"
)

// Fielder is implemented by values that expose named slots themselves.
type Fielder interface {
	Field(name string) any
	SetField(name string, value any)
}

// Slot returns the value of the slot called name inside target, or nil when
// target is nil or has no such slot.
//
// Supported targets are Fielder implementations, maps with string keys,
// structs (exported field by name, json tag, or case-insensitive name) and
// slices or arrays (decimal index).
func Slot(target any, name string) any {
	switch t := target.(type) {
	case nil:
		return nil
	case Fielder:
		return t.Field(name)
	case map[string]any:
		return t[name]
	}

	rv := indirect(reflect.ValueOf(target))
	if !rv.IsValid() {
		return nil
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil
		}
		v := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !v.IsValid() {
			return nil
		}
		return v.Interface()
	case reflect.Struct:
		f := structField(rv, name)
		if !f.IsValid() {
			return nil
		}
		return f.Interface()
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(name)
		if err != nil || i < 0 || i >= rv.Len() {
			return nil
		}
		return rv.Index(i).Interface()
	}
	return nil
}

// SetSlot writes value into the slot called name inside target, in place.
// It returns an R003 error when target cannot be mutated that way.
func SetSlot(target any, name string, value any) error {
	switch t := target.(type) {
	case nil:
		return errors.New("R003").WithDetailf("cannot set %q on a nil value", name)
	case Fielder:
		t.SetField(name, value)
		return nil
	case map[string]any:
		if t == nil {
			return errors.New("R003").WithDetailf("cannot set %q on a nil map", name)
		}
		t[name] = value
		return nil
	}

	rv := indirect(reflect.ValueOf(target))
	if !rv.IsValid() {
		return errors.New("R003").WithDetailf("cannot set %q on a nil %T", name, target)
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		if rv.IsNil() {
			return errors.New("R003").WithDetailf("cannot set %q on a nil map", name)
		}
		v, err := assignable(rv.Type().Elem(), value)
		if err != nil {
			return err
		}
		rv.SetMapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()), v)
		return nil
	case reflect.Struct:
		f := structField(rv, name)
		if !f.IsValid() {
			return errors.New("R003").WithDetailf("%T has no field %q", target, name)
		}
		if !f.CanSet() {
			return errors.New("R003").WithDetailf("field %q of %T is not addressable, pass a pointer", name, target)
		}
		v, err := assignable(f.Type(), value)
		if err != nil {
			return err
		}
		f.Set(v)
		return nil
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(name)
		if err != nil || i < 0 || i >= rv.Len() {
			return errors.New("R003").WithDetailf("index %q out of range for %T", name, target)
		}
		el := rv.Index(i)
		if !el.CanSet() {
			return errors.New("R003").WithDetailf("element %q of %T is not addressable", name, target)
		}
		v, err := assignable(el.Type(), value)
		if err != nil {
			return err
		}
		el.Set(v)
		return nil
	}
	return errors.New("R003").WithDetailf("cannot set %q on %T", name, target)
}

// indirect follows pointers and interfaces down to the underlying value.
// It returns the zero Value for nil pointers.
func indirect(rv reflect.Value) reflect.Value {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

func structField(rv reflect.Value, name string) reflect.Value {
	rt := rv.Type()
	fallback := -1
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		if sf.Name == name {
			return rv.Field(i)
		}
		if tag, _, _ := strings.Cut(sf.Tag.Get("json"), ","); tag == name {
			return rv.Field(i)
		}
		if fallback < 0 && strings.EqualFold(sf.Name, name) {
			fallback = i
		}
	}
	if fallback >= 0 {
		return rv.Field(fallback)
	}
	return reflect.Value{}
}

func assignable(t reflect.Type, value any) (reflect.Value, error) {
	if value == nil {
		return reflect.Zero(t), nil
	}
	v := reflect.ValueOf(value)
	if v.Type().AssignableTo(t) {
		return v, nil
	}
	if isNumber(v.Kind()) && isNumber(t.Kind()) {
		return v.Convert(t), nil
	}
	if v.Kind() == t.Kind() && v.Type().ConvertibleTo(t) {
		return v.Convert(t), nil
	}
	return reflect.Value{}, errors.New("R003").WithDetailf("cannot assign %T to %s", value, t)
}

func isNumber(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
