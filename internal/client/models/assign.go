package models

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

var ErrIncorrectAssignment = errors.New("assignment must be name=value")

// Assignment is a name=value pair typed on the command line.
type Assignment struct {
	Name  string
	Value string
}

// AssignmentsFromStrings parses name=value items. The value may itself
// contain '='.
func AssignmentsFromStrings(s []string) ([]Assignment, error) {
	data := make([]Assignment, len(s))
	for n, item := range s {
		name, value, ok := strings.Cut(item, "=")
		if !ok || name == "" {
			return nil, ErrIncorrectAssignment
		}
		data[n] = Assignment{Name: name, Value: value}
	}
	return data, nil
}

var textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

// Assign sets the fields of the struct pointed to by dst whose json names
// match the assignments. Pointer fields are allocated, so assigning into a
// patch marks exactly the named fields as present.
func Assign(dst any, items []Assignment) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("assign: expected pointer to struct, got %T", dst)
	}
	fields := jsonFields(rv.Elem())
	for _, a := range items {
		f, ok := fields[a.Name]
		if !ok {
			return fmt.Errorf("unknown field %q", a.Name)
		}
		if err := setValue(f, a.Value); err != nil {
			return fmt.Errorf("field %q: %w", a.Name, err)
		}
	}
	return nil
}

func jsonFields(v reflect.Value) map[string]reflect.Value {
	out := map[string]reflect.Value{}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		out[name] = v.Field(i)
	}
	return out
}

func setValue(f reflect.Value, raw string) error {
	if f.Kind() == reflect.Pointer {
		n := reflect.New(f.Type().Elem())
		if err := setValue(n.Elem(), raw); err != nil {
			return err
		}
		f.Set(n)
		return nil
	}
	if reflect.PointerTo(f.Type()).Implements(textUnmarshalerType) {
		return f.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(raw))
	}
	switch f.Kind() {
	case reflect.String:
		f.SetString(raw)
	case reflect.Int, reflect.Int64, reflect.Int32:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return err
		}
		f.SetInt(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		f.SetBool(b)
	default:
		return fmt.Errorf("unsupported kind %s", f.Kind())
	}
	return nil
}
