package formatter

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Message renders the %m token body: every argument stringified and
// joined with single spaces.
func Message(args []any) string {
	switch len(args) {
	case 0:
		return ""
	case 1:
		return stringify(args[0])
	}

	var b strings.Builder
	for i, arg := range args {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(stringify(arg))
	}
	return b.String()
}

// stringify converts a single argument to its output form. Composite
// values are serialized as JSON; a value the encoder rejects (cycles,
// channels inside maps, ...) degrades to the Type(key,key) fallback
// instead of failing the log call. A panicking Error or String method
// degrades the same way, so rendering never propagates a panic.
func stringify(v any) (out string) {
	if v == nil {
		return "[null]"
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		if rv.IsNil() {
			return "[undefined]"
		}
	}

	defer func() {
		if recover() != nil {
			out = fallbackString(v)
		}
	}()

	switch t := v.(type) {
	case string:
		return t
	case error:
		return t.Error()
	case fmt.Stringer:
		return t.String()
	}

	if isComposite(rv) {
		if b, err := json.Marshal(v); err == nil {
			return string(b)
		}
		return fallbackString(v)
	}

	return fmt.Sprint(v)
}

// isComposite reports whether the value is object-like and should go
// through JSON serialization rather than fmt.
func isComposite(rv reflect.Value) bool {
	k := rv.Kind()
	if k == reflect.Ptr {
		k = rv.Type().Elem().Kind()
	}
	switch k {
	case reflect.Map, reflect.Struct, reflect.Slice, reflect.Array:
		return true
	}
	return false
}

// fallbackString renders a value that failed serialization as
// "TypeName(key,key,...)": exported field names for structs, sorted
// keys for maps.
func fallbackString(v any) string {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr && !rv.IsNil() {
		rv = rv.Elem()
	}
	t := rv.Type()

	name := t.Name()
	if name == "" {
		name = t.String()
	}

	var keys []string
	switch rv.Kind() {
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if f := t.Field(i); f.IsExported() {
				keys = append(keys, f.Name)
			}
		}
	case reflect.Map:
		for _, k := range rv.MapKeys() {
			keys = append(keys, fmt.Sprint(k.Interface()))
		}
		sort.Strings(keys)
	}

	return name + "(" + strings.Join(keys, ",") + ")"
}
