// Package describe renders shapes as short diagnostic strings: only members that
// are set are listed, and members tagged `sensitive:"true"` are redacted.
package describe

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"
)

const redacted = "*** Sensitive Data Redacted ***"

var timeType = reflect.TypeOf(time.Time{})

// String returns the diagnostic form of v.
func String(v any) string {
	var b strings.Builder
	write(&b, reflect.ValueOf(v))
	return b.String()
}

func write(b *strings.Builder, v reflect.Value) {
	if !v.IsValid() {
		b.WriteString("<nil>")
		return
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			b.WriteString("<nil>")
			return
		}
		write(b, v.Elem())
	case reflect.Struct:
		if t, ok := asTime(v); ok {
			b.WriteString(t.UTC().Format(time.RFC3339))
			return
		}
		writeStruct(b, v)
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8 {
			fmt.Fprintf(b, "<%d bytes>", v.Len())
			return
		}
		b.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			write(b, v.Index(i))
		}
		b.WriteByte(']')
	case reflect.Map:
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%v: ", k.Interface())
			write(b, v.MapIndex(k))
		}
		b.WriteByte('}')
	default:
		fmt.Fprintf(b, "%v", v.Interface())
	}
}

func writeStruct(b *strings.Builder, v reflect.Value) {
	t := v.Type()
	b.WriteByte('{')
	n := 0
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := v.Field(i)
		if isUnset(fv) {
			continue
		}
		if n > 0 {
			b.WriteString(", ")
		}
		n++
		b.WriteString(f.Name)
		b.WriteString(": ")
		if f.Tag.Get("sensitive") == "true" {
			b.WriteString(redacted)
			continue
		}
		write(b, fv)
	}
	b.WriteByte('}')
}

func isUnset(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		return v.IsNil()
	case reflect.String:
		return v.Len() == 0
	}
	return false
}

// asTime recognises time.Time and structs that embed it.
func asTime(v reflect.Value) (time.Time, bool) {
	if v.Type() == timeType {
		return v.Interface().(time.Time), true
	}
	if v.NumField() > 0 {
		f := v.Type().Field(0)
		if f.Anonymous && f.Type == timeType {
			return v.Field(0).Interface().(time.Time), true
		}
	}
	return time.Time{}, false
}
