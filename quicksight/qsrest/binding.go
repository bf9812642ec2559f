package qsrest

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

type member struct {
	index int
	name  string
}

// binding records where the members of an input type travel.
type binding struct {
	uri   []member
	query []member
	body  bool
}

var bindings sync.Map // reflect.Type -> *binding

func bind(in any) (reflect.Value, *binding, error) {
	v := reflect.ValueOf(in)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, nil, fmt.Errorf("input must be a non-nil struct pointer, got %T", in)
	}
	v = v.Elem()
	if b, ok := bindings.Load(v.Type()); ok {
		return v, b.(*binding), nil
	}
	b, _ := bindings.LoadOrStore(v.Type(), newBinding(v.Type()))
	return v, b.(*binding), nil
}

func newBinding(t reflect.Type) *binding {
	b := &binding{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		switch f.Tag.Get("location") {
		case "uri":
			b.uri = append(b.uri, member{index: i, name: f.Name})
		case "querystring":
			b.query = append(b.query, member{index: i, name: f.Tag.Get("name")})
		default:
			if name, _, _ := strings.Cut(f.Tag.Get("json"), ","); name != "-" {
				b.body = true
			}
		}
	}
	return b
}

// formatValue renders a path or query member. Unset members render as nothing.
func formatValue(v reflect.Value) []string {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return nil
		}
		return formatValue(v.Elem())
	case reflect.Slice:
		out := make([]string, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			out = append(out, formatValue(v.Index(i))...)
		}
		return out
	case reflect.String:
		if v.String() == "" {
			return nil
		}
		return []string{v.String()}
	case reflect.Int, reflect.Int32, reflect.Int64:
		return []string{strconv.FormatInt(v.Int(), 10)}
	case reflect.Bool:
		return []string{strconv.FormatBool(v.Bool())}
	}
	return nil
}

// setValue is the inverse of formatValue. Scalars take the first value.
func setValue(v reflect.Value, vals []string) error {
	if len(vals) == 0 {
		return nil
	}
	switch v.Kind() {
	case reflect.Pointer:
		elem := reflect.New(v.Type().Elem())
		if err := setValue(elem.Elem(), vals); err != nil {
			return err
		}
		v.Set(elem)
	case reflect.Slice:
		s := reflect.MakeSlice(v.Type(), len(vals), len(vals))
		for i, val := range vals {
			if err := setValue(s.Index(i), []string{val}); err != nil {
				return err
			}
		}
		v.Set(s)
	case reflect.String:
		v.SetString(vals[0])
	case reflect.Int, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(vals[0], 10, v.Type().Bits())
		if err != nil {
			return fmt.Errorf("%q is not an integer", vals[0])
		}
		v.SetInt(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(vals[0])
		if err != nil {
			return fmt.Errorf("%q is not a boolean", vals[0])
		}
		v.SetBool(b)
	default:
		return fmt.Errorf("unsupported member type %s", v.Type())
	}
	return nil
}
