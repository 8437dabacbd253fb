package models

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// ErrNotRecord is returned by Dump when given something other than a model record
var ErrNotRecord = errors.New("not a metadata record")

// Field is a single key and value of a Mapping
type Field struct {
	Key   string
	Value interface{}
}

// Mapping is an ordered set of fields, the plain form of a record
type Mapping []Field

// Get returns the value stored under key
func (m Mapping) Get(key string) (interface{}, bool) {
	for _, f := range m {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Keys returns the keys of m in order
func (m Mapping) Keys() []string {
	keys := make([]string, len(m))
	for i, f := range m {
		keys[i] = f.Key
	}
	return keys
}

// MarshalJSON writes m as a JSON object with its keys in order
func (m Mapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalUnescaped(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := marshalUnescaped(f.Value)
		if err != nil {
			return nil, errors.Wrapf(err, "field %s", f.Key)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalUnescaped(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

type validator interface {
	Validate() error
}

var validatorType = reflect.TypeOf((*validator)(nil)).Elem()

// Dump flattens a record into a Mapping. Field order follows the struct
// declaration and every exported field is present; unset optional fields are
// nil. Enumerations become plain strings, and values JSON cannot represent
// natively (identifiers, dates, timestamps, URLs) are left as they are.
// Enumeration and language values are validated on the way.
func Dump(record interface{}) (Mapping, error) {
	v := reflect.ValueOf(record)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, errors.Wrap(ErrNotRecord, "nil")
		}
		v = v.Elem()
	}
	if !v.IsValid() || !isRecord(v.Type()) {
		return nil, errors.Wrapf(ErrNotRecord, "%T", record)
	}
	return dumpRecord(v)
}

// isRecord reports whether t is a struct whose fields carry json tags
func isRecord(t reflect.Type) bool {
	if t.Kind() != reflect.Struct {
		return false
	}
	for i := 0; i < t.NumField(); i++ {
		if _, ok := t.Field(i).Tag.Lookup("json"); ok {
			return true
		}
	}
	return false
}

func fieldKey(f reflect.StructField) string {
	if f.PkgPath != "" {
		return ""
	}
	name := strings.Split(f.Tag.Get("json"), ",")[0]
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

func dumpRecord(v reflect.Value) (Mapping, error) {
	t := v.Type()
	m := make(Mapping, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		key := fieldKey(t.Field(i))
		if key == "" {
			continue
		}
		val, err := dumpValue(v.Field(i))
		if err != nil {
			return nil, errors.Wrapf(err, "%s.%s", t.Name(), key)
		}
		m = append(m, Field{Key: key, Value: val})
	}
	return m, nil
}

func dumpValue(v reflect.Value) (interface{}, error) {
	if v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, nil
		}
		return dumpValue(v.Elem())
	}

	if v.Type().Implements(validatorType) {
		if err := v.Interface().(validator).Validate(); err != nil {
			return nil, err
		}
	}

	switch v.Kind() {
	case reflect.Struct:
		if isRecord(v.Type()) {
			return dumpRecord(v)
		}
		return v.Interface(), nil
	case reflect.Slice:
		if v.IsNil() {
			return nil, nil
		}
		list := make([]interface{}, v.Len())
		for i := range list {
			item, err := dumpValue(v.Index(i))
			if err != nil {
				return nil, errors.Wrapf(err, "[%d]", i)
			}
			list[i] = item
		}
		return list, nil
	case reflect.String:
		if v.Len() == 0 && v.Type().Implements(validatorType) {
			return nil, nil
		}
		return v.String(), nil
	case reflect.Bool:
		return v.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint(), nil
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	}
	return v.Interface(), nil
}
