package models

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// fieldMaps caches JSON tag -> struct field index mappings per type.
var fieldMaps sync.Map

func jsonFieldMap(t reflect.Type) map[string]int {
	if m, ok := fieldMaps.Load(t); ok {
		return m.(map[string]int)
	}
	m := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		m[strings.Split(tag, ",")[0]] = i
	}
	actual, _ := fieldMaps.LoadOrStore(t, m)
	return actual.(map[string]int)
}

// UnmarshalJSON accepts both string-encoded and native JSON numbers. The
// FACEIT match stats endpoint reports every stat as a quoted string.
func (s *PlayerStats) UnmarshalJSON(data []byte) error {
	// Alias prevents infinite recursion
	type Alias PlayerStats
	a := (*Alias)(s)

	// Fast path: works when all types match natively
	if err := json.Unmarshal(data, a); err == nil {
		return nil
	}

	*s = PlayerStats{}
	return flexUnmarshal(data, reflect.ValueOf(a).Elem())
}

// flexUnmarshal decodes a JSON object field by field into v, coercing
// string values into numeric or bool fields. Values that cannot be coerced
// leave the field at its zero value.
func flexUnmarshal(data []byte, v reflect.Value) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("flex unmarshal: %w", err)
	}

	fieldMap := jsonFieldMap(v.Type())
	for key, rawVal := range raw {
		idx, ok := fieldMap[key]
		if !ok {
			continue
		}

		fv := v.Field(idx)
		if !fv.CanSet() {
			continue
		}

		ptr := reflect.New(fv.Type())
		if err := json.Unmarshal(rawVal, ptr.Interface()); err == nil {
			fv.Set(ptr.Elem())
			continue
		}

		if len(rawVal) > 1 && rawVal[0] == '"' {
			var str string
			if err := json.Unmarshal(rawVal, &str); err != nil {
				continue
			}
			if str = strings.TrimSpace(str); str == "" {
				continue
			}
			coerceStringToField(fv, str)
		}
	}

	return nil
}

// coerceStringToField converts a string value to the field's native type.
func coerceStringToField(fv reflect.Value, s string) {
	switch fv.Kind() {
	case reflect.Float32, reflect.Float64:
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			fv.SetFloat(n)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		// ParseFloat handles "1.0" -> 1
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			fv.SetInt(int64(n))
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if n, err := strconv.ParseFloat(s, 64); err == nil && n >= 0 {
			fv.SetUint(uint64(n))
		}
	case reflect.Bool:
		if b, err := strconv.ParseBool(s); err == nil {
			fv.SetBool(b)
		}
	case reflect.String:
		fv.SetString(s)
	}
}
