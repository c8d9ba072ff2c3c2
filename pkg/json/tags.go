package json

import (
	"reflect"
	"strings"
)

// fieldInfo is the parsed form of one struct field's `json:"..."` tag,
// shared by the reflect encoder (encoder.go) and the reflect decoder
// (unmarshal.go) so both agree on a field's wire name and options.
type fieldInfo struct {
	name      string
	omitEmpty bool
	asString  bool
	skip      bool
}

// parseTag parses a struct tag value in `name,option1,option2` form.
// A bare "-" skips the field entirely; an empty name before the comma
// (",omitempty") means "use the Go field name".
func parseTag(tag string) fieldInfo {
	info := fieldInfo{}

	if tag == "-" {
		info.name = "-"
		info.skip = true
		return info
	}

	parts := strings.Split(tag, ",")
	if len(parts) > 0 {
		info.name = parts[0]
	}

	for i := 1; i < len(parts); i++ {
		switch strings.TrimSpace(parts[i]) {
		case "omitempty":
			info.omitEmpty = true
		case "string":
			info.asString = true
		}
	}

	return info
}

// getFieldInfo reads field's json tag (if any) and fills in the Go field
// name as the default wire name when the tag doesn't override it.
func getFieldInfo(field reflect.StructField) fieldInfo {
	tag := field.Tag.Get("json")

	info := parseTag(tag)

	if info.name == "" && !info.skip {
		info.name = field.Name
	}

	return info
}

// isEmptyValue reports whether v counts as the zero value for omitempty
// purposes: the empty string/slice/map/array, a false bool, a zero number,
// or a nil pointer/interface.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	}
	return false
}
