package json

import (
	"errors"
	"strconv"
	"time"
)

// errNeedReflect signals that appendInterface's type switch didn't
// recognize v's concrete type, so the caller should fall back to the
// reflect-based encoder cache in encoder.go.
var errNeedReflect = errors.New("need reflect")

// appendInterface is Marshal's fast path: a type switch over the concrete
// types a decoded JSON value (or a hand-built Go literal) is most likely
// to be, sidestepping reflect for all of them.
//
// Returns errNeedReflect for anything the switch doesn't cover.
func appendInterface(buf []byte, v interface{}) ([]byte, error) {
	switch val := v.(type) {
	case nil:
		return append(buf, "null"...), nil
	case bool:
		if val {
			return append(buf, "true"...), nil
		}
		return append(buf, "false"...), nil
	case string:
		buf = append(buf, '"')
		buf = appendEscapedString(buf, val)
		buf = append(buf, '"')
		return buf, nil
	case int:
		return strconv.AppendInt(buf, int64(val), 10), nil
	case int8:
		return strconv.AppendInt(buf, int64(val), 10), nil
	case int16:
		return strconv.AppendInt(buf, int64(val), 10), nil
	case int32:
		return strconv.AppendInt(buf, int64(val), 10), nil
	case int64:
		return strconv.AppendInt(buf, val, 10), nil
	case uint:
		return strconv.AppendUint(buf, uint64(val), 10), nil
	case uint8:
		return strconv.AppendUint(buf, uint64(val), 10), nil
	case uint16:
		return strconv.AppendUint(buf, uint64(val), 10), nil
	case uint32:
		return strconv.AppendUint(buf, uint64(val), 10), nil
	case uint64:
		return strconv.AppendUint(buf, val, 10), nil
	case float32:
		return strconv.AppendFloat(buf, float64(val), 'g', -1, 32), nil
	case float64:
		return strconv.AppendFloat(buf, float64(val), 'g', -1, 64), nil
	case time.Time:
		buf = append(buf, '"')
		buf = val.AppendFormat(buf, time.RFC3339Nano)
		buf = append(buf, '"')
		return buf, nil
	case time.Duration:
		buf = append(buf, '"')
		buf = appendISO8601Duration(buf, val)
		buf = append(buf, '"')
		return buf, nil
	case []interface{}:
		if val == nil {
			return append(buf, "null"...), nil
		}
		buf = append(buf, '[')
		for i, elem := range val {
			if i > 0 {
				buf = append(buf, ',')
			}
			var err error
			buf, err = appendInterface(buf, elem)
			if err != nil {
				return buf, err
			}
		}
		buf = append(buf, ']')
		return buf, nil
	case map[string]interface{}:
		buf = append(buf, '{')
		// Object member order carries no meaning, so keys are sorted for
		// a deterministic encoding, same as renderObject in render.go.
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sortStrings(keys)
		for i, k := range keys {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = append(buf, '"')
			buf = appendEscapedString(buf, k)
			buf = append(buf, '"', ':')
			var err error
			buf, err = appendInterface(buf, val[k])
			if err != nil {
				return buf, err
			}
		}
		buf = append(buf, '}')
		return buf, nil
	case Marshaler:
		b, err := val.MarshalJSON()
		if err != nil {
			return buf, err
		}
		return append(buf, b...), nil
	default:
		return buf, errNeedReflect
	}
}

// sortStrings sorts s in place with a plain insertion sort. Map key counts
// in typical JSON objects are small enough that this beats sort.Strings'
// interface-dispatch overhead.
func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		key := s[i]
		j := i - 1
		for j >= 0 && s[j] > key {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = key
	}
}

// appendISO8601Duration renders d as an ISO 8601 duration (e.g.
// "PT1H30M5.5S") straight into buf.
func appendISO8601Duration(buf []byte, d time.Duration) []byte {
	if d == 0 {
		return append(buf, "PT0S"...)
	}

	buf = append(buf, 'P')

	if d < 0 {
		// ISO 8601 has no standard negative-duration form; '-' here is
		// this encoder's own extension, undone nowhere since nothing
		// in this tree parses ISO 8601 durations back in.
		buf = append(buf, '-')
		d = -d
	}

	hours := int64(d / time.Hour)
	d -= time.Duration(hours) * time.Hour
	minutes := int64(d / time.Minute)
	d -= time.Duration(minutes) * time.Minute

	buf = append(buf, 'T')

	if hours > 0 {
		buf = strconv.AppendInt(buf, hours, 10)
		buf = append(buf, 'H')
	}
	if minutes > 0 {
		buf = strconv.AppendInt(buf, minutes, 10)
		buf = append(buf, 'M')
	}

	secs := d.Seconds()
	if secs > 0 || (hours == 0 && minutes == 0) {
		if d%time.Second == 0 {
			buf = strconv.AppendInt(buf, int64(d/time.Second), 10)
		} else {
			buf = strconv.AppendFloat(buf, secs, 'f', -1, 64)
		}
		buf = append(buf, 'S')
	}

	return buf
}
