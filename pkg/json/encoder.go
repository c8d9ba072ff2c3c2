package json

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

// encoderFunc appends the JSON encoding of rv to buf, returning the extended buffer.
type encoderFunc func(buf []byte, rv reflect.Value) ([]byte, error)

// encoderCache holds one compiled encoderFunc per reflect.Type ever passed
// to Marshal, so repeated calls for the same struct/map/slice shape skip
// re-deriving its encoding plan. Reads go through atomic.Value so the
// common case (type already cached) never takes a lock; encoderMu only
// serializes the rare cache-miss writers against each other.
var encoderCache atomic.Value // holds map[reflect.Type]encoderFunc
var encoderMu sync.Mutex

func init() {
	encoderCache.Store(make(map[reflect.Type]encoderFunc))
}

var (
	marshalerType = reflect.TypeOf((*Marshaler)(nil)).Elem()
	timeType      = reflect.TypeOf(time.Time{})
	durationType  = reflect.TypeOf(time.Duration(0))
)

// encoderForType returns the cached encoder for t, building and caching
// one first if this is the first time t has been seen.
func encoderForType(t reflect.Type) encoderFunc {
	m := encoderCache.Load().(map[reflect.Type]encoderFunc)
	if enc, ok := m[t]; ok {
		return enc
	}

	encoderMu.Lock()

	m = encoderCache.Load().(map[reflect.Type]encoderFunc)
	if enc, ok := m[t]; ok {
		encoderMu.Unlock()
		return enc
	}

	// A self-referential type (a struct with a field of its own type,
	// reached through a pointer or slice) would otherwise recurse into
	// encoderForType(t) again before the real encoder is ready. Publish a
	// placeholder that blocks on wg until buildEncoder finishes, so the
	// recursive lookup gets a working (if momentarily blocked) encoder
	// instead of rebuilding forever.
	var wg sync.WaitGroup
	wg.Add(1)
	var realEnc encoderFunc
	placeholder := func(buf []byte, rv reflect.Value) ([]byte, error) {
		wg.Wait()
		return realEnc(buf, rv)
	}

	newM := make(map[reflect.Type]encoderFunc, len(m)+1)
	for k, v := range m {
		newM[k] = v
	}
	newM[t] = placeholder
	encoderCache.Store(newM)
	encoderMu.Unlock()

	realEnc = buildEncoder(t)

	encoderMu.Lock()
	m = encoderCache.Load().(map[reflect.Type]encoderFunc)
	newM2 := make(map[reflect.Type]encoderFunc, len(m))
	for k, v := range m {
		newM2[k] = v
	}
	newM2[t] = realEnc
	encoderCache.Store(newM2)
	encoderMu.Unlock()
	wg.Done()

	return realEnc
}

// buildEncoder derives the encoding strategy for t: a Marshaler hook if t
// (or *t) implements one, a dedicated encoder for time.Time/time.Duration,
// otherwise a strategy keyed on t's reflect.Kind.
func buildEncoder(t reflect.Type) encoderFunc {
	if t.Implements(marshalerType) {
		return marshalerEnc
	}
	if t.Kind() != reflect.Ptr && reflect.PointerTo(t).Implements(marshalerType) {
		return buildAddrMarshalerEnc(t)
	}

	if t == timeType {
		return timeEnc
	}
	if t == durationType {
		return durationEnc
	}

	switch t.Kind() {
	case reflect.Ptr:
		return buildPtrEncoder(t)
	case reflect.Interface:
		return interfaceEnc
	case reflect.String:
		return stringEnc
	case reflect.Bool:
		return boolEnc
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return intEnc
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return uintEnc
	case reflect.Float32:
		return float32Enc
	case reflect.Float64:
		return float64Enc
	case reflect.Struct:
		return buildStructEncoder(t)
	case reflect.Map:
		return buildMapEncoder(t)
	case reflect.Slice:
		return buildSliceEncoder(t)
	case reflect.Array:
		return buildArrayEncoder(t)
	default:
		return unsupportedEnc(t)
	}
}

// --- primitive encoders ---

func boolEnc(buf []byte, rv reflect.Value) ([]byte, error) {
	if rv.Bool() {
		return append(buf, "true"...), nil
	}
	return append(buf, "false"...), nil
}

func intEnc(buf []byte, rv reflect.Value) ([]byte, error) {
	return strconv.AppendInt(buf, rv.Int(), 10), nil
}

func uintEnc(buf []byte, rv reflect.Value) ([]byte, error) {
	return strconv.AppendUint(buf, rv.Uint(), 10), nil
}

func float32Enc(buf []byte, rv reflect.Value) ([]byte, error) {
	return strconv.AppendFloat(buf, rv.Float(), 'g', -1, 32), nil
}

func float64Enc(buf []byte, rv reflect.Value) ([]byte, error) {
	return strconv.AppendFloat(buf, rv.Float(), 'g', -1, 64), nil
}

func stringEnc(buf []byte, rv reflect.Value) ([]byte, error) {
	buf = append(buf, '"')
	buf = appendEscapedString(buf, rv.String())
	buf = append(buf, '"')
	return buf, nil
}

// --- time.Time / time.Duration ---

func timeEnc(buf []byte, rv reflect.Value) ([]byte, error) {
	t := rv.Interface().(time.Time)
	buf = append(buf, '"')
	buf = t.AppendFormat(buf, time.RFC3339Nano)
	buf = append(buf, '"')
	return buf, nil
}

func durationEnc(buf []byte, rv reflect.Value) ([]byte, error) {
	d := time.Duration(rv.Int())
	buf = append(buf, '"')
	buf = appendISO8601Duration(buf, d)
	buf = append(buf, '"')
	return buf, nil
}

// --- Marshaler ---

func marshalerEnc(buf []byte, rv reflect.Value) ([]byte, error) {
	if rv.Kind() == reflect.Ptr && rv.IsNil() {
		return append(buf, "null"...), nil
	}
	m := rv.Interface().(Marshaler)
	b, err := m.MarshalJSON()
	if err != nil {
		return buf, err
	}
	return append(buf, b...), nil
}

// buildAddrMarshalerEnc handles a type whose Marshaler method has a
// pointer receiver: addressable values take that path, everything else
// (an unaddressable map value, say) falls back to the plain encoder for
// the underlying type.
func buildAddrMarshalerEnc(t reflect.Type) encoderFunc {
	fallback := buildEncoderNoMarshaler(t)
	return func(buf []byte, rv reflect.Value) ([]byte, error) {
		if rv.CanAddr() {
			m := rv.Addr().Interface().(Marshaler)
			b, err := m.MarshalJSON()
			if err != nil {
				return buf, err
			}
			return append(buf, b...), nil
		}
		return fallback(buf, rv)
	}
}

// buildEncoderNoMarshaler is buildEncoder minus the Marshaler checks,
// used as buildAddrMarshalerEnc's fallback so it doesn't loop back into
// the Marshaler branch it's already handling.
func buildEncoderNoMarshaler(t reflect.Type) encoderFunc {
	if t == timeType {
		return timeEnc
	}
	if t == durationType {
		return durationEnc
	}
	switch t.Kind() {
	case reflect.Struct:
		return buildStructEncoder(t)
	case reflect.String:
		return stringEnc
	case reflect.Bool:
		return boolEnc
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return intEnc
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return uintEnc
	case reflect.Float32:
		return float32Enc
	case reflect.Float64:
		return float64Enc
	default:
		return unsupportedEnc(t)
	}
}

// --- pointers and interfaces ---

func buildPtrEncoder(t reflect.Type) encoderFunc {
	elemEnc := encoderForType(t.Elem())
	return func(buf []byte, rv reflect.Value) ([]byte, error) {
		if rv.IsNil() {
			return append(buf, "null"...), nil
		}
		return elemEnc(buf, rv.Elem())
	}
}

func interfaceEnc(buf []byte, rv reflect.Value) ([]byte, error) {
	if rv.IsNil() {
		return append(buf, "null"...), nil
	}
	// appendInterface's type switch covers common concrete types without
	// reflect; only its miss case falls through to the compiled cache.
	v := rv.Interface()
	buf, err := appendInterface(buf, v)
	if err == errNeedReflect {
		elem := rv.Elem()
		enc := encoderForType(elem.Type())
		return enc(buf, elem)
	}
	return buf, err
}

// --- structs ---

// structField is one struct field's pre-resolved encoding plan: which
// field index to read, the already-escaped `"name":` bytes to write
// before it, its encoder, and (for omitempty fields) the emptiness check.
type structField struct {
	index     int
	nameBytes []byte
	encoder   encoderFunc
	omitEmpty bool
	emptyFn   func(reflect.Value) bool
}

func buildStructEncoder(t reflect.Type) encoderFunc {
	var fields []structField

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" {
			continue
		}

		info := getFieldInfo(sf)
		if info.skip {
			continue
		}

		nameBytes := make([]byte, 0, len(info.name)+4)
		nameBytes = append(nameBytes, '"')
		nameBytes = appendEscapedString(nameBytes, info.name)
		nameBytes = append(nameBytes, '"', ':')

		enc := encoderForType(sf.Type)
		if info.asString {
			enc = wrapStringEncoder(enc, sf.Type.Kind())
		}

		f := structField{
			index:     i,
			nameBytes: nameBytes,
			encoder:   enc,
			omitEmpty: info.omitEmpty,
		}

		if info.omitEmpty {
			f.emptyFn = emptyFuncForKind(sf.Type)
		}

		fields = append(fields, f)
	}

	// Field order in the output should be deterministic and independent
	// of declaration order, so sort once here instead of per encode.
	sort.Slice(fields, func(i, j int) bool {
		return string(fields[i].nameBytes) < string(fields[j].nameBytes)
	})

	return func(buf []byte, rv reflect.Value) ([]byte, error) {
		buf = append(buf, '{')
		first := true
		for i := range fields {
			f := &fields[i]
			fv := rv.Field(f.index)

			if f.omitEmpty && f.emptyFn(fv) {
				continue
			}

			if !first {
				buf = append(buf, ',')
			}
			first = false

			buf = append(buf, f.nameBytes...)

			var err error
			buf, err = f.encoder(buf, fv)
			if err != nil {
				return buf, err
			}
		}
		buf = append(buf, '}')
		return buf, nil
	}
}

// emptyFuncForKind returns the omitempty emptiness check for a field's
// kind: the same rules as isEmptyValue in tags.go, specialized per kind
// once at build time instead of re-dispatching on every encode.
func emptyFuncForKind(t reflect.Type) func(reflect.Value) bool {
	switch t.Kind() {
	case reflect.Bool:
		return func(v reflect.Value) bool { return !v.Bool() }
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(v reflect.Value) bool { return v.Int() == 0 }
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(v reflect.Value) bool { return v.Uint() == 0 }
	case reflect.Float32, reflect.Float64:
		return func(v reflect.Value) bool { return v.Float() == 0 }
	case reflect.String:
		return func(v reflect.Value) bool { return v.Len() == 0 }
	case reflect.Slice, reflect.Map, reflect.Array:
		return func(v reflect.Value) bool { return v.Len() == 0 }
	case reflect.Ptr, reflect.Interface:
		return func(v reflect.Value) bool { return v.IsNil() }
	default:
		return func(v reflect.Value) bool { return false }
	}
}

// wrapStringEncoder implements the `json:",string"` tag option: the
// field's normal encoding, wrapped in quotes, for the numeric/bool kinds
// where that option is meaningful.
func wrapStringEncoder(inner encoderFunc, kind reflect.Kind) encoderFunc {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(buf []byte, rv reflect.Value) ([]byte, error) {
			buf = append(buf, '"')
			buf = strconv.AppendInt(buf, rv.Int(), 10)
			buf = append(buf, '"')
			return buf, nil
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return func(buf []byte, rv reflect.Value) ([]byte, error) {
			buf = append(buf, '"')
			buf = strconv.AppendUint(buf, rv.Uint(), 10)
			buf = append(buf, '"')
			return buf, nil
		}
	case reflect.Float32:
		return func(buf []byte, rv reflect.Value) ([]byte, error) {
			buf = append(buf, '"')
			buf = strconv.AppendFloat(buf, rv.Float(), 'g', -1, 32)
			buf = append(buf, '"')
			return buf, nil
		}
	case reflect.Float64:
		return func(buf []byte, rv reflect.Value) ([]byte, error) {
			buf = append(buf, '"')
			buf = strconv.AppendFloat(buf, rv.Float(), 'g', -1, 64)
			buf = append(buf, '"')
			return buf, nil
		}
	case reflect.Bool:
		return func(buf []byte, rv reflect.Value) ([]byte, error) {
			if rv.Bool() {
				return append(buf, `"true"`...), nil
			}
			return append(buf, `"false"`...), nil
		}
	default:
		return inner
	}
}

// --- maps ---

// mapKV pairs a map key with its reflect.Value, so the key can be sorted
// on without a second map lookup to fetch the value back.
type mapKV struct {
	key string
	val reflect.Value
}

// mapKVPool recycles the []mapKV slices buildMapEncoder sorts into,
// since every map encode needs one and they're otherwise pure garbage.
var mapKVPool = sync.Pool{}

func buildMapEncoder(t reflect.Type) encoderFunc {
	if t.Key().Kind() != reflect.String {
		return func(buf []byte, rv reflect.Value) ([]byte, error) {
			return buf, fmt.Errorf("json: unsupported map key type %s", t.Key())
		}
	}
	valEnc := encoderForType(t.Elem())

	return func(buf []byte, rv reflect.Value) ([]byte, error) {
		if rv.IsNil() {
			return append(buf, "null"...), nil
		}

		buf = append(buf, '{')

		n := rv.Len()
		if n == 0 {
			buf = append(buf, '}')
			return buf, nil
		}

		var pairs []mapKV
		if v := mapKVPool.Get(); v != nil {
			pairs = *v.(*[]mapKV)
			pairs = pairs[:0]
		}
		if cap(pairs) < n {
			pairs = make([]mapKV, 0, n)
		}

		iter := rv.MapRange()
		for iter.Next() {
			pairs = append(pairs, mapKV{key: iter.Key().String(), val: iter.Value()})
		}
		sort.Slice(pairs, func(i, j int) bool {
			return pairs[i].key < pairs[j].key
		})

		for i := range pairs {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = append(buf, '"')
			buf = appendEscapedString(buf, pairs[i].key)
			buf = append(buf, '"', ':')

			var err error
			buf, err = valEnc(buf, pairs[i].val)
			if err != nil {
				for j := range pairs {
					pairs[j].val = reflect.Value{}
				}
				mapKVPool.Put(&pairs)
				return buf, err
			}
		}

		// Drop the reflect.Value refs before pooling so the pool doesn't
		// pin this encode's map alive for the next caller.
		for i := range pairs {
			pairs[i].val = reflect.Value{}
		}
		mapKVPool.Put(&pairs)

		buf = append(buf, '}')
		return buf, nil
	}
}

// --- slices and arrays ---

func buildSliceEncoder(t reflect.Type) encoderFunc {
	elemEnc := encoderForType(t.Elem())

	return func(buf []byte, rv reflect.Value) ([]byte, error) {
		if rv.IsNil() {
			return append(buf, "null"...), nil
		}

		buf = append(buf, '[')
		n := rv.Len()
		for i := 0; i < n; i++ {
			if i > 0 {
				buf = append(buf, ',')
			}
			var err error
			buf, err = elemEnc(buf, rv.Index(i))
			if err != nil {
				return buf, err
			}
		}
		buf = append(buf, ']')
		return buf, nil
	}
}

func buildArrayEncoder(t reflect.Type) encoderFunc {
	elemEnc := encoderForType(t.Elem())

	return func(buf []byte, rv reflect.Value) ([]byte, error) {
		buf = append(buf, '[')
		n := rv.Len()
		for i := 0; i < n; i++ {
			if i > 0 {
				buf = append(buf, ',')
			}
			var err error
			buf, err = elemEnc(buf, rv.Index(i))
			if err != nil {
				return buf, err
			}
		}
		buf = append(buf, ']')
		return buf, nil
	}
}

func unsupportedEnc(t reflect.Type) encoderFunc {
	return func(buf []byte, rv reflect.Value) ([]byte, error) {
		return buf, fmt.Errorf("json: unsupported type %s", t)
	}
}
