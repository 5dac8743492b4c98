package validation

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// Payload is a decoded request body: field name to raw value.
type Payload map[string]any

// Reader extracts typed values from a Payload.
//
// Every accessor records a FieldError instead of returning one, so a single
// pass over a payload collects all structural failures. A failed accessor
// returns the zero value.
type Reader struct {
	payload Payload
	prefix  string
	errs    *FieldErrors
}

// NewReader starts reading p.
func NewReader(p Payload) *Reader {
	return &Reader{payload: p, errs: &FieldErrors{}}
}

// Errors returns the failures recorded so far, including those of nested readers.
func (r *Reader) Errors() FieldErrors {
	return *r.errs
}

// Failed reports whether field (relative to this reader) already failed.
func (r *Reader) Failed(field string) bool {
	return r.errs.Has(r.path(field))
}

func (r *Reader) path(key string) string {
	if r.prefix == "" {
		return key
	}
	return r.prefix + "." + key
}

func (r *Reader) fail(e *FieldError) {
	*r.errs = append(*r.errs, e)
}

// lookup treats a JSON null like an absent key.
func (r *Reader) lookup(key string) (any, bool) {
	v, ok := r.payload[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (r *Reader) required(key string) (any, bool) {
	v, ok := r.lookup(key)
	if !ok {
		r.fail(NewFieldRequiredError(r.path(key)))
	}
	return v, ok
}

// String reads a required string. An empty string is accepted here; use the
// `required` tag on the record to reject it.
func (r *Reader) String(key string) string {
	v, ok := r.required(key)
	if !ok {
		return ""
	}
	return r.asString(key, v)
}

// OptionalString reads a string that may be absent.
func (r *Reader) OptionalString(key string) *string {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	s := r.asString(key, v)
	if r.Failed(key) {
		return nil
	}
	return &s
}

func (r *Reader) asString(key string, v any) string {
	s, ok := v.(string)
	if !ok {
		r.fail(NewFieldTypeError(r.path(key), MsgString))
		return ""
	}
	return s
}

// Int reads a required integer. Integral JSON numbers and numeric strings
// are accepted; the same value is read the same way whichever encoding it
// arrives in.
func (r *Reader) Int(key string) int {
	v, ok := r.required(key)
	if !ok {
		return 0
	}

	n, ok := toInt(v)
	if !ok {
		r.fail(NewFieldTypeError(r.path(key), MsgInteger))
		return 0
	}
	return n
}

func toInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int32:
		return int(x), true
	case int64:
		return int(x), true
	case float64:
		return floatToInt(x)
	case json.Number:
		return parseInt(x.String())
	case string:
		return parseInt(strings.TrimSpace(x))
	}
	return 0, false
}

// parseInt accepts decimal integers and integral numbers in float notation
// ("3e9", "40.0").
func parseInt(s string) (int, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return floatToInt(f)
}

// floatToInt rejects fractions and values outside the int range. Range
// limits of the field itself are left to the record's tags.
func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return 0, false
	}
	if f < math.MinInt || f >= -math.MinInt {
		return 0, false
	}
	return int(f), true
}

// Float reads a required number. Numeric strings are accepted.
func (r *Reader) Float(key string) float64 {
	v, ok := r.required(key)
	if !ok {
		return 0
	}

	f, ok := toFloat(v)
	if !ok {
		r.fail(NewFieldTypeError(r.path(key), MsgNumber))
		return 0
	}
	return f
}

func toFloat(v any) (float64, bool) {
	var (
		f   float64
		err error
	)
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case json.Number:
		f, err = x.Float64()
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(x), 64)
	default:
		return 0, false
	}
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Bool reads a required boolean. Strings understood by strconv.ParseBool
// and the numbers 0 and 1 are accepted.
func (r *Reader) Bool(key string) bool {
	v, ok := r.required(key)
	if !ok {
		return false
	}

	switch x := v.(type) {
	case bool:
		return x
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(x)); err == nil {
			return b
		}
	default:
		if f, ok := toFloat(x); ok && (f == 0 || f == 1) {
			return f == 1
		}
	}

	r.fail(NewFieldTypeError(r.path(key), MsgBoolean))
	return false
}

// Date reads a required calendar date.
func (r *Reader) Date(key string) civil.Date {
	v, ok := r.required(key)
	if !ok {
		return civil.Date{}
	}
	return r.asDate(key, v)
}

// OptionalDate reads a calendar date that may be absent.
func (r *Reader) OptionalDate(key string) *civil.Date {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	d := r.asDate(key, v)
	if r.Failed(key) {
		return nil
	}
	return &d
}

func (r *Reader) asDate(key string, v any) civil.Date {
	switch x := v.(type) {
	case civil.Date:
		if x.IsValid() {
			return x
		}
	case time.Time:
		return civil.DateOf(x)
	case string:
		if d, err := civil.ParseDate(strings.TrimSpace(x)); err == nil {
			return d
		}
	}

	r.fail(NewFieldTypeError(r.path(key), MsgDate))
	return civil.Date{}
}

// Object returns a Reader over a required nested object. It returns nil when
// the object is missing or not an object; the failure is already recorded.
func (r *Reader) Object(key string) *Reader {
	v, ok := r.required(key)
	if !ok {
		return nil
	}

	var nested Payload
	switch x := v.(type) {
	case map[string]any:
		nested = x
	case Payload:
		nested = x
	default:
		r.fail(NewFieldTypeError(r.path(key), MsgObject))
		return nil
	}

	return &Reader{payload: nested, prefix: r.path(key), errs: r.errs}
}
