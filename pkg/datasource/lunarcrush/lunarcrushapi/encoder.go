package lunarcrushapi

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	boolTrue  = "1.0"
	boolFalse = "0.0"
)

// Encoder converts a parameter set into query string pairs.
//
// Timestamps are encoded from their calendar fields read as wall-clock time in
// Location (time.Local when nil), not from the absolute instant. Two callers in
// different time zones passing the same wall-clock time therefore send
// different values. AbsoluteTimestamps switches to t.Unix().
type Encoder struct {
	Location           *time.Location
	AbsoluteTimestamps bool
}

var DefaultEncoder = &Encoder{}

func (e *Encoder) location() *time.Location {
	if e == nil || e.Location == nil {
		return time.Local
	}

	return e.Location
}

// EncodeValue returns the query representation of v. ok is false when the
// parameter must be left out of the query entirely.
func (e *Encoder) EncodeValue(v ParamValue) (s string, ok bool) {
	switch x := v.(type) {
	case SequenceValue:
		return strings.Join(x, ","), true

	case TimestampValue:
		return strconv.FormatInt(e.epochSeconds(time.Time(x)), 10), true

	case BoolValue:
		if x {
			return boolTrue, true
		}
		return boolFalse, true

	case NullValue, nil:
		return "", false

	case StringValue:
		return string(x), true

	case IntValue:
		return strconv.FormatInt(int64(x), 10), true
	}

	return "", false
}

func (e *Encoder) epochSeconds(t time.Time) int64 {
	if e != nil && e.AbsoluteTimestamps {
		return t.Unix()
	}

	local := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, e.location())
	return local.Unix()
}

// Encode never fails; absent parameters are dropped.
func (e *Encoder) Encode(params *Params) Query {
	var q Query
	if params == nil {
		return q
	}

	for _, p := range params.entries {
		s, ok := e.EncodeValue(p.value)
		if !ok {
			continue
		}

		q = append(q, QueryPair{Key: p.name, Value: s})
	}

	return q
}

type QueryPair struct {
	Key, Value string
}

// Query is an encoded parameter set in insertion order.
type Query []QueryPair

func (q Query) Get(key string) (string, bool) {
	for _, p := range q {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Encode renders q as application/x-www-form-urlencoded without sorting the
// keys, unlike url.Values.Encode.
func (q Query) Encode() string {
	if len(q) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, p := range q {
		if i > 0 {
			sb.WriteByte('&')
		}

		sb.WriteString(url.QueryEscape(p.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}

	return sb.String()
}

func (q Query) Values() url.Values {
	values := url.Values{}
	for _, p := range q {
		values.Add(p.Key, p.Value)
	}
	return values
}
