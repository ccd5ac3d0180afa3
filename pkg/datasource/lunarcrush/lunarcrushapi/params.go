package lunarcrushapi

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// ParamValue is one logical query parameter value.
// The set of implementations is closed: StringValue, IntValue, BoolValue,
// SequenceValue, TimestampValue and NullValue.
type ParamValue interface {
	paramValue()
}

type StringValue string

type IntValue int64

type BoolValue bool

type SequenceValue []string

type TimestampValue time.Time

// NullValue marks a parameter as absent. Absent parameters are never sent.
type NullValue struct{}

func (StringValue) paramValue()    {}
func (IntValue) paramValue()       {}
func (BoolValue) paramValue()      {}
func (SequenceValue) paramValue()  {}
func (TimestampValue) paramValue() {}
func (NullValue) paramValue()      {}

// ValueOf lifts a plain Go value into a ParamValue.
//
// The checks run in the order sequence, point-in-time, boolean, nil and then
// passthrough. Nil pointers of any type become NullValue so optional setters
// can hand over their pointer fields directly; other pointers are followed.
func ValueOf(v interface{}) ParamValue {
	switch x := v.(type) {
	case ParamValue:
		return x

	case []string:
		return SequenceValue(x)

	case time.Time:
		return TimestampValue(x)

	case *time.Time:
		if x == nil {
			return NullValue{}
		}
		return TimestampValue(*x)

	case bool:
		return BoolValue(x)

	case *bool:
		if x == nil {
			return NullValue{}
		}
		return BoolValue(*x)

	case nil:
		return NullValue{}

	case string:
		return StringValue(x)

	case *string:
		if x == nil {
			return NullValue{}
		}
		return StringValue(*x)

	case int:
		return IntValue(x)

	case *int:
		if x == nil {
			return NullValue{}
		}
		return IntValue(*x)

	case int64:
		return IntValue(x)

	case int32:
		return IntValue(x)

	case uint:
		return StringValue(strconv.FormatUint(uint64(x), 10))

	case uint64:
		return StringValue(strconv.FormatUint(x, 10))
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr && rv.IsNil() {
		return NullValue{}
	}

	if x, ok := v.(fmt.Stringer); ok {
		return StringValue(x.String())
	}

	if rv.Kind() == reflect.Ptr {
		return ValueOf(rv.Elem().Interface())
	}

	return StringValue(fmt.Sprint(v))
}

type param struct {
	name  string
	value ParamValue
}

// Params is an ordered parameter set. The order parameters are added in is
// the order they appear in the query string.
type Params struct {
	entries []param
}

func NewParams() *Params {
	return &Params{}
}

// Set adds or replaces the parameter name. A replaced parameter keeps its
// original position.
func (p *Params) Set(name string, value ParamValue) *Params {
	if value == nil {
		value = NullValue{}
	}

	for i := range p.entries {
		if p.entries[i].name == name {
			p.entries[i].value = value
			return p
		}
	}

	p.entries = append(p.entries, param{name: name, value: value})
	return p
}

// Add is Set with ValueOf applied to v.
func (p *Params) Add(name string, v interface{}) *Params {
	return p.Set(name, ValueOf(v))
}

func (p *Params) Get(name string) (ParamValue, bool) {
	if p == nil {
		return nil, false
	}

	for _, e := range p.entries {
		if e.name == name {
			return e.value, true
		}
	}

	return nil, false
}

func (p *Params) Len() int {
	if p == nil {
		return 0
	}

	return len(p.entries)
}

// Names returns the parameter names in insertion order.
func (p *Params) Names() []string {
	if p == nil {
		return nil
	}

	names := make([]string, 0, len(p.entries))
	for _, e := range p.entries {
		names = append(names, e.name)
	}
	return names
}
