package dataset

import (
	"strconv"
	"time"
)

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindTime
)

// Kind is the type of a cell value.
type Kind uint8

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindTime:
		return "datetime"
	}
	return "unknown"
}

// Value is a single typed cell. The zero value is null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	t    time.Time
}

func NewNull() Value            { return Value{} }
func NewBool(b bool) Value      { return Value{kind: KindBool, b: b} }
func NewInt(i int64) Value      { return Value{kind: KindInt, i: i} }
func NewFloat(f float64) Value  { return Value{kind: KindFloat, f: f} }
func NewString(s string) Value  { return Value{kind: KindString, s: s} }
func NewTime(t time.Time) Value { return Value{kind: KindTime, t: t} }

func (v Value) Kind() Kind      { return v.kind }
func (v Value) IsNull() bool    { return v.kind == KindNull }
func (v Value) Bool() bool      { return v.b }
func (v Value) Int() int64      { return v.i }
func (v Value) Str() string     { return v.s }
func (v Value) Time() time.Time { return v.t }

// Float returns the value as a float64 for both integer and float kinds.
func (v Value) Float() float64 {
	if v.kind == KindInt {
		return float64(v.i)
	}
	return v.f
}

// Numeric reports the value as a float64 if it is an integer or float.
func (v Value) Numeric() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	}
	return 0, false
}

// String renders the value for display. Nulls render as "NULL".
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "NULL"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	case KindTime:
		return v.t.Format("2006-01-02 15:04:05Z07:00")
	}
	return ""
}

// Key returns a type-tagged canonical form used for equality and grouping.
// Distinct kinds never collide even when their display forms match
// (e.g. the string "1" vs the integer 1).
func (v Value) Key() string {
	switch v.kind {
	case KindNull:
		return "n:"
	case KindBool:
		return "b:" + strconv.FormatBool(v.b)
	case KindInt:
		return "i:" + strconv.FormatInt(v.i, 10)
	case KindFloat:
		return "f:" + strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return "s:" + v.s
	case KindTime:
		return "t:" + v.t.UTC().Format(time.RFC3339Nano)
	}
	return ""
}

// Equal reports whether two values have the same kind and content.
func (v Value) Equal(o Value) bool {
	return v.Key() == o.Key()
}

// generalizeKind merges two observed kinds into the narrowest kind that can
// represent both. Mixed numeric kinds widen to float; anything else widens
// to string.
func generalizeKind(a, b Kind) Kind {
	if a == b {
		return a
	}
	if a == KindNull {
		return b
	}
	if b == KindNull {
		return a
	}
	numeric := func(k Kind) bool { return k == KindInt || k == KindFloat }
	if numeric(a) && numeric(b) {
		return KindFloat
	}
	return KindString
}
