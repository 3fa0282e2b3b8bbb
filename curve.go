package sequencer

import (
	"math"
	"sort"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Curve produces an animated value for a query time. Evaluate is only
// meaningful when HasAnyData is true; templates check that first.
type Curve[T any] interface {
	HasAnyData() bool
	Evaluate(t float64, def T) T
}

// BoolKey is a single key on a BoolCurve.
type BoolKey struct {
	Time  float64
	Value bool
}

// BoolCurve is a stepped boolean curve. A key's value holds from its time
// until the next key. Times before the first key take the first key's value.
type BoolCurve struct {
	keys []BoolKey
}

// NewBoolCurve creates a curve from keys in any order.
func NewBoolCurve(keys ...BoolKey) *BoolCurve {
	c := &BoolCurve{}
	for _, k := range keys {
		c.AddKey(k.Time, k.Value)
	}
	return c
}

// AddKey inserts a key, replacing the value of an existing key at the same time.
// A NaN time is ignored.
func (c *BoolCurve) AddKey(t float64, v bool) {
	if math.IsNaN(t) {
		return
	}
	i := sort.Search(len(c.keys), func(i int) bool { return c.keys[i].Time >= t })
	if i < len(c.keys) && c.keys[i].Time == t {
		c.keys[i].Value = v
		return
	}
	c.keys = append(c.keys, BoolKey{})
	copy(c.keys[i+1:], c.keys[i:])
	c.keys[i] = BoolKey{Time: t, Value: v}
}

// Keys returns the sorted keys. The returned slice MUST NOT be mutated.
func (c *BoolCurve) Keys() []BoolKey {
	return c.keys
}

// HasAnyData reports whether the curve has at least one key.
func (c *BoolCurve) HasAnyData() bool {
	return c != nil && len(c.keys) > 0
}

// Evaluate returns the stepped value at t, or def when the curve is empty or
// t is NaN.
func (c *BoolCurve) Evaluate(t float64, def bool) bool {
	if len(c.keys) == 0 || math.IsNaN(t) {
		return def
	}
	i := sort.Search(len(c.keys), func(i int) bool { return c.keys[i].Time > t }) - 1
	if i < 0 {
		return c.keys[0].Value
	}
	return c.keys[i].Value
}

// FloatKey is a single key on a FloatCurve. Ease shapes the segment leaving
// this key; nil means linear.
type FloatKey struct {
	Time  float64
	Value float64
	Ease  ease.TweenFunc
}

// FloatCurve interpolates between keys using gween easing functions. Values
// are clamped to the first and last key outside the keyed range.
type FloatCurve struct {
	keys     []FloatKey
	segments []*gween.Tween // segments[i] spans keys[i] → keys[i+1]; nil until built
}

// NewFloatCurve creates a curve from keys in any order.
func NewFloatCurve(keys ...FloatKey) *FloatCurve {
	c := &FloatCurve{}
	for _, k := range keys {
		c.AddKey(k.Time, k.Value, k.Ease)
	}
	return c
}

// AddKey inserts a key, replacing an existing key at the same time. A NaN
// time is ignored.
func (c *FloatCurve) AddKey(t, v float64, fn ease.TweenFunc) {
	if math.IsNaN(t) {
		return
	}
	if fn == nil {
		fn = ease.Linear
	}
	c.segments = nil
	i := sort.Search(len(c.keys), func(i int) bool { return c.keys[i].Time >= t })
	if i < len(c.keys) && c.keys[i].Time == t {
		c.keys[i] = FloatKey{Time: t, Value: v, Ease: fn}
		return
	}
	c.keys = append(c.keys, FloatKey{})
	copy(c.keys[i+1:], c.keys[i:])
	c.keys[i] = FloatKey{Time: t, Value: v, Ease: fn}
}

// Keys returns the sorted keys. The returned slice MUST NOT be mutated.
func (c *FloatCurve) Keys() []FloatKey {
	return c.keys
}

// HasAnyData reports whether the curve has at least one key.
func (c *FloatCurve) HasAnyData() bool {
	return c != nil && len(c.keys) > 0
}

// Evaluate returns the eased value at t, or def when the curve is empty or
// t is NaN.
func (c *FloatCurve) Evaluate(t, def float64) float64 {
	n := len(c.keys)
	if n == 0 || math.IsNaN(t) {
		return def
	}
	if t <= c.keys[0].Time {
		return c.keys[0].Value
	}
	if t >= c.keys[n-1].Time {
		return c.keys[n-1].Value
	}
	if c.segments == nil {
		c.buildSegments()
	}
	i := sort.Search(n, func(i int) bool { return c.keys[i].Time > t }) - 1
	val, _ := c.segments[i].Set(float32(t - c.keys[i].Time))
	return float64(val)
}

func (c *FloatCurve) buildSegments() {
	c.segments = make([]*gween.Tween, len(c.keys)-1)
	for i := range c.segments {
		from, to := c.keys[i], c.keys[i+1]
		c.segments[i] = gween.New(float32(from.Value), float32(to.Value), float32(to.Time-from.Time), from.Ease)
	}
}
