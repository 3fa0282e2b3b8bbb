package sequencer

import "github.com/tanema/gween/ease"

var easeByName = map[string]ease.TweenFunc{
	"":           ease.Linear,
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inSine":     ease.InSine,
	"outSine":    ease.OutSine,
	"inOutSine":  ease.InOutSine,
	"outBounce":  ease.OutBounce,
}

// EaseByName returns the easing function for an asset easing name such as
// "linear" or "inOutQuad". The empty name is linear.
func EaseByName(name string) (ease.TweenFunc, bool) {
	fn, ok := easeByName[name]
	return fn, ok
}
