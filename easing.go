package scrollkit

import (
	"strings"

	"github.com/tanema/gween/ease"
)

// easings maps the names accepted by data-scroll-ease to gween functions.
var easings = map[string]ease.TweenFunc{
	"linear": ease.Linear,

	"inQuad": ease.InQuad, "outQuad": ease.OutQuad, "inOutQuad": ease.InOutQuad, "outInQuad": ease.OutInQuad,
	"inCubic": ease.InCubic, "outCubic": ease.OutCubic, "inOutCubic": ease.InOutCubic, "outInCubic": ease.OutInCubic,
	"inQuart": ease.InQuart, "outQuart": ease.OutQuart, "inOutQuart": ease.InOutQuart, "outInQuart": ease.OutInQuart,
	"inQuint": ease.InQuint, "outQuint": ease.OutQuint, "inOutQuint": ease.InOutQuint, "outInQuint": ease.OutInQuint,
	"inSine": ease.InSine, "outSine": ease.OutSine, "inOutSine": ease.InOutSine, "outInSine": ease.OutInSine,
	"inExpo": ease.InExpo, "outExpo": ease.OutExpo, "inOutExpo": ease.InOutExpo, "outInExpo": ease.OutInExpo,
	"inCirc": ease.InCirc, "outCirc": ease.OutCirc, "inOutCirc": ease.InOutCirc, "outInCirc": ease.OutInCirc,
	"inElastic": ease.InElastic, "outElastic": ease.OutElastic, "inOutElastic": ease.InOutElastic, "outInElastic": ease.OutInElastic,
	"inBack": ease.InBack, "outBack": ease.OutBack, "inOutBack": ease.InOutBack, "outInBack": ease.OutInBack,
	"inBounce": ease.InBounce, "outBounce": ease.OutBounce, "inOutBounce": ease.InOutBounce, "outInBounce": ease.OutInBounce,
}

// EasingByName returns the easing registered under name ("inOutQuad").
// The lookup ignores case.
func EasingByName(name string) (ease.TweenFunc, bool) {
	if fn, ok := easings[name]; ok {
		return fn, true
	}
	for k, fn := range easings {
		if strings.EqualFold(k, name) {
			return fn, true
		}
	}
	return nil, false
}
