package combat

import "github.com/tanema/gween"

// HoldState tracks an active hold or charge.
type HoldState struct {
	IsHolding       bool
	Kind            InputKind
	StartTime       float64
	HeldTime        float64
	CurrentPlayRate float64
	TargetPlayRate  float64
	// ActivatedThisChain survives Deactivate so a chain holds at most once.
	ActivatedThisChain bool
	QueuedDirection    Direction

	blend playRateBlend
}

func (h *HoldState) Activate(kind InputKind, now, targetRate float64) {
	h.IsHolding = true
	h.Kind = kind
	h.StartTime = now
	h.HeldTime = 0
	h.TargetPlayRate = clamp01(targetRate)
	h.ActivatedThisChain = true
	h.QueuedDirection = DirNone
}

func (h *HoldState) Deactivate() {
	h.IsHolding = false
	h.HeldTime = 0
}

// Reset prepares for a fresh combo chain.
func (h *HoldState) Reset() {
	*h = HoldState{CurrentPlayRate: 1}
}

// IsBlending reports whether a playrate blend is in progress.
func (h HoldState) IsBlending() bool {
	return h.blend.toHold || h.blend.fromHold
}

// BlendingToHold and BlendingFromHold are mutually exclusive.
func (h HoldState) BlendingToHold() bool   { return h.blend.toHold }
func (h HoldState) BlendingFromHold() bool { return h.blend.fromHold }
func (h HoldState) BlendAlpha() float64    { return float64(h.blend.alpha) }

// rateFor maps a blend alpha to the effective playrate.
func (h *HoldState) rateFor(alpha float32) float64 {
	return 1 - float64(alpha)*(1-h.TargetPlayRate)
}

// playRateBlend moves alpha between 0 (normal rate) and 1 (hold rate).
type playRateBlend struct {
	alpha    float32
	target   float32
	toHold   bool
	fromHold bool
	tween    *gween.Tween
}

// start begins a blend toward target (0 or 1) at speed alpha units per
// second. It returns false when alpha is already at the target or the blend
// completes instantly.
func (b *playRateBlend) start(target float32, speed float64, curve EaseCurve) bool {
	b.stop()
	distance := target - b.alpha
	if distance < 0 {
		distance = -distance
	}
	if distance == 0 || speed <= 0 {
		b.alpha = target
		return false
	}
	b.target = target
	b.toHold = target == 1
	b.fromHold = target == 0
	b.tween = gween.New(b.alpha, target, float32(float64(distance)/speed), curve.tweenFunc())
	return true
}

// update advances the blend. finished is true on the frame alpha lands on
// its exact target.
func (b *playRateBlend) update(dt float64) (alpha float32, finished bool) {
	if b.tween == nil {
		return b.alpha, false
	}
	a, done := b.tween.Update(float32(dt))
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	b.alpha = a
	if done {
		b.alpha = b.target
		b.stop()
		return b.alpha, true
	}
	return b.alpha, false
}

func (b *playRateBlend) stop() {
	b.toHold = false
	b.fromHold = false
	b.tween = nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
