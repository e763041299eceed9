package main

// knob is the slider position for v.
func knob(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}

// settle returns the value to keep after the slider for v reported nv.
// An untouched knob reports knob(v, lo, hi), which leaves v as loaded even
// when it lies outside the slider range.
func settle(v, lo, hi, nv float32) (float32, bool) {
	if nv == knob(v, lo, hi) {
		return v, false
	}
	return nv, true
}

// settleUint is settle for integer params. The float32 knob cannot hold
// every uint64, so v is only replaced once the knob moves.
func settleUint(v uint64, lo, hi, nv float32) (uint64, bool) {
	if nv == knob(float32(v), lo, hi) {
		return v, false
	}
	return uint64(max(nv, 0) + 0.5), true
}
