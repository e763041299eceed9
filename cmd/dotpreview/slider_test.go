package main

import "testing"

func TestSettleKeepsUntouchedValues(t *testing.T) {
	tests := []struct {
		name   string
		v      float32
		lo, hi float32
	}{
		{"in range", 6, 0.5, 20},
		{"below range", 0.25, 0.5, 20},
		{"above range", 0.05, 0.0001, 0.01},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, moved := settle(tt.v, tt.lo, tt.hi, knob(tt.v, tt.lo, tt.hi))
			if moved || got != tt.v {
				t.Errorf("settle = (%v, %v), want (%v, false)", got, moved, tt.v)
			}
		})
	}
}

func TestSettleTakesMovedKnob(t *testing.T) {
	got, moved := settle(0.25, 0.5, 20, 3)
	if !moved || got != 3 {
		t.Errorf("settle = (%v, %v), want (3, true)", got, moved)
	}
}

func TestSettleUint(t *testing.T) {
	tests := []struct {
		name      string
		v         uint64
		lo, hi    float32
		nv        float32
		want      uint64
		wantMoved bool
	}{
		{"large seed untouched", 1<<40 + 3, 0, 99999, 99999, 1<<40 + 3, false},
		{"seed beyond float32 precision", 1<<24 + 1, 0, 99999, 99999, 1<<24 + 1, false},
		{"dot count below range", 200, 1000, 80000, 1000, 200, false},
		{"dot count above range", 120000, 1000, 80000, 80000, 120000, false},
		{"moved", 35000, 1000, 80000, 12000, 12000, true},
		{"moved rounds", 7, 0, 99999, 41.6, 42, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, moved := settleUint(tt.v, tt.lo, tt.hi, tt.nv)
			if got != tt.want || moved != tt.wantMoved {
				t.Errorf("settleUint = (%d, %v), want (%d, %v)", got, moved, tt.want, tt.wantMoved)
			}
		})
	}
}
