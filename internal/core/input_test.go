package core

import (
	"reflect"
	"testing"
)

func TestInputFrameSetHas(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionJump)
	if !f.Has(ActionJump) {
		t.Error("Has(ActionJump) should be true after Set")
	}

	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear() should remove all actions")
	}
}

func TestInputFrameCloneIsIndependent(t *testing.T) {
	f := FrameOf(ActionStart)
	c := f.Clone()
	f.Clear()

	if !c.Has(ActionStart) {
		t.Error("clone should keep its actions after the original is cleared")
	}
}

func TestInputFrameList(t *testing.T) {
	f := FrameOf(ActionRestart, ActionJump)

	want := []Action{ActionJump, ActionRestart}
	if got := f.List(); !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, expected %v", got, want)
	}
}

func TestInputFrameBits(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
		bits    uint8
	}{
		{"empty", nil, 0},
		{"jump", []Action{ActionJump}, 1},
		{"start", []Action{ActionStart}, 2},
		{"restart", []Action{ActionRestart}, 4},
		{"jump and start", []Action{ActionJump, ActionStart}, 3},
		{"frontend actions dropped", []Action{ActionPause, ActionQuit}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := FrameOf(tc.actions...)
			if got := f.Bits(); got != tc.bits {
				t.Errorf("Bits() = %d, expected %d", got, tc.bits)
			}
			back := FrameFromBits(tc.bits)
			for _, a := range simActions {
				if back.Has(a) != f.Has(a) {
					t.Errorf("FrameFromBits(%d).Has(%v) = %v", tc.bits, a, back.Has(a))
				}
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionJump.String() != "Jump" {
		t.Errorf("ActionJump.String() = %q", ActionJump.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
