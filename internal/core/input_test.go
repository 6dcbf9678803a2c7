package core

import "testing"

func TestInputFrameHorizontal(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
		want    int
	}{
		{"none", nil, 0},
		{"left", []Action{ActionLeft}, -1},
		{"right", []Action{ActionRight}, 1},
		{"both cancel", []Action{ActionLeft, ActionRight}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			if got := f.Horizontal(); got != tc.want {
				t.Errorf("Horizontal() = %d, expected %d", got, tc.want)
			}
		})
	}
}

func TestInputFrameCloneAndClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJump)
	f.SetClick(3, 4)

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionJump) || f.Click != nil {
		t.Error("Clear should drop actions and click")
	}
	if !clone.Has(ActionJump) {
		t.Error("clone should keep its actions after the original is cleared")
	}
	if clone.Click == nil || clone.Click.X != 3 || clone.Click.Y != 4 {
		t.Errorf("clone click = %+v", clone.Click)
	}

	var zero InputFrame
	if zero.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionBack)
	if !zero.Has(ActionBack) {
		t.Error("Set on zero frame should allocate")
	}
}
