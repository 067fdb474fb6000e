package animations

import "testing"

func TestAnimationLoops(t *testing.T) {
	a := NewAnimation(0, 2, 1, 0.1)

	frames := []int{}
	for i := 0; i < 4; i++ {
		a.Update(0.1)
		frames = append(frames, a.Frame())
	}

	expected := []int{1, 2, 0, 1}
	for i := range expected {
		if frames[i] != expected[i] {
			t.Fatalf("Expected frames %v, got %v", expected, frames)
		}
	}
	if !a.Looped {
		t.Error("Expected animation to report it looped")
	}
}

func TestAnimationFreezeOnComplete(t *testing.T) {
	a := NewAnimation(2, 4, 1, 0.05)
	a.FreezeOnComplete = true

	a.Update(1.0)

	if a.Frame() != 4 {
		t.Errorf("Expected to hold last frame 4, got %d", a.Frame())
	}
	if !a.Done() {
		t.Error("Expected frozen animation to be done")
	}

	a.Restart()
	if a.Frame() != 2 {
		t.Errorf("Expected restart to return to frame 2, got %d", a.Frame())
	}
}

func TestAnimationIgnoresZeroTime(t *testing.T) {
	a := NewAnimation(0, 3, 1, 0.1)

	for i := 0; i < 10; i++ {
		a.Update(0)
	}

	if a.Frame() != 0 {
		t.Errorf("Expected no progress while time is frozen, got frame %d", a.Frame())
	}
}
