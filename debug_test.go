//go:build gdidebug

package gdi

import (
	"errors"
	"testing"

	"github.com/gogpu/gdi/surface"
)

func TestMisusePanicsInDebugBuilds(t *testing.T) {
	c, _ := newSoftwareCanvas(t, 10, 10, 1)
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("recovered %v, want ErrIndexOutOfRange panic", r)
		}
	}()
	_ = c.Pop()
	t.Error("Pop without Push did not panic")
}

func TestUnsupportedDoesNotPanic(t *testing.T) {
	c, _ := newSoftwareCanvas(t, 10, 10, 1)
	if err := c.FloodFill(0, 0, red, FloodBorder); !errors.Is(err, ErrUnsupported) {
		t.Errorf("FloodFill() = %v, want ErrUnsupported", err)
	}
}

func TestMisusePanicsWithoutSurface(t *testing.T) {
	c := NewCanvas(surface.NewSoftware(0, 0, 1), WithPen(&Pen{Width: -1}))
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrInvalidPen) {
			t.Errorf("recovered %v, want ErrInvalidPen panic", r)
		}
	}()
	_ = c.StrokeRectangle(0, 0, 5, 5)
	t.Error("invalid pen on a null surface did not panic")
}
