package charts3d

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func testCamera(yaw, pitch float64) Camera {
	cam := NewCamera()
	cam.SetAngle(yaw, pitch)
	cam.SetViewport(NewRect(0, 0, 400, 400))
	return cam
}

func TestCameraProjectDeterministic(t *testing.T) {
	cam := testCamera(33, 12)
	p1, d1 := cam.Project(0.2, 0.7, 0.9)
	p2, d2 := cam.Project(0.2, 0.7, 0.9)
	if p1 != p2 || d1 != d2 {
		t.Fatalf("projection not deterministic: %v/%f vs %v/%f", p1, d1, p2, d2)
	}
	if d := cam.Depth(0.2, 0.7, 0.9); !near(d, d1) {
		t.Fatalf("depth mismatched: want %f, got %f", d1, d)
	}
}

func TestCameraProjectCenter(t *testing.T) {
	cam := testCamera(0, 0)
	pos, depth := cam.Project(0.5, 0.5, 0.5)
	if !near(pos.X, 200) || !near(pos.Y, 200) {
		t.Errorf("center should project on viewport center, got %v", pos)
	}
	if !near(depth, DefaultDistance) {
		t.Errorf("center depth: want %f, got %f", DefaultDistance, depth)
	}
	right, _ := cam.Project(1, 0.5, 0.5)
	if right.X <= pos.X {
		t.Errorf("x=1 should be right of center: %v", right)
	}
	up, _ := cam.Project(0.5, 1, 0.5)
	if up.Y >= pos.Y {
		t.Errorf("y=1 should be above center: %v", up)
	}
	front := cam.Depth(0.5, 0.5, 0)
	back := cam.Depth(0.5, 0.5, 1)
	if !(front < back) {
		t.Errorf("z=0 should be nearer than z=1: %f >= %f", front, back)
	}
	if !near(front, DefaultDistance-0.5) {
		t.Errorf("front depth: want %f, got %f", DefaultDistance-0.5, front)
	}
}

func TestCameraYawTurnsDepth(t *testing.T) {
	cam := testCamera(90, 0)
	if left, right := cam.Depth(0, 0.5, 0.5), cam.Depth(1, 0.5, 0.5); !(left < right) {
		t.Errorf("with yaw 90, x=1 should be farther than x=0: %f >= %f", right, left)
	}
}

func TestCameraPerspective(t *testing.T) {
	cam := testCamera(0, 0)
	var (
		front, _ = cam.Project(1, 0.5, 0)
		back, _  = cam.Project(1, 0.5, 1)
	)
	if !(front.X > back.X) {
		t.Errorf("nearer point should be farther from the center: %v vs %v", front, back)
	}
}

func TestCameraZoomDepth(t *testing.T) {
	points := [][3]float64{
		{0, 0, 0},
		{1, 1, 1},
		{0.5, 0.2, 0.9},
		{1, 0, 0.3},
	}
	for _, p := range points {
		cam := testCamera(40, 25)
		before := cam.Depth(p[0], p[1], p[2])
		cam.Zoom(1.5)
		after := cam.Depth(p[0], p[1], p[2])
		if after < before {
			t.Errorf("%v: depth decreased after zoom out: %f < %f", p, after, before)
		}
		if !near(after-before, 1.5) {
			t.Errorf("%v: depth should move with the distance: %f", p, after-before)
		}
	}
}

func TestCameraRotate(t *testing.T) {
	tests := []struct {
		Yaw    float64
		Pitch  float64
		DYaw   float64
		DPitch float64
		WYaw   float64
		WPitch float64
	}{
		{Yaw: 350, Pitch: 0, DYaw: 20, DPitch: 0, WYaw: 10, WPitch: 0},
		{Yaw: 10, Pitch: 0, DYaw: -40, DPitch: 0, WYaw: 330, WPitch: 0},
		{Yaw: 0, Pitch: 80, DYaw: 0, DPitch: 30, WYaw: 0, WPitch: MaxPitch},
		{Yaw: 0, Pitch: -80, DYaw: 720, DPitch: -30, WYaw: 0, WPitch: -MaxPitch},
		{Yaw: 45, Pitch: 10, DYaw: 15, DPitch: 5, WYaw: 60, WPitch: 15},
	}
	for _, tt := range tests {
		cam := testCamera(tt.Yaw, tt.Pitch)
		cam.Rotate(tt.DYaw, tt.DPitch)
		if !near(cam.Yaw(), tt.WYaw) || !near(cam.Pitch(), tt.WPitch) {
			t.Errorf("rotate(%f, %f) from (%f, %f): want (%f, %f), got (%f, %f)", tt.DYaw, tt.DPitch, tt.Yaw, tt.Pitch, tt.WYaw, tt.WPitch, cam.Yaw(), cam.Pitch())
		}
	}
}

func TestCameraZoomClamp(t *testing.T) {
	cam := NewCamera()
	cam.Zoom(-100)
	if cam.Distance() != MinDistance {
		t.Errorf("distance should be clamped to %f, got %f", MinDistance, cam.Distance())
	}
	cam.Zoom(1000)
	if cam.Distance() != MaxDistance {
		t.Errorf("distance should be clamped to %f, got %f", MaxDistance, cam.Distance())
	}
	cam.SetFieldOfView(0)
	if cam.FieldOfView() <= 0 {
		t.Errorf("field of view should stay positive, got %f", cam.FieldOfView())
	}
	cam.SetFieldOfView(200)
	if cam.FieldOfView() >= 180 {
		t.Errorf("field of view should stay below 180, got %f", cam.FieldOfView())
	}
}

func TestCameraDepthBounds(t *testing.T) {
	cam := testCamera(123, -40)
	bounds := cam.DepthBounds()
	for _, x := range []float64{0, 1} {
		for _, y := range []float64{0, 1} {
			for _, z := range []float64{0, 1} {
				d := cam.Depth(x, y, z)
				if d < bounds.Min()-epsilon || d > bounds.Max()+epsilon {
					t.Errorf("corner (%f, %f, %f) outside depth bounds: %f not in %v", x, y, z, d, bounds)
				}
			}
		}
	}
}
