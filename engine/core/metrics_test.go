package core

import "testing"

func TestMetricsRollingAverage(t *testing.T) {
	m := NewMetrics()
	for i := 0; i < AVG_COUNT; i++ {
		m.Update(0.010)
	}
	if got := m.FrameTime(); got < 9.999 || got > 10.001 {
		t.Fatalf("FrameTime = %v, want 10ms", got)
	}

	// Once AVG_COUNT faster frames arrive, the slow ones are gone.
	for i := 0; i < AVG_COUNT; i++ {
		m.Update(0.002)
	}
	if got := m.FrameTime(); got < 1.999 || got > 2.001 {
		t.Fatalf("FrameTime = %v, want 2ms", got)
	}
}

func TestMetricsFPS(t *testing.T) {
	m := NewMetrics()
	for i := 0; i < 10; i++ {
		m.Update(0.1)
	}
	if m.FPS() != 0 {
		t.Fatalf("FPS before a full second = %v", m.FPS())
	}
	m.Update(0.1)
	fps, frameTime := m.Frame()
	if fps != 10 || frameTime != 100 {
		t.Fatalf("Frame() = %v, %v; want 10, 100", fps, frameTime)
	}
}
