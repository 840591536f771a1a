package debug

import (
	"reflect"
	"testing"
)

func TestText(t *testing.T) {
	clock := Clock{Time: 12.34, Speed: 4, Body: "Earth", Orbit: 61.3, Log: "[2024-03-01 00:00:00] Failed to load: x"}
	got := Text(true, true, true, 60, 3*1024*1024, clock)
	want := []string{
		"FPS: 60",
		"Mem: 3.00 MiB",
		"t=12.3s speed=4x",
		"Earth orbit 61.3 deg",
		"[2024-03-01 00:00:00] Failed to load: x",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Text() = %q, want %q", got, want)
	}
	if got := Text(false, false, false, 60, 0, clock); len(got) != 0 {
		t.Fatalf("nothing enabled: %q", got)
	}
	got = Text(false, false, true, 0, 0, Clock{Time: 1, Speed: 0.25})
	if len(got) != 1 || got[0] != "t=1.0s speed=0.25x" {
		t.Fatalf("clock only = %q", got)
	}
}

func TestVisible(t *testing.T) {
	d := New()
	if d.Visible() {
		t.Fatal("new Debug should be hidden")
	}
	d.ShowClock = true
	if !d.Visible() {
		t.Fatal("clock overlay should make Debug visible")
	}
}
