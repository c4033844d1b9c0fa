package config

import "testing"

func TestFPSLimitClamped(t *testing.T) {
	defer SetFPSLimit(120)

	SetFPSLimit(-5)
	if got := GetFPSLimit(); got != 0 {
		t.Errorf("GetFPSLimit() = %d after negative set, want 0", got)
	}

	SetFPSLimit(10000)
	if got := GetFPSLimit(); got != 480 {
		t.Errorf("GetFPSLimit() = %d after huge set, want 480", got)
	}

	SetFPSLimit(90)
	if got := GetFPSLimit(); got != 90 {
		t.Errorf("GetFPSLimit() = %d, want 90", got)
	}
}

func TestVSyncRoundTrip(t *testing.T) {
	defer SetVSync(false)

	SetVSync(true)
	if !GetVSync() {
		t.Error("GetVSync() = false after enabling")
	}
	SetVSync(false)
	if GetVSync() {
		t.Error("GetVSync() = true after disabling")
	}
}
