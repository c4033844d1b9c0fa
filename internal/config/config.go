package config

import "sync"

// Settings holds runtime render configuration
type Settings struct {
	mu       sync.RWMutex
	fpsLimit int // frames per second; 0 disables the limiter
	vsync    bool
}

var globalSettings = &Settings{
	fpsLimit: 120, // default value
}

// GetFPSLimit returns the current FPS cap. Zero means uncapped.
func GetFPSLimit() int {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.fpsLimit
}

// SetFPSLimit sets the FPS cap
func SetFPSLimit(limit int) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	// Clamp to reasonable values; 0 stays "uncapped"
	if limit < 0 {
		limit = 0
	}
	if limit > 480 {
		limit = 480
	}

	globalSettings.fpsLimit = limit
}

// GetVSync reports whether buffer swaps wait for the display refresh
func GetVSync() bool {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.vsync
}

// SetVSync toggles vsync. Takes effect at the next window setup.
func SetVSync(enabled bool) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()
	globalSettings.vsync = enabled
}
