package main

import (
	"flag"
	"runtime"

	"kinetic-sculpture/internal/config"
	"kinetic-sculpture/internal/game"
	"kinetic-sculpture/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	fpsLimit := flag.Int("fps", config.GetFPSLimit(), "frame rate cap, 0 for uncapped")
	vsync := flag.Bool("vsync", false, "sync buffer swaps to the display refresh")
	flag.Parse()

	config.SetFPSLimit(*fpsLimit)
	config.SetVSync(*vsync)

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	closer.Bind(glfw.Terminate)

	window, err := game.SetupWindow()
	if err != nil {
		panic(err)
	}

	im := input.NewManager()
	app := game.NewApp(window, im)
	closer.Bind(app.Cleanup)

	game.SetupInputHandlers(app)

	app.Run()

	// Runs the bound cleanups (GPU resources, glfw.Terminate) and exits
	closer.Close()
}
