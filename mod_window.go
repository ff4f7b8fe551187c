package wobble

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowState is the shared window resource. Resized is true for exactly one
// frame after the framebuffer size changed; consumers (camera aspect, surface
// reconfigure) react to it in that frame.
type WindowState struct {
	windowGlfw   *glfw.Window
	WindowWidth  int
	WindowHeight int
	windowTitle  string

	Resized bool
}

type WindowModule struct {
	Width  int
	Height int
	Title  string
}

func (mod WindowModule) Install(app *App, cmd *Commands) {
	width, height, title := mod.Width, mod.Height, mod.Title
	if width <= 0 {
		width = 1280
	}
	if height <= 0 {
		height = 720
	}
	if title == "" {
		title = "Wobble"
	}

	ws := createWindowState(width, height, title)
	cmd.AddResources(ws)
	app.Logger().Infof("Created window (%dx%d) '%s'", width, height, title)

	app.UseSystem(
		System(windowEventsSystem).
			InStage(PreUpdate),
	)
}

func createWindowState(windowWidth int, windowHeight int, windowTitle string) *WindowState {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		panic(err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI) // Important: tell GLFW we don't want OpenGL
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		panic(err)
	}

	return &WindowState{
		windowGlfw:   win,
		WindowWidth:  windowWidth,
		WindowHeight: windowHeight,
		windowTitle:  windowTitle,
	}
}

func windowEventsSystem(s *WindowState, cmd *Commands) {
	s.Resized = false
	glfw.PollEvents()

	if s.windowGlfw.ShouldClose() {
		cmd.Quit()
		return
	}

	w, h := s.windowGlfw.GetFramebufferSize()
	if w != s.WindowWidth || h != s.WindowHeight {
		s.WindowWidth = w
		s.WindowHeight = h
		s.Resized = true
	}
}
