package wobble

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	KeyM int = iota
	KeyEscape
	KeySpace
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle

	keyCount
)

type InputModule struct{}

// Input carries per-frame key and mouse state. JustPressed/JustReleased are
// edge flags valid for the frame they were detected in.
type Input struct {
	Pressed      [keyCount]bool
	JustPressed  [keyCount]bool
	JustReleased [keyCount]bool

	MouseX, MouseY           float64
	MouseDeltaX, MouseDeltaY float64
	ScrollY                  float64

	WindowWidth, WindowHeight int
}

func (mod InputModule) Install(app *App, cmd *Commands) {
	input := &Input{}
	cmd.AddResources(input)

	// Scroll arrives via callback only; accumulate until the input system
	// consumes it.
	if ws := resource[WindowState](app); ws != nil && ws.windowGlfw != nil {
		ws.windowGlfw.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
			input.ScrollY += yoff
		})
	}

	app.UseSystem(
		System(inputSystem).
			InStage(PreUpdate),
	)
}

func inputSystem(s *WindowState, input *Input) {
	if s.windowGlfw == nil {
		return
	}

	for key, glfwKey := range keyToGlfw {
		action := s.windowGlfw.GetKey(glfwKey)
		updateKeyEdges(input, key, glfw.Press == action, glfw.Release == action)
	}

	for btn, glfwBtn := range buttonToGlfw {
		action := s.windowGlfw.GetMouseButton(glfwBtn)
		updateKeyEdges(input, btn, glfw.Press == action, glfw.Release == action)
	}

	mx, my := s.windowGlfw.GetCursorPos()
	input.MouseDeltaX = mx - input.MouseX
	input.MouseDeltaY = my - input.MouseY
	input.MouseX = mx
	input.MouseY = my

	input.WindowWidth = s.WindowWidth
	input.WindowHeight = s.WindowHeight
}

func updateKeyEdges(input *Input, key int, pressed bool, released bool) {
	input.JustPressed[key] = false
	input.JustReleased[key] = false

	if pressed {
		if !input.Pressed[key] {
			input.JustPressed[key] = true
		}
		input.Pressed[key] = true
	} else if released {
		if input.Pressed[key] {
			input.JustReleased[key] = true
		}
		input.Pressed[key] = false
	}
}

// ConsumeScroll returns the accumulated scroll offset and resets it.
func (input *Input) ConsumeScroll() float64 {
	y := input.ScrollY
	input.ScrollY = 0
	return y
}

var keyToGlfw = map[int]glfw.Key{
	KeyM:      glfw.KeyM,
	KeyEscape: glfw.KeyEscape,
	KeySpace:  glfw.KeySpace,
}

var buttonToGlfw = map[int]glfw.MouseButton{
	MouseButtonLeft:   glfw.MouseButtonLeft,
	MouseButtonRight:  glfw.MouseButtonRight,
	MouseButtonMiddle: glfw.MouseButtonMiddle,
}
