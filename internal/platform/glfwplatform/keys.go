package glfwplatform

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/kjkrol/gochess/internal/platform"
)

var keyMap = map[glfw.Key]platform.Key{
	glfw.KeyUp:        platform.KeyUp,
	glfw.KeyDown:      platform.KeyDown,
	glfw.KeyLeft:      platform.KeyLeft,
	glfw.KeyRight:     platform.KeyRight,
	glfw.KeyW:         platform.KeyW,
	glfw.KeyA:         platform.KeyA,
	glfw.KeyS:         platform.KeyS,
	glfw.KeyD:         platform.KeyD,
	glfw.KeyR:         platform.KeyR,
	glfw.KeyEscape:    platform.KeyEscape,
	glfw.KeySpace:     platform.KeySpace,
	glfw.KeyEnter:     platform.KeyEnter,
	glfw.KeyKPEnter:   platform.KeyEnter,
	glfw.KeyTab:       platform.KeyTab,
	glfw.KeyBackspace: platform.KeyBackspace,
}

func convertKey(key glfw.Key) platform.Key {
	if k, ok := keyMap[key]; ok {
		return k
	}
	return platform.KeyUnknown
}

func convertButton(button glfw.MouseButton) platform.Button {
	switch button {
	case glfw.MouseButtonLeft:
		return platform.ButtonLeft
	case glfw.MouseButtonRight:
		return platform.ButtonRight
	case glfw.MouseButtonMiddle:
		return platform.ButtonMiddle
	}
	return 0
}
