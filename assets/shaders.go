package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// DesaturateShader greys out the cat once it is dead
	DesaturateShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	src, err := shaderFS.ReadFile("shaders/desaturate.kage")
	if err != nil {
		return fmt.Errorf("read desaturate shader: %w", err)
	}
	DesaturateShader, err = ebiten.NewShader(src)
	if err != nil {
		return fmt.Errorf("compile desaturate shader: %w", err)
	}
	return nil
}
