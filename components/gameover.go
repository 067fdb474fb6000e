package components

import "github.com/yohamta/donburi"

// GameOverOption represents the available game over panel buttons
type GameOverOption int

const (
	GameOverRestart GameOverOption = iota
	GameOverQuit
)

// GameOverData stores the game over panel state
type GameOverData struct {
	Shown          bool
	ShowCount      int
	SelectedOption GameOverOption
}

// GameOver is the component type for the game over panel
var GameOver = donburi.NewComponentType[GameOverData]()
