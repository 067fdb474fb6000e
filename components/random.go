package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

type RandomData struct {
	Rand *rand.Rand
}

var Random = donburi.NewComponentType[RandomData]()
