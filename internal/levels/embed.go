// Package levels ships the built-in level pack.
// Importing it registers the "classic" pack with the registry.
package levels

import (
	"embed"
	"sync"

	"github.com/vovakirdan/colorbubble/internal/level"
	"github.com/vovakirdan/colorbubble/internal/registry"
)

// ClassicID is the registry ID of the embedded pack.
const ClassicID = "classic"

//go:embed data/*.png
var data embed.FS

var (
	classicOnce sync.Once
	classicSet  *level.Set
	classicErr  error
)

func init() {
	registry.Register(registry.Pack{
		ID:    ClassicID,
		Title: "Classic",
		Load:  Classic,
	})
}

// Classic decodes the embedded levels once and shares the result. Oracles
// are immutable, so every campaign and SSH session can use the same set.
func Classic() (*level.Set, error) {
	classicOnce.Do(func() {
		classicSet, classicErr = level.LoadAll(data, "data")
	})
	return classicSet, classicErr
}
