package graphics

import (
	"sync"
)

var (
	textureCache = make(map[string]*Texture)
	cacheMutex   sync.RWMutex
)

// GetTexture returns a cached texture for the given path, loading it on
// first use. Rendering is single threaded but model loading may happen
// before the loop starts, so the cache keeps its lock.
func GetTexture(path string) (*Texture, error) {
	cacheMutex.RLock()
	if tex, ok := textureCache[path]; ok {
		cacheMutex.RUnlock()
		return tex, nil
	}
	cacheMutex.RUnlock()

	cacheMutex.Lock()
	defer cacheMutex.Unlock()

	// Double check locking
	if tex, ok := textureCache[path]; ok {
		return tex, nil
	}

	tex, err := LoadTexture(path)
	if err != nil {
		return nil, err
	}

	textureCache[path] = tex
	return tex, nil
}
