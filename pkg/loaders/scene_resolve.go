package loaders

import (
	"path/filepath"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// CreateScene resolves a scene id: a built-in preset, json:<name> for
// <scenesDir>/<name>.json, or a direct path to a .json scene file. Camera
// overrides are merged over the scene's own camera.
func CreateScene(id, scenesDir string, camera scene.CameraConfig) (*scene.Scene, error) {
	switch {
	case strings.HasPrefix(id, "json:"):
		return loadJSONScene(filepath.Join(scenesDir, strings.TrimPrefix(id, "json:")+".json"), camera)
	case strings.HasSuffix(strings.ToLower(id), ".json"):
		return loadJSONScene(id, camera)
	default:
		return scene.Create(id, camera)
	}
}

func loadJSONScene(path string, camera scene.CameraConfig) (*scene.Scene, error) {
	s, err := LoadSceneFile(path)
	if err != nil {
		return nil, err
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	s.Camera = scene.MergeCameraConfig(s.Camera, camera)
	return s, nil
}
