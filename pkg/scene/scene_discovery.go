package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrUnknownScene is returned when a scene name matches no built-in preset
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`                 // Unique identifier
	DisplayName string `json:"displayName"`        // UI display name
	Description string `json:"description"`        // Optional description
	Type        string `json:"type"`               // "builtin" or "json"
	FilePath    string `json:"filePath,omitempty"` // Path to scene file (json type only)
}

// builtinScene pairs a preset's metadata with its constructor
type builtinScene struct {
	info    SceneInfo
	factory func(...CameraConfig) (*Scene, error)
}

var builtinScenes = []builtinScene{
	{
		info:    SceneInfo{ID: "default", DisplayName: "Default Scene", Description: "Spheres of every material on a checkered ground"},
		factory: NewDefaultScene,
	},
	{
		info:    SceneInfo{ID: "mirrors", DisplayName: "Parallel Mirrors", Description: "Two facing mirrors reflecting until the depth limit"},
		factory: NewMirrorsScene,
	},
	{
		info:    SceneInfo{ID: "glass", DisplayName: "Glass", Description: "Refractive spheres and a tinted glass block"},
		factory: NewGlassScene,
	},
	{
		info:    SceneInfo{ID: "cornell", DisplayName: "Cornell Box", Description: "Cornell box with a mirrored block and glass sphere under a spot light"},
		factory: NewCornellScene,
	},
	{
		info:    SceneInfo{ID: "sphere-grid", DisplayName: "Sphere Grid", Description: "10x10 grid of rainbow-colored reflective spheres"},
		factory: NewSphereGridScene,
	},
	{
		info:    SceneInfo{ID: "textures", DisplayName: "Textures", Description: "Checker and gradient textures mapped onto every primitive"},
		factory: NewTextureScene,
	},
}

// Create builds the built-in preset with the given id
func Create(id string, cameraOverrides ...CameraConfig) (*Scene, error) {
	for _, b := range builtinScenes {
		if b.info.ID == id {
			s, err := b.factory(cameraOverrides...)
			if err != nil {
				return nil, fmt.Errorf("failed to build scene %q: %w", id, err)
			}
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
}

// BuiltinScenes returns metadata for every built-in preset
func BuiltinScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtinScenes))
	for i, b := range builtinScenes {
		scenes[i] = b.info
		scenes[i].Type = "builtin"
	}
	return scenes
}

// ListJSONScenes scans dir for .json scene files
func ListJSONScenes(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		// No scenes directory, nothing to list
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	var scenes []SceneInfo
	for _, filePath := range files {
		scenes = append(scenes, ParseJSONMetadata(filePath))
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})

	return scenes, nil
}

// ParseJSONMetadata reads the name and description fields of a JSON scene
// file. Files that cannot be read keep fallback values derived from the
// filename.
func ParseJSONMetadata(filePath string) SceneInfo {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	info := SceneInfo{
		ID:          "json:" + nameWithoutExt,
		DisplayName: titleCase(nameWithoutExt),
		Type:        "json",
		FilePath:    filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return info
	}

	var header struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return info
	}
	if header.Name != "" {
		info.DisplayName = header.Name
	}
	info.Description = header.Description

	return info
}

// List returns the built-in presets followed by the JSON scenes found in dir
func List(dir string) ([]SceneInfo, error) {
	jsonScenes, err := ListJSONScenes(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list JSON scenes: %w", err)
	}
	return append(BuiltinScenes(), jsonScenes...), nil
}

// titleCase converts a filename-style string to title case
// e.g., "cornell-empty" -> "Cornell Empty"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
