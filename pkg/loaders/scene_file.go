package loaders

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// SceneFile is the JSON description of a scene. Vectors and colors are
// written as [x, y, z] arrays.
type SceneFile struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Background  [3]float64             `json:"background"`
	MaxDepth    *int                   `json:"maxDepth,omitempty"`
	Camera      *CameraCfg             `json:"camera,omitempty"`
	Materials   map[string]MaterialCfg `json:"materials"`
	Spheres     []SphereCfg            `json:"spheres,omitempty"`
	Planes      []PlaneCfg             `json:"planes,omitempty"`
	Boxes       []BoxCfg               `json:"boxes,omitempty"`
	Triangles   []TriangleCfg          `json:"triangles,omitempty"`
	Meshes      []MeshCfg              `json:"meshes,omitempty"`
	Lights      []LightCfg             `json:"lights"`
}

// CameraCfg mirrors scene.CameraConfig; omitted fields keep their defaults
type CameraCfg struct {
	Center      [3]float64 `json:"center"`
	LookAt      [3]float64 `json:"lookAt"`
	Up          [3]float64 `json:"up,omitempty"`
	Width       int        `json:"width,omitempty"`
	AspectRatio float64    `json:"aspectRatio,omitempty"`
	VFov        float64    `json:"vfov,omitempty"`
}

// MaterialCfg describes a surface. Diffuse defaults to 1 when omitted.
type MaterialCfg struct {
	Color     [3]float64  `json:"color"`
	Texture   string      `json:"texture,omitempty"` // Image file, relative to the scene file
	Checker   *CheckerCfg `json:"checker,omitempty"`
	Diffuse   *float64    `json:"diffuse,omitempty"`
	Specular  float64     `json:"specular,omitempty"`
	Shininess float64     `json:"shininess,omitempty"`

	Reflect     float64     `json:"reflect,omitempty"`
	Refract     float64     `json:"refract,omitempty"`
	IOR         float64     `json:"ior,omitempty"`
	ReflectTint *[3]float64 `json:"reflectTint,omitempty"`
	RefractTint *[3]float64 `json:"refractTint,omitempty"`
}

// CheckerCfg describes a uv checkerboard albedo
type CheckerCfg struct {
	Scale float64    `json:"scale"`
	Even  [3]float64 `json:"even"`
	Odd   [3]float64 `json:"odd"`
}

type SphereCfg struct {
	Center   [3]float64 `json:"center"`
	Radius   float64    `json:"radius"`
	Material string     `json:"material"`
}

type PlaneCfg struct {
	Point    [3]float64 `json:"point"`
	Normal   [3]float64 `json:"normal"`
	Material string     `json:"material"`
}

type BoxCfg struct {
	Min      [3]float64 `json:"min"`
	Max      [3]float64 `json:"max"`
	Material string     `json:"material"`
}

type TriangleCfg struct {
	Vertices [3][3]float64 `json:"vertices"`
	Material string        `json:"material"`
}

type MeshCfg struct {
	File      string     `json:"file"` // OBJ/STL/PLY, relative to the scene file
	Material  string     `json:"material"`
	Normalize bool       `json:"normalize,omitempty"`
	Smooth    bool       `json:"smooth,omitempty"`
	Scale     float64    `json:"scale,omitempty"`
	Offset    [3]float64 `json:"offset,omitempty"`
}

// LightCfg describes a light. Type is "point", "directional" or "spot".
// Intensity is Color scaled by Power (1 when omitted).
type LightCfg struct {
	Type      string     `json:"type"`
	Position  [3]float64 `json:"position,omitempty"`
	Direction [3]float64 `json:"direction,omitempty"`
	Color     [3]float64 `json:"color"`
	Power     float64    `json:"power,omitempty"`
	AngleDeg  float64    `json:"angleDeg,omitempty"` // Spot cone half-angle
}

func vec(a [3]float64) core.Vec3 {
	return core.NewVec3(a[0], a[1], a[2])
}

// LoadSceneFile reads a JSON scene file. Texture and mesh paths are resolved
// relative to the file's directory.
func LoadSceneFile(path string) (*scene.Scene, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	s, err := ParseScene(file, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("scene file %s: %w", path, err)
	}
	return s, nil
}

// ParseScene decodes a JSON scene and builds it
func ParseScene(r io.Reader, baseDir string) (*scene.Scene, error) {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	var cfg SceneFile
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene JSON: %w", err)
	}
	return cfg.Build(baseDir)
}

// Build validates the description and constructs the scene
func (cfg *SceneFile) Build(baseDir string) (*scene.Scene, error) {
	s := scene.New()
	s.Name = cfg.Name
	s.SetBackground(vec(cfg.Background))

	if cfg.MaxDepth != nil {
		if *cfg.MaxDepth < 0 {
			return nil, fmt.Errorf("maxDepth must be >= 0, got %d", *cfg.MaxDepth)
		}
		s.MaxDepth = *cfg.MaxDepth
	}

	if cfg.Camera != nil {
		s.Camera = scene.MergeCameraConfig(s.Camera, scene.CameraConfig{
			Center:      vec(cfg.Camera.Center),
			LookAt:      vec(cfg.Camera.LookAt),
			Up:          vec(cfg.Camera.Up),
			Width:       cfg.Camera.Width,
			AspectRatio: cfg.Camera.AspectRatio,
			VFov:        cfg.Camera.VFov,
		})
	}

	surfaces := make(map[string]material.Surface, len(cfg.Materials))
	for name, mc := range cfg.Materials {
		surface, err := mc.Build(baseDir)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		surfaces[name] = surface
	}
	lookup := func(kind string, i int, name string) (material.Surface, error) {
		surface, ok := surfaces[name]
		if !ok {
			return material.Surface{}, fmt.Errorf("%s %d: unknown material %q", kind, i, name)
		}
		return surface, nil
	}

	var objects []core.Renderable

	for i, sc := range cfg.Spheres {
		surface, err := lookup("sphere", i, sc.Material)
		if err != nil {
			return nil, err
		}
		if sc.Radius <= 0 {
			return nil, fmt.Errorf("sphere %d: radius must be > 0, got %g", i, sc.Radius)
		}
		objects = append(objects, geometry.NewSphere(vec(sc.Center), sc.Radius, surface))
	}

	for i, pc := range cfg.Planes {
		surface, err := lookup("plane", i, pc.Material)
		if err != nil {
			return nil, err
		}
		if vec(pc.Normal).IsZero() {
			return nil, fmt.Errorf("plane %d: normal must be non-zero", i)
		}
		objects = append(objects, geometry.NewPlane(vec(pc.Point), vec(pc.Normal), surface))
	}

	for i, bc := range cfg.Boxes {
		surface, err := lookup("box", i, bc.Material)
		if err != nil {
			return nil, err
		}
		objects = append(objects, geometry.NewBox(vec(bc.Min), vec(bc.Max), surface))
	}

	for i, tc := range cfg.Triangles {
		surface, err := lookup("triangle", i, tc.Material)
		if err != nil {
			return nil, err
		}
		tri := geometry.NewTriangle(vec(tc.Vertices[0]), vec(tc.Vertices[1]), vec(tc.Vertices[2]), surface)
		if tri.GetNormal().IsZero() {
			return nil, fmt.Errorf("triangle %d is degenerate", i)
		}
		objects = append(objects, tri)
	}

	for i, mc := range cfg.Meshes {
		surface, err := lookup("mesh", i, mc.Material)
		if err != nil {
			return nil, err
		}
		mesh, err := LoadMesh(resolve(baseDir, mc.File), surface, MeshOptions{
			Normalize: mc.Normalize,
			Smooth:    mc.Smooth,
			Scale:     mc.Scale,
			Offset:    vec(mc.Offset),
		})
		if err != nil {
			return nil, fmt.Errorf("mesh %d: %w", i, err)
		}
		objects = append(objects, mesh)
	}

	if err := s.Insert(objects...); err != nil {
		return nil, err
	}

	for i, lc := range cfg.Lights {
		light, err := lc.Build()
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		s.InsertLight(light)
	}

	return s, nil
}

// Build constructs the surface, loading its texture if one is named
func (mc MaterialCfg) Build(baseDir string) (material.Surface, error) {
	surface := material.Surface{
		Albedo:          material.NewSolidColor(vec(mc.Color)),
		Diffuse:         1.0,
		Specular:        mc.Specular,
		Shininess:       mc.Shininess,
		Reflect:         mc.Reflect,
		Refract:         mc.Refract,
		RefractiveIndex: mc.IOR,
	}
	if mc.Diffuse != nil {
		surface.Diffuse = *mc.Diffuse
	}

	switch {
	case mc.Texture != "" && mc.Checker != nil:
		return surface, fmt.Errorf("texture and checker are mutually exclusive")
	case mc.Texture != "":
		texture, err := LoadTexture(resolve(baseDir, mc.Texture), true)
		if err != nil {
			return surface, err
		}
		surface.Albedo = texture
	case mc.Checker != nil:
		scale := mc.Checker.Scale
		if scale == 0 {
			scale = 1
		}
		surface.Albedo = material.NewChecker(scale, vec(mc.Checker.Even), vec(mc.Checker.Odd))
	}

	if mc.ReflectTint != nil {
		surface.ReflectiveTint = material.NewSolidColor(vec(*mc.ReflectTint))
	}
	if mc.RefractTint != nil {
		surface.RefractiveTint = material.NewSolidColor(vec(*mc.RefractTint))
	}

	return surface, surface.Validate()
}

// Build constructs the light
func (lc LightCfg) Build() (core.Light, error) {
	power := lc.Power
	if power < 0 {
		return nil, fmt.Errorf("light power must not be negative, got %g", power)
	}
	if power == 0 {
		power = 1
	}
	color := vec(lc.Color)
	if color.X < 0 || color.Y < 0 || color.Z < 0 {
		return nil, fmt.Errorf("light color must not be negative, got %v", lc.Color)
	}
	intensity := color.Multiply(power)

	switch lc.Type {
	case "point":
		return lights.NewPoint(vec(lc.Position), intensity), nil
	case "directional":
		if vec(lc.Direction).IsZero() {
			return nil, fmt.Errorf("directional light needs a direction")
		}
		return lights.NewDirectional(vec(lc.Direction), intensity), nil
	case "spot":
		if vec(lc.Direction).IsZero() {
			return nil, fmt.Errorf("spot light needs a direction")
		}
		if lc.AngleDeg <= 0 || lc.AngleDeg > 180 {
			return nil, fmt.Errorf("spot angleDeg must be in (0, 180], got %g", lc.AngleDeg)
		}
		return lights.NewSpotDegrees(vec(lc.Position), vec(lc.Direction), intensity, lc.AngleDeg), nil
	default:
		return nil, fmt.Errorf("unknown light type %q", lc.Type)
	}
}

// resolve interprets relative paths against the scene file's directory
func resolve(baseDir, path string) string {
	if filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}
