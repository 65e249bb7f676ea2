package server

import (
	"errors"
	"net/http"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	ViewCosine   float64                `json:"viewCosine"` // Visible normal against the camera's view axis
	Color        [3]float64             `json:"color"` // Linear shaded color of the pixel
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// inspectPixel casts the primary ray through pixel (x, y) and describes the
// first surface it hits
func inspectPixel(sceneObj *scene.Scene, camera *renderer.Camera, minT float64, x, y int) InspectResponse {
	ray := camera.GetRay(x, y)
	response := InspectResponse{
		Color: toArray(sceneObj.ShadeClosestIntersection(ray, minT)),
	}

	hit, ok := sceneObj.ClosestIntersection(ray, minT)
	if !ok {
		return response
	}

	response.Hit = true
	response.Point = toArray(hit.Position)
	response.Normal = toArray(hit.Normal)
	response.Distance = hit.T
	response.FrontFace = hit.FrontFace()
	response.ViewCosine = -hit.FacingNormal().Dot(camera.GetCameraForward())

	if shape, ok := hit.Intersectable.(geometry.Shape); ok {
		response.GeometryType = shape.Kind()
	}
	if r, ok := hit.Intersectable.(core.Renderable); ok {
		response.Properties = map[string]interface{}{
			"reflectance":       r.Reflectance(),
			"refractance":       r.Refractance(),
			"indexOfRefraction": r.IndexOfRefraction(),
		}
	}

	return response
}

func toArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// handleInspect reports what the primary ray through a pixel hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, scene.ErrUnknownScene) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}

	camera := renderer.NewCamera(sceneObj.Camera)
	width, height := camera.Size()

	query := r.URL.Query()
	x, err := parseIntParam(query, "x", width/2, 0, width-1)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	y, err := parseIntParam(query, "y", height/2, 0, height-1)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(sceneObj, camera, renderer.DefaultConfig().MinT, x, y))
}
