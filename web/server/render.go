package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene    string // Scene id (builtin or json:<name>)
	Width    int    // Image width, 0 keeps the scene's
	Height   int    // Image height, 0 keeps the scene's aspect ratio
	MaxDepth int    // Reflection/refraction depth, -1 keeps the scene's
	Thumb    int    // Thumbnail size, 0 returns the full image
	Upload   bool   // Publish the render to S3
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, 16, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, 16, 2000); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(query, "depth", s.config.MaxDepth, 0, 50); err != nil {
		return nil, err
	}
	if req.Thumb, err = parseIntParam(query, "thumb", 0, 16, 1024); err != nil {
		return nil, err
	}
	if value := query.Get("upload"); value != "" {
		if req.Upload, err = strconv.ParseBool(value); err != nil {
			return nil, fmt.Errorf("invalid upload: %s", value)
		}
	}

	return req, nil
}

// createScene builds the requested scene with the request's image size
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, error) {
	camera := scene.CameraConfig{Width: req.Width}
	sceneObj, err := loaders.CreateScene(req.Scene, s.config.ScenesDir, camera)
	if err != nil {
		return nil, err
	}
	if req.Width > 0 && req.Height > 0 {
		sceneObj.Camera.AspectRatio = float64(req.Width) / float64(req.Height)
	}
	if req.MaxDepth >= 0 {
		sceneObj.MaxDepth = req.MaxDepth
	}
	return sceneObj, nil
}

// handleRender renders a scene and responds with a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, scene.ErrUnknownScene) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}

	if req.Upload && s.publisher == nil {
		http.Error(w, "S3 upload is not configured", http.StatusServiceUnavailable)
		return
	}

	renderID := fmt.Sprintf("%s-%d", sceneObj.Name, time.Now().UnixNano())
	logger := NewWebLogger(renderID, s.logger)

	config := renderer.DefaultConfig()
	config.NumWorkers = s.config.Workers
	raytracer := renderer.NewRaytracer(sceneObj, renderer.NewCamera(sceneObj.Camera), config, logger)

	// The request context cancels the render when the client disconnects
	img, stats, err := raytracer.Render(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Render error: %v", err), http.StatusInternalServerError)
		return
	}

	data, err := output.EncodePNG(img)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	key := fmt.Sprintf("renders/%s.png", renderID)
	if req.Upload {
		url, err := s.publisher.Upload(r.Context(), key, data, "image/png")
		if err != nil {
			logger.Printf("Upload failed: %v\n", err)
			http.Error(w, "Upload failed", http.StatusBadGateway)
			return
		}
		w.Header().Set("X-Render-URL", url)
	}

	if req.Thumb > 0 {
		thumb := output.Thumbnail(img, req.Thumb)
		if req.Upload {
			url, err := s.publisher.UploadPNG(r.Context(), output.ThumbnailName(key), thumb)
			if err != nil {
				logger.Printf("Thumbnail upload failed: %v\n", err)
				http.Error(w, "Upload failed", http.StatusBadGateway)
				return
			}
			w.Header().Set("X-Thumbnail-URL", url)
		}
		if data, err = output.EncodePNG(thumb); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Duration-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.Header().Set("X-Render-Coverage", strconv.FormatFloat(stats.Coverage(), 'f', 4, 64))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
