package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Request limits shared by /api/render, /api/inspect and /api/scene-config
const (
	minImageSize = 16
	maxImageSize = 2000
	maxDepthCap  = 16
	maxWorkers   = 256

	shutdownTimeout = 5 * time.Second
)

// Server handles web requests for the raytracer
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// RenderRequest represents a render or inspect request from the client.
// Zero Width, Height and Workers and a negative MaxDepth mean "use the scene default".
type RenderRequest struct {
	Scene    string `json:"scene"`    // Scene id, e.g. "default" or "file:mirror-hall"
	Width    int    `json:"width"`    // Image width
	Height   int    `json:"height"`   // Image height
	MaxDepth int    `json:"maxDepth"` // Maximum reflection/refraction depth
	Workers  int    `json:"workers"`  // Parallel workers, 0 = auto-detect
}

// Handler returns the routes served by Run
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Serve static files
	mux.Handle("/", http.FileServer(http.Dir("static/")))

	// API endpoints
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:        fmt.Sprintf(":%d", s.port),
		Handler:     s.Handler(),
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Starting web server on http://localhost%s", srv.Addr)
		errChan <- srv.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	log.Printf("Shutting down web server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes returns built-in and file scenes grouped for the scene picker
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	response, err := scene.ListAllScenes()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// parseCommonSceneParams parses the scene, size, depth and worker parameters
func (s *Server) parseCommonSceneParams(r *http.Request, req *RenderRequest) error {
	query := r.URL.Query()

	req.Scene = query.Get("scene")
	if req.Scene == "" {
		req.Scene = "default" // Default scene
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, minImageSize, maxImageSize); err != nil {
		return err
	}
	if req.Height, err = parseIntParam(query, "height", 0, minImageSize, maxImageSize); err != nil {
		return err
	}
	if req.MaxDepth, err = parseIntParam(query, "maxDepth", -1, 0, maxDepthCap); err != nil {
		return err
	}
	if req.Workers, err = parseIntParam(query, "workers", 0, 1, maxWorkers); err != nil {
		return err
	}
	return nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// createScene resolves the requested scene and applies the request overrides
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, error) {
	sceneObj, err := scene.ResolveScene(req.Scene)
	if err != nil {
		return nil, err
	}

	if req.Width > 0 {
		sceneObj.CameraConfig.Width = req.Width
	}
	if req.Height > 0 {
		sceneObj.CameraConfig.Height = req.Height
	}
	if req.MaxDepth >= 0 {
		sceneObj.RenderConfig.MaxDepth = req.MaxDepth
	}
	if req.Workers > 0 {
		sceneObj.RenderConfig.NumWorkers = req.Workers
	}

	// Fill in the resolved values so handlers can validate against them
	req.Width = sceneObj.CameraConfig.Width
	req.Height = sceneObj.CameraConfig.Height
	req.MaxDepth = sceneObj.RenderConfig.MaxDepth
	return sceneObj, nil
}

// handleSceneConfig returns the default configuration for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "default" // Default scene
	}

	sceneObj, err := scene.ResolveScene(sceneName)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Unknown scene: " + sceneName})
		return
	}

	response := map[string]interface{}{
		"scene": sceneName,
		"defaults": map[string]interface{}{
			"width":       sceneObj.CameraConfig.Width,
			"height":      sceneObj.CameraConfig.Height,
			"fieldOfView": sceneObj.CameraConfig.FieldOfView,
			"maxDepth":    sceneObj.RenderConfig.MaxDepth,
			"fresnel":     sceneObj.World.Fresnel,
			"objects":     sceneObj.GetPrimitiveCount(),
		},
		"light": map[string]interface{}{
			"type":      sceneObj.World.Light.Type(),
			"position":  tuple3(sceneObj.World.Light.Position),
			"intensity": tuple3(sceneObj.World.Light.Intensity),
		},
		"limits": map[string]interface{}{
			"width":    map[string]int{"min": minImageSize, "max": maxImageSize},
			"height":   map[string]int{"min": minImageSize, "max": maxImageSize},
			"maxDepth": map[string]int{"min": 0, "max": maxDepthCap},
			"workers":  map[string]int{"min": 1, "max": maxWorkers},
		},
	}

	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
