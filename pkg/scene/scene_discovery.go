package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	builtInGroup  = "Built-in Scenes"
	fileGroup     = "Scene Files"
	fileIDPrefix  = "file:"
	sceneFileExt  = ".json"
	typeBuiltIn   = "builtin"
	typeSceneFile = "file"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Scene name
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "file"
	FilePath    string `json:"filePath"`    // Path to JSON file (file type only)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

type builtInScene struct {
	info  SceneInfo
	build func() (*Scene, error)
}

func newBuiltIn(id, name, description string, build func() (*Scene, error)) builtInScene {
	return builtInScene{
		info: SceneInfo{
			ID:          id,
			Name:        name,
			DisplayName: name,
			Description: description,
			Group:       builtInGroup,
			Type:        typeBuiltIn,
		},
		build: build,
	}
}

var builtInScenes = []builtInScene{
	newBuiltIn("default", "Default Scene", "Three spheres on a floor in front of a wall", NewDefaultScene),
	newBuiltIn("default-world", "Default World", "Reference world with two concentric spheres", NewDefaultWorldScene),
	newBuiltIn("reflection", "Reflection", "Mirror spheres on a checkered floor between facing mirrors", NewReflectionScene),
	newBuiltIn("glass", "Glass", "Hollow glass and water spheres with Fresnel reflectance", NewGlassScene),
	newBuiltIn("patterns", "Patterns", "Stripe, gradient, ring and checker patterns with transforms", NewPatternsScene),
	newBuiltIn("shapes", "Shapes", "Cube, capped cylinder, cone and triangle", NewShapesScene),
}

// ListScenes returns the built-in scenes in display order
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtInScenes))
	for i, s := range builtInScenes {
		scenes[i] = s.info
	}
	return scenes
}

// NewScene creates a built-in scene by id
func NewScene(name string) (*Scene, error) {
	for _, s := range builtInScenes {
		if s.info.ID == name {
			sc, err := s.build()
			if err != nil {
				return nil, fmt.Errorf("build scene %q: %w", name, err)
			}
			return sc, nil
		}
	}
	return nil, fmt.Errorf("unknown scene %q", name)
}

// ResolveScene accepts a built-in id, a "file:<name>" id from ListFileScenes,
// or a path to a .json scene file
func ResolveScene(nameOrPath string) (*Scene, error) {
	if strings.HasPrefix(nameOrPath, fileIDPrefix) {
		files, err := ListFileScenes()
		if err != nil {
			return nil, err
		}
		for _, info := range files {
			if info.ID == nameOrPath {
				return Load(info.FilePath)
			}
		}
		return nil, fmt.Errorf("unknown scene %q", nameOrPath)
	}

	if strings.EqualFold(filepath.Ext(nameOrPath), sceneFileExt) {
		return Load(nameOrPath)
	}
	return NewScene(nameOrPath)
}

// ListFileScenes scans the scenes directory and returns discovered JSON scenes
func ListFileScenes() ([]SceneInfo, error) {
	// Try different possible paths for scenes directory
	possiblePaths := []string{"scenes", "../scenes"}
	var scenesDir string

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			scenesDir = path
			break
		}
	}

	if scenesDir == "" {
		// No scenes directory found, return empty list
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(scenesDir, "*"+sceneFileExt))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		sceneInfo, err := ParseSceneMetadata(filePath)
		if err != nil {
			// Log warning but continue processing other files
			fmt.Printf("Warning: failed to parse metadata for %s: %v\n", filePath, err)
			continue
		}
		scenes = append(scenes, sceneInfo)
	}

	// Sort scenes by display name
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})

	return scenes, nil
}

// ParseSceneMetadata reads the name, description and group of a JSON scene file.
// Missing fields fall back to values derived from the filename.
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	sceneInfo := SceneInfo{
		ID:          fileIDPrefix + nameWithoutExt,
		Name:        titleCase(nameWithoutExt),
		DisplayName: titleCase(nameWithoutExt),
		Group:       fileGroup,
		Type:        typeSceneFile,
		FilePath:    filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		// If we can't read the file, return with fallback values
		return sceneInfo, nil
	}

	var header struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Group       string `json:"group"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return sceneInfo, fmt.Errorf("parse scene header: %w", err)
	}

	if name := strings.TrimSpace(header.Name); name != "" {
		sceneInfo.Name = name
		sceneInfo.DisplayName = name
	}
	sceneInfo.Description = strings.TrimSpace(header.Description)
	if group := strings.TrimSpace(header.Group); group != "" {
		sceneInfo.Group = group
	}

	return sceneInfo, nil
}

// ListAllScenes returns both built-in and file scenes, grouped by category
func ListAllScenes() (ScenesResponse, error) {
	var response ScenesResponse

	fileScenes, err := ListFileScenes()
	if err != nil {
		return response, fmt.Errorf("failed to list scene files: %w", err)
	}

	allScenes := append(ListScenes(), fileScenes...)

	// Group scenes by their Group field
	groupMap := make(map[string][]SceneInfo)
	for _, scene := range allScenes {
		groupMap[scene.Group] = append(groupMap[scene.Group], scene)
	}

	// Create ordered groups (Built-in first, then alphabetical)
	var groupNames []string
	for groupName := range groupMap {
		if groupName != builtInGroup {
			groupNames = append(groupNames, groupName)
		}
	}
	sort.Strings(groupNames)

	if group, exists := groupMap[builtInGroup]; exists {
		response.Groups = append(response.Groups, SceneGroup{
			Name:   builtInGroup,
			Scenes: group,
		})
	}

	for _, groupName := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{
			Name:   groupName,
			Scenes: groupMap[groupName],
		})
	}

	return response, nil
}

// titleCase converts a filename-style string to title case
// e.g., "mirror-hall" -> "Mirror Hall"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
