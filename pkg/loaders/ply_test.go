package loaders

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

var squareVertices = []core.Tuple{
	core.NewPoint(0, 0, 0),
	core.NewPoint(1, 0, 0),
	core.NewPoint(1, 1, 0),
	core.NewPoint(0, 1, 0),
}

// createBinaryPLY builds a binary square of two triangles with optional normals and colors
func createBinaryPLY(t *testing.T, order binary.ByteOrder, includeNormals, includeColors bool) []byte {
	t.Helper()
	var buf bytes.Buffer

	format := "binary_little_endian"
	if order == binary.BigEndian {
		format = "binary_big_endian"
	}

	// Write PLY header
	buf.WriteString("ply\n")
	buf.WriteString("format " + format + " 1.0\n")
	buf.WriteString("element vertex 4\n")
	buf.WriteString("property float x\n")
	buf.WriteString("property float y\n")
	buf.WriteString("property float z\n")
	if includeNormals {
		buf.WriteString("property float nx\n")
		buf.WriteString("property float ny\n")
		buf.WriteString("property float nz\n")
	}
	if includeColors {
		buf.WriteString("property uchar red\n")
		buf.WriteString("property uchar green\n")
		buf.WriteString("property uchar blue\n")
	}
	buf.WriteString("element face 2\n")
	buf.WriteString("property list uchar int vertex_indices\n")
	buf.WriteString("end_header\n")

	for _, v := range squareVertices {
		binary.Write(&buf, order, float32(v.X))
		binary.Write(&buf, order, float32(v.Y))
		binary.Write(&buf, order, float32(v.Z))
		if includeNormals {
			binary.Write(&buf, order, [3]float32{0, 0, 1})
		}
		if includeColors {
			binary.Write(&buf, order, [3]uint8{255, 128, 0})
		}
	}

	for _, f := range [][3]int32{{0, 1, 2}, {0, 2, 3}} {
		binary.Write(&buf, order, uint8(3))
		binary.Write(&buf, order, f)
	}
	return buf.Bytes()
}

func checkSquare(t *testing.T, mesh *Mesh) {
	t.Helper()
	if len(mesh.Vertices) != len(squareVertices) {
		t.Fatalf("Expected %d vertices, got %d", len(squareVertices), len(mesh.Vertices))
	}
	for i, expected := range squareVertices {
		if !mesh.Vertices[i].Equal(expected) {
			t.Errorf("Vertex %d: expected %v, got %v", i, expected, mesh.Vertices[i])
		}
	}

	expectedFaces := [][3]int{{0, 1, 2}, {0, 2, 3}}
	if len(mesh.Faces) != len(expectedFaces) {
		t.Fatalf("Expected %d faces, got %d", len(expectedFaces), len(mesh.Faces))
	}
	for i, expected := range expectedFaces {
		if mesh.Faces[i] != expected {
			t.Errorf("Face %d: expected %v, got %v", i, expected, mesh.Faces[i])
		}
	}
}

func TestReadPLY_Binary(t *testing.T) {
	tests := []struct {
		name           string
		order          binary.ByteOrder
		includeNormals bool
		includeColors  bool
	}{
		{"little endian", binary.LittleEndian, false, false},
		{"little endian with normals", binary.LittleEndian, true, false},
		{"little endian with colors", binary.LittleEndian, false, true},
		{"big endian with everything", binary.BigEndian, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := createBinaryPLY(t, tt.order, tt.includeNormals, tt.includeColors)
			mesh, err := ReadPLY(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("Failed to read PLY: %v", err)
			}
			checkSquare(t, mesh)
		})
	}
}

func TestReadPLY_ASCIIPolygonFan(t *testing.T) {
	content := `ply
format ascii 1.0
comment unit square as a single quad
element vertex 4
property double x
property double y
property double z
element face 1
property uchar flags
property list uchar uint vertex_index
end_header
0 0 0
1 0 0
1 1 0
0 1 0
7 4 0 1 2 3
`
	mesh, err := ReadPLY(strings.NewReader(content))
	if err != nil {
		t.Fatalf("Failed to read PLY: %v", err)
	}
	checkSquare(t, mesh)
}

func TestReadPLY_SkipsUnknownElements(t *testing.T) {
	content := `ply
format ascii 1.0
element vertex 3
property float x
property float y
property float z
element edge 1
property int vertex1
property int vertex2
element face 1
property list uchar int vertex_indices
end_header
0 1 0
-1 0 0
1 0 0
0 1
3 0 1 2
`
	mesh, err := ReadPLY(strings.NewReader(content))
	if err != nil {
		t.Fatalf("Failed to read PLY: %v", err)
	}
	if len(mesh.Vertices) != 3 || len(mesh.Faces) != 1 {
		t.Errorf("Expected 3 vertices and 1 face, got %d and %d", len(mesh.Vertices), len(mesh.Faces))
	}
}

func TestReadPLY_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing magic", "format ascii 1.0\nend_header\n"},
		{"unterminated header", "ply\nformat ascii 1.0\n"},
		{"unknown format", "ply\nformat binary_middle_endian 1.0\nend_header\n"},
		{"property before element", "ply\nformat ascii 1.0\nproperty float x\nend_header\n"},
		{"bad count", "ply\nformat ascii 1.0\nelement vertex many\nend_header\n"},
		{"truncated data", "ply\nformat ascii 1.0\nelement vertex 2\nproperty float x\nend_header\n1\n"},
		{"bad index", "ply\nformat ascii 1.0\nelement vertex 1\nproperty float x\nelement face 1\nproperty list uchar int vertex_indices\nend_header\n0\n3 0 1 2\n"},
		{"two-vertex face", "ply\nformat ascii 1.0\nelement vertex 2\nproperty float x\nelement face 1\nproperty list uchar int vertex_indices\nend_header\n0\n1\n2 0 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadPLY(strings.NewReader(tt.content)); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestParsePLYHeader(t *testing.T) {
	headerContent := `ply
format binary_little_endian 1.0
comment Test PLY file
element vertex 100
property float x
property float y
property float z
property float nx
property float ny
property float nz
property uchar red
property uchar green
property uchar blue
element face 50
property list uchar int vertex_indices
end_header
DATA`

	reader := bufio.NewReader(strings.NewReader(headerContent))
	header, err := parsePLYHeader(reader)
	if err != nil {
		t.Fatalf("Failed to parse header: %v", err)
	}

	if header.Format != "binary_little_endian" {
		t.Errorf("Expected format 'binary_little_endian', got '%s'", header.Format)
	}
	if header.Version != "1.0" {
		t.Errorf("Expected version '1.0', got '%s'", header.Version)
	}
	if len(header.Elements) != 2 {
		t.Fatalf("Expected 2 elements, got %d", len(header.Elements))
	}

	vertex, face := header.Elements[0], header.Elements[1]
	if vertex.Name != "vertex" || vertex.Count != 100 || len(vertex.Properties) != 9 {
		t.Errorf("Unexpected vertex element %+v", vertex)
	}
	if face.Name != "face" || face.Count != 50 || len(face.Properties) != 1 {
		t.Errorf("Unexpected face element %+v", face)
	}
	if p := face.Properties[0]; !p.IsList || p.ListType != "uchar" || p.DataType != "int" {
		t.Errorf("Unexpected face property %+v", p)
	}

	// The reader is left at the first data byte
	rest, _ := reader.ReadString('\n')
	if rest != "DATA" {
		t.Errorf("Expected reader positioned at data, got %q", rest)
	}
}

func TestLoadPLY(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "square.ply")
	if err := os.WriteFile(testFile, createBinaryPLY(t, binary.LittleEndian, false, false), 0644); err != nil {
		t.Fatalf("Failed to create test PLY file: %v", err)
	}

	mesh, err := LoadPLY(testFile)
	if err != nil {
		t.Fatalf("Failed to load PLY: %v", err)
	}
	checkSquare(t, mesh)

	if _, err := LoadPLY("nonexistent.ply"); err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}

func TestMesh_Triangles(t *testing.T) {
	mesh := &Mesh{
		Vertices: append(append([]core.Tuple{}, squareVertices...), core.NewPoint(2, 0, 0)),
		Faces:    [][3]int{{0, 1, 2}, {0, 2, 3}, {0, 1, 4}}, // Last face is collinear
	}

	triangles := mesh.Triangles()
	if len(triangles) != 2 {
		t.Fatalf("Expected degenerate face to be dropped, got %d triangles", len(triangles))
	}
	if !triangles[0].P1.Equal(squareVertices[0]) || !triangles[1].P3.Equal(squareVertices[3]) {
		t.Errorf("Unexpected triangle vertices %v %v", triangles[0].P1, triangles[1].P3)
	}
	if !triangles[0].Normal.Equal(core.NewVector(0, 0, -1)) {
		t.Errorf("Expected normal (0, 0, -1), got %v", triangles[0].Normal)
	}
}
