package settings

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/seaworld/pkg/math"
)

func TestLoadMissingFile(t *testing.T) {
	got := Load(filepath.Join(t.TempDir(), "nope.txt"))
	if got != Default() {
		t.Errorf("Load(missing) = %+v, want defaults %+v", got, Default())
	}
}

func TestDefault(t *testing.T) {
	d := Default()
	if d.ClearColor != (math.Vec3{}) {
		t.Errorf("expected black clear color, got %v", d.ClearColor)
	}
	if d.OverlayEnabled {
		t.Error("expected overlay off by default")
	}
	if d.CameraPosition != (math.Vec3{Z: 3}) {
		t.Errorf("expected camera at (0,0,3), got %v", d.CameraPosition)
	}
	if d.CameraFront != (math.Vec3{Z: -1}) {
		t.Errorf("expected camera front (0,0,-1), got %v", d.CameraFront)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Settings
		fields int
	}{
		{
			name:  "complete",
			input: "0.1\n0.2\n0.3\n1\n4\n5\n6\n0\n0\n1\n",
			want: Settings{
				ClearColor:     math.Vec3{X: 0.1, Y: 0.2, Z: 0.3},
				OverlayEnabled: true,
				CameraPosition: math.Vec3{X: 4, Y: 5, Z: 6},
				CameraFront:    math.Vec3{Z: 1},
			},
			fields: 10,
		},
		{
			name:  "short file keeps defaults for the tail",
			input: "0.5 0.5 0.5 0 -2",
			want: Settings{
				ClearColor:     math.Vec3{X: 0.5, Y: 0.5, Z: 0.5},
				CameraPosition: math.Vec3{X: -2, Y: 0, Z: 3},
				CameraFront:    math.Vec3{Z: -1},
			},
			fields: 5,
		},
		{
			name:  "bad token stops parsing",
			input: "0.25\nabc\n0.75\n1\n",
			want: Settings{
				ClearColor:     math.Vec3{X: 0.25},
				CameraPosition: math.Vec3{Z: 3},
				CameraFront:    math.Vec3{Z: -1},
			},
			fields: 1,
		},
		{
			name:   "empty",
			input:  "",
			want:   Default(),
			fields: 0,
		},
		{
			name:  "non-integer overlay flag",
			input: "0 0 0 yes 1 1 1",
			want: Settings{
				CameraPosition: math.Vec3{Z: 3},
				CameraFront:    math.Vec3{Z: -1},
			},
			fields: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n := Parse(strings.NewReader(tt.input))
			if got != tt.want {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
			if n != tt.fields {
				t.Errorf("Parse() read %d fields, want %d", n, tt.fields)
			}
		})
	}
}

func TestWriteFormat(t *testing.T) {
	s := Default()
	s.OverlayEnabled = true
	s.ClearColor = math.Vec3{X: 0.1}

	var buf bytes.Buffer
	if err := Write(&buf, s); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	want := "0.1\n0\n0\n1\n0\n0\n3\n0\n0\n-1\n"
	if buf.String() != want {
		t.Errorf("Write() = %q, want %q", buf.String(), want)
	}
}

func TestSaveLoadIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resources", "program_state.txt")

	s := Settings{
		ClearColor:     math.Vec3{X: 0.1, Y: 1.0 / 3.0, Z: 0.7},
		OverlayEnabled: true,
		CameraPosition: math.Vec3{X: -12.345678, Y: 1e-7, Z: 3},
		CameraFront:    math.Vec3{X: 0.57735026, Y: -0.57735026, Z: 0.57735026},
	}

	if err := Save(path, s); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}

	loaded := Load(path)
	if loaded != s {
		t.Errorf("Load(Save(s)) = %+v, want %+v", loaded, s)
	}

	if err := Save(path, loaded); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading resaved file: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("Save(Load(f)) changed the file:\n%s\nvs\n%s", first, second)
	}
}

func TestSaveIntoMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "state.txt")
	if err := Save(path, Default()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if got := Load(path); got != Default() {
		t.Errorf("Load() = %+v, want defaults", got)
	}
}
