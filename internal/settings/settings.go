// Package settings persists the viewer state that survives restarts:
// clear color, overlay visibility and the camera placement.
//
// The file holds ten whitespace-separated tokens, one per line:
//
//	clearColor.r clearColor.g clearColor.b overlay(0|1)
//	position.x position.y position.z front.x front.y front.z
package settings

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Faultbox/seaworld/internal/logger"
	"github.com/Faultbox/seaworld/pkg/math"
	"go.uber.org/zap"
)

// Settings is the persisted subset of the scene state.
type Settings struct {
	ClearColor     math.Vec3
	OverlayEnabled bool
	CameraPosition math.Vec3
	CameraFront    math.Vec3
}

// Default returns the state used when no file exists.
func Default() Settings {
	return Settings{
		CameraPosition: math.Vec3{X: 0, Y: 0, Z: 3},
		CameraFront:    math.Vec3{X: 0, Y: 0, Z: -1},
	}
}

// Load reads settings from path. It never fails: a missing file yields the
// defaults, a short or malformed file keeps every field read before the
// first bad token and the defaults for the rest.
func Load(path string) Settings {
	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("settings unreadable, using defaults", zap.String("path", path), zap.Error(err))
		}
		return Default()
	}
	defer f.Close()

	s, n := Parse(f)
	if n < fieldCount {
		logger.Debug("settings file incomplete", zap.String("path", path), zap.Int("fields", n))
	}
	return s
}

// Save writes s to path, creating the parent directory when needed.
func Save(path string, s Settings) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating settings dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating settings file: %w", err)
	}
	if err := Write(f, s); err != nil {
		f.Close()
		return fmt.Errorf("writing settings: %w", err)
	}
	return f.Close()
}

const fieldCount = 10

// fields returns pointers to the persisted floats in file order,
// with the overlay flag slot left nil.
func (s *Settings) fields() [fieldCount]*float32 {
	return [fieldCount]*float32{
		&s.ClearColor.X, &s.ClearColor.Y, &s.ClearColor.Z,
		nil,
		&s.CameraPosition.X, &s.CameraPosition.Y, &s.CameraPosition.Z,
		&s.CameraFront.X, &s.CameraFront.Y, &s.CameraFront.Z,
	}
}

// Parse reads tokens from r in file order and returns the settings together
// with the number of fields that were read successfully.
func Parse(r io.Reader) (Settings, int) {
	s := Default()
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	slots := s.fields()
	for i, slot := range slots {
		if !sc.Scan() {
			return s, i
		}
		tok := sc.Text()
		if slot == nil {
			on, ok := parseFlag(tok)
			if !ok {
				return s, i
			}
			s.OverlayEnabled = on
			continue
		}
		v, err := strconv.ParseFloat(tok, 32)
		if err != nil {
			return s, i
		}
		*slot = float32(v)
	}
	return s, fieldCount
}

// parseFlag accepts the integer form the file stores booleans in.
func parseFlag(tok string) (bool, bool) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return false, false
	}
	return n != 0, true
}

// Write encodes s with one token per line. Floats use the shortest
// representation that reads back to the same float32.
func Write(w io.Writer, s Settings) error {
	bw := bufio.NewWriter(w)
	for _, slot := range s.fields() {
		var tok string
		if slot == nil {
			tok = "0"
			if s.OverlayEnabled {
				tok = "1"
			}
		} else {
			tok = strconv.FormatFloat(float64(*slot), 'g', -1, 32)
		}
		if _, err := bw.WriteString(tok + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
