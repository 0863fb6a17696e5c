package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/qmuntal/gltf"
	"go.uber.org/zap"

	"github.com/Faultbox/gltfpack/internal/logger"
	"github.com/Faultbox/gltfpack/internal/settings"
)

// ErrUnsupportedFormat is returned for inputs that are not .gltf or .glb files.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// ExitError carries the process status for a failed pack.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }
func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode returns the status the process should exit with.
func (e *ExitError) ExitCode() int { return e.Code }

// Stats summarizes the contents of a glTF document.
type Stats struct {
	Nodes      int      `json:"nodes"`
	Meshes     int      `json:"meshes"`
	Primitives int      `json:"primitives"`
	Materials  int      `json:"materials"`
	Textures   int      `json:"textures"`
	Images     int      `json:"images"`
	Animations int      `json:"animations"`
	Extensions []string `json:"extensions,omitempty"`
}

// Report is written as JSON to the -r path.
type Report struct {
	Generator  string            `json:"generator"`
	Input      string            `json:"input"`
	Output     string            `json:"output,omitempty"`
	Scene      Stats             `json:"scene"`
	Settings   settings.Settings `json:"settings"`
	DurationMS int64             `json:"duration_ms"`
}

// GLTFPacker is the default Packer. It loads the input container, writes it
// back unchanged (binary for .glb outputs) and reports what it found; the
// optimization stages themselves are provided by external tools.
type GLTFPacker struct {
	Generator string
}

// NewGLTFPacker creates a packer stamping generator into written assets.
func NewGLTFPacker(generator string) *GLTFPacker {
	return &GLTFPacker{Generator: generator}
}

// Pack implements Packer.
func (p *GLTFPacker) Pack(input, output, report string, s settings.Settings) error {
	start := time.Now()

	switch strings.ToLower(filepath.Ext(input)) {
	case ".gltf", ".glb":
	default:
		return &ExitError{Code: 2, Err: fmt.Errorf("%s: %w", input, ErrUnsupportedFormat)}
	}

	doc, err := gltf.Open(input)
	if err != nil {
		return fmt.Errorf("loading %s: %w", input, err)
	}

	stats := collectStats(doc)
	logger.Info("input loaded",
		zap.String("input", input),
		zap.Int("nodes", stats.Nodes),
		zap.Int("meshes", stats.Meshes),
		zap.Int("materials", stats.Materials),
		zap.Int("textures", stats.Textures),
		zap.Int("animations", stats.Animations))

	if output != "" {
		if p.Generator != "" {
			doc.Asset.Generator = p.Generator
		}
		if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		save := gltf.Save
		if strings.EqualFold(filepath.Ext(output), ".glb") {
			save = gltf.SaveBinary
		}
		if err := save(doc, output); err != nil {
			return fmt.Errorf("writing %s: %w", output, err)
		}
		logger.Info("output written", zap.String("output", output))
	}

	if report != "" {
		r := Report{
			Generator:  p.Generator,
			Input:      input,
			Output:     output,
			Scene:      stats,
			Settings:   s,
			DurationMS: time.Since(start).Milliseconds(),
		}
		if err := writeReport(report, r); err != nil {
			return fmt.Errorf("writing report %s: %w", report, err)
		}
	}

	return nil
}

func collectStats(doc *gltf.Document) Stats {
	stats := Stats{
		Nodes:      len(doc.Nodes),
		Meshes:     len(doc.Meshes),
		Materials:  len(doc.Materials),
		Textures:   len(doc.Textures),
		Images:     len(doc.Images),
		Animations: len(doc.Animations),
		Extensions: doc.ExtensionsUsed,
	}
	for _, m := range doc.Meshes {
		stats.Primitives += len(m.Primitives)
	}
	return stats
}

func writeReport(path string, r Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
