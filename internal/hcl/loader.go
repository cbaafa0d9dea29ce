package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/amazego/internal/ctxlog"
	"github.com/vk/amazego/internal/fsutil"
	"github.com/vk/amazego/internal/maze"
)

// Loader reads maze manifests.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load reads every path. Directories are searched recursively for .hcl
// files, .hcl files are parsed as manifests, and any other file is read as
// a single text layout. Names must be unique across everything loaded.
func (l *Loader) Load(ctx context.Context, paths ...string) (*Manifest, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Manifest loader started.", "path_count", len(paths))

	manifest := &Manifest{}
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		var files []string
		switch {
		case info.IsDir():
			files, err = fsutil.FindManifests(path, ".hcl")
			if err != nil {
				return nil, fmt.Errorf("error walking %s: %w", path, err)
			}
			logger.Debug("Discovered manifest files.", "dir", path, "count", len(files))
		case filepath.Ext(path) == ".hcl":
			files = []string{path}
		default:
			def, err := loadLayoutFile(path)
			if err != nil {
				return nil, err
			}
			if err := manifest.add(def); err != nil {
				return nil, err
			}
			continue
		}

		for _, file := range files {
			src, err := os.ReadFile(file)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", file, err)
			}
			defs, err := l.Parse(ctx, src, file)
			if err != nil {
				return nil, err
			}
			for _, def := range defs {
				if err := manifest.add(def); err != nil {
					return nil, err
				}
			}
		}
	}

	logger.Debug("Manifest loading complete.", "definitions", len(manifest.Definitions))
	return manifest, nil
}

// Parse decodes one manifest. filename is used for diagnostics and to
// resolve layout_file paths.
func (l *Loader) Parse(ctx context.Context, src []byte, filename string) ([]*Definition, error) {
	logger := ctxlog.FromContext(ctx).With("file", filename)

	file, diags := l.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	var defs []*Definition
	for _, b := range root.Mazes {
		def, err := translateMaze(b, filename)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	for _, b := range root.Graphs {
		def, err := translateGraph(b, filename)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}

	logger.Debug("Manifest decoded.", "mazes", len(root.Mazes), "graphs", len(root.Graphs))
	return defs, nil
}

func (m *Manifest) add(def *Definition) error {
	if prev, ok := m.Lookup(def.Name); ok {
		return fmt.Errorf("duplicate definition %q in %s (first defined in %s)", def.Name, def.Source, prev.Source)
	}
	m.Definitions = append(m.Definitions, def)
	return nil
}

// loadLayoutFile reads a bare text layout, naming it after the file.
func loadLayoutFile(path string) (*Definition, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout %s: %w", path, err)
	}
	grid, err := maze.ParseGrid(string(src))
	if err != nil {
		return nil, fmt.Errorf("invalid layout %s: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &Definition{Name: name, Kind: KindMaze, Source: path, Grid: grid}, nil
}

// errorAt wraps a message in a single diagnostic.
func errorAt(summary, detail string, subject *hcl.Range) hcl.Diagnostics {
	return hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   detail,
		Subject:  subject,
	}}
}
