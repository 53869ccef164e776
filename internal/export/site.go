// Package export writes the rendered portfolio, its manifest and a copy of
// the static assets to a directory so it can be hosted without the server.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/a-h/templ"
	"golang.org/x/sync/errgroup"

	"sagar88.com.np/internal/components"
	"sagar88.com.np/internal/models"
)

const (
	IndexFile    = "index.html"
	SectionsDir  = "sections"
	ManifestFile = "portfolio.json"
	StaticDir    = "static"
)

// Manifest is the JSON companion of the exported page
type Manifest struct {
	Profile  models.Profile   `json:"profile"`
	Projects []models.Project `json:"projects"`
	Skills   []models.Skill   `json:"skills"`
	Timeline models.Timeline  `json:"timeline"`
	LoadedAt time.Time        `json:"loaded_at"`
}

// Result lists the files written by Site, relative to the output directory
type Result struct {
	Files []string
}

// Site renders the page, one fragment per section and the manifest into dir.
// When staticDir is set its files are copied under dir/static, matching the
// /static/ paths the page links.
func Site(ctx context.Context, dir, staticDir string, data components.PageData) (*Result, error) {
	if err := os.MkdirAll(filepath.Join(dir, SectionsDir), 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	sections := components.Sections(data)
	files := make([]string, len(sections)+2)
	files[0] = IndexFile
	files[1] = ManifestFile

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return writeComponent(ctx, filepath.Join(dir, IndexFile), components.Page(data))
	})
	g.Go(func() error {
		return writeManifest(filepath.Join(dir, ManifestFile), data)
	})
	for i, section := range sections {
		rel := filepath.Join(SectionsDir, section.Name+".html")
		files[i+2] = rel
		g.Go(func() error {
			return writeComponent(ctx, filepath.Join(dir, rel), section.View)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if staticDir != "" {
		copied, err := copyStatic(ctx, staticDir, filepath.Join(dir, StaticDir))
		if err != nil {
			return nil, err
		}
		files = append(files, copied...)
	}

	return &Result{Files: files}, nil
}

// copyStatic copies every regular file under src into dst, overwriting
// earlier exports, and returns the copied paths relative to dst's parent.
func copyStatic(ctx context.Context, src, dst string) ([]string, error) {
	info, err := os.Stat(src)
	if err != nil {
		return nil, fmt.Errorf("static directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("static directory: %s is not a directory", src)
	}

	var copied []string
	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if err := copyFile(path, target); err != nil {
			return err
		}
		copied = append(copied, filepath.Join(StaticDir, rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("copy static files: %w", err)
	}
	return copied, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func writeComponent(ctx context.Context, path string, c templ.Component) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return fmt.Errorf("render %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeManifest(path string, data components.PageData) error {
	manifest := Manifest{
		Profile:  data.Profile,
		Projects: data.Projects,
		Skills:   data.Skills,
		Timeline: data.Timeline,
		LoadedAt: data.LoadedAt.UTC(),
	}
	out, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
