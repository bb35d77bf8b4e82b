package render

import "path/filepath"

// Renderer writes icon files for the generator app.
type Renderer interface {
	// Render writes the size×size icon into dir and returns the file path.
	Render(dir string, size int) (string, error)
}

// NoopRenderer reports the path an icon would be written to without touching
// the filesystem.
type NoopRenderer struct{}

func (NoopRenderer) Render(dir string, size int) (string, error) {
	return filepath.Join(dir, FileName(size)), nil
}

// PNGRenderer rasterizes icons in memory and encodes them as PNG files.
type PNGRenderer struct {
	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
}

func NewPNGRenderer() *PNGRenderer { return &PNGRenderer{} }

func (r *PNGRenderer) Render(dir string, size int) (string, error) {
	if r.Logger != nil {
		g := Geometry(size)
		r.Logger.Infof("render", "icon %dx%d radius=%d stroke=%d", size, size, g.Radius, g.StrokeWidth)
	}
	path, err := WriteIcon(dir, size)
	if err != nil {
		if r.Logger != nil {
			r.Logger.Errorf("render", "icon %d failed: %v", size, err)
		}
		return "", err
	}
	if r.Logger != nil {
		r.Logger.Infof("render", "wrote %s", path)
	}
	return path, nil
}
