package config

import (
    "context"
    "fmt"
    "path/filepath"
    "strings"

    "github.com/viant/afs"
    "github.com/viant/afs/file"
    "github.com/viant/afs/url"
    "gopkg.in/yaml.v3"

    "github.com/iliyamo/openspace-organizer/internal/model"
)

// LoadLayout reads a YAML layout descriptor such as
//
//   tables: 8
//   seats_per_table: 5
//
// from location.  Missing keys fall back to model.DefaultLayout.
func LoadLayout(ctx context.Context, fs afs.Service, location string) (model.Layout, error) {
    URL := location
    if !strings.Contains(location, "://") {
        abs, err := filepath.Abs(location)
        if err != nil {
            return model.Layout{}, fmt.Errorf("layout: resolve %s: %w", location, err)
        }
        URL = url.Normalize(abs, file.Scheme)
    }
    data, err := fs.DownloadWithURL(ctx, URL)
    if err != nil {
        return model.Layout{}, fmt.Errorf("layout: read %s: %w", location, err)
    }
    return ParseLayout(data)
}

// ParseLayout decodes and validates a YAML layout descriptor.
func ParseLayout(data []byte) (model.Layout, error) {
    layout := model.DefaultLayout
    if err := yaml.Unmarshal(data, &layout); err != nil {
        return model.Layout{}, fmt.Errorf("layout: decode: %w", err)
    }
    if err := validate.Struct(layout); err != nil {
        return model.Layout{}, fmt.Errorf("layout: %w", err)
    }
    return layout, nil
}
