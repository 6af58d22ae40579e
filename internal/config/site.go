package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	siteerrors "git.home.luguber.info/inful/sitegen/internal/errors"
)

// SiteFileName is the optional site-wide settings file looked up next to
// config.json in the input directory.
const SiteFileName = "site.yaml"

// Site holds site-wide values exposed to every template under the "site" key.
type Site struct {
	Title   string         `yaml:"title,omitempty"`
	BaseURL string         `yaml:"base_url,omitempty"`
	Params  map[string]any `yaml:"params,omitempty"`
}

// LoadSite reads site.yaml from the input directory. A missing file is not an
// error: the site block is optional and absent by default.
func LoadSite(inputDir string) (*Site, error) {
	path := filepath.Join(inputDir, SiteFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, siteerrors.Wrapf(err, siteerrors.CategoryConfig, "read site settings %s", path)
	}

	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, siteerrors.Wrapf(err, siteerrors.CategoryConfig, "invalid YAML in %s", path)
	}
	return &site, nil
}

// Bindings returns the map handed to templates as the "site" variable.
func (s *Site) Bindings() map[string]any {
	if s == nil {
		return nil
	}
	b := map[string]any{
		"title":    s.Title,
		"base_url": s.BaseURL,
	}
	if len(s.Params) > 0 {
		b["params"] = s.Params
	}
	return b
}
