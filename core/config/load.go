package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load reads the configuration file at path, applying it over the embedded
// defaults. A missing file is not an error: init must come up on a system
// that has never been configured.
func Load(fsys afero.Fs, path string) (*Configuration, error) {
	out := Default()

	contents, err := afero.ReadFile(fsys, path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return out, nil
	case err != nil:
		return nil, err
	}

	if err := yaml.UnmarshalStrict(contents, out); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration %s: %w", path, err)
	}
	return out, nil
}
