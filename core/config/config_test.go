package config

import (
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"

	"github.com/ibis-os/userland/core/sys"
)

func TestBuiltinConfig(t *testing.T) {
	rawConfig := make(map[string]interface{})
	assert.Nil(t, yaml.Unmarshal(defaultConfigData, &rawConfig))

	knownFields := make(map[string]bool)
	rt := reflect.TypeOf(Configuration{})
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		assert.NotEmpty(t, jsonTag)
		jsonField := strings.Split(jsonTag, ",")[0]
		knownFields[jsonField] = true

		if _, ok := rawConfig[jsonField]; !ok {
			assert.False(t, true, "default config missing field: %q", jsonField)
		}
	}

	for k := range rawConfig {
		_, ok := knownFields[k]
		assert.True(t, ok, "default config contains invalid field: %q", k)
	}
}

func TestDefault(t *testing.T) {
	// Will panic() on load failure because it should never happen at runtime.
	cfg := Default()
	require.NotNil(t, cfg)
	assert.Nil(t, cfg.Validate())
	assert.Equal(t, "/ibish", cfg.ShellPath)
	assert.Equal(t, "/sbin:/bin", cfg.SearchPath)
	assert.Equal(t, sys.PowerOff, cfg.Mode())
}

func TestLoad(t *testing.T) {
	t.Run("missing file uses defaults", func(t *testing.T) {
		cfg, err := Load(afero.NewMemMapFs(), DefaultPath)
		require.Nil(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("override keeps unset defaults", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		err := afero.WriteFile(fsys, DefaultPath, []byte("reboot_mode: reboot\n"), 0644)
		require.Nil(t, err)

		cfg, err := Load(fsys, DefaultPath)
		require.Nil(t, err)
		assert.Equal(t, sys.Restart, cfg.Mode())
		assert.Equal(t, "/ibish", cfg.ShellPath)
	})

	t.Run("unknown field fails", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		err := afero.WriteFile(fsys, DefaultPath, []byte("shelll_path: /bin/sh\n"), 0644)
		require.Nil(t, err)

		_, err = Load(fsys, DefaultPath)
		assert.NotNil(t, err)
	})

	t.Run("invalid reboot mode fails", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		err := afero.WriteFile(fsys, DefaultPath, []byte("reboot_mode: halt\n"), 0644)
		require.Nil(t, err)

		_, err = Load(fsys, DefaultPath)
		assert.NotNil(t, err)
	})
}
