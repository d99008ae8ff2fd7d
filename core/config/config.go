// Package config holds the Ibis userland configuration. The system must
// boot with no configuration present, so everything has an embedded default
// and the on-disk file only overrides.
package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"

	"github.com/ibis-os/userland/core/sys"
)

//go:embed default/config.yaml
var defaultConfigData []byte

// DefaultPath is where init looks for an override configuration.
const DefaultPath = "/etc/ibis/config.yaml"

const (
	rebootModePowerOff = "poweroff"
	rebootModeRestart  = "reboot"
)

type Configuration struct {
	// ShellPath is the command interpreter init spawns and respawns.
	ShellPath string `json:"shell_path" validate:"required"`

	// SearchPath is the PATH value threaded into every spawn. It is fixed
	// at boot, before the first shell starts.
	SearchPath string `json:"search_path" validate:"required"`

	// LogoPath is an optional boot-banner override file.
	LogoPath string `json:"logo_path"`

	// Prompt is the shell's prompt string.
	Prompt string `json:"prompt" validate:"required"`

	// RebootMode selects what a completed shutdown sequence asks the
	// kernel for: "poweroff" or "reboot".
	RebootMode string `json:"reboot_mode" validate:"oneof=poweroff reboot"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Mode converts the configured reboot mode to its syscall form.
func (c *Configuration) Mode() sys.RebootMode {
	if c.RebootMode == rebootModeRestart {
		return sys.Restart
	}
	return sys.PowerOff
}

// Default returns the embedded configuration. It panics on a corrupt embed
// because that can only happen at build time.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
