// Package config resolves the tool-level settings an Operation does not
// carry itself: which runtime binary to call, which helper image to run,
// and which user the helper runs as.
//
// Precedence, lowest to highest: built-in defaults, settings file, .env
// file, process environment. Command-line flags override individual fields
// after Load returns.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"

	"github.com/volfs/volfs/internal/constants"
)

// Settings carries the resolved tool-level defaults.
type Settings struct {
	// Image is the helper image. It must provide cp, rm, ls and a shell.
	Image string `toml:"image"`

	// User is who the helper process runs as, in any form the runtime's
	// --user flag accepts (name, uid, or uid:gid).
	User string `toml:"user"`

	// Runtime is the container runtime binary to invoke.
	Runtime string `toml:"runtime"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Image:   constants.DefaultImage,
		User:    constants.DefaultUser,
		Runtime: constants.DefaultRuntime,
	}
}

// Load resolves Settings. explicitPath, when non-empty, names a settings
// file that must exist. Otherwise the first of $VOLFS_CONFIG, ./.volfs.toml
// and the per-user config file found is read; absence of all three is fine.
func Load(explicitPath string) (Settings, error) {
	// A project-local .env feeds the environment lookups below. Values
	// already present in the real environment keep precedence.
	_ = godotenv.Load()

	s := Default()

	if path := resolvePath(explicitPath); path != "" {
		if err := fromFile(&s, path); err != nil {
			return Settings{}, err
		}
	}

	fromEnv(&s)

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// resolvePath picks the settings file to read. Only the explicit path and
// $VOLFS_CONFIG are required to exist; the discovered locations are skipped
// silently when absent.
func resolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if path := os.Getenv(constants.EnvConfig); path != "" {
		return path
	}
	if _, err := os.Stat(constants.LocalConfigFile); err == nil {
		return constants.LocalConfigFile
	}
	if dir, err := os.UserConfigDir(); err == nil {
		path := filepath.Join(dir, constants.UserConfigDir, constants.UserConfigFile)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func fromFile(s *Settings, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read settings file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, s); err != nil {
		return fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	return nil
}

func fromEnv(s *Settings) {
	if v := os.Getenv(constants.EnvImage); v != "" {
		s.Image = v
	}
	if v := os.Getenv(constants.EnvUser); v != "" {
		s.User = v
	}
	if v := os.Getenv(constants.EnvRuntime); v != "" {
		s.Runtime = v
	}
}

// Validate reports every invalid field at once rather than stopping at the
// first, so a bad settings file can be fixed in one pass.
func (s Settings) Validate() error {
	var result *multierror.Error

	if strings.TrimSpace(s.Image) == "" {
		result = multierror.Append(result, fmt.Errorf("image must not be empty"))
	}
	if strings.TrimSpace(s.User) == "" {
		result = multierror.Append(result, fmt.Errorf("user must not be empty"))
	}
	if strings.TrimSpace(s.Runtime) == "" {
		result = multierror.Append(result, fmt.Errorf("runtime must not be empty"))
	} else if strings.ContainsAny(s.Runtime, " \t") {
		result = multierror.Append(result, fmt.Errorf("runtime must be a binary name or path without spaces, got %q", s.Runtime))
	}

	return result.ErrorOrNil()
}
