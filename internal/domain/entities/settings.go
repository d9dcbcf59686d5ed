package entities

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// LogFileName is the project-root file that captures suppressed external-tool
// output. It is kept out of version control via .gitignore.
const LogFileName = ".gitmod.log"

const defaultNetworkTimeout = 300 * time.Second

// Settings is the resolved runtime configuration. Values come from an
// optional YAML file overridden by environment variables; every field has a
// working default so the tool runs with no configuration at all.
type Settings struct {
	CacheHome     string `yaml:"cache_home"`
	ModulesLocal  string `yaml:"modules_local"`
	SearchAPIHost string `yaml:"search_api_host"`
	Protocol      string `yaml:"protocol"`
	Host          string `yaml:"host"`
	Verbose       bool   `yaml:"verbose"`
	// NetworkTimeoutSeconds bounds clone, pull, and search calls. Zero means
	// the default; negative disables the timeout.
	NetworkTimeoutSeconds int `yaml:"network_timeout_seconds"`
}

// NewSettings loads configuration from the given file (optional, "" skips the
// file entirely) and applies environment overrides and defaults.
func NewSettings(path string) (*Settings, error) {
	settings := &Settings{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
		if unmarshalErr := yaml.Unmarshal([]byte(expandEnvRefs(string(data))), settings); unmarshalErr != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
		}
	}

	settings.applyEnvironment()
	settings.applyDefaults()
	return settings, nil
}

// FindConfigFile searches standard locations for a configuration file and
// returns the first one found, or "" when none exists. A missing file is not
// an error since every field has a default.
func FindConfigFile() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{"."}
	if homeDir != "" {
		locations = append(locations, homeDir, filepath.Join(homeDir, ".config"))
	}

	patterns := []string{".gitmod.yaml", ".gitmod.yml", "gitmod.yaml", "gitmod.yml"}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p
			}
		}
	}

	return ""
}

// NetworkTimeout returns the effective timeout for network-bound operations.
// A zero return means unbounded.
func (s *Settings) NetworkTimeout() time.Duration {
	switch {
	case s.NetworkTimeoutSeconds < 0:
		return 0
	case s.NetworkTimeoutSeconds == 0:
		return defaultNetworkTimeout
	default:
		return time.Duration(s.NetworkTimeoutSeconds) * time.Second
	}
}

// expandEnvRefs resolves ${ENV_VAR} references in the raw config content.
func expandEnvRefs(raw string) string {
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

func (s *Settings) applyEnvironment() {
	if v := os.Getenv("GITMOD_CACHE_HOME"); v != "" {
		s.CacheHome = v
	}
	if v := os.Getenv("GITMOD_MODULES_LOCAL"); v != "" {
		s.ModulesLocal = v
	}
	if v := os.Getenv("GITMOD_SEARCH_API_HOST"); v != "" {
		s.SearchAPIHost = v
	}
	if v := os.Getenv("GITMOD_PROTOCOL"); v != "" {
		s.Protocol = v
	}
	if v := os.Getenv("GITMOD_HOST"); v != "" {
		s.Host = v
	}
	if v := os.Getenv("GITMOD_VERBOSE"); v != "" {
		verbose, parseErr := strconv.ParseBool(v)
		if parseErr != nil {
			logger.Warnf("Ignoring invalid GITMOD_VERBOSE value %q", v)
		} else {
			s.Verbose = verbose
		}
	}
	if v := os.Getenv("GITMOD_NETWORK_TIMEOUT"); v != "" {
		seconds, parseErr := strconv.Atoi(v)
		if parseErr != nil {
			logger.Warnf("Ignoring invalid GITMOD_NETWORK_TIMEOUT value %q", v)
		} else {
			s.NetworkTimeoutSeconds = seconds
		}
	}
}

func (s *Settings) applyDefaults() {
	if s.CacheHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		s.CacheHome = filepath.Join(home, ".modules")
	}
	if s.ModulesLocal == "" {
		s.ModulesLocal = "modules"
	}
	if s.SearchAPIHost == "" {
		s.SearchAPIHost = "api.github.com"
	}
	if s.Protocol == "" {
		s.Protocol = "git"
	}
	if s.Host == "" {
		s.Host = "github.com"
	}
}
