package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// envPrefix is the prefix shared by all policy environment variables.
const envPrefix = "SCRATCHLOG_"

// configFileNames are the config file patterns probed in each search
// path, first match per directory wins.
var configFileNames = []string{
	"scratchlog.yaml",
	"scratchlog.yml",
	".scratchlog.yaml",
	".scratchlog.yml",
}

// Loader resolves the effective Policy from defaults, an optional YAML
// config file, and SCRATCHLOG_* environment variables. Environment
// variables take precedence over the file, the file over defaults.
type Loader struct {
	searchPaths []string
	warnings    []string
}

// NewLoader creates a Loader probing the working directory and the
// user's config directory.
func NewLoader() *Loader {
	workDir, _ := os.Getwd()
	homeDir, _ := os.UserHomeDir()

	return &Loader{
		searchPaths: []string{
			workDir,
			filepath.Join(homeDir, ".config", "scratchlog"),
		},
	}
}

// SetSearchPaths overrides the directories probed for config files.
func (l *Loader) SetSearchPaths(paths []string) {
	l.searchPaths = paths
}

// Warnings returns non-fatal problems encountered during the last Load.
func (l *Loader) Warnings() []string {
	return l.warnings
}

// Load resolves the effective policy.
func (l *Loader) Load() Policy {
	l.warnings = nil
	policy := DefaultPolicy()

	if path := l.findConfigFile(); path != "" {
		if err := l.applyFile(&policy, path); err != nil {
			l.warnings = append(l.warnings,
				fmt.Sprintf("failed to load config from %s: %v", path, err))
		}
	}

	l.applyEnvironment(&policy)

	return policy
}

// findConfigFile returns the first existing config file across the
// search paths. An explicit SCRATCHLOG_CONFIG path wins outright.
func (l *Loader) findConfigFile() string {
	if explicit := os.Getenv(envPrefix + "CONFIG"); explicit != "" {
		return explicit
	}

	for _, dir := range l.searchPaths {
		for _, name := range configFileNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path
			}
		}
	}

	return ""
}

// fileConfig mirrors the YAML schema. Pointer fields distinguish
// "absent" from zero values so the file only overrides what it names.
type fileConfig struct {
	Enabled             *bool   `yaml:"enabled"`
	PreferBuildOutput   *bool   `yaml:"prefer_build_output"`
	PreferWorkspaceRoot *bool   `yaml:"prefer_workspace_root"`
	BuildOutputEnv      *string `yaml:"build_output_env"`
	BuildSubdir         *string `yaml:"build_subdir"`
	WorkspaceRoot       *bool   `yaml:"workspace_root"`
}

func (l *Loader) applyFile(policy *Policy, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	if fc.Enabled != nil {
		policy.Enabled = *fc.Enabled
	}
	if fc.PreferBuildOutput != nil {
		policy.PreferBuildOutput = *fc.PreferBuildOutput
	}
	if fc.PreferWorkspaceRoot != nil {
		policy.PreferWorkspaceRoot = *fc.PreferWorkspaceRoot
	}
	if fc.BuildOutputEnv != nil {
		policy.BuildOutputEnv = *fc.BuildOutputEnv
	}
	if fc.BuildSubdir != nil {
		policy.BuildSubdir = *fc.BuildSubdir
	}

	return nil
}

// applyEnvironment overlays SCRATCHLOG_* variables onto the policy.
func (l *Loader) applyEnvironment(policy *Policy) {
	if v, ok := lookupBool(envPrefix + "ENABLED"); ok {
		policy.Enabled = v
	} else if raw := os.Getenv(envPrefix + "ENABLED"); raw != "" {
		l.warnings = append(l.warnings,
			fmt.Sprintf("invalid boolean in %sENABLED: %q", envPrefix, raw))
	}

	if v, ok := lookupBool(envPrefix + "PREFER_BUILD_OUTPUT"); ok {
		policy.PreferBuildOutput = v
	}
	if v, ok := lookupBool(envPrefix + "PREFER_WORKSPACE_ROOT"); ok {
		policy.PreferWorkspaceRoot = v
	}
	if v := os.Getenv(envPrefix + "BUILD_OUTPUT_ENV"); v != "" {
		policy.BuildOutputEnv = v
	}
	if v := os.Getenv(envPrefix + "BUILD_SUBDIR"); v != "" {
		policy.BuildSubdir = v
	}
}

// MarksWorkspaceRoot reports whether the config file at path declares
// its directory to be a workspace root (workspace_root: true).
func MarksWorkspaceRoot(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return false
	}

	return fc.WorkspaceRoot != nil && *fc.WorkspaceRoot
}

// ConfigFileNames returns the config file patterns probed per
// directory, in priority order.
func ConfigFileNames() []string {
	out := make([]string, len(configFileNames))
	copy(out, configFileNames)
	return out
}

func lookupBool(key string) (bool, bool) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
