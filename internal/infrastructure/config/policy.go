package config

// Policy holds the resolution and write policies for the debug log
// facility. Values are resolved once at startup from defaults, an
// optional config file, and environment variables, in that order of
// precedence.
type Policy struct {
	// Enabled gates all writes. When false the facade turns every
	// log call into a no-op.
	Enabled bool `yaml:"enabled"`

	// PreferBuildOutput routes debug output under the build output
	// directory (env override, workspace root, or cwd) instead of a
	// .debug directory.
	PreferBuildOutput bool `yaml:"prefer_build_output"`

	// PreferWorkspaceRoot anchors the debug directory at the
	// workspace root rather than the current working directory.
	PreferWorkspaceRoot bool `yaml:"prefer_workspace_root"`

	// BuildOutputEnv names the environment variable that, when set,
	// overrides the build output directory entirely.
	BuildOutputEnv string `yaml:"build_output_env"`

	// BuildSubdir is the build output directory name used when
	// BuildOutputEnv is unset (relative to workspace root or cwd).
	BuildSubdir string `yaml:"build_subdir"`
}

// DefaultPolicy returns the built-in policy: writes enabled, plain
// cwd/.debug resolution, standard build output settings.
func DefaultPolicy() Policy {
	return Policy{
		Enabled:             true,
		PreferBuildOutput:   false,
		PreferWorkspaceRoot: false,
		BuildOutputEnv:      "SCRATCHLOG_BUILD_DIR",
		BuildSubdir:         "build",
	}
}
