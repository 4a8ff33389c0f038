package config

// File represents the structure of the nbenv.yaml configuration file.
type File struct {
	Version    string   `yaml:"version"`
	StateDir   string   `yaml:"state_dir"`
	Registries []string `yaml:"registries"`
	DebounceMS int      `yaml:"debounce_ms"`
}

// Config is the resolved tool configuration after defaults are applied.
type Config struct {
	// StateDir is where per-notebook environment state lives.
	StateDir string
	// Registries are the registry root directories, searched in order.
	Registries []string
	// DebounceMS is the watch-mode event coalescing window in milliseconds.
	DebounceMS int
}
