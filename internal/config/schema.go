package config

// Config represents the complete deliberation configuration
type Config struct {
	Council CouncilConfig `yaml:"council"`
	Auditor AuditorConfig `yaml:"auditor"`
	Memory  MemoryConfig  `yaml:"memory"`
}

// CouncilConfig lists the providers consulted per deliberation and how
// long each is given to answer
type CouncilConfig struct {
	Members        []MemberConfig `yaml:"members"`
	Primary        string         `yaml:"primary"`
	TimeoutSeconds int            `yaml:"timeout_seconds"`
}

// MemberConfig identifies one council seat: a display name, the backing
// provider and the model it queries
type MemberConfig struct {
	Name     string `yaml:"name"`
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
}

// AuditorConfig tunes the coercion audit
type AuditorConfig struct {
	StrictMode bool `yaml:"strict_mode"`
}

// MemoryConfig selects the boundary store backend
type MemoryConfig struct {
	Kind     string `yaml:"kind"`
	Endpoint string `yaml:"endpoint"`
}
