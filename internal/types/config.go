package types

// Config mirrors the YAML configuration file accepted by the CLI.
type Config struct {
	Exclude    []string `yaml:"exclude"`
	Workers    int      `yaml:"workers,omitempty"`
	Strict     bool     `yaml:"strict,omitempty"`
	Format     string   `yaml:"format,omitempty"` // "text", "json", "tree"
	Unchanged  bool     `yaml:"unchanged,omitempty"`
	FailOnDiff bool     `yaml:"failOnDiff,omitempty"`
}
