package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileConfig is the optional on-disk configuration, looked up as
// .quill.yaml in the working directory, then in the home directory. Flags
// override anything set here.
type fileConfig struct {
	Database string `yaml:"database"`
	Verbose  bool   `yaml:"verbose"`
}

func loadConfig() fileConfig {
	var cfg fileConfig
	for _, path := range configCandidates() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			continue
		}
		return cfg
	}
	return cfg
}

func configCandidates() []string {
	candidates := []string{".quill.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".quill.yaml"))
	}
	return candidates
}
