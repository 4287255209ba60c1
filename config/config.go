package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Checksum    ChecksumConfig    `yaml:"checksum"`
	Compression CompressionConfig `yaml:"compression"`
	ChunkSize   uint32            `yaml:"chunk_size"` // Read size for streaming checksums
	Debug       bool              `yaml:"debug"`      // Enable debug level logging
}

// Holds checksum-specific configuration
type ChecksumConfig struct {
	Algorithm string `yaml:"algorithm"` // fletcher4, fletcher2 or sha256
}

// Holds decompression-specific configuration
type CompressionConfig struct {
	Algorithm     string `yaml:"algorithm"`       // lz4, lzjb or zstd
	MaxOutputSize uint32 `yaml:"max_output_size"` // Upper bound on uncompressed sizes
}

// Returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		Debug:     false,
		ChunkSize: 1024 * 1024, // 1MB
		Checksum: ChecksumConfig{
			Algorithm: "fletcher4",
		},
		Compression: CompressionConfig{
			Algorithm:     "lz4",
			MaxOutputSize: 16 * 1024 * 1024, // 16MB
		},
	}
}

// Loads configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	// Read the config file
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Start from defaults so omitted keys keep their documented values
	config := DefaultConfig()

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func validateConfig(config *Config) error {
	switch config.Checksum.Algorithm {
	case "fletcher4", "fletcher2", "sha256":
	default:
		return fmt.Errorf("checksum.algorithm must be fletcher4, fletcher2 or sha256")
	}

	switch config.Compression.Algorithm {
	case "lz4", "lzjb", "zstd":
	default:
		return fmt.Errorf("compression.algorithm must be lz4, lzjb or zstd")
	}

	if config.ChunkSize != 0 && config.ChunkSize%16 != 0 {
		return fmt.Errorf("chunk_size must be a multiple of 16")
	}

	return nil
}
