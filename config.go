// config.go: Configuration system for the cyclefmt library
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package cyclefmt

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// SimpleConfig represents the complete configuration from cyclefmt.json
type SimpleConfig struct {
	SlotCount int `json:"slot_count"`
}

// Global configuration state
var (
	globalConfig *Config
	configMutex  sync.RWMutex
)

// SetGlobalConfig sets the global configuration for power users
// This should be called in an init() function of the embedding program
func SetGlobalConfig(config Config) {
	configMutex.Lock()
	defer configMutex.Unlock()
	globalConfig = &config
}

// GetGlobalConfig returns the current global configuration
func GetGlobalConfig() *Config {
	configMutex.RLock()
	defer configMutex.RUnlock()
	return globalConfig
}

// loadConfig loads configuration with priority: Go config > JSON config > defaults
func loadConfig() Config {
	// Check if power user has set global config via Go file
	if config := GetGlobalConfig(); config != nil {
		return *config
	}

	// Try to load from cyclefmt.json
	if config, err := loadJSONConfig(); err == nil {
		return config
	}

	// Return sensible defaults
	return getDefaultConfig()
}

// loadJSONConfig loads configuration from cyclefmt.json
func loadJSONConfig() (Config, error) {
	configPath := findConfigFile()
	if configPath == "" {
		return Config{}, fmt.Errorf("cyclefmt.json not found")
	}

	if filepath.Base(configPath) != "cyclefmt.json" || strings.Contains(configPath, "..") {
		return Config{}, fmt.Errorf("invalid config file path: %s", configPath)
	}
	// nosec G304 - configPath is validated above to prevent path traversal
	data, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read %s: %v", configPath, err)
	}

	var simpleConfig SimpleConfig
	if err := json.Unmarshal(data, &simpleConfig); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %v", configPath, err)
	}

	config := getDefaultConfig()
	if simpleConfig.SlotCount > 0 {
		config.SlotCount = simpleConfig.SlotCount
	}

	return config, nil
}

// findConfigFile searches for cyclefmt.json in current and parent directories
func findConfigFile() string {
	// Start from current directory
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up to 5 parent directories
	for i := 0; i < 5; i++ {
		configPath := filepath.Join(dir, "cyclefmt.json")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			break // Reached root
		}
		dir = parent
	}

	return ""
}

// getDefaultConfig returns the default pool configuration
func getDefaultConfig() Config {
	return Config{
		SlotCount: DefaultSlotCount,
	}
}

// LoadConfig loads the current configuration (for debugging/inspection)
func LoadConfig() Config {
	return loadConfig()
}

// GetConfigSource returns information about the configuration source
func GetConfigSource() string {
	if GetGlobalConfig() != nil {
		return "Go configuration (SetGlobalConfig)"
	}

	if findConfigFile() != "" {
		return "JSON configuration (cyclefmt.json)"
	}

	return "Default configuration"
}

// GetConfigInfo returns a human-readable summary of the active configuration
func GetConfigInfo() string {
	config := loadConfig()
	return fmt.Sprintf("source: %s, slot_count: %d", GetConfigSource(), config.SlotCount)
}
