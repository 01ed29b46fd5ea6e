// config_validator.go: Configuration validation and tuning suggestions
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package cyclefmt

import "fmt"

// ConfigValidationResult contains validation results and suggestions
type ConfigValidationResult struct {
	IsValid         bool     `json:"is_valid"`
	Warnings        []string `json:"warnings"`
	Suggestions     []string `json:"suggestions"`
	OptimizedConfig *Config  `json:"optimized_config,omitempty"`
}

// ValidateConfig validates a configuration and provides tuning suggestions
func ValidateConfig(config Config) ConfigValidationResult {
	result := ConfigValidationResult{
		IsValid:     true,
		Warnings:    []string{},
		Suggestions: []string{},
	}

	// Validate slot count
	if config.SlotCount < 1 {
		result.IsValid = false
		result.Warnings = append(result.Warnings, "Slot count must be at least 1")
	} else if config.SlotCount > 4096 {
		// Every slot retains its storage until rotated over or torn down
		estimated := estimateSteadyMemory(config)
		result.Warnings = append(result.Warnings, fmt.Sprintf("Large slot count (%d) retains at least ~%d KB per pool at steady state",
			config.SlotCount, estimated/1024))
	}

	// A very shallow ring makes the aliasing window easy to violate
	if config.SlotCount >= 1 && config.SlotCount < 4 {
		result.Suggestions = append(result.Suggestions, fmt.Sprintf("Slot count %d means a result is overwritten after only %d further calls; consider at least 4 slots if results are passed around",
			config.SlotCount, config.SlotCount))
	}

	// Per-goroutine pools multiply retained memory
	if config.SlotCount > 256 {
		result.Suggestions = append(result.Suggestions, "Pools are per-goroutine; deep slot rings multiply retained memory by the number of workers")
	}

	if !result.IsValid {
		optimized := getDefaultConfig()
		optimized.Logger = config.Logger
		result.OptimizedConfig = &optimized
	}

	return result
}

// estimateSteadyMemory estimates the steady-state bytes a pool retains,
// assuming every slot has settled at the shrink floor.
func estimateSteadyMemory(config Config) int {
	return config.SlotCount * shrinkFloor
}
