// FILE: lixenwraith/configurator/discovery.go
package configurator

import (
	"os"
	"path/filepath"
)

// DiscoveryOptions configures the search for a configuration file
type DiscoveryOptions struct {
	// Base name of config file (without extension)
	Name string

	// Extensions to try (in order)
	Extensions []string

	// Custom search paths, searched first
	Paths []string

	// Whether to search in XDG config directories
	UseXDG bool

	// Whether to search in current directory
	UseCurrentDir bool
}

// DefaultDiscoveryOptions returns sensible defaults
func DefaultDiscoveryOptions(appName string) DiscoveryOptions {
	return DiscoveryOptions{
		Name:          appName,
		Extensions:    []string{".toml", ".json", ".yaml", ".yml"},
		UseXDG:        true,
		UseCurrentDir: true,
	}
}

// DiscoverFile returns the first existing configuration file, or "" when none exists.
// The result is meant as the Default of a Config variable, so an explicit argument
// or accumulated value still wins.
func DiscoverFile(opts DiscoveryOptions) string {
	var searchPaths []string

	searchPaths = append(searchPaths, opts.Paths...)

	if opts.UseCurrentDir {
		if cwd, err := os.Getwd(); err == nil {
			searchPaths = append(searchPaths, cwd)
		}
	}

	if opts.UseXDG {
		searchPaths = append(searchPaths, xdgConfigPaths(opts.Name)...)
	}

	for _, dir := range searchPaths {
		for _, ext := range opts.Extensions {
			path := filepath.Join(dir, opts.Name+ext)
			if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
				return path
			}
		}
	}

	// No file found is not an error - app can run with defaults/env
	return ""
}

// xdgConfigPaths returns XDG-compliant config search paths
func xdgConfigPaths(appName string) []string {
	var paths []string

	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		paths = append(paths, filepath.Join(xdgHome, appName))
	} else if home := os.Getenv("HOME"); home != "" {
		paths = append(paths, filepath.Join(home, ".config", appName))
	}

	if xdgDirs := os.Getenv("XDG_CONFIG_DIRS"); xdgDirs != "" {
		for _, dir := range filepath.SplitList(xdgDirs) {
			paths = append(paths, filepath.Join(dir, appName))
		}
	} else {
		paths = append(paths,
			filepath.Join("/etc/xdg", appName),
			filepath.Join("/etc", appName),
		)
	}

	return paths
}
