//go:build !windows && !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package main

// Process priority is left alone on other platforms.
func lowerPriority() error {
	return nil
}
