//go:build !linux && !darwin && !windows && !freebsd && !openbsd && !netbsd && !dragonfly

package envinfo

// totalSystemMemory reports no reading on unsupported platforms.
func totalSystemMemory() (uint64, bool) {
	return 0, false
}
