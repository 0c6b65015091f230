package platform

import "runtime"

// SupportsTensorFlow returns true if a prebuilt libtensorflow exists for the
// current platform.
func SupportsTensorFlow() bool {
	return supportsTensorFlow(runtime.GOOS, runtime.GOARCH)
}

func supportsTensorFlow(goos, goarch string) bool {
	switch goos {
	case "linux", "darwin":
		return goarch == "amd64" || goarch == "arm64"
	case "windows":
		return goarch == "amd64"
	default:
		return false
	}
}
