//go:build !windows

package index

import "go.uber.org/zap"

// SystemPaths reports no system paths on platforms without a registry to
// discover them from. See syspaths_windows.go for the Windows
// implementation.
func SystemPaths(logger *zap.Logger) []string {
	return nil
}
