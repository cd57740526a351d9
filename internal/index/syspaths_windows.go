//go:build windows

package index

import (
	"go.uber.org/zap"
	"golang.org/x/sys/windows/registry"
)

// systemPathsRegistryKey is where the target language's IDE records each
// installed version's library root, one subkey per version number.
const systemPathsRegistryKey = `SOFTWARE\Data Access Worldwide\DataFlex`

// SystemPaths discovers each installed version's library root from the
// registry. Uses golang.org/x/sys/windows/registry, the ecosystem's
// standard way to read HKLM on Windows — already a transitive dependency
// of this module's go.sum via fsnotify's Windows backend, promoted here to
// direct use for the one concern that actually needs it.
func SystemPaths(logger *zap.Logger) []string {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, systemPathsRegistryKey, registry.ENUMERATE_SUB_KEYS|registry.QUERY_VALUE)
	if err != nil {
		return nil
	}
	defer k.Close()

	versions, err := k.ReadSubKeyNames(-1)
	if err != nil {
		logger.Sugar().Warnf("index: enumerate system path versions: %v", err)
		return nil
	}

	var paths []string
	for _, version := range versions {
		vk, err := registry.OpenKey(registry.LOCAL_MACHINE, systemPathsRegistryKey+`\`+version, registry.QUERY_VALUE)
		if err != nil {
			continue
		}
		path, _, err := vk.GetStringValue("Path")
		vk.Close()
		if err != nil || path == "" {
			continue
		}
		paths = append(paths, path)
	}
	return paths
}
