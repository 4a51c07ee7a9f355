package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// AppName names the per-user config directory.
const AppName = "spellserve"

// PathResolver finds the corpus and config files relative to the places a user
// is likely to keep them: the working directory, next to the binary, or the
// per-user config directory.
type PathResolver struct {
	executableDir string
	workDir       string
	configDir     string
}

// NewPathResolver inspects the running process to build a resolver.
func NewPathResolver() *PathResolver {
	pr := &PathResolver{}

	if dir, err := GetExecutableDir(); err == nil {
		pr.executableDir = dir
	} else {
		log.Debugf("Could not determine executable directory: %v", err)
	}
	if cwd, err := os.Getwd(); err == nil {
		pr.workDir = cwd
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}
	pr.configDir = UserConfigDir(homeDir)

	log.Debugf("PathResolver: execDir=%s, workDir=%s, configDir=%s",
		pr.executableDir, pr.workDir, pr.configDir)
	return pr
}

// UserConfigDir returns the platform config directory for the app under homeDir.
func UserConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, AppName)
		}
		return filepath.Join(homeDir, ".config", AppName)
	case "darwin":
		return filepath.Join(homeDir, ".config", AppName)
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, AppName)
		}
		return filepath.Join(homeDir, "AppData", "Roaming", AppName)
	default:
		return filepath.Join(homeDir, "."+AppName)
	}
}

// Candidates lists where name is looked for, in order.
// An absolute name is only ever itself.
func (pr *PathResolver) Candidates(name string) []string {
	if filepath.IsAbs(name) {
		return []string{name}
	}
	var paths []string
	for _, dir := range []string{pr.workDir, pr.executableDir, pr.configDir} {
		if dir != "" {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	if len(paths) == 0 {
		paths = append(paths, name)
	}
	return paths
}

// ResolveFile returns the first existing candidate for name. When none exists it
// returns the first candidate and false, so callers can report a useful path.
func (pr *PathResolver) ResolveFile(name string) (string, bool) {
	candidates := pr.Candidates(name)
	for _, path := range candidates {
		if FileExists(path) {
			log.Debugf("Resolved %s to %s", name, path)
			return path, true
		}
		log.Debugf("Candidate not found: %s", path)
	}
	return candidates[0], false
}

// ConfigDir returns the per-user config directory.
func (pr *PathResolver) ConfigDir() string {
	return pr.configDir
}
