package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// VocabFileName is the vocabulary file looked up when no path is given.
const VocabFileName = "vocab.json"

// PathResolver finds the vocabulary and config files relative to the
// executable, the working directory and the per-user config dir.
type PathResolver struct {
	executableDir string
	homeDir       string
	configDir     string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: filepath.Dir(execPath),
		homeDir:       homeDir,
		configDir:     userConfigDir(homeDir),
	}
	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s", pr.executableDir, pr.configDir)
	return pr, nil
}

// userConfigDir returns the appropriate config directory for the platform
func userConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, ".config", "wordcheck")
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "wordcheck")
		}
		return filepath.Join(homeDir, ".config", "wordcheck")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "wordcheck")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "wordcheck")
	default:
		return filepath.Join(homeDir, ".wordcheck")
	}
}

// ResolveVocabPath picks the vocabulary file to load. An absolute path is
// returned as is. Relative paths are tried against the working directory,
// the executable dir and the config dir in that order. When nothing exists
// the working-directory candidate is returned so the loader reports it.
func (pr *PathResolver) ResolveVocabPath(userPath string) string {
	if userPath == "" {
		userPath = VocabFileName
	}
	if filepath.IsAbs(userPath) {
		return userPath
	}

	var candidates []string
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, userPath))
	}
	candidates = append(candidates,
		filepath.Join(pr.executableDir, userPath),
		filepath.Join(pr.configDir, userPath),
	)

	for _, path := range candidates {
		if FileExists(path) {
			log.Debugf("Found vocabulary file: %s", path)
			return path
		}
		log.Debugf("Vocabulary candidate not found: %s", path)
	}
	return candidates[0]
}

// GetConfigPath returns the full path for a config file in the first
// writable location.
func (pr *PathResolver) GetConfigPath(filename string) string {
	dirs := []string{
		pr.configDir,
		filepath.Join(pr.homeDir, ".wordcheck"),
		pr.executableDir,
	}
	for _, dir := range dirs {
		if result := CheckDirStatus(dir); result.Writable {
			return filepath.Join(dir, filename)
		}
	}
	tempPath := filepath.Join(os.TempDir(), filename)
	log.Warnf("Using temporary config file: %s", tempPath)
	return tempPath
}

// GetConfigDir returns the per-user config directory.
func (pr *PathResolver) GetConfigDir() string {
	return pr.configDir
}
