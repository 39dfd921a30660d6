package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvFileName is the dotenv file looked up by FindEnvFile.
const EnvFileName = ".env"

// FindEnvFile looks upwards from startDir for a .env file.
// If found, returns its absolute path.
func FindEnvFile(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if isFile(filepath.Join(dir, EnvFileName)) {
			return filepath.Join(dir, EnvFileName), nil
		}
		// Stop at a repository boundary.
		if exists(filepath.Join(dir, ".git")) {
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%s not found", EnvFileName)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
