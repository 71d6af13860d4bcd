package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// gitignoreContent keeps generated databases and logs out of version
// control while the project config itself stays tracked.
const gitignoreContent = `# canteenco2 project-local data (auto-generated)
# Config is tracked; databases and logs are not.
*.db
*.db-journal
*.log
`

// GitignoreContent returns the .gitignore written into project-local
// .canteenco2/ directories.
func GitignoreContent() string {
	return gitignoreContent
}

// EnsureGitignore creates a .gitignore in dir unless one exists. It reports
// whether a file was created and never overwrites.
func EnsureGitignore(dir string) (bool, error) {
	gitignorePath := filepath.Join(dir, ".gitignore")

	_, err := os.Stat(gitignorePath)
	if err == nil {
		return false, nil
	}

	if !os.IsNotExist(err) {
		return false, fmt.Errorf("checking .gitignore at %s: %w", gitignorePath, err)
	}

	if mkdirErr := os.MkdirAll(dir, 0o750); mkdirErr != nil {
		return false, fmt.Errorf("creating directory %s: %w", dir, mkdirErr)
	}

	//nolint:gosec // .gitignore must be world-readable (0644).
	if writeErr := os.WriteFile(gitignorePath, []byte(gitignoreContent), 0o644); writeErr != nil {
		return false, fmt.Errorf("writing .gitignore at %s: %w", gitignorePath, writeErr)
	}

	return true, nil
}
