package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"shtest/internal/domain"
)

// Scanner lists the test files directly inside a directory
type Scanner struct {
	suffix string
	logger *log.Logger
}

// NewScanner creates a new Scanner recognizing files that end in suffix
func NewScanner(suffix string, logger *log.Logger) *Scanner {
	return &Scanner{suffix: suffix, logger: logger}
}

// Scan returns every regular file in dir, classified by kind. Subdirectories
// are not descended into and other special files are skipped.
func (s *Scanner) Scan(dir string) ([]domain.TestCase, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("test directory does not exist: %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("test path is not a directory: %s", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var cases []domain.TestCase
	for _, entry := range entries {
		name := entry.Name()

		// Stat follows symlinks, so a link to a regular file counts
		fi, err := os.Stat(filepath.Join(dir, name))
		if err != nil || !fi.Mode().IsRegular() {
			s.logger.WithField("entry", name).Debug("skipping non-regular entry")
			continue
		}

		cases = append(cases, domain.TestCase{
			Dir:  dir,
			Name: name,
			Kind: s.Classify(name),
		})
	}

	return cases, nil
}

// Classify decides the test kind from a file name
func (s *Scanner) Classify(name string) domain.Kind {
	if strings.HasSuffix(name, s.suffix) {
		return domain.KindShell
	}
	return domain.KindUnknown
}
