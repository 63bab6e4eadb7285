package words

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadPaths loads extra categories from a list of paths (files or
// directories). Each file becomes one category named after the file (sans
// extension), one word per line; blank lines and '#' comments are skipped.
// Files that yield no words are ignored.
func (b *Bank) LoadPaths(paths []string) error {
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("failed to access path %s: %w", path, err)
		}

		if info.IsDir() {
			entries, err := os.ReadDir(path)
			if err != nil {
				return fmt.Errorf("failed to read dir %s: %w", path, err)
			}
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				if err := b.loadFile(filepath.Join(path, entry.Name())); err != nil {
					return err
				}
			}
		} else {
			if err := b.loadFile(path); err != nil {
				return err
			}
		}
	}

	return nil
}

func (b *Bank) loadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to scan file %s: %w", path, err)
	}

	if len(words) > 0 {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		b.AddCategory(name, words)
	}

	return nil
}
