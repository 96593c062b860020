package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var (
	// ErrNoCodeFiles indicates the archive contains no recognized source files.
	ErrNoCodeFiles = errors.New("no code files found in the ZIP")

	// ErrUnsafePath indicates an archive entry would escape the extraction
	// directory (path traversal).
	ErrUnsafePath = errors.New("unsafe path in archive")
)

// codeExtensions is the language-agnostic allow-list of source file
// extensions considered for analysis.
var codeExtensions = map[string]bool{
	".go":     true,
	".py":     true,
	".js":     true,
	".ts":     true,
	".tsx":    true,
	".jsx":    true,
	".java":   true,
	".rs":     true,
	".rb":     true,
	".php":    true,
	".c":      true,
	".cpp":    true,
	".h":      true,
	".cs":     true,
	".swift":  true,
	".kt":     true,
	".scala":  true,
	".vue":    true,
	".svelte": true,
}

// Extract writes the zip bytes into dir, extracts every entry into dir and
// returns the relative paths of recognized code files in archive order.
func Extract(data []byte, dir string) ([]string, error) {
	zipPath := filepath.Join(dir, "source.zip")
	if err := os.WriteFile(zipPath, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write archive: %w", err)
	}

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		if errors.Is(err, zip.ErrInsecurePath) {
			return nil, fmt.Errorf("%w: %v", ErrUnsafePath, err)
		}
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}

	var codeFiles []string
	for _, entry := range reader.File {
		destPath, err := safeJoin(dir, entry.Name)
		if err != nil {
			return nil, err
		}

		if entry.FileInfo().IsDir() {
			if err := os.MkdirAll(destPath, 0755); err != nil {
				return nil, fmt.Errorf("failed to create directory: %w", err)
			}
			continue
		}

		if err := extractFile(entry, destPath); err != nil {
			return nil, err
		}

		if codeExtensions[strings.ToLower(filepath.Ext(entry.Name))] {
			codeFiles = append(codeFiles, entry.Name)
		}
	}

	if len(codeFiles) == 0 {
		return nil, ErrNoCodeFiles
	}
	return codeFiles, nil
}

// ReadFile reads a code file as UTF-8 text.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("failed to decode file %s as UTF-8 text", filepath.Base(path))
	}
	return string(data), nil
}

// safeJoin joins an archive entry name onto dir, rejecting entries that
// resolve outside of dir.
func safeJoin(dir, name string) (string, error) {
	dest := filepath.Join(dir, name)
	if dest != filepath.Clean(dir) && !strings.HasPrefix(dest, filepath.Clean(dir)+string(os.PathSeparator)) {
		return "", fmt.Errorf("%w: %s", ErrUnsafePath, name)
	}
	return dest, nil
}

func extractFile(entry *zip.File, destPath string) error {
	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	src, err := entry.Open()
	if err != nil {
		return fmt.Errorf("failed to open archive entry %s: %w", entry.Name, err)
	}
	defer src.Close()

	dst, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", destPath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to extract %s: %w", entry.Name, err)
	}
	return nil
}
