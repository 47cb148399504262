package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// fileStorage keeps uploads on the local filesystem under
// <root>/<device id>/<name>.
type fileStorage struct {
	root string
}

// NewFileStorage constructs a [FileStorage] rooted at root.
func NewFileStorage(root string) FileStorage {
	return &fileStorage{root: root}
}

// SaveFile implements [FileStorage]. The file is written to a temporary name
// and renamed into place so readers never see a partial upload.
func (f *fileStorage) SaveFile(ctx context.Context, deviceID, name string, contents []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !validName(deviceID) || !validName(name) {
		return "", ErrInvalidFileName
	}

	dir := filepath.Join(f.root, deviceID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(contents); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("close upload file: %w", err)
	}

	path := filepath.Join(dir, name)
	if err = os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("store upload file: %w", err)
	}
	return path, nil
}

func validName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}
