package store

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const snapshotExt = ".json"

// FileStorage 는 디렉터리 하나에 스냅샷을 name.json 으로 저장한다.
type FileStorage struct {
	dir string
}

func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStorage{dir: dir}, nil
}

func (f *FileStorage) Name() string { return "file" }

func (f *FileStorage) path(name string) string {
	return filepath.Join(f.dir, name+snapshotExt)
}

func (f *FileStorage) Load(ctx context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(f.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoSnapshot
	}
	return data, err
}

// Save 는 임시 파일에 쓴 뒤 rename 한다. 읽는 쪽이 반쯤 쓰인 파일을 보지 않는다.
func (f *FileStorage) Save(ctx context.Context, name string, data []byte) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(f.dir, name+"-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, f.path(name))
}

// Clear 는 디렉터리의 스냅샷 파일(.json, .tmp)을 모두 지운다.
func (f *FileStorage) Clear(ctx context.Context) error {
	entries, err := os.ReadDir(f.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	var errs []error
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n := e.Name()
		if strings.HasSuffix(n, snapshotExt) || strings.HasSuffix(n, ".tmp") {
			if err := os.Remove(filepath.Join(f.dir, n)); err != nil && !errors.Is(err, fs.ErrNotExist) {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
