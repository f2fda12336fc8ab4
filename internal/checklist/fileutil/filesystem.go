package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	apperrors "github.com/shiroemons/go-checklist/internal/checklist/errors"
	"github.com/shiroemons/go-checklist/internal/checklist/interfaces"
)

// OSFileSystem は実際のOSファイルシステムを使用する実装
type OSFileSystem struct{}

// NewOSFileSystem は新しいOSFileSystemを作成します
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// FileExists はファイルが存在するか確認します
func (fs *OSFileSystem) FileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}

// ReadFile はファイルを読み込みます
func (fs *OSFileSystem) ReadFile(filename string) ([]byte, error) {
	return os.ReadFile(filename)
}

// WriteFile はファイルを書き込みます
func (fs *OSFileSystem) WriteFile(filename string, data []byte, perm uint32) error {
	return os.WriteFile(filename, data, os.FileMode(perm))
}

// MkdirAll はディレクトリを作成します
func (fs *OSFileSystem) MkdirAll(path string, perm uint32) error {
	return os.MkdirAll(path, os.FileMode(perm))
}

// Stat はファイル情報を取得します
func (fs *OSFileSystem) Stat(name string) (interfaces.FileInfo, error) {
	info, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	return &osFileInfo{info}, nil
}

// ReadDir はディレクトリを読み込みます
func (fs *OSFileSystem) ReadDir(dirname string) ([]interfaces.DirEntry, error) {
	entries, err := os.ReadDir(dirname)
	if err != nil {
		return nil, err
	}

	result := make([]interfaces.DirEntry, len(entries))
	for i, entry := range entries {
		result[i] = &osDirEntry{entry}
	}
	return result, nil
}

// osFileInfo はos.FileInfoのラッパー
type osFileInfo struct {
	os.FileInfo
}

// osDirEntry はos.DirEntryのラッパー
type osDirEntry struct {
	os.DirEntry
}

// ChecklistFinder は入力パスからチェックリストのファイルを列挙します
type ChecklistFinder struct {
	fs interfaces.FileSystem
}

// NewChecklistFinder は新しいChecklistFinderを作成します
func NewChecklistFinder(fs interfaces.FileSystem) *ChecklistFinder {
	return &ChecklistFinder{fs: fs}
}

// Find は入力パスを展開します。
// ディレクトリが指定された場合は直下の .csv ファイルを名前順に返し、
// ファイルが指定された場合はそのまま返します。
// 存在しないパスは apperrors.ErrFileNotFound を返します。
func (f *ChecklistFinder) Find(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := f.fs.Stat(path)
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperrors.NewFileError("stat", path, apperrors.ErrFileNotFound)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrStatFile, path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		found, err := f.findInDir(path)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return files, nil
}

// findInDir は指定されたディレクトリ内の .csv ファイルを検索します
func (f *ChecklistFinder) findInDir(dir string) ([]string, error) {
	entries, err := f.fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadDirectory, dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if CSVFilePattern.MatchString(entry.Name()) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
