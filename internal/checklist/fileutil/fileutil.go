// Package fileutil はファイル操作のユーティリティ関数を提供します
package fileutil

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/shiroemons/go-checklist/internal/checklist/interfaces"
	"github.com/shiroemons/go-checklist/pkg/checklist"
)

var (
	// CSVFilePattern はチェックリストとして扱うファイル名のパターン
	CSVFilePattern = regexp.MustCompile(`(?i)\.csv$`)
)

// SaveToFile は出力先ディレクトリを作成してからファイルに保存します
func SaveToFile(fs interfaces.FileSystem, outputPath string, data []byte) error {
	dir := filepath.Dir(outputPath)
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: %w", ErrCreateDirectory, err)
	}

	if err := fs.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteContent, err)
	}

	return nil
}

// GenerateOutputFilename は入力ファイル名と出力文字コードから出力ファイル名を生成します
func GenerateOutputFilename(inputPath string, enc checklist.Encoding) string {
	// ファイル名の部分だけを取得（拡張子なし）
	baseName := filepath.Base(inputPath)
	baseName = strings.TrimSuffix(baseName, filepath.Ext(baseName))

	// XXX_shift_jis.csv 形式の名前を生成
	return fmt.Sprintf("%s_%s.csv", baseName, strings.ToLower(string(enc)))
}
