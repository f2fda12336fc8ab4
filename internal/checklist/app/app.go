// Package app はアプリケーションのメインロジックを実装します
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/shiroemons/go-checklist/internal/checklist/config"
	apperrors "github.com/shiroemons/go-checklist/internal/checklist/errors"
	"github.com/shiroemons/go-checklist/internal/checklist/fileutil"
	"github.com/shiroemons/go-checklist/internal/checklist/interfaces"
	"github.com/shiroemons/go-checklist/internal/checklist/models"
	"github.com/shiroemons/go-checklist/pkg/checklist"
)

// App はアプリケーションのメインロジックを管理します
type App struct {
	config *config.Config
	logger *zap.Logger
	fs     interfaces.FileSystem
	finder *fileutil.ChecklistFinder
	stdout io.Writer
}

// Options はAppの設定オプション
type Options struct {
	FileSystem interfaces.FileSystem
	Logger     *zap.Logger
	Stdout     io.Writer
}

// New は新しいAppを作成します
func New(cfg *config.Config) *App {
	return NewWithOptions(cfg, Options{})
}

// NewWithOptions は新しいAppをオプション付きで作成します
func NewWithOptions(cfg *config.Config, opts Options) *App {
	// デフォルトのファイルシステムを設定
	fs := opts.FileSystem
	if fs == nil {
		fs = fileutil.NewOSFileSystem()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	return &App{
		config: cfg,
		logger: logger,
		fs:     fs,
		finder: fileutil.NewChecklistFinder(fs),
		stdout: stdout,
	}
}

// Convert はチェックリストを設定された文字コードに変換して保存します。
// ディレクトリが指定された場合は直下の .csv ファイルをすべて変換します。
func (a *App) Convert(ctx context.Context, inputs []string) ([]models.ConvertResult, error) {
	enc, err := a.config.TargetEncoding()
	if err != nil {
		return nil, err
	}

	files, err := a.expand(inputs)
	if err != nil {
		return nil, err
	}

	results := make([]models.ConvertResult, 0, len(files))
	for _, input := range files {
		result, err := a.convertFile(ctx, input, enc)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (a *App) convertFile(ctx context.Context, input string, enc checklist.Encoding) (models.ConvertResult, error) {
	c, err := a.readChecklist(ctx, input)
	if err != nil {
		return models.ConvertResult{}, err
	}

	data, err := checklist.Write(c, enc, a.config.WriteOptions()...)
	if err != nil {
		return models.ConvertResult{}, fmt.Errorf("%w: %s: %w", ErrWriteChecklist, input, err)
	}

	outputPath := filepath.Join(a.config.OutputDir, fileutil.GenerateOutputFilename(input, enc))
	result := models.ConvertResult{
		Input:    input,
		Output:   outputPath,
		Encoding: string(enc),
		Size:     len(data),
	}

	if a.config.DryRun {
		a.logger.Info("ドライランのため保存しません",
			zap.String("input", input),
			zap.String("output", outputPath),
		)
		fmt.Fprintf(a.stdout, "%s -> %s (dry run)\n", input, outputPath)
		return result, nil
	}

	if err := fileutil.SaveToFile(a.fs, outputPath, data); err != nil {
		return models.ConvertResult{}, fmt.Errorf("%w: %w", ErrSaveFile, err)
	}
	result.Saved = true

	a.logger.Info("チェックリストを保存しました",
		zap.String("input", input),
		zap.String("output", outputPath),
		zap.String("encoding", string(enc)),
		zap.Int("bytes", len(data)),
	)
	fmt.Fprintf(a.stdout, "%s -> %s\n", input, outputPath)

	return result, nil
}

// Dump はチェックリストを読み込んで設定された形式（json / yaml）で出力します
func (a *App) Dump(ctx context.Context, input string) error {
	c, err := a.readChecklist(ctx, input)
	if err != nil {
		return err
	}

	switch strings.ToLower(a.config.Format) {
	case config.FormatJSON:
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(c)
	case config.FormatYAML:
		enc := yaml.NewEncoder(a.stdout)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, a.config.Format)
	}
}

// Validate はチェックリストを読み込めるか検証し、件数をまとめて返します。
// 最初に見つかった不正なファイルでエラーを返します。
func (a *App) Validate(ctx context.Context, inputs []string) ([]models.Summary, error) {
	files, err := a.expand(inputs)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.Summary, 0, len(files))
	for _, input := range files {
		c, err := a.readChecklist(ctx, input)
		if err != nil {
			fmt.Fprintf(a.stdout, "NG %s: %v\n", input, err)
			return summaries, err
		}

		eventNumber, _ := c.EventNumber()
		summary := models.Summary{
			Path:        input,
			EventName:   c.Header.EventName,
			EventNumber: eventNumber,
			Encoding:    string(c.Header.Encoding),
			Circles:     len(c.Circles),
			Unknowns:    len(c.Unknowns),
			Colors:      len(c.Colors),
		}
		summaries = append(summaries, summary)

		fmt.Fprintf(a.stdout, "OK %s: %s %s circles=%d unknowns=%d colors=%d\n",
			input, summary.EventName, summary.Encoding, summary.Circles, summary.Unknowns, summary.Colors)
	}
	return summaries, nil
}

// expand は入力パスをファイルの一覧に展開します
func (a *App) expand(inputs []string) ([]string, error) {
	if len(inputs) == 0 {
		return nil, apperrors.ErrNoInputFiles
	}
	files, err := a.finder.Find(inputs)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, apperrors.ErrNoInputFiles
	}
	a.logger.Debug("入力ファイルを展開しました", zap.Strings("files", files))
	return files, nil
}

// readChecklist はファイルからチェックリストを読み込みます
func (a *App) readChecklist(ctx context.Context, path string) (*checklist.Checklist, error) {
	// コンテキストのキャンセルチェック
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	a.logger.Debug("チェックリストを読み込みます", zap.String("path", path))

	data, err := a.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFile, apperrors.NewFileError("read", path, err))
	}

	c, err := checklist.Read(data)
	if err != nil {
		return nil, apperrors.NewParseError(path, err)
	}
	return c, nil
}
