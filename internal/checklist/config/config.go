// Package config はchecklistコマンドの設定管理を行います
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/shiroemons/go-checklist/pkg/checklist"
)

// 改行コード
const (
	LineEndingLF   = "lf"
	LineEndingCRLF = "crlf"
)

// 出力形式
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	// ErrInvalidEncoding は出力文字コードがサポート外の場合のエラー
	ErrInvalidEncoding = errors.New("サポートしていない文字コードです")

	// ErrInvalidLineEnding は改行コードの指定が不正な場合のエラー
	ErrInvalidLineEnding = errors.New("改行コードは lf または crlf を指定してください")

	// ErrInvalidFormat は出力形式の指定が不正な場合のエラー
	ErrInvalidFormat = errors.New("出力形式は json または yaml を指定してください")

	// ErrInvalidMaxBodyBytes はリクエストサイズの上限が不正な場合のエラー
	ErrInvalidMaxBodyBytes = errors.New("リクエストサイズの上限は1以上を指定してください")
)

// Config はアプリケーションの設定を保持します
type Config struct {
	OutputDir  string       `yaml:"output_dir"`
	Encoding   string       `yaml:"encoding"`
	LineEnding string       `yaml:"line_ending"`
	BOM        bool         `yaml:"bom"`
	Format     string       `yaml:"format"`
	DryRun     bool         `yaml:"dry_run"`
	Debug      bool         `yaml:"debug"`
	Server     ServerConfig `yaml:"server"`
}

// ServerConfig はHTTPサーバーの設定です
type ServerConfig struct {
	Addr         string `yaml:"addr"`
	MaxBodyBytes int64  `yaml:"max_body_bytes"`
}

// DefaultConfig は既定の設定を返します
func DefaultConfig() *Config {
	return &Config{
		OutputDir:  ".",
		Encoding:   string(checklist.ShiftJIS),
		LineEnding: LineEndingCRLF,
		Format:     FormatJSON,
		Server: ServerConfig{
			Addr:         ":8080",
			MaxBodyBytes: 10 << 20,
		},
	}
}

// Load はYAMLファイルから設定を読み込みます。
// ファイルが存在しない場合は既定の設定を返します。
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("設定ファイルの読み込みに失敗しました: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("設定ファイルの解析に失敗しました: %w", err)
	}

	return cfg, nil
}

// Validate は設定値を検証します
func (c *Config) Validate() error {
	if _, err := c.TargetEncoding(); err != nil {
		return err
	}
	switch strings.ToLower(c.LineEnding) {
	case LineEndingLF, LineEndingCRLF:
	default:
		return fmt.Errorf("%w: %s", ErrInvalidLineEnding, c.LineEnding)
	}
	switch strings.ToLower(c.Format) {
	case FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: %s", ErrInvalidFormat, c.Format)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return ErrInvalidMaxBodyBytes
	}
	return nil
}

// TargetEncoding は出力文字コードを返します
func (c *Config) TargetEncoding() (checklist.Encoding, error) {
	enc, ok := checklist.ParseEncoding(c.Encoding)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrInvalidEncoding, c.Encoding)
	}
	return enc, nil
}

// WriteOptions は設定に対応する書き込みオプションを返します
func (c *Config) WriteOptions() []checklist.WriteOption {
	var opts []checklist.WriteOption
	if strings.EqualFold(c.LineEnding, LineEndingCRLF) {
		opts = append(opts, checklist.WithCRLF())
	}
	if c.BOM {
		opts = append(opts, checklist.WithBOM())
	}
	return opts
}
