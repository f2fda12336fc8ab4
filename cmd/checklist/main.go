package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shiroemons/go-checklist/internal/checklist/config"
)

// cli はコマンド間で共有する状態です
type cli struct {
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "checklist",
		Short: "コミックマーケットCD-ROMカタログのチェックリストを変換・検証します",
		Long: `checklist はコミックマーケットCD-ROMカタログのチェックリスト（CSV）を扱うツールです。

Shift_JIS / EUC-JP / ISO-2022-JP / UTF-8 のチェックリストを読み込み、
文字コードの変換、JSON / YAML での出力、内容の検証、HTTPでの変換サービスを提供します。`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", "", "path to YAML config file")
	flags.BoolP("debug", "d", false, "enable debug output")

	rootCmd.AddCommand(
		newConvertCmd(c),
		newDumpCmd(c),
		newValidateCmd(c),
		newServeCmd(c),
		newVersionCmd(),
	)

	return rootCmd
}

// setup は設定ファイルを読み込み、フラグで上書きしてからロガーを作成します
func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}
	overrideString(cmd, "output", &cfg.OutputDir)
	overrideString(cmd, "encoding", &cfg.Encoding)
	overrideString(cmd, "line-ending", &cfg.LineEnding)
	overrideString(cmd, "format", &cfg.Format)
	overrideString(cmd, "addr", &cfg.Server.Addr)
	overrideBool(cmd, "bom", &cfg.BOM)
	overrideBool(cmd, "dry-run", &cfg.DryRun)

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := config.NewLogger(cfg.Debug)
	if err != nil {
		return err
	}

	c.cfg = cfg
	c.logger = logger
	return nil
}

func overrideString(cmd *cobra.Command, name string, dst *string) {
	if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
		*dst = f.Value.String()
	}
}

func overrideBool(cmd *cobra.Command, name string, dst *bool) {
	if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
		*dst, _ = cmd.Flags().GetBool(name)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "エラー: %v\n", err)
		stop()
		os.Exit(1)
	}
}
