package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shiroemons/go-checklist/internal/checklist/app"
	"github.com/shiroemons/go-checklist/internal/checklist/server"
	"github.com/shiroemons/go-checklist/pkg/checklist"
)

func (c *cli) newApp(cmd *cobra.Command) *app.App {
	return app.NewWithOptions(c.cfg, app.Options{
		Logger: c.logger,
		Stdout: cmd.OutOrStdout(),
	})
}

func newConvertCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <file or dir>...",
		Short: "チェックリストを別の文字コードに変換します",
		Long: `チェックリストを読み込み、指定された文字コードで書き出します。
出力ファイル名は <元のファイル名>_<文字コード>.csv です。

Example:
  checklist convert C104.csv -e UTF-8 -o out`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.newApp(cmd).Convert(cmd.Context(), args)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringP("encoding", "e", "", "target encoding (Shift_JIS, ISO-2022-JP, EUC-JP, UTF-8)")
	flags.StringP("output", "o", "", "output directory for the converted files")
	flags.String("line-ending", "", "line ending of the output (lf or crlf)")
	flags.Bool("bom", false, "write a BOM when the target encoding is UTF-8")
	flags.BoolP("dry-run", "n", false, "perform a dry run without writing output files")
	return cmd
}

func newDumpCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "チェックリストをJSONまたはYAMLで出力します",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.newApp(cmd).Dump(cmd.Context(), args[0])
		},
	}
	cmd.Flags().StringP("format", "f", "", "output format (json or yaml)")
	return cmd
}

func newValidateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file or dir>...",
		Short: "チェックリストを読み込めるか検証します",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.newApp(cmd).Validate(cmd.Context(), args)
			return err
		},
	}
}

func newServeCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "チェックリスト変換のHTTPサーバーを起動します",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := server.New(c.cfg.Server, c.logger)

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start()
			}()

			select {
			case err := <-errCh:
				return err
			case <-cmd.Context().Done():
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			c.logger.Info("サーバーを停止しました", zap.Error(<-errCh))
			return nil
		},
	}
	cmd.Flags().String("addr", "", "listen address (default \":8080\")")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "バージョンを表示します",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "checklist version %s (ComicMarket%d format)\n",
				checklist.Version, checklist.CompliantEventNumber)
		},
	}
}
