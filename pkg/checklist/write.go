package checklist

import (
	"fmt"
	"io"

	"github.com/shiroemons/go-checklist/pkg/textconv"
)

// writeOptions は書き込み時の設定です
type writeOptions struct {
	crlf bool
	bom  bool
}

// WriteOption は書き込み時の設定を変更します
type WriteOption func(*writeOptions)

// WithCRLF は改行をCRLFにします。既定はLFです。
func WithCRLF() WriteOption {
	return func(o *writeOptions) {
		o.crlf = true
	}
}

// WithBOM はUTF-8で書き込む場合に先頭へBOMを付けます。他の文字コードでは無視されます。
func WithBOM() WriteOption {
	return func(o *writeOptions) {
		o.bom = true
	}
}

// Write はチェックリストを指定された文字コードのバイト列に変換します。
// enc が空の場合はUTF-8で書き込みます。
// ヘッダの文字コード宣言は enc に置き換えて書き込まれます。
func Write(c *Checklist, enc Encoding, opts ...WriteOption) ([]byte, error) {
	o := writeOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	eventNumber, err := validateEventNumber(c.Header.EventName, "write")
	if err != nil {
		return nil, err
	}

	if enc == "" {
		enc = UTF8
	}
	charset, err := enc.charset()
	if err != nil {
		return nil, err
	}

	rows := serialize(c, enc, ResolveSchema(eventNumber))
	text, err := detokenize(rows, o.crlf)
	if err != nil {
		return nil, err
	}

	if charset == textconv.UTF8 && o.bom {
		return textconv.EncodeUTF8WithBOM(text)
	}
	return textconv.Encode(text, charset)
}

// WriteTo はチェックリストを書き込み先に出力します
func WriteTo(w io.Writer, c *Checklist, enc Encoding, opts ...WriteOption) error {
	data, err := Write(c, enc, opts...)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write checklist: %w", err)
	}
	return nil
}

// serialize はチェックリストをセルの行列に変換します
func serialize(c *Checklist, enc Encoding, schema Schema) [][]string {
	rows := make([][]string, 0, 1+len(c.Circles)+len(c.Unknowns)+len(c.Colors))

	header := c.Header
	header.Encoding = enc
	rows = append(rows, encodeRecord(&header, schema))

	for i := range c.Circles {
		rows = append(rows, encodeRecord(&c.Circles[i], schema))
	}
	for i := range c.Unknowns {
		rows = append(rows, encodeRecord(&c.Unknowns[i], schema))
	}
	for i := range c.Colors {
		rows = append(rows, encodeRecord(&c.Colors[i], schema))
	}
	return rows
}
