package textconv

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	// ErrUnsupportedCharset は変換できない文字コードが指定された場合のエラー
	ErrUnsupportedCharset = errors.New("unsupported charset")

	// ErrConversion は文字コード変換に失敗した場合のエラー
	ErrConversion = errors.New("charset conversion failed")
)

// codec は文字コードに対応するx/textのエンコーディングを返します
func codec(c Charset) (encoding.Encoding, error) {
	switch c {
	case ASCII, UTF8:
		return unicode.UTF8BOM, nil
	case JIS:
		return japanese.ISO2022JP, nil
	case EUCJP:
		return japanese.EUCJP, nil
	case SJIS:
		return japanese.ShiftJIS, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCharset, c)
	}
}

// Decode はバイト列を指定された文字コードとして解釈し、UTF-8文字列に変換します。
// UTF-8の場合、先頭のBOMは取り除かれます。
func Decode(data []byte, c Charset) (string, error) {
	enc, err := codec(c)
	if err != nil {
		return "", err
	}
	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrConversion, c, err)
	}
	return string(out), nil
}

// Encode はUTF-8文字列を指定された文字コードのバイト列に変換します。
// 変換先で表現できない文字が含まれる場合はエラーを返します。
func Encode(text string, c Charset) ([]byte, error) {
	switch c {
	case ASCII, UTF8:
		return []byte(text), nil
	}
	enc, err := codec(c)
	if err != nil {
		return nil, err
	}
	out, _, err := transform.Bytes(enc.NewEncoder(), []byte(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConversion, c, err)
	}
	return out, nil
}

// EncodeUTF8WithBOM はUTF-8 BOM付きのバイト列を返します
func EncodeUTF8WithBOM(text string) ([]byte, error) {
	out, _, err := transform.Bytes(unicode.UTF8BOM.NewEncoder(), []byte(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConversion, err)
	}
	return out, nil
}
