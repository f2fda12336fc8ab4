package checklist

import (
	"fmt"
	"strings"

	"github.com/shiroemons/go-checklist/pkg/textconv"
)

// Encoding はチェックリストの文字コードを表します
type Encoding string

const (
	ShiftJIS  Encoding = "Shift_JIS"
	ISO2022JP Encoding = "ISO-2022-JP"
	EUCJP     Encoding = "EUC-JP"
	UTF8      Encoding = "UTF-8"
)

// Encodings はサポートする文字コードの一覧です
var Encodings = []Encoding{ShiftJIS, ISO2022JP, EUCJP, UTF8}

// ParseEncoding は文字コード名を大文字小文字を区別せずに解釈します
func ParseEncoding(name string) (Encoding, bool) {
	for _, e := range Encodings {
		if strings.EqualFold(name, string(e)) {
			return e, true
		}
	}
	return "", false
}

// charset は変換器に渡す文字コードを返します
func (e Encoding) charset() (textconv.Charset, error) {
	switch e {
	case ShiftJIS:
		return textconv.SJIS, nil
	case ISO2022JP:
		return textconv.JIS, nil
	case EUCJP:
		return textconv.EUCJP, nil
	case UTF8:
		return textconv.UTF8, nil
	default:
		return textconv.Unknown, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, string(e))
	}
}

// compatibleWith は判定された文字コードが宣言と矛盾しないかを返します。
// ASCIIだけのデータはどの宣言とも矛盾しません。
func (e Encoding) compatibleWith(detected textconv.Charset) bool {
	if detected == textconv.ASCII {
		return true
	}
	c, err := e.charset()
	if err != nil {
		return false
	}
	return c == detected
}

// reinterpret は判定結果の代わりに宣言された文字コードで読み直せるかを返します。
// 8bitの文字コード同士ではバイト列が両方の規則を満たすことがあり、その場合は宣言を優先します。
// ISO-2022-JPはエスケープシーケンスで判定できるため対象外です。
func (e Encoding) reinterpret(data []byte, detected textconv.Charset) (textconv.Charset, bool) {
	if !isEightBit(detected) {
		return textconv.Unknown, false
	}
	c, err := e.charset()
	if err != nil || c == detected || !isEightBit(c) || !textconv.Valid(data, c) {
		return textconv.Unknown, false
	}
	return c, true
}

func isEightBit(c textconv.Charset) bool {
	return c == textconv.UTF8 || c == textconv.EUCJP || c == textconv.SJIS
}
