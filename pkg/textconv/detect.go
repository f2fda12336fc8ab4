// Package textconv はチェックリストで使われる日本語文字コードの判定・変換と、
// 半角/全角の相互変換を提供します。
//
// 文字コード表そのものは golang.org/x/text に任せ、このパッケージは
// バイト列の構造から文字コードを推定する処理と、フィールド単位の正規化だけを持ちます。
package textconv

import (
	"bytes"
	"unicode/utf8"
)

// Charset は判定された文字コードを表します
type Charset int

const (
	// Unknown はどの文字コードとしても解釈できないバイト列
	Unknown Charset = iota
	// ASCII は7bitの文字だけで構成されたバイト列
	ASCII
	// JIS はISO-2022-JPのエスケープシーケンスを含むバイト列
	JIS
	// UTF8 はUTF-8として正しいバイト列
	UTF8
	// EUCJP はEUC-JPとして正しいバイト列
	EUCJP
	// SJIS はShift_JISとして正しいバイト列
	SJIS
)

// String は文字コード名を返します
func (c Charset) String() string {
	switch c {
	case ASCII:
		return "ASCII"
	case JIS:
		return "JIS"
	case UTF8:
		return "UTF8"
	case EUCJP:
		return "EUCJP"
	case SJIS:
		return "SJIS"
	default:
		return "UNKNOWN"
	}
}

const esc = 0x1B

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Detect はバイト列の文字コードを推定します。
//
// 判定順は JIS, ASCII, UTF-8, EUC-JP, Shift_JIS です。
// EUC-JPの2バイト文字はShift_JISの半角カナ2文字としても解釈できてしまうため、
// より制約の強いEUC-JPを先に判定します。
func Detect(data []byte) Charset {
	if isJIS(data) {
		return JIS
	}
	if isASCII(data) {
		return ASCII
	}
	if utf8.Valid(data) {
		return UTF8
	}
	if isEUCJP(data) {
		return EUCJP
	}
	if isSJIS(data) {
		return SJIS
	}
	return Unknown
}

// Valid はバイト列が指定された文字コードのバイト構造に従っているかを返します。
//
// Shift_JISの半角カナだけのデータはEUC-JPやUTF-8としても正しいため、
// Detect の結果とは別の文字コードでも true になることがあります。
// UTF-8のBOMで始まるデータはShift_JIS / EUC-JPとしては扱いません。
func Valid(data []byte, c Charset) bool {
	switch c {
	case ASCII:
		return isASCII(data)
	case JIS:
		return isJIS(data)
	case UTF8:
		return utf8.Valid(data)
	case EUCJP:
		return !bytes.HasPrefix(data, utf8BOM) && isEUCJP(data)
	case SJIS:
		return !bytes.HasPrefix(data, utf8BOM) && isSJIS(data)
	default:
		return false
	}
}

// isASCII は全バイトが7bitかどうかを判定します
func isASCII(data []byte) bool {
	for _, b := range data {
		if b >= 0x80 {
			return false
		}
	}
	return true
}

// isJIS はISO-2022-JPの指示シーケンスを含み、8bitのバイトを含まないかを判定します
func isJIS(data []byte) bool {
	found := false
	for i, b := range data {
		if b >= 0x80 {
			return false
		}
		if b != esc || i+2 >= len(data) {
			continue
		}
		switch data[i+1] {
		case '$':
			// ESC $ @, ESC $ B
			if data[i+2] == '@' || data[i+2] == 'B' {
				found = true
			}
		case '(':
			// ESC ( B, ESC ( J, ESC ( I
			if data[i+2] == 'B' || data[i+2] == 'J' || data[i+2] == 'I' {
				found = true
			}
		}
	}
	return found
}

// isEUCJP はEUC-JPのバイト構造に従っているかを判定します
func isEUCJP(data []byte) bool {
	for i := 0; i < len(data); i++ {
		b := data[i]
		switch {
		case b < 0x80:
		case b == 0x8E:
			// 半角カナ
			if i+1 >= len(data) || data[i+1] < 0xA1 || data[i+1] > 0xDF {
				return false
			}
			i++
		case b == 0x8F:
			// 補助漢字
			if i+2 >= len(data) || !isEUCByte(data[i+1]) || !isEUCByte(data[i+2]) {
				return false
			}
			i += 2
		case isEUCByte(b):
			if i+1 >= len(data) || !isEUCByte(data[i+1]) {
				return false
			}
			i++
		default:
			return false
		}
	}
	return true
}

func isEUCByte(b byte) bool {
	return b >= 0xA1 && b <= 0xFE
}

// isSJIS はShift_JISのバイト構造に従っているかを判定します
func isSJIS(data []byte) bool {
	for i := 0; i < len(data); i++ {
		b := data[i]
		switch {
		case b < 0x80:
		case b >= 0xA1 && b <= 0xDF:
			// 半角カナ
		case (b >= 0x81 && b <= 0x9F) || (b >= 0xE0 && b <= 0xFC):
			if i+1 >= len(data) {
				return false
			}
			t := data[i+1]
			if t < 0x40 || t == 0x7F || t > 0xFC {
				return false
			}
			i++
		default:
			return false
		}
	}
	return true
}
