package textconv

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

var (
	// printableASCII は ! から ~ まで
	printableASCII = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x0021, Hi: 0x007E, Stride: 1}},
	}

	// fullwidthASCII は ！ から ～ まで
	fullwidthASCII = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0xFF01, Hi: 0xFF5E, Stride: 1}},
	}

	// halfwidthKatakana は ｡ から ﾟ まで
	halfwidthKatakana = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0xFF61, Hi: 0xFF9F, Stride: 1}},
	}
)

const (
	voicedMark             = '\u309B' // ゛
	semiVoicedMark         = '\u309C' // ゜
	combiningVoicedMark    = '\u3099'
	combiningSemiVoiceMark = '\u309A'
)

// ToHankakuASCII は全角英数記号を半角に変換します。
// かなや漢字には手を加えません。
func ToHankakuASCII(s string) string {
	return apply(runes.If(runes.In(fullwidthASCII), width.Narrow, nil), s)
}

// ToZenkakuASCII は半角英数記号を全角に変換します。
// 半角カナには手を加えません。
func ToZenkakuASCII(s string) string {
	return apply(runes.If(runes.In(printableASCII), width.Widen, nil), s)
}

// ToZenkakuKana は半角カナを全角カナに変換します。
// 濁点・半濁点は直前の文字と合成できる場合に合成します（ｶﾞ → ガ）。
func ToZenkakuKana(s string) string {
	widened := apply(runes.If(runes.In(halfwidthKatakana), width.Widen, nil), s)
	if !strings.ContainsAny(s, "\uFF9E\uFF9F") {
		return widened
	}
	return composeSoundMarks(widened)
}

func apply(t transform.Transformer, s string) string {
	out, _, err := transform.String(t, s)
	if err != nil {
		// 入力がUTF-8として不正な場合だけここに来る
		return s
	}
	return out
}

// composeSoundMarks は濁点・半濁点を直前の文字と合成します
func composeSoundMarks(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	var prev rune = -1
	flush := func() {
		if prev >= 0 {
			b.WriteRune(prev)
		}
	}

	for _, r := range s {
		var mark rune
		switch r {
		case voicedMark, combiningVoicedMark:
			mark = combiningVoicedMark
		case semiVoicedMark, combiningSemiVoiceMark:
			mark = combiningSemiVoiceMark
		}
		if mark != 0 && prev >= 0 {
			composed := norm.NFC.String(string(prev) + string(mark))
			if utf8.RuneCountInString(composed) == 1 {
				prev, _ = utf8.DecodeRuneInString(composed)
				continue
			}
		}
		if mark == combiningVoicedMark {
			r = voicedMark
		} else if mark == combiningSemiVoiceMark {
			r = semiVoicedMark
		}
		flush()
		prev = r
	}
	flush()

	return b.String()
}
