package checklist

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/shiroemons/go-checklist/pkg/textconv"
)

// ParseChecklistCSV はチェックリストのバイト列をセルの行列に分解します。
//
// 文字コードを判定してUTF-8に変換し、ヘッダ行で宣言された文字コードと
// 判定結果が食い違う場合は ErrInvalidEncoding を返します。
// ただしバイト列が宣言された文字コードとしても正しい場合は、宣言に従って読み直します。
// ヘッダ行自体の検証は Read が行います。
func ParseChecklistCSV(data []byte) ([][]string, error) {
	detected := textconv.Detect(data)
	if detected == textconv.Unknown {
		return nil, fmt.Errorf("%w: unable to detect character encoding", ErrInvalidEncoding)
	}

	rows, err := decodeRows(data, detected)
	if err != nil {
		return nil, err
	}

	declared, ok := declaredEncoding(rows)
	if !ok || declared.compatibleWith(detected) {
		return rows, nil
	}
	if c, ok := declared.reinterpret(data, detected); ok {
		return decodeRows(data, c)
	}
	return nil, fmt.Errorf("%w: declared %s but detected %s", ErrInvalidEncoding, declared, detected)
}

// decodeRows は指定された文字コードでデコードしてから行列に分解します
func decodeRows(data []byte, c textconv.Charset) ([][]string, error) {
	text, err := textconv.Decode(data, c)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	return tokenize(text)
}

// parseChecklistText はデコード済みの文字列をセルの行列に分解します。
// 文字コードの照合は行いません。
func parseChecklistText(text string) ([][]string, error) {
	if !utf8.ValidString(text) {
		return ParseChecklistCSV([]byte(text))
	}
	return tokenize(strings.TrimPrefix(text, "\uFEFF"))
}

// declaredEncoding はヘッダ行に宣言された文字コードを返します
func declaredEncoding(rows [][]string) (Encoding, bool) {
	if len(rows) == 0 || len(rows[0]) < minFormatColumns || rows[0][0] != tagHeader {
		return "", false
	}
	return ParseEncoding(rows[0][3])
}

// tokenize はCSVを行列に分解します。
// 行ごとの列数は揃っていなくてもよく、空行は読み飛ばします。
// 改行は CRLF / LF / CR のいずれも受け付けます。
func tokenize(text string) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(normalizeLineBreaks(text)))
	r.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
		}
		rows = append(rows, record)
	}
	return rows, nil
}

// normalizeLineBreaks はクォートの外にある CRLF と CR を LF に揃えます。
// クォートされたセル内の CR はそのまま残します。
func normalizeLineBreaks(text string) string {
	if !strings.Contains(text, "\r") {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	quoted := false
	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch {
		case ch == '"':
			quoted = !quoted
		case ch == '\r' && !quoted:
			if i+1 < len(text) && text[i+1] == '\n' {
				continue
			}
			ch = '\n'
		}
		b.WriteByte(ch)
	}
	return b.String()
}

// detokenize は行列をCSVの文字列に変換します
func detokenize(rows [][]string, crlf bool) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.UseCRLF = crlf
	if err := w.WriteAll(rows); err != nil {
		return "", fmt.Errorf("failed to write csv: %w", err)
	}
	return buf.String(), nil
}
