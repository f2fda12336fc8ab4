package checklist

import (
	"fmt"
	"io"
)

// Read はチェックリストのバイト列を読み込みます。
// 文字コードは自動で判定し、ヘッダの宣言と一致しない場合はエラーになります。
func Read(data []byte) (*Checklist, error) {
	rows, err := ParseChecklistCSV(data)
	if err != nil {
		return nil, err
	}
	return assemble(rows)
}

// ReadString はUTF-8にデコード済みのチェックリストを読み込みます。
// 文字コード宣言との照合は行いません。
func ReadString(text string) (*Checklist, error) {
	rows, err := parseChecklistText(text)
	if err != nil {
		return nil, err
	}
	return assemble(rows)
}

// ReadFrom はio.Readerからチェックリストを読み込みます
func ReadFrom(r io.Reader) (*Checklist, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read checklist: %w", err)
	}
	return Read(data)
}

// assemble はセルの行列からChecklistを組み立てます。
// 1行でも不正な行があればその時点で失敗します。
func assemble(rows [][]string) (*Checklist, error) {
	header, err := decodeHeader(rows)
	if err != nil {
		return nil, err
	}

	eventNumber, err := validateEventNumber(header.EventName, "read")
	if err != nil {
		return nil, err
	}
	schema := ResolveSchema(eventNumber)

	c := NewChecklist(*header)
	for i, cells := range rows[1:] {
		if len(cells) == 0 || cells[0] == "" {
			continue
		}
		t, ok := parseRecordType(cells[0])
		if !ok {
			continue
		}
		// ヘッダが1行目なので、データ行 i は i+2 行目
		record, err := decodeRow(t, cells, i+2, schema)
		if err != nil {
			return nil, err
		}
		switch r := record.(type) {
		case *Circle:
			c.Circles = append(c.Circles, *r)
		case *Unknown:
			c.Unknowns = append(c.Unknowns, *r)
		case *Color:
			c.Colors = append(c.Colors, *r)
		}
	}

	return c, nil
}

// decodeHeader はヘッダ行を検証して変換します
func decodeHeader(rows [][]string) (*Header, error) {
	if len(rows) == 0 || len(rows[0]) < minFormatColumns || rows[0][0] != tagHeader {
		return nil, ErrInvalidFormat
	}
	cells := rows[0]
	if len(cells) < minHeaderColumns || cells[1] != headerSignature {
		return nil, ErrInvalidHeader
	}
	enc, ok := ParseEncoding(cells[3])
	if !ok {
		return nil, fmt.Errorf("%w: unsupported encoding %q", ErrInvalidHeader, cells[3])
	}
	return &Header{
		EventName:        cells[2],
		Encoding:         enc,
		ProgramSignature: cells[4],
	}, nil
}
