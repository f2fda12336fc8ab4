package checklist

// RecordType は行の種類を表します
type RecordType int

const (
	RecordHeader RecordType = iota
	RecordCircle
	RecordUnknown
	RecordColor
)

// 行頭のタグ。UnKnown の大文字小文字は既存のリーダーとの互換のためこのままにする。
const (
	tagHeader  = "Header"
	tagCircle  = "Circle"
	tagUnknown = "UnKnown"
	tagColor   = "Color"
)

// headerSignature はヘッダ行2列目の固定値です
const headerSignature = "ComicMarketCD-ROMCatalog"

// 各行に必要な最小列数（タグを含む）
const (
	minFormatColumns  = 4
	minHeaderColumns  = 5
	minCircleColumns  = 22
	minUnknownColumns = 4
	minColorColumns   = 4
)

// String は行頭のタグを返します
func (t RecordType) String() string {
	switch t {
	case RecordHeader:
		return tagHeader
	case RecordCircle:
		return tagCircle
	case RecordUnknown:
		return tagUnknown
	case RecordColor:
		return tagColor
	default:
		return ""
	}
}

// parseRecordType は行頭のタグから行の種類を判定します。大文字小文字は区別します。
func parseRecordType(tag string) (RecordType, bool) {
	switch tag {
	case tagHeader:
		return RecordHeader, true
	case tagCircle:
		return RecordCircle, true
	case tagUnknown:
		return RecordUnknown, true
	case tagColor:
		return RecordColor, true
	}
	return 0, false
}

// Record はチェックリストの1行を表します。
// 実装は *Header, *Circle, *Unknown, *Color に限られます。
type Record interface {
	RecordType() RecordType
}

// RecordType は行の種類を返します
func (*Header) RecordType() RecordType { return RecordHeader }

// RecordType は行の種類を返します
func (*Circle) RecordType() RecordType { return RecordCircle }

// RecordType は行の種類を返します
func (*Unknown) RecordType() RecordType { return RecordUnknown }

// RecordType は行の種類を返します
func (*Color) RecordType() RecordType { return RecordColor }
