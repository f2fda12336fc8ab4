package checklist

import (
	"github.com/shiroemons/go-checklist/pkg/textconv"
)

// 必須フィールドのエラーメッセージに使う名前
const (
	fieldSerialNumber   = "Circle serial number"
	fieldCircleName     = "Circle name"
	fieldCircleNameYomi = "Circle name yomigana"
	fieldColorNumber    = "Color number"
)

// decodeRow は1行を行の種類に応じたレコードに変換します。
// row はエラーメッセージに使う1始まりの行番号です。
// ヘッダ行はここでは扱わず、nil を返します。
func decodeRow(t RecordType, cells []string, row int, schema Schema) (Record, error) {
	var (
		r   Record
		err error
	)
	switch t {
	case RecordCircle:
		r, err = decodeCircle(cells, row, schema)
	case RecordUnknown:
		r, err = decodeUnknown(cells, row)
	case RecordColor:
		r, err = decodeColor(cells, row)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// decodeCircle はCircle行を変換します
func decodeCircle(cells []string, row int, schema Schema) (*Circle, error) {
	if len(cells) < minCircleColumns {
		return nil, tooFewColumns(row)
	}

	serial := parseOptionalNumber(cells[1])
	if serial == nil {
		return nil, missingField(row, fieldSerialNumber)
	}
	if cells[10] == "" {
		return nil, missingField(row, fieldCircleName)
	}
	if cells[11] == "" {
		return nil, missingField(row, fieldCircleNameYomi)
	}

	c := &Circle{
		SerialNumber:   *serial,
		ColorNumber:    parseOptionalNumber(cells[2]),
		PageNumber:     parseOptionalNumber(cells[3]),
		CutIndex:       parseOptionalNumber(cells[4]),
		Week:           parseWeek(cells[5]),
		Area:           parseOptionalString(cells[6]),
		Block:          parseOptionalString(textconv.ToHankakuASCII(cells[7])),
		SpaceNumber:    parseOptionalNumber(cells[8]),
		GenreCode:      parseOptionalNumber(cells[9]),
		CircleName:     cells[10],
		CircleNameYomi: textconv.ToZenkakuKana(cells[11]),
		PenName:        cells[12],
		BookName:       parseOptionalString(cells[13]),
		URL:            parseOptionalString(cells[14]),
		MailAddress:    parseOptionalString(cells[15]),
		Description:    parseOptionalString(cells[16]),
		Memo:           parseOptionalString(cells[17]),
		MapX:           parseOptionalNumber(cells[18]),
		MapY:           parseOptionalNumber(cells[19]),
		MapLayout:      parseOptionalNumber(cells[20]),
		SpaceNumberSub: parseSpaceNumberSub(cells[21]),
		UpdateData:     parseOptionalString(cell(cells, 22)),
		RSSData:        parseOptionalString(cell(cells, 25)),
		TwitterURL:     parseOptionalString(cell(cells, 26)),
		PixivURL:       parseOptionalString(cell(cells, 27)),
	}

	switch schema.URLLayout {
	case LayoutWebCatalogThenCirclems:
		c.WebCatalogURL = parseOptionalString(cell(cells, 23))
		c.CirclemsURL = parseOptionalString(cell(cells, 24))
	default:
		c.CirclemsURL = parseOptionalString(cell(cells, 23))
		c.RSS = parseOptionalString(cell(cells, 24))
	}

	return c, nil
}

// decodeUnknown はUnKnown行を変換します
func decodeUnknown(cells []string, row int) (*Unknown, error) {
	if len(cells) < minUnknownColumns {
		return nil, tooFewColumns(row)
	}
	if cells[1] == "" {
		return nil, missingField(row, fieldCircleName)
	}
	if cells[2] == "" {
		return nil, missingField(row, fieldCircleNameYomi)
	}

	return &Unknown{
		CircleName:     cells[1],
		CircleNameYomi: textconv.ToZenkakuKana(cells[2]),
		PenName:        cells[3],
		Memo:           parseOptionalString(cell(cells, 4)),
		ColorNumber:    parseOptionalNumber(cell(cells, 5)),
		BookName:       parseOptionalString(cell(cells, 6)),
		URL:            parseOptionalString(cell(cells, 7)),
		MailAddress:    parseOptionalString(cell(cells, 8)),
		Description:    parseOptionalString(cell(cells, 9)),
		UpdateData:     parseOptionalString(cell(cells, 10)),
		CirclemsURL:    parseOptionalString(cell(cells, 11)),
		RSS:            parseOptionalString(cell(cells, 12)),
	}, nil
}

// decodeColor はColor行を変換します
func decodeColor(cells []string, row int) (*Color, error) {
	if len(cells) < minColorColumns {
		return nil, tooFewColumns(row)
	}

	number := parseOptionalNumber(cells[1])
	if number == nil {
		return nil, missingField(row, fieldColorNumber)
	}
	check, ok := ParseHexColor(cells[2])
	if !ok {
		return nil, invalidColor(row)
	}
	printColor, ok := ParseHexColor(cells[3])
	if !ok {
		return nil, invalidColor(row)
	}

	return &Color{
		ColorNumber:      *number,
		CheckColor:       check,
		PrintColor:       printColor,
		ColorDescription: parseOptionalString(cell(cells, 4)),
	}, nil
}
