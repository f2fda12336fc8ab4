package checklist

import (
	"strconv"

	"github.com/shiroemons/go-checklist/pkg/textconv"
)

// circleColumns は書き出すCircle行の列数（タグを含む）
const circleColumns = 28

// encodeRecord はレコードを1行分のセルに変換します
func encodeRecord(r Record, schema Schema) []string {
	switch v := r.(type) {
	case *Header:
		return encodeHeader(v)
	case *Circle:
		return encodeCircle(v, schema)
	case *Unknown:
		return encodeUnknown(v)
	case *Color:
		return encodeColor(v)
	}
	return nil
}

func encodeHeader(h *Header) []string {
	return []string{
		tagHeader,
		headerSignature,
		h.EventName,
		string(h.Encoding),
		h.ProgramSignature,
	}
}

func encodeCircle(c *Circle, schema Schema) []string {
	var block string
	if c.Block != nil {
		block = textconv.ToZenkakuASCII(*c.Block)
	}

	cells := make([]string, 0, circleColumns)
	cells = append(cells,
		tagCircle,
		strconv.Itoa(c.SerialNumber),
		formatOptionalNumber(c.ColorNumber),
		formatOptionalNumber(c.PageNumber),
		formatOptionalNumber(c.CutIndex),
		formatWeek(c.Week),
		formatOptionalString(c.Area),
		block,
		formatOptionalNumber(c.SpaceNumber),
		formatOptionalNumber(c.GenreCode),
		c.CircleName,
		textconv.ToZenkakuKana(c.CircleNameYomi),
		c.PenName,
		formatOptionalString(c.BookName),
		formatOptionalString(c.URL),
		formatOptionalString(c.MailAddress),
		formatOptionalString(c.Description),
		formatOptionalString(c.Memo),
		formatOptionalNumber(c.MapX),
		formatOptionalNumber(c.MapY),
		formatOptionalNumber(c.MapLayout),
		formatSpaceNumberSub(c.SpaceNumberSub),
		formatOptionalString(c.UpdateData),
	)

	switch schema.URLLayout {
	case LayoutWebCatalogThenCirclems:
		cells = append(cells, formatOptionalString(c.WebCatalogURL), formatOptionalString(c.CirclemsURL))
	default:
		cells = append(cells, formatOptionalString(c.CirclemsURL), formatOptionalString(c.RSS))
	}

	return append(cells,
		formatOptionalString(c.RSSData),
		formatOptionalString(c.TwitterURL),
		formatOptionalString(c.PixivURL),
	)
}

func encodeUnknown(u *Unknown) []string {
	return []string{
		tagUnknown,
		u.CircleName,
		textconv.ToZenkakuKana(u.CircleNameYomi),
		u.PenName,
		formatOptionalString(u.Memo),
		formatOptionalNumber(u.ColorNumber),
		formatOptionalString(u.BookName),
		formatOptionalString(u.URL),
		formatOptionalString(u.MailAddress),
		formatOptionalString(u.Description),
		formatOptionalString(u.UpdateData),
		formatOptionalString(u.CirclemsURL),
		formatOptionalString(u.RSS),
	}
}

func encodeColor(c *Color) []string {
	return []string{
		tagColor,
		strconv.Itoa(c.ColorNumber),
		c.CheckColor.Hex(),
		c.PrintColor.Hex(),
		formatOptionalString(c.ColorDescription),
	}
}
