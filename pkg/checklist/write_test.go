package checklist

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/shiroemons/go-checklist/pkg/textconv"
)

func TestWrite_AllColumns(t *testing.T) {
	text := "Header,ComicMarketCD-ROMCatalog,ComicMarket90,UTF-8,Web 1.90.1\n" +
		"Circle,115877,3,441,2,土,東,Ａ,36,301,ロケット燃料★21,ﾛｹｯﾄﾈﾝﾘｮｳ,秋★枝,大淀漫画03,url,mail,description,memo,870,40,3,1,,webcatalog,circlems,,twitter,pixiv,\n" +
		`UnKnown,circle name,circle name yomi,pen name,"""memo` + "\n" + `memo""",0,book,url,mail,description,"update""data",circlems,rss` + "\n" +
		`Color,1,000000,ffffff,"desc` + "\n" + `ription"` + "\n"

	c, err := ReadString(text)
	if err != nil {
		t.Fatalf("ReadString failed: %v", err)
	}

	data, err := Write(c, "")
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	rows, err := ParseChecklistCSV(data)
	if err != nil {
		t.Fatalf("ParseChecklistCSV failed: %v", err)
	}

	want := [][]string{
		{"Header", "ComicMarketCD-ROMCatalog", "ComicMarket90", "UTF-8", "Web 1.90.1"},
		{"Circle", "115877", "3", "441", "2", "土", "東", "Ａ", "36", "301", "ロケット燃料★21", "ロケットネンリョウ", "秋★枝", "大淀漫画03", "url", "mail", "description", "memo", "870", "40", "3", "1", "", "webcatalog", "circlems", "", "twitter", "pixiv"},
		{"UnKnown", "circle name", "circle name yomi", "pen name", "\"memo\nmemo\"", "0", "book", "url", "mail", "description", "update\"data", "circlems", "rss"},
		{"Color", "1", "000000", "ffffff", "desc\nription"},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("written rows mismatch (-want +got):\n%s", diff)
	}
}

func TestWrite_SpecificEncoding(t *testing.T) {
	text := "Header,ComicMarketCD-ROMCatalog,ComicMarket90,utf-8,Web 1.90.1\n" +
		"Circle,1,,,,,,,,,非ASCII文字,ヒアスキーモジ,,,,,,,,,,\n"

	c, err := ReadString(text)
	if err != nil {
		t.Fatalf("ReadString failed: %v", err)
	}
	if c.Header.Encoding != UTF8 {
		t.Errorf("Header.Encoding = %q; want %q", c.Header.Encoding, UTF8)
	}

	tests := []struct {
		enc     Encoding
		charset textconv.Charset
	}{
		{ShiftJIS, textconv.SJIS},
		{EUCJP, textconv.EUCJP},
		{ISO2022JP, textconv.JIS},
		{UTF8, textconv.UTF8},
	}

	for _, test := range tests {
		t.Run(string(test.enc), func(t *testing.T) {
			data, err := Write(c, test.enc)
			if err != nil {
				t.Fatalf("Write failed: %v", err)
			}
			if got := textconv.Detect(data); got != test.charset {
				t.Errorf("Detect() = %s; want %s", got, test.charset)
			}

			rows, err := ParseChecklistCSV(data)
			if err != nil {
				t.Fatalf("ParseChecklistCSV failed: %v", err)
			}
			if rows[0][3] != string(test.enc) {
				t.Errorf("header encoding = %q; want %q", rows[0][3], test.enc)
			}
			if rows[1][10] != "非ASCII文字" {
				t.Errorf("circle name = %q; want 非ASCII文字", rows[1][10])
			}
		})
	}

	// 元のチェックリストのヘッダは書き換えない
	if c.Header.Encoding != UTF8 {
		t.Errorf("Write should not modify the checklist header: %q", c.Header.Encoding)
	}
}

func TestWrite_Errors(t *testing.T) {
	tests := []struct {
		name      string
		eventName string
		enc       Encoding
		wantErr   error
		errMsg    string
	}{
		{"不正なイベント名", "invalid", UTF8, ErrInvalidEventName, "Invalid event name"},
		{"古いイベント", "ComicMarket75", UTF8, ErrTooOld, "Cannot write the checklist for earlier than Comiket 75"},
		{"イベント名の検証が先", "invalid", "latin1", ErrInvalidEventName, "Invalid event name"},
		{"サポート外の文字コード", "ComicMarket90", "latin1", ErrUnsupportedEncoding, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChecklist(Header{EventName: tt.eventName, Encoding: UTF8, ProgramSignature: "test"})
			_, err := Write(c, tt.enc)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Write() error = %v; want %v", err, tt.wantErr)
			}
			if tt.errMsg != "" && err.Error() != tt.errMsg {
				t.Errorf("Error message = %q; want %q", err.Error(), tt.errMsg)
			}
		})
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		eventName string
		circle    Circle
	}{
		{
			name:      "C90以降",
			eventName: "ComicMarket104",
			circle: Circle{
				SerialNumber:   42,
				ColorNumber:    Int(0),
				Week:           ptr(Saturday),
				Area:           String("西"),
				Block:          String("a"),
				SpaceNumber:    Int(1),
				CircleName:     "サークル",
				CircleNameYomi: "サークル",
				PenName:        "ペンネーム",
				Description:    String("改行\nと\"引用符\"と,カンマ"),
				SpaceNumberSub: ptr(SpaceA),
				WebCatalogURL:  String("https://webcatalog.circle.ms/Circle/1"),
				CirclemsURL:    String("https://circle.ms/1"),
				TwitterURL:     String("https://twitter.com/example"),
			},
		},
		{
			name:      "C89まで",
			eventName: "ComicMarket85",
			circle: Circle{
				SerialNumber:   7,
				CircleName:     "サークル",
				CircleNameYomi: "サークル",
				CirclemsURL:    String("https://circle.ms/7"),
				RSS:            String("https://example.com/rss"),
				RSSData:        String("rss data"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, enc := range Encodings {
				c := NewChecklist(Header{EventName: tt.eventName, Encoding: enc, ProgramSignature: "test"})
				c.Circles = append(c.Circles, tt.circle)
				c.Unknowns = append(c.Unknowns, Unknown{
					CircleName:     "未配置",
					CircleNameYomi: "ミハイチ",
					PenName:        "",
					ColorNumber:    Int(2),
				})
				c.Colors = append(c.Colors, Color{
					ColorNumber: 1,
					CheckColor:  RGB{R: 0x56, G: 0x34, B: 0x12},
					PrintColor:  RGB{R: 0xff},
				})

				data, err := Write(c, enc)
				if err != nil {
					t.Fatalf("Write(%s) failed: %v", enc, err)
				}
				got, err := Read(data)
				if err != nil {
					t.Fatalf("Read(%s) failed: %v", enc, err)
				}
				if diff := cmp.Diff(c, got); diff != "" {
					t.Errorf("round trip (%s) mismatch (-want +got):\n%s", enc, diff)
				}
			}
		})
	}
}

func TestWrite_RoundTrip_HalfwidthKana(t *testing.T) {
	// 読みがな以外の半角カナはそのまま書き出されるため、
	// 非ASCIIが半角カナだけのファイルになる
	tests := []struct {
		name    string
		unknown Unknown
		circle  Circle
	}{
		{
			name:    "2文字",
			unknown: Unknown{CircleName: "ｱｲ", CircleNameYomi: "yomi", PenName: "pen"},
		},
		{
			name:    "UTF-8としても読める並び",
			unknown: Unknown{CircleName: "ﾂｱ", CircleNameYomi: "yomi", PenName: "pen"},
		},
		{
			name:    "複数のフィールド",
			unknown: Unknown{CircleName: "ﾙﾐﾉｼﾃｨ", CircleNameYomi: "rumi", PenName: "ｱｲ", Memo: String("ﾒﾓ")},
			circle: Circle{
				SerialNumber:   1,
				CircleName:     "ｻｰｸﾙ",
				CircleNameYomi: "circle",
				PenName:        "ﾍﾟﾝ",
				Description:    String("ｶﾞｲﾄﾞ"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, enc := range Encodings {
				c := NewChecklist(Header{EventName: "ComicMarket104", Encoding: enc, ProgramSignature: "test"})
				c.Unknowns = append(c.Unknowns, tt.unknown)
				if tt.circle.CircleName != "" {
					c.Circles = append(c.Circles, tt.circle)
				}

				data, err := Write(c, enc)
				if err != nil {
					t.Fatalf("Write(%s) failed: %v", enc, err)
				}
				got, err := Read(data)
				if err != nil {
					t.Fatalf("Read(%s) failed: %v", enc, err)
				}
				if diff := cmp.Diff(c, got); diff != "" {
					t.Errorf("round trip (%s) mismatch (-want +got):\n%s", enc, diff)
				}
			}
		})
	}
}

func TestWrite_BeforeWebCatalogLayout(t *testing.T) {
	c := NewChecklist(Header{EventName: "ComicMarket85", Encoding: UTF8, ProgramSignature: "test"})
	c.Circles = append(c.Circles, Circle{
		SerialNumber:   1,
		CircleName:     "name",
		CircleNameYomi: "yomi",
		WebCatalogURL:  String("ignored"),
		CirclemsURL:    String("circlems"),
		RSS:            String("rss"),
	})

	data, err := Write(c, UTF8)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	rows, err := ParseChecklistCSV(data)
	if err != nil {
		t.Fatalf("ParseChecklistCSV failed: %v", err)
	}
	if len(rows[1]) != circleColumns {
		t.Fatalf("len(row) = %d; want %d", len(rows[1]), circleColumns)
	}
	if rows[1][23] != "circlems" || rows[1][24] != "rss" {
		t.Errorf("cells[23:25] = %q; want [circlems rss]", rows[1][23:25])
	}
}

func TestWrite_Options(t *testing.T) {
	c := NewChecklist(Header{EventName: "ComicMarket90", Encoding: UTF8, ProgramSignature: "test"})
	c.Colors = append(c.Colors, Color{ColorNumber: 1})

	t.Run("既定はLFでBOMなし", func(t *testing.T) {
		data, err := Write(c, UTF8)
		if err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		if bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
			t.Error("output should not start with BOM")
		}
		if bytes.Contains(data, []byte("\r\n")) {
			t.Error("output should use LF")
		}
	})

	t.Run("CRLF", func(t *testing.T) {
		data, err := Write(c, ShiftJIS, WithCRLF())
		if err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		if got := strings.Count(string(data), "\r\n"); got != 2 {
			t.Errorf("CRLF count = %d; want 2", got)
		}
	})

	t.Run("BOM付きUTF-8", func(t *testing.T) {
		data, err := Write(c, UTF8, WithBOM())
		if err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		if !bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
			t.Error("output should start with BOM")
		}
		got, err := Read(data)
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		if got.Header.EventName != "ComicMarket90" {
			t.Errorf("EventName = %q", got.Header.EventName)
		}
	})

	t.Run("Shift_JISではBOMを付けない", func(t *testing.T) {
		data, err := Write(c, ShiftJIS, WithBOM())
		if err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		if bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
			t.Error("Shift_JIS output should not start with BOM")
		}
	})
}

func TestWriteTo(t *testing.T) {
	c := NewChecklist(Header{EventName: "ComicMarket90", Encoding: UTF8, ProgramSignature: "test"})

	var buf bytes.Buffer
	if err := WriteTo(&buf, c, UTF8); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	want := "Header,ComicMarketCD-ROMCatalog,ComicMarket90,UTF-8,test\n"
	if buf.String() != want {
		t.Errorf("WriteTo() = %q; want %q", buf.String(), want)
	}
}
