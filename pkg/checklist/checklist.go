// Package checklist はコミックマーケットCD-ROMカタログのチェックリスト（CSV）を読み書きするためのパッケージです。
//
// チェックリストはヘッダ行と、Circle / UnKnown / Color の3種類のレコード行で構成されます。
// 文字コードは Shift_JIS, ISO-2022-JP, EUC-JP, UTF-8 のいずれかで、ヘッダに宣言された
// 文字コードと実際のバイト列の文字コードが一致している必要があります。
//
// 基本的な使い方:
//
//	data, _ := os.ReadFile("checklist.csv")
//	c, err := checklist.Read(data)
//	if err != nil {
//	    return err
//	}
//	for _, circle := range c.Circles {
//	    fmt.Println(circle.CircleName)
//	}
//	out, err := checklist.Write(c, checklist.ShiftJIS)
//
// イベント番号（ComicMarket90 の 90）が 75 以下のチェックリストは読み書きできません。
// イベント番号 90 以降では Circle 行の24・25列目の意味が変わります（ResolveSchema を参照）。
package checklist

import (
	"regexp"
	"strconv"
)

// RGB は色を表します
type RGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// SpaceNumberSub はスペース番号の a/b を表します
type SpaceNumberSub string

const (
	SpaceA SpaceNumberSub = "a"
	SpaceB SpaceNumberSub = "b"
)

// Week は参加曜日を表します
type Week string

const (
	Monday    Week = "月"
	Tuesday   Week = "火"
	Wednesday Week = "水"
	Thursday  Week = "木"
	Friday    Week = "金"
	Saturday  Week = "土"
	Sunday    Week = "日"
)

// Header はチェックリストのヘッダ行を表します
type Header struct {
	EventName        string   `json:"eventName" yaml:"eventName"`
	Encoding         Encoding `json:"encoding" yaml:"encoding"`
	ProgramSignature string   `json:"programSignature" yaml:"programSignature"`
}

// Circle はサークル（配置済みの参加者）のレコードを表します。
// ポインタのフィールドは省略可能で、nil は空セルを表します。
type Circle struct {
	SerialNumber   int             `json:"serialNumber" yaml:"serialNumber"`
	ColorNumber    *int            `json:"colorNumber,omitempty" yaml:"colorNumber,omitempty"`
	PageNumber     *int            `json:"pageNumber,omitempty" yaml:"pageNumber,omitempty"`
	CutIndex       *int            `json:"cutIndex,omitempty" yaml:"cutIndex,omitempty"`
	Week           *Week           `json:"week,omitempty" yaml:"week,omitempty"`
	Area           *string         `json:"area,omitempty" yaml:"area,omitempty"`
	Block          *string         `json:"block,omitempty" yaml:"block,omitempty"`
	SpaceNumber    *int            `json:"spaceNumber,omitempty" yaml:"spaceNumber,omitempty"`
	GenreCode      *int            `json:"genreCode,omitempty" yaml:"genreCode,omitempty"`
	CircleName     string          `json:"circleName" yaml:"circleName"`
	CircleNameYomi string          `json:"circleNameYomi" yaml:"circleNameYomi"`
	PenName        string          `json:"penName" yaml:"penName"`
	BookName       *string         `json:"bookName,omitempty" yaml:"bookName,omitempty"`
	URL            *string         `json:"url,omitempty" yaml:"url,omitempty"`
	MailAddress    *string         `json:"mailAddress,omitempty" yaml:"mailAddress,omitempty"`
	Description    *string         `json:"description,omitempty" yaml:"description,omitempty"`
	Memo           *string         `json:"memo,omitempty" yaml:"memo,omitempty"`
	MapX           *int            `json:"mapX,omitempty" yaml:"mapX,omitempty"`
	MapY           *int            `json:"mapY,omitempty" yaml:"mapY,omitempty"`
	MapLayout      *int            `json:"mapLayout,omitempty" yaml:"mapLayout,omitempty"`
	SpaceNumberSub *SpaceNumberSub `json:"spaceNumberSub,omitempty" yaml:"spaceNumberSub,omitempty"`
	UpdateData     *string         `json:"updateData,omitempty" yaml:"updateData,omitempty"`
	WebCatalogURL  *string         `json:"webCatalogUrl,omitempty" yaml:"webCatalogUrl,omitempty"` // C90以降
	CirclemsURL    *string         `json:"circlemsUrl,omitempty" yaml:"circlemsUrl,omitempty"`
	RSS            *string         `json:"rss,omitempty" yaml:"rss,omitempty"` // C89まで
	RSSData        *string         `json:"rssData,omitempty" yaml:"rssData,omitempty"`
	TwitterURL     *string         `json:"twitterUrl,omitempty" yaml:"twitterUrl,omitempty"`
	PixivURL       *string         `json:"pixivUrl,omitempty" yaml:"pixivUrl,omitempty"`
}

// Unknown はスペースが未確定のサークルのレコードを表します
type Unknown struct {
	CircleName     string  `json:"circleName" yaml:"circleName"`
	CircleNameYomi string  `json:"circleNameYomi" yaml:"circleNameYomi"`
	PenName        string  `json:"penName" yaml:"penName"`
	Memo           *string `json:"memo,omitempty" yaml:"memo,omitempty"`
	ColorNumber    *int    `json:"colorNumber,omitempty" yaml:"colorNumber,omitempty"`
	BookName       *string `json:"bookName,omitempty" yaml:"bookName,omitempty"`
	URL            *string `json:"url,omitempty" yaml:"url,omitempty"`
	MailAddress    *string `json:"mailAddress,omitempty" yaml:"mailAddress,omitempty"`
	Description    *string `json:"description,omitempty" yaml:"description,omitempty"`
	UpdateData     *string `json:"updateData,omitempty" yaml:"updateData,omitempty"`
	CirclemsURL    *string `json:"circlemsUrl,omitempty" yaml:"circlemsUrl,omitempty"`
	RSS            *string `json:"rss,omitempty" yaml:"rss,omitempty"`
}

// Color はチェック色の定義レコードを表します
type Color struct {
	ColorNumber      int     `json:"colorNumber" yaml:"colorNumber"`
	CheckColor       RGB     `json:"checkColor" yaml:"checkColor"`
	PrintColor       RGB     `json:"printColor" yaml:"printColor"`
	ColorDescription *string `json:"colorDescription,omitempty" yaml:"colorDescription,omitempty"`
}

// Checklist はチェックリスト全体を表します。
// 各スライスの順序はファイル内の行順です。
type Checklist struct {
	Header   Header    `json:"header" yaml:"header"`
	Circles  []Circle  `json:"circles" yaml:"circles"`
	Unknowns []Unknown `json:"unknowns" yaml:"unknowns"`
	Colors   []Color   `json:"colors" yaml:"colors"`
}

// NewChecklist は空のレコード列を持つChecklistを作成します
func NewChecklist(header Header) *Checklist {
	return &Checklist{
		Header:   header,
		Circles:  []Circle{},
		Unknowns: []Unknown{},
		Colors:   []Color{},
	}
}

var eventNamePattern = regexp.MustCompile(`^ComicMarket(\d+)$`)

// EventNumber はヘッダのイベント名からイベント番号を取り出します。
// イベント名が ComicMarket<数字> の形式でない場合は false を返します。
func (c *Checklist) EventNumber() (int, bool) {
	return parseEventNumber(c.Header.EventName)
}

// SetEventNumber はイベント名をイベント番号から設定します
func (c *Checklist) SetEventNumber(n int) {
	c.Header.EventName = "ComicMarket" + strconv.Itoa(n)
}

func parseEventNumber(eventName string) (int, bool) {
	m := eventNamePattern.FindStringSubmatch(eventName)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		// 桁あふれ
		return 0, false
	}
	return n, true
}

// String は文字列のポインタを返します。省略可能なフィールドの組み立てに使います。
func String(s string) *string {
	return &s
}

// Int は数値のポインタを返します
func Int(n int) *int {
	return &n
}
