package checklist

// oldestUnsupportedEventNumber 以下のイベント番号のチェックリストは扱えません
const oldestUnsupportedEventNumber = 75

// webCatalogEventNumber はWebカタログURL列が追加されたイベント番号です
const webCatalogEventNumber = 90

// URLLayout はCircle行の24・25列目の並びを表します
type URLLayout int

const (
	// LayoutCirclemsThenRSS はC89までの並び（サークル.ms URL, RSS）
	LayoutCirclemsThenRSS URLLayout = iota
	// LayoutWebCatalogThenCirclems はC90以降の並び（WebカタログURL, サークル.ms URL）
	LayoutWebCatalogThenCirclems
)

// String はレイアウト名を返します
func (l URLLayout) String() string {
	switch l {
	case LayoutCirclemsThenRSS:
		return "circlems,rss"
	case LayoutWebCatalogThenCirclems:
		return "webcatalog,circlems"
	default:
		return "unknown"
	}
}

// Schema はイベント番号ごとの列構成です
type Schema struct {
	EventNumber         int
	HasWebCatalogColumn bool
	URLLayout           URLLayout
}

// ResolveSchema はイベント番号から列構成を決定します。
// 読み込みと書き込みの両方がこの結果だけを参照するため、列数から推測することはありません。
func ResolveSchema(eventNumber int) Schema {
	if eventNumber >= webCatalogEventNumber {
		return Schema{
			EventNumber:         eventNumber,
			HasWebCatalogColumn: true,
			URLLayout:           LayoutWebCatalogThenCirclems,
		}
	}
	return Schema{
		EventNumber: eventNumber,
		URLLayout:   LayoutCirclemsThenRSS,
	}
}

// validateEventNumber はイベント名を検証してイベント番号を返します。
// op はエラーメッセージに使う "read" または "write" です。
func validateEventNumber(eventName, op string) (int, error) {
	n, ok := parseEventNumber(eventName)
	if !ok {
		return 0, ErrInvalidEventName
	}
	if n <= oldestUnsupportedEventNumber {
		return 0, &tooOldError{op: op}
	}
	return n, nil
}
