// Package models はchecklistコマンドで使用するデータモデルを定義します
package models

// Summary はチェックリスト1件の検証結果を表します
type Summary struct {
	Path        string `json:"path" yaml:"path"`
	EventName   string `json:"eventName" yaml:"eventName"`
	EventNumber int    `json:"eventNumber" yaml:"eventNumber"`
	Encoding    string `json:"encoding" yaml:"encoding"`
	Circles     int    `json:"circles" yaml:"circles"`
	Unknowns    int    `json:"unknowns" yaml:"unknowns"`
	Colors      int    `json:"colors" yaml:"colors"`
}

// ConvertResult は文字コード変換の結果を表します
type ConvertResult struct {
	Input    string
	Output   string // ドライランの場合は保存予定のパス
	Encoding string
	Size     int
	Saved    bool
}
