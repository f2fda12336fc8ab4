package app

import "errors"

var (
	// ErrReadFile はファイルの読み込みに失敗した場合のエラー
	ErrReadFile = errors.New("ファイルの読み込みに失敗しました")

	// ErrWriteChecklist はチェックリストの書き出しに失敗した場合のエラー
	ErrWriteChecklist = errors.New("チェックリストの書き出しに失敗しました")

	// ErrSaveFile はファイルの保存に失敗した場合のエラー
	ErrSaveFile = errors.New("ファイルの保存に失敗しました")

	// ErrUnsupportedFormat は出力形式がサポート外の場合のエラー
	ErrUnsupportedFormat = errors.New("サポートしていない出力形式です")
)
