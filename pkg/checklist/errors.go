package checklist

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat はヘッダ行が存在しないか壊れている場合のエラー
	ErrInvalidFormat = errors.New("Invalid checklist format")

	// ErrInvalidHeader はヘッダのシグネチャや文字コード宣言が不正な場合のエラー
	ErrInvalidHeader = errors.New("Invalid checklist header")

	// ErrInvalidEncoding は宣言された文字コードと実際の文字コードが一致しない場合のエラー
	ErrInvalidEncoding = errors.New("Invalid checklist encoding")

	// ErrInvalidEventName はイベント名が ComicMarket<数字> の形式でない場合のエラー
	ErrInvalidEventName = errors.New("Invalid event name")

	// ErrTooOld はイベント番号が75以下の場合のエラー
	ErrTooOld = errors.New("checklist is too old")

	// ErrTooFewColumns は行の列数が足りない場合のエラー
	ErrTooFewColumns = errors.New("Number of column is too small")

	// ErrMissingRequiredField は必須フィールドが空の場合のエラー
	ErrMissingRequiredField = errors.New("required field is not defined")

	// ErrInvalidColorFormat は色が6桁の16進数でない場合のエラー
	ErrInvalidColorFormat = errors.New("Invalid color format")

	// ErrUnsupportedEncoding は書き込み先の文字コードがサポート外の場合のエラー
	ErrUnsupportedEncoding = errors.New("Unsupported encoding")
)

// RowError は行単位の検証エラーです。Row は1始まりの行番号で、ヘッダ行が1行目です。
type RowError struct {
	Row   int    // 行番号
	Field string // 対象フィールド名（列数エラーの場合は空）
	Err   error  // 元のエラー
}

// Error はエラーメッセージを返します
func (e *RowError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s is not defined (row: %d)", e.Field, e.Row)
	}
	return fmt.Sprintf("%v (row: %d)", e.Err, e.Row)
}

// Unwrap は元のエラーを返します
func (e *RowError) Unwrap() error {
	return e.Err
}

func tooFewColumns(row int) error {
	return &RowError{Row: row, Err: ErrTooFewColumns}
}

func missingField(row int, field string) error {
	return &RowError{Row: row, Field: field, Err: ErrMissingRequiredField}
}

func invalidColor(row int) error {
	return &RowError{Row: row, Err: ErrInvalidColorFormat}
}

// tooOldError は読み書きの別をメッセージに含めたErrTooOldです
type tooOldError struct {
	op string
}

func (e *tooOldError) Error() string {
	return fmt.Sprintf("Cannot %s the checklist for earlier than Comiket %d", e.op, oldestUnsupportedEventNumber)
}

func (e *tooOldError) Unwrap() error {
	return ErrTooOld
}
