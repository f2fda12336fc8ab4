package checklist

import (
	"strconv"
	"strings"
)

// cell はi番目のセルを返します。列が足りない場合は空文字を返します。
func cell(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}

// parseOptionalString は空文字を省略として扱います
func parseOptionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// parseOptionalNumber は数値セルを解釈します。
// 空文字と数値でない文字列は省略として扱います。
// "0" 以外の文字列が0と解釈された場合（"00" や " 0" など）も省略として扱います。
func parseOptionalNumber(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	if n == 0 && s != "0" {
		return nil
	}
	return &n
}

func parseWeek(s string) *Week {
	switch w := Week(s); w {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return &w
	}
	return nil
}

func parseSpaceNumberSub(s string) *SpaceNumberSub {
	n := parseOptionalNumber(s)
	if n == nil {
		return nil
	}
	var sub SpaceNumberSub
	switch *n {
	case 0:
		sub = SpaceA
	case 1:
		sub = SpaceB
	default:
		return nil
	}
	return &sub
}

func formatOptionalString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatOptionalNumber(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func formatWeek(w *Week) string {
	if w == nil {
		return ""
	}
	return string(*w)
}

func formatSpaceNumberSub(sub *SpaceNumberSub) string {
	if sub == nil {
		return ""
	}
	switch *sub {
	case SpaceA:
		return "0"
	case SpaceB:
		return "1"
	}
	return ""
}
