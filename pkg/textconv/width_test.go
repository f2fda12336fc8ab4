package textconv

import "testing"

func TestToHankakuASCII(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ａ", "a"},
		{"Ａ", "A"},
		{"ｱ", "ｱ"},
		{"ム", "ム"},
		{"Ｔ年Ｍ組", "T年M組"},
		{"１２３", "123"},
		{"", ""},
	}

	for _, test := range tests {
		if got := ToHankakuASCII(test.input); got != test.expected {
			t.Errorf("ToHankakuASCII(%q) = %q; want %q", test.input, got, test.expected)
		}
	}
}

func TestToZenkakuASCII(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"a", "ａ"},
		{"A", "Ａ"},
		{"Ａ", "Ａ"},
		{"ム", "ム"},
		{"ｱ", "ｱ"},
		{"", ""},
	}

	for _, test := range tests {
		if got := ToZenkakuASCII(test.input); got != test.expected {
			t.Errorf("ToZenkakuASCII(%q) = %q; want %q", test.input, got, test.expected)
		}
	}
}

func TestToZenkakuKana(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"半角カナ", "ﾙﾐﾉｼﾃｨ", "ルミノシティ"},
		{"濁点と長音", "ﾀﾞﾌｰﾁ", "ダフーチ"},
		{"半濁点", "ﾊﾟﾝ", "パン"},
		{"ヴ", "ｳﾞｨ", "ヴィ"},
		{"合成できない濁点", "ｱﾞ", "ア゛"},
		{"先頭の濁点", "ﾞｱ", "゛ア"},
		{"ASCIIは変換しない", "circle name yomi", "circle name yomi"},
		{"全角カナはそのまま", "ロケットネンリョウ", "ロケットネンリョウ"},
		{"空文字", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToZenkakuKana(tt.input); got != tt.expected {
				t.Errorf("ToZenkakuKana(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}
