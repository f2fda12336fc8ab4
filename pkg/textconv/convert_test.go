package textconv

import (
	"errors"
	"testing"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	text := "Test,ロケット燃料★21,秋★枝\n"

	for _, c := range []Charset{UTF8, SJIS, EUCJP, JIS} {
		t.Run(c.String(), func(t *testing.T) {
			data, err := Encode(text, c)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			got, err := Decode(data, c)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if got != text {
				t.Errorf("Decode() = %q; want %q", got, text)
			}
		})
	}
}

func TestDecode_ShiftJIS(t *testing.T) {
	// Shift-JISエンコードされた "♪Test"
	data := []byte{0x81, 0xF4, 0x54, 0x65, 0x73, 0x74}
	got, err := Decode(data, SJIS)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got != "♪Test" {
		t.Errorf("Decode() = %q; want %q", got, "♪Test")
	}
}

func TestDecode_StripsBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Header")...)
	got, err := Decode(data, UTF8)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got != "Header" {
		t.Errorf("Decode() = %q; want %q", got, "Header")
	}
}

func TestEncode_Unrepresentable(t *testing.T) {
	// 絵文字はShift_JISで表現できない
	_, err := Encode("🍣", SJIS)
	if !errors.Is(err, ErrConversion) {
		t.Errorf("Encode() error = %v; want ErrConversion", err)
	}
}

func TestUnknownCharset(t *testing.T) {
	if _, err := Decode([]byte("a"), Unknown); !errors.Is(err, ErrUnsupportedCharset) {
		t.Errorf("Decode() error = %v; want ErrUnsupportedCharset", err)
	}
	if _, err := Encode("a", Unknown); !errors.Is(err, ErrUnsupportedCharset) {
		t.Errorf("Encode() error = %v; want ErrUnsupportedCharset", err)
	}
}
