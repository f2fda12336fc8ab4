package checklist

import (
	"fmt"
	"regexp"
	"strconv"
)

var hexColorPattern = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// ParseHexColor は6桁の16進数を色に変換します。
//
// チェックリストの色は下位バイトから R, G, B の順に並ぶため、
// 文字列としては BBGGRR の並びになります（"123456" は R=0x56, G=0x34, B=0x12）。
func ParseHexColor(s string) (RGB, bool) {
	if !hexColorPattern.MatchString(s) {
		return RGB{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{
		R: uint8(v),
		G: uint8(v >> 8),
		B: uint8(v >> 16),
	}, true
}

// Hex は色を小文字6桁の16進数（BBGGRR）で返します
func (c RGB) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.B, c.G, c.R)
}
