// Package reader turns captured inspection-session bytes into clean UTF-8
// text. Capture tools on operator laptops save sessions in UTF-8, GBK or
// Latin-1 depending on the terminal locale, and leave cursor-movement escapes
// and bell characters in the stream.
package reader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// Cursor-movement escapes plus BEL and BS left behind by terminal capture.
var controlRE = regexp.MustCompile(`\x1b\[\d+[A-Za-z]|[\x07\x08]`)

// Decode converts raw log bytes to scrubbed UTF-8 text, trying UTF-8, GBK and
// Latin-1 in that order. Content with NUL bytes is rejected as binary.
func Decode(data []byte) (string, error) {
	if bytes.IndexByte(data, 0) != -1 {
		return "", errors.New("binary content: NUL byte in log")
	}
	if utf8.Valid(data) {
		return scrub(string(data)), nil
	}
	// The GBK decoder substitutes U+FFFD instead of failing, so a replacement
	// rune in the output means the bytes were not GBK after all.
	if out, err := decodeWith(data, simplifiedchinese.GBK); err == nil && !strings.ContainsRune(out, utf8.RuneError) {
		return scrub(out), nil
	}
	out, err := decodeWith(data, charmap.ISO8859_1)
	if err != nil {
		return "", fmt.Errorf("decode log: %w", err)
	}
	return scrub(out), nil
}

func decodeWith(data []byte, enc encoding.Encoding) (string, error) {
	out, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), enc.NewDecoder()))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func scrub(s string) string {
	return controlRE.ReplaceAllString(s, "")
}
