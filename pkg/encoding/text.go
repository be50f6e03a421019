// Package encoding decodes drawing documents into UTF-8 text.
package encoding

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

// ErrUndecodable is returned when a document cannot be converted to UTF-8.
var ErrUndecodable = errors.New("undecodable document")

// DefaultCodePage is assumed for non-UTF-8 documents that do not declare one.
const DefaultCodePage = "ANSI_1252"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// codePages maps DXF $DWGCODEPAGE values to decoders.
var codePages = map[string]encoding.Encoding{
	"ANSI_1250": charmap.Windows1250,
	"ANSI_1251": charmap.Windows1251,
	"ANSI_1252": charmap.Windows1252,
	"ANSI_1253": charmap.Windows1253,
	"ANSI_1254": charmap.Windows1254,
	"ANSI_932":  japanese.ShiftJIS,
	"ANSI_949":  korean.EUCKR,
}

// DecodeDocument converts raw document bytes to a UTF-8 string.
// A UTF-8 byte order mark is stripped and valid UTF-8 passes through
// unchanged. Anything else is decoded with the code page named in the
// document's $DWGCODEPAGE header, or DefaultCodePage when there is none.
func DecodeDocument(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data), nil
	}

	page := CodePage(data)
	if page == "" {
		page = DefaultCodePage
	}

	enc, ok := codePages[strings.ToUpper(page)]
	if !ok {
		return "", fmt.Errorf("%w: unsupported code page %s", ErrUndecodable, page)
	}

	result, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrUndecodable, page, err)
	}
	return string(result), nil
}

// CodePage returns the value of the $DWGCODEPAGE header variable, or "" if
// the document does not declare one. The header is ASCII in every code page
// so the raw bytes can be scanned directly.
func CodePage(data []byte) string {
	lines := bytes.Split(data, []byte("\n"))
	for i, line := range lines {
		if string(bytes.TrimSpace(line)) != "$DWGCODEPAGE" {
			continue
		}
		// Variable name is followed by a group code line and its value.
		if i+2 < len(lines) {
			return string(bytes.TrimSpace(lines[i+2]))
		}
		return ""
	}
	return ""
}

// SupportedCodePages returns the code page names DecodeDocument understands.
func SupportedCodePages() []string {
	names := make([]string, 0, len(codePages))
	for name := range codePages {
		names = append(names, name)
	}
	return names
}
