package ingest

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// textEncoding is one entry in the decode ladder. A nil charset means
// strict UTF-8 validation.
type textEncoding struct {
	name    string
	charset encoding.Encoding
}

// encodings is the ordered ladder tried when decoding byte content.
// The first encoding that decodes the full blob wins.
var encodings = []textEncoding{
	{name: "utf-8"},
	{name: "latin-1", charset: charmap.ISO8859_1},
	{name: "cp1252", charset: charmap.Windows1252},
}

// decodeText decodes content under the encoding ladder and returns the
// decoded string plus the name of the encoding that succeeded.
func decodeText(content []byte) (string, string, error) {
	for _, enc := range encodings {
		if enc.charset == nil {
			if utf8.Valid(content) {
				return string(content), enc.name, nil
			}
			continue
		}
		// Decoders carry transform state, so build one per attempt.
		decoded, err := enc.charset.NewDecoder().Bytes(content)
		if err != nil {
			continue
		}
		return string(decoded), enc.name, nil
	}
	return "", "", fmt.Errorf("could not decode content with any configured encoding")
}
