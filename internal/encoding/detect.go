package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Charset names the encoding a reader was decoded from.
type Charset string

const (
	UTF8        Charset = "UTF-8"
	UTF16LE     Charset = "UTF-16LE"
	UTF16BE     Charset = "UTF-16BE"
	Windows1252 Charset = "windows-1252"
	ISO8859_15  Charset = "ISO-8859-15"
)

const sniffLen = 4096

var boms = []struct {
	prefix  []byte
	charset Charset
}{
	{[]byte{0xEF, 0xBB, 0xBF}, UTF8},
	{[]byte{0xFF, 0xFE}, UTF16LE},
	{[]byte{0xFE, 0xFF}, UTF16BE},
}

// NewUTF8Reader wraps r so that it yields UTF-8, reporting the charset it detected.
// A byte-order mark wins; otherwise valid UTF-8 passes through, then chardet is consulted,
// and anything it can't place is read as Windows-1252.
func NewUTF8Reader(r io.Reader) (io.Reader, Charset, error) {
	br := bufio.NewReaderSize(r, sniffLen)

	head, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, "", fmt.Errorf("peek: %w", err)
	}

	for _, b := range boms {
		if !bytes.HasPrefix(head, b.prefix) {
			continue
		}

		if b.charset == UTF8 {
			_, _ = br.Discard(len(b.prefix))
			return br, UTF8, nil
		}

		return decode(br, b.charset), b.charset, nil
	}

	if utf8.Valid(head) {
		return br, UTF8, nil
	}

	charset := guess(head)

	return decode(br, charset), charset, nil
}

func guess(sample []byte) Charset {
	result, err := chardet.NewTextDetector().DetectBest(sample)
	if err != nil {
		return Windows1252
	}

	switch result.Charset {
	case "ISO-8859-15":
		return ISO8859_15
	default:
		// ISO-8859-1 is a subset of windows-1252 for printable text.
		return Windows1252
	}
}

func decode(r io.Reader, charset Charset) io.Reader {
	var dec encoding.Encoding

	switch charset {
	case UTF16LE:
		dec = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case UTF16BE:
		dec = unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	case ISO8859_15:
		dec = charmap.ISO8859_15
	case UTF8:
		return r
	default:
		dec = charmap.Windows1252
	}

	return transform.NewReader(r, dec.NewDecoder())
}
