package encodings

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

var _ = EncDec[string, string](&Abc16Encoder{})

// Abc16Encoder encodes every byte of the UTF-8 form of a string as two
// letters from a..p, so any string becomes safe for file names, URLs and
// shells. Multi-byte characters take four or more letters.
//
// -- "12" --
//
// -- Abc16Encoder --
//
// -- "dbdc" -->
type Abc16Encoder struct {
	base        byte
	obfuscation *BasicByteObfuscation
}

// Abc16Builder is a fluent builder for Abc16Encoder.
type Abc16Builder struct {
	uppercase   bool
	obfuscation *BasicByteObfuscation
}

// Abc16 creates a new Abc16Builder. The default alphabet is lowercase and no
// obfuscation is applied.
func Abc16() *Abc16Builder {
	return &Abc16Builder{}
}

// Uppercase switches the alphabet to A..P.
func (b *Abc16Builder) Uppercase(uppercase bool) *Abc16Builder {
	b.uppercase = uppercase
	return b
}

// Obfuscation scrambles every byte with BasicByteObfuscation(pepper) before
// encoding it.
func (b *Abc16Builder) Obfuscation(pepper int) *Abc16Builder {
	o := BasicByteObfuscation(pepper)
	b.obfuscation = &o
	return b
}

// Build creates the Abc16Encoder.
func (b *Abc16Builder) Build() *Abc16Encoder {
	e := &Abc16Encoder{base: 'a', obfuscation: b.obfuscation}
	if b.uppercase {
		e.base = 'A'
	}
	return e
}

// Encode implements EncDec. It fails on strings that are not valid UTF-8.
func (a *Abc16Encoder) Encode(d string) (string, error) {
	if !utf8.ValidString(d) {
		return "", fmt.Errorf("%w: not valid utf-8", ErrInvalidInput)
	}

	var sb strings.Builder
	sb.Grow(len(d) * 2)
	for i := 0; i < len(d); i++ {
		b := d[i]
		if a.obfuscation != nil {
			b, _ = a.obfuscation.Encode(b)
		}
		sb.WriteByte(a.base + b>>4)
		sb.WriteByte(a.base + b&15)
	}
	return sb.String(), nil
}

// Decode implements EncDec. It fails on odd lengths, on letters outside the
// alphabet and when the decoded bytes are not valid UTF-8.
func (a *Abc16Encoder) Decode(e string) (string, error) {
	if len(e)%2 != 0 {
		return "", fmt.Errorf("%w: odd length %d", ErrInvalidInput, len(e))
	}

	buf := make([]byte, len(e)/2)
	for i := range buf {
		hi, err := a.digit(e, i*2)
		if err != nil {
			return "", err
		}
		lo, err := a.digit(e, i*2+1)
		if err != nil {
			return "", err
		}
		b := hi<<4 | lo
		if a.obfuscation != nil {
			b, _ = a.obfuscation.Decode(b)
		}
		buf[i] = b
	}

	if !utf8.Valid(buf) {
		return "", fmt.Errorf("%w: decoded bytes are not valid utf-8", ErrInvalidInput)
	}
	return string(buf), nil
}

func (a *Abc16Encoder) digit(e string, i int) (byte, error) {
	c := e[i]
	if c < a.base || c > a.base+15 {
		return 0, fmt.Errorf("%w: %q at %d is not in %c..%c", ErrInvalidInput, c, i, a.base, a.base+15)
	}
	return c - a.base, nil
}
