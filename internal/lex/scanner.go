package lex

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode"
)

// Kind classifies a scanned word.
type Kind uint8

const (
	// Ident is an identifier or keyword.
	Ident Kind = iota + 1
	// String is the decoded body of a quoted string literal.
	String
)

func (k Kind) String() string {
	switch k {
	case Ident:
		return "ident"
	case String:
		return "string"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Word is one atom-worthy piece of source text.
type Word struct {
	Kind Kind
	Location

	// Text is only valid until the next call to Scan.
	Text []byte
}

// ErrUnterminated is wrapped by scan errors for a string literal or block
// comment left open at end of input.
var ErrUnterminated = errors.New("unterminated")

// Scanner finds identifiers and string literals in a JavaScript-flavored
// source unit, skipping over comments, numbers, and punctuation.
type Scanner struct {
	in  runeReader
	loc Location
	buf bytes.Buffer

	word Word
	err  error
}

// NewScanner returns a Scanner reading r, named by its Name() method if it has
// one.
func NewScanner(r io.Reader) *Scanner {
	return NewNamedScanner(NameOf(r), r)
}

// NewNamedScanner returns a Scanner reading r, reporting locations under name.
func NewNamedScanner(name string, r io.Reader) *Scanner {
	return &Scanner{
		in:  newRuneReader(r),
		loc: Location{Name: name, Line: 1},
	}
}

// Word returns the word found by the last successful Scan.
func (sc *Scanner) Word() Word { return sc.word }

// Err returns the first non-EOF error that stopped Scan.
func (sc *Scanner) Err() error { return sc.err }

// Scan advances to the next word, returning false at end of input or error.
func (sc *Scanner) Scan() bool {
	if sc.err != nil {
		return false
	}
	for {
		r, err := sc.read()
		if err != nil {
			if err != io.EOF {
				sc.fail(err)
			}
			return false
		}

		switch {
		case r == '\n':
			sc.loc.Line++

		case isIdentStart(r):
			sc.begin(Ident)
			sc.buf.WriteRune(r)
			if !sc.scanWhile(isIdentPart, true) {
				return false
			}
			return sc.finish()

		case r == '"' || r == '\'' || r == '`':
			sc.begin(String)
			if !sc.scanString(r) {
				return false
			}
			return sc.finish()

		case unicode.IsDigit(r):
			if !sc.scanWhile(isNumberPart, false) {
				return false
			}

		case r == '/':
			if !sc.scanSlash() {
				return false
			}
		}
	}
}

func (sc *Scanner) begin(kind Kind) {
	sc.buf.Reset()
	sc.word = Word{Kind: kind, Location: sc.loc}
}

func (sc *Scanner) finish() bool {
	sc.word.Text = sc.buf.Bytes()
	return true
}

func (sc *Scanner) fail(err error) {
	sc.err = fmt.Errorf("%v: %w", sc.loc, err)
}

func (sc *Scanner) read() (rune, error) {
	r, _, err := sc.in.ReadRune()
	return r, err
}

// scanWhile consumes runes matching accept, buffering them if collect is
// set, and leaves the first non-matching rune unread.
func (sc *Scanner) scanWhile(accept func(rune) bool, collect bool) bool {
	for {
		r, err := sc.read()
		if err == io.EOF {
			return true
		} else if err != nil {
			sc.fail(err)
			return false
		}
		if !accept(r) {
			if err := sc.in.UnreadRune(); err != nil {
				sc.fail(err)
				return false
			}
			return true
		}
		if collect {
			sc.buf.WriteRune(r)
		}
	}
}

func (sc *Scanner) scanString(quote rune) bool {
	for {
		r, err := sc.read()
		if err == io.EOF {
			sc.fail(fmt.Errorf("%w string literal", ErrUnterminated))
			return false
		} else if err != nil {
			sc.fail(err)
			return false
		}
		switch r {
		case quote:
			return true
		case '\n':
			if quote != '`' {
				sc.fail(fmt.Errorf("%w string literal", ErrUnterminated))
				return false
			}
			sc.loc.Line++
		case '\\':
			if r, err = sc.read(); err != nil {
				if err == io.EOF {
					err = fmt.Errorf("%w string literal", ErrUnterminated)
				}
				sc.fail(err)
				return false
			}
			switch r {
			case 'n':
				r = '\n'
			case 't':
				r = '\t'
			case 'r':
				r = '\r'
			case '0':
				r = 0
			case '\n':
				sc.loc.Line++
				continue
			}
		}
		sc.buf.WriteRune(r)
	}
}

// scanSlash skips a comment after its leading slash; a lone slash is just
// punctuation.
func (sc *Scanner) scanSlash() bool {
	r, err := sc.read()
	if err == io.EOF {
		return true
	} else if err != nil {
		sc.fail(err)
		return false
	}
	switch r {
	case '/':
		for {
			r, err := sc.read()
			if err == io.EOF {
				return true
			} else if err != nil {
				sc.fail(err)
				return false
			}
			if r == '\n' {
				sc.loc.Line++
				return true
			}
		}
	case '*':
		for last := rune(0); ; {
			r, err := sc.read()
			if err == io.EOF {
				sc.fail(fmt.Errorf("%w block comment", ErrUnterminated))
				return false
			} else if err != nil {
				sc.fail(err)
				return false
			}
			if r == '\n' {
				sc.loc.Line++
			}
			if last == '*' && r == '/' {
				return true
			}
			last = r
		}
	}
	if err := sc.in.UnreadRune(); err != nil {
		sc.fail(err)
		return false
	}
	return true
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

func isNumberPart(r rune) bool {
	return r == '.' || r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
