package lex

import (
	"bufio"
	"fmt"
	"io"
)

// Location names a line in a source unit.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// runeReader is what the scanner consumes; bufio.Reader is used around any
// reader that can not unread runes itself.
type runeReader interface {
	io.RuneScanner
}

func newRuneReader(r io.Reader) runeReader {
	if impl, ok := r.(runeReader); ok {
		return impl
	}
	return bufio.NewReader(r)
}

// NameOf returns the Name() of obj, if it has one, or a placeholder naming its
// type otherwise.
func NameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
