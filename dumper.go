package atomset

import (
	"bytes"
	"io"
	"strconv"
)

// DumpOption customizes Set.Dump.
type DumpOption interface{ applyDump(dump *setDumper) }

// DumpUser restricts a dump to atoms beyond the common ones.
var DumpUser DumpOption = dumpUserOnly{}

type dumpUserOnly struct{}

func (dumpUserOnly) applyDump(dump *setDumper) { dump.userOnly = true }

// Dump writes a listing of every atom in the set, one per line.
func (set *Set) Dump(w io.Writer, opts ...DumpOption) error {
	dump := setDumper{set: set, out: w}
	for _, opt := range opts {
		if opt != nil {
			opt.applyDump(&dump)
		}
	}
	return dump.dump()
}

type setDumper struct {
	set *Set
	out io.Writer

	indexWidth int
	userOnly   bool
}

func (dump setDumper) dump() error {
	var buf bytes.Buffer
	buf.WriteString("# Atom Set\n")
	buf.WriteString("  atoms: ")
	buf.WriteString(strconv.Itoa(dump.set.Len()))
	buf.WriteByte('\n')

	if dump.indexWidth == 0 {
		dump.indexWidth = len(strconv.Itoa(max(dump.set.Len()-1, 0)))
	}

	i := 0
	if dump.userOnly {
		i = dump.set.Reserved()
	}
	for ; i < dump.set.Len(); i++ {
		dump.formatAtom(&buf, Index(i))
		if buf.Len() >= 4096 {
			if _, err := buf.WriteTo(dump.out); err != nil {
				return err
			}
		}
	}
	_, err := buf.WriteTo(dump.out)
	return err
}

func (dump setDumper) formatAtom(buf *bytes.Buffer, i Index) {
	num := strconv.Itoa(i.Raw())
	buf.WriteString("  @")
	for n := len(num); n < dump.indexWidth; n++ {
		buf.WriteByte(' ')
	}
	buf.WriteString(num)
	buf.WriteByte(' ')
	buf.WriteString(strconv.Quote(dump.set.Get(i)))
	if i.Raw() < dump.set.Reserved() {
		buf.WriteString(" common:")
		buf.WriteString(i.CommonName())
	}
	buf.WriteByte('\n')
}
