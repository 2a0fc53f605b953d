package atomset

import "fmt"

// Index identifies an atom within the Set that produced it.
type Index uint32

// Raw returns the position of the atom in an exported atom list.
func (i Index) Raw() int { return int(i) }

func (i Index) String() string { return fmt.Sprintf("@%d", uint32(i)) }

// IndexError is the panic value raised when a Set is asked for an Index it
// never produced.
type IndexError struct {
	Index Index
	Len   int
}

func (err IndexError) Error() string {
	return fmt.Sprintf("atom index %v out of range [0, %d)", err.Index, err.Len)
}
