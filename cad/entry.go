package cad

import "fmt"

type StandardFlags int16

const (
	FlagXrefDependent StandardFlags = 16
	FlagXrefResolved  StandardFlags = 32
	FlagReferenced    StandardFlags = 64
)

// TableEntry is a named member of a Table. Only types embedding Entry
// implement it.
type TableEntry interface {
	Object
	Name() string
	SetName(name string) error
	entry() *Entry
}

// entryIndex is implemented by Table to keep its name and handle indexes in
// step with changes to its entries.
type entryIndex interface {
	Object
	rename(oldName, newName string) error
	rehandle(name string, oldHandle, newHandle Handle)
}

// Entry is the common part of every table entry.
type Entry struct {
	ObjectBase
	name  string
	Flags StandardFlags
	table entryIndex
}

func (e *Entry) Name() string  { return e.name }
func (e *Entry) entry() *Entry { return e }

// SetName renames the entry. An empty name or a name already used in the
// owning table is rejected and the entry keeps its current name.
func (e *Entry) SetName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if e.table != nil && name != e.name {
		if err := e.table.rename(e.name, name); err != nil {
			return err
		}
	}
	e.name = name
	return nil
}

// SetHandle changes the handle and updates the owning table's index.
func (e *Entry) SetHandle(h Handle) {
	old := e.handle
	e.handle = h
	if e.table != nil && old != h {
		e.table.rehandle(e.name, old, h)
	}
}

// Table returns the table the entry was added to, if any.
func (e *Entry) Table() Object {
	if e.table == nil {
		return nil
	}
	return e.table
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s:%s", e.handle, e.name)
}

// EntryOf exposes the shared fields of any table entry.
func EntryOf(e TableEntry) *Entry { return e.entry() }
