package cad

import (
	"fmt"
	"strings"
)

// Table is an ordered collection of entries of one kind, indexed by name
// and by handle. Names compare case-insensitively, as AutoCAD symbol names
// do.
type Table[T TableEntry] struct {
	ObjectBase
	name     string
	entries  []T
	byName   map[string]T
	byHandle map[Handle]T
}

func NewTable[T TableEntry](name string) *Table[T] {
	return &Table[T]{
		name:     name,
		byName:   make(map[string]T),
		byHandle: make(map[Handle]T),
	}
}

func (*Table[T]) ObjectName() string { return "TABLE" }

// Name is the table kind as written after the TABLE record, e.g. LAYER.
func (t *Table[T]) Name() string { return t.name }

func (t *Table[T]) Len() int { return len(t.entries) }

func (t *Table[T]) Entries() []T { return t.entries }

// Items returns the entries as TableEntry values for callers that do not
// know the concrete kind.
func (t *Table[T]) Items() []TableEntry {
	items := make([]TableEntry, len(t.entries))
	for i, e := range t.entries {
		items[i] = e
	}
	return items
}

func nameKey(name string) string { return strings.ToUpper(name) }

// Add appends e and takes ownership of it. The table is left unchanged when
// e has no name, or its name or non-zero handle is already present.
func (t *Table[T]) Add(e T) error {
	name := e.Name()
	if name == "" {
		return fmt.Errorf("%s table: %w", t.name, ErrEmptyName)
	}
	if _, ok := t.byName[nameKey(name)]; ok {
		return fmt.Errorf("%s table: %w: %q", t.name, ErrDuplicateName, name)
	}
	if h := e.Handle(); h != 0 {
		if _, ok := t.byHandle[h]; ok {
			return fmt.Errorf("%s table: %w: %s", t.name, ErrDuplicateHandle, h)
		}
		t.byHandle[h] = e
	}

	t.entries = append(t.entries, e)
	t.byName[nameKey(name)] = e
	e.entry().table = t
	e.SetOwner(t)
	return nil
}

func (t *Table[T]) Get(name string) (T, bool) {
	e, ok := t.byName[nameKey(name)]
	return e, ok
}

func (t *Table[T]) Contains(name string) bool {
	_, ok := t.byName[nameKey(name)]
	return ok
}

// GetByHandle looks an entry up by handle. The index follows SetHandle on
// attached entries, so lookups never write.
func (t *Table[T]) GetByHandle(h Handle) (T, bool) {
	e, ok := t.byHandle[h]
	return e, ok
}

// Remove detaches the named entry from the table.
func (t *Table[T]) Remove(name string) (T, bool) {
	e, ok := t.byName[nameKey(name)]
	if !ok {
		return e, false
	}
	delete(t.byName, nameKey(name))
	if cur, ok := t.byHandle[e.Handle()]; ok && cur.entry() == e.entry() {
		delete(t.byHandle, e.Handle())
	}
	for i, x := range t.entries {
		if x.entry() == e.entry() {
			t.entries = append(t.entries[:i], t.entries[i+1:]...)
			break
		}
	}
	e.entry().table = nil
	e.SetOwner(nil)
	return e, true
}

func (t *Table[T]) rename(oldName, newName string) error {
	oldKey, newKey := nameKey(oldName), nameKey(newName)
	e, ok := t.byName[oldKey]
	if !ok {
		return fmt.Errorf("%s table: %w: %q", t.name, ErrNotFound, oldName)
	}
	if oldKey == newKey {
		return nil
	}
	if _, taken := t.byName[newKey]; taken {
		return fmt.Errorf("%s table: %w: %q", t.name, ErrDuplicateName, newName)
	}
	delete(t.byName, oldKey)
	t.byName[newKey] = e
	return nil
}

// rehandle moves the named entry in the handle index. A handle already held
// by another entry keeps pointing at that entry.
func (t *Table[T]) rehandle(name string, oldHandle, newHandle Handle) {
	e, ok := t.byName[nameKey(name)]
	if !ok {
		return
	}
	if cur, ok := t.byHandle[oldHandle]; ok && cur.entry() == e.entry() {
		delete(t.byHandle, oldHandle)
	}
	if newHandle == 0 {
		return
	}
	if _, taken := t.byHandle[newHandle]; !taken {
		t.byHandle[newHandle] = e
	}
}
