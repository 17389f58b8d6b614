package dxfreader

import (
	"fmt"

	"github.com/dhamidi/cadkit/cad"
)

// builder owns the handle index of the templates created while reading
// and runs the resolution pass over them.
type builder struct {
	doc        *cad.Document
	templates  []template
	index      map[cad.Handle]template
	unassigned []template
	maxHandle  cad.Handle
	next       cad.Handle
	// objects created during the build, registered after the templates
	created []cad.Object
	notify  NotificationHandler
}

func newBuilder(doc *cad.Document, notify NotificationHandler) *builder {
	return &builder{
		doc:    doc,
		index:  make(map[cad.Handle]template),
		notify: notify,
	}
}

func (b *builder) warn(line int, format string, args ...any) {
	b.notify(Notification{Type: NotificationWarning, Message: fmt.Sprintf(format, args...), Line: line})
}

// register adds t to the index. Objects read without a handle get one when
// the build starts.
func (b *builder) register(t template) error {
	base := t.base()
	h := base.obj.Handle()
	if h == 0 {
		b.unassigned = append(b.unassigned, t)
		b.templates = append(b.templates, t)
		return nil
	}
	if prev, ok := b.index[h]; ok {
		return &FormatError{
			Line: base.line,
			Msg: fmt.Sprintf("%s uses handle %s already taken by %s at line %d",
				base.obj.ObjectName(), h, prev.base().obj.ObjectName(), prev.base().line),
			Err: cad.ErrDuplicateHandle,
		}
	}
	b.index[h] = t
	b.templates = append(b.templates, t)
	if h > b.maxHandle {
		b.maxHandle = h
	}
	return nil
}

// adopt gives an object created during the build the next free handle.
func (b *builder) adopt(o cad.Object) {
	o.SetHandle(b.next)
	b.next++
	b.created = append(b.created, o)
}

func (b *builder) object(h cad.Handle) (cad.Object, bool) {
	t, ok := b.index[h]
	if !ok {
		return nil, false
	}
	return t.base().obj, true
}

func objectAs[T cad.Object](b *builder, h cad.Handle) (T, bool) {
	var zero T
	if h == 0 {
		return zero, false
	}
	o, ok := b.object(h)
	if !ok {
		return zero, false
	}
	t, ok := o.(T)
	return t, ok
}

// build assigns the missing handles, resolves every template once in
// registration order and indexes the objects in the document.
func (b *builder) build() error {
	b.next = b.maxHandle + 1
	if seed := b.doc.Header.HandleSeed; seed > b.next {
		b.next = seed
	}
	for _, t := range b.unassigned {
		t.base().obj.SetHandle(b.next)
		b.index[b.next] = t
		b.next++
	}
	b.unassigned = nil

	for _, t := range b.templates {
		if err := t.build(b); err != nil {
			return err
		}
	}

	for _, t := range b.templates {
		if err := b.doc.Register(t.base().obj); err != nil {
			return &FormatError{Line: t.base().line, Msg: "index objects", Err: err}
		}
	}
	for _, o := range b.created {
		if err := b.doc.Register(o); err != nil {
			return &FormatError{Msg: "index objects", Err: err}
		}
	}
	if b.next > b.doc.Header.HandleSeed {
		b.doc.Header.HandleSeed = b.next
	}
	b.templates = nil
	b.created = nil
	return nil
}
