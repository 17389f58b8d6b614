package cad

// Object is any member of a document.
type Object interface {
	Handle() Handle
	SetHandle(h Handle)
	// Owner is a relation only; the owner does not necessarily hold the
	// object in one of its collections.
	Owner() Object
	SetOwner(o Object)
	ObjectName() string
}

// ObjectBase implements the identity part of Object. Concrete objects embed
// it and add ObjectName.
type ObjectBase struct {
	handle Handle
	owner  Object
}

func (o *ObjectBase) Handle() Handle      { return o.handle }
func (o *ObjectBase) SetHandle(h Handle)  { o.handle = h }
func (o *ObjectBase) Owner() Object       { return o.owner }
func (o *ObjectBase) SetOwner(obj Object) { o.owner = obj }

// OwnerHandle returns the handle of the owner, or zero.
func OwnerHandle(o Object) Handle {
	if o == nil || o.Owner() == nil {
		return 0
	}
	return o.Owner().Handle()
}
