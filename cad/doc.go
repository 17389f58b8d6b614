// Package cad holds the in-memory model of a CAD document: the symbol
// tables, block definitions and entities reconstructed by dxfreader.
//
// Objects reference each other through shared pointers once a document has
// been built. Every object carries a Handle that is unique within its
// document; Document.GetObject resolves a handle back to its object.
package cad
