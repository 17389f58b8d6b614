// Package dxf supplies the record stream a DXF document is reconstructed
// from: ordered (group code, value) pairs with the line each pair starts
// on.
//
// TextReader decodes the ASCII encoding. RecordReader replays records held
// in memory, which is how tests and other encodings feed the reader.
package dxf
