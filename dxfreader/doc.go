// Package dxfreader reconstructs a cad.Document from a DXF record stream.
//
// Reading happens in two phases. The section readers make a single forward
// pass over the stream, creating every object as a shell together with a
// template that holds the references the object makes by handle or by name.
// Symbol tables are filled while they are read. Once the stream has been
// consumed the builder visits every template and turns those references
// into pointers, so an object may refer to another one that appears later
// in the file.
//
// # Errors
//
// Violations of the section grammar, unknown table kinds, blocks or table
// entries without a valid owner and duplicate handles or names abort the
// read with a *FormatError. No document is returned in that case.
//
// References that cannot be resolved, and fields the reader does not know,
// are reported as Notifications and reading continues with defaults:
//
//	doc, err := dxfreader.ParseFile("plan.dxf",
//		dxfreader.OnNotification(func(n dxfreader.Notification) {
//			fmt.Println(n)
//		}))
//
// Without a handler notifications are logged through commonlog.
package dxfreader
