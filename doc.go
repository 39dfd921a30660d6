// Package sheaf turns archives of plain-text files into note collections.
//
// An archive (zip, or tar compressed with gzip, zstd or xz) is walked in
// entry order. Every ".txt" file is split on blank lines, and each non-empty
// segment becomes a Note titled with the file's archive path. The resulting
// collection can be browsed with a cursor and exported as JSON or YAML.
//
// Usage:
//
//	svc, err := sheaf.New(sheaf.WithIgnore("__MACOSX/**"))
//	if err != nil {
//		return err
//	}
//	if err := svc.Upload(ctx, "notes.zip", data); err != nil {
//		return err
//	}
//	out, err := svc.Export(nil) // JSON
//
// The package is a thin facade; the domain lives in pkg/core and the
// adapters in pkg/adapters.
package sheaf
