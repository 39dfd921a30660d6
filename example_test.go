package sheaf_test

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/klauspost/compress/zip"

	"github.com/aretw0/sheaf"
)

// Example_basic extracts the notes of an in-memory archive and walks them.
func Example_basic() {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range []struct{ name, body string }{
		{"notes/todo.txt", "buy milk\n\ncall mom"},
		{"notes/photo.jpg", "not text"},
		{"ideas.txt", "a sheaf of notes"},
	} {
		w, err := zw.Create(f.name)
		if err != nil {
			log.Fatal(err)
		}
		if _, err := w.Write([]byte(f.body)); err != nil {
			log.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		log.Fatal(err)
	}

	svc, err := sheaf.New()
	if err != nil {
		log.Fatal(err)
	}
	if err := svc.Upload(context.Background(), "notes.zip", buf.Bytes()); err != nil {
		log.Fatal(err)
	}

	for _, n := range svc.Store().Notes() {
		fmt.Printf("%d %s: %s\n", n.ID, n.Title, n.Content)
	}
	// Output:
	// 0 notes/todo.txt: buy milk
	// 1 notes/todo.txt: call mom
	// 0 ideas.txt: a sheaf of notes
}
