package core

// Note is a single unit of text extracted from a source file.
// It is a value: nothing in the pipeline mutates a Note after creation.
type Note struct {
	// ID is sequential within the source file and restarts at 0 for every file,
	// so it is not unique across a Collection.
	ID int `json:"id" yaml:"id"`
	// Title is the archive-relative path of the source file.
	Title   string   `json:"title" yaml:"title"`
	Content string   `json:"content" yaml:"content"`
	Tags    []string `json:"tags" yaml:"tags"`
}

// Collection is the ordered set of notes produced by one extraction or import.
type Collection []Note

// Clone returns a deep copy of the collection, tags included.
// Nil tag slices are normalized to empty ones.
func (c Collection) Clone() Collection {
	out := make(Collection, len(c))
	for i, n := range c {
		tags := make([]string, len(n.Tags))
		copy(tags, n.Tags)
		n.Tags = tags
		out[i] = n
	}
	return out
}
