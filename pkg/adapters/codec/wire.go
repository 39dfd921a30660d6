package codec

import (
	"fmt"

	"github.com/aretw0/sheaf/pkg/core"
)

// record is the decoded form of one note. Pointer fields tell a missing
// field apart from a zero value.
type record struct {
	ID      *int      `json:"id" yaml:"id"`
	Title   *string   `json:"title" yaml:"title"`
	Content *string   `json:"content" yaml:"content"`
	Tags    *[]string `json:"tags" yaml:"tags"`
}

var recordFields = map[string]bool{"id": true, "title": true, "content": true, "tags": true}

func (r record) missing() string {
	switch {
	case r.ID == nil:
		return "id"
	case r.Title == nil:
		return "title"
	case r.Content == nil:
		return "content"
	case r.Tags == nil:
		return "tags"
	}
	return ""
}

func fromRecords(format string, records []record) (core.Collection, error) {
	c := make(core.Collection, 0, len(records))
	for i, r := range records {
		if field := r.missing(); field != "" {
			return nil, &core.ParseError{Format: format, Err: fmt.Errorf("record %d: missing field %q", i, field)}
		}
		tags := make([]string, len(*r.Tags))
		copy(tags, *r.Tags)
		c = append(c, core.Note{
			ID:      *r.ID,
			Title:   *r.Title,
			Content: *r.Content,
			Tags:    tags,
		})
	}
	return c, nil
}

// prepare normalizes a collection for encoding: never nil, tags never null.
func prepare(c core.Collection) core.Collection {
	if c == nil {
		return core.Collection{}
	}
	return c.Clone()
}
