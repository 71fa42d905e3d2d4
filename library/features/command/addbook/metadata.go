package addbook

import (
	"context"
	"strings"
)

// Metadata is what a lookup service knows about an ISBN.
type Metadata struct {
	Title     string
	Author    string
	Publisher string
}

// MetadataLookup resolves book metadata from an ISBN. Implementations live outside the custody core.
type MetadataLookup interface {
	LookupISBN(ctx context.Context, isbn string) (Metadata, error)
}

// NeedsMetadata reports whether a lookup could fill anything in.
func (c Command) NeedsMetadata() bool {
	f := c.Fields

	return strings.TrimSpace(f.ISBN) != "" &&
		(strings.TrimSpace(f.Title) == "" || strings.TrimSpace(f.Author) == "" || strings.TrimSpace(f.Publisher) == "")
}

// WithMetadata fills the empty fields from m. Fields the caller set are kept.
func (c Command) WithMetadata(m Metadata) Command {
	c.Fields.Title = firstNonBlank(c.Fields.Title, m.Title)
	c.Fields.Author = firstNonBlank(c.Fields.Author, m.Author)
	c.Fields.Publisher = firstNonBlank(c.Fields.Publisher, m.Publisher)

	return c
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}

	return ""
}
