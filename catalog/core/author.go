package core

// Authors is an alias type for a slice of Author.
type Authors = []Author

// Author is a catalog record identified by an opaque unique id.
type Author struct {
	ID         AuthorIDString
	AuthorName AuthorNameString
}
