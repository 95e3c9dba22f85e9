package core

// Books is an alias type for a slice of Book.
type Books = []Book

// Book is a catalog record.
// AuthorName is a denormalized display name, not a reference to an Author id.
type Book struct {
	ID         BookIDString
	Title      string
	AuthorName AuthorNameString
}
