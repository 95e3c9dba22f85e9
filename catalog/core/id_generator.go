package core

// IDGenerator produces identifiers guaranteed unique among previously
// generated values. It is invoked whenever the authors transition function
// synthesizes a new author record, and by client code constructing new
// book/author payloads before dispatch.
type IDGenerator interface {
	NextID() string
}
