// Package shell contains the mapping layer between the pure catalog domain
// and its collaborators: serialization of domain events to journal entries
// and back, event metadata, and the uuid-backed id generator.
package shell
