// Package core contains the domain records and domain events of the catalog:
// books and authors, plus the events that change them.
//
// Everything in this package is pure data with validating factory methods -
// there is no I/O and no dependency on the state store machinery beyond the
// event contract.
package core
