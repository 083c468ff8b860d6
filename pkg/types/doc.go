// Package types defines the Loom domain objects, their schema descriptors,
// output modes, and the standard errors shared by the persistence layer and
// its clients.
package types
