// Package typeset provides an in-memory resolver context backing
// annotation.Resolver.
//
// A Registry holds declared type metadata (enum constants, class fields)
// registered by the host. Register everything before handing the registry
// to concurrent resolvers; registration and resolution are individually
// thread-safe but resolution reflects whatever has been registered so far.
package typeset
