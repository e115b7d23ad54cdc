// Package descriptor parses JVM type descriptors into structured type signatures.
//
// A descriptor encodes array dimensions and a base type, e.g.
// "[[Ljava/lang/String;" denotes a two-dimensional array of java.lang.String.
// Parse accepts the standard descriptor grammar plus bare (dotted or slashed)
// class names, and normalizes every form to one canonical TypeSignature, so
// descriptors that denormalize to the same type compare equal.
package descriptor
