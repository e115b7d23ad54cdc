// Package annotation models annotation metadata extracted from compiled
// JVM class files: named instances carrying arbitrarily nested,
// heterogeneous parameter values.
//
// Values form a closed union (Value): primitive scalars, strings, arrays,
// enum constant references, class references, and nested instances. A nil
// Value is the absent variant. Everything is a plain immutable value object
// after construction; enum and class references resolve lazily against a
// Resolver passed explicitly to each resolution call, so instances whose
// referenced types are unavailable can still be stored, compared, merged,
// and rendered.
//
// Use EncodeJSON/EncodeCBOR and their Decode counterparts for the
// persisted wire layout; exactly one alternative of each serialized value
// is ever populated.
package annotation
