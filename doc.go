// Package classmeta models annotation metadata extracted from compiled
// JVM class files: which annotations appear on a class element and the
// parameter values they carry.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	classmeta/           Root package documentation
//	├── annotation/      Value union, instances, ordering, rendering, codec
//	├── descriptor/      Type descriptor parsing into structured signatures
//	├── typeset/         In-memory resolver over registered type metadata
//	├── errors/          Structured error types for debugging
//	└── cmd/inspect/     CLI for browsing serialized annotation dumps
//
// # Quick Start
//
// Build an instance and render it:
//
//	inst := annotation.New("java.lang.annotation.Retention", []annotation.Param{
//	    {Name: "value", Value: annotation.NewEnumRef(
//	        "java.lang.annotation.RetentionPolicy", "RUNTIME")},
//	})
//	fmt.Println(inst)
//	// @java.lang.annotation.Retention(java.lang.annotation.RetentionPolicy.RUNTIME)
//
// Resolve the enum constant against a registry:
//
//	reg := typeset.New()
//	reg.AddEnum("java.lang.annotation.RetentionPolicy",
//	    typeset.Constant{Name: "RUNTIME", Value: "RUNTIME", Exported: true})
//
//	v, _ := inst.Param("value")
//	got, err := v.(*annotation.EnumRef).Resolve(reg)
//
// # Value Model
//
// Annotation parameter values form a closed union:
//
//   - Scalars: byte, short, int, long, bool, float, double, char, string
//   - Heterogeneous arrays of further values
//   - Enum constant references, resolved lazily by name
//   - Class references, stored as type descriptors
//   - Nested annotation instances
//
// A nil annotation.Value is the absent variant: a parameter that exists
// but carries no value.
//
// # Resolution Model
//
// Instances never hold a resolver. Enum and class references store plain
// names and are dereferenced on demand through an explicit
// annotation.Resolver argument, so the same metadata can be rendered,
// compared, and serialized with no resolver at hand and resolved against
// different type sets later.
//
// # Thread Safety
//
// Values and instances are immutable after construction (ApplyDefaults
// is the one pre-publication mutation) and safe for concurrent reads.
// typeset.Registry is safe for concurrent registration and resolution.
package classmeta
