package typeset

import (
	stderrors "errors"
	"testing"

	"github.com/wippyai/classmeta/annotation"
	"github.com/wippyai/classmeta/errors"
)

func retentionRegistry() *Registry {
	r := New()
	r.AddEnum("java.lang.annotation.RetentionPolicy",
		Constant{Name: "SOURCE", Value: "SOURCE", Exported: true},
		Constant{Name: "CLASS", Value: "CLASS", Exported: true},
		Constant{Name: "RUNTIME", Value: "RUNTIME", Exported: true},
	)
	return r
}

func wantFailure(t *testing.T, err error, kind errors.Kind) {
	t.Helper()
	if err == nil {
		t.Fatal("resolution succeeded, want error")
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseResolve, Kind: kind}) {
		t.Errorf("error = %v, want kind %s", err, kind)
	}
}

func TestEnumRef_Resolve(t *testing.T) {
	r := retentionRegistry()

	ref := annotation.NewEnumRef("java.lang.annotation.RetentionPolicy", "RUNTIME")
	got, err := ref.Resolve(r)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != "RUNTIME" {
		t.Errorf("Resolve() = %v, want RUNTIME", got)
	}
}

func TestEnumRef_ResolveFailures(t *testing.T) {
	r := retentionRegistry()
	r.AddClass("com.example.NotEnum")
	r.AddEnum("com.example.Mixed",
		Constant{Name: "OK", Value: 1, Exported: true},
		Constant{Name: "HIDDEN", Value: 2, Exported: false},
	).AddStaticField("HELPER", "h", true)

	tests := []struct {
		name      string
		typeName  string
		constName string
		wantKind  errors.Kind
	}{
		{"unknown type", "com.example.Missing", "X", errors.KindTypeNotFound},
		{"not an enum", "com.example.NotEnum", "X", errors.KindNotAnEnum},
		{"unknown constant", "com.example.Mixed", "NOPE", errors.KindConstantNotFound},
		{"static field is not a constant", "com.example.Mixed", "HELPER", errors.KindNotAConstant},
		{"inaccessible constant", "com.example.Mixed", "HIDDEN", errors.KindAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := annotation.NewEnumRef(tt.typeName, tt.constName).Resolve(r)
			wantFailure(t, err, tt.wantKind)
		})
	}
}

func TestEnumRef_ResolveReflectsRegistryState(t *testing.T) {
	r := New()
	ref := annotation.NewEnumRef("com.example.Color", "RED")

	if _, err := ref.Resolve(r); err == nil {
		t.Fatal("resolving against an empty registry should fail")
	}

	r.AddEnum("com.example.Color", Constant{Name: "RED", Value: 0xFF0000, Exported: true})
	got, err := ref.Resolve(r)
	if err != nil {
		t.Fatalf("Resolve() after registration error = %v", err)
	}
	if got != 0xFF0000 {
		t.Errorf("Resolve() = %v, want 0xFF0000", got)
	}
}

func TestClassRef_ResolveClass(t *testing.T) {
	r := New()
	r.AddClass("java.lang.String")

	tests := []struct {
		name       string
		descriptor string
		wantName   string
	}{
		{"registered class", "Ljava/lang/String;", "java.lang.String"},
		{"dotted form", "java.lang.String", "java.lang.String"},
		{"primitive", "I", "int"},
		{"primitive array", "[[J", "long[][]"},
		{"class array", "[Ljava/lang/String;", "java.lang.String[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, err := annotation.NewClassRef(tt.descriptor).ResolveClass(r)
			if err != nil {
				t.Fatalf("ResolveClass() error = %v", err)
			}
			if typ.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", typ.Name(), tt.wantName)
			}
		})
	}

	t.Run("unregistered base type", func(t *testing.T) {
		_, err := annotation.NewClassRef("Lcom/example/Missing;").ResolveClass(r)
		wantFailure(t, err, errors.KindTypeNotFound)
	})

	t.Run("malformed descriptor", func(t *testing.T) {
		_, err := annotation.NewClassRef("[").ResolveClass(r)
		if err == nil {
			t.Fatal("ResolveClass on malformed descriptor succeeded, want error")
		}
		if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseParse, Kind: errors.KindMalformedDescriptor}) {
			t.Errorf("error = %v, want malformed_descriptor", err)
		}
	})
}

func TestRegistry_RenderWithoutResolution(t *testing.T) {
	// Rendering never touches the resolver; an instance referencing
	// unregistered types still prints, and resolution fails independently.
	r := New()

	inst := annotation.New("java.lang.annotation.Retention", []annotation.Param{
		{Name: "value", Value: annotation.NewEnumRef("java.lang.annotation.RetentionPolicy", "RUNTIME")},
	})

	want := "@java.lang.annotation.Retention(java.lang.annotation.RetentionPolicy.RUNTIME)"
	if got := inst.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	v, _ := inst.Param("value")
	_, err := v.(*annotation.EnumRef).Resolve(r)
	wantFailure(t, err, errors.KindTypeNotFound)
}
