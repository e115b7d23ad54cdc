package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:    PhaseResolve,
				Kind:     KindConstantNotFound,
				Path:     []string{"policy"},
				TypeName: "com.example.RetentionPolicy",
				Detail:   "no field \"RUNTIME\" declared on type",
			},
			contains: []string{"[resolve]", "constant_not_found", "policy", "com.example.RetentionPolicy", "RUNTIME"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDecode,
				Kind:  KindInvalidData,
			},
			contains: []string{"[decode]", "invalid_data"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseParse,
				Kind:   KindMalformedDescriptor,
				Detail: "unterminated class name",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[parse]", "malformed_descriptor", "unterminated class name", "caused by", "underlying error"},
		},
		{
			name: "go type only",
			err: &Error{
				Phase:  PhaseConstruct,
				Kind:   KindUnsupportedValue,
				GoType: "map[string]int",
			},
			contains: []string{"[construct]", "unsupported_value", "Go type map[string]int"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseResolve,
		Kind:  KindAccessDenied,
		Cause: cause,
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should match the wrapped cause")
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
}

func TestError_Is(t *testing.T) {
	err := TypeNotFound("com.example.Missing")

	if !errors.Is(err, &Error{Phase: PhaseResolve, Kind: KindTypeNotFound}) {
		t.Error("errors.Is should match on phase and kind")
	}
	if errors.Is(err, &Error{Phase: PhaseResolve, Kind: KindNotAnEnum}) {
		t.Error("errors.Is should not match a different kind")
	}
	if errors.Is(err, errors.New("plain")) {
		t.Error("errors.Is should not match a non-structured error")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("inner")
	err := New(PhaseDecode, KindInvalidData).
		Path("params", "value").
		GoType("float64").
		TypeName("java.lang.String").
		Detail("got %d variants", 2).
		Value(2).
		Cause(cause).
		Build()

	if err.Phase != PhaseDecode || err.Kind != KindInvalidData {
		t.Errorf("unexpected phase/kind: %s/%s", err.Phase, err.Kind)
	}
	if len(err.Path) != 2 || err.Path[1] != "value" {
		t.Errorf("unexpected path: %v", err.Path)
	}
	if err.Detail != "got 2 variants" {
		t.Errorf("unexpected detail: %q", err.Detail)
	}
	if err.Cause != cause {
		t.Error("cause not preserved")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name  string
		err   *Error
		phase Phase
		kind  Kind
	}{
		{"unsupported value", UnsupportedValue("chan int"), PhaseConstruct, KindUnsupportedValue},
		{"type not found", TypeNotFound("a.B"), PhaseResolve, KindTypeNotFound},
		{"not an enum", NotAnEnum("a.B"), PhaseResolve, KindNotAnEnum},
		{"constant not found", ConstantNotFound("a.B", "C"), PhaseResolve, KindConstantNotFound},
		{"not a constant", NotAConstant("a.B", "C"), PhaseResolve, KindNotAConstant},
		{"access denied", AccessDenied("a.B", "c"), PhaseResolve, KindAccessDenied},
		{"malformed descriptor", MalformedDescriptor("[X", 1, "unknown base type"), PhaseParse, KindMalformedDescriptor},
		{"depth exceeded", DepthExceeded(PhaseConstruct, nil, 64), PhaseConstruct, KindDepthExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase {
				t.Errorf("phase = %s, want %s", tt.err.Phase, tt.phase)
			}
			if tt.err.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", tt.err.Kind, tt.kind)
			}
			if tt.err.Error() == "" {
				t.Error("empty error message")
			}
		})
	}
}
