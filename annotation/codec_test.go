package annotation

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	cerrors "github.com/wippyai/classmeta/errors"
)

func codecFixture() []*Instance {
	return []*Instance{
		New("com.example.Marker", nil),
		New("com.example.Empty", []Param{}),
		New("com.example.Config", []Param{
			{Name: "count", Value: Int(0)},
			{Name: "flag", Value: Bool(false)},
			{Name: "label", Value: String("")},
			{Name: "weight", Value: Double(2.5)},
			{Name: "code", Value: Char('A')},
			{Name: "big", Value: Long(1 << 40)},
			{Name: "absent"},
			{Name: "tags", Value: Array{String("a"), String("b")}},
			{Name: "matrix", Value: Array{Array{Int(1)}, Array{}}},
			{Name: "policy", Value: NewEnumRef("RetentionPolicy", "RUNTIME")},
			{Name: "target", Value: NewClassRef("[Ljava/lang/String;")},
			{Name: "nested", Value: New("Inner", []Param{{Name: "value", Value: Byte(7)}})},
		}),
	}
}

func instancesEqual(t *testing.T, want, got []*Instance) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !want[i].Equal(got[i]) {
			t.Errorf("instance %d mismatch:\nwant %s\ngot  %s", i, want[i], got[i])
		}
		if (want[i].Params == nil) != (got[i].Params == nil) {
			t.Errorf("instance %d nil-params distinction lost", i)
		}
	}
}

func TestCodec_JSONRoundTrip(t *testing.T) {
	want := codecFixture()

	data, err := EncodeJSON(want)
	if err != nil {
		t.Fatalf("EncodeJSON() error = %v", err)
	}
	got, err := DecodeJSON(data)
	if err != nil {
		t.Fatalf("DecodeJSON() error = %v", err)
	}
	instancesEqual(t, want, got)

	// A second trip through the codec must be byte-stable.
	again, err := EncodeJSON(got)
	if err != nil {
		t.Fatalf("re-encode error = %v", err)
	}
	var a, b any
	if err := json.Unmarshal(data, &a); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(again, &b); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("re-encoded JSON drifted (-first +second):\n%s", diff)
	}
}

func TestCodec_CBORRoundTrip(t *testing.T) {
	want := codecFixture()

	data, err := EncodeCBOR(want)
	if err != nil {
		t.Fatalf("EncodeCBOR() error = %v", err)
	}
	got, err := DecodeCBOR(data)
	if err != nil {
		t.Fatalf("DecodeCBOR() error = %v", err)
	}
	instancesEqual(t, want, got)
}

func TestCodec_DecodeSortsParams(t *testing.T) {
	// Wire order is not trusted; decoding re-establishes the sort.
	data := []byte(`[{"name":"Foo","params":[
		{"name":"zeta","value":{"int":1}},
		{"name":"alpha","value":{"int":2}}
	]}]`)

	got, err := DecodeJSON(data)
	if err != nil {
		t.Fatalf("DecodeJSON() error = %v", err)
	}
	if got[0].Params[0].Name != "alpha" {
		t.Errorf("params not sorted after decode: %v", got[0].Params)
	}
}

func TestCodec_MultipleAlternatives(t *testing.T) {
	data := []byte(`[{"name":"Foo","params":[
		{"name":"x","value":{"int":1,"string":"also"}}
	]}]`)

	_, err := DecodeJSON(data)
	if err == nil {
		t.Fatal("decode with two populated alternatives succeeded, want error")
	}
	if !errors.Is(err, &cerrors.Error{Phase: cerrors.PhaseDecode, Kind: cerrors.KindInvalidData}) {
		t.Errorf("error = %v, want invalid_data", err)
	}
	if !strings.Contains(err.Error(), "x") {
		t.Errorf("error should name the offending path, got %v", err)
	}
}

func TestCodec_DepthLimit(t *testing.T) {
	inner := New("Deep", nil)
	for i := 0; i < maxNestingDepth+2; i++ {
		inner = New("Deep", []Param{{Name: "value", Value: inner}})
	}

	_, err := EncodeJSON([]*Instance{inner})
	if err == nil {
		t.Fatal("encode of overly deep instance succeeded, want error")
	}
	if !errors.Is(err, &cerrors.Error{Phase: cerrors.PhaseEncode, Kind: cerrors.KindDepthExceeded}) {
		t.Errorf("error = %v, want depth_exceeded", err)
	}
}

func TestInstance_MarshalJSON(t *testing.T) {
	a := New("Foo", []Param{{Name: "n", Value: Int(5)}})

	data, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var back Instance
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !a.Equal(&back) {
		t.Errorf("round trip mismatch: want %s, got %s", a, &back)
	}
}

func TestCodec_ZeroScalarsSurvive(t *testing.T) {
	a := New("Foo", []Param{
		{Name: "b", Value: Bool(false)},
		{Name: "i", Value: Int(0)},
		{Name: "s", Value: String("")},
	})

	data, err := EncodeJSON([]*Instance{a})
	if err != nil {
		t.Fatalf("EncodeJSON() error = %v", err)
	}
	got, err := DecodeJSON(data)
	if err != nil {
		t.Fatalf("DecodeJSON() error = %v", err)
	}
	if v, ok := got[0].Param("b"); !ok || !Equal(v, Bool(false)) {
		t.Errorf("false bool lost: %v, %v", v, ok)
	}
	if v, ok := got[0].Param("i"); !ok || !Equal(v, Int(0)) {
		t.Errorf("zero int lost: %v, %v", v, ok)
	}
	if v, ok := got[0].Param("s"); !ok || !Equal(v, String("")) {
		t.Errorf("empty string lost: %v, %v", v, ok)
	}
}
