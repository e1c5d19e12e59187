package domain

import (
	"errors"
	"testing"
)

func TestSimpleVerbs(t *testing.T) {
	want := []struct {
		name    string
		command string
	}{
		{"join", "JOIN"},
		{"part", "PART"},
		{"nick", "NICK"},
		{"notice", "NOTICE"},
		{"invite", "INVITE"},
		{"mode", "MODE"},
	}

	verbs := SimpleVerbs()
	if len(verbs) != len(want) {
		t.Fatalf("SimpleVerbs() returned %d verbs, want %d", len(verbs), len(want))
	}
	for i, v := range verbs {
		if v.String() != want[i].name || v.Command() != want[i].command {
			t.Errorf("verb %d = %s/%s, want %s/%s", i, v, v.Command(), want[i].name, want[i].command)
		}
		parsed, ok := ParseVerb(want[i].command)
		if !ok || parsed != v {
			t.Errorf("ParseVerb(%q) = %v, %v", want[i].command, parsed, ok)
		}
	}
}

func TestInvalidVerb(t *testing.T) {
	v := Verb(42)
	if v.Valid() {
		t.Fatal("Verb(42) reported valid")
	}
	if v.String() != "unknown" {
		t.Fatalf("String() = %q", v.String())
	}
	if _, ok := ParseVerb("kick"); ok {
		t.Fatal("kick is not a simple verb")
	}
}

func TestNumericDescriptor(t *testing.T) {
	tests := []struct {
		code  int
		token string
	}{
		{1, "001"},
		{42, "042"},
		{401, "401"},
	}
	for _, tt := range tests {
		d := NumericDescriptor(tt.code, "RPL_X")
		if d.Token != tt.token || d.Code != tt.code || !d.IsNumeric() {
			t.Errorf("NumericDescriptor(%d) = %+v", tt.code, d)
		}
	}
	if VerbDescriptor(VerbJoin).IsNumeric() {
		t.Fatal("verb descriptor reported numeric")
	}
}

func TestChoiceSetValidate(t *testing.T) {
	for _, c := range []ChoiceSet{Affirmative, Acknowledgement, Negative} {
		if err := c.Validate(); err != nil {
			t.Fatalf("predefined set %v invalid: %v", c, err)
		}
	}
	if err := (ChoiceSet{}).Validate(); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("empty set error = %v, want ErrInvalidArgument", err)
	}
}

func TestBatchLine(t *testing.T) {
	var b BatchLine
	if !b.Empty() {
		t.Fatal("new line not empty")
	}
	b.Append("#a")
	b.Append("#bb")
	if b.String() != "#a,#bb," || b.Len() != 7 {
		t.Fatalf("line = %q (%d)", b.String(), b.Len())
	}
	b.Reset()
	if !b.Empty() || b.String() != "" {
		t.Fatal("Reset did not clear the line")
	}
}
