package numeric

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bft-labs/ircsend/internal/domain"
)

func TestParse(t *testing.T) {
	data := []byte(`
[numerics]
401 = "ERR_NOSUCHNICK"
"001" = "RPL_WELCOME"
433 = "ERR_NICKNAMEINUSE"
`)
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	want := Table{1: "RPL_WELCOME", 401: "ERR_NOSUCHNICK", 433: "ERR_NICKNAMEINUSE"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "malformed toml", data: `[numerics`},
		{name: "missing section", data: `title = "x"`},
		{name: "empty section", data: "[numerics]\n"},
		{name: "non-numeric key", data: "[numerics]\nabc = \"RPL_X\"\n"},
		{name: "duplicate code", data: "[numerics]\n1 = \"RPL_A\"\n\"001\" = \"RPL_B\"\n"},
		{name: "invalid name", data: "[numerics]\n401 = \"no such nick\"\n"},
		{name: "out of range", data: "[numerics]\n1200 = \"RPL_BIG\"\n"},
		{name: "non-string value", data: "[numerics]\n401 = 12\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, domain.ErrConstruction) {
				t.Fatalf("error %v does not wrap ErrConstruction", err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "numerics.toml")
	if err := os.WriteFile(path, []byte("[numerics]\n401 = \"ERR_NOSUCHNICK\"\n"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}

	tbl, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if tbl[401] != "ERR_NOSUCHNICK" {
		t.Fatalf("401 = %q", tbl[401])
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, domain.ErrConstruction) {
		t.Fatalf("expected ErrConstruction, got %v", err)
	}
}
