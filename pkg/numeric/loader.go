package numeric

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/bft-labs/ircsend/internal/domain"
)

// fileTable is the on-disk layout of a numeric table.
type fileTable struct {
	Numerics map[string]string `toml:"numerics"`
}

// Parse decodes a TOML numeric table and validates it.
func Parse(data []byte) (Table, error) {
	var ft fileTable
	if err := toml.Unmarshal(data, &ft); err != nil {
		return nil, fmt.Errorf("%w: decode numeric table: %v", domain.ErrConstruction, err)
	}
	if len(ft.Numerics) == 0 {
		return nil, fmt.Errorf("%w: numeric table has no [numerics] entries", domain.ErrConstruction)
	}

	t := make(Table, len(ft.Numerics))
	for key, name := range ft.Numerics {
		code, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, fmt.Errorf("%w: numeric key %q is not a number", domain.ErrConstruction, key)
		}
		if prev, dup := t[code]; dup {
			return nil, fmt.Errorf("%w: numeric %d listed twice (%s, %s)", domain.ErrConstruction, code, prev, name)
		}
		t[code] = name
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadFile reads and parses a TOML numeric table from path.
func LoadFile(path string) (Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read numeric table: %v", domain.ErrConstruction, err)
	}
	t, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
