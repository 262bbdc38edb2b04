package pg

import (
	"fmt"

	"github.com/mitranim/sqlb"
	"github.com/mitranim/sqlbx"
)

func try(err error) {
	if err != nil {
		panic(err)
	}
}

func errf(pat string, args ...any) error { return fmt.Errorf(pat, args...) }

func anys[A any](vals []A) []any {
	if vals == nil {
		return nil
	}
	out := make([]any, len(vals))
	for ind, val := range vals {
		out[ind] = val
	}
	return out
}

// Encodes the SQL literal verbatim. Must be used only for trusted text.
func lit(val string) sqlb.Str { return sqlb.Str(val) }

func errScan(typ string, src any) error {
	return sqlbx.ErrInvalidInput.During(`scanning ` + typ).Because(
		errf(`unsupported source type %T`, src),
	)
}

func errDecode(typ string, src string, cause error) error {
	return sqlbx.ErrInvalidInput.During(`decoding ` + typ).Because(
		errf(`malformed input %q: %w`, src, cause),
	)
}

// Converts a scanner source to text. Nil sources are reported as such.
func scanText(typ string, src any) (string, bool, error) {
	switch src := src.(type) {
	case nil:
		return ``, false, nil
	case string:
		return src, true, nil
	case []byte:
		return string(src), true, nil
	default:
		return ``, false, errScan(typ, src)
	}
}
