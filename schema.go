package sqlbx

import (
	"bytes"
	"encoding/json"
	"errors"
	r "reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/mitranim/refut"
	"github.com/mitranim/sqlb"
)

/*
Struct type used as a whitelist of fields accepted from clients. Fields are
identified by JSON names, as tagged with `json`, and mapped to DB columns, as
tagged with `db`. Embedded structs are flattened, following the conventions of
"encoding/json" and sqlb. Nested non-embedded structs are addressed with
dot-separated paths such as "one.two".

	type Person struct {
		Id   string  `json:"id"   db:"id"`
		Name string  `json:"name" db:"name"`
		Nick *string `json:"nick" db:"nick"`
	}

	schema := sqlbx.SchemaFor(Person{})
	path, err := schema.Path(`nick`) // sqlb.Path{"nick"}

A schema is just a type, and is safe to share between goroutines.
*/
type Schema struct{ Type r.Type }

/*
Shortcut for making a schema from the type of the given value. The input is
used only as a type carrier. Pointers and slices are dereferenced.
*/
func SchemaFor(typ any) Schema { return Schema{typeElemOf(typ)} }

/*
Finds the struct field corresponding to the given dot-separated path of JSON
field names. Fails with `ErrUnknownField` if there's no such field.
*/
func (self Schema) Field(path string) (_ r.StructField, err error) {
	defer rec(&err)
	field, _ := self.field(path)
	return field, nil
}

/*
Converts a dot-separated path of JSON field names into the corresponding DB
column path. Every field in the path must have both a `json` and a `db` name.
*/
func (self Schema) Path(path string) (_ sqlb.Path, err error) {
	defer rec(&err)
	_, out := self.field(path)
	return out, nil
}

// DB column names of the top-level fields, flattening embedded structs.
func (self Schema) Cols() []string {
	var out []string
	self.each(func(field r.StructField) {
		name := sqlb.FieldDbName(field)
		if name != `` {
			out = append(out, name)
		}
	})
	return out
}

/*
JSON names of top-level fields that must be present in client input: fields
which are neither nullable nor tagged with "omitempty". Nullable means pointer,
slice, map, or interface. The result is sorted.
*/
func (self Schema) Required() []string {
	var out []string
	self.each(func(field r.StructField) {
		if isFieldRequired(field) {
			out = append(out, sqlb.FieldJsonName(field))
		}
	})
	sort.Strings(out)
	return out
}

/*
Validates decoded JSON input against the schema. Keys not found among the JSON
field names cause `ErrUnknownField`, absent required fields cause
`ErrMissingField`. Dicts under fields of nested struct types are validated
recursively, with dot-separated paths in error messages.
*/
func (self Schema) Validate(src map[string]any) (err error) {
	defer rec(&err)
	self.validate(src, ``)
	return
}

/*
Strict decoding of client input. Validates the JSON against the schema (see
`Schema.Validate`), then decodes it into the output, which must be a pointer to
the schema type. Unknown fields are rejected rather than ignored.
*/
func (self Schema) Decode(src []byte, out any) (err error) {
	defer rec(&err)

	if typeElemOf(out) != self.Type || r.TypeOf(out).Kind() != r.Ptr {
		panic(ErrTypeMismatch.During(`decoding JSON`).Because(
			errf(`expected pointer to %v, got %T`, self.Type, out),
		))
	}

	var dict map[string]any
	self.unmarshal(src, &dict)
	self.validate(dict, ``)

	dec := json.NewDecoder(bytes.NewReader(src))
	dec.DisallowUnknownFields()
	self.decoded(dec.Decode(out))
	return
}

/*
Parses ordering strings such as "name desc" against the schema, converting JSON
field paths to DB column paths. Delegates to `sqlb.OrdsParser`; see
`sqlb.ParserOrds.ParseSlice` for the format.
*/
func (self Schema) Ords(src ...string) (out sqlb.Ords, err error) {
	parser := out.OrdsParser(nil)
	parser.Type = self.Type
	err = parser.ParseSlice(src)
	return
}

/*
Typed column reference validated against the schema. Fails with
`ErrTypeMismatch` if the Go type of the struct field is neither `A` nor `*A`:

	name, err := sqlbx.ColOf[string](schema, `name`)
*/
func ColOf[A any](schema Schema, path string) (_ Expr[A], err error) {
	defer rec(&err)

	field, dbPath := schema.field(path)
	typ := typeOf[A]()

	if field.Type != typ && field.Type != r.PtrTo(typ) {
		panic(ErrTypeMismatch.During(`making typed column`).Because(
			errf(`field %q of %v has type %v, expected %v`, path, schema.Type, field.Type, typ),
		))
	}
	return Col[A](dbPath...), nil
}

const dottedPath = `(?:\w+\.)*\w+`

var dottedPathReg = regexp.MustCompile(`^` + dottedPath + `$`)

var errBreak = errors.New(``)

func (self Schema) field(path string) (field r.StructField, out sqlb.Path) {
	if !dottedPathReg.MatchString(path) {
		panic(ErrInvalidInput.During(`resolving field path`).Because(
			errf(`expected a valid dot-separated identifier, got %q`, path),
		))
	}

	typ := self.Type
	out = sqlb.Path(strings.Split(path, `.`))

	for ind, name := range out {
		field = fieldByJsonName(typ, name, path)

		col := sqlb.FieldDbName(field)
		if col == `` {
			panic(ErrUnknownField.During(`resolving field path`).Because(
				errf(`no column name corresponding to %q in type %v for path %q`, name, typ, path),
			))
		}

		out[ind] = col
		typ = field.Type
	}
	return
}

/*
Finds the struct field that has the given JSON field name. The field may be in
an embedded struct, but not in any non-embedded nested structs.
*/
func fieldByJsonName(typ r.Type, name, path string) (out r.StructField) {
	typ = refut.RtypeDeref(typ)
	if typ == nil || typ.Kind() != r.Struct {
		panic(ErrUnknownField.During(`resolving field path`).Because(
			errf(`can't find field %q of path %q: %v is not a struct type`, name, path, typ),
		))
	}

	err := refut.TraverseStructRtype(typ, func(field r.StructField, _ []int) error {
		if sqlb.FieldJsonName(field) == name {
			out = field
			return errBreak
		}
		return nil
	})
	if errors.Is(err, errBreak) {
		return
	}
	try(err)

	panic(ErrUnknownField.During(`resolving field path`).Because(
		errf(`no struct field corresponding to JSON field name %q in type %v`, name, typ),
	))
}

func (self Schema) each(fun func(r.StructField)) {
	typ := refut.RtypeDeref(self.Type)
	if typ == nil || typ.Kind() != r.Struct {
		panic(ErrInvalidInput.During(`traversing schema`).Because(
			errf(`expected struct type, got %v`, typ),
		))
	}

	try(refut.TraverseStructRtype(typ, func(field r.StructField, _ []int) error {
		fun(field)
		return nil
	}))
}

func (self Schema) validate(src map[string]any, prefix string) {
	fields := map[string]r.StructField{}
	self.each(func(field r.StructField) {
		name := sqlb.FieldJsonName(field)
		if name != `` {
			fields[name] = field
		}
	})

	for _, key := range sortedKeys(src) {
		field, ok := fields[key]
		if !ok {
			panic(ErrUnknownField.During(`validating input`).Because(
				errf(`unknown field %q in type %v`, prefix+key, self.Type),
			))
		}

		dict, ok := src[key].(map[string]any)
		if ok && isStructType(field.Type) {
			Schema{refut.RtypeDeref(field.Type)}.validate(dict, prefix+key+`.`)
		}
	}

	for _, name := range sortedKeys(fields) {
		if isFieldRequired(fields[name]) {
			if _, ok := src[name]; !ok {
				panic(ErrMissingField.During(`validating input`).Because(
					errf(`missing required field %q in type %v`, prefix+name, self.Type),
				))
			}
		}
	}
}

func (self Schema) unmarshal(src []byte, out *map[string]any) {
	err := json.Unmarshal(src, out)
	if err != nil {
		panic(ErrInvalidInput.During(`decoding JSON`).Because(err))
	}
}

func (self Schema) decoded(err error) {
	if err != nil {
		panic(ErrInvalidInput.During(`decoding JSON`).Because(err))
	}
}

func isFieldRequired(field r.StructField) bool {
	tag := field.Tag.Get(sqlb.TagNameJson)
	if sqlb.FieldJsonName(field) == `` || hasTagOpt(tag, `omitempty`) {
		return false
	}
	switch field.Type.Kind() {
	case r.Ptr, r.Slice, r.Map, r.Interface:
		return false
	default:
		return true
	}
}

func isStructType(typ r.Type) bool {
	typ = refut.RtypeDeref(typ)
	return typ != nil && typ.Kind() == r.Struct
}

func sortedKeys[A any](src map[string]A) []string {
	out := make([]string, 0, len(src))
	for key := range src {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}
