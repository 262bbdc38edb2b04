package sqlbx

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
)

/*
Wraps an arbitrary value, encoding it as JSON when used as a query argument and
decoding it from JSON when scanning query results. SQL null is scanned as the
zero value, which makes `Json` suitable for aggregates such as "json_agg" that
return null for empty inputs.

Dialect packages re-export this type for use with their JSON functions.
*/
type Json[A any] struct{ Val A }

var (
	_ = driver.Valuer(Json[any]{})
	_ = sql.Scanner((*Json[any])(nil))
)

// Implement `driver.Valuer`. The output is text, which drivers pass as-is.
func (self Json[A]) Value() (driver.Value, error) {
	out, err := json.Marshal(self.Val)
	if err != nil {
		return nil, ErrInvalidInput.During(`encoding JSON`).Because(err)
	}
	return string(out), nil
}

// Implement `sql.Scanner`.
func (self *Json[A]) Scan(src any) error {
	var val A

	switch src := src.(type) {
	case nil:
	case string:
		err := unmarshalJson([]byte(src), &val)
		if err != nil {
			return err
		}
	case []byte:
		err := unmarshalJson(src, &val)
		if err != nil {
			return err
		}
	default:
		return ErrInvalidInput.During(`scanning JSON`).Because(
			errf(`unsupported source type %T`, src),
		)
	}

	self.Val = val
	return nil
}

// Implement `json.Marshaler`, encoding the inner value.
func (self Json[A]) MarshalJSON() ([]byte, error) { return json.Marshal(self.Val) }

// Implement `json.Unmarshaler`, decoding into the inner value.
func (self *Json[A]) UnmarshalJSON(src []byte) error {
	return json.Unmarshal(src, &self.Val)
}

func unmarshalJson(src []byte, out any) error {
	err := json.Unmarshal(src, out)
	if err != nil {
		return ErrInvalidInput.During(`decoding JSON`).Because(err)
	}
	return nil
}
