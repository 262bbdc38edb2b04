package mysql

import (
	"github.com/google/uuid"
	"github.com/mitranim/sqlb"
	"github.com/mitranim/sqlbx"
)

/*
Encodes "uuid_to_bin(?)", or "uuid_to_bin(?, 1)" when swapping, which moves
the timestamp parts of version 1 UUIDs to the front for index locality. The
result is suitable for "binary(16)" columns. See `UuidBin` for the Go-side
equivalent.
*/
func UuidToBin(id uuid.UUID, swap bool) sqlbx.Expr[[]byte] {
	if swap {
		return sqlbx.Fn[[]byte](`uuid_to_bin`, id, lit(`1`))
	}
	return sqlbx.Fn[[]byte](`uuid_to_bin`, id)
}

// Encodes "bin_to_uuid(A)" or "bin_to_uuid(A, 1)". Inverse of `UuidToBin`.
func BinToUuid(val sqlb.Expr, swap bool) sqlbx.Expr[uuid.UUID] {
	if swap {
		return sqlbx.Fn[uuid.UUID](`bin_to_uuid`, val, lit(`1`))
	}
	return sqlbx.Fn[uuid.UUID](`bin_to_uuid`, val)
}

/*
Returns the binary form of the UUID, matching the output of MySQL
"uuid_to_bin" with the same swap flag. Can be passed directly as an argument
for "binary(16)" columns.
*/
func UuidBin(id uuid.UUID, swap bool) []byte {
	out := make([]byte, 16)
	if !swap {
		copy(out, id[:])
		return out
	}
	copy(out[0:2], id[6:8])
	copy(out[2:4], id[4:6])
	copy(out[4:8], id[0:4])
	copy(out[8:], id[8:])
	return out
}

// Inverse of `UuidBin`. The input must be exactly 16 bytes long.
func BinUuid(src []byte, swap bool) (out uuid.UUID, _ error) {
	if len(src) != len(out) {
		return out, sqlbx.ErrInvalidInput.During(`decoding binary UUID`).Because(
			errf(`expected 16 bytes, found %v`, len(src)),
		)
	}
	if !swap {
		copy(out[:], src)
		return out, nil
	}
	copy(out[6:8], src[0:2])
	copy(out[4:6], src[2:4])
	copy(out[0:4], src[4:8])
	copy(out[8:], src[8:])
	return out, nil
}
