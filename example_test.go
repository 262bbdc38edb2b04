package sqlbx_test

import (
	"encoding/json"
	"fmt"

	"github.com/mitranim/sqlb"
	"github.com/mitranim/sqlbx"
)

type Person struct {
	Id   string  `json:"id"   db:"id"`
	Name string  `json:"name" db:"name"`
	Nick *string `json:"nick" db:"nick"`
	Age  int     `json:"age"  db:"age"`
}

func Example() {
	name := sqlbx.Col[string](`name`)
	nick := sqlbx.Col[*string](`nick`)
	age := sqlbx.Col[int](`age`)

	display := sqlbx.CoalesceTo(name, nick)

	cond := sqlbx.And(
		sqlbx.Gte(age, sqlbx.Arg(18)),
		sqlbx.Contains(display, `bob`),
	)

	text, args := sqlb.Reify(
		sqlb.Str(`select * from persons`),
		sqlb.Prefix{Prefix: `where`, Expr: cond},
	)

	fmt.Println(text)
	fmt.Println(args)

	// Output:
	// select * from persons where (("age" >= $1) and (coalesce("nick", "name") like $2 escape $3))
	// [18 %bob% \]
}

func ExampleCase() {
	age := sqlbx.Col[int](`age`)

	group := sqlbx.Case[string]().
		When(sqlbx.Lt(age, sqlbx.Arg(13)), sqlbx.Arg(`child`)).
		When(sqlbx.Lt(age, sqlbx.Arg(18)), sqlbx.Arg(`teen`)).
		Else(sqlbx.Arg(`adult`))

	fmt.Println(group)

	// Output:
	// case when ("age" < $1) then $2 when ("age" < $3) then $4 else $5 end
}

func ExampleQuery() {
	query := sqlbx.QueryFor(Person{})

	err := json.Unmarshal([]byte(`{
		"where": ["and", ["=", "name", ["name", "Alice"]], [">", "age", ["age", 18]]],
		"order": ["age desc"],
		"limit": 10
	}`), &query)
	if err != nil {
		panic(err)
	}

	text, args := sqlb.Reify(sqlb.Str(`select * from persons`), query)

	fmt.Println(text)
	fmt.Println(args)

	// Output:
	// select * from persons where (("name" = $1) and ("age" > $2)) order by "age" desc limit $3
	// [Alice 18 10]
}

func ExamplePaginate() {
	query := sqlb.Str(`select * from persons`)
	ords := sqlb.Ords{sqlb.OrdAsc{`name`}}

	fmt.Println(sqlbx.Paginate(query, ords, sqlbx.PageNum(3, 10)))

	// Output:
	// select *, count(*) over () as "total_count" from (select * from persons) as _ order by "name" asc limit $1 offset $2
}

func ExampleSeek() {
	seek := sqlbx.Seek{
		Ords: []sqlb.Ord{
			{Path: sqlb.Path{`created_at`}, Dir: sqlb.DirDesc},
			{Path: sqlb.Path{`id`}, Dir: sqlb.DirAsc},
		},
		Vals: []any{`2020-01-01`, `one`},
	}

	text, args := sqlb.Reify(
		sqlb.Str(`select * from persons`),
		sqlb.Prefix{Prefix: `where`, Expr: seek},
		seek.OrderBy(),
		sqlb.Str(`limit 10`),
	)

	fmt.Println(text)
	fmt.Println(args)

	// Output:
	// select * from persons where ("created_at" < $1 or ("created_at" = $1 and "id" > $2)) order by "created_at" desc, "id" asc limit 10
	// [2020-01-01 one]
}

func ExampleSchema_Validate() {
	schema := sqlbx.SchemaFor(Person{})

	fmt.Println(schema.Validate(map[string]any{`id`: `one`, `name`: `Alice`, `age`: 30}))
	fmt.Println(schema.Validate(map[string]any{`id`: `one`, `age`: 30}))
	fmt.Println(schema.Validate(map[string]any{`id`: `one`, `name`: `Alice`, `age`: 30, `role`: `admin`}))

	// Output:
	// <nil>
	// [sqlbx] MissingField while validating input: missing required field "name" in type sqlbx_test.Person
	// [sqlbx] UnknownField while validating input: unknown field "role" in type sqlbx_test.Person
}
