/*
This package contains lowish-level APIs for making database queries to our Postgres database. It streamlines the process of mapping query results to Go types, while allowing you to write arbitrary SQL queries.

The primary functions are Query and QueryOne. Arguments are provided using placeholders like $1, $2, etc. All arguments will be safely escaped and mapped from their Go type to the correct Postgres type. (This is a direct proxy to pgx.)

When querying individual fields, you can simply select the field like so:

	ids, err := db.QueryScalar[int](ctx, conn, `SELECT id FROM show`)

To query multiple columns at once, use a struct type with `db:"column_name"` tags; result columns are matched to struct fields by name:

	type Person struct {
		ID       int    `db:"id"`
		FullName string `db:"full_name"`
	}
	people, err := db.Query[Person](ctx, conn, `SELECT id, full_name FROM person`)

Use QueryBuilder to assemble queries with a dynamic set of conditions without
having to manually track argument numbering.
*/
package db
