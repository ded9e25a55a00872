// Package postgres implements the store contracts on top of a PostgreSQL
// database accessed through a bounded pgx connection pool.
package postgres
