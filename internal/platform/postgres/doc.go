// Package postgres provides PostgreSQL implementations of the store
// interfaces. All implementations accept a store.DBTX so they can run
// against either a pooled connection or a transaction, and map database
// errors onto the store package's sentinel errors via MapError.
package postgres
