// Package sqlerr specifically handles database driver errors.
//
// It parses SQLSTATE codes from the database driver and converts them into
// user-friendly application errors (e.g. a unique violation becomes a
// "Bad Request" with "A User with this Email already exists").
package sqlerr
