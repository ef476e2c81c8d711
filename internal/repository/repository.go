// Package repository handles all interactions with the database.
//
// It contains the SQL and the pgx plumbing to fetch, persist, update and
// delete records, abstracting SQL away from the service layer.
package repository
