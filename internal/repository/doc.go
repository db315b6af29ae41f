// Package repository implements the data access layer for ConectaVagas.
//
// The repository package contains all database operations using SurrealDB.
// Each repository struct handles the operations for one persisted entity:
// CompanyRepository (create, lookup by email) and JobRepository (create,
// get, filtered listing with counts, delete).
//
// # Repository Pattern
//
// All repositories follow a consistent pattern:
//
//   - Constructor function (NewXxxRepository) accepts a database connection
//   - Methods implement specific data operations
//   - SurrealQL queries are used for all database interactions
//   - Results are parsed and mapped to model structs
//   - "Not found" surfaces as nil, nil rather than an error; the service
//     layer decides what absence means
//
// # Database Connection
//
// Repositories accept a database.Database interface, allowing easy
// testing with in-memory implementations.
//
// # Query Patterns
//
//   - Parameterized queries with $variable syntax for security
//   - type::record() for safe ID handling
//   - time::now() for server-set timestamps
//   - string::contains(string::lowercase(...)) for case-insensitive
//     substring filters
//   - LIMIT $limit START $offset for pagination, with a separate
//     count() ... GROUP ALL query for totals
package repository
