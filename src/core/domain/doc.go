// Package domain contains the core domain model for the application.
//
// This package defines:
//   - Entities: Users, Prompts, Jokes, Votes, Comments
//   - Value Objects: VoteWeights, UserScore, the status/type enumerations
//   - Domain Errors: business rule violation errors
//
// Rules for this package:
//   - No external dependencies except the standard library
//   - No infrastructure concerns (database, HTTP, etc.)
//   - Entities should validate their own invariants
package domain
