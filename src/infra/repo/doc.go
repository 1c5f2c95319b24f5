// Package repo contains the storage adapters implementing the ports
// defined in src/core/ports.
//
// Two adapters exist:
//   - PostgresRepository: pgx-backed, for deployments
//   - MemoryRepository: mutex-guarded slices, for local development and tests
//
// Both satisfy ports.GameRepository, so the core never knows which one
// it is talking to.
package repo
