// Package random supplies the seeded random source consumed by
// network.Network: normal fills, Poisson draws and in-place shuffles.
//
// Goals:
//   - Determinism: same seed ⇒ identical streams across runs.
//   - No hidden globals: every Rand owns its *rand.Rand.
//   - Independent substreams via Derive for replicate simulations.
//
// Concurrency:
//   - A Rand is NOT goroutine-safe. Derive one stream per worker instead.
package random
