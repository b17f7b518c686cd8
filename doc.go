// Package tranche simulates the securitization of a pool of amortizing
// loans. It generates a reproducible loan pool, computes each loan's
// month-by-month repayment schedule, aggregates the schedules into a
// single portfolio cash-flow series, slices that series across three
// ranked tranches (Senior, Mezzanine, Equity), and solves the internal
// rate of return of each tranche.
//
// The core functionalities include:
//   - Loan Generation: drawing a fixed-size pool of loans with uniformly
//     distributed principal and rate from an explicitly seeded random
//     source, so that a given seed always produces the same pool.
//   - Amortization: level-payment schedules with a final-month
//     adjustment guaranteeing the balance settles at exactly zero.
//   - Pool Aggregation: element-wise reduction of all schedules into a
//     portfolio cash-flow series with principal and cash totals.
//   - Tranching: a pro-rata split by fixed allocation fractions, and an
//     opt-in sequential waterfall that pays claims in seniority order
//     with shortfalls cascading to subordinate tranches.
//   - IRR: a Newton-Raphson solver with a bisection fallback over a
//     bounded rate domain, reporting ErrNoSolution instead of a
//     misleading zero rate when no real root exists.
//
// This package serves as the foundational logic for the `tsim`
// command-line tool; all computation is pure and in-memory, with no
// file, network, or database access.
package tranche
