// Package bankbook provides an embeddable ledger for managing monetary
// accounts: a registry of accounts, immutable transaction records, atomic
// multi-account transfers, and full-state snapshot persistence.
//
// The core functionalities include:
//   - Account Management: Creating accounts, depositing and withdrawing funds,
//     each mutation recorded as an immutable Transaction appended to the
//     account's chronological log.
//   - Transfer Orchestration: Moving funds between two accounts as a
//     two-phase operation, so a failure on either leg leaves both accounts
//     untouched.
//   - Aggregate Queries: Total balance over active accounts, per-ledger
//     statistics, and recent-activity statements.
//   - Data Persistence: Encoding and decoding the full ledger state to and
//     from a single human-readable JSON snapshot document, with write-through
//     saves after every mutating operation.
//
// This package serves as the foundational logic for the `bkb` command-line
// tool, which only ever calls the public operations defined here.
package bankbook
