// Package clf implements a small personal ledger: monetary transactions
// (debits, credits and transfers) recorded against user defined accounts and
// kept in two plain text files under a storage root.
//
// The core pieces are:
//   - Account Directory: the "accounts" file, one "ACCOUNT <id>: <name>" line
//     per definition, loaded into an ordered Directory.
//   - Transaction Log: the "transactions" file, an append-only sequence of
//     tab separated records "YYYYMMDDHHmm<TAB>id<TAB>amount<TAB>description".
//   - Ledger Operations: Debit, Credit, Transfer and CreateAccount, which only
//     ever append to the stores.
//   - Query Engine: Balance, Summarize, Query, Recent and During, which read the
//     whole log again on every call. Nothing is cached.
//
// The Transaction Log is the single source of truth: a balance is the sum of
// the amounts recorded on an account and is never stored.
//
// There is no locking: a Ledger is meant for one user and one process at a
// time. A Transfer is two independent appends and can be left half applied
// if the second one fails.
//
// This package is the foundation of the `clf` command-line tool.
package clf
