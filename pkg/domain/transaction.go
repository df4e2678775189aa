package domain

// TxKind labels a transaction history entry with the operation that produced it.
type TxKind string

// Transaction kind constants define which ledger operation produced an entry.
const (
	TxKindCreated   TxKind = "created"
	TxKindFuelAdded TxKind = "fuel-added"
	TxKindPayment   TxKind = "payment"
	TxKindReset     TxKind = "reset"
	TxKindResetAll  TxKind = "reset-all"
)
