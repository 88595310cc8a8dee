package transactor

import (
	"context"
)

// Transactor runs a unit of work within a storage transaction. The callback
// receives a context carrying the open transaction, repositories built on top
// of a WithinTransactionExecutor pick it up transparently.
type Transactor interface {
	WithinTransaction(context.Context, func(context.Context) error) error
}
