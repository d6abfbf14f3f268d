package repository

import "context"

// Transactor runs fn inside a database transaction carried by the context.
// Repositories called with that context join the transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
