package sql

import "database/sql"

// TxOf exposes the transaction a repository is bound to, nil outside WithinTransaction.
func TxOf(repo *ProductRepository) *sql.Tx {
	return repo.txn
}
