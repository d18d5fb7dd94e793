// Package model defines database models for persistence layer.
package model

// All returns every model managed by the migrator, parents first.
func All() []interface{} {
	return []interface{}{
		&AccountModel{},
		&CategoryModel{},
		&TransactionModel{},
	}
}
