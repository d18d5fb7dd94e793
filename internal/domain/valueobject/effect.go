// Package valueobject defines immutable value types used by the domain layer.
package valueobject

import (
	"sort"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// Effect is a signed balance delta applied to a single account.
type Effect struct {
	AccountID int64
	Delta     int64
}

// EffectSet is the ordered list of effects implied by a transaction state.
type EffectSet []Effect

// EffectsOf maps a transaction's balance-relevant fields to its effect set.
// Unknown types yield an empty set.
func EffectsOf(transactionType entity.TransactionType, amount, accountID int64, destinationAccountID *int64) EffectSet {
	switch transactionType {
	case entity.TransactionTypeExpense:
		return EffectSet{{AccountID: accountID, Delta: -amount}}
	case entity.TransactionTypeIncome:
		return EffectSet{{AccountID: accountID, Delta: amount}}
	case entity.TransactionTypeTransfer:
		effects := EffectSet{{AccountID: accountID, Delta: -amount}}
		if destinationAccountID != nil {
			effects = append(effects, Effect{AccountID: *destinationAccountID, Delta: amount})
		}
		return effects
	}
	return nil
}

// TransactionEffects returns the effect set of the transaction's current state.
func TransactionEffects(txn *entity.Transaction) EffectSet {
	if txn == nil {
		return nil
	}
	return EffectsOf(txn.Type, txn.Amount, txn.AccountID, txn.DestinationAccountID)
}

// ByAccount sums the effects per account id.
func (s EffectSet) ByAccount() map[int64]int64 {
	totals := make(map[int64]int64, len(s))
	for _, e := range s {
		totals[e.AccountID] += e.Delta
	}
	return totals
}

// AccountIDs returns the distinct accounts touched by the set in ascending order.
func (s EffectSet) AccountIDs() []int64 {
	totals := s.ByAccount()
	ids := make([]int64, 0, len(totals))
	for id := range totals {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Diff returns, per account touched by either set, the delta next - prev that
// moves balances from reflecting prev to reflecting next. Accounts whose net
// delta is zero are omitted and the result is ordered by account id.
//
// Create is Diff(nil, effects) and delete is Diff(effects, nil).
func Diff(prev, next EffectSet) EffectSet {
	totals := next.ByAccount()
	for _, e := range prev {
		totals[e.AccountID] -= e.Delta
	}

	ids := make([]int64, 0, len(totals))
	for id, delta := range totals {
		if delta != 0 {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	diff := make(EffectSet, 0, len(ids))
	for _, id := range ids {
		diff = append(diff, Effect{AccountID: id, Delta: totals[id]})
	}
	return diff
}

// Touched returns the union of accounts referenced by the given sets in
// ascending order.
func Touched(sets ...EffectSet) []int64 {
	var all EffectSet
	for _, s := range sets {
		all = append(all, s...)
	}
	return all.AccountIDs()
}
