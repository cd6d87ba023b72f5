package accounting

import (
	"fmt"
	"sort"

	"github.com/SscSPs/erp_backend/internal/apperrors"
	"github.com/SscSPs/erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits kept by every NUMERIC(19,4) amount column.
const MoneyScale = 4

// ExceedsMoneyScale reports whether d has more significant fractional digits
// than an amount column stores. Trailing zeros do not count.
func ExceedsMoneyScale(d decimal.Decimal) bool {
	return !d.Equal(d.Truncate(MoneyScale))
}

// ValidateMoneyScale rejects the first amount that would be rounded on storage.
// Totals and net changes are computed from the caller's values, so they only
// match the stored columns when no rounding happens.
func ValidateMoneyScale(field string, amounts ...decimal.Decimal) error {
	for _, d := range amounts {
		if ExceedsMoneyScale(d) {
			return fmt.Errorf("%w: %s %s has more than %d decimal places", apperrors.ErrValidation, field, d, MoneyScale)
		}
	}
	return nil
}

// ValidateLineAmounts checks that every line carries non-negative debit and credit
// amounts within the stored scale.
func ValidateLineAmounts(lines []domain.JournalEntryLine) error {
	for i, line := range lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return fmt.Errorf("%w: line %d has a negative amount (debit %s, credit %s)", apperrors.ErrValidation, i+1, line.Debit, line.Credit)
		}
		if err := ValidateMoneyScale(fmt.Sprintf("line %d amount", i+1), line.Debit, line.Credit); err != nil {
			return err
		}
	}
	return nil
}

// SumDebitsCredits totals both sides of a set of journal lines.
func SumDebitsCredits(lines []domain.JournalEntryLine) (debits, credits decimal.Decimal) {
	debits, credits = decimal.Zero, decimal.Zero
	for _, line := range lines {
		debits = debits.Add(line.Debit)
		credits = credits.Add(line.Credit)
	}
	return debits, credits
}

// ValidateJournalBalance checks that the sum of debits equals the sum of credits.
func ValidateJournalBalance(lines []domain.JournalEntryLine) error {
	debits, credits := SumDebitsCredits(lines)
	if !debits.Equal(credits) {
		return fmt.Errorf("%w: debits sum is %s and credits sum is %s", apperrors.ErrUnbalancedEntry, debits, credits)
	}
	return nil
}

// NetBalanceChanges aggregates (debit - credit) per account.
// Accounts whose lines cancel out still appear with a zero change.
func NetBalanceChanges(lines []domain.JournalEntryLine) map[string]decimal.Decimal {
	changes := make(map[string]decimal.Decimal, len(lines))
	for _, line := range lines {
		current, ok := changes[line.AccountID]
		if !ok {
			current = decimal.Zero
		}
		changes[line.AccountID] = current.Add(line.Delta())
	}
	return changes
}

// NetStockChanges aggregates received quantities per product.
func NetStockChanges(items []domain.PurchaseOrderItem) map[string]int64 {
	changes := make(map[string]int64, len(items))
	for _, item := range items {
		changes[item.ProductID] += item.Quantity
	}
	return changes
}

// SortedKeys returns map keys in ascending order. Row updates issued in this
// order keep concurrent postings from deadlocking on each other's locks.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// PurchaseOrderTotal computes sum(quantity * unit price) exactly.
func PurchaseOrderTotal(items []domain.PurchaseOrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// ItemSubtotal computes quantity * unit price for a POS line.
func ItemSubtotal(quantity int64, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(quantity))
}
