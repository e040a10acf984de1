package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Kind determines whether a transaction adds to or subtracts from a balance.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Transaction represents a single income or expense entry.
//
// The amount is always positive, the direction is carried by Kind.
type Transaction struct {
	DefaultModel
	Date       time.Time
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Kind       Kind            `gorm:"check:transaction_kind_valid,kind IN ('income','expense')"`
	Note       string
	CategoryID *uuid.UUID
	Category   Category
	AccountID  *uuid.UUID
	Account    Account
}

var (
	ErrTransactionAmountNotPositive = errors.New("transaction amounts must be larger than zero")
	ErrTransactionKindInvalid       = errors.New("transactions must be either income or expense")
)

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) error {
	err := t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return nil
}

// BeforeSave
//   - sets the timezone for the Date to UTC
//   - normalizes empty references to nil
//   - trims whitespace from string fields
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Note = strings.TrimSpace(t.Note)

	// Ensure that the references are nil and not pointers to a nil UUID
	// when they are not set
	if t.CategoryID != nil && *t.CategoryID == uuid.Nil {
		t.CategoryID = nil
	}

	if t.AccountID != nil && *t.AccountID == uuid.Nil {
		t.AccountID = nil
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}

func (t *Transaction) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(t.Amount) {
		return ErrTransactionAmountNotPositive
	}

	return nil
}

// Transactions returns all transactions, newest first.
func Transactions(db *gorm.DB) ([]Transaction, error) {
	var transactions []Transaction

	err := db.
		Preload("Category").
		Preload("Account").
		Order("datetime(date) DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// SearchTransactions returns all transactions whose note matches the glob
// pattern, newest first. Matching is case insensitive.
func SearchTransactions(db *gorm.DB, pattern string) ([]Transaction, error) {
	transactions, err := Transactions(db)
	if err != nil {
		return nil, err
	}

	pattern = strings.ToLower(pattern)

	var matches []Transaction
	for _, transaction := range transactions {
		if glob.Glob(pattern, strings.ToLower(transaction.Note)) {
			matches = append(matches, transaction)
		}
	}

	return matches, nil
}
