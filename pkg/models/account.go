package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Account represents a named pool of money, e.g. a bank account or a wallet.
type Account struct {
	DefaultModel
	Name           string
	Icon           string
	Color          string
	InitialBalance decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	IsDefault      bool
}

// BeforeSave trims whitespace from all strings
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Icon = strings.TrimSpace(a.Icon)
	a.Color = strings.TrimSpace(a.Color)

	return nil
}

// BeforeDelete removes all transactions of the account. Transactions of
// other accounts are not touched.
//
// The transactions must go before the account: with foreign keys enabled,
// sqlite rejects deleting an account that still has transactions.
func (a *Account) BeforeDelete(tx *gorm.DB) error {
	return tx.Where("account_id = ?", a.ID).Delete(&Transaction{}).Error
}

// Transactions returns all transactions for this account, newest first.
func (a Account) Transactions(db *gorm.DB) ([]Transaction, error) {
	var transactions []Transaction

	err := db.
		Preload("Category").
		Where("account_id = ?", a.ID).
		Order("datetime(date) DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// Balance calculates the current balance of the account together with the
// income and expense totals it is derived from.
func (a Account) Balance(db *gorm.DB) (balance, income, expenses decimal.Decimal, err error) {
	transactions, err := a.Transactions(db)
	if err != nil {
		return decimal.Zero, decimal.Zero, decimal.Zero, err
	}

	for _, t := range transactions {
		if t.Kind == KindIncome {
			income = income.Add(t.Amount)
		} else {
			expenses = expenses.Add(t.Amount)
		}
	}

	balance = a.InitialBalance.Add(income).Sub(expenses)
	return balance, income, expenses, nil
}

// SetDefault returns the accounts with the default flag set on the target
// account and cleared everywhere else, so that at most one account is the
// default at any time.
func SetDefault(accounts []Account, target uuid.UUID) []Account {
	updated := make([]Account, len(accounts))
	for i, account := range accounts {
		account.IsDefault = account.ID == target
		updated[i] = account
	}

	return updated
}

// Accounts returns all accounts, oldest first.
func Accounts(db *gorm.DB) ([]Account, error) {
	var accounts []Account

	err := db.Order("datetime(created_at) ASC").Find(&accounts).Error
	if err != nil {
		return nil, err
	}

	return accounts, nil
}

// SaveAccount creates or updates the account. When the account is flagged
// as the default, the flag is cleared on all other accounts in the same
// transaction.
func SaveAccount(db *gorm.DB, account *Account) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Save(account).Error
		if err != nil {
			return err
		}

		if !account.IsDefault {
			return nil
		}

		return tx.Model(&Account{}).
			Where("id != ? AND is_default = ?", account.ID, true).
			Update("is_default", false).Error
	})
}
