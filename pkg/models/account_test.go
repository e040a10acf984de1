package models_test

import (
	"github.com/google/uuid"
	"github.com/moneydiary/backend/pkg/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestAccountDefaultUnique() {
	first := suite.createTestAccount(models.Account{Name: "Checking", IsDefault: true})
	second := suite.createTestAccount(models.Account{Name: "Cash", IsDefault: true})

	// Load into fresh structs, reusing a dest would add its old primary
	// key to the query conditions
	var firstReloaded, secondReloaded models.Account
	suite.Require().Nil(models.DB.First(&firstReloaded, first.ID).Error)
	suite.Require().Nil(models.DB.First(&secondReloaded, second.ID).Error)

	suite.Assert().False(firstReloaded.IsDefault, "first account is still the default")
	suite.Assert().True(secondReloaded.IsDefault)
}

func (suite *TestSuiteStandard) TestAccountDeleteCascades() {
	account := suite.createTestAccount(models.Account{Name: "Checking"})
	other := suite.createTestAccount(models.Account{Name: "Cash"})

	for i := 0; i < 3; i++ {
		suite.createTestTransaction(models.Transaction{AccountID: &account.ID})
	}
	kept := suite.createTestTransaction(models.Transaction{AccountID: &other.ID})

	suite.Require().Nil(models.DB.Delete(&account).Error)

	// The account itself is gone
	var accounts []models.Account
	suite.Require().Nil(models.DB.Find(&accounts).Error)
	suite.Require().Len(accounts, 1)
	suite.Assert().Equal(other.ID, accounts[0].ID)

	var transactions []models.Transaction
	suite.Require().Nil(models.DB.Find(&transactions).Error)

	suite.Assert().Len(transactions, 1, "transactions of the deleted account survived")
	suite.Assert().Equal(kept.ID, transactions[0].ID)
}

func (suite *TestSuiteStandard) TestAccountBalance() {
	account := suite.createTestAccount(models.Account{
		Name:           "Checking",
		InitialBalance: decimal.NewFromFloat(100),
	})

	suite.createTestTransaction(models.Transaction{
		AccountID: &account.ID,
		Kind:      models.KindIncome,
		Amount:    decimal.NewFromFloat(2000),
	})
	suite.createTestTransaction(models.Transaction{
		AccountID: &account.ID,
		Kind:      models.KindExpense,
		Amount:    decimal.NewFromFloat(1500),
	})

	// Transactions of other accounts must not contribute
	suite.createTestTransaction(models.Transaction{
		Kind:   models.KindExpense,
		Amount: decimal.NewFromFloat(999),
	})

	balance, income, expenses, err := account.Balance(models.DB)
	suite.Require().Nil(err)

	suite.Assert().True(balance.Equal(decimal.NewFromFloat(600)), "balance is %s", balance)
	suite.Assert().True(income.Equal(decimal.NewFromFloat(2000)), "income is %s", income)
	suite.Assert().True(expenses.Equal(decimal.NewFromFloat(1500)), "expenses are %s", expenses)
}

func (suite *TestSuiteStandard) TestAccountBalanceEmpty() {
	account := suite.createTestAccount(models.Account{Name: "Checking"})

	balance, income, expenses, err := account.Balance(models.DB)
	suite.Require().Nil(err)

	suite.Assert().True(balance.IsZero())
	suite.Assert().True(income.IsZero())
	suite.Assert().True(expenses.IsZero())
}

func (suite *TestSuiteStandard) TestSetDefault() {
	accounts := []models.Account{
		{DefaultModel: models.DefaultModel{ID: uuid.New()}, Name: "A", IsDefault: true},
		{DefaultModel: models.DefaultModel{ID: uuid.New()}, Name: "B"},
		{DefaultModel: models.DefaultModel{ID: uuid.New()}, Name: "C"},
	}

	updated := models.SetDefault(accounts, accounts[2].ID)

	suite.Assert().False(updated[0].IsDefault)
	suite.Assert().False(updated[1].IsDefault)
	suite.Assert().True(updated[2].IsDefault)

	// The input is not modified
	suite.Assert().True(accounts[0].IsDefault)
}
