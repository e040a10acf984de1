package report_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/moneydiary/backend/pkg/models"
	"github.com/shopspring/decimal"
)

func expense(amount float64, date time.Time, category *models.Category, account *uuid.UUID) models.Transaction {
	transaction := models.Transaction{
		Date:      date,
		Amount:    decimal.NewFromFloat(amount),
		Kind:      models.KindExpense,
		AccountID: account,
	}

	if category != nil {
		transaction.Category = *category
		transaction.CategoryID = &category.ID
	}

	return transaction
}

func income(amount float64, date time.Time) models.Transaction {
	return models.Transaction{
		Date:   date,
		Amount: decimal.NewFromFloat(amount),
		Kind:   models.KindIncome,
	}
}

func category(name string) *models.Category {
	return &models.Category{
		DefaultModel: models.DefaultModel{ID: uuid.New()},
		Name:         name,
	}
}
