package models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/moneydiary/backend/pkg/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetPlan is a recurring spending cap for a single category.
type BudgetPlan struct {
	DefaultModel
	CategoryID uuid.UUID
	Category   Category
	Limit      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Period     types.Period    `gorm:"check:budget_plan_period_valid,period IN ('week','month','year')"`
	IsActive   bool
}

var (
	ErrBudgetPlanLimitNotPositive = errors.New("budget plan limits must be larger than zero")
	ErrBudgetPlanPeriodInvalid    = errors.New("budget plans must recur weekly, monthly or yearly")
)

func (b *BudgetPlan) BeforeCreate(tx *gorm.DB) error {
	_ = b.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*BudgetPlan)
	return b.checkIntegrity(tx, *toSave)
}

func (b *BudgetPlan) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(BudgetPlan)

	if tx.Statement.Changed("CategoryID") {
		err := b.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (b *BudgetPlan) checkIntegrity(tx *gorm.DB, toSave BudgetPlan) error {
	return tx.First(&Category{}, toSave.CategoryID).Error
}

func (b *BudgetPlan) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(b.Limit) {
		return ErrBudgetPlanLimitNotPositive
	}

	return nil
}

// ActiveBudgetPlans returns all active plans for the period.
func ActiveBudgetPlans(db *gorm.DB, period types.Period) ([]BudgetPlan, error) {
	var plans []BudgetPlan

	err := db.
		Preload("Category").
		Where("period = ? AND is_active = ?", period, true).
		Find(&plans).Error
	if err != nil {
		return nil, err
	}

	return plans, nil
}

// CategoriesWithoutActivePlan returns the categories that do not have an
// active budget plan for the period yet. The creation form only offers
// these, which keeps plans unique per category and period.
func CategoriesWithoutActivePlan(db *gorm.DB, period types.Period) ([]Category, error) {
	categories, err := Categories(db)
	if err != nil {
		return nil, err
	}

	plans, err := ActiveBudgetPlans(db, period)
	if err != nil {
		return nil, err
	}

	planned := make(map[uuid.UUID]bool, len(plans))
	for _, plan := range plans {
		planned[plan.CategoryID] = true
	}

	var available []Category
	for _, category := range categories {
		if !planned[category.ID] {
			available = append(available, category)
		}
	}

	return available, nil
}
