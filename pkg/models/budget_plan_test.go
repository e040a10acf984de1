package models_test

import (
	"github.com/moneydiary/backend/pkg/models"
	"github.com/moneydiary/backend/pkg/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestBudgetPlanLimitMustBePositive() {
	category := suite.createTestCategory(models.Category{})

	plan := models.BudgetPlan{
		CategoryID: category.ID,
		Limit:      decimal.NewFromFloat(-50),
		Period:     types.PeriodMonth,
		IsActive:   true,
	}

	err := models.DB.Create(&plan).Error
	suite.Assert().ErrorIs(err, models.ErrBudgetPlanLimitNotPositive)
}

func (suite *TestSuiteStandard) TestBudgetPlanPeriodChecked() {
	category := suite.createTestCategory(models.Category{})

	plan := models.BudgetPlan{
		CategoryID: category.ID,
		Limit:      decimal.NewFromFloat(50),
		Period:     types.PeriodYesterday,
	}

	err := models.DB.Create(&plan).Error
	suite.Assert().ErrorIs(err, models.ErrBudgetPlanPeriodInvalid)
}

func (suite *TestSuiteStandard) TestBudgetPlanNeedsCategory() {
	plan := models.BudgetPlan{
		Limit:  decimal.NewFromFloat(50),
		Period: types.PeriodMonth,
	}

	err := models.DB.Create(&plan).Error
	suite.Assert().NotNil(err, "budget plan without category was accepted")
}

func (suite *TestSuiteStandard) TestCategoriesWithoutActivePlan() {
	// The five seeded defaults exist already
	categories, err := models.Categories(models.DB)
	suite.Require().Nil(err)
	suite.Require().Len(categories, 5)

	suite.createTestBudgetPlan(models.BudgetPlan{
		CategoryID: categories[0].ID,
		Period:     types.PeriodMonth,
		IsActive:   true,
	})

	// An inactive plan does not block its category
	suite.createTestBudgetPlan(models.BudgetPlan{
		CategoryID: categories[1].ID,
		Period:     types.PeriodMonth,
	})

	// A plan for another period does not block its category either
	suite.createTestBudgetPlan(models.BudgetPlan{
		CategoryID: categories[2].ID,
		Period:     types.PeriodWeek,
		IsActive:   true,
	})

	available, err := models.CategoriesWithoutActivePlan(models.DB, types.PeriodMonth)
	suite.Require().Nil(err)

	suite.Assert().Len(available, 4)
	for _, category := range available {
		suite.Assert().NotEqual(categories[0].ID, category.ID)
	}
}

func (suite *TestSuiteStandard) TestActiveBudgetPlansPreloadCategory() {
	category := suite.createTestCategory(models.Category{Name: "Subscriptions"})

	suite.createTestBudgetPlan(models.BudgetPlan{
		CategoryID: category.ID,
		Period:     types.PeriodWeek,
		IsActive:   true,
	})

	plans, err := models.ActiveBudgetPlans(models.DB, types.PeriodWeek)
	suite.Require().Nil(err)
	suite.Require().Len(plans, 1)

	suite.Assert().Equal("Subscriptions", plans[0].Category.Name)
}
