package domain

import (
	"testing"
	"time"
)

func testBudget() *Budget {
	return &Budget{
		Name:      "Monthly groceries",
		Amount:    NewMoneyFromInt(7500000),
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestBudget_IsActive_InclusiveBounds(t *testing.T) {
	b := testBudget()

	cases := []struct {
		day      time.Time
		expected bool
	}{
		{time.Date(2026, 2, 28, 12, 0, 0, 0, time.UTC), false},
		{time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), true},
		{time.Date(2026, 3, 15, 23, 59, 0, 0, time.UTC), true},
		{time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC), true},
		{time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), false},
	}

	for _, c := range cases {
		if got := b.IsActive(c.day); got != c.expected {
			t.Errorf("IsActive(%s): expected %v, got %v", c.day.Format("2006-01-02"), c.expected, got)
		}
	}
}

func TestBudget_DaysRemaining(t *testing.T) {
	b := testBudget()

	if got := b.DaysRemaining(time.Date(2026, 3, 29, 8, 0, 0, 0, time.UTC)); got != 2 {
		t.Errorf("Expected 2 days remaining, got %d", got)
	}
	if got := b.DaysRemaining(time.Date(2026, 3, 31, 8, 0, 0, 0, time.UTC)); got != 0 {
		t.Errorf("Expected 0 days remaining on the last day, got %d", got)
	}
	if got := b.DaysRemaining(time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC)); got != 0 {
		t.Errorf("Expected 0 days once the window has passed, got %d", got)
	}
}

func TestBudget_TotalDays(t *testing.T) {
	b := testBudget()
	if got := b.TotalDays(); got != 31 {
		t.Errorf("Expected 31 days in March, got %d", got)
	}
}

func TestBudget_ContainsDate(t *testing.T) {
	b := testBudget()
	if !b.ContainsDate(time.Date(2026, 3, 31, 18, 30, 0, 0, time.UTC)) {
		t.Error("Expected end date to be inside the window")
	}
	if b.ContainsDate(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("Expected the day after the end date to be outside")
	}
}

func TestBudget_AppliesToCategory(t *testing.T) {
	b := testBudget()
	if !b.AppliesToCategory(7) {
		t.Error("Expected an unscoped budget to apply to any category")
	}

	categoryID := int32(3)
	b.CategoryID = &categoryID
	if !b.AppliesToCategory(3) {
		t.Error("Expected scoped budget to apply to its own category")
	}
	if b.AppliesToCategory(7) {
		t.Error("Expected scoped budget to ignore other categories")
	}
}
