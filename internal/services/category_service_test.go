package services

import (
	"testing"

	"billtrack/internal/models"
	"billtrack/internal/testutil"
)

func TestCreateCategory(t *testing.T) {
	t.Run("creates_with_explicit_color", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		category, err := svc.CreateCategory(user.ID, "Groceries", "#50e3c2")
		testutil.AssertNoError(t, err)
		if category.Color != "#50e3c2" {
			t.Errorf("expected color #50e3c2, got %q", category.Color)
		}
	})

	t.Run("defaults_color_when_empty", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		category, err := svc.CreateCategory(user.ID, "Groceries", "")
		testutil.AssertNoError(t, err)
		if category.Color != models.DefaultCategoryColor {
			t.Errorf("expected default color, got %q", category.Color)
		}
	})

	t.Run("rejects_empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(user.ID, "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("rejects_duplicate_name_case_insensitive", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(user.ID, "Utilities", "")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateCategory(user.ID, "utilities", "")
		testutil.AssertAppError(t, err, "DUPLICATE_CATEGORY")
	})

	t.Run("same_name_allowed_across_users", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(user1.ID, "Utilities", "")
		testutil.AssertNoError(t, err)
		_, err = svc.CreateCategory(user2.ID, "Utilities", "")
		testutil.AssertNoError(t, err)
	})
}

func TestGetUserCategories(t *testing.T) {
	t.Run("ordered_by_name_and_scoped_to_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)

		for _, name := range []string{"Rent", "Insurance", "Subscriptions"} {
			if _, err := svc.CreateCategory(user.ID, name, ""); err != nil {
				t.Fatalf("failed to create category %q: %v", name, err)
			}
		}
		if _, err := svc.CreateCategory(other.ID, "Rent", ""); err != nil {
			t.Fatalf("failed to create category for other user: %v", err)
		}

		categories, err := svc.GetUserCategories(user.ID)
		testutil.AssertNoError(t, err)

		if len(categories) != 3 {
			t.Fatalf("expected 3 categories, got %d", len(categories))
		}
		want := []string{"Insurance", "Rent", "Subscriptions"}
		for i, name := range want {
			if categories[i].Name != name {
				t.Errorf("expected %q at index %d, got %q", name, i, categories[i].Name)
			}
		}
	})
}

func TestDeleteCategory(t *testing.T) {
	t.Run("detaches_bills_before_deleting", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID)

		bill := testutil.CreateTestBill(t, db, user.ID, models.RecurrenceFixedDate, 15, nil)
		bill.CategoryID = &category.ID
		testutil.AssertNoError(t, db.Save(bill).Error)

		testutil.AssertNoError(t, svc.DeleteCategory(user.ID, category.ID))

		var reloaded models.Bill
		testutil.AssertNoError(t, db.First(&reloaded, "id = ?", bill.ID).Error)
		if reloaded.CategoryID != nil {
			t.Errorf("expected bill detached from category, got %v", *reloaded.CategoryID)
		}
	})

	t.Run("unknown_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		err := svc.DeleteCategory(user.ID, "00000000-0000-0000-0000-000000000000")
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("rejects_other_users_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, other.ID)

		err := svc.DeleteCategory(user.ID, category.ID)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestCreateDefaults(t *testing.T) {
	t.Run("seeds_starter_categories", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.AssertNoError(t, svc.CreateDefaults(user.ID))

		categories, err := svc.GetUserCategories(user.ID)
		testutil.AssertNoError(t, err)
		if len(categories) != len(defaultCategories) {
			t.Fatalf("expected %d default categories, got %d", len(defaultCategories), len(categories))
		}
		for _, category := range categories {
			if category.Color == "" {
				t.Errorf("expected color on default category %q", category.Name)
			}
		}
	})
}
