package views

import (
	"testing"
	"time"

	"github.com/forkfeed/forkfeed/internal/models"
	"github.com/forkfeed/forkfeed/internal/store"
)

func recipe(id, title, authorID string) models.Recipe {
	return models.Recipe{ID: id, Title: title, AuthorID: authorID, CreatedAt: time.Now()}
}

func TestAllRecipesFavoriteFlag(t *testing.T) {
	st := store.New()
	st.ReplaceRecipes([]models.Recipe{recipe("r1", "Soup", "u1"), recipe("r2", "Pie", "u2")})
	st.ReplaceFavorites([]string{"r2"})

	v := New(st, "u1")
	all := v.AllRecipes()
	if len(all) != 2 {
		t.Fatalf("len = %d, want 2", len(all))
	}
	if all[0].IsFavorite || !all[1].IsFavorite {
		t.Errorf("favorite flags = %v, %v; want false, true", all[0].IsFavorite, all[1].IsFavorite)
	}

	favs := v.FavoriteRecipes()
	if len(favs) != 1 || favs[0].ID != "r2" {
		t.Errorf("FavoriteRecipes = %v, want [r2]", favs)
	}
}

func TestCustomRecipes(t *testing.T) {
	st := store.New()
	st.ReplaceRecipes([]models.Recipe{
		recipe("r1", "Mine", "u1"),
		recipe("r2", "Theirs", "u2"),
		recipe("r3", "Also mine", "u1"),
	})

	custom := New(st, "u1").CustomRecipes()
	if len(custom) != 2 || custom[0].ID != "r1" || custom[1].ID != "r3" {
		t.Errorf("CustomRecipes = %v, want [r1 r3]", custom)
	}

	// No session means no custom recipes
	if got := New(st, "").CustomRecipes(); len(got) != 0 {
		t.Errorf("CustomRecipes without session = %v, want empty", got)
	}
}

func TestRecentRecipesDropsMissingAndKeepsOrder(t *testing.T) {
	st := store.New()
	st.ReplaceRecipes([]models.Recipe{recipe("r1", "Soup", "u1"), recipe("r3", "Stew", "u1")})
	now := time.Now()
	st.ReplaceRecents([]models.RecentlyViewed{
		{UserID: "u1", RecipeID: "r3", ViewedAt: now},
		{UserID: "u1", RecipeID: "r2", ViewedAt: now.Add(-time.Minute)}, // deleted recipe
		{UserID: "u1", RecipeID: "r1", ViewedAt: now.Add(-time.Hour)},
	})

	recents := New(st, "u1").RecentRecipes()
	if len(recents) != 2 || recents[0].ID != "r3" || recents[1].ID != "r1" {
		t.Errorf("RecentRecipes = %v, want [r3 r1]", recents)
	}
}

func TestGroupedShoppingList(t *testing.T) {
	st := store.New()
	st.ReplaceShopping([]models.ShoppingListItem{
		{ID: "i1", Name: "Salt", RecipeName: "Soup"},
		{ID: "i2", Name: "Pepper", RecipeName: "Soup"},
		{ID: "i3", Name: "Gum"},
	})

	groups := New(st, "u1").GroupedShoppingList()
	if len(groups) != 2 {
		t.Fatalf("len(groups) = %d, want 2", len(groups))
	}
	if groups[0].Name != "Soup" || len(groups[0].Items) != 2 {
		t.Errorf("group 0 = %s with %d items, want Soup with 2", groups[0].Name, len(groups[0].Items))
	}
	if groups[0].Items[0].Name != "Salt" || groups[0].Items[1].Name != "Pepper" {
		t.Errorf("Soup items = %v, want [Salt Pepper]", groups[0].Items)
	}
	if groups[1].Name != OtherItemsGroup || len(groups[1].Items) != 1 || groups[1].Items[0].Name != "Gum" {
		t.Errorf("group 1 = %+v, want Other Items with [Gum]", groups[1])
	}
}

func TestGroupOrderIsFirstSeen(t *testing.T) {
	st := store.New()
	st.ReplaceShopping([]models.ShoppingListItem{
		{ID: "i1", Name: "Gum"},
		{ID: "i2", Name: "Salt", RecipeName: "Soup"},
		{ID: "i3", Name: "Flour", RecipeName: "Bread"},
		{ID: "i4", Name: "Pepper", RecipeName: "Soup"},
	})

	groups := New(st, "u1").GroupedShoppingList()
	want := []string{OtherItemsGroup, "Soup", "Bread"}
	if len(groups) != len(want) {
		t.Fatalf("len(groups) = %d, want %d", len(groups), len(want))
	}
	for i, name := range want {
		if groups[i].Name != name {
			t.Errorf("group[%d] = %s, want %s", i, groups[i].Name, name)
		}
	}
}

func TestMealPlanEntriesForSlot(t *testing.T) {
	st := store.New()
	st.ReplaceRecipes([]models.Recipe{recipe("r1", "Soup", "u1"), recipe("r2", "Pie", "u1")})
	st.ReplaceMealPlan([]models.MealPlanEntry{
		{ID: "m1", Date: "2024-05-01", MealType: models.MealTypeDinner, RecipeID: "r1"},
		{ID: "m2", Date: "2024-05-01", MealType: models.MealTypeLunch, RecipeID: "r2"},
		{ID: "m3", Date: "2024-05-02", MealType: models.MealTypeDinner, RecipeID: "r2"},
		{ID: "m4", Date: "2024-05-01", MealType: models.MealTypeDinner, RecipeID: "gone"},
		{ID: "m5", Date: "2024-05-01", MealType: models.MealTypeDinner, RecipeID: "r2"},
	})

	slot := New(st, "u1").MealPlanEntriesForSlot("2024-05-01", models.MealTypeDinner)
	if len(slot) != 2 {
		t.Fatalf("len(slot) = %d, want 2", len(slot))
	}
	if slot[0].Entry.ID != "m1" || slot[1].Entry.ID != "m5" {
		t.Errorf("slot entries = [%s %s], want [m1 m5]", slot[0].Entry.ID, slot[1].Entry.ID)
	}
	if slot[0].Recipe.ID != "r1" || slot[1].Recipe.ID != "r2" {
		t.Errorf("slot recipes = [%s %s], want [r1 r2]", slot[0].Recipe.ID, slot[1].Recipe.ID)
	}
}

func TestAverageRating(t *testing.T) {
	st := store.New()
	st.ReplaceReviews([]models.Review{
		{ID: "v1", RecipeID: "r1", Rating: 4},
		{ID: "v2", RecipeID: "r1", Rating: 5},
		{ID: "v3", RecipeID: "r1", Rating: 3},
		{ID: "v4", RecipeID: "r2", Rating: 1},
	})

	v := New(st, "u1")
	avg := v.AverageRating("r1")
	if avg == nil || *avg != 4.0 {
		t.Errorf("AverageRating(r1) = %v, want 4.0", avg)
	}
	if got := v.AverageRating("unreviewed"); got != nil {
		t.Errorf("AverageRating(unreviewed) = %v, want nil", *got)
	}
}

func TestSuggestedUsers(t *testing.T) {
	st := store.New()
	users := []models.User{
		{ID: "me", Username: "me", FollowersCount: 999},
		{ID: "u1", Username: "a", FollowersCount: 10},
		{ID: "u2", Username: "b", FollowersCount: 50},
		{ID: "u3", Username: "c", FollowersCount: 30},
		{ID: "u4", Username: "d", FollowersCount: 20},
		{ID: "u5", Username: "e", FollowersCount: 40},
		{ID: "u6", Username: "f", FollowersCount: 25},
		{ID: "u7", Username: "g", FollowersCount: 5},
	}
	st.ReplaceUsers(users)
	st.ReplaceFollowing([]string{"u2"})

	suggested := New(st, "me").SuggestedUsers()
	if len(suggested) != SuggestedUsersLimit {
		t.Fatalf("len = %d, want %d", len(suggested), SuggestedUsersLimit)
	}
	want := []string{"u5", "u3", "u6", "u4", "u1"}
	for i, id := range want {
		if suggested[i].ID != id {
			t.Errorf("suggested[%d] = %s, want %s", i, suggested[i].ID, id)
		}
	}
	for _, u := range suggested {
		if u.ID == "me" || u.ID == "u2" {
			t.Errorf("suggested includes %s, which must be excluded", u.ID)
		}
	}
}
