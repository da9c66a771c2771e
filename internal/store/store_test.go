package store

import (
	"testing"
	"time"

	"github.com/forkfeed/forkfeed/internal/models"
)

func TestReplaceRecipesPreservesOrder(t *testing.T) {
	s := New()
	s.ReplaceRecipes([]models.Recipe{
		{ID: "r2", Title: "Second"},
		{ID: "r1", Title: "First"},
		{ID: "r3", Title: "Third"},
	})

	recipes := s.Recipes()
	if len(recipes) != 3 {
		t.Fatalf("len = %d, want 3", len(recipes))
	}
	want := []string{"r2", "r1", "r3"}
	for i, id := range want {
		if recipes[i].ID != id {
			t.Errorf("recipes[%d] = %s, want %s", i, recipes[i].ID, id)
		}
	}

	if _, ok := s.RecipeByID("r1"); !ok {
		t.Error("RecipeByID(r1) not found")
	}
	if _, ok := s.RecipeByID("missing"); ok {
		t.Error("RecipeByID(missing) found")
	}
}

func TestReplaceIsAtomic(t *testing.T) {
	s := New()
	s.ReplaceRecipes([]models.Recipe{{ID: "r1"}, {ID: "r2"}})
	s.ReplaceRecipes([]models.Recipe{{ID: "r3"}})

	recipes := s.Recipes()
	if len(recipes) != 1 || recipes[0].ID != "r3" {
		t.Errorf("recipes after replacement = %v, want [r3]", recipes)
	}
	if _, ok := s.RecipeByID("r1"); ok {
		t.Error("r1 survived a full replacement")
	}
}

func TestFavoriteAndFollowingSets(t *testing.T) {
	s := New()
	s.ReplaceFavorites([]string{"r1", "r2"})
	s.ReplaceFollowing([]string{"u9"})

	if !s.IsFavorite("r1") || s.IsFavorite("r3") {
		t.Error("favorite membership wrong")
	}
	if !s.IsFollowing("u9") || s.IsFollowing("u1") {
		t.Error("following membership wrong")
	}

	// Returned sets are copies; mutating them must not touch the store
	set := s.FavoriteSet()
	delete(set, "r1")
	if !s.IsFavorite("r1") {
		t.Error("mutating the returned set leaked into the store")
	}
}

func TestRecentsCopy(t *testing.T) {
	s := New()
	rows := []models.RecentlyViewed{{RecipeID: "r1", ViewedAt: time.Now()}}
	s.ReplaceRecents(rows)

	got := s.Recents()
	got[0].RecipeID = "mutated"
	if s.Recents()[0].RecipeID != "r1" {
		t.Error("mutating the returned slice leaked into the store")
	}
}
