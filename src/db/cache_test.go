package db

import (
	"testing"
	"time"

	"finance-api/src/models"
)

func TestCategoryCache(t *testing.T) {
	c, err := NewCategoryCache(time.Minute)
	if err != nil {
		t.Fatalf("NewCategoryCache() error = %v", err)
	}
	defer c.Close()

	if _, ok := c.Get(); ok {
		t.Fatal("expected miss on empty cache")
	}

	want := []models.Category{{ID: 1, Name: "Food", Type: "expense", Icon: "🍔"}}
	c.Set(want)

	got, ok := c.Get()
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if len(got) != 1 || got[0].Name != "Food" {
		t.Errorf("Get() = %+v", got)
	}

	c.Clear()
	if _, ok := c.Get(); ok {
		t.Error("expected miss after Clear")
	}
}

func TestCategoryCacheDisabled(t *testing.T) {
	c, err := NewCategoryCache(0)
	if err != nil {
		t.Fatalf("NewCategoryCache(0) error = %v", err)
	}
	if c != nil {
		t.Fatal("expected nil cache for zero ttl")
	}

	c.Set([]models.Category{{ID: 1}})
	if _, ok := c.Get(); ok {
		t.Error("disabled cache should never hit")
	}
	c.Clear()
	c.Close()
}
