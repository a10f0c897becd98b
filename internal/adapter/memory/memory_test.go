package memory_test

import (
	"context"
	"testing"
	"time"

	"bmistation/internal/adapter/memory"
	"bmistation/internal/domain"
)

func TestCreateAndGetUser(t *testing.T) {
	db := memory.New()
	ctx := context.Background()

	w := 70.5
	u := &domain.User{
		ID: "u-1", Name: "Jane", Age: 30, Gender: domain.GenderFemale,
		HeightCm: 165, WeightKg: &w, CreatedAt: time.Now().UTC(),
	}
	if err := db.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := db.Create(ctx, u); err == nil {
		t.Fatal("expected error on duplicate id")
	}

	got, err := db.GetByID(ctx, "u-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Name != "Jane" || got.WeightKg == nil || *got.WeightKg != 70.5 {
		t.Fatalf("unexpected user: %+v", got)
	}

	// Stored copy must not alias the caller's struct.
	*got.WeightKg = 99
	again, _ := db.GetByID(ctx, "u-1")
	if *again.WeightKg != 70.5 {
		t.Fatal("stored user was mutated through a returned copy")
	}
}

func TestGetUser_Missing(t *testing.T) {
	db := memory.New()
	got, err := db.GetByID(context.Background(), "nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestUpdateBody(t *testing.T) {
	db := memory.New()
	ctx := context.Background()

	u := &domain.User{ID: "u-1", Name: "Jane", Age: 30, Gender: domain.GenderFemale, HeightCm: 165}
	if err := db.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := db.UpdateBody(ctx, "u-1", 170, 62)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.HeightCm != 170 || updated.WeightKg == nil || *updated.WeightKg != 62 {
		t.Fatalf("unexpected profile: %+v", updated)
	}

	if _, err := db.UpdateBody(ctx, "ghost", 170, 62); err == nil {
		t.Fatal("expected error for unknown user")
	}
}

func TestLedger_AppendOnlyAndLatest(t *testing.T) {
	db := memory.New()
	ctx := context.Background()
	now := time.Now().UTC()

	first := &domain.Measurement{UserID: "u-1", HeightCm: 165, WeightKg: 60, Bmi: 22.04, Category: "Normal", CreatedAt: now}
	id1, err := db.Add(ctx, first)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	second := &domain.Measurement{UserID: "u-1", HeightCm: 165, WeightKg: 66, Bmi: 24.24, Category: "Normal", CreatedAt: now.Add(time.Second)}
	id2, err := db.Add(ctx, second)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if id2 <= id1 {
		t.Fatalf("ids not monotonic: %d then %d", id1, id2)
	}

	latest, err := db.Latest(ctx, "u-1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest == nil || latest.ID != id2 || latest.WeightKg != 66 {
		t.Fatalf("unexpected latest: %+v", latest)
	}

	// The first entry is untouched by the second append.
	items, err := db.ListRecent(ctx, "u-1", 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(items))
	}
	if items[0].ID != id2 || items[1].ID != id1 {
		t.Fatalf("unexpected order: %+v", items)
	}
	if items[1].WeightKg != 60 || items[1].Bmi != 22.04 {
		t.Fatalf("prior measurement mutated: %+v", items[1])
	}
}

func TestLatest_TieBrokenByInsertionOrder(t *testing.T) {
	db := memory.New()
	ctx := context.Background()
	now := time.Now().UTC()

	if _, err := db.Add(ctx, &domain.Measurement{UserID: "u-1", WeightKg: 60, CreatedAt: now}); err != nil {
		t.Fatal(err)
	}
	id2, err := db.Add(ctx, &domain.Measurement{UserID: "u-1", WeightKg: 61, CreatedAt: now})
	if err != nil {
		t.Fatal(err)
	}

	latest, err := db.Latest(ctx, "u-1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest.ID != id2 {
		t.Fatalf("expected later insert to win tie, got %+v", latest)
	}
}

func TestLatest_NoMeasurements(t *testing.T) {
	db := memory.New()
	latest, err := db.Latest(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if latest != nil {
		t.Fatalf("expected nil, got %+v", latest)
	}
}

func TestListRecent_FiltersByUser(t *testing.T) {
	db := memory.New()
	ctx := context.Background()
	now := time.Now().UTC()

	for i, userID := range []string{"a", "b", "a"} {
		if _, err := db.Add(ctx, &domain.Measurement{UserID: userID, WeightKg: float64(60 + i), CreatedAt: now.Add(time.Duration(i) * time.Second)}); err != nil {
			t.Fatal(err)
		}
	}

	items, err := db.ListRecent(ctx, "a", 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 entries for user a, got %d", len(items))
	}
	if items[0].WeightKg != 62 {
		t.Fatalf("expected newest first, got %+v", items)
	}
}
