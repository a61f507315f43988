package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"vet-recetas/internal/domain/recetas"
	"vet-recetas/internal/domain/users"
)

func TestUsersRepo_UniqueEmail(t *testing.T) {
	repo := NewUsersRepo()
	ctx := context.Background()

	u := &users.User{OwnerName: "Ana", Email: "ana@x.com", PasswordHash: "h", IsActive: true}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if u.ID != 1 {
		t.Fatalf("expected id 1, got %d", u.ID)
	}

	dup := &users.User{OwnerName: "Otra", Email: "ana@x.com", PasswordHash: "h"}
	if err := repo.Create(ctx, dup); !errors.Is(err, users.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	got, err := repo.GetByEmail(ctx, "ana@x.com")
	if err != nil || got.OwnerName != "Ana" {
		t.Fatalf("GetByEmail: got %#v err=%v", got, err)
	}
	if _, err := repo.GetByID(ctx, 2); !errors.Is(err, users.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for id 2, got %v", err)
	}
}

func seedRecetas(t *testing.T, repo recetas.Repository) {
	t.Helper()

	d1 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)

	items := []recetas.Receta{
		{PetName: "Rex", VetName: "Dra. Gómez", Diagnosis: "Otitis externa", Treatment: "Gotas óticas", VisitDate: d1},
		{PetName: "rexito", VetName: "Dr. Pérez", Diagnosis: "Gastritis", Treatment: "Dieta blanda", VisitDate: d2},
		{PetName: "Luna", VetName: "Dra. Gómez", Diagnosis: "otitis media", Treatment: "Antibiótico", VisitDate: d1},
		{PetName: "Max_1", VetName: "Dr. Pérez", Diagnosis: "Control", Treatment: "Ninguno", VisitDate: d2},
	}
	for i := range items {
		if err := repo.Create(context.Background(), &items[i]); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func TestRecetasRepo_ListFilters(t *testing.T) {
	repo := NewRecetasRepo()
	seedRecetas(t, repo)
	ctx := context.Background()

	d1 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		filter recetas.ListFilter
		want   []int64
	}{
		{"no filter", recetas.ListFilter{}, []int64{1, 2, 3, 4}},
		{"name case insensitive", recetas.ListFilter{PetName: "REX"}, []int64{1, 2}},
		{"name + diagnosis", recetas.ListFilter{PetName: "rex", Diagnosis: "otitis"}, []int64{1}},
		{"date exact", recetas.ListFilter{Date: &d1}, []int64{1, 3}},
		{"veterinarian", recetas.ListFilter{Veterinarian: "pérez"}, []int64{2, 4}},
		{"treatment", recetas.ListFilter{Treatment: "dieta"}, []int64{2}},
		{"underscore literal", recetas.ListFilter{PetName: "x_1"}, []int64{4}},
		{"no match", recetas.ListFilter{PetName: "Garfield"}, []int64{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.List(ctx, tc.filter)
			if err != nil {
				t.Fatalf("List error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d results, got %d", len(tc.want), len(got))
			}
			for i, id := range tc.want {
				if got[i].ID != id {
					t.Fatalf("result %d: expected id %d, got %d", i, id, got[i].ID)
				}
			}
		})
	}
}

func TestRecetasRepo_UpdateDelete(t *testing.T) {
	repo := NewRecetasRepo()
	seedRecetas(t, repo)
	ctx := context.Background()

	rec, err := repo.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	rec.Diagnosis = "Otitis resuelta"
	if err := repo.Update(ctx, rec); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	got, _ := repo.GetByID(ctx, 1)
	if got.Diagnosis != "Otitis resuelta" {
		t.Fatalf("expected updated diagnosis, got %q", got.Diagnosis)
	}

	if err := repo.Update(ctx, recetas.Receta{ID: 99}); !errors.Is(err, recetas.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on update, got %v", err)
	}

	if err := repo.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := repo.Delete(ctx, 1); !errors.Is(err, recetas.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
	if _, err := repo.GetByID(ctx, 1); !errors.Is(err, recetas.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestRecetasRepo_OwnerIDIsCopied(t *testing.T) {
	repo := NewRecetasRepo()
	owner := int64(5)
	rec := &recetas.Receta{PetName: "Rex", OwnerID: &owner}
	if err := repo.Create(context.Background(), rec); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	owner = 6
	got, _ := repo.GetByID(context.Background(), rec.ID)
	if got.OwnerID == nil || *got.OwnerID != 5 {
		t.Fatalf("stored owner mutated: %v", got.OwnerID)
	}
}
