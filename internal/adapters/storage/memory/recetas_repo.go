package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"vet-recetas/internal/domain/recetas"
)

type recetasRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]recetas.Receta
}

func NewRecetasRepo() recetas.Repository {
	return &recetasRepo{
		byID: make(map[int64]recetas.Receta),
	}
}

func (r *recetasRepo) Create(ctx context.Context, rec *recetas.Receta) error {
	if rec == nil {
		return errors.New("receta required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	rec.ID = r.nextID
	r.byID[rec.ID] = clone(*rec)
	return nil
}

func (r *recetasRepo) GetByID(ctx context.Context, id int64) (recetas.Receta, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return recetas.Receta{}, recetas.ErrNotFound
	}
	return clone(rec), nil
}

func (r *recetasRepo) List(ctx context.Context, filter recetas.ListFilter) ([]recetas.Receta, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]recetas.Receta, 0)
	for _, rec := range r.byID {
		if !containsFold(rec.PetName, filter.PetName) ||
			!containsFold(rec.Diagnosis, filter.Diagnosis) ||
			!containsFold(rec.Treatment, filter.Treatment) ||
			!containsFold(rec.VetName, filter.Veterinarian) {
			continue
		}
		if filter.Date != nil && !rec.VisitDate.Equal(*filter.Date) {
			continue
		}
		out = append(out, clone(rec))
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *recetasRepo) Update(ctx context.Context, rec recetas.Receta) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[rec.ID]; !exists {
		return recetas.ErrNotFound
	}
	r.byID[rec.ID] = clone(rec)
	return nil
}

func (r *recetasRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return recetas.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// containsFold: needle vacío no filtra.
func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// clone copia OwnerID para que nadie mute el puntero guardado.
func clone(rec recetas.Receta) recetas.Receta {
	if rec.OwnerID != nil {
		owner := *rec.OwnerID
		rec.OwnerID = &owner
	}
	return rec
}
