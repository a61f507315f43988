package recetas

import (
	"context"
	"time"
)

type Repository interface {
	// Create asigna r.ID. Devuelve ErrOwnerNotFound si la FK de owner falla.
	Create(ctx context.Context, r *Receta) error
	GetByID(ctx context.Context, id int64) (Receta, error)
	// List devuelve las recetas ordenadas por id ascendente.
	List(ctx context.Context, filter ListFilter) ([]Receta, error)
	Update(ctx context.Context, r Receta) error
	Delete(ctx context.Context, id int64) error
}

// ListFilter combina filtros con AND. Un campo vacío/nil no restringe.
// Los filtros de texto son "contains" sin distinguir mayúsculas.
type ListFilter struct {
	PetName      string
	Date         *time.Time
	Diagnosis    string
	Treatment    string
	Veterinarian string
}
