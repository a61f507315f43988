package recetas

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("receta not found")
	ErrOwnerNotFound = errors.New("owner not found")
)

// ValidationError lista los campos que faltan o son inválidos.
// errors.Is(err, ErrInvalidInput) es true.
type ValidationError struct {
	Missing []string
	Invalid map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, 2)
	if len(e.Missing) > 0 {
		parts = append(parts, "missing: "+strings.Join(e.Missing, ", "))
	}
	for _, f := range sortedKeys(e.Invalid) {
		parts = append(parts, f+": "+e.Invalid[f])
	}
	return "invalid input (" + strings.Join(parts, "; ") + ")"
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

func (e *ValidationError) empty() bool {
	return len(e.Missing) == 0 && len(e.Invalid) == 0
}

func (e *ValidationError) invalid(field, reason string) {
	if e.Invalid == nil {
		e.Invalid = map[string]string{}
	}
	e.Invalid[field] = reason
}

// OwnerLookup evita importar el paquete users (rompe ciclos).
type OwnerLookup interface {
	Exists(ctx context.Context, userID int64) (bool, error)
}

type Service struct {
	repo   Repository
	owners OwnerLookup // nil => no se valida el owner antes de insertar
	now    func() time.Time
}

func NewService(repo Repository, owners OwnerLookup) *Service {
	return &Service{
		repo:   repo,
		owners: owners,
		now:    time.Now,
	}
}

type CreateInput struct {
	PetName   string
	PetWeight float64
	PetColor  string
	Species   string
	Sex       string
	VetName   string
	VisitDate *time.Time // nil => hoy
	Diagnosis string
	Treatment string
	OwnerID   *int64
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Receta, error) {
	r := Receta{
		PetName:   strings.TrimSpace(in.PetName),
		PetWeight: in.PetWeight,
		PetColor:  strings.TrimSpace(in.PetColor),
		Species:   strings.TrimSpace(in.Species),
		Sex:       strings.TrimSpace(in.Sex),
		VetName:   strings.TrimSpace(in.VetName),
		Diagnosis: strings.TrimSpace(in.Diagnosis),
		Treatment: strings.TrimSpace(in.Treatment),
		OwnerID:   in.OwnerID,
	}
	if in.VisitDate != nil {
		r.VisitDate = DateOf(*in.VisitDate)
	} else {
		r.VisitDate = DateOf(s.now())
	}

	if err := validate(r); err != nil {
		return Receta{}, err
	}
	if err := s.checkOwner(ctx, r.OwnerID); err != nil {
		return Receta{}, err
	}

	if err := s.repo.Create(ctx, &r); err != nil {
		return Receta{}, err
	}
	return r, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Receta, error) {
	if id <= 0 {
		return Receta{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Receta, error) {
	filter.PetName = strings.TrimSpace(filter.PetName)
	filter.Diagnosis = strings.TrimSpace(filter.Diagnosis)
	filter.Treatment = strings.TrimSpace(filter.Treatment)
	filter.Veterinarian = strings.TrimSpace(filter.Veterinarian)
	if filter.Date != nil {
		d := DateOf(*filter.Date)
		filter.Date = &d
	}
	return s.repo.List(ctx, filter)
}

// UpdateInput usa punteros para update parcial: nil = no tocar.
type UpdateInput struct {
	PetName   *string
	PetWeight *float64
	PetColor  *string
	Species   *string
	Sex       *string
	VetName   *string
	VisitDate *time.Time
	Diagnosis *string
	Treatment *string
	OwnerID   *int64
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Receta, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Receta{}, err
	}

	applyString(&current.PetName, in.PetName)
	applyString(&current.PetColor, in.PetColor)
	applyString(&current.Species, in.Species)
	applyString(&current.Sex, in.Sex)
	applyString(&current.VetName, in.VetName)
	applyString(&current.Diagnosis, in.Diagnosis)
	applyString(&current.Treatment, in.Treatment)
	if in.PetWeight != nil {
		current.PetWeight = *in.PetWeight
	}
	if in.VisitDate != nil {
		current.VisitDate = DateOf(*in.VisitDate)
	}
	if in.OwnerID != nil {
		if err := s.checkOwner(ctx, in.OwnerID); err != nil {
			return Receta{}, err
		}
		owner := *in.OwnerID
		current.OwnerID = &owner
	}

	if err := validate(current); err != nil {
		return Receta{}, err
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return Receta{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) checkOwner(ctx context.Context, ownerID *int64) error {
	if ownerID == nil {
		return nil
	}
	if *ownerID <= 0 {
		return ErrOwnerNotFound
	}
	if s.owners == nil {
		return nil
	}
	ok, err := s.owners.Exists(ctx, *ownerID)
	if err != nil {
		return fmt.Errorf("check owner %d: %w", *ownerID, err)
	}
	if !ok {
		return ErrOwnerNotFound
	}
	return nil
}

// validate aplica las restricciones de columna (NOT NULL, largos) sin depender del storage.
func validate(r Receta) error {
	verr := &ValidationError{}

	required := []struct {
		field string
		value string
		max   int
	}{
		{"pet_name", r.PetName, MaxNameLen},
		{"color", r.PetColor, MaxNameLen},
		{"species", r.Species, MaxNameLen},
		{"sex", r.Sex, MaxSexLen},
		{"vet_name", r.VetName, MaxNameLen},
		{"diagnosis", r.Diagnosis, 0},
		{"treatment", r.Treatment, 0},
	}
	for _, f := range required {
		if f.value == "" {
			verr.Missing = append(verr.Missing, f.field)
			continue
		}
		if f.max > 0 && len([]rune(f.value)) > f.max {
			verr.invalid(f.field, fmt.Sprintf("max %d caracteres", f.max))
		}
	}
	if r.PetWeight < 0 {
		verr.invalid("weight", "no puede ser negativo")
	}
	if r.VisitDate.IsZero() {
		verr.Missing = append(verr.Missing, "visit_date")
	}

	if verr.empty() {
		return nil
	}
	return verr
}

func applyString(dst *string, v *string) {
	if v == nil {
		return
	}
	*dst = strings.TrimSpace(*v)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
