package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"vet-recetas/internal/domain/recetas"
)

const recetaColumns = `
	id,
	pet_name, pet_weight, pet_color, species, sex,
	vet_name, visit_date,
	diagnosis, treatment,
	owner_id`

type RecetasRepo struct {
	db *sql.DB
}

func NewRecetasRepo(db *sql.DB) *RecetasRepo {
	return &RecetasRepo{db: db}
}

func (r *RecetasRepo) Create(ctx context.Context, rec *recetas.Receta) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO recetas (
			pet_name, pet_weight, pet_color, species, sex,
			vet_name, visit_date,
			diagnosis, treatment,
			owner_id
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id
	`,
		rec.PetName,
		rec.PetWeight,
		rec.PetColor,
		rec.Species,
		rec.Sex,
		rec.VetName,
		rec.VisitDate,
		rec.Diagnosis,
		rec.Treatment,
		toNullInt64(rec.OwnerID),
	).Scan(&rec.ID)
	if err != nil {
		switch pgCode(err) {
		case codeForeignKeyViolation:
			return recetas.ErrOwnerNotFound
		case codeStringTooLong:
			return recetas.ErrInvalidInput
		}
		return err
	}
	return nil
}

func (r *RecetasRepo) GetByID(ctx context.Context, id int64) (recetas.Receta, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+recetaColumns+` FROM recetas WHERE id = $1`, id)

	rec, err := scanReceta(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return recetas.Receta{}, recetas.ErrNotFound
		}
		return recetas.Receta{}, err
	}
	return rec, nil
}

func (r *RecetasRepo) List(ctx context.Context, filter recetas.ListFilter) ([]recetas.Receta, error) {
	sb := strings.Builder{}
	sb.WriteString(`SELECT ` + recetaColumns + ` FROM recetas WHERE TRUE`)

	args := []any{}
	argN := 1

	addLike := func(column, value string) {
		if value == "" {
			return
		}
		sb.WriteString(fmt.Sprintf(" AND %s ILIKE $%d", column, argN))
		args = append(args, likePattern(value))
		argN++
	}

	addLike("pet_name", filter.PetName)
	addLike("diagnosis", filter.Diagnosis)
	addLike("treatment", filter.Treatment)
	addLike("vet_name", filter.Veterinarian)

	if filter.Date != nil {
		sb.WriteString(fmt.Sprintf(" AND visit_date = $%d", argN))
		args = append(args, *filter.Date)
		argN++
	}

	sb.WriteString(" ORDER BY id ASC")

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]recetas.Receta, 0)
	for rows.Next() {
		rec, err := scanReceta(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *RecetasRepo) Update(ctx context.Context, rec recetas.Receta) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE recetas
		SET
			pet_name = $2,
			pet_weight = $3,
			pet_color = $4,
			species = $5,
			sex = $6,
			vet_name = $7,
			visit_date = $8,
			diagnosis = $9,
			treatment = $10,
			owner_id = $11
		WHERE id = $1
	`,
		rec.ID,
		rec.PetName,
		rec.PetWeight,
		rec.PetColor,
		rec.Species,
		rec.Sex,
		rec.VetName,
		rec.VisitDate,
		rec.Diagnosis,
		rec.Treatment,
		toNullInt64(rec.OwnerID),
	)
	if err != nil {
		switch pgCode(err) {
		case codeForeignKeyViolation:
			return recetas.ErrOwnerNotFound
		case codeStringTooLong:
			return recetas.ErrInvalidInput
		}
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return recetas.ErrNotFound
	}
	return nil
}

func (r *RecetasRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM recetas WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return recetas.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReceta(s scanner) (recetas.Receta, error) {
	var rec recetas.Receta
	var owner sql.NullInt64
	if err := s.Scan(
		&rec.ID,
		&rec.PetName,
		&rec.PetWeight,
		&rec.PetColor,
		&rec.Species,
		&rec.Sex,
		&rec.VetName,
		&rec.VisitDate,
		&rec.Diagnosis,
		&rec.Treatment,
		&owner,
	); err != nil {
		return recetas.Receta{}, err
	}

	// visit_date es DATE; pgx lo mapea a medianoche UTC, normalizamos igual.
	rec.VisitDate = recetas.DateOf(rec.VisitDate)
	if owner.Valid {
		id := owner.Int64
		rec.OwnerID = &id
	}
	return rec, nil
}

func toNullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{Valid: false}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
