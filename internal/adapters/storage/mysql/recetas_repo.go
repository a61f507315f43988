package mysql

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"vet-recetas/internal/domain/recetas"
)

const recetaColumns = `id, pet_name, pet_weight, pet_color, species, sex, vet_name, visit_date, diagnosis, treatment, owner_id`

type RecetasRepo struct {
	db *sql.DB
}

func NewRecetasRepo(db *sql.DB) *RecetasRepo {
	return &RecetasRepo{db: db}
}

func (r *RecetasRepo) Create(ctx context.Context, rec *recetas.Receta) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO recetas (pet_name, pet_weight, pet_color, species, sex, vet_name, visit_date, diagnosis, treatment, owner_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.PetName, rec.PetWeight, rec.PetColor, rec.Species, rec.Sex,
		rec.VetName, rec.VisitDate.Format(recetas.DateLayout),
		rec.Diagnosis, rec.Treatment, toNullInt64(rec.OwnerID),
	)
	if err != nil {
		switch errNumber(err) {
		case errNoReferencedRow:
			return recetas.ErrOwnerNotFound
		case errDataTooLong:
			return recetas.ErrInvalidInput
		}
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rec.ID = id
	return nil
}

func (r *RecetasRepo) GetByID(ctx context.Context, id int64) (recetas.Receta, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+recetaColumns+` FROM recetas WHERE id = ?`, id)

	rec, err := scanReceta(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return recetas.Receta{}, recetas.ErrNotFound
		}
		return recetas.Receta{}, err
	}
	return rec, nil
}

// List usa LOWER(col) LIKE para no depender del collation de la tabla.
func (r *RecetasRepo) List(ctx context.Context, filter recetas.ListFilter) ([]recetas.Receta, error) {
	where := make([]string, 0, 5)
	args := make([]any, 0, 5)

	addLike := func(column, value string) {
		if value == "" {
			return
		}
		where = append(where, "LOWER("+column+") LIKE ?")
		args = append(args, likePattern(value))
	}

	addLike("pet_name", filter.PetName)
	addLike("diagnosis", filter.Diagnosis)
	addLike("treatment", filter.Treatment)
	addLike("vet_name", filter.Veterinarian)

	if filter.Date != nil {
		where = append(where, "visit_date = ?")
		args = append(args, filter.Date.Format(recetas.DateLayout))
	}

	query := `SELECT ` + recetaColumns + ` FROM recetas`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
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

// Update chequea existencia antes: MySQL reporta 0 filas afectadas
// cuando los valores no cambian, y eso no es "not found".
func (r *RecetasRepo) Update(ctx context.Context, rec recetas.Receta) error {
	var exists int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM recetas WHERE id = ?`, rec.ID).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return recetas.ErrNotFound
		}
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		UPDATE recetas
		SET pet_name = ?, pet_weight = ?, pet_color = ?, species = ?, sex = ?,
			vet_name = ?, visit_date = ?, diagnosis = ?, treatment = ?, owner_id = ?
		WHERE id = ?`,
		rec.PetName, rec.PetWeight, rec.PetColor, rec.Species, rec.Sex,
		rec.VetName, rec.VisitDate.Format(recetas.DateLayout),
		rec.Diagnosis, rec.Treatment, toNullInt64(rec.OwnerID),
		rec.ID,
	)
	if err != nil {
		switch errNumber(err) {
		case errNoReferencedRow:
			return recetas.ErrOwnerNotFound
		case errDataTooLong:
			return recetas.ErrInvalidInput
		}
		return err
	}
	return nil
}

func (r *RecetasRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM recetas WHERE id = ?`, id)
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
		&rec.ID, &rec.PetName, &rec.PetWeight, &rec.PetColor, &rec.Species, &rec.Sex,
		&rec.VetName, &rec.VisitDate, &rec.Diagnosis, &rec.Treatment, &owner,
	); err != nil {
		return recetas.Receta{}, err
	}

	rec.VisitDate = recetas.DateOf(rec.VisitDate)
	if owner.Valid {
		id := owner.Int64
		rec.OwnerID = &id
	}
	return rec, nil
}

func toNullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
