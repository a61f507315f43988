package recetas

import (
	"strings"
	"time"
)

// DateLayout es el formato de visit_date en la API (ISO 8601 sin hora).
const DateLayout = "2006-01-02"

// Límites de columnas (iguales a los VARCHAR del schema).
const (
	MaxNameLen = 120
	MaxSexLen  = 20
)

// Receta es el registro de una atención veterinaria de una mascota.
type Receta struct {
	ID int64

	PetName   string
	PetWeight float64
	PetColor  string
	Species   string
	Sex       string

	VetName   string
	VisitDate time.Time // solo fecha, medianoche UTC

	Diagnosis string
	Treatment string

	// OwnerID es nullable: una receta puede no tener dueño asignado.
	OwnerID *int64
}

// ParseDate interpreta YYYY-MM-DD como medianoche UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// DateOf descarta hora y zona, conservando el día calendario de t.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
