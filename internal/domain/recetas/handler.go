package recetas

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"vet-recetas/internal/middleware"
	"vet-recetas/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/recetas", func(rr chi.Router) {
		rr.Post("/", createRecetaHandler(svc, log))
		rr.Get("/", listRecetasHandler(svc, log))

		rr.Get("/{recetaID}", getRecetaHandler(svc, log))
		rr.Put("/{recetaID}", updateRecetaHandler(svc, log))
		rr.Delete("/{recetaID}", deleteRecetaHandler(svc, log))
	})
}

// createRecetaRequest usa punteros para distinguir "no enviado" de valor cero.
type createRecetaRequest struct {
	PetName   *string  `json:"pet_name"`
	Weight    *float64 `json:"weight"`
	Color     *string  `json:"color"`
	Species   *string  `json:"species"`
	Sex       *string  `json:"sex"`
	VetName   *string  `json:"vet_name"`
	VisitDate *string  `json:"visit_date"` // YYYY-MM-DD opcional, default hoy
	Diagnosis *string  `json:"diagnosis"`
	Treatment *string  `json:"treatment"`
	OwnerID   *int64   `json:"owner_id"`
}

// updateRecetaRequest: nil = no tocar. Un null explícito también se ignora.
type updateRecetaRequest createRecetaRequest

// recetaResponse es la proyección JSON canónica de una receta.
type recetaResponse struct {
	ID        int64   `json:"id"`
	PetName   string  `json:"pet_name"`
	Weight    float64 `json:"weight"`
	Color     string  `json:"color"`
	Species   string  `json:"species"`
	Sex       string  `json:"sex"`
	VetName   string  `json:"vet_name"`
	VisitDate string  `json:"visit_date"`
	Diagnosis string  `json:"diagnosis"`
	Treatment string  `json:"treatment"`
	OwnerID   *int64  `json:"owner_id"`
}

type msgResponse struct {
	Msg string `json:"msg"`
}

func (req createRecetaRequest) toInput() (CreateInput, error) {
	verr := &ValidationError{}

	str := func(field string, v *string) string {
		if v == nil || strings.TrimSpace(*v) == "" {
			verr.Missing = append(verr.Missing, field)
			return ""
		}
		return *v
	}

	in := CreateInput{
		PetName:   str("pet_name", req.PetName),
		PetColor:  str("color", req.Color),
		Species:   str("species", req.Species),
		Sex:       str("sex", req.Sex),
		VetName:   str("vet_name", req.VetName),
		Diagnosis: str("diagnosis", req.Diagnosis),
		Treatment: str("treatment", req.Treatment),
		OwnerID:   req.OwnerID,
	}

	if req.Weight == nil {
		verr.Missing = append(verr.Missing, "weight")
	} else {
		in.PetWeight = *req.Weight
	}

	if req.VisitDate != nil && strings.TrimSpace(*req.VisitDate) != "" {
		d, err := ParseDate(*req.VisitDate)
		if err != nil {
			verr.invalid("visit_date", "formato YYYY-MM-DD")
		} else {
			in.VisitDate = &d
		}
	}

	if !verr.empty() {
		return CreateInput{}, verr
	}
	return in, nil
}

func (req updateRecetaRequest) toInput() (UpdateInput, error) {
	in := UpdateInput{
		PetName:   req.PetName,
		PetWeight: req.Weight,
		PetColor:  req.Color,
		Species:   req.Species,
		Sex:       req.Sex,
		VetName:   req.VetName,
		Diagnosis: req.Diagnosis,
		Treatment: req.Treatment,
		OwnerID:   req.OwnerID,
	}

	// visit_date vacío se trata como ausente, igual que en el alta.
	if req.VisitDate != nil && strings.TrimSpace(*req.VisitDate) != "" {
		d, err := ParseDate(*req.VisitDate)
		if err != nil {
			verr := &ValidationError{}
			verr.invalid("visit_date", "formato YYYY-MM-DD")
			return UpdateInput{}, verr
		}
		in.VisitDate = &d
	}
	return in, nil
}

// createRecetaHandler godoc
// @Summary Crear receta
// @Description Registra una atención veterinaria. Todos los campos son obligatorios salvo visit_date (default: hoy) y owner_id. Si viene owner_id, el usuario debe existir.
// @Tags recetas
// @Accept json
// @Produce json
// @Param payload body createRecetaRequest true "Datos de la receta"
// @Success 201 {object} recetaResponse
// @Failure 400 {object} msgResponse "Faltan datos / fecha inválida / dueño inexistente"
// @Failure 500 {object} msgResponse "Error interno"
// @Router /recetas [post]
func createRecetaHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRecetaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, msgResponse{Msg: "JSON inválido"})
			return
		}

		in, err := req.toInput()
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		rec, err := svc.Create(r.Context(), in)
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		writeJSON(w, http.StatusCreated, toRecetaResponse(rec))
	}
}

// listRecetasHandler godoc
// @Summary Listar recetas
// @Description Lista recetas. Filtros opcionales combinados con AND; los de texto son "contiene" sin distinguir mayúsculas.
// @Tags recetas
// @Produce json
// @Param name query string false "Nombre de la mascota (contiene)"
// @Param date query string false "Fecha de atención exacta (YYYY-MM-DD)"
// @Param diagnosis query string false "Diagnóstico (contiene)"
// @Param treatment query string false "Tratamiento (contiene)"
// @Param veterinarian query string false "Veterinario (contiene)"
// @Success 200 {array} recetaResponse
// @Failure 400 {object} msgResponse "Fecha inválida"
// @Failure 500 {object} msgResponse "Error interno"
// @Router /recetas [get]
func listRecetasHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseListFilter(r)
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		out := make([]recetaResponse, 0, len(items))
		for _, rec := range items {
			out = append(out, toRecetaResponse(rec))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getRecetaHandler godoc
// @Summary Obtener receta
// @Tags recetas
// @Produce json
// @Param recetaID path int true "ID de la receta"
// @Success 200 {object} recetaResponse
// @Failure 404 {object} msgResponse "Receta no encontrada"
// @Router /recetas/{recetaID} [get]
func getRecetaHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := recetaID(r)
		if !ok {
			writeJSON(w, http.StatusNotFound, msgResponse{Msg: "Receta no encontrada"})
			return
		}

		rec, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toRecetaResponse(rec))
	}
}

// updateRecetaHandler godoc
// @Summary Editar receta
// @Description Update parcial: cada campo enviado reemplaza al actual; los ausentes se conservan.
// @Tags recetas
// @Accept json
// @Produce json
// @Param recetaID path int true "ID de la receta"
// @Param payload body updateRecetaRequest true "Subconjunto de campos"
// @Success 200 {object} recetaResponse
// @Failure 400 {object} msgResponse "Datos inválidos"
// @Failure 404 {object} msgResponse "Receta no encontrada"
// @Router /recetas/{recetaID} [put]
func updateRecetaHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := recetaID(r)
		if !ok {
			writeJSON(w, http.StatusNotFound, msgResponse{Msg: "Receta no encontrada"})
			return
		}

		var req updateRecetaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, msgResponse{Msg: "JSON inválido"})
			return
		}

		in, err := req.toInput()
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		updated, err := svc.Update(r.Context(), id, in)
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toRecetaResponse(updated))
	}
}

// deleteRecetaHandler godoc
// @Summary Eliminar receta
// @Tags recetas
// @Produce json
// @Param recetaID path int true "ID de la receta"
// @Success 200 {object} msgResponse "Receta eliminada"
// @Failure 404 {object} msgResponse "Receta no encontrada"
// @Router /recetas/{recetaID} [delete]
func deleteRecetaHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := recetaID(r)
		if !ok {
			writeJSON(w, http.StatusNotFound, msgResponse{Msg: "Receta no encontrada"})
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, msgResponse{Msg: "Receta eliminada"})
	}
}

func parseListFilter(r *http.Request) (ListFilter, error) {
	q := r.URL.Query()

	filter := ListFilter{
		PetName:      q.Get("name"),
		Diagnosis:    q.Get("diagnosis"),
		Treatment:    q.Get("treatment"),
		Veterinarian: q.Get("veterinarian"),
	}

	if v := strings.TrimSpace(q.Get("date")); v != "" {
		d, err := ParseDate(v)
		if err != nil {
			verr := &ValidationError{}
			verr.invalid("date", "formato YYYY-MM-DD")
			return ListFilter{}, verr
		}
		filter.Date = &d
	}

	return filter, nil
}

func recetaID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "recetaID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, msgResponse{Msg: validationMessage(verr)})
	case errors.Is(err, ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, msgResponse{Msg: "Datos inválidos"})
	case errors.Is(err, ErrOwnerNotFound):
		writeJSON(w, http.StatusBadRequest, msgResponse{Msg: "El dueño indicado no existe"})
	case errors.Is(err, ErrNotFound):
		writeJSON(w, http.StatusNotFound, msgResponse{Msg: "Receta no encontrada"})
	default:
		middleware.LoggerFrom(r.Context(), log).Error("recetas: request failed", map[string]any{
			"err": err.Error(),
		})
		writeJSON(w, http.StatusInternalServerError, msgResponse{Msg: "Error interno"})
	}
}

func validationMessage(verr *ValidationError) string {
	parts := make([]string, 0, 2)
	if len(verr.Missing) > 0 {
		parts = append(parts, "Faltan datos: "+strings.Join(verr.Missing, ", "))
	}
	if len(verr.Invalid) > 0 {
		invalid := make([]string, 0, len(verr.Invalid))
		for _, f := range sortedKeys(verr.Invalid) {
			invalid = append(invalid, f+" ("+verr.Invalid[f]+")")
		}
		parts = append(parts, "Datos inválidos: "+strings.Join(invalid, ", "))
	}
	return strings.Join(parts, ". ")
}

func toRecetaResponse(r Receta) recetaResponse {
	return recetaResponse{
		ID:        r.ID,
		PetName:   r.PetName,
		Weight:    r.PetWeight,
		Color:     r.PetColor,
		Species:   r.Species,
		Sex:       r.Sex,
		VetName:   r.VetName,
		VisitDate: r.VisitDate.Format(DateLayout),
		Diagnosis: r.Diagnosis,
		Treatment: r.Treatment,
		OwnerID:   r.OwnerID,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
