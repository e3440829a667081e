package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/tiempos-pupi/tiempos-api/internal/domain"
	"github.com/tiempos-pupi/tiempos-api/internal/usecases/recording"
	"github.com/tiempos-pupi/tiempos-api/internal/usecases/weekkeeping"
	"github.com/tiempos-pupi/tiempos-api/pkg/apiErrors"
	"github.com/tiempos-pupi/tiempos-api/pkg/log"
)

type SetCellRequest struct {
	Day   string `json:"day"`
	Slot  string `json:"slot"`
	Field string `json:"field"`
	Value string `json:"value"`
}

type MovementRequest struct {
	Amount string `json:"amount"`
}

type ExtraSlotRequest struct {
	Label string `json:"label"`
}

// WeekDataResponse es la vista completa de la semana de un vendedor: el
// calendario de sorteos vigente, la cuadrícula y el historial de movimientos.
type WeekDataResponse struct {
	WeekID     string           `json:"week_id"`
	Seller     string           `json:"seller"`
	Country    string           `json:"country"`
	Slots      []string         `json:"slots"`
	Grid       domain.SalesGrid `json:"grid"`
	Movements  domain.Ledger    `json:"movements"`
	ExtraSlots []string         `json:"extra_slots,omitempty"`
	HasData    bool             `json:"has_data"`
}

func weekAndSeller(r *http.Request) (string, string) {
	params := httprouter.ParamsFromContext(r.Context())
	return params.ByName("id"), params.ByName("seller")
}

// checkWeek valida que la semana exista antes de operar sobre sus datos.
func checkWeek(w http.ResponseWriter, r *http.Request, service weekkeeping.WeekKeeper, weekID string) bool {
	_, err := service.Get(r.Context(), weekID)
	if err != nil {
		if errors.Is(err, weekkeeping.ErrWeekNotFound) {
			apiErrors.WriteError(w, apiErrors.ErrWeekNotFound, "Semana no encontrada", nil)
			return false
		}
		log.ForContext(r.Context()).WithError(err).Error("error al consultar la semana")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar la semana", nil)
		return false
	}
	return true
}

func GetWeekData(service weekkeeping.WeekKeeper, recorder recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weekID, seller := weekAndSeller(r)
		if !checkWeek(w, r, service, weekID) {
			return
		}

		state, err := recorder.Select(r.Context(), weekID, seller)
		if err != nil {
			writeRecordingError(w, r, err)
			return
		}

		response := WeekDataResponse{
			WeekID:     state.WeekID,
			Seller:     state.Seller,
			Country:    state.Country,
			Slots:      state.Slots,
			Grid:       state.Data.Grid,
			Movements:  state.Data.Movements,
			ExtraSlots: state.Data.ExtraSlots,
			HasData:    state.HasData,
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

// SetCell escribe una celda. Las mutaciones también exigen que la semana
// exista; si no, una escritura contra una semana borrada recrearía su
// documento de datos.
func SetCell(service weekkeeping.WeekKeeper, recorder recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weekID, seller := weekAndSeller(r)
		if !checkWeek(w, r, service, weekID) {
			return
		}

		var req SetCellRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de petición inválido", nil)
			return
		}

		if err := recorder.SetCell(r.Context(), weekID, seller, req.Day, req.Slot, req.Field, req.Value); err != nil {
			writeRecordingError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func AddExtraSlot(service weekkeeping.WeekKeeper, recorder recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weekID, seller := weekAndSeller(r)
		if !checkWeek(w, r, service, weekID) {
			return
		}

		var req ExtraSlotRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de petición inválido", nil)
			return
		}

		if err := recorder.AddExtraSlot(r.Context(), weekID, seller, req.Label); err != nil {
			writeRecordingError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
	}
}

// AddMovement registra un movimiento. Una entrada vacía o no numérica es un
// no-op y responde 204 sin cuerpo.
func AddMovement(service weekkeeping.WeekKeeper, recorder recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weekID, seller := weekAndSeller(r)
		if !checkWeek(w, r, service, weekID) {
			return
		}

		var req MovementRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de petición inválido", nil)
			return
		}

		movement, err := recorder.AddMovement(r.Context(), weekID, seller, req.Amount)
		if err != nil {
			writeRecordingError(w, r, err)
			return
		}

		if movement == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(movement)
	}
}

func RemoveMovement(service weekkeeping.WeekKeeper, recorder recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weekID, seller := weekAndSeller(r)
		if !checkWeek(w, r, service, weekID) {
			return
		}

		params := httprouter.ParamsFromContext(r.Context())
		movementID, err := strconv.ParseInt(params.ByName("movementId"), 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "El ID del movimiento debe ser numérico", nil)
			return
		}

		if err := recorder.RemoveMovement(r.Context(), weekID, seller, movementID); err != nil {
			writeRecordingError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func GetWeekSummary(service weekkeeping.WeekKeeper, recorder recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weekID, seller := weekAndSeller(r)
		if !checkWeek(w, r, service, weekID) {
			return
		}

		summary, err := recorder.Summary(r.Context(), weekID, seller)
		if err != nil {
			writeRecordingError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	}
}

// writeRecordingError traduce los errores del servicio de registro a la
// respuesta estándar de la API.
func writeRecordingError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, recording.ErrUnknownSeller):
		apiErrors.WriteError(w, apiErrors.ErrUnknownSeller, "Vendedor desconocido", nil)

	case errors.Is(err, recording.ErrUnknownDay):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Día fuera del rango lunes-domingo", nil)

	case errors.Is(err, recording.ErrUnknownField):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Campo de celda desconocido", nil)

	case errors.Is(err, recording.ErrUnknownTimeSlot):
		apiErrors.WriteError(w, apiErrors.ErrUnknownTimeSlot, "Sorteo fuera del horario de la semana", nil)

	case errors.Is(err, recording.ErrManualSlotsNotAllowed):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "El país no acepta sorteos agregados a mano", nil)

	case errors.Is(err, recording.ErrBlankSlotLabel):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "La etiqueta del sorteo no puede estar en blanco", nil)

	default:
		log.ForContext(r.Context()).WithError(err).Error("error en el servicio de registro")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error interno", nil)
	}
}
