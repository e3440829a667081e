package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/tiempos-pupi/tiempos-api/internal/domain"
	"github.com/tiempos-pupi/tiempos-api/internal/usecases/recording"
	"github.com/tiempos-pupi/tiempos-api/internal/usecases/weekkeeping"
	"github.com/tiempos-pupi/tiempos-api/pkg/apiErrors"
	"github.com/tiempos-pupi/tiempos-api/pkg/log"
)

// WeekRequest crea o renombra una semana. Con Next en true la semana se crea
// con el nombre y el rango calculados a partir de la semana más reciente y el
// nombre enviado se ignora.
type WeekRequest struct {
	Name string `json:"name"`
	Next bool   `json:"next"`
}

func ListWeeks(service weekkeeping.WeekKeeper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weeks, err := service.List(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("error al listar las semanas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al listar las semanas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(weeks)
	}
}

func CreateWeek(service weekkeeping.WeekKeeper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req WeekRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de petición inválido", nil)
			return
		}

		var week *domain.Week
		var err error
		if req.Next {
			week, err = service.CreateNext(r.Context())
		} else {
			week, err = service.Create(r.Context(), req.Name)
		}
		if err != nil {
			if errors.Is(err, weekkeeping.ErrBlankWeekName) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "El nombre de la semana no puede estar en blanco", nil)
				return
			}
			log.ForContext(r.Context()).WithError(err).Error("error al crear la semana")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al crear la semana", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(week)
	}
}

func RenameWeek(service weekkeeping.WeekKeeper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		weekID := params.ByName("id")

		var req WeekRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de petición inválido", nil)
			return
		}

		if err := service.Rename(r.Context(), weekID, req.Name); err != nil {
			if errors.Is(err, weekkeeping.ErrBlankWeekName) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "El nombre de la semana no puede estar en blanco", nil)
				return
			}
			log.ForContext(r.Context()).WithError(err).Error("error al renombrar la semana")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al renombrar la semana", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// DeleteWeek borra la semana con sus datos en cascada y descarta la sesión
// en caché para que una selección posterior vea el estado "sin datos".
func DeleteWeek(service weekkeeping.WeekKeeper, recorder recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		weekID := params.ByName("id")

		if err := service.Delete(r.Context(), weekID); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("error al borrar la semana")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al borrar la semana", nil)
			return
		}

		recorder.Forget(weekID)

		w.WriteHeader(http.StatusNoContent)
	}
}
