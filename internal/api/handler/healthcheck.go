package handler

import (
	"net/http"
	"time"

	"github.com/tiempos-pupi/tiempos-api/pkg/log"
)

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(time.Now().String()))
		if err != nil {
			log.L.WithError(err).Warn("error al responder el healthcheck")
		}
	})
}
