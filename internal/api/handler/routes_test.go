package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tiempos-pupi/tiempos-api/internal/api/handler/router"
)

// httprouter rechaza en el registro un segmento fijo y un comodín como
// hermanos en el mismo árbol de método, con pánico incluido. Armar el router
// con todos los grupos de rutas garantiza que el servidor puede arrancar.
func TestRegistroDeRutasCompleto(t *testing.T) {
	env := newTestEnv()

	var rt router.Router
	require.NotPanics(t, func() {
		rt = router.New(
			router.WithRoutes(Healthcheck()...),
			router.WithRoutes(Authentication(nil)...),
			router.WithRoutes(Weeks(env.weekService, env.recorder)...),
			router.WithRoutes(WeekData(env.weekService, env.recorder)...),
		)
	})

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
