package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/tiempos-pupi/tiempos-api/internal/api/handler/router"
	"github.com/tiempos-pupi/tiempos-api/internal/usecases/authenticating"
	"github.com/tiempos-pupi/tiempos-api/internal/usecases/recording"
	"github.com/tiempos-pupi/tiempos-api/internal/usecases/weekkeeping"
	"github.com/tiempos-pupi/tiempos-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Weeks(service weekkeeping.WeekKeeper, recorder recording.Recorder) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/weeks",
			Method:      http.MethodGet,
			Handler:     ListWeeks(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/weeks",
			Method:      http.MethodPost,
			Handler:     CreateWeek(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/weeks/:id",
			Method:      http.MethodPut,
			Handler:     RenameWeek(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/weeks/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteWeek(service, recorder),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func WeekData(service weekkeeping.WeekKeeper, recorder recording.Recorder) []router.Route {
	allRoles := []func(http.Handler) http.Handler{middleware.AllRoles()}

	return []router.Route{
		{
			Path:        "/v1/weeks/:id/sellers/:seller",
			Method:      http.MethodGet,
			Handler:     GetWeekData(service, recorder),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/weeks/:id/sellers/:seller/cells",
			Method:      http.MethodPut,
			Handler:     SetCell(service, recorder),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/weeks/:id/sellers/:seller/slots",
			Method:      http.MethodPost,
			Handler:     AddExtraSlot(service, recorder),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/weeks/:id/sellers/:seller/movements",
			Method:      http.MethodPost,
			Handler:     AddMovement(service, recorder),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/weeks/:id/sellers/:seller/movements/:movementId",
			Method:      http.MethodDelete,
			Handler:     RemoveMovement(service, recorder),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/weeks/:id/sellers/:seller/summary",
			Method:      http.MethodGet,
			Handler:     GetWeekSummary(service, recorder),
			Middlewares: allRoles,
		},
	}
}
