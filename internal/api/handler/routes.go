package handler

import (
	"net/http"

	"github.com/vfg2006/ad-transparency-api/internal/api/handler/router"
	"github.com/vfg2006/ad-transparency-api/internal/usecases/authenticating"
	"github.com/vfg2006/ad-transparency-api/internal/usecases/querying"
	"github.com/vfg2006/ad-transparency-api/internal/usecases/reporting"
	"github.com/vfg2006/ad-transparency-api/pkg/middleware"
)

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
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Ads(service querying.QueryService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ads/query",
			Method:      http.MethodPost,
			Handler:     QueryAds(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ads/:id",
			Method:      http.MethodGet,
			Handler:     GetAdDetail(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Advertisers(service querying.QueryService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/advertisers/query",
			Method:      http.MethodPost,
			Handler:     QueryAdvertisers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CommercialContents(service querying.QueryService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/commercial-content/query",
			Method:      http.MethodPost,
			Handler:     QueryCommercialContents(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Snapshots(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/snapshots",
			Method:      http.MethodGet,
			Handler:     ListAdSnapshots(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/snapshots/:ad_id",
			Method:      http.MethodGet,
			Handler:     GetAdSnapshot(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
