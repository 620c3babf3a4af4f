package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-hub-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-hub-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-hub-api/internal/usecases/connecting"
	"github.com/vfg2006/campaign-hub-api/internal/usecases/distributing"
	"github.com/vfg2006/campaign-hub-api/pkg/middleware"
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
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Campaigns(service distributing.Orchestrator, connections connecting.ConnectionService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns/distribute",
			Method:      http.MethodPost,
			Handler:     DistributeCampaign(service, connections),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/validate",
			Method:      http.MethodPost,
			Handler:     ValidateCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/distributions",
			Method:      http.MethodGet,
			Handler:     ListDistributions(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Platforms(service connecting.ConnectionService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/platforms",
			Method:      http.MethodGet,
			Handler:     ListPlatformStatuses(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/platforms/:platform/status",
			Method:      http.MethodGet,
			Handler:     GetPlatformStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/platforms/:platform/credentials",
			Method:      http.MethodPut,
			Handler:     SaveCredential(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/platforms/:platform/credentials",
			Method:      http.MethodDelete,
			Handler:     DeleteCredential(service),
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
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
