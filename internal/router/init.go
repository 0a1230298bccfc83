package router

import (
	"github.com/oksasatya/shopcart-api/internal/application"
	"github.com/oksasatya/shopcart-api/internal/container"
	"github.com/oksasatya/shopcart-api/internal/infrastructure/redisstore"
	handlers "github.com/oksasatya/shopcart-api/internal/interface/http"
	"github.com/oksasatya/shopcart-api/internal/router/modules"
)

type AuthModuleDeps struct {
	Service *application.AuthService
	Handler *handlers.AuthHandler
}

type CartModuleDeps struct {
	Service *application.CartService
	Handler *handlers.CartHandler
}

func buildNotifier() application.ResetNotifier {
	logger := container.GetLogger()
	cfg := container.GetConfig()
	notifiers := application.MultiNotifier{application.LogNotifier{Logger: logger}}
	if pub := container.GetRabbitPub(); pub != nil && cfg.MailSendEnabled {
		notifiers = append(notifiers, application.QueueNotifier{
			Pub:         pub,
			CompanyName: cfg.CompanyName,
			SupportURL:  cfg.SupportURL,
		})
	}
	return notifiers
}

func buildAuthDeps() AuthModuleDeps {
	cfg := container.GetConfig()

	var index application.ResetIndex
	if rdb := container.GetRedis(); rdb != nil {
		index = redisstore.NewResetIndex(rdb)
	}

	service := application.NewAuthService(
		container.GetStore(),
		container.GetJWT(),
		index,
		buildNotifier(),
		container.GetLogger(),
		application.AuthConfig{
			BcryptCost:    cfg.BcryptCost,
			ResetTokenTTL: cfg.ResetTokenTTL,
			ResetURL:      cfg.ResetPasswordURL,
		},
	)
	return AuthModuleDeps{
		Service: service,
		Handler: handlers.NewAuthHandler(service, container.GetLogger()),
	}
}

func buildCartDeps() CartModuleDeps {
	service := application.NewCartService(container.GetStore(), container.GetLogger())
	return CartModuleDeps{
		Service: service,
		Handler: handlers.NewCartHandler(service, container.GetLogger()),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup, after the container is filled.
func InitModules(r *Registry) {
	authDeps := buildAuthDeps()
	cartDeps := buildCartDeps()

	r.Add(modules.NewHealthModule())
	r.Add(modules.NewAuthModule(authDeps.Handler))
	r.Add(modules.NewCartModule(cartDeps.Handler, authDeps.Service))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
	if g := container.GetGatherer(); g != nil && container.GetConfig().MetricsEnabled {
		r.Add(modules.NewMetricsModule(g))
	}
}
