package container

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/shopcart-api/config"
	repo "github.com/oksasatya/shopcart-api/internal/domain/repository"
	"github.com/oksasatya/shopcart-api/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	store       repo.Store
	redisClient *redis.Client

	jwtManager *helpers.JWTManager
	rabbitPub  *helpers.RabbitPublisher
	gatherer   prometheus.Gatherer
)

func SetConfig(c *config.Config)   { cfg = c }
func GetConfig() *config.Config    { return cfg }
func SetLogger(l *logrus.Logger)   { logger = l }
func SetStore(s repo.Store)        { store = s }
func GetStore() repo.Store         { return store }
func SetRedis(r *redis.Client)     { redisClient = r }
func GetRedis() *redis.Client      { return redisClient }
func SetJWT(m *helpers.JWTManager) { jwtManager = m }
func GetJWT() *helpers.JWTManager  { return jwtManager }

func GetLogger() *logrus.Logger {
	if logger != nil {
		return logger
	}
	return logrus.StandardLogger()
}

func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher  { return rabbitPub }

func SetGatherer(g prometheus.Gatherer) { gatherer = g }
func GetGatherer() prometheus.Gatherer  { return gatherer }
