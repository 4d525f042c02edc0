// File: cmd/server/wire.go
//go:build wireinject
// +build wireinject

package main

import (
	"page_insights_backend/internal/account"
	"page_insights_backend/internal/app"
	"page_insights_backend/internal/auth"
	"page_insights_backend/internal/config"
	"page_insights_backend/internal/graph"
	"page_insights_backend/internal/insights"
	"page_insights_backend/internal/jobs"
	"page_insights_backend/internal/platform/database"
	"page_insights_backend/internal/platform/logger"
	"page_insights_backend/internal/site"
	"page_insights_backend/internal/user"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// initializeServer is the main Wire injector.
func initializeServer(cfg *config.Config) (*app.Server, func(), error) {
	wire.Build(
		// Platform Layer
		provideLogger,
		database.NewMongo,
		wire.Bind(new(database.Pinger), new(*database.Mongo)),

		// Graph API
		graph.NewClient,
		wire.Bind(new(graph.API), new(*graph.Client)),

		// Auth
		auth.NewOAuthService,
		auth.NewHandler,

		// Profile, pages and insights
		account.NewHandler,
		insights.NewService,
		insights.NewHandler,

		// Users
		user.NewMongoRepository,
		user.NewService,
		wire.Bind(new(user.Service), new(*user.ServiceImplementation)),
		user.NewHandler,

		// Site and jobs
		site.NewHandler,
		jobs.NewConnectionMonitor,

		// Application Layer
		app.NewServer,
	)
	return nil, nil, nil
}

// provideLogger builds the root logger and flushes it on cleanup.
func provideLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	l, err := logger.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	return l, func() { logger.Sync(l) }, nil
}
