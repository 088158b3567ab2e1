// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 storm-lzy

// Package client assembles the full application stack for the two
// console binaries: config, logger, credential store, request facade,
// session authority, and the domain API services.
package client

import (
	"context"
	"fmt"
	"os"

	"github.com/storm-lzy/oxex-horses/internal/adapter"
	"github.com/storm-lzy/oxex-horses/internal/api"
	"github.com/storm-lzy/oxex-horses/internal/config"
	"github.com/storm-lzy/oxex-horses/internal/logger"
	"github.com/storm-lzy/oxex-horses/internal/session"
	"github.com/storm-lzy/oxex-horses/internal/store"
)

// App is one wired deployment. The end-user client and the admin console
// are two App instances with distinct base URLs and credential slots.
type App struct {
	cfg        *config.ClientConfig
	logger     *logger.Logger
	redirector *LoginRedirector

	Client  *adapter.Client
	Session *session.Session
	API     *api.API
	Admin   *api.AdminAPI
}

// New builds an App for the given deployment
// ([config.DeploymentClient] or [config.DeploymentAdmin]).
func New(deployment string) (*App, error) {
	cfg, err := config.GetClientConfig(deployment)
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.New(deployment, os.Stdout)
	redirector := NewLoginRedirector(log)

	tokens, err := store.NewFileTokenStore(cfg.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("create token store: %w", err)
	}

	cli, err := adapter.NewClient(adapter.Config{
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.RequestTimeout,
		Store:     tokens,
		Notifier:  adapter.NotifierFunc(func(msg string) { log.Warn().Str("notice", msg).Msg("request notice") }),
		Navigator: redirector,
		Logger:    log,
	})
	if err != nil {
		return nil, fmt.Errorf("create api client: %w", err)
	}

	app := &App{
		cfg:        cfg,
		logger:     log,
		redirector: redirector,
		Client:     cli,
		Session:    session.New(cli, log),
	}

	switch deployment {
	case config.DeploymentAdmin:
		app.Admin = api.NewAdmin(cli)
	default:
		app.API = api.New(cli)
	}

	return app, nil
}

// Run executes the deployment's smoke flow: restore or establish a
// session, then fetch and print a small slice of live data. Credentials
// for a fresh login come from OXEX_USERNAME / OXEX_PASSWORD.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().
		Str("version", a.cfg.Version).
		Str("base_url", a.cfg.BaseURL).
		Msg("starting")

	if a.Session.Restore() {
		if err := a.Session.FetchProfile(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("stored session rejected")
		}
	}

	if !a.Session.IsLoggedIn() {
		username := os.Getenv("OXEX_USERNAME")
		password := os.Getenv("OXEX_PASSWORD")
		if username == "" {
			return fmt.Errorf("not logged in: set OXEX_USERNAME and OXEX_PASSWORD")
		}
		if _, err := a.Session.Login(ctx, username, password); err != nil {
			return fmt.Errorf("login: %w", err)
		}
		a.redirector.Reset()
	}

	if user, ok := a.Session.CurrentUser(); ok {
		fmt.Printf("logged in as %s (%s)\n", user.Username, a.Session.LevelName())
	}

	if a.Admin != nil {
		return a.runAdmin(ctx)
	}
	return a.runClient(ctx)
}

func (a *App) runClient(ctx context.Context) error {
	feed, err := a.API.Posts.List(ctx, api.PostListParams{PageParams: api.PageParams{Page: 1, Size: 10}})
	if err != nil {
		return fmt.Errorf("list posts: %w", err)
	}

	fmt.Printf("latest posts (%d total):\n", feed.Total)
	for _, p := range feed.List {
		fmt.Printf("  #%d %s\n", p.ID, p.Title)
	}
	return nil
}

func (a *App) runAdmin(ctx context.Context) error {
	stats, err := a.Admin.DashboardStats(ctx)
	if err != nil {
		return fmt.Errorf("dashboard stats: %w", err)
	}

	fmt.Printf("users=%d posts=%d companies=%d comments=%d\n",
		stats.Totals.Users, stats.Totals.Posts, stats.Totals.Companies, stats.Totals.Comments)
	return nil
}
