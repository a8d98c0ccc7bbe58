// Package app wires the client together for the command surfaces: config,
// logger, durable store, API client, session manager, and the use cases.
package app

import (
	"fmt"

	authapp "deskline/internal/application/auth"
	authusecases "deskline/internal/application/auth/usecases"
	catalogusecases "deskline/internal/application/catalog/usecases"
	ticketusecases "deskline/internal/application/ticket/usecases"
	"deskline/internal/infrastructure/api"
	"deskline/internal/infrastructure/cache"
	"deskline/internal/infrastructure/config"
	"deskline/internal/infrastructure/store"
	"deskline/internal/shared/logger"
	"deskline/internal/shared/services/export"
)

// App holds the assembled dependency graph for one command invocation.
type App struct {
	Config   *config.Config
	Logger   logger.Interface
	Store    *store.Store
	Client   *api.Client
	Sessions *authapp.SessionManager
	Cache    *cache.TicketCache
	Export   export.ExportService

	Login          *authusecases.LoginUseCase
	Logout         *authusecases.LogoutUseCase
	ChangePassword *authusecases.ChangePasswordUseCase
	ForgotPassword *authusecases.ForgotPasswordUseCase
	ResetPassword  *authusecases.ResetPasswordUseCase
	GetProfile     *authusecases.GetProfileUseCase
	UpdateProfile  *authusecases.UpdateProfileUseCase
	UploadAvatar   *authusecases.UploadAvatarUseCase

	ListProviders *catalogusecases.ListProvidersUseCase
	ListServices  *catalogusecases.ListServicesUseCase

	ListTickets     *ticketusecases.ListTicketsUseCase
	GetTicket       *ticketusecases.GetTicketUseCase
	CreateTicket    *ticketusecases.CreateTicketUseCase
	UpdateTicket    *ticketusecases.UpdateTicketUseCase
	DeleteTicket    *ticketusecases.DeleteTicketUseCase
	DeleteDocument  *ticketusecases.DeleteDocumentUseCase
	DashboardCounts *ticketusecases.GetDashboardCountsUseCase
}

// New loads configuration, initializes logging, opens the local store and
// assembles the full graph.
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	st, err := store.Open(cfg.State.Dir, cfg.State.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	sessions := authapp.NewSessionManager(st, log)

	client := api.NewClient(cfg.API.BaseURL, sessions.Token,
		api.WithTimeout(cfg.API.Timeout()),
		api.WithLogger(log))

	pageCache := cache.NewTicketCache()

	a := &App{
		Config:   cfg,
		Logger:   log,
		Store:    st,
		Client:   client,
		Sessions: sessions,
		Cache:    pageCache,
		Export:   export.NewExportService(),
	}

	a.Login = authusecases.NewLoginUseCase(client, sessions, log)
	a.Logout = authusecases.NewLogoutUseCase(sessions, log)
	a.ChangePassword = authusecases.NewChangePasswordUseCase(client, sessions, log)
	a.ForgotPassword = authusecases.NewForgotPasswordUseCase(client, log)
	a.ResetPassword = authusecases.NewResetPasswordUseCase(client, log)
	a.GetProfile = authusecases.NewGetProfileUseCase(client, sessions, log)
	a.UpdateProfile = authusecases.NewUpdateProfileUseCase(client, sessions, log)
	a.UploadAvatar = authusecases.NewUploadAvatarUseCase(client, sessions, log)

	a.ListProviders = catalogusecases.NewListProvidersUseCase(client, log)
	a.ListServices = catalogusecases.NewListServicesUseCase(client, log)

	a.ListTickets = ticketusecases.NewListTicketsUseCase(client, pageCache, st, log)
	a.GetTicket = ticketusecases.NewGetTicketUseCase(client, log)
	a.CreateTicket = ticketusecases.NewCreateTicketUseCase(client, pageCache, log)
	a.UpdateTicket = ticketusecases.NewUpdateTicketUseCase(client, pageCache, log)
	a.DeleteTicket = ticketusecases.NewDeleteTicketUseCase(client, pageCache, log)
	a.DeleteDocument = ticketusecases.NewDeleteDocumentUseCase(client, pageCache, log)
	a.DashboardCounts = ticketusecases.NewGetDashboardCountsUseCase(client, st, log)

	return a, nil
}

// Close releases the local store.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
