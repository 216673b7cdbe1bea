package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/handler"

	"github.com/voidcrew/startrack/startrack"
	"github.com/voidcrew/startrack/startrack/commands"
	"github.com/voidcrew/startrack/startrack/database"
	"github.com/voidcrew/startrack/startrack/database/repositories"
	"github.com/voidcrew/startrack/startrack/logger"
	"github.com/voidcrew/startrack/startrack/services"
	"github.com/voidcrew/startrack/startrack/web"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	shouldSyncCommands := flag.Bool("sync-commands", false, "Whether to sync commands to discord")
	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	cfg, err := startrack.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}

	slog.SetDefault(slog.New(logger.NewHandler(cfg.Log.Level)))
	slog.Info("Starting StarTrack",
		slog.String("version", version),
		slog.String("commit", commit))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dbStartTime := time.Now()
	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		slog.Error("Database connection failed",
			slog.Any("error", err),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(-1)
	}
	defer db.Close()

	if err := db.InitializeSchema(ctx); err != nil {
		slog.Error("Failed to initialize database schema", slog.Any("error", err))
		os.Exit(-1)
	}
	if err := db.SeedUniverseDefaults(ctx, cfg.Universe.Galaxies, cfg.Universe.Systems, cfg.Universe.GalaxyWrapped); err != nil {
		slog.Error("Failed to seed universe settings", slog.Any("error", err))
		os.Exit(-1)
	}
	slog.Info("Database ready",
		slog.String("type", "db"),
		slog.Duration("took", time.Since(dbStartTime)))

	b := startrack.New(*cfg, version, commit)
	b.DB = db

	b.PlayerRepository = repositories.NewPlayerRepository(db.BunDB())
	b.AllianceRepository = repositories.NewAllianceRepository(db.BunDB())
	b.PlanetRepository = repositories.NewPlanetRepository(db.BunDB())
	b.ScoreRepository = repositories.NewScoreRepository(db.BunDB())
	b.SpyReportRepo = repositories.NewSpyReportRepository(db.BunDB())
	b.BattleReportRepo = repositories.NewBattleReportRepository(db.BunDB())
	b.HostileSpyingRepo = repositories.NewHostileSpyingRepository(db.BunDB())
	b.UserRepository = repositories.NewUserRepository(db.BunDB())
	b.SettingRepository = repositories.NewSettingRepository(db.BunDB())

	expeditionRepo := repositories.NewExpeditionReportRepository(db.BunDB())
	recycleRepo := repositories.NewRecycleReportRepository(db.BunDB())
	messageRepo := repositories.NewMessageRepository(db.BunDB())
	statViewRepo := repositories.NewStatViewRepository(db.BunDB())
	hubRepo := repositories.NewHubRepository(db.BunDB())

	b.GalaxyService = services.NewGalaxyService(b.PlayerRepository, b.AllianceRepository, b.PlanetRepository)
	b.HubService = services.NewHubService(hubRepo, b.PlanetRepository, statViewRepo)
	b.ExportService = services.NewExportService(b.PlayerRepository, b.AllianceRepository, b.PlanetRepository)
	b.SearchService = services.NewSearchService(b.PlayerRepository)

	empireService := services.NewEmpireService(b.PlayerRepository, b.PlanetRepository)
	statisticsService := services.NewStatisticsService(b.PlayerRepository, b.AllianceRepository, b.ScoreRepository, statViewRepo)
	reportService := services.NewReportService(b.SpyReportRepo, b.BattleReportRepo, expeditionRepo, recycleRepo, b.HostileSpyingRepo, messageRepo)

	authenticator, err := web.NewAuthenticator(b.UserRepository)
	if err != nil {
		slog.Error("Failed to initialize authenticator", slog.Any("error", err))
		os.Exit(-1)
	}
	webApp := &web.App{
		Auth:          authenticator,
		Users:         b.UserRepository,
		Players:       b.PlayerRepository,
		Alliances:     b.AllianceRepository,
		Planets:       b.PlanetRepository,
		Scores:        b.ScoreRepository,
		SpyReports:    b.SpyReportRepo,
		BattleReports: b.BattleReportRepo,
		HostileSpying: b.HostileSpyingRepo,
		Settings:      b.SettingRepository,
		Galaxy:        b.GalaxyService,
		Empire:        empireService,
		Statistics:    statisticsService,
		Reports:       reportService,
		Hub:           b.HubService,
		Export:        b.ExportService,
		Version:       version,
	}
	server := webApp.NewServer()
	go func() {
		slog.Info("Starting web API", slog.String("type", "web"), slog.String("addr", cfg.Web.Addr))
		if err := server.Listen(cfg.Web.Addr); err != nil {
			slog.Error("Web server stopped", slog.String("type", "web"), slog.Any("error", err))
		}
	}()

	h := handler.New()
	h.Command("/galaxy", commands.GalaxyHandler(b))
	h.Command("/spy", commands.SpyHandler(b))
	h.Command("/farms", commands.FarmsHandler(b))
	h.Command("/newplanets", commands.NewPlanetsHandler(b))
	h.Command("/player", commands.PlayerHandler(b))
	h.Command("/export", commands.ExportHandler(b))
	h.Command("/users", commands.UsersHandler(b))

	if err = b.SetupBot(h, bot.NewListenerFunc(b.OnReady)); err != nil {
		slog.Error("Failed to setup bot", slog.Any("error", err))
		os.Exit(-1)
	}
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer closeCancel()
		b.Client.Close(closeCtx)
	}()

	if *shouldSyncCommands {
		slog.Info("Syncing commands", slog.Any("guild_ids", cfg.Bot.DevGuilds))
		if err = handler.SyncCommands(b.Client, commands.Commands, cfg.Bot.DevGuilds); err != nil {
			slog.Error("Failed to sync commands", slog.Any("error", err))
		}
	}

	gatewayCtx, gatewayCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer gatewayCancel()
	if err = b.Client.OpenGateway(gatewayCtx); err != nil {
		slog.Error("Failed to open gateway", slog.Any("error", err))
		os.Exit(-1)
	}

	slog.Info("StarTrack is running. Press CTRL-C to exit.")
	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)
	<-s

	slog.Info("Shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("Web server shutdown error", slog.Any("error", err))
	}
}
