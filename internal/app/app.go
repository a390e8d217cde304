package app

import (
	"fmt"
	"net/http"

	"github.com/eclipsedgg/raidboard/external/blizzard"
	"github.com/eclipsedgg/raidboard/external/gsheets"
	"github.com/eclipsedgg/raidboard/external/raiderio"
	"github.com/eclipsedgg/raidboard/external/warcraftlogs"
	"github.com/eclipsedgg/raidboard/internal/config"
	"github.com/eclipsedgg/raidboard/internal/domain/snapshot"
	"github.com/eclipsedgg/raidboard/internal/domain/team"
	"github.com/eclipsedgg/raidboard/internal/infrastructure/repository/file"
	"github.com/eclipsedgg/raidboard/internal/infrastructure/repository/postgres"
	"github.com/eclipsedgg/raidboard/internal/interfaces/httpapi"
	idgen "github.com/eclipsedgg/raidboard/internal/platform/id"
	"github.com/eclipsedgg/raidboard/internal/platform/logging"
	"github.com/eclipsedgg/raidboard/internal/platform/resilience"
	"github.com/eclipsedgg/raidboard/internal/usecase"
)

// NewHTTPServer wires repositories, providers and services into the API
// server. The returned cleanup func releases the database handle when
// postgres persistence is enabled.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	teams, snapshots, cleanup, err := newRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	logs := newLogsProvider(cfg, logger)
	profile := newProfileProvider(cfg, logger)
	applicants := newApplicantSource(cfg, logger)

	guilds := raiderio.NewClient(raiderio.ClientConfig{
		BaseURL:  cfg.RaiderIOBaseURL,
		RaidSlug: cfg.RaiderIORaidSlug,
		Limit:    cfg.RaiderIOLimit,
		Timeout:  cfg.RaiderIOTimeout,
		Logger:   logger,
	})

	teamEditor := usecase.NewTeamEditorService(teams, logs, profile, idgen.NewUUIDGenerator(), logger)
	rosterSync := usecase.NewRosterSyncService(teams, logs, profile, usecase.RosterSyncConfig{
		BatchSize:  cfg.SyncBatchSize,
		BatchDelay: cfg.SyncBatchDelay,
	}, logger)
	community := usecase.NewCommunityService(snapshots, profile, logs, usecase.CommunityConfig{
		GuildRealm: cfg.GuildRealm,
		GuildName:  cfg.GuildName,
		Region:     cfg.GuildRegion,
	}, logger)
	dashboard := usecase.NewDashboardService(snapshots, applicants, guilds, cfg.GuildRegion, logger)

	handler := httpapi.NewHandler(teamEditor, rosterSync, community, dashboard, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.SyncToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		if cleanup != nil {
			_ = cleanup()
		}
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

// newRepositories picks the persistence backend. The JSON file store is the
// default; DB_URL switches team storage to postgres. Snapshot documents stay
// on the file store either way, they are read-mostly caches of provider data.
func newRepositories(cfg config.Config, logger *logging.Logger) (team.Repository, snapshot.Repository, func() error, error) {
	snapshots, err := file.NewSnapshotRepository(cfg.DataDir)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open snapshot store: %w", err)
	}

	if cfg.DBURL == "" {
		teams, err := file.NewTeamRepository(cfg.DataDir)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open team store: %w", err)
		}
		logger.Info("file team store enabled", "data_dir", cfg.DataDir)
		return teams, snapshots, func() error { return nil }, nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	logger.Info("postgres team store enabled", "database", dbNameFromURL(cfg.DBURL))

	return postgres.NewTeamRepository(db), snapshots, db.Close, nil
}

// newLogsProvider returns nil when no guild id is configured; services answer
// ErrDependencyUnavailable for operations that need combat-log data.
func newLogsProvider(cfg config.Config, logger *logging.Logger) usecase.LogsProvider {
	if cfg.WarcraftLogsGuildID == "" {
		logger.Warn("warcraftlogs disabled", "reason", "WARCRAFTLOGS_GUILD_ID empty")
		return nil
	}

	return warcraftlogs.NewClient(warcraftlogs.ClientConfig{
		BaseURL:     cfg.WarcraftLogsBaseURL,
		GuildID:     cfg.WarcraftLogsGuildID,
		GuildRegion: cfg.GuildRegion,
		GuildRealm:  cfg.GuildRealm,
		GuildName:   cfg.GuildName,
		Timeout:     cfg.WarcraftLogsTimeout,
		MaxRetries:  cfg.WarcraftLogsMaxRetries,
		Logger:      logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.WarcraftLogsCircuitEnabled,
			FailureThreshold: cfg.WarcraftLogsCircuitFailureCount,
			OpenTimeout:      cfg.WarcraftLogsCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.WarcraftLogsCircuitHalfOpenMax,
		},
	})
}

func newProfileProvider(cfg config.Config, logger *logging.Logger) usecase.ProfileProvider {
	if !cfg.BlizzardEnabled {
		logger.Info("blizzard api disabled", "reason", "BLIZZARD_ENABLED=false")
		return nil
	}

	return blizzard.NewClient(blizzard.ClientConfig{
		ClientID:     cfg.BlizzardClientID,
		ClientSecret: cfg.BlizzardClientSecret,
		Region:       cfg.GuildRegion,
		Locale:       cfg.BlizzardLocale,
		Timeout:      cfg.BlizzardTimeout,
		Logger:       logger,
	})
}

func newApplicantSource(cfg config.Config, logger *logging.Logger) usecase.ApplicantSource {
	if cfg.ApplicantsSheetURL == "" {
		logger.Info("applicant sheet disabled", "reason", "APPLICANTS_SHEET_URL empty")
		return nil
	}

	return gsheets.NewClient(gsheets.ClientConfig{
		CSVURL:  cfg.ApplicantsSheetURL,
		Timeout: cfg.ApplicantsTimeout,
		Logger:  logger,
	})
}
