// Package cli implements the unisearch command line interface.
// Commands share one set of services wired from configuration in the
// root command's persistent pre-run.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	configfile "github.com/custodia-labs/unisearch/internal/adapters/driven/config/file"
	i18nfile "github.com/custodia-labs/unisearch/internal/adapters/driven/i18n/file"
	"github.com/custodia-labs/unisearch/internal/adapters/driven/navigate"
	"github.com/custodia-labs/unisearch/internal/adapters/driven/provider/local"
	"github.com/custodia-labs/unisearch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/unisearch/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/unisearch/internal/core/domain"
	"github.com/custodia-labs/unisearch/internal/core/ports/driven"
	"github.com/custodia-labs/unisearch/internal/core/ports/driving"
	"github.com/custodia-labs/unisearch/internal/core/services"
	"github.com/custodia-labs/unisearch/internal/logger"
)

// version is overridden at build time via ldflags.
var version = "0.1.0"

// Persistent flag values.
var (
	flagVerbose bool
	flagConfig  string
	flagBaseURL string
	flagMemory  bool
)

// Shared services, wired by initServices. Tests inject their own and
// set wired to true to skip the default wiring.
var (
	wired bool

	appSettings      domain.AppSettings
	searchService    driving.SearchService
	actionService    driving.ResultActionService
	analyticsService *services.AnalyticsService
	historyStore     driven.HistoryStore
	recordStore      driven.RecordStore
	translator       driven.Translator

	// shutdown releases wiring-owned resources, nil until wired.
	shutdown func()
)

var rootCmd = &cobra.Command{
	Use:   "unisearch",
	Short: "Search across courses, lessons, posts, and people",
	Long: `unisearch is a universal search client for the learning platform.

It searches a local corpus of courses, lessons, posts, comments, users,
classrooms, groups, notes, quizzes, tutors, and announcements, ranks
hits by match quality, and resolves every result to a navigation path.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config directory (default ~/.unisearch)")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "platform base URL for opening results")
	rootCmd.PersistentFlags().BoolVar(&flagMemory, "memory", false, "use in-memory storage instead of sqlite")
}

// Execute runs the root command.
func Execute() error {
	defer func() {
		if shutdown != nil {
			shutdown()
		}
	}()
	return rootCmd.Execute()
}

// initServices wires configuration, storage, the local provider, and
// the core services. Idempotent; wiring survives across commands in a
// single process.
func initServices() error {
	if wired {
		return nil
	}

	cfg, err := configfile.NewConfigStore(flagConfig)
	if err != nil {
		return err
	}
	appSettings = cfg.Settings()
	logger.Debug("config loaded from %s", cfg.Path())

	var searchLog driven.SearchLogStore
	var closeStore func()

	if flagMemory {
		historyStore = memory.NewHistoryStore()
		searchLog = memory.NewSearchLogStore()
		recordStore = memory.NewRecordStore()
	} else {
		store, err := sqlite.NewStore(appSettings.Storage.DatabasePath)
		if err != nil {
			return err
		}
		logger.Debug("sqlite store at %s", store.Path())
		historyStore = store.HistoryStore()
		searchLog = store.SearchLogStore()
		recordStore = store.RecordStore()
		closeStore = func() { _ = store.Close() }
	}

	if !appSettings.History.Persist {
		// History stays session-scoped unless opted in.
		historyStore = memory.NewHistoryStore()
	}

	analyticsService = services.NewAnalyticsService(searchLog)

	provider := local.NewProvider(recordStore)
	searchOpts := []services.SearchOption{
		services.WithMinQueryLength(appSettings.Search.MinQueryLength),
		services.WithExcerptSettings(appSettings.Excerpt.MaxLength, appSettings.Excerpt.ContextRadius),
		services.WithAnalytics(analyticsService),
	}
	if appSettings.Search.RatePerSecond > 0 {
		searchOpts = append(searchOpts, services.WithRateLimit(float64(appSettings.Search.RatePerSecond), appSettings.Search.RateBurst))
	}
	searchService = services.NewSearchService(provider, searchOpts...)

	var navigator driven.Navigator = navigate.NewNullNavigator()
	if flagBaseURL != "" {
		navigator = navigate.NewBrowserNavigator(flagBaseURL)
	}
	actionService = services.NewResultActions(navigator, analyticsService)

	var closeTranslator func()
	if dir := appSettings.UI.TranslationsPath; dir != "" {
		tr, err := i18nfile.NewTranslator(dir, appSettings.UI.Language)
		if err != nil {
			logger.Warn("loading translations: %v", err)
		} else {
			translator = tr
			closeTranslator = func() { _ = tr.Close() }
		}
	}

	shutdown = func() {
		if closeTranslator != nil {
			closeTranslator()
		}
		if closeStore != nil {
			closeStore()
		}
	}
	wired = true
	return nil
}

// searchFilters derives provider filters from settings plus the given
// overrides.
func searchFilters(searchContext string, types []string, limit int) (domain.SearchFilters, error) {
	filters := domain.SearchFilters{
		Context: appSettings.Search.Context,
		Limit:   appSettings.Search.Limit,
	}
	if filters.Context == "" {
		filters.Context = domain.ContextGeneral
	}

	if searchContext != "" {
		ctx := domain.SearchContext(searchContext)
		if !ctx.IsValid() {
			return domain.SearchFilters{}, fmt.Errorf("%w: unknown context %q", domain.ErrInvalidInput, searchContext)
		}
		filters.Context = ctx
	}
	for _, t := range types {
		ct := domain.ContentType(t)
		if !ct.IsValid() {
			return domain.SearchFilters{}, fmt.Errorf("%w: unknown content type %q", domain.ErrInvalidInput, t)
		}
		filters.ContentTypes = append(filters.ContentTypes, ct)
	}
	if limit > 0 {
		filters.Limit = limit
	}
	return filters, nil
}
