package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/spigell/career-mentor/internal/ai/gemini"
	"github.com/spigell/career-mentor/internal/careers"
	"github.com/spigell/career-mentor/internal/chat"
	"github.com/spigell/career-mentor/internal/history"
	"github.com/spigell/career-mentor/internal/insights"
	"github.com/spigell/career-mentor/internal/logger"
	"github.com/spigell/career-mentor/internal/model"
	"github.com/spigell/career-mentor/internal/ranking"
	"github.com/spigell/career-mentor/internal/secrets"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// application holds the components shared by the commands.
type application struct {
	config   *Config
	logger   *zap.Logger
	fs       afero.Fs
	catalog  *careers.Catalog
	cache    *model.Cache
	engine   *ranking.Engine
	insights *insights.Catalog
	store    *history.Store
}

// setup builds the logger, reads the config and wires the model. Any failure
// is fatal. Logs go to the given outputs (stdout by default).
func setup(outputs ...string) *application {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"), outputs...)
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	a := &application{
		config:   config,
		logger:   logger,
		fs:       afero.NewOsFs(),
		catalog:  careers.Default(),
		insights: insights.Default(),
	}

	if config.InsightsFile != "" {
		a.insights, err = insights.LoadFile(a.fs, config.InsightsFile)
		if err != nil {
			logger.Fatal("loading career insights", zap.Error(err))
		}
	}

	trainer := model.NewSyntheticTrainer(a.catalog, model.TrainConfig{
		Seed:             config.Model.Seed,
		SamplesPerCareer: config.Model.SamplesPerCareer,
		MaxIterations:    config.Model.MaxIterations,
	}, logger)

	a.cache, err = model.NewCache(config.ArtifactPath, a.catalog.Names(), careers.FeatureCount, model.CacheDeps{
		Fs:      a.fs,
		Trainer: trainer,
		Logger:  logger,
	})
	if err != nil {
		logger.Fatal("creating model cache", zap.Error(err))
	}

	a.engine = ranking.NewEngine(a.catalog, a.cache, logger)

	return a
}

// history opens the assessment store on first use.
func (a *application) history(ctx context.Context) *history.Store {
	if a.store != nil {
		return a.store
	}

	store, err := history.Open(ctx, a.config.HistoryDB, a.logger)
	if err != nil {
		a.logger.Fatal("opening history", zap.Error(err), zap.String("path", a.config.HistoryDB))
	}
	a.store = store
	return store
}

// bot builds the chat bot with the user's history and, when enabled, the
// Gemini answerer.
func (a *application) bot(ctx context.Context) *chat.Bot {
	opts := []chat.Option{chat.WithHistory(a.history(ctx))}

	if answerer := a.answerer(ctx); answerer != nil {
		opts = append(opts, chat.WithAnswerer(answerer))
	}

	return chat.New(chat.Deps{
		Catalog:  a.catalog,
		Insights: a.insights,
		Logger:   a.logger,
	}, opts...)
}

func (a *application) answerer(ctx context.Context) chat.Answerer {
	ai := a.config.AI
	if ai == nil || !ai.Enabled {
		return nil
	}

	cfg := ai.Gemini
	if cfg == nil {
		cfg = &GeminiConfig{}
	}

	key, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: cfg.APIKey,
		File:  cfg.APIKeyFile,
		Env:   "GEMINI_API_KEY",
	})
	if err != nil {
		a.logger.Warn("chat fallback disabled",
			zap.Error(err),
			zap.String("hint", "set GEMINI_API_KEY_FILE or ai.gemini.api-key-file"),
		)
		return nil
	}

	generator, err := gemini.NewGenerator(ctx, key, cfg.Model, cfg.MaxRetries, a.logger)
	if err != nil {
		a.logger.Warn("chat fallback disabled", zap.Error(err))
		return nil
	}

	a.logger.Debug("chat fallback enabled", logger.AIFields(gemini.Provider, generator.Model())...)
	return gemini.NewAdvisor(generator, a.logger, cfg.MaxLogLength)
}

func (a *application) close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("closing history", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}
