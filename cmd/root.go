package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/mentorai/internal/cache"
	"github.com/abhisek/mentorai/internal/config"
	"github.com/abhisek/mentorai/internal/llm"
	"github.com/abhisek/mentorai/internal/logging"
	"github.com/abhisek/mentorai/internal/session"
	"github.com/abhisek/mentorai/internal/store"
)

// cfg is the merged configuration, loaded before every command runs.
var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "mentorai",
	Short: "AI study companion: summaries, quizzes and coaching",
	Long: "MentorAI turns course documents into summaries and quizzes, scores your answers\n" +
		"and tracks your progress over time.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides MENTORAI_DB env var)")
	pf.String("config", "", "Path to YAML config file (overrides MENTORAI_CONFIG env var)")
	pf.String("log-level", "warn", "Log level: debug, info, warn, error")
	pf.String("log-format", "pretty", "Log format: pretty or json")

	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(docCmd)
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(providerCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads .env and the config file, then attaches a logger to the
// command context.
func setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}
	loaded, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	loaded.ApplyEnv()
	cfg = loaded

	level := logSetting(cmd, "log-level", "MENTORAI_LOG_LEVEL", cfg.Log.Level)
	format := logSetting(cmd, "log-format", "MENTORAI_LOG_FORMAT", cfg.Log.Format)
	logger := logging.Setup(level, format, os.Stderr)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logger.WithContext(ctx))
	return nil
}

// logSetting picks an explicit flag, then the env var, then the flag
// default. The config file value only applies when the env var set it.
func logSetting(cmd *cobra.Command, flag, env, fromConfig string) string {
	v, _ := cmd.Flags().GetString(flag)
	if cmd.Flags().Changed(flag) {
		return v
	}
	if os.Getenv(env) != "" {
		return fromConfig
	}
	return v
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MENTORAI_DB or the config file, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.Data.DBPath != "" {
		return cfg.Data.DBPath, store.EnsureDir(cfg.Data.DBPath)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// newCache returns Redis when configured and reachable, otherwise an
// in-process cache. The returned func releases the client.
func newCache(ctx context.Context) (cache.Cache, func()) {
	if cfg.Cache.RedisAddr == "" {
		return cache.NewMemory(), func() {}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.RedisAddr,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
	})
	rc := cache.NewRedis(client, cache.DefaultPrefix)
	if err := rc.Ping(ctx); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("addr", cfg.Cache.RedisAddr).
			Msg("redis unreachable, using in-memory cache")
		client.Close()
		return cache.NewMemory(), func() {}
	}
	return rc, func() { client.Close() }
}

// newProvider builds the configured LLM provider with response caching
// and event logging into st.
func newProvider(ctx context.Context, st *store.Store, c cache.Cache) (llm.Provider, error) {
	lcfg := llm.ConfigFromEnv()
	lcfg.Cache.TTL = cfg.CacheTTL()
	if err := lcfg.Validate(); err != nil {
		return nil, fmt.Errorf("LLM provider not configured: %w", err)
	}
	return llm.NewProvider(ctx, lcfg, st.EventRepo(), llm.WithResponseCache(c))
}

// loadProfile returns the saved profile, or the default one.
func loadProfile(ctx context.Context, st *store.Store) (session.Profile, error) {
	pd, err := st.ProfileRepo().LoadProfile(ctx)
	if err != nil {
		return session.Profile{}, fmt.Errorf("load profile: %w", err)
	}
	if pd.Role == "" {
		return session.DefaultProfile(), nil
	}
	return session.Profile{Role: pd.Role, Discipline: pd.Discipline, Level: pd.Level}, nil
}
