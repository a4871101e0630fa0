package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

type Config struct {
	CockroachURL      string        `ff:"long: cockroach-url, default: postgresql://root@127.0.0.1:26257/defaultdb?sslmode=disable, usage: URL for the CockroachDB database"`
	Port              uint32        `ff:"long: port, short: p, default: 4444, usage: Port for the HTTP server"`
	NATSURL           string        `ff:"long: nats-url, usage: NATS server URL; notifications stay in-process when empty"`
	TokenKey          string        `ff:"long: token-key, usage: 32 bytes key to read branca auth tokens"`
	TokenTTL          time.Duration `ff:"long: token-ttl, default: 720h, usage: Max age of auth tokens; 0 disables the check"`
	BackgroundTimeout time.Duration `ff:"long: background-timeout, default: 15s, usage: Timeout for background mention notification"`
	RosterConcurrency int           `ff:"long: roster-concurrency, default: 8, usage: Max concurrent profile lookups when rebuilding a roster"`
	AggregateRoster   bool          `ff:"long: aggregate-roster, default: true, usage: Resolve rosters with the participants-with-profiles lookup first"`
	ProfileCacheSize  int           `ff:"long: profile-cache-size, default: 1024, usage: Max cached profiles; 0 disables the cache"`
	ProfileCacheTTL   time.Duration `ff:"long: profile-cache-ttl, default: 30s, usage: How long a profile stays cached"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	fs := ff.NewFlagSetFrom("gigchat", &cfg)
	err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("GIGCHAT"))
	if errors.Is(err, ff.ErrHelp) {
		fmt.Println(ffhelp.Flags(fs))
		os.Exit(0)
	}

	if err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func (cfg Config) Validate() error {
	if len(cfg.TokenKey) != 32 {
		return errors.New("token key must be 32 bytes long")
	}

	if cfg.RosterConcurrency < 1 {
		return errors.New("roster concurrency must be greater than 0")
	}

	if cfg.BackgroundTimeout <= 0 {
		return errors.New("background timeout must be greater than 0")
	}

	return nil
}
