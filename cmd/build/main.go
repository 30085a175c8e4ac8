package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/rendau/jobly/internal/adapters/cache"
	cacheMem "github.com/rendau/jobly/internal/adapters/cache/mem"
	cacheRedis "github.com/rendau/jobly/internal/adapters/cache/redis"
	"github.com/rendau/jobly/internal/adapters/db/pg"
	"github.com/rendau/jobly/internal/adapters/jwt"
	"github.com/rendau/jobly/internal/adapters/jwt/jwks"
	"github.com/rendau/jobly/internal/adapters/jwt/jwts"
	"github.com/rendau/jobly/internal/adapters/logger/zap"
	"github.com/rendau/jobly/internal/adapters/server/https"
	"github.com/rendau/jobly/internal/api/rest"
	"github.com/rendau/jobly/internal/cns"
	"github.com/rendau/jobly/internal/domain/core"
	repoPg "github.com/rendau/jobly/internal/repo/pg"
	"github.com/rendau/jobly/internal/tools"
)

type confSt struct {
	Debug      bool   `mapstructure:"DEBUG"`
	LogLevel   string `mapstructure:"LOG_LEVEL"`
	HttpListen string `mapstructure:"HTTP_LISTEN"`

	PgDsn string `mapstructure:"PG_DSN"`

	RedisUrl string `mapstructure:"REDIS_URL"`
	RedisPsw string `mapstructure:"REDIS_PSW"`
	RedisDb  int    `mapstructure:"REDIS_DB"`

	JwtSecret       string `mapstructure:"JWT_SECRET"`
	JwksUrl         string `mapstructure:"JWKS_URL"`
	TokenExpSeconds int64  `mapstructure:"TOKEN_EXP_SECONDS"`
}

func loadConf() *confSt {
	conf := &confSt{}

	_ = godotenv.Load()

	tools.SetViperDefaultsFromObj(conf)

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("HTTP_LISTEN", ":9090")

	viper.AutomaticEnv()

	_ = viper.Unmarshal(conf)

	return conf
}

func main() {
	conf := loadConf()

	lg := zap.New(conf.LogLevel, conf.Debug)

	db, err := pg.New(conf.Debug, lg, pg.OptionsSt{
		Dsn: conf.PgDsn,
	})
	if err != nil {
		lg.Fatalw("Fail to create pg", err)
	}

	var cch cache.Cache
	if conf.RedisUrl != "" {
		cch = cacheRedis.New(lg, conf.RedisUrl, conf.RedisPsw, conf.RedisDb, cns.AppName+":")
	} else {
		cch = cacheMem.New()
	}

	jwtSigner := jwts.New(conf.JwtSecret)

	var jwtValidator jwt.Validator = jwtSigner
	if conf.JwksUrl != "" {
		jwtValidator, err = jwks.NewByUrl(lg, conf.JwksUrl, time.Hour)
		if err != nil {
			lg.Fatalw("Fail to create jwks validator", err)
		}
	}

	cr := core.New(core.OptionsSt{
		Lg:              lg,
		Cache:           cch,
		Jwt:             jwtSigner,
		JwtValidator:    jwtValidator,
		TokenExpSeconds: conf.TokenExpSeconds,

		CompanyRepo: repoPg.NewCompany(db),
		JobRepo:     repoPg.NewJob(db),
		UserRepo:    repoPg.NewUser(db),
	})

	server := https.Start(conf.HttpListen, rest.Router(lg, cr, conf.Debug), lg)

	var exitCode int

	select {
	case <-tools.StopSignal():
	case <-server.Wait():
		exitCode = 1
	}

	lg.Infow("Shutting down...")

	if !server.Shutdown(20 * time.Second) {
		exitCode = 1
	}

	lg.Infow("Exit")

	lg.Sync()

	os.Exit(exitCode)
}
