package pg

import (
	"regexp"
	"time"
)

const ErrPrefix = "pg-error"

var defaultOptions = OptionsSt{
	Timezone:          "UTC",
	MaxConns:          100,
	MinConns:          5,
	MaxConnLifetime:   30 * time.Minute,
	MaxConnIdleTime:   15 * time.Minute,
	HealthCheckPeriod: 20 * time.Second,
}

var queryParamRegexp = regexp.MustCompile(`(?si)\$\{[^}]+\}`)
