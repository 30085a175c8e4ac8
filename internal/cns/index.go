package cns

import "time"

const (
	AppName = "jobly"

	TokenHeaderKey = "Authorization"
	TokenPrefix    = "Bearer "

	DefaultTokenExpSeconds int64 = 24 * 60 * 60

	CompanyCacheTtl = 5 * time.Minute
)
