package config

// EnvPrefix is passed to envconfig; variable names are spelled out in full on
// each field, so the prefix stays empty.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "NETTORIA_DB_DSN"
	EnvDBHost = "NETTORIA_DB_HOST"
	EnvDBUser = "NETTORIA_DB_USER"
	EnvDBName = "NETTORIA_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
