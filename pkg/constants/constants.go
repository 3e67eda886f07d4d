package constants

const (
	AppName = "agrolytics"

	ConfigName   = "config"
	ConfigFormat = "yaml"
	EnvPrefix    = "AGROLYTICS"
)
