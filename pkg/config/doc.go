// Package config loads configuration from environment variables.
//
// Load parses any struct annotated with caarlos0/env tags and caches the
// result per type, loading the default .env file first when present. LoadEnv
// loads extra .env files and ResetCache clears the cache between tests.
// Validate checks go-playground/validator tags on a loaded struct.
//
// Settings describes the formkit binaries: password policy, URL policy,
// logging and an optional message overrides file, all under the FORMKIT_
// prefix.
//
//	settings, err := config.LoadSettings()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	reg, err := settings.Registry(ctx, logger)
//
// Notable variables:
//
//	FORMKIT_PASSWORD_MIN_LENGTH   minimum password length (12)
//	FORMKIT_URL_SCHEMES           comma separated schemes (http,https,ftp,ftps)
//	FORMKIT_URL_PROTOCOL          none, relative or absolute (absolute)
//	FORMKIT_URL_DNS_TYPE          record type checked for URL hosts (none)
//	FORMKIT_MESSAGES_FILE         YAML or JSON message overrides
//	FORMKIT_LOG_LEVEL             debug, info, warn or error (info)
package config
