package httpserver

import "time"

// Config is the environment configuration of the validation server.
type Config struct {
	Addr            string        `env:"FORMKIT_HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"FORMKIT_HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"FORMKIT_HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"FORMKIT_HTTP_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"FORMKIT_HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	MaxBodyBytes    int64         `env:"FORMKIT_HTTP_MAX_BODY_BYTES" envDefault:"65536"`
	RateLimit       int           `env:"FORMKIT_HTTP_RATE_LIMIT" envDefault:"0"`
	RateBurst       int           `env:"FORMKIT_HTTP_RATE_BURST" envDefault:"0"`
}

// NewFromConfig creates a new Server from the provided Config.
// Only non-zero values from the config are applied.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	configOpts := make([]Option, 0, 5+len(opts))

	if cfg.Addr != "" {
		configOpts = append(configOpts, WithAddr(cfg.Addr))
	}
	if cfg.ReadTimeout > 0 {
		configOpts = append(configOpts, WithReadTimeout(cfg.ReadTimeout))
	}
	if cfg.WriteTimeout > 0 {
		configOpts = append(configOpts, WithWriteTimeout(cfg.WriteTimeout))
	}
	if cfg.IdleTimeout > 0 {
		configOpts = append(configOpts, WithIdleTimeout(cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout > 0 {
		configOpts = append(configOpts, WithShutdownTimeout(cfg.ShutdownTimeout))
	}

	configOpts = append(configOpts, opts...)
	return New(configOpts...)
}
