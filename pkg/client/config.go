// Copyright 2023 The jackal Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package client

import (
	"path/filepath"
	"time"

	"github.com/kkyr/fig"
)

// TLSConfig contains STARTTLS negotiation options.
type TLSConfig struct {
	// InsecureSkipVerify disables server certificate verification.
	InsecureSkipVerify bool `fig:"insecure_skip_verify"`

	// CACertFile is an optional PEM encoded file used to verify the server certificate.
	CACertFile string `fig:"ca_cert_file"`
}

// RateLimitConfig bounds the inbound read rate.
type RateLimitConfig struct {
	Limit float64 `fig:"limit"`
	Burst int     `fig:"burst"`
}

// LoggerConfig contains logger options.
type LoggerConfig struct {
	Level  string `fig:"level" default:"info"`
	Format string `fig:"format" default:"logfmt"`
}

// Config contains client configuration parameters.
type Config struct {
	JID      string `fig:"jid" validate:"required"`
	Password string `fig:"password"`

	// Address overrides SRV resolution of the jid domain.
	Address string `fig:"address"`
	Lang    string `fig:"lang" default:"en"`

	ConnectTimeout time.Duration `fig:"connect_timeout" default:"5s"`
	ReadTimeout    time.Duration `fig:"read_timeout" default:"60s"`
	RequestTimeout time.Duration `fig:"request_timeout" default:"15s"`
	MaxStanzaSize  int           `fig:"max_stanza_size" default:"131072"`

	// LingerTimeout bounds the wait for replies that may never arrive, such as the answer to a directed presence.
	LingerTimeout time.Duration `fig:"linger_timeout" default:"3s"`

	// AllowInsecure lets authentication take place over a plaintext stream.
	AllowInsecure bool     `fig:"allow_insecure"`
	Mechanisms    []string `fig:"mechanisms"`

	TLS       TLSConfig       `fig:"tls"`
	RateLimit RateLimitConfig `fig:"rate_limit"`
	Logger    LoggerConfig    `fig:"logger"`

	MetricsAddr string `fig:"metrics_addr"`
}

// LoadConfig reads configuration from a YAML file.
func LoadConfig(configFile string) (*Config, error) {
	var cfg Config
	file := filepath.Base(configFile)
	dir := filepath.Dir(configFile)

	err := fig.Load(&cfg, fig.File(file), fig.Dirs(dir))
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
