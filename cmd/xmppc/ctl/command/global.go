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

package command

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/xmppc/pkg/client"
	xmpplog "github.com/jackal-xmpp/xmppc/pkg/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

const (
	envConfigFile     = "XMPPC_CONFIG_FILE"
	defaultConfigFile = "config.yaml"
)

var display printer

// GlobalFlags are flags that defined globally and are inherited to all sub-commands.
type GlobalFlags struct {
	ConfigFile  string
	LogLevel    string
	MetricsAddr string

	CommandTimeOut time.Duration
}

func mustClientFromCmd(cmd *cobra.Command) (*client.Client, context.Context, context.CancelFunc) {
	cfg := mustConfigFromCmd(cmd)

	logLevel := cfg.Logger.Level
	if lv := stringFlag(cmd, "log-level"); len(lv) > 0 {
		logLevel = lv
	}
	logger := xmpplog.NewDefaultLogger(logLevel, cfg.Logger.Format)

	metricsAddr := cfg.MetricsAddr
	if addr := stringFlag(cmd, "metrics-addr"); len(addr) > 0 {
		metricsAddr = addr
	}
	if len(metricsAddr) > 0 {
		startMetricsServer(metricsAddr, logger)
	}
	cl, err := client.New(*cfg, logger)
	if err != nil {
		ExitWithError(ExitBadArgs, err)
	}
	ctx, cancel := commandCtx(cmd, cfg.RequestTimeout)
	if err := cl.Connect(ctx); err != nil {
		cancel()
		ExitWithError(ExitBadConnection, err)
	}
	initDisplayFromCmd(cmd)
	return cl, ctx, cancel
}

func mustConfigFromCmd(cmd *cobra.Command) *client.Config {
	configFile := stringFlag(cmd, "config")
	if len(configFile) == 0 {
		configFile = os.Getenv(envConfigFile)
	}
	if len(configFile) == 0 {
		configFile = defaultConfigFile
	}
	cfg, err := client.LoadConfig(configFile)
	if err != nil {
		ExitWithError(ExitBadArgs, err)
	}
	return cfg
}

func startMetricsServer(addr string, logger kitlog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			level.Warn(logger).Log("msg", "failed to serve metrics", "addr", addr, "err", err)
		}
	}()
}

func initDisplayFromCmd(cmd *cobra.Command) {
	display = &simplePrinter{w: cmd.OutOrStdout()}
}

func disconnect(ctx context.Context, cl *client.Client) {
	if err := cl.Disconnect(ctx); err != nil {
		ExitWithError(ExitError, err)
	}
}

func commandCtx(cmd *cobra.Command, cfgTimeout time.Duration) (context.Context, context.CancelFunc) {
	timeOut, err := cmd.Flags().GetDuration("command-timeout")
	if err != nil {
		ExitWithError(ExitError, err)
	}
	if !cmd.Flags().Changed("command-timeout") && cfgTimeout > 0 {
		timeOut = cfgTimeout
	}
	return context.WithTimeout(context.Background(), timeOut)
}

func stringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		ExitWithError(ExitError, err)
	}
	return val
}
