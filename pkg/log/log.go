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

package log

import (
	"io"
	"os"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const (
	debugLevel   = "debug"
	infoLevel    = "info"
	warningLevel = "warn"
	errorLevel   = "error"
	offLevel     = "off"

	jsonFormat = "json"
)

// NewDefaultLogger returns a logger writing to standard error.
func NewDefaultLogger(lv, format string) kitlog.Logger {
	return New(os.Stderr, lv, format)
}

// New returns a leveled logger writing to w.
// format can be either "json" or "logfmt".
func New(w io.Writer, lv, format string) kitlog.Logger {
	var logger kitlog.Logger
	var allow level.Option

	sw := kitlog.NewSyncWriter(w)
	if format == jsonFormat {
		logger = kitlog.NewJSONLogger(sw)
	} else {
		logger = kitlog.NewLogfmtLogger(sw)
	}
	switch lv {
	case debugLevel:
		allow = level.AllowDebug()
	case infoLevel:
		allow = level.AllowInfo()
	case warningLevel:
		allow = level.AllowWarn()
	case errorLevel:
		allow = level.AllowError()
	case offLevel:
		allow = level.AllowNone()
	default:
		allow = level.AllowAll()
	}
	return kitlog.With(level.NewFilter(logger, allow), "ts", kitlog.DefaultTimestampUTC, "caller", kitlog.DefaultCaller)
}
