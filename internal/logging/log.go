//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package logging is a thin helper around "github.com/op/go-logging" that
// keeps every package's logging setup to a single line: call GetLog with
// the package's own name and get back a preconfigured *logging.Logger.
package logging

import (
	stdlog "log"
	"os"
	"sync"

	"github.com/op/go-logging"

	"github.com/frankkopp/shogi-engine/internal/config"
)

var (
	standardFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-10.10s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)

	registryMu sync.Mutex
	registry   = map[string]*logging.Logger{}
)

// GetLog returns the named logger, creating and configuring it with an
// os.Stdout backend on first use. Every internal package calls this once
// in a package-level var, e.g. `var log = logging.GetLog("position")`.
func GetLog(name string) *logging.Logger {
	registryMu.Lock()
	defer registryMu.Unlock()

	if l, ok := registry[name]; ok {
		return l
	}

	l := logging.MustGetLogger(name)
	backend := logging.NewLogBackend(os.Stdout, "", stdlog.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(config.LogLevel), "")
	l.SetBackend(leveled)

	registry[name] = l
	return l
}

// GetSearchLog returns the dedicated search logger, configured from
// config.SearchLogLevel rather than config.LogLevel so a search can be
// traced at a different verbosity than the rest of the engine.
func GetSearchLog() *logging.Logger {
	l := logging.MustGetLogger("search")
	backend := logging.NewLogBackend(os.Stdout, "", stdlog.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(config.SearchLogLevel), "")
	l.SetBackend(leveled)
	return l
}

// GetTestLog returns the dedicated test logger, configured from
// config.TestLogLevel.
func GetTestLog() *logging.Logger {
	l := logging.MustGetLogger("test")
	backend := logging.NewLogBackend(os.Stdout, "", stdlog.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(config.TestLogLevel), "")
	l.SetBackend(leveled)
	return l
}
