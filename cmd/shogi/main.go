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

// Command shogi is a small driver over the engine package: it loads
// configuration and logging, builds a search, loads a position (and
// optionally an opening book), runs a single timed or depth-limited
// search, and prints the result. It does not speak a wire protocol
// (USI or otherwise) - that is left to whatever embeds this engine.
package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/shogi-engine/internal/config"
	"github.com/frankkopp/shogi-engine/internal/logging"
	"github.com/frankkopp/shogi-engine/internal/movegen"
	"github.com/frankkopp/shogi-engine/internal/notation"
	"github.com/frankkopp/shogi-engine/internal/position"
	"github.com/frankkopp/shogi-engine/internal/search"
	"github.com/frankkopp/shogi-engine/internal/util"
)

var out = message.NewPrinter(language.German)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	searchLogLvl := flag.String("searchloglvl", "", "search log level\n(critical|error|warning|notice|info|debug)")
	bookPath := flag.String("bookpath", "./assets/books", "path to opening book files")
	bookFile := flag.String("bookfile", "", "opening book file name within bookpath\nleave empty to disable the book")
	sfen := flag.String("sfen", "", "position in compact notation to search from\nleave empty for the starting position")
	moveTime := flag.Int("movetime", 2000, "search time in milliseconds\nignored when -depth is given")
	depth := flag.Int("depth", 0, "fixed search depth\nwhen 0, search runs under -movetime instead")
	perft := flag.Int("perft", 0, "runs perft to the given depth from -sfen (or the starting position) and exits")
	cpuProfile := flag.Bool("profile", false, "writes a CPU profile (cpu.pprof) for the duration of this run")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if lvl, found := config.LogLevels[*searchLogLvl]; found {
		config.SearchLogLevel = lvl
	}
	if *bookPath != "" {
		config.Settings.Search.BookPath = *bookPath
	}
	if *bookFile != "" {
		config.Settings.Search.UseBook = true
		config.Settings.Search.BookFile = *bookFile
	} else {
		config.Settings.Search.UseBook = false
	}

	log := logging.GetLog("main")

	p, err := loadPosition(*sfen)
	if err != nil {
		out.Printf("invalid -sfen: %v\n", err)
		os.Exit(1)
	}

	if *perft != 0 {
		pf := movegen.NewPerft()
		for d := 1; d <= *perft; d++ {
			pf.StartPerft(p, d)
		}
		return
	}

	s := search.NewSearch()
	sl := search.NewSearchLimits()
	if *depth > 0 {
		sl.Depth = *depth
	} else {
		sl.TimeControl = true
		sl.MoveTime = time.Duration(*moveTime) * time.Millisecond
	}

	s.StartSearch(context.Background(), *p, *sl)
	s.WaitWhileSearching()

	result := s.LastSearchResult()
	log.Info(out.Sprintf("search done: %s", result.String()))
	out.Println(result.String())
	out.Println("NPS :", util.Nps(s.NodesVisited(), result.SearchTime))
}

// loadPosition parses sfen if given, otherwise returns the standard
// starting position.
func loadPosition(sfen string) (*position.Position, error) {
	if sfen == "" {
		return position.NewPosition(), nil
	}
	return notation.Parse(sfen)
}

func printVersionInfo() {
	out.Println("shogi-engine")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	out.Printf("  Number of Goroutines: %d\n", runtime.NumGoroutine())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
