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

package evaluator

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/frankkopp/shogi-engine/internal/config"
	"github.com/frankkopp/shogi-engine/internal/util"
)

// TuningMetadata records how a weights file came to be, carried alongside
// the weight values themselves so a loaded file is traceable back to the
// run that produced it.
type TuningMetadata struct {
	Method            string  `json:"method"`
	TrainingPositions int     `json:"trainingPositions"`
	ValidationError   float64 `json:"validationError"`
	Iterations        int     `json:"iterations"`
}

// WeightsFile is the on-disk shape of a tuned evaluation weights file: the
// engine's config knobs use TOML (internal/config), but a weights file is
// the output of a batch optimizer run over many positions and is kept as
// its own small JSON document rather than folded into config.toml.
type WeightsFile struct {
	Metadata TuningMetadata `json:"metadata"`

	MobilityBonusMg int `json:"mobilityBonusMg"`
	MobilityBonusEg int `json:"mobilityBonusEg"`

	KingShieldGold   int `json:"kingShieldGold"`
	KingShieldSilver int `json:"kingShieldSilver"`
	KingShieldKnight int `json:"kingShieldKnight"`
	KingShieldLance  int `json:"kingShieldLance"`
	KingShieldPawn   int `json:"kingShieldPawn"`
	KingDangerMalus  int `json:"kingDangerMalus"`

	ConnectedPawnBonus int `json:"connectedPawnBonus"`
	IsolatedPawnMalus  int `json:"isolatedPawnMalus"`
	AdvancementBonusEg int `json:"advancementBonusEg"`

	RookLanceSupport int `json:"rookLanceSupport"`
	BishopPairBonus  int `json:"bishopPairBonus"`

	CenterControlBonus int `json:"centerControlBonus"`
	DevelopmentBonus   int `json:"developmentBonus"`
}

// LoadWeightsFile reads and parses a tuned weights file from path.
func LoadWeightsFile(path string) (*WeightsFile, error) {
	resolved, err := util.ResolveFile(path)
	if err != nil {
		return nil, fmt.Errorf("evaluator: resolving weights path %q: %w", path, err)
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("evaluator: reading weights file %q: %w", resolved, err)
	}
	var w WeightsFile
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("evaluator: parsing weights file %q: %w", resolved, err)
	}
	return &w, nil
}

// Apply overwrites the live evaluation configuration with w's weights,
// leaving every other config.Settings.Eval switch (the boolean term
// toggles) untouched.
func (w *WeightsFile) Apply() {
	config.Settings.Eval.MobilityBonusMg = w.MobilityBonusMg
	config.Settings.Eval.MobilityBonusEg = w.MobilityBonusEg

	config.Settings.Eval.KingShieldGold = w.KingShieldGold
	config.Settings.Eval.KingShieldSilver = w.KingShieldSilver
	config.Settings.Eval.KingShieldKnight = w.KingShieldKnight
	config.Settings.Eval.KingShieldLance = w.KingShieldLance
	config.Settings.Eval.KingShieldPawn = w.KingShieldPawn
	config.Settings.Eval.KingDangerMalus = w.KingDangerMalus

	config.Settings.Eval.ConnectedPawnBonus = w.ConnectedPawnBonus
	config.Settings.Eval.IsolatedPawnMalus = w.IsolatedPawnMalus
	config.Settings.Eval.AdvancementBonusEg = w.AdvancementBonusEg

	config.Settings.Eval.RookLanceSupport = w.RookLanceSupport
	config.Settings.Eval.BishopPairBonus = w.BishopPairBonus

	config.Settings.Eval.CenterControlBonus = w.CenterControlBonus
	config.Settings.Eval.DevelopmentBonus = w.DevelopmentBonus
}
