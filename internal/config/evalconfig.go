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

package config

// evalConfiguration holds the tunable switches and parameters of the
// static evaluation function.
type evalConfiguration struct {
	Tempo int

	UseMaterial bool
	UsePST      bool

	UseMobility       bool
	MobilityBonusMg   int
	MobilityBonusEg   int

	UseKingSafety       bool
	KingShieldGold      int
	KingShieldSilver    int
	KingShieldKnight    int
	KingShieldLance     int
	KingShieldPawn      int
	KingDangerMalus     int

	UsePawnStructure    bool
	ConnectedPawnBonus  int
	IsolatedPawnMalus   int
	AdvancementBonusEg  int
	NifuMalus           int

	UseCoordination  bool
	RookLanceSupport int
	BishopPairBonus  int

	UseCenterControl   bool
	CenterControlBonus int

	UseDevelopment   bool
	DevelopmentBonus int
}

// sets defaults which might be overwritten by the config file
func init() {
	Settings.Eval.Tempo = 20

	Settings.Eval.UseMaterial = true
	Settings.Eval.UsePST = true

	Settings.Eval.UseMobility = true
	Settings.Eval.MobilityBonusMg = 2
	Settings.Eval.MobilityBonusEg = 4

	Settings.Eval.UseKingSafety = true
	Settings.Eval.KingShieldGold = 12
	Settings.Eval.KingShieldSilver = 10
	Settings.Eval.KingShieldKnight = 7
	Settings.Eval.KingShieldLance = 5
	Settings.Eval.KingShieldPawn = 3
	Settings.Eval.KingDangerMalus = 15

	Settings.Eval.UsePawnStructure = true
	Settings.Eval.ConnectedPawnBonus = 6
	Settings.Eval.IsolatedPawnMalus = 10
	Settings.Eval.AdvancementBonusEg = 4
	Settings.Eval.NifuMalus = 0 // nifu is an illegal-move rule, not a soft eval term; kept at 0

	Settings.Eval.UseCoordination = true
	Settings.Eval.RookLanceSupport = 8
	Settings.Eval.BishopPairBonus = 40

	Settings.Eval.UseCenterControl = true
	Settings.Eval.CenterControlBonus = 5

	Settings.Eval.UseDevelopment = true
	Settings.Eval.DevelopmentBonus = 6
}

// set defaults for configurations here in case a configuration is not
// available from the config file
func setupEval() {}
