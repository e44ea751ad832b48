/*
 * config_test.go, part of dftd3.
 *
 * Copyright 2021 Raul Mera <rmeraatusachdotcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package dftd3

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestReadConfig(Te *testing.T) {
	cfg, err := ReadConfig(strings.NewReader(`
log_level = "debug"

[dispersion]
disp2 = 50.0
`))
	if err != nil {
		Te.Fatal(err)
	}
	if cfg.Dispersion.Disp2 != 50 || cfg.Dispersion.Disp3 != 40 || cfg.Counterpoise.SRB != 60 {
		Te.Errorf("Wrong configuration %+v", cfg)
	}
	defer SetLogger(nil)
	if err = cfg.Apply(); err != nil {
		Te.Fatal(err)
	}
	if Log.GetLevel() != logrus.DebugLevel {
		Te.Errorf("Log level not applied: %s", Log.GetLevel())
	}
}

func TestLoadConfig(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "dftd3.toml")
	err := os.WriteFile(name, []byte("[counterpoise]\nbas = 30.0\nsrb = 20.0\n"), 0644)
	if err != nil {
		Te.Fatal(err)
	}
	cfg, err := LoadConfig(name)
	if err != nil {
		Te.Fatal(err)
	}
	if cfg.Counterpoise.Bas != 30 || cfg.Counterpoise.SRB != 20 {
		Te.Errorf("Wrong configuration %+v", cfg)
	}
	if _, err = LoadConfig(filepath.Join(Te.TempDir(), "missing.toml")); err == nil {
		Te.Error("Expected an error for a missing file")
	}
}

func TestConfigValidate(Te *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		Te.Error(err)
	}
	cfg, err := ReadConfig(strings.NewReader("[dispersion]\ncn = -1.0\n"))
	if err == nil {
		Te.Error("Expected an error for a negative cutoff")
	}
	if cfg != nil {
		Te.Error("An invalid configuration was returned")
	}
	bad := DefaultConfig()
	bad.Dispersion.CN = 0
	bad.Counterpoise.SRB = -2
	bad.Dispersion.Disp3 = -1
	for i := 0; i < 5; i++ {
		if err := bad.Validate(); err == nil || !strings.Contains(err.Error(), "dispersion.disp3") {
			Te.Fatalf("Expected the first bad cutoff to be reported, got %v", err)
		}
	}
	if _, err := ReadConfig(strings.NewReader("log_level = \"loud\"\n")); err == nil {
		Te.Error("Expected an error for a bad log level")
	}
	if _, err := ReadConfig(strings.NewReader("[dispersion\n")); err == nil {
		Te.Error("Expected a syntax error")
	}
}

func TestConfigureNil(Te *testing.T) {
	useReference(Te)
	m, err := NewModelFromArrays(h2numbers, h2positions, nil, nil)
	if err != nil {
		Te.Fatal(err)
	}
	defer m.Close()
	if err = m.Configure(nil); err == nil {
		Te.Error("Expected an error for a nil configuration")
	}
	g, err := NewGCPFromArrays(h2numbers, h2positions, nil, nil, "", "")
	if err != nil {
		Te.Fatal(err)
	}
	defer g.Close()
	if err = g.Configure(nil); err == nil {
		Te.Error("Expected an error for a nil configuration")
	}
	if err = g.Configure(DefaultConfig()); err != nil {
		Te.Error(err)
	}
}
