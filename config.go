/*
 * config.go, part of dftd3.
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
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

//Config holds the tunable settings of the package. It is usually read from
//a TOML file such as:
//
//	log_level = "info"
//
//	[dispersion]
//	disp2 = 60.0
//	disp3 = 40.0
//	cn = 40.0
//
//	[counterpoise]
//	bas = 60.0
//	srb = 60.0
//
//Cutoffs are in Bohr. Missing keys keep their default values.
type Config struct {
	LogLevel     string              `toml:"log_level"`
	Dispersion   DispersionCutoffs   `toml:"dispersion"`
	Counterpoise CounterpoiseCutoffs `toml:"counterpoise"`
}

//DispersionCutoffs are the realspace cutoffs of a Model.
type DispersionCutoffs struct {
	Disp2 float64 `toml:"disp2"`
	Disp3 float64 `toml:"disp3"`
	CN    float64 `toml:"cn"`
}

//CounterpoiseCutoffs are the realspace cutoffs of a GCP.
type CounterpoiseCutoffs struct {
	Bas float64 `toml:"bas"`
	SRB float64 `toml:"srb"`
}

//DefaultConfig returns the settings the engine uses when nothing is configured.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:     "warning",
		Dispersion:   DispersionCutoffs{Disp2: 60, Disp3: 40, CN: 40},
		Counterpoise: CounterpoiseCutoffs{Bas: 60, SRB: 60},
	}
}

//LoadConfig reads a TOML configuration file on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("dftd3: reading configuration %s: %w", path, err)
	}
	warnUndecoded(meta)
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

//ReadConfig is like LoadConfig, reading from r.
func ReadConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("dftd3: reading configuration: %w", err)
	}
	warnUndecoded(meta)
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func warnUndecoded(meta toml.MetaData) {
	for _, k := range meta.Undecoded() {
		Log.WithField("key", k.String()).Warn("dftd3: unknown configuration key")
	}
}

//Validate checks that all cutoffs are positive and the log level exists.
func (C *Config) Validate() error {
	cut := []struct {
		key string
		val float64
	}{
		{"dispersion.disp2", C.Dispersion.Disp2},
		{"dispersion.disp3", C.Dispersion.Disp3},
		{"dispersion.cn", C.Dispersion.CN},
		{"counterpoise.bas", C.Counterpoise.Bas},
		{"counterpoise.srb", C.Counterpoise.SRB},
	}
	for _, c := range cut {
		if !(c.val > 0) {
			return fmt.Errorf("dftd3: configuration: %s must be positive, got %g", c.key, c.val)
		}
	}
	if C.LogLevel != "" {
		if _, err := logrus.ParseLevel(C.LogLevel); err != nil {
			return fmt.Errorf("dftd3: configuration: %w", err)
		}
	}
	return nil
}

//Apply sets the level of the package logger to the configured one.
func (C *Config) Apply() error {
	if C.LogLevel == "" {
		return nil
	}
	lvl, err := logrus.ParseLevel(C.LogLevel)
	if err != nil {
		return fmt.Errorf("dftd3: configuration: %w", err)
	}
	Log.SetLevel(lvl)
	return nil
}
