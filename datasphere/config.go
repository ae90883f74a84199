// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datasphere

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/base/reflectx"
	"cogentcore.org/core/colors"
)

// Palette holds the scene colors.
type Palette struct {

	// Primary is the main orange, used for even panels, the core sphere,
	// the data point glow, the connector and the first point light.
	Primary color.RGBA

	// Secondary is the light orange, used for odd panels, the data points
	// and the second point light.
	Secondary color.RGBA

	// Paper is the cream color of the sheets.
	Paper color.RGBA
}

// Defaults sets the orange theme.
func (pl *Palette) Defaults() {
	pl.Primary = colors.FromRGB(0xff, 0x6b, 0x35)
	pl.Secondary = colors.FromRGB(0xff, 0x8c, 0x5a)
	pl.Paper = colors.FromRGB(0xff, 0xf5, 0xe6)
}

// PanelConfig parametrizes the floating panels (books).
type PanelConfig struct {

	// Count is the number of panels.
	Count int `default:"5" min:"0"`

	// Radius is the radius of the circle the panels are placed on.
	Radius float32 `default:"4"`

	// Width is the minimum width; each panel adds up to WidthJitter.
	Width float32 `default:"0.8"`

	// WidthJitter is the random range added to Width.
	WidthJitter float32 `default:"0.4"`

	// Height is the minimum height; each panel adds up to HeightJitter.
	Height float32 `default:"1"`

	// HeightJitter is the random range added to Height.
	HeightJitter float32 `default:"0.5"`

	// Depth is the fixed thickness of a panel.
	Depth float32 `default:"0.15"`

	// BobRate is the angular rate of the vertical bob.
	BobRate float32 `default:"0.5"`

	// BobStep is the amplitude of the per-frame height increment.
	BobStep float32 `default:"0.002"`

	// Drift is the rotation added around Y each frame.
	Drift float32 `default:"0.003"`
}

// SheetConfig parametrizes the flat sheets (documents).
type SheetConfig struct {

	// Count is the number of sheets.
	Count int `default:"4" min:"0"`

	// Radius is the radius of the circle the sheets are placed on.
	Radius float32 `default:"3.5"`

	// Width is the width of a sheet.
	Width float32 `default:"1"`

	// Height is the height of a sheet.
	Height float32 `default:"1.4"`

	// BobRate is the angular rate of the vertical wave.
	BobRate float32 `default:"0.8"`

	// BobPhase is the phase offset per sheet index.
	BobPhase float32 `default:"0.5"`

	// BobAmplitude is the amplitude of the vertical wave.
	BobAmplitude float32 `default:"0.5"`

	// TiltAmplitude is the amplitude of the tilt around X.
	TiltAmplitude float32 `default:"0.1"`
}

// CoreConfig parametrizes the central wire sphere.
type CoreConfig struct {

	// Radius is the radius of the core sphere.
	Radius float32 `default:"1"`

	// Height is the height of the core sphere center above the origin.
	// Data points orbit around the vertical axis through this point.
	Height float32 `default:"0.5"`

	// Segments is the mesh resolution in each direction.
	Segments int `default:"32"`

	// Opacity is the translucency of the wireframe.
	Opacity float32 `default:"0.6"`

	// PulseRate is the angular rate of the scale pulse.
	PulseRate float32 `default:"2"`

	// PulseAmplitude is the amplitude of the scale pulse around 1.
	PulseAmplitude float32 `default:"0.05"`

	// DriftX is the rotation added around X each frame.
	DriftX float32 `default:"0.002"`

	// DriftY is the rotation added around Y each frame.
	DriftY float32 `default:"0.003"`
}

// PointConfig parametrizes the orbiting data points and their connector.
type PointConfig struct {

	// Count is the number of data points.
	Count int `default:"30" min:"0"`

	// Size is the radius of each point sphere.
	Size float32 `default:"0.08"`

	// Segments is the point mesh resolution in each direction.
	Segments int `default:"8"`

	// Radius is the base orbit radius.
	Radius float32 `default:"1.3"`

	// RadiusAmplitude is the maximum deviation from Radius.
	RadiusAmplitude float32 `default:"0.1"`

	// RadiusRate is the angular rate of the radius wobble.
	RadiusRate float32 `default:"2"`

	// OrbitRate is the orbital angular velocity in radians per second.
	OrbitRate float32 `default:"0.3"`

	// HeightRate is the angular rate of the vertical wave.
	HeightRate float32 `default:"0.5"`

	// HeightAmplitude is the amplitude of the vertical wave.
	HeightAmplitude float32 `default:"0.3"`

	// Emissive is the glow intensity of the points.
	Emissive float32 `default:"0.5"`

	// LineOpacity is the translucency of the connector.
	LineOpacity float32 `default:"0.3"`
}

// Config holds all of the scene parameters.
type Config struct {

	// Palette is the scene colors.
	Palette Palette `toml:"-"`

	// Colors are optional hex overrides for Palette, e.g. "#ff6b35".
	Colors ColorsConfig

	// Panels configures the floating panels.
	Panels PanelConfig

	// Sheets configures the sheets.
	Sheets SheetConfig

	// Core configures the core sphere.
	Core CoreConfig

	// Points configures the data points and connector.
	Points PointConfig

	// SpinRate is the constant rotation rate of the whole scene around Y.
	SpinRate float32 `default:"0.1"`
}

// ColorsConfig is the text form of a [Palette] used in config files.
type ColorsConfig struct {
	Primary   string
	Secondary string
	Paper     string
}

// Defaults sets all parameters to their default values,
// from the default struct tags and the orange [Palette].
func (cfg *Config) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(cfg))
	cfg.Palette.Defaults()
	cfg.Colors = ColorsConfig{}
}

// NewConfig returns a config with default values.
func NewConfig() *Config {
	cfg := &Config{}
	cfg.Defaults()
	return cfg
}

// Open reads TOML overrides from the given file on top of the current values.
func (cfg *Config) Open(filename string) error {
	if err := tomlx.Open(cfg, filename); err != nil {
		return err
	}
	return cfg.applyColors()
}

// Save writes the config to the given file as TOML, with the
// palette written as hex colors.
func (cfg *Config) Save(filename string) error {
	sv := *cfg
	sv.Colors = ColorsConfig{
		Primary:   colors.AsHex(cfg.Palette.Primary),
		Secondary: colors.AsHex(cfg.Palette.Secondary),
		Paper:     colors.AsHex(cfg.Palette.Paper),
	}
	return tomlx.Save(&sv, filename)
}

// applyColors parses any hex color overrides into the Palette.
func (cfg *Config) applyColors() error {
	set := func(dst *color.RGBA, hex string) error {
		if hex == "" {
			return nil
		}
		c, err := colors.FromHex(hex)
		if err != nil {
			return fmt.Errorf("datasphere: invalid color %q: %w", hex, err)
		}
		*dst = c
		return nil
	}
	if err := set(&cfg.Palette.Primary, cfg.Colors.Primary); err != nil {
		return err
	}
	if err := set(&cfg.Palette.Secondary, cfg.Colors.Secondary); err != nil {
		return err
	}
	return set(&cfg.Palette.Paper, cfg.Colors.Paper)
}
