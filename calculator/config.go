package calculator

import (
	"fmt"

	"gopkg.in/ini.v1"

	"heatcalc/model"
)

// Config is the engine's startup configuration, loaded once from an ini file
// into typed fields and validated before anything runs.
type Config struct {
	ServerAddr string

	// CurveDataDir optionally points at a folder of digitized CSV curves
	// (subfolders fig3..fig8). Empty means the built-in tables.
	CurveDataDir string

	Project model.ProjectSettings
	Louvre  model.LouvreDefinition
}

// LoadConfig reads path into a Config, applying defaults for missing keys.
func LoadConfig(path string) (*Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg := configFromIni(file)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func configFromIni(file *ini.File) *Config {
	server := file.Section("server")
	curves := file.Section("curves")
	project := file.Section("project")
	louvre := file.Section("louvre")

	return &Config{
		ServerAddr:   server.Key("addr").MustString(":9000"),
		CurveDataDir: curves.Key("data_dir").MustString(""),
		Project: model.ProjectSettings{
			AmbientC:                 project.Key("ambient_c").MustFloat64(35.0),
			AltitudeM:                project.Key("altitude_m").MustFloat64(0.0),
			SolarOffsetK:             project.Key("solar_offset_k").MustFloat64(0.0),
			IPRating:                 project.Key("ip_rating_n").MustInt(2),
			EnclosureMaterial:        project.Key("enclosure_material").MustString("steel, painted"),
			MaterialKWm2K:            project.Key("enclosure_k_w_m2k").MustFloat64(5.5),
			AllowMaterialDissipation: project.Key("allow_material_dissipation").MustBool(true),
			WallMounted:              project.Key("wall_mounted").MustBool(false),
			TestVentAreaCm2:          project.Key("test_vent_area_cm2").MustFloat64(300.0),
		},
		Louvre: model.LouvreDefinition{
			Label:        louvre.Key("label").MustString(""),
			InletAreaCm2: louvre.Key("inlet_area_cm2").MustFloat64(0.0),
			WidthMM:      louvre.Key("width_mm").MustFloat64(0.0),
			HeightMM:     louvre.Key("height_mm").MustFloat64(0.0),
		},
	}
}

// Validate rejects configurations the evaluation path could only turn into
// nonsense results.
func (c *Config) Validate() error {
	p := c.Project
	if p.AmbientC < -50 || p.AmbientC > 90 {
		return fmt.Errorf("config: ambient_c %.1f out of range [-50, 90]", p.AmbientC)
	}
	if p.AltitudeM < 0 {
		return fmt.Errorf("config: altitude_m must be >= 0, got %.0f", p.AltitudeM)
	}
	if p.SolarOffsetK < 0 {
		return fmt.Errorf("config: solar_offset_k must be >= 0, got %.1f", p.SolarOffsetK)
	}
	if p.IPRating < 0 || p.IPRating > 6 {
		return fmt.Errorf("config: ip_rating_n %d out of range [0, 6]", p.IPRating)
	}
	if p.MaterialKWm2K < 0 {
		return fmt.Errorf("config: enclosure_k_w_m2k must be >= 0, got %.2f", p.MaterialKWm2K)
	}
	if p.TestVentAreaCm2 < 0 {
		return fmt.Errorf("config: test_vent_area_cm2 must be >= 0, got %.1f", p.TestVentAreaCm2)
	}
	if c.Louvre.InletAreaCm2 < 0 {
		return fmt.Errorf("config: louvre inlet_area_cm2 must be >= 0, got %.1f", c.Louvre.InletAreaCm2)
	}
	return nil
}
