// Package config loads and validates the YAML run description for the
// shallow-water solver, translating it into the swe package's compile-time
// and runtime parameter types.
package config

import (
	"fmt"
	"os"

	"github.com/ghodss/yaml"

	"github.com/notargets/gocfd-swe/swe"
)

// File mirrors the recognised keys of a run's YAML configuration file.
// ghodss/yaml decodes through encoding/json, so a key is matched by a
// field's json tag or, without one, case-insensitively by field name;
// bc_x and bc_y differ from their field names and carry json tags.
type File struct {
	Nx          int     `yaml:"nx"`
	Ny          int     `yaml:"ny"`
	XLen        float64 `yaml:"xlen"`
	YLen        float64 `yaml:"ylen"`
	BCx         string  `yaml:"bc_x" json:"bc_x"`
	BCy         string  `yaml:"bc_y" json:"bc_y"`
	InitData    string  `yaml:"initData"`
	OutFile     string  `yaml:"outFile"`
	G           float64 `yaml:"g"`
	CFL         float64 `yaml:"cfl"`
	FinalTime   float64 `yaml:"finalTime"`
	PlotEvery   float64 `yaml:"plotEvery"`
	Ord         int     `yaml:"ord"`
	NGLL        int     `yaml:"nGLL"`
	NAder       int     `yaml:"nAder"`
	TimeAvg     bool    `yaml:"timeAvg"`
	DoWeno      bool    `yaml:"doWeno"`
	Parallelism int     `yaml:"parallelism"`
	CheckMode   bool    `yaml:"checkMode"`
}

// Run holds everything cmd/run.go needs after a config file has been
// parsed and validated: the solver's compile-time Config, its runtime
// Domain, and the driver-loop parameters that don't belong inside swe.
type Run struct {
	Config      swe.Config
	Domain      swe.Domain
	CFL         float64
	FinalTime   float64
	PlotEvery   float64
	OutFile     string
	Parallelism int
}

// Load reads, parses and validates a YAML configuration file at path.
// Every missing or invalid required key is reported by name, matching
// the fail-fast, name-the-offending-key policy the rest of this module
// follows for configuration errors.
func Load(path string) (Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Run{}, fmt.Errorf("config: reading %q: %w", path, err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Run{}, fmt.Errorf("config: parsing %q: %w", path, err)
	}
	return f.resolve()
}

func (f File) resolve() (Run, error) {
	var r Run

	if f.Nx <= 0 {
		return r, fmt.Errorf("config: nx must be positive, got %d", f.Nx)
	}
	if f.Ny <= 0 {
		return r, fmt.Errorf("config: ny must be positive, got %d", f.Ny)
	}
	if f.XLen <= 0 {
		return r, fmt.Errorf("config: xlen must be positive, got %g", f.XLen)
	}
	if f.YLen <= 0 {
		return r, fmt.Errorf("config: ylen must be positive, got %g", f.YLen)
	}

	bcx, err := swe.ParseBCKind(f.BCx)
	if err != nil {
		return r, fmt.Errorf("config: bc_x: %w", err)
	}
	bcy, err := swe.ParseBCKind(f.BCy)
	if err != nil {
		return r, fmt.Errorf("config: bc_y: %w", err)
	}

	profile, err := swe.ParseInitProfile(f.InitData)
	if err != nil {
		return r, fmt.Errorf("config: initData: %w", err)
	}

	sim1d := f.Ny == 1
	if sim1d && !profile.Is1D() {
		return r, fmt.Errorf("config: initData %q requires ny>1, got ny=1", f.InitData)
	}
	if !sim1d && profile.Is1D() {
		return r, fmt.Errorf("config: initData %q is a 1-D profile but ny=%d", f.InitData, f.Ny)
	}

	ord := f.Ord
	if ord <= 0 {
		ord = 5
	}
	if ord%2 == 0 {
		return r, fmt.Errorf("config: ord must be odd, got %d", ord)
	}
	ngll := f.NGLL
	if ngll <= 0 {
		ngll = 3
	}
	nAder := f.NAder
	if nAder <= 0 {
		nAder = 2
	}

	cfl := f.CFL
	if cfl <= 0 {
		cfl = 0.4
	}
	if f.FinalTime <= 0 {
		return r, fmt.Errorf("config: finalTime must be positive, got %g", f.FinalTime)
	}
	parallelism := f.Parallelism
	if parallelism <= 0 {
		parallelism = 1
	}

	g := f.G
	if g <= 0 {
		g = swe.DefaultGravity(profile)
	}

	r.Config = swe.Config{
		Ord:       ord,
		NGLL:      ngll,
		NAder:     nAder,
		TimeAvg:   f.TimeAvg,
		DoWeno:    f.DoWeno,
		CheckMode: f.CheckMode,
	}
	r.Domain = swe.Domain{
		Nx:      f.Nx,
		Ny:      f.Ny,
		XLen:    f.XLen,
		YLen:    f.YLen,
		BCx:     bcx,
		BCy:     bcy,
		Profile: profile,
		Sim1D:   sim1d,
		G:       g,
	}
	r.CFL = cfl
	r.FinalTime = f.FinalTime
	r.PlotEvery = f.PlotEvery
	r.OutFile = f.OutFile
	r.Parallelism = parallelism
	return r, nil
}
