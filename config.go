package moderato

import (
	"fmt"

	"gopkg.in/gcfg.v1"

	"github.com/moderato-sim/moderato/geom"
	"github.com/moderato-sim/moderato/nuclear"
)

// Config is the on-disk description of a simulation: the physical
// parameters plus the nuclear data files to load. It is an INI-style gcfg
// file with one [nuclide "name"] subsection per species.
type Config struct {
	Simulation struct {
		Neutrons   int
		Collisions int
		Seed       int64
	}
	Tank struct {
		Radius, Height float64
		X, Y, Z        float64
	}
	Medium struct {
		Temperature   float64
		NumberDensity float64
	}
	Spectrum struct {
		File string
	}
	Nuclide map[string]*NuclideConfig
}

// NuclideConfig describes one species of the medium's molecule: its
// position in the molecule's nuclide order, its mass, its atom count, and
// its four data files.
type NuclideConfig struct {
	// Index orders the nuclides: index 0 is the reference nuclide of the
	// selection ratio.
	Index int
	// Mass in units of the neutron mass.
	Mass float64
	// Atoms per molecule.
	Atoms float64

	Total, Scattering, Absorption, Angular string
}

// ReadConfig parses the config file at the given path. It does not touch
// the data files; Parameters does.
func ReadConfig(file string) (*Config, error) {
	config := &Config{}
	if err := gcfg.ReadFileInto(config, file); err != nil {
		return nil, err
	}
	if len(config.Nuclide) == 0 {
		return nil, fmt.Errorf("%s: no [nuclide] sections", file)
	}
	if config.Spectrum.File == "" {
		return nil, fmt.Errorf("%s: no spectrum file", file)
	}
	return config, nil
}

// Parameters loads the data files named by the config and assembles the
// simulation parameters. Defaults for unset physical values are applied
// later by Parameters.CheckInit.
func (c *Config) Parameters() (Parameters, error) {
	p := Parameters{
		NNeutrons:     c.Simulation.Neutrons,
		Seed:          c.Simulation.Seed,
		TankRadius:    c.Tank.Radius,
		TankHeight:    c.Tank.Height,
		TankCenter:    geom.Vec{c.Tank.X, c.Tank.Y, c.Tank.Z},
		Temperature:   c.Medium.Temperature,
		NumberDensity: c.Medium.NumberDensity,
	}

	ordered := make([]*NuclideConfig, len(c.Nuclide))
	for name, nc := range c.Nuclide {
		if nc.Index < 0 || nc.Index >= len(ordered) {
			return Parameters{}, fmt.Errorf(
				"nuclide %q has index %d, want 0 through %d",
				name, nc.Index, len(ordered)-1,
			)
		}
		if ordered[nc.Index] != nil {
			return Parameters{}, fmt.Errorf(
				"two nuclides claim index %d", nc.Index,
			)
		}
		ordered[nc.Index] = nc
	}

	for _, nc := range ordered {
		p.MoleculeStructure = append(p.MoleculeStructure, nc.Atoms)
		p.NucleiMasses = append(p.NucleiMasses, nc.Mass)

		total, err := nuclear.ReadTable(nc.Total)
		if err != nil {
			return Parameters{}, err
		}
		scattering, err := nuclear.ReadTable(nc.Scattering)
		if err != nil {
			return Parameters{}, err
		}
		absorption, err := nuclear.ReadTable(nc.Absorption)
		if err != nil {
			return Parameters{}, err
		}
		angular, err := nuclear.ReadAngularTable(nc.Angular)
		if err != nil {
			return Parameters{}, err
		}

		p.TotalData = append(p.TotalData, total)
		p.ScatteringData = append(p.ScatteringData, scattering)
		p.AbsorptionData = append(p.AbsorptionData, absorption)
		p.AngularData = append(p.AngularData, angular)
	}

	spectrum, err := nuclear.ReadTable(c.Spectrum.File)
	if err != nil {
		return Parameters{}, err
	}
	p.SpectrumData = spectrum

	return p, nil
}
