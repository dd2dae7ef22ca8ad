package main

import (
	"flag"
	"log"
	"os"

	"github.com/moderato-sim/moderato"
)

func main() {
	var (
		configFile string
		collisions int
		batch      int
	)
	flag.StringVar(&configFile, "config", "", "Simulation config file.")
	flag.IntVar(&collisions, "collisions", 0,
		"Number of collision steps. Overrides the config file.")
	flag.IntVar(&batch, "batch", 10,
		"Collision steps per progress report.")
	flag.Parse()

	if configFile == "" {
		log.Println("No config file given.")
		flag.PrintDefaults()
		os.Exit(1)
	}

	config, err := moderato.ReadConfig(configFile)
	if err != nil {
		log.Fatal(err.Error())
	}
	params, err := config.Parameters()
	if err != nil {
		log.Fatal(err.Error())
	}
	if collisions == 0 {
		collisions = config.Simulation.Collisions
	}
	if collisions <= 0 {
		log.Fatalf("Need a positive number of collisions, got %d.", collisions)
	}

	sim, err := moderato.New(params)
	if err != nil {
		log.Fatal(err.Error())
	}
	log.Printf(
		"Diffusing %d neutrons for %d collisions in a tank of r = %g m, h = %g m.",
		sim.Len(), collisions, sim.Tank.Radius, sim.Tank.Height,
	)

	for done := 0; done < collisions; done += batch {
		n := batch
		if done+n > collisions {
			n = collisions - done
		}
		sim.Diffuse(n)
		log.Printf("%d / %d collisions.", sim.Collisions(), collisions)
	}

	m := moderato.NewMeasurer(sim)
	log.Printf("Escaped:     %d / %d", m.NumEscaped(), m.NumTotal())
	log.Printf("Absorbed:    %d / %d", m.NumAbsorbed(), m.NumTotal())
	log.Printf("Thermalized: %d / %d", m.NumThermal(), m.NumTotal())
}
