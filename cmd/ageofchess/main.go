// Command ageofchess runs the terrain chess engine behind a text console on
// stdin/stdout.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/hailam/ageofchess/internal/config"
	"github.com/hailam/ageofchess/internal/console"
	"github.com/hailam/ageofchess/internal/logger"
	"github.com/hailam/ageofchess/internal/storage"
)

// newFlagSet returns a flag set with cpuprofile bound. os.Args is parsed
// twice: once to find the database, once over the settings saved in it.
func newFlagSet(cpuprofile *string) *flag.FlagSet {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	fs.StringVar(cpuprofile, "cpuprofile", "", "write cpu profile to file")
	return fs
}

func main() {
	logger.Init()
	log := logger.Component("main")

	var cpuprofile string
	boot, err := config.Layer(config.Default(), newFlagSet(&cpuprofile), os.Args[1:])
	if err != nil {
		log.WithError(err).Warn("ignoring bad environment settings")
	}
	logger.Configure(boot.LogLevel, boot.LogFormat, os.Stderr)

	var store *storage.Storage
	if boot.InMemory {
		store, err = storage.OpenInMemory()
	} else {
		store, err = storage.Open(boot.DataDir)
	}
	if err != nil {
		log.WithError(err).Fatal("could not open storage")
	}
	defer store.Close()

	saved, err := store.LoadSettings()
	if err != nil {
		log.WithError(err).Warn("could not load saved settings")
		saved = config.Default()
	}
	settings, _ := config.Layer(saved, newFlagSet(&cpuprofile), os.Args[1:])
	settings.DataDir, settings.InMemory = boot.DataDir, boot.InMemory

	logger.Configure(settings.LogLevel, settings.LogFormat, os.Stderr)
	if err := settings.Validate(); err != nil {
		log.WithError(err).Fatal("bad settings")
	}

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.WithError(err).Fatal("could not create CPU profile")
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.WithError(err).Fatal("could not start CPU profile")
		}
		defer pprof.StopCPUProfile()
		log.WithField("path", profilePath).Info("CPU profiling enabled")
	}

	if first, err := store.IsFirstLaunch(); err == nil && first {
		fmt.Println("Welcome to Age of Chess. Type \"help\" for commands.")
		if err := store.MarkFirstLaunchComplete(); err != nil {
			log.WithError(err).Warn("could not record first launch")
		}
	}
	if err := store.SaveSettings(settings); err != nil {
		log.WithError(err).Warn("could not save settings")
	}

	c := console.New(settings, store, os.Stdout)
	if err := c.Execute("new", nil); err != nil {
		log.WithError(err).Fatal("could not generate the first map")
	}
	if err := c.Run(os.Stdin); err != nil {
		log.WithError(err).Error("console stopped")
	}
}
