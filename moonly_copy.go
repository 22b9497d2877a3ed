package main

import (
	"fmt"
	"os"
	"path/filepath"

	"moonly_copy/cfg"
	"moonly_copy/cli"
	"moonly_copy/install"
	"moonly_copy/util/logger"

	"github.com/cockroachdb/errors"
	goFlags "github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
)

func main() {
	// Init logger
	log := logger.New(logrus.InfoLevel)

	// Parse command line arguments
	log.Debug("Parsing command line arguments")
	flags, err := cli.Parse()
	if flags.Version {
		fmt.Println("v1.0.0")
		os.Exit(0)
	}
	if cli.IsErrOfType(err, goFlags.ErrHelp) {
		// Help message will be printed by go-flags
		os.Exit(0)
	}
	if err != nil {
		log.Panic(err)
	}
	log.SetLevel(flags.LogLevel)

	if err := run(log, flags); err != nil {
		log.Panic(err)
	}
}

// run reads program config and copies the script into GTA San Andreas directory taken from config.
//
// If config does not specify GTA San Andreas directory, prints a message to stdout and returns nil.
func run(log *logrus.Logger, flags cli.Flags) error {
	c, err := cfg.Read(log, flags.CfgPath)
	var missingErr cfg.MissingPropertyError
	if errors.As(err, &missingErr) {
		fmt.Printf("Can't copy '%v' without property '%v'\n", filepath.Base(flags.SrcPath), missingErr.Property)
		return nil
	}
	if err != nil {
		return err
	}

	dstPath, err := install.NewRepo(log, c).Install(flags.SrcPath)
	if err != nil {
		return err
	}
	log.Infof("Copied script to %v", dstPath)

	return nil
}
