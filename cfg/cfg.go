package cfg

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
)

// GTASADirKey represents config key holding GTA San Andreas directory
const GTASADirKey = "gta-sa-dir"

// Root represents root settings of the program
type Root struct {
	// GTASADir represents GTA San Andreas directory. Its "moonloader" subdirectory receives the script.
	GTASADir string `koanf:"gta-sa-dir"`
}

// MissingPropertyError represents error thrown if config does not contain required property
type MissingPropertyError struct {
	Property string
	Path     string
}

// Error is used to satisfy golang error interface
func (e MissingPropertyError) Error() string {
	return fmt.Sprintf("Property '%v' is missing in config %v", e.Property, e.Path)
}

// NullPropertyError represents error thrown if required property is present in config but set to null
type NullPropertyError struct {
	Property string
	Path     string
}

// Error is used to satisfy golang error interface
func (e NullPropertyError) Error() string {
	return fmt.Sprintf("Property '%v' is null in config %v, expecting string", e.Property, e.Path)
}

// Read returns config instance read from JSON file at <cfgFilePath>.
//
// Absent property results in MissingPropertyError, null property in NullPropertyError. Empty string is kept as is.
// Unknown properties are ignored.
func Read(log *logrus.Logger, cfgFilePath string) (Root, error) {
	log.Info("Reading program config")
	log.Debugf("Config path: %v", cfgFilePath)

	var root Root

	ko := koanf.New(".")
	if err := ko.Load(file.Provider(cfgFilePath), json.Parser()); err != nil {
		return root, errors.Wrap(err, "Load config")
	}

	if !ko.Exists(GTASADirKey) {
		return root, errors.Wrap(MissingPropertyError{Property: GTASADirKey, Path: cfgFilePath}, "Validate config")
	}

	if ko.Get(GTASADirKey) == nil {
		return root, errors.Wrap(NullPropertyError{Property: GTASADirKey, Path: cfgFilePath}, "Validate config")
	}

	// Decode loaded config file into structure
	err := ko.UnmarshalWithConf("", &root, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			ErrorUnused:          false,
			IgnoreUntaggedFields: true,
			Result:               &root,
			WeaklyTypedInput:     false,
			ZeroFields:           true,
		},
	})
	if err != nil {
		return root, errors.Wrap(err, "Decode config")
	}

	return root, nil
}
