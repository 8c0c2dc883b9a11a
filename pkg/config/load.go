package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/kevgo/tertestrial/pkg/errors"
	"github.com/kevgo/tertestrial/pkg/logging"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const shapeHint = `The configuration file must have the shape {"actions": [{"trigger": {...}, "run": "..."}]}`

const notFoundHint = `Tertestrial requires a configuration file named ".testconfig.json" in the current directory. Please run "tertestrial setup" to create one.`

// Load reads the configuration file at path
func Load(path string) (*Configuration, error) {
	logger := logging.GetLogger("config.load")

	if _, err := os.Stat(path); err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.New(errors.ErrConfigNotFound, "Configuration file not found").
				WithDetail("path", path).
				WithHint(notFoundHint)
		}
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "Cannot open configuration file")
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), json.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "Cannot parse configuration file").
			WithDetail("path", path).
			WithHint("Please make sure " + path + " contains valid JSON")
	}

	if !k.Exists("actions") {
		return nil, errors.New(errors.ErrConfigParse, "Configuration file has no actions").
			WithDetail("path", path).
			WithHint(shapeHint)
	}

	var result Configuration
	conf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			TagName:          "json",
			ErrorUnused:      true,
			WeaklyTypedInput: false,
			DecodeHook:       wholeNumberHook,
			Result:           &result,
		},
	}
	if err := k.UnmarshalWithConf("", &result, conf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "Cannot parse configuration file").
			WithDetail("path", path).
			WithHint(shapeHint)
	}

	if err := result.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Int("actions", len(result.Actions)).
		Msg("Configuration loaded")

	return &result, nil
}

// wholeNumberHook rejects JSON numbers with a fraction for unsigned fields.
// Negative numbers are rejected by the decoder itself.
func wholeNumberHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if to.Kind() != reflect.Uint {
		return data, nil
	}
	if f, ok := data.(float64); ok && f != math.Trunc(f) {
		return nil, fmt.Errorf("%v is not a whole number", f)
	}
	return data, nil
}
