package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/events"
	"github.com/iotaledger/hive.go/node"
	"github.com/spf13/cast"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/dig"
)

// PluginName is the name of the config plugin.
const PluginName = "Config"

// Plugin is the plugin instance of the config plugin.
var Plugin *node.Plugin

func init() {
	Plugin = node.NewPlugin(PluginName, nil, node.Enabled)

	Plugin.Events.Init.Attach(events.NewClosure(func(_ *node.Plugin, container *dig.Container) {
		parameters, err := Load(NewFlagSet(os.Args[0]), os.Args[1:])
		if err != nil {
			// global logger instance is not initialized at this stage...
			fmt.Println(err.Error())
			os.Exit(1)
		}

		if err := container.Provide(func() *Parameters {
			return parameters
		}); err != nil {
			Plugin.Panic(err)
		}
	}))
}

const (
	cfgConfigName          = "config"
	cfgConfigDir           = "config-dir"
	cfgSkipConfigAvailable = "skip-config"
)

// NewFlagSet returns a FlagSet that contains all parameters of the console and the flags that locate the config file.
func NewFlagSet(name string) *flag.FlagSet {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.StringP(cfgConfigName, "c", "config", "Filename of the config file without the file extension")
	flagSet.StringP(cfgConfigDir, "d", ".", "Path to the directory containing the config file")
	flagSet.Bool(cfgSkipConfigAvailable, true, "Skip config file availability check")

	defineParameters(flagSet)

	return flagSet
}

// Load parses the arguments and merges them with the environment and the config file.
//
// It reads in a single config file starting with "config" (can be changed via the --config flag) and ending with
// .json, .toml, .yaml or .yml from the directory given by --config-dir. Flags take precedence over environment
// variables which take precedence over the config file.
func Load(flagSet *flag.FlagSet, args []string) (*Parameters, error) {
	if err := flagSet.Parse(args); err != nil {
		return nil, errors.Wrap(err, "failed to parse flags")
	}

	node := viper.New()

	// replace dots with underscores in env
	node.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	node.AutomaticEnv()

	if err := node.BindPFlags(flagSet); err != nil {
		return nil, errors.Wrap(err, "failed to bind flags")
	}

	if err := fetch(node); err != nil {
		return nil, err
	}

	prefill, err := intSlice(node.Get(CfgConsolePrefill))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid value for %s", CfgConsolePrefill)
	}

	return &Parameters{
		Plain:       node.GetBool(CfgConsolePlain),
		Separator:   node.GetString(CfgConsoleSeparator),
		Prefill:     prefill,
		LoggerLevel: node.GetString(CfgLoggerLevel),
	}, nil
}

func fetch(node *viper.Viper) error {
	node.SetConfigName(node.GetString(cfgConfigName))
	node.AddConfigPath(node.GetString(cfgConfigDir))

	if err := node.ReadInConfig(); err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if errors.As(err, &notFoundErr) && node.GetBool(cfgSkipConfigAvailable) {
			return nil
		}

		return errors.Wrap(err, "failed to read config file")
	}

	return nil
}

// intSlice accepts lists from flags and config files as well as comma separated strings from the environment.
func intSlice(value interface{}) ([]int, error) {
	if value == nil {
		return nil, nil
	}

	elements, err := cast.ToStringSliceE(value)
	if err != nil {
		return nil, err
	}

	result := make([]int, 0, len(elements))
	for _, element := range elements {
		for _, field := range strings.Split(element, ",") {
			if field = strings.TrimSpace(field); field == "" {
				continue
			}

			number, err := strconv.Atoi(field)
			if err != nil {
				return nil, err
			}
			result = append(result, number)
		}
	}

	return result, nil
}
