package logger

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/configuration"
	"github.com/iotaledger/hive.go/events"
	"github.com/iotaledger/hive.go/logger"
	"github.com/iotaledger/hive.go/node"
	"go.uber.org/dig"

	"github.com/iotaledger/sortedlist/plugins/config"
)

// PluginName is the name of the logger plugin.
const PluginName = "Logger"

// Plugin is the plugin instance of the logger plugin.
var Plugin *node.Plugin

var (
	initOnce sync.Once
	initErr  error
)

func init() {
	Plugin = node.NewPlugin(PluginName, nil, node.Enabled)

	Plugin.Events.Init.Attach(events.NewClosure(func(_ *node.Plugin, container *dig.Container) {
		if err := container.Invoke(func(parameters *config.Parameters) {
			if err := Init(parameters.LoggerLevel); err != nil {
				panic(err)
			}
		}); err != nil {
			panic(err)
		}
	}))
}

// Init initializes the global logger with the given level. Log output goes to stderr so that it does not interleave
// with the console. Only the first call has an effect.
func Init(level string) error {
	initOnce.Do(func() {
		initErr = initGlobalLogger(level)
	})

	return initErr
}

func initGlobalLogger(level string) error {
	loggerConfig := configuration.New()
	if err := loggerConfig.Set(logger.ConfigurationKeyLevel, level); err != nil {
		return errors.Wrap(err, "failed to set log level")
	}
	if err := loggerConfig.Set(logger.ConfigurationKeyOutputPaths, []string{"stderr"}); err != nil {
		return errors.Wrap(err, "failed to set log output")
	}

	if err := logger.InitGlobalLogger(loggerConfig); err != nil {
		return errors.Wrap(err, "failed to initialize global logger")
	}

	return nil
}

// New returns a named logger. Init must have been called before.
func New(name string) *logger.Logger {
	return logger.NewLogger(name)
}
