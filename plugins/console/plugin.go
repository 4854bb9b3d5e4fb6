package console

import (
	"context"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/daemon"
	"github.com/iotaledger/hive.go/events"
	"github.com/iotaledger/hive.go/logger"
	"github.com/iotaledger/hive.go/node"
	"go.uber.org/dig"

	"github.com/iotaledger/sortedlist/packages/console"
	"github.com/iotaledger/sortedlist/packages/datastructure"
	"github.com/iotaledger/sortedlist/packages/shutdown"
	"github.com/iotaledger/sortedlist/plugins/config"
	loggerplugin "github.com/iotaledger/sortedlist/plugins/logger"
)

// PluginName is the name of the console plugin.
const PluginName = "Console"

type dependencies struct {
	dig.In

	Console *console.Console
	List    *datastructure.SortedList[int]
}

var (
	// Plugin is the plugin instance of the console plugin.
	Plugin *node.Plugin
	deps   = new(dependencies)
)

// IO bundles the streams the console works on.
type IO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

func init() {
	Plugin = node.NewPlugin(PluginName, deps, node.Enabled, configure, run)

	Plugin.Events.Init.Attach(events.NewClosure(func(_ *node.Plugin, container *dig.Container) {
		if err := provide(container, IO{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}); err != nil {
			Plugin.Panic(err)
		}
	}))
}

func configure(plugin *node.Plugin) {
	plugin.LogDebugf("list starts with %d elements", deps.List.Size())
}

func run(*node.Plugin) {
	if err := daemon.BackgroundWorker(PluginName, func(context.Context) {
		if err := deps.Console.Run(); err != nil {
			Plugin.LogFatalf("console stopped: %+v", err)
		}

		// the worker itself is awaited during shutdown
		go daemon.ShutdownAndWait()
	}, shutdown.PriorityConsole); err != nil {
		Plugin.Panicf("Failed to start as daemon: %s", err)
	}
}

// provide registers everything the console needs. It expects the container to already provide the *config.Parameters.
func provide(container *dig.Container, streams IO) error {
	providers := []interface{}{
		func() IO {
			return streams
		},
		func() *logger.Logger {
			return loggerplugin.New(PluginName)
		},
		newSortedList,
		func(parameters *config.Parameters, streams IO) *console.Printer {
			return console.NewPrinter(streams.Out, parameters.Separator)
		},
		newPrompter,
		console.New,
	}

	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return errors.Wrap(err, "failed to provide dependency")
		}
	}

	return nil
}

func newSortedList(parameters *config.Parameters, log *logger.Logger) *datastructure.SortedList[int] {
	list := datastructure.New[int]()
	for _, item := range parameters.Prefill {
		list.Insert(item)
	}

	if !list.IsEmpty() {
		log.Infof("prefilled list with %d elements", list.Size())
	}

	return list
}

// newPrompter returns the interactive survey prompter bound to the given streams if they are terminal files. Line
// based input is used when it is configured or when the streams are no files.
func newPrompter(parameters *config.Parameters, streams IO, printer *console.Printer) console.Prompter {
	if !parameters.Plain {
		in, inIsFile := streams.In.(terminal.FileReader)
		out, outIsFile := streams.Out.(terminal.FileWriter)
		if inIsFile && outIsFile {
			return console.NewSurveyPrompter(survey.WithStdio(in, out, streams.Err))
		}
	}

	return console.NewPlainPrompter(streams.In, printer)
}
