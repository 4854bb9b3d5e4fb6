package config

import (
	flag "github.com/spf13/pflag"
)

const (
	// CfgConsolePlain contains the name of the parameter that switches the console to line based input.
	CfgConsolePlain = "console.plain"

	// CfgConsoleSeparator contains the name of the parameter that defines the separator printed after each element.
	CfgConsoleSeparator = "console.separator"

	// CfgConsolePrefill contains the name of the parameter that lists the elements inserted before the menu starts.
	CfgConsolePrefill = "console.prefill"

	// CfgLoggerLevel contains the name of the parameter that defines the log level.
	CfgLoggerLevel = "logger.level"
)

// Parameters contains the configuration parameters of the sortedlist console.
type Parameters struct {
	// Plain defines whether the console reads line based input instead of interactive prompts.
	Plain bool

	// Separator defines the string printed after each element of the list.
	Separator string

	// Prefill defines the elements that are inserted before the menu starts.
	Prefill []int

	// LoggerLevel defines the level of the global logger.
	LoggerLevel string
}

func defineParameters(flagSet *flag.FlagSet) {
	flagSet.Bool(CfgConsolePlain, false, "read line based input instead of showing interactive prompts")
	flagSet.String(CfgConsoleSeparator, " ", "the separator printed after each element of the list")
	flagSet.StringSlice(CfgConsolePrefill, nil, "a list of integers that are inserted before the menu starts")
	flagSet.String(CfgLoggerLevel, "info", "the level of the logger (debug, info, warn, error)")
}
