package plugins

import (
	"github.com/iotaledger/hive.go/node"

	"github.com/iotaledger/sortedlist/plugins/config"
	"github.com/iotaledger/sortedlist/plugins/console"
	"github.com/iotaledger/sortedlist/plugins/logger"
)

// Core contains the plugins of the sortedlist console in the order they are initialized.
var Core = node.Plugins(
	config.Plugin,
	logger.Plugin,
	console.Plugin,
)
