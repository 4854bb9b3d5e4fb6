package main

import (
	"github.com/iotaledger/hive.go/node"

	"github.com/iotaledger/sortedlist/plugins"
)

func main() {
	node.Run(
		plugins.Core,
	)
}
