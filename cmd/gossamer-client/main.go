// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"io"
	"os"

	"github.com/ChainSafe/gossamer-client/internal/log"
	"github.com/urfave/cli"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "cmd"))

func main() {
	err := newApp(os.Stdout).Run(os.Args)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func newApp(writer io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "gossamer-client"
	app.Usage = "Reads account state and builds extrinsic extra data of Substrate chains"
	app.Version = "0.1.0"
	app.Writer = writer
	app.ErrWriter = writer
	app.Flags = globalFlags
	app.Before = setupLogger
	app.Commands = []cli.Command{
		typesCommand,
		storageKeyCommand,
		accountKeyCommand,
		nonceCommand,
		extraCommand,
		signCommand,
		importStateCommand,
		exportConfigCommand,
	}
	return app
}
