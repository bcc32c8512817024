package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/gospice/gospice/cmd/gospice/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("gospice failed")
		os.Exit(1)
	}
}
