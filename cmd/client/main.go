// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command client is a command-line client of the catalog API.
//
//	client token -email test@test.com -password password123
//	ADAPTER_TOKEN=... client list
//	client create -token ... -item-id 1 -name Vase -price 10 -description d -creator me -image vase.png
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/craft-catalog/internal/config"
	"github.com/MKhiriev/craft-catalog/internal/logger"
	"github.com/MKhiriev/craft-catalog/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewConsoleLogger("catalog-client")

	if len(os.Args) > 1 && os.Args[1] == "version" {
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Print(os.Stdout)
		return
	}

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, *cfg, os.Args[1:], os.Stdout, log); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage())
			os.Exit(2)
		}
		log.Fatal().Err(err).Msg("command failed")
	}
}
