package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/Emmie8/schedsim/api"
	"github.com/Emmie8/schedsim/internal/client"
	"github.com/Emmie8/schedsim/internal/config"
	schedlog "github.com/Emmie8/schedsim/internal/log"
	"github.com/Emmie8/schedsim/internal/process"
	"github.com/Emmie8/schedsim/internal/report"
	"github.com/Emmie8/schedsim/internal/requests"
	"github.com/Emmie8/schedsim/internal/responses"
	"github.com/Emmie8/schedsim/internal/schedulers"
)

var ErrInvalidArgs = errors.New("invalid args")

func main() {
	// CLI args
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	configPath := flags.String("config", "", "yaml config file")
	serve := flags.Bool("serve", false, "run the HTTP comparison service")
	remote := flags.String("remote", "", "base URL of a comparison service to run against")
	policy := flags.String("policy", "", "run a single policy ("+policyNames()+") instead of comparing all")
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	logger := schedlog.BuildLogger(cfg.LogLevel)

	if *serve {
		app := api.NewApp(api.NewSchedulerHandlerImpl(cfg, logger))
		addr := fmt.Sprintf(":%d", cfg.Port)
		logger.Info("listening", slog.String("addr", addr))
		log.Fatalln(app.Listen(addr))
	}

	f, closeFile, err := openProcessingFile(flags.Args()...)
	if err != nil {
		log.Fatal(err)
	}
	defer closeFile()

	// Load and parse processes
	processes, err := process.Load(f)
	if err != nil {
		log.Fatal(err)
	}

	if *policy != "" {
		result, err := schedule(processes, *policy, cfg.Options(), *remote, logger)
		if err != nil {
			logger.Error("scheduling failed", slog.String("policy", *policy), schedlog.ErrAttr(err))
			log.Fatal(err)
		}
		report.WriteSchedule(os.Stdout, result)
		return
	}

	comparison, err := compare(processes, cfg.Options(), *remote, logger)
	if err != nil {
		logger.Error("comparison failed", schedlog.ErrAttr(err))
		log.Fatal(err)
	}

	report.Write(os.Stdout, comparison)
}

func compare(processes []process.Process, opts schedulers.Options, remote string, logger *slog.Logger) (responses.ComparisonResponse, error) {
	if remote != "" {
		return client.New(remote).Compare(context.Background(), requests.NewScheduleRequest(processes, opts))
	}

	c, err := schedulers.NewSimulator(logger).Compare(processes, opts)
	if err != nil {
		return responses.ComparisonResponse{}, err
	}
	return responses.NewComparisonResponse(c), nil
}

func schedule(processes []process.Process, policy string, opts schedulers.Options, remote string, logger *slog.Logger) (responses.ScheduleResponse, error) {
	if remote != "" {
		return client.New(remote).Schedule(context.Background(), policy, requests.NewScheduleRequest(processes, opts))
	}

	r, err := schedulers.NewSimulator(logger).Run(policy, processes, opts)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return responses.NewScheduleResponse(r), nil
}

func policyNames() string {
	var names []string
	for _, p := range schedulers.Policies() {
		names = append(names, strings.ToLower(p.Name))
	}
	return strings.Join(names, ", ")
}

func openProcessingFile(args ...string) (io.Reader, func(), error) {
	if len(args) != 1 {
		return nil, nil, fmt.Errorf("%w: must give a scheduling file to process", ErrInvalidArgs)
	}
	// Read in CSV process CSV file
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("%v: error opening scheduling file", err)
	}
	closeFn := func() {
		if err := f.Close(); err != nil {
			log.Fatalf("%v: error closing scheduling file", err)
		}
	}

	return f, closeFn, nil
}
