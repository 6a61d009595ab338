package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"medscribe.com/scribe/api"
	"medscribe.com/scribe/logger"
	"medscribe.com/scribe/pipeline"
	"medscribe.com/scribe/types"
	"medscribe.com/scribe/worker"
)

type Config struct {
	ConfigPath    string `envconfig:"SCRIBE_CONFIG_PATH"`
	RestAPIActive bool   `envconfig:"SCRIBE_REST_API_ACTIVE" default:"false"`
	RestAPIPort   string `envconfig:"SCRIBE_REST_API_PORT" default:"10000"`
}

const pipelineStartMaxRetries = 5

func main() {
	logger.SetupLogging()
	mainLogger := logger.NewLogger("Main")
	fatalErrLogger := mainLogger.Fatal().Caller()
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		fatalErrLogger.Err(err).Msg("Failed to read environment")
		os.Exit(1)
	}

	pipelineChannel := make(chan pipeline.Pipeline)
	go func() {
		for retry := 0; retry < pipelineStartMaxRetries; retry++ {
			cfg, err := loadConfiguration(config.ConfigPath)
			if err != nil {
				mainLogger.Err(err).Msg("Failed to load configuration. Retrying in 5 sec")
				time.Sleep(5 * time.Second)
				continue
			}
			mainLogger.Info().Msgf("Loaded configuration %q", cfg.Name)
			ppln, err := pipeline.MedicalScribe(cfg)
			if err != nil {
				mainLogger.Err(err).Msg("Failed to start medical scribe pipeline. Retrying in 5 sec")
				time.Sleep(5 * time.Second)
				continue
			}
			mainLogger.Info().Msg("Pipeline loaded")
			pipelineChannel <- ppln
			return
		}
		fatalErrLogger.Msg("Could not start pipeline after 5 retries, exiting")
		os.Exit(1)
	}()

	// block until pipeline loads
	ppln := <-pipelineChannel

	if config.RestAPIActive {
		go func() {
			mainLogger.Info().Msg("Starting API service")
			apiRequest := &api.Request{
				Pipeline: ppln,
			}
			http.HandleFunc("/", apiRequest.ProcessData)
			host := fmt.Sprintf(":%s", config.RestAPIPort)
			mainLogger.Info().Msgf("REST API on %s", host)
			err := http.ListenAndServe(host, nil)
			fatalErrLogger.Err(err).Msg("REST API stopped with error")
		}()
	}

	mainLogger.Info().Msg("Start Scribe Worker")
	for {
		rmqWorker, err := worker.New(ppln)
		if err != nil {
			mainLogger.Fatal().Err(err).Msg("Could not initialize RMQ worker")
			os.Exit(1)
		}
		err = rmqWorker.StartWorker()
		if err != nil {
			mainLogger.Err(err).Msg("Worker returned with error. Launching new in 5 seconds")
			time.Sleep(5 * time.Second)
		}
	}
}

func loadConfiguration(configPath string) (types.Configuration, error) {
	if configPath == "" {
		return types.DefaultConfiguration(), nil
	}
	cfgs, err := types.LoadConfigurations(configPath)
	if err != nil {
		return types.Configuration{}, err
	}
	for _, cfg := range cfgs {
		if cfg.Pipeline == types.MedicalScribePipeline {
			return cfg, nil
		}
	}
	return types.Configuration{}, fmt.Errorf("no %q pipeline configuration found in %s", types.MedicalScribePipeline, configPath)
}
