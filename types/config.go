package types

import (
	"errors"
	"io/ioutil"
	"os"
	"path"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
	"medscribe.com/scribe/logger"
)

const (
	// pipeline type
	MedicalScribePipeline = "medical_scribe"

	// features
	DialogueFeature  = "dialogue"
	SOAPFeature      = "soap"
	DocumentsFeature = "documents"
)

type Configuration struct {
	Name     string   `json:"name"`
	FilePath string   `json:"file_path"`
	Pipeline string   `yaml:"pipeline" json:"pipeline"`
	Features []string `yaml:"features" json:"features"`
}

func (cfg Configuration) CheckFeature(featureName string) bool {
	for _, feat := range cfg.Features {
		if feat == featureName {
			return true
		}
	}

	return false
}

// DefaultConfiguration enables every bundle section; used when the service
// runs without a configuration directory.
func DefaultConfiguration() Configuration {
	return Configuration{
		Name:     "medical_scribe",
		Pipeline: MedicalScribePipeline,
		Features: []string{DialogueFeature, SOAPFeature, DocumentsFeature},
	}
}

func LoadConfigurations(dirPath string) ([]Configuration, error) {
	scribeLogger := logger.NewLogger("LoadConfigurations")

	files, err := ioutil.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}

	var wg sync.WaitGroup
	configChan := make(chan Configuration, len(files))
	for _, f := range files {
		// Skip dirs and non-yaml files
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".yaml") {
			continue
		}

		wg.Add(1)
		go func(file os.FileInfo) {
			defer wg.Done()
			cfg := Configuration{
				Name:     strings.Split(file.Name(), ".yaml")[0],
				FilePath: path.Join(dirPath, file.Name()),
			}
			buf, err := ioutil.ReadFile(cfg.FilePath)
			if err != nil {
				scribeLogger.Err(err)
				return
			}
			if err := yaml.Unmarshal(buf, &cfg); err != nil {
				scribeLogger.Err(err)
				return
			}

			if cfg.Pipeline != MedicalScribePipeline {
				scribeLogger.Err(errors.New("wrong pipeline type"))
				return
			}

			configChan <- cfg
		}(f)
	}

	go func() {
		wg.Wait()
		close(configChan)
	}()

	configs := make([]Configuration, 0, len(configChan))
	for cfg := range configChan {
		configs = append(configs, cfg)
	}
	return configs, nil
}
