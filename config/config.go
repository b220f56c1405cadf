package config

import (
	"encoding/json"
	"os"
	"sync"
)

type Config struct {
	MasterFolderPath     string `json:"masterFolderPath"`
	SyncIntervalMinutes  int    `json:"syncIntervalMinutes"`
	DefaultMinStockLevel int    `json:"defaultMinStockLevel"`
	DefaultMaxStockLevel int    `json:"defaultMaxStockLevel"`
	PortalURL            string `json:"portalURL"`
	PortalUserID         string `json:"portalUserID"`
	PortalPassword       string `json:"portalPassword"`
}

var (
	cfg Config
	mu  sync.RWMutex
)

const configFilePath = "./cemboard_config.json"

func applyDefaults(c *Config) {
	if c.SyncIntervalMinutes == 0 {
		c.SyncIntervalMinutes = 60
	}
	if c.DefaultMinStockLevel == 0 {
		c.DefaultMinStockLevel = 10
	}
	if c.DefaultMaxStockLevel == 0 {
		c.DefaultMaxStockLevel = 1000
	}
}

func LoadConfig() (Config, error) {
	mu.Lock()
	defer mu.Unlock()

	file, err := os.ReadFile(configFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			defaults := Config{}
			applyDefaults(&defaults)
			cfg = defaults
			return defaults, nil
		}
		return Config{}, err
	}

	var tempCfg Config
	if err := json.Unmarshal(file, &tempCfg); err != nil {
		return Config{}, err
	}
	applyDefaults(&tempCfg)
	cfg = tempCfg

	return cfg, nil
}

func SaveConfig(newCfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	applyDefaults(&newCfg)

	file, err := json.MarshalIndent(newCfg, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(configFilePath, file, 0644); err != nil {
		return err
	}
	cfg = newCfg
	return nil
}

func GetConfig() Config {
	mu.RLock()
	defer mu.RUnlock()
	c := cfg
	applyDefaults(&c)
	return c
}
