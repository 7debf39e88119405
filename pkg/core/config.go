package core

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Config holds the dashboard configuration loaded from config.json.
// The JSON field names are part of the external contract and must not change.
type Config struct {
	// Rollup manager configuration
	RollupManagerContractAddress         string `json:"rollupManagerContractAddress"`
	RollupManagerContractDeploymentBlock uint64 `json:"rollupManagerContractDeploymentBlock"`

	// Endpoints
	RPCURL      string `json:"rpcURL"`
	AggLayerURL string `json:"aggLayerURL"`

	// Per-rollup L2 endpoints, keyed by rollup ID
	L2RPCs map[string]L2Config `json:"l2rpcs"`

	// Server configuration, not part of config.json
	Port          int           `json:"-"`
	CacheTTL      time.Duration `json:"-"`
	ScanBatchSize uint64        `json:"-"`
}

// L2Config describes the L2 endpoints for a single rollup. In config.json a
// value may be either a bare URL string or an object with rpc/blockExplorer.
type L2Config struct {
	RPC           string `json:"rpc"`
	BlockExplorer string `json:"blockExplorer"`
}

// UnmarshalJSON accepts both supported shapes. A bare string is shorthand
// for {"rpc": <string>}.
func (l *L2Config) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		l.RPC = s
		l.BlockExplorer = ""
		return nil
	}

	type alias L2Config
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*l = L2Config(a)
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		Port:          8000,
		CacheTTL:      15 * time.Second,
		ScanBatchSize: 10000,
	}
}

// LoadConfig reads and validates a config.json file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("invalid JSON in config file: %v", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the required fields.
func (c *Config) Validate() error {
	if c.RollupManagerContractAddress == "" {
		return fmt.Errorf("missing required configuration field: rollupManagerContractAddress")
	}
	if !common.IsHexAddress(c.RollupManagerContractAddress) {
		return fmt.Errorf("invalid rollup manager contract address: %s", c.RollupManagerContractAddress)
	}
	if c.RPCURL == "" {
		return fmt.Errorf("missing required configuration field: rpcURL")
	}
	return nil
}

// ManagerAddress returns the rollup manager address in checksummed form.
func (c *Config) ManagerAddress() common.Address {
	return common.HexToAddress(c.RollupManagerContractAddress)
}

// L2RPC returns the L2 configuration for a rollup ID, or nil when absent.
func (c *Config) L2RPC(rollupID string) *L2Config {
	if c.L2RPCs == nil {
		return nil
	}
	l2, ok := c.L2RPCs[rollupID]
	if !ok {
		return nil
	}
	return &l2
}
