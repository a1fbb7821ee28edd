/*
 * Copyright (C) 2019-2025 Hedera Hashgraph, LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"bytes"
	_ "embed"
	"os"
	"reflect"
	"strings"

	"github.com/hashgraph/hedera-settlement/app/persistence/domain"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

//go:embed application.yml
var defaultConfig string

const (
	apiConfigEnvKey = "HEDERA_SETTLEMENT_CONFIG"
	configName      = "application"
	configTypeYaml  = "yml"
	envKeyDelimiter = "_"
	keyDelimiter    = "::"
)

type fullConfig struct {
	Hedera struct {
		Settlement Config
	}
}

// LoadConfig loads configuration from yaml files and env variables
func LoadConfig() (*Config, error) {
	return LoadConfigFromFile("")
}

// LoadConfigFromFile loads the configuration the same way as LoadConfig, with the extra config file merged last if
// the name is not empty
func LoadConfigFromFile(extraConfigFile string) (*Config, error) {
	// entity ids have '.', set viper key delimiter to avoid parsing them as nested keys
	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))
	v.SetConfigType(configTypeYaml)

	// read the default
	if err := v.ReadConfig(bytes.NewBuffer([]byte(defaultConfig))); err != nil {
		return nil, err
	}

	// load configuration file from current directory
	v.SetConfigName(configName)
	v.AddConfigPath(".")
	if err := mergeExternalConfigFile(v); err != nil {
		return nil, err
	}

	for _, configFile := range []string{os.Getenv(apiConfigEnvKey), extraConfigFile} {
		if configFile == "" {
			continue
		}

		v.SetConfigFile(configFile)
		if err := mergeExternalConfigFile(v); err != nil {
			return nil, err
		}
	}

	// enable parsing env variables after the configuration files are loaded so viper knows all configuration keys
	// and can override the config accordingly
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(keyDelimiter, envKeyDelimiter))

	var config fullConfig
	compositeDecodeHookFunc := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		entityIdDecodeHookFunc,
	)
	if err := v.Unmarshal(&config, viper.DecodeHook(compositeDecodeHookFunc)); err != nil {
		return nil, err
	}

	settlementConfig := &config.Hedera.Settlement
	if err := validate(settlementConfig); err != nil {
		return nil, err
	}

	var password = settlementConfig.Db.Password
	settlementConfig.Db.Password = "" // Don't print password
	log.Infof("Using configuration: %+v", settlementConfig)
	settlementConfig.Db.Password = password

	return settlementConfig, nil
}

func mergeExternalConfigFile(v *viper.Viper) error {
	if err := v.MergeInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}

		log.Info("External configuration file not found")
		return nil
	}

	log.Infof("Loaded external config file: %s", v.ConfigFileUsed())
	return nil
}

func entityIdDecodeHookFunc(from, to reflect.Type, data interface{}) (interface{}, error) {
	if to != reflect.TypeOf(domain.EntityId{}) {
		return data, nil
	}

	switch value := data.(type) {
	case string:
		if value == "" {
			return domain.EntityId{}, nil
		}
		return domain.EntityIdFromString(value)
	case int:
		return domain.DecodeEntityId(int64(value))
	case int64:
		return domain.DecodeEntityId(value)
	default:
		return nil, errors.Errorf("Invalid data type %s for entity id", from)
	}
}

func validate(config *Config) error {
	if config.Tokens.MaxCustomFeeDepth < 0 {
		return errors.Errorf("Invalid tokens.maxCustomFeeDepth %d", config.Tokens.MaxCustomFeeDepth)
	}

	if config.AutoCreation.Fee < 0 || config.LazyCreation.Fee < 0 {
		return errors.New("Auto creation fees must not be negative")
	}

	if config.Ledger.FundingAccount.IsZero() {
		return errors.New("ledger.fundingAccount is required")
	}

	return nil
}
