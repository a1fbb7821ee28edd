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

package ledger

import (
	"github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/hashgraph/hedera-settlement/app/config"
	"github.com/hashgraph/hedera-settlement/app/domain/types"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// NewStoreFromConfig creates the store with the genesis account holding the initial supply and the empty funding
// account which collects the network fees
func NewStoreFromConfig(cfg *config.Config) (*Store, error) {
	ledgerConfig := cfg.Ledger
	genesis := ledgerConfig.Genesis
	if genesis.Account.IsZero() || ledgerConfig.FundingAccount.IsZero() {
		return nil, errors.New("Genesis and funding accounts are required")
	}

	if genesis.Account == ledgerConfig.FundingAccount {
		return nil, errors.New("Genesis account and funding account must be different")
	}

	if genesis.Account.EntityNum >= ledgerConfig.FirstEntityNum ||
		ledgerConfig.FundingAccount.EntityNum >= ledgerConfig.FirstEntityNum {
		return nil, errors.Errorf("ledger.firstEntityNum %d must be above the system accounts",
			ledgerConfig.FirstEntityNum)
	}

	if genesis.Balance < 0 {
		return nil, errors.Errorf("Invalid genesis balance %d", genesis.Balance)
	}

	var genesisKey *types.PublicKey
	if genesis.Key != "" {
		key, err := hedera.PublicKeyFromString(genesis.Key)
		if err != nil {
			return nil, errors.Wrap(err, "Invalid genesis key")
		}
		genesisKey = &types.PublicKey{PublicKey: key}
	}

	store := NewStore(cfg.Shard, cfg.Realm, ledgerConfig.FirstEntityNum)
	store.state.accounts[genesis.Account] = types.Account{
		Id:              genesis.Account,
		AutoRenewPeriod: types.DefaultAutoRenewPeriod,
		Balance:         genesis.Balance,
		Key:             genesisKey,
	}
	store.state.accounts[ledgerConfig.FundingAccount] = types.Account{
		Id:              ledgerConfig.FundingAccount,
		AutoRenewPeriod: types.DefaultAutoRenewPeriod,
	}

	log.Infof("Created ledger with genesis account %s and funding account %s", genesis.Account,
		ledgerConfig.FundingAccount)
	return store, nil
}
