/*
 * Copyright 2023 ICON Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package service

import (
	"context"

	"github.com/icon-project/btp2/common/log"
	"gorm.io/gorm"

	"github.com/icon-project/cwd-sdk/contract"
	"github.com/icon-project/cwd-sdk/database"
)

const (
	JournalTableName = "tx_journal"
)

type TxRecord struct {
	database.Model
	Network   string `json:"network" gorm:"index"`
	Service   string `json:"service" gorm:"index"`
	Method    string `json:"method"`
	Sender    string `json:"sender"`
	TxHash    string `json:"tx_hash" gorm:"uniqueIndex"`
	Height    int64  `json:"height"`
	GasWanted int64  `json:"gas_wanted"`
	GasUsed   int64  `json:"gas_used"`
}

// JournalService records the transactions executed through the wrapped
// Service. Failing to record does not fail the Invoke.
type JournalService struct {
	Service
	senders map[string]contract.Address
	r       database.Repository[TxRecord]
	l       log.Logger
}

func NewJournalService(s Service, networks map[string]Network, db *gorm.DB, l log.Logger) (*JournalService, error) {
	r, err := database.NewDefaultRepository[TxRecord](db, JournalTableName)
	if err != nil {
		return nil, err
	}
	senders := make(map[string]contract.Address)
	for network, n := range networks {
		if n.Signer != nil {
			senders[network] = n.Signer.Address()
		}
	}
	return &JournalService{
		Service: s,
		senders: senders,
		r:       r,
		l:       l.WithFields(log.Fields{log.FieldKeyModule: "journal", FieldKeyService: s.Name()}),
	}, nil
}

func (s *JournalService) Invoke(ctx context.Context, network, method string, params contract.Params, options contract.Options) (*contract.ExecuteResult, error) {
	ret, err := s.Service.Invoke(ctx, network, method, params, options)
	if err != nil {
		return nil, err
	}
	rec := &TxRecord{
		Network:   network,
		Service:   s.Name(),
		Method:    method,
		Sender:    string(s.senders[network]),
		TxHash:    ret.TransactionHash,
		Height:    ret.Height,
		GasWanted: ret.GasWanted,
		GasUsed:   ret.GasUsed,
	}
	if err = s.r.Save(rec); err != nil {
		s.l.Warnf("fail to save TxRecord tx:%s err:%+v", rec.TxHash, err)
	} else {
		s.l.Debugf("saved network:%s method:%s tx:%s", network, method, rec.TxHash)
	}
	return ret, nil
}

func (s *JournalService) Records(network string, p database.Pageable) (*database.Page[TxRecord], error) {
	if len(p.Sort) == 0 {
		p.Sort = "id desc"
	}
	return s.r.Page(p, "network = ? AND service = ?", network, s.Name())
}
