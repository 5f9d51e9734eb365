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
package cosmwasm

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/icon-project/btp2/common/errors"
	"github.com/icon-project/btp2/common/log"

	"github.com/icon-project/cwd-sdk/contract"
)

const (
	NetworkTypeCosmWasm        = "cosmwasm"
	DefaultBroadcastTimeoutSec = 60
	DefaultGetResultInterval   = time.Second
	DefaultAccountCacheSize    = 64
	pathSmartQuery             = "/cosmwasm/wasm/v1/contract/"
	pathAccount                = "/cosmos/auth/v1beta1/accounts/"
	pathNodeInfo               = "/cosmos/base/tendermint/v1beta1/node_info"
	pathSimulate               = "/cosmos/tx/v1beta1/simulate"
	pathTxs                    = "/cosmos/tx/v1beta1/txs"
	broadcastModeSync          = "BROADCAST_MODE_SYNC"
)

func init() {
	contract.RegisterAdaptorFactory(NewAdaptor, NetworkTypeCosmWasm)
}

type AdaptorOption struct {
	ChainID             string            `json:"chain_id,omitempty"`
	Prefix              string            `json:"prefix,omitempty"`
	GasPrice            contract.GasPrice `json:"gas_price"`
	GasMultiplier       float64           `json:"gas_multiplier,omitempty"`
	BroadcastTimeoutSec uint              `json:"broadcast_timeout_sec,omitempty"`
	PollIntervalMs      uint              `json:"poll_interval_ms,omitempty"`
	TransportLogLevel   contract.LogLevel `json:"transport_log_level,omitempty"`
}

// Adaptor talks to a CosmWasm enabled chain through its LCD REST endpoint.
type Adaptor struct {
	c           *http.Client
	endpoint    string
	networkType string
	opt         AdaptorOption
	chainID     string
	mtx         sync.Mutex
	seqMtx      sync.Mutex
	accounts    *lru.Cache
	l           log.Logger
}

func NewAdaptor(networkType string, endpoint string, options contract.Options, l log.Logger) (contract.Adaptor, error) {
	opt := &AdaptorOption{}
	if err := contract.DecodeOptions(options, opt); err != nil {
		return nil, err
	}
	opt.TransportLogLevel = contract.LogLevel(contract.EnsureTransportLogLevel(opt.TransportLogLevel.Level()))
	if len(opt.Prefix) == 0 {
		opt.Prefix = DefaultPrefix
	}
	if opt.GasMultiplier == 0 {
		opt.GasMultiplier = contract.DefaultGasMultiplier
	}
	if opt.GasMultiplier < 0 {
		return nil, contract.ErrorCodeInvalidOption.Errorf("invalid gas_multiplier:%v", opt.GasMultiplier)
	}
	if opt.BroadcastTimeoutSec == 0 {
		opt.BroadcastTimeoutSec = DefaultBroadcastTimeoutSec
	}
	accounts, err := lru.New(DefaultAccountCacheSize)
	if err != nil {
		return nil, errors.Wrapf(err, "fail to lru.New err:%s", err.Error())
	}
	return &Adaptor{
		c:           contract.NewHttpClient(opt.TransportLogLevel.Level(), l),
		endpoint:    strings.TrimSuffix(endpoint, "/"),
		networkType: networkType,
		opt:         *opt,
		chainID:     opt.ChainID,
		accounts:    accounts,
		l:           l,
	}, nil
}

func (a *Adaptor) NetworkType() string {
	return a.networkType
}

func (a *Adaptor) Prefix() string {
	return a.opt.Prefix
}

func (a *Adaptor) ChainID(ctx context.Context) (string, error) {
	a.mtx.Lock()
	defer a.mtx.Unlock()
	if len(a.chainID) > 0 {
		return a.chainID, nil
	}
	resp := &struct {
		DefaultNodeInfo struct {
			Network string `json:"network"`
		} `json:"default_node_info"`
	}{}
	if err := a.get(ctx, pathNodeInfo, resp); err != nil {
		return "", err
	}
	if len(resp.DefaultNodeInfo.Network) == 0 {
		return "", contract.ErrorCodeInvalidResult.Errorf("empty network in node_info")
	}
	a.chainID = resp.DefaultNodeInfo.Network
	a.l.Debugf("chain_id:%s", a.chainID)
	return a.chainID, nil
}

func (a *Adaptor) QueryContractSmart(ctx context.Context, address contract.Address, queryMsg interface{}) (json.RawMessage, error) {
	b, err := json.Marshal(queryMsg)
	if err != nil {
		return nil, contract.ErrorCodeInvalidParam.Wrapf(err, "fail to marshal query err:%s", err.Error())
	}
	resp := &struct {
		Data json.RawMessage `json:"data"`
	}{}
	path := pathSmartQuery + string(address) + "/smart/" + base64.URLEncoding.EncodeToString(b)
	if err = a.get(ctx, path, resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

type txResponse struct {
	Height    string           `json:"height"`
	TxHash    string           `json:"txhash"`
	Codespace string           `json:"codespace"`
	Code      uint32           `json:"code"`
	RawLog    string           `json:"raw_log"`
	Logs      []contract.Log   `json:"logs"`
	GasWanted string           `json:"gas_wanted"`
	GasUsed   string           `json:"gas_used"`
	Events    []contract.Event `json:"events"`
}

func parseInt64(s string) (int64, error) {
	if len(s) == 0 {
		return 0, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, contract.ErrorCodeInvalidResult.Wrapf(err, "invalid integer:%s", s)
	}
	return v, nil
}

func (r *txResponse) TxResult() (*contract.TxResult, error) {
	txr := &contract.TxResult{
		TxHash:    r.TxHash,
		Code:      r.Code,
		Codespace: r.Codespace,
		RawLog:    r.RawLog,
		Logs:      r.Logs,
		Events:    r.Events,
	}
	var err error
	if txr.Height, err = parseInt64(r.Height); err != nil {
		return nil, err
	}
	if txr.GasWanted, err = parseInt64(r.GasWanted); err != nil {
		return nil, err
	}
	if txr.GasUsed, err = parseInt64(r.GasUsed); err != nil {
		return nil, err
	}
	return txr, nil
}

func (a *Adaptor) GetResult(ctx context.Context, txHash string) (*contract.TxResult, error) {
	resp := &struct {
		TxResponse *txResponse `json:"tx_response"`
	}{}
	if err := a.get(ctx, pathTxs+"/"+txHash, resp); err != nil {
		if IsNotFound(err) {
			return nil, contract.ErrorCodeNotFoundTransaction.Wrapf(err, "not found tx:%s", txHash)
		}
		return nil, err
	}
	if resp.TxResponse == nil {
		return nil, contract.ErrorCodeNotFoundTransaction.Errorf("not found tx:%s", txHash)
	}
	return resp.TxResponse.TxResult()
}

// WaitResult polls GetResult until the tx is included, timeout elapses or ctx is done.
func (a *Adaptor) WaitResult(ctx context.Context, txHash string, timeout time.Duration) (*contract.TxResult, error) {
	interval := DefaultGetResultInterval
	if a.opt.PollIntervalMs > 0 {
		interval = time.Duration(a.opt.PollIntervalMs) * time.Millisecond
	}
	deadline := time.After(timeout)
	for {
		txr, err := a.GetResult(ctx, txHash)
		if err == nil {
			return txr, nil
		}
		if errors.CodeOf(err) != contract.ErrorCodeNotFoundTransaction {
			return nil, err
		}
		a.l.Tracef("waiting tx:%s", txHash)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline:
			return nil, contract.ErrorCodeNotFoundTransaction.Errorf(
				"Transaction with ID %s was submitted but was not yet found on the chain. You might want to check later. There was a wait of %v.",
				txHash, timeout)
		case <-time.After(interval):
		}
	}
}

type Account struct {
	Number   uint64
	Sequence uint64
}

type baseAccount struct {
	AccountNumber string `json:"account_number"`
	Sequence      string `json:"sequence"`
}

type accountResponse struct {
	baseAccount
	BaseAccount        *baseAccount `json:"base_account"`
	BaseVestingAccount *struct {
		BaseAccount *baseAccount `json:"base_account"`
	} `json:"base_vesting_account"`
}

func (r *accountResponse) base() *baseAccount {
	if r.BaseVestingAccount != nil && r.BaseVestingAccount.BaseAccount != nil {
		return r.BaseVestingAccount.BaseAccount
	}
	if r.BaseAccount != nil {
		return r.BaseAccount
	}
	return &r.baseAccount
}

func (a *Adaptor) Account(ctx context.Context, address contract.Address) (*Account, error) {
	resp := &struct {
		Account *accountResponse `json:"account"`
	}{}
	if err := a.get(ctx, pathAccount+string(address), resp); err != nil {
		if IsNotFound(err) {
			return nil, contract.ErrorCodeInvalidParam.Wrapf(err,
				"Account '%s' does not exist on chain. Send some tokens there before trying to query sequence.", address)
		}
		return nil, err
	}
	if resp.Account == nil {
		return nil, contract.ErrorCodeInvalidResult.Errorf("empty account:%s", address)
	}
	base := resp.Account.base()
	number, err := parseInt64(base.AccountNumber)
	if err != nil {
		return nil, err
	}
	sequence, err := parseInt64(base.Sequence)
	if err != nil {
		return nil, err
	}
	return &Account{Number: uint64(number), Sequence: uint64(sequence)}, nil
}

// Simulate returns the gas used by the unsigned tx.
func (a *Adaptor) Simulate(ctx context.Context, txBytes []byte) (uint64, error) {
	resp := &struct {
		GasInfo *struct {
			GasUsed string `json:"gas_used"`
		} `json:"gas_info"`
	}{}
	req := map[string]string{"tx_bytes": base64.StdEncoding.EncodeToString(txBytes)}
	if err := a.post(ctx, pathSimulate, req, resp); err != nil {
		return 0, err
	}
	if resp.GasInfo == nil {
		return 0, contract.ErrorCodeInvalidResult.Errorf("empty gas_info in simulate response")
	}
	v, err := parseInt64(resp.GasInfo.GasUsed)
	if err != nil {
		return 0, err
	}
	return uint64(v), nil
}

// Broadcast sends the signed tx and returns its CheckTx result.
func (a *Adaptor) Broadcast(ctx context.Context, txBytes []byte) (*contract.TxResult, error) {
	resp := &struct {
		TxResponse *txResponse `json:"tx_response"`
	}{}
	req := map[string]string{
		"tx_bytes": base64.StdEncoding.EncodeToString(txBytes),
		"mode":     broadcastModeSync,
	}
	if err := a.post(ctx, pathTxs, req, resp); err != nil {
		return nil, err
	}
	if resp.TxResponse == nil {
		return nil, contract.ErrorCodeInvalidResult.Errorf("empty tx_response in broadcast response")
	}
	return resp.TxResponse.TxResult()
}

func (a *Adaptor) NewSigner(keyJson []byte, secret string) (contract.Signer, error) {
	return LoadWallet(keyJson, secret, a.opt.Prefix)
}

func (a *Adaptor) SigningClient(s contract.Signer) contract.SigningClient {
	return NewSigningClient(a, s)
}
