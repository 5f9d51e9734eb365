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

package contract

import (
	"context"
	"encoding/json"

	"github.com/icon-project/btp2/common/errors"
	"github.com/icon-project/btp2/common/log"
)

type Params map[string]interface{}
type ReturnValue interface{}

// QueryClient performs read-only smart queries against a contract.
type QueryClient interface {
	QueryContractSmart(ctx context.Context, address Address, queryMsg interface{}) (json.RawMessage, error)
}

// SigningClient executes contract messages in signed transactions.
type SigningClient interface {
	QueryClient
	Execute(ctx context.Context, sender, contractAddress Address, msg interface{},
		fee Fee, memo string, funds Coins) (*ExecuteResult, error)
}

type Signer interface {
	Address() Address
	PubKey() []byte
	Sign(signBytes []byte) ([]byte, error)
}

type TxResult struct {
	TxHash    string  `json:"txhash"`
	Height    int64   `json:"height"`
	Code      uint32  `json:"code"`
	Codespace string  `json:"codespace,omitempty"`
	RawLog    string  `json:"raw_log"`
	Logs      []Log   `json:"logs"`
	Events    []Event `json:"events"`
	GasWanted int64   `json:"gas_wanted"`
	GasUsed   int64   `json:"gas_used"`
}

func (r *TxResult) Success() bool {
	return r.Code == 0
}

func (r *TxResult) ExecuteResult() *ExecuteResult {
	return &ExecuteResult{
		Logs:            r.Logs,
		Height:          r.Height,
		TransactionHash: r.TxHash,
		Events:          r.Events,
		GasWanted:       r.GasWanted,
		GasUsed:         r.GasUsed,
	}
}

type Adaptor interface {
	QueryClient
	NetworkType() string
	ChainID(ctx context.Context) (string, error)
	GetResult(ctx context.Context, txHash string) (*TxResult, error)
	NewSigner(keyJson []byte, secret string) (Signer, error)
	SigningClient(s Signer) SigningClient
}

type Options map[string]interface{}
type AdaptorFactory func(networkType string, endpoint string, opt Options, l log.Logger) (Adaptor, error)

var (
	afMap = make(map[string]AdaptorFactory)
)

func RegisterAdaptorFactory(cf AdaptorFactory, networkTypes ...string) {
	for _, networkType := range networkTypes {
		if _, ok := afMap[networkType]; ok {
			log.Panicln("already registered networkType:" + networkType)
		}
		afMap[networkType] = cf
	}
}

func NewAdaptor(networkType string, endpoint string, opt Options, l log.Logger) (Adaptor, error) {
	if cf, ok := afMap[networkType]; ok {
		l = l.WithFields(log.Fields{log.FieldKeyChain: networkType, log.FieldKeyModule: "contract"})
		return cf(networkType, endpoint, opt, l)
	}
	return nil, errors.New("not supported networkType:" + networkType)
}

func NetworkTypes() []string {
	l := make([]string, 0, len(afMap))
	for k := range afMap {
		l = append(l, k)
	}
	return l
}

func EncodeOptions(v interface{}) (Options, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrapf(err, "fail to EncodeOptions, err:%s", err.Error())
	}
	options := make(Options)
	if err = json.Unmarshal(b, &options); err != nil {
		return nil, errors.Wrapf(err, "fail to EncodeOptions, err:%s", err.Error())
	}
	return options, nil
}

func DecodeOptions(options Options, v interface{}) error {
	b, err := json.Marshal(options)
	if err != nil {
		return errors.Wrapf(err, "fail to DecodeOptions err:%s", err.Error())
	}
	if err = json.Unmarshal(b, v); err != nil {
		return ErrorCodeInvalidOption.Wrapf(err, "fail to DecodeOptions err:%s", err.Error())
	}
	return nil
}

// DecodeParams converts loosely typed params into v.
func DecodeParams(params Params, v interface{}) error {
	b, err := json.Marshal(params)
	if err != nil {
		return errors.Wrapf(err, "fail to DecodeParams err:%s", err.Error())
	}
	if err = json.Unmarshal(b, v); err != nil {
		return ErrorCodeInvalidParam.Wrapf(err, "fail to DecodeParams err:%s", err.Error())
	}
	return nil
}

type LogLevel log.Level

func (l LogLevel) Level() log.Level {
	return log.Level(l)
}
func (l LogLevel) MarshalJSON() ([]byte, error) {
	ll := log.Level(l)
	if ll > log.TraceLevel || ll < log.PanicLevel {
		return nil, errors.New("out of range log.Level")
	}
	return json.Marshal(ll.String())
}

func (l *LogLevel) UnmarshalJSON(input []byte) error {
	var str string
	err := json.Unmarshal(input, &str)
	if err != nil {
		return err
	}
	v, err := log.ParseLevel(str)
	if err != nil {
		return err
	}
	*l = LogLevel(v)
	return nil
}
