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
	"encoding/json"
	"regexp"
	"strings"
)

// Address is a bech32 encoded account or contract address.
type Address string

var (
	coinRegexp = regexp.MustCompile(`^([0-9]+)([a-zA-Z][a-zA-Z0-9/:._-]{2,127})$`)
)

type Coin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

func (c Coin) String() string {
	return c.Amount + c.Denom
}

func ParseCoin(s string) (Coin, error) {
	m := coinRegexp.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Coin{}, ErrorCodeInvalidParam.Errorf("invalid coin:%s", s)
	}
	return Coin{Denom: m[2], Amount: m[1]}, nil
}

type Coins []Coin

func (c Coins) String() string {
	l := make([]string, len(c))
	for i, v := range c {
		l[i] = v.String()
	}
	return strings.Join(l, ",")
}

// ParseCoins parses comma separated coins like "10uatom,5ujuno".
func ParseCoins(s string) (Coins, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	r := make(Coins, len(parts))
	for i, p := range parts {
		c, err := ParseCoin(p)
		if err != nil {
			return nil, err
		}
		r[i] = c
	}
	return r, nil
}

type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type Event struct {
	Type       string      `json:"type"`
	Attributes []Attribute `json:"attributes"`
}

type Log struct {
	MsgIndex int     `json:"msg_index"`
	Log      string  `json:"log"`
	Events   []Event `json:"events"`
}

type ExecuteResult struct {
	Logs            []Log   `json:"logs"`
	Height          int64   `json:"height"`
	TransactionHash string  `json:"transactionHash"`
	Events          []Event `json:"events"`
	GasWanted       int64   `json:"gasWanted"`
	GasUsed         int64   `json:"gasUsed"`
}

// ExecuteOptions carries the transaction controls shared by every execute
// message. A nil *ExecuteOptions means automatic fee, no memo and no funds.
type ExecuteOptions struct {
	Fee   Fee    `json:"fee,omitempty"`
	Memo  string `json:"memo,omitempty"`
	Funds Coins  `json:"funds,omitempty"`
}

func (o *ExecuteOptions) GetFee() Fee {
	if o == nil {
		return FeeAuto
	}
	return o.Fee
}

func (o *ExecuteOptions) GetMemo() string {
	if o == nil {
		return ""
	}
	return o.Memo
}

func (o *ExecuteOptions) GetFunds() Coins {
	if o == nil {
		return nil
	}
	return o.Funds
}

// DecodeResult unmarshals the raw response of a smart query into v.
func DecodeResult(raw json.RawMessage, v interface{}) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return ErrorCodeInvalidResult.Wrapf(err, "fail to decode result err:%s", err.Error())
	}
	return nil
}

