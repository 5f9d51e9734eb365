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
	"testing"

	"github.com/icon-project/btp2/common/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseCoins(t *testing.T) {
	c, err := ParseCoins("10uatom,5ujuno")
	require.NoError(t, err)
	assert.Equal(t, Coins{{Denom: "uatom", Amount: "10"}, {Denom: "ujuno", Amount: "5"}}, c)
	assert.Equal(t, "10uatom,5ujuno", c.String())

	c, err = ParseCoins("1ibc/27394FB092D2ECCD56123C74F36E4C1F926001CEADA9CA97EA622B25F41E5EB2")
	require.NoError(t, err)
	assert.Equal(t, "ibc/27394FB092D2ECCD56123C74F36E4C1F926001CEADA9CA97EA622B25F41E5EB2", c[0].Denom)

	c, err = ParseCoins("")
	require.NoError(t, err)
	assert.Nil(t, c)

	_, err = ParseCoins("10")
	assert.Equal(t, ErrorCodeInvalidParam, errors.CodeOf(err))
	_, err = ParseCoins("uatom10")
	assert.Error(t, err)
}

func Test_ExecuteOptions(t *testing.T) {
	var o *ExecuteOptions
	assert.True(t, o.GetFee().IsAuto())
	assert.Empty(t, o.GetMemo())
	assert.Nil(t, o.GetFunds())

	o = &ExecuteOptions{}
	require.NoError(t, json.Unmarshal([]byte(`{"fee":1.4,"memo":"hi","funds":[{"denom":"uatom","amount":"1"}]}`), o))
	assert.Equal(t, FeeOfMultiplier(1.4), o.GetFee())
	assert.Equal(t, "hi", o.GetMemo())
	assert.Equal(t, Coins{{Denom: "uatom", Amount: "1"}}, o.GetFunds())
}

func Test_DecodeResult(t *testing.T) {
	var s string
	require.NoError(t, DecodeResult(json.RawMessage(`"juno1abc"`), &s))
	assert.Equal(t, "juno1abc", s)

	err := DecodeResult(json.RawMessage(`{"a":1}`), &s)
	assert.Equal(t, ErrorCodeInvalidResult, errors.CodeOf(err))
}

func Test_Options(t *testing.T) {
	type opt struct {
		Prefix   string   `json:"prefix"`
		LogLevel LogLevel `json:"log_level"`
	}
	o, err := EncodeOptions(opt{Prefix: "juno", LogLevel: LogLevel(2)})
	require.NoError(t, err)
	assert.Equal(t, "juno", o["prefix"])

	var d opt
	require.NoError(t, DecodeOptions(o, &d))
	assert.Equal(t, "juno", d.Prefix)
	assert.Equal(t, LogLevel(2), d.LogLevel)

	err = DecodeOptions(Options{"prefix": 1}, &d)
	assert.Equal(t, ErrorCodeInvalidOption, errors.CodeOf(err))

	var p struct {
		ID uint64 `json:"id"`
	}
	require.NoError(t, DecodeParams(Params{"id": 3}, &p))
	assert.Equal(t, uint64(3), p.ID)
	err = DecodeParams(Params{"id": "x"}, &p)
	assert.Equal(t, ErrorCodeInvalidParam, errors.CodeOf(err))
}

func Test_TxResult(t *testing.T) {
	r := &TxResult{TxHash: "AB", Height: 10, GasUsed: 5, GasWanted: 7}
	assert.True(t, r.Success())
	er := r.ExecuteResult()
	assert.Equal(t, "AB", er.TransactionHash)
	assert.Equal(t, int64(10), er.Height)
	r.Code = 5
	assert.False(t, r.Success())

	e := &TxFailedError{TxHash: "AB", Height: 10, Code: 5, RawLog: "out of gas"}
	assert.Equal(t, "Error when broadcasting tx AB at height 10. Code: 5; Raw log: out of gas", e.Error())
	assert.Equal(t, ErrorCodeTxFailed, errors.CodeOf(e))
}
