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
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/icon-project/cwd-sdk/contract"
)

type field struct {
	num    protowire.Number
	bytes  []byte
	varint uint64
}

func decodeFields(t *testing.T, b []byte) []field {
	var l []field
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		require.True(t, n > 0)
		b = b[n:]
		f := field{num: num}
		switch typ {
		case protowire.VarintType:
			f.varint, n = protowire.ConsumeVarint(b)
		case protowire.BytesType:
			f.bytes, n = protowire.ConsumeBytes(b)
		default:
			require.FailNow(t, "unexpected wire type", typ)
		}
		require.True(t, n >= 0)
		b = b[n:]
		l = append(l, f)
	}
	return l
}

func fieldsOf(t *testing.T, b []byte, num protowire.Number) []field {
	var l []field
	for _, f := range decodeFields(t, b) {
		if f.num == num {
			l = append(l, f)
		}
	}
	return l
}

func Test_MsgExecuteContract(t *testing.T) {
	m := &MsgExecuteContract{
		Sender:   "a",
		Contract: "b",
		Msg:      []byte("{}"),
		Funds:    contract.Coins{{Denom: "u", Amount: "1"}},
	}
	assert.Equal(t, "0a01611201621a027b7d2a060a0175120131", hex.EncodeToString(m.Marshal()))

	m.Funds = nil
	assert.Equal(t, "0a01611201621a027b7d", hex.EncodeToString(m.Marshal()))

	a := m.Any()
	fs := decodeFields(t, a.Marshal())
	require.Len(t, fs, 2)
	assert.Equal(t, TypeURLMsgExecuteContract, string(fs[0].bytes))
	assert.Equal(t, m.Marshal(), fs[1].bytes)
}

func Test_TxBody(t *testing.T) {
	m := &MsgExecuteContract{Sender: "a", Contract: "b", Msg: []byte("{}")}
	body := &TxBody{Messages: []*Any{m.Any()}, Memo: "memo"}
	fs := decodeFields(t, body.Marshal())
	require.Len(t, fs, 2)
	assert.Equal(t, protowire.Number(1), fs[0].num)
	assert.Equal(t, protowire.Number(2), fs[1].num)
	assert.Equal(t, "memo", string(fs[1].bytes))

	body.Memo = ""
	assert.Len(t, decodeFields(t, body.Marshal()), 1)
}

func Test_AuthInfo(t *testing.T) {
	ai := &AuthInfo{
		SignerInfos: []*SignerInfo{{}},
		Fee:         &Fee{},
	}
	assert.Equal(t, "0a0612040a0208011200", hex.EncodeToString(ai.Marshal()))

	pub := make([]byte, 33)
	pub[0] = 2
	ai = &AuthInfo{
		SignerInfos: []*SignerInfo{{PubKey: pub, Sequence: 3}},
		Fee:         &Fee{Amount: contract.Coins{{Denom: "ujuno", Amount: "3250"}}, GasLimit: 130000},
	}
	fs := decodeFields(t, ai.Marshal())
	require.Len(t, fs, 2)

	si := decodeFields(t, fs[0].bytes)
	require.Len(t, si, 3)
	pk := decodeFields(t, si[0].bytes)
	assert.Equal(t, TypeURLSecp256k1PubKey, string(pk[0].bytes))
	assert.Equal(t, pub, decodeFields(t, pk[1].bytes)[0].bytes)
	assert.Equal(t, uint64(3), si[2].varint)

	fee := decodeFields(t, fs[1].bytes)
	require.Len(t, fee, 2)
	coin := decodeFields(t, fee[0].bytes)
	assert.Equal(t, "ujuno", string(coin[0].bytes))
	assert.Equal(t, "3250", string(coin[1].bytes))
	assert.Equal(t, uint64(130000), fee[1].varint)
}

func Test_SignDoc(t *testing.T) {
	doc := &SignDoc{
		BodyBytes:     []byte{1},
		AuthInfoBytes: []byte{2},
		ChainID:       "c",
		AccountNumber: 4,
	}
	assert.Equal(t, "0a01011201021a01632004", hex.EncodeToString(doc.Marshal()))
}

func Test_TxRaw(t *testing.T) {
	tx := &TxRaw{
		BodyBytes:     []byte{1},
		AuthInfoBytes: []byte{2},
		Signatures:    [][]byte{{}},
	}
	b := tx.Marshal()
	assert.Equal(t, "0a01011201021a00", hex.EncodeToString(b))

	d, err := UnmarshalTxRaw(b)
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, d.BodyBytes)
	assert.Equal(t, []byte{2}, d.AuthInfoBytes)
	require.Len(t, d.Signatures, 1)
	assert.Empty(t, d.Signatures[0])

	_, err = UnmarshalTxRaw([]byte{0x0a, 0x05, 0x01})
	assert.Error(t, err)
}
