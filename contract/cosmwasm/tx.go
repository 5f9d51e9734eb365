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
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/icon-project/cwd-sdk/contract"
)

const (
	TypeURLMsgExecuteContract = "/cosmwasm.wasm.v1.MsgExecuteContract"
	TypeURLSecp256k1PubKey    = "/cosmos.crypto.secp256k1.PubKey"

	SignModeDirect = 1
)

func appendString(b []byte, num protowire.Number, v string) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	return appendMessage(b, num, v)
}

// appendMessage writes v even if empty, as required for embedded messages
// and elements of repeated fields.
func appendMessage(b []byte, num protowire.Number, v []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

type Any struct {
	TypeURL string
	Value   []byte
}

func (m *Any) Marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.TypeURL)
	return appendBytes(b, 2, m.Value)
}

func marshalCoin(c contract.Coin) []byte {
	var b []byte
	b = appendString(b, 1, c.Denom)
	return appendString(b, 2, c.Amount)
}

func appendCoins(b []byte, num protowire.Number, coins contract.Coins) []byte {
	for _, c := range coins {
		b = appendMessage(b, num, marshalCoin(c))
	}
	return b
}

type MsgExecuteContract struct {
	Sender   string
	Contract string
	Msg      []byte
	Funds    contract.Coins
}

func (m *MsgExecuteContract) Marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.Sender)
	b = appendString(b, 2, m.Contract)
	b = appendBytes(b, 3, m.Msg)
	return appendCoins(b, 5, m.Funds)
}

func (m *MsgExecuteContract) Any() *Any {
	return &Any{TypeURL: TypeURLMsgExecuteContract, Value: m.Marshal()}
}

type TxBody struct {
	Messages      []*Any
	Memo          string
	TimeoutHeight uint64
}

func (m *TxBody) Marshal() []byte {
	var b []byte
	for _, msg := range m.Messages {
		b = appendMessage(b, 1, msg.Marshal())
	}
	b = appendString(b, 2, m.Memo)
	return appendVarint(b, 3, m.TimeoutHeight)
}

type SignerInfo struct {
	PubKey   []byte
	Sequence uint64
}

func (m *SignerInfo) Marshal() []byte {
	var b []byte
	if len(m.PubKey) > 0 {
		pk := &Any{TypeURL: TypeURLSecp256k1PubKey, Value: appendBytes(nil, 1, m.PubKey)}
		b = appendMessage(b, 1, pk.Marshal())
	}
	single := appendVarint(nil, 1, SignModeDirect)
	b = appendMessage(b, 2, appendMessage(nil, 1, single))
	return appendVarint(b, 3, m.Sequence)
}

type Fee struct {
	Amount   contract.Coins
	GasLimit uint64
	Payer    string
	Granter  string
}

func (m *Fee) Marshal() []byte {
	var b []byte
	b = appendCoins(b, 1, m.Amount)
	b = appendVarint(b, 2, m.GasLimit)
	b = appendString(b, 3, m.Payer)
	return appendString(b, 4, m.Granter)
}

type AuthInfo struct {
	SignerInfos []*SignerInfo
	Fee         *Fee
}

func (m *AuthInfo) Marshal() []byte {
	var b []byte
	for _, si := range m.SignerInfos {
		b = appendMessage(b, 1, si.Marshal())
	}
	if m.Fee != nil {
		b = appendMessage(b, 2, m.Fee.Marshal())
	}
	return b
}

type SignDoc struct {
	BodyBytes     []byte
	AuthInfoBytes []byte
	ChainID       string
	AccountNumber uint64
}

func (m *SignDoc) Marshal() []byte {
	var b []byte
	b = appendBytes(b, 1, m.BodyBytes)
	b = appendBytes(b, 2, m.AuthInfoBytes)
	b = appendString(b, 3, m.ChainID)
	return appendVarint(b, 4, m.AccountNumber)
}

type TxRaw struct {
	BodyBytes     []byte
	AuthInfoBytes []byte
	Signatures    [][]byte
}

func (m *TxRaw) Marshal() []byte {
	var b []byte
	b = appendBytes(b, 1, m.BodyBytes)
	b = appendBytes(b, 2, m.AuthInfoBytes)
	for _, sig := range m.Signatures {
		b = appendMessage(b, 3, sig)
	}
	return b
}

// UnmarshalTxRaw splits encoded tx bytes into its parts.
func UnmarshalTxRaw(b []byte) (*TxRaw, error) {
	tx := &TxRaw{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, contract.ErrorCodeInvalidParam.Wrapf(protowire.ParseError(n), "fail to ConsumeTag")
		}
		b = b[n:]
		if typ != protowire.BytesType {
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, contract.ErrorCodeInvalidParam.Wrapf(protowire.ParseError(n), "fail to ConsumeFieldValue")
			}
			b = b[n:]
			continue
		}
		v, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return nil, contract.ErrorCodeInvalidParam.Wrapf(protowire.ParseError(n), "fail to ConsumeBytes")
		}
		b = b[n:]
		switch num {
		case 1:
			tx.BodyBytes = v
		case 2:
			tx.AuthInfoBytes = v
		case 3:
			tx.Signatures = append(tx.Signatures, v)
		}
	}
	return tx, nil
}
