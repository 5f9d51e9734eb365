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
	"encoding/json"
	"time"

	"github.com/icon-project/btp2/common/log"

	"github.com/icon-project/cwd-sdk/contract"
)

const (
	// sdkerrors.ErrWrongSequence
	codeWrongSequence = 32
)

// SigningClient executes contract messages signed by a single Signer.
type SigningClient struct {
	*Adaptor
	s contract.Signer
	l log.Logger
}

func NewSigningClient(a *Adaptor, s contract.Signer) *SigningClient {
	return &SigningClient{
		Adaptor: a,
		s:       s,
		l:       a.l.WithFields(log.Fields{log.FieldKeyModule: "signing", "signer": s.Address()}),
	}
}

func (c *SigningClient) Signer() contract.Signer {
	return c.s
}

func (c *SigningClient) account(ctx context.Context) (*Account, error) {
	addr := c.s.Address()
	if v, ok := c.accounts.Get(addr); ok {
		return v.(*Account), nil
	}
	acc, err := c.Account(ctx, addr)
	if err != nil {
		return nil, err
	}
	c.accounts.Add(addr, acc)
	return acc, nil
}

func (c *SigningClient) authInfo(sequence uint64, fee *Fee) []byte {
	ai := &AuthInfo{
		SignerInfos: []*SignerInfo{{
			PubKey:   c.s.PubKey(),
			Sequence: sequence,
		}},
		Fee: fee,
	}
	return ai.Marshal()
}

func (c *SigningClient) resolveFee(ctx context.Context, fee contract.Fee, bodyBytes []byte, sequence uint64) (*contract.StdFee, error) {
	if fee.Std != nil {
		return fee.Std, nil
	}
	multiplier := c.opt.GasMultiplier
	if !fee.IsAuto() {
		multiplier, _ = fee.GasMultiplier()
	}
	if c.opt.GasPrice.IsZero() {
		return nil, contract.ErrorCodeInvalidOption.Errorf("gas_price is required for fee:%s", fee)
	}
	tx := &TxRaw{
		BodyBytes:     bodyBytes,
		AuthInfoBytes: c.authInfo(sequence, &Fee{}),
		Signatures:    [][]byte{{}},
	}
	gasUsed, err := c.Simulate(ctx, tx.Marshal())
	if err != nil {
		return nil, err
	}
	std := contract.CalculateFee(contract.EstimatedGasLimit(gasUsed, multiplier), c.opt.GasPrice)
	c.l.Debugf("simulate gas_used:%d multiplier:%v fee:%s gas:%s", gasUsed, multiplier, std.Amount, std.Gas)
	return &std, nil
}

// signAndBroadcast holds the sequence lock until the tx passes CheckTx.
func (c *SigningClient) signAndBroadcast(ctx context.Context, bodyBytes []byte, fee contract.Fee) (*contract.TxResult, error) {
	c.seqMtx.Lock()
	defer c.seqMtx.Unlock()

	acc, err := c.account(ctx)
	if err != nil {
		return nil, err
	}
	std, err := c.resolveFee(ctx, fee, bodyBytes, acc.Sequence)
	if err != nil {
		return nil, err
	}
	gasLimit, err := std.GasLimit()
	if err != nil {
		return nil, contract.ErrorCodeInvalidOption.Wrapf(err, "invalid gas:%s", std.Gas)
	}
	authInfoBytes := c.authInfo(acc.Sequence, &Fee{Amount: std.Amount, GasLimit: gasLimit})
	chainID, err := c.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	doc := &SignDoc{
		BodyBytes:     bodyBytes,
		AuthInfoBytes: authInfoBytes,
		ChainID:       chainID,
		AccountNumber: acc.Number,
	}
	sig, err := c.s.Sign(doc.Marshal())
	if err != nil {
		return nil, err
	}
	tx := &TxRaw{
		BodyBytes:     bodyBytes,
		AuthInfoBytes: authInfoBytes,
		Signatures:    [][]byte{sig},
	}
	txr, err := c.Broadcast(ctx, tx.Marshal())
	if err != nil {
		c.accounts.Remove(c.s.Address())
		return nil, err
	}
	if !txr.Success() {
		if txr.Code == codeWrongSequence {
			c.accounts.Remove(c.s.Address())
		}
		return nil, &contract.TxFailedError{TxHash: txr.TxHash, Height: txr.Height, Code: txr.Code, RawLog: txr.RawLog}
	}
	acc.Sequence++
	c.l.Debugf("broadcast tx:%s sequence:%d", txr.TxHash, acc.Sequence-1)
	return txr, nil
}

func (c *SigningClient) Execute(ctx context.Context, sender, contractAddress contract.Address, msg interface{},
	fee contract.Fee, memo string, funds contract.Coins) (*contract.ExecuteResult, error) {
	if sender != c.s.Address() {
		return nil, contract.ErrorCodeInvalidParam.Errorf("mismatch sender:%s signer:%s", sender, c.s.Address())
	}
	b, err := json.Marshal(msg)
	if err != nil {
		return nil, contract.ErrorCodeInvalidParam.Wrapf(err, "fail to marshal msg err:%s", err.Error())
	}
	m := &MsgExecuteContract{
		Sender:   string(sender),
		Contract: string(contractAddress),
		Msg:      b,
		Funds:    funds,
	}
	body := &TxBody{
		Messages: []*Any{m.Any()},
		Memo:     memo,
	}
	txr, err := c.signAndBroadcast(ctx, body.Marshal(), fee)
	if err != nil {
		return nil, err
	}
	timeout := time.Duration(c.opt.BroadcastTimeoutSec) * time.Second
	if txr, err = c.WaitResult(ctx, txr.TxHash, timeout); err != nil {
		return nil, err
	}
	if !txr.Success() {
		return nil, &contract.TxFailedError{TxHash: txr.TxHash, Height: txr.Height, Code: txr.Code, RawLog: txr.RawLog}
	}
	return txr.ExecuteResult(), nil
}
