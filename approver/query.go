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
package approver

import (
	"context"

	"github.com/icon-project/cwd-sdk/contract"
)

// QueryClient issues the read-only queries of a cwd-pre-propose-approver contract.
type QueryClient struct {
	c       contract.QueryClient
	address contract.Address
}

func NewQueryClient(c contract.QueryClient, address contract.Address) *QueryClient {
	return &QueryClient{
		c:       c,
		address: address,
	}
}

func (q *QueryClient) ContractAddress() contract.Address {
	return q.address
}

func (q *QueryClient) query(ctx context.Context, msg *QueryMsg, v interface{}) error {
	raw, err := q.c.QueryContractSmart(ctx, q.address, msg)
	if err != nil {
		return err
	}
	return contract.DecodeResult(raw, v)
}

func (q *QueryClient) ProposalModule(ctx context.Context) (Addr, error) {
	var r Addr
	if err := q.query(ctx, &QueryMsg{ProposalModule: &Empty{}}, &r); err != nil {
		return "", err
	}
	return r, nil
}

func (q *QueryClient) Dao(ctx context.Context) (Addr, error) {
	var r Addr
	if err := q.query(ctx, &QueryMsg{Dao: &Empty{}}, &r); err != nil {
		return "", err
	}
	return r, nil
}

func (q *QueryClient) Config(ctx context.Context) (*Config, error) {
	r := &Config{}
	if err := q.query(ctx, &QueryMsg{Config: &Empty{}}, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (q *QueryClient) DepositInfo(ctx context.Context, proposalID uint64) (*DepositInfoResponse, error) {
	r := &DepositInfoResponse{}
	msg := &QueryMsg{DepositInfo: &DepositInfoQuery{ProposalID: proposalID}}
	if err := q.query(ctx, msg, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (q *QueryClient) ProposalSubmittedHooks(ctx context.Context) (*HooksResponse, error) {
	r := &HooksResponse{}
	if err := q.query(ctx, &QueryMsg{ProposalSubmittedHooks: &Empty{}}, r); err != nil {
		return nil, err
	}
	return r, nil
}

// QueryExtension returns the response of the extension query untouched.
func (q *QueryClient) QueryExtension(ctx context.Context, msg QueryExt) (Binary, error) {
	return q.c.QueryContractSmart(ctx, q.address, &QueryMsg{QueryExtension: &QueryExtensionQuery{Msg: msg}})
}

func (q *QueryClient) PreProposeApprovalContract(ctx context.Context) (Addr, error) {
	raw, err := q.QueryExtension(ctx, QueryExt{PreProposeApprovalContract: &Empty{}})
	if err != nil {
		return "", err
	}
	var r Addr
	if err = contract.DecodeResult(raw, &r); err != nil {
		return "", err
	}
	return r, nil
}

// PreProposeApprovalIDForApproverProposalID returns nil if id is unknown to the contract.
func (q *QueryClient) PreProposeApprovalIDForApproverProposalID(ctx context.Context, id uint64) (*uint64, error) {
	return q.optionalID(ctx, QueryExt{PreProposeApprovalIDForApproverProposalID: &QueryExtID{ID: id}})
}

// ApproverProposalIDForPreProposeApprovalID returns nil if id is unknown to the contract.
func (q *QueryClient) ApproverProposalIDForPreProposeApprovalID(ctx context.Context, id uint64) (*uint64, error) {
	return q.optionalID(ctx, QueryExt{ApproverProposalIDForPreProposeApprovalID: &QueryExtID{ID: id}})
}

func (q *QueryClient) optionalID(ctx context.Context, msg QueryExt) (*uint64, error) {
	raw, err := q.QueryExtension(ctx, msg)
	if err != nil {
		return nil, err
	}
	var r *uint64
	if err = contract.DecodeResult(raw, &r); err != nil {
		return nil, err
	}
	return r, nil
}
