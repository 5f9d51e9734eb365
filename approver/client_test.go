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
	"encoding/json"
	"reflect"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/icon-project/btp2/common/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icon-project/cwd-sdk/contract"
	"github.com/icon-project/cwd-sdk/contract/mock_contract"
)

const (
	contractAddr = contract.Address("juno1approver")
	senderAddr   = contract.Address("juno1sender")
)

type jsonMatcher struct {
	expected string
}

func (m jsonMatcher) Matches(x interface{}) bool {
	b, err := json.Marshal(x)
	if err != nil {
		return false
	}
	var v1, v2 interface{}
	if json.Unmarshal(b, &v1) != nil || json.Unmarshal([]byte(m.expected), &v2) != nil {
		return false
	}
	return reflect.DeepEqual(v1, v2)
}

func (m jsonMatcher) String() string {
	return "marshals to " + m.expected
}

func wire(s string) gomock.Matcher {
	return jsonMatcher{expected: s}
}

func newQueryClient(t *testing.T) (*QueryClient, *mock_contract.MockQueryClient) {
	ctrl := gomock.NewController(t)
	m := mock_contract.NewMockQueryClient(ctrl)
	return NewQueryClient(m, contractAddr), m
}

func newClient(t *testing.T) (*Client, *mock_contract.MockSigningClient) {
	ctrl := gomock.NewController(t)
	m := mock_contract.NewMockSigningClient(ctrl)
	return NewClient(m, senderAddr, contractAddr), m
}

func Test_QueryWire(t *testing.T) {
	ctx := context.Background()
	q, m := newQueryClient(t)

	m.EXPECT().QueryContractSmart(ctx, contractAddr, wire(`{"proposal_module":{}}`)).
		Return(json.RawMessage(`"juno1proposal"`), nil)
	addr, err := q.ProposalModule(ctx)
	require.NoError(t, err)
	assert.Equal(t, Addr("juno1proposal"), addr)

	m.EXPECT().QueryContractSmart(ctx, contractAddr, wire(`{"dao":{}}`)).
		Return(json.RawMessage(`"juno1dao"`), nil)
	addr, err = q.Dao(ctx)
	require.NoError(t, err)
	assert.Equal(t, Addr("juno1dao"), addr)

	m.EXPECT().QueryContractSmart(ctx, contractAddr, wire(`{"config":{}}`)).
		Return(json.RawMessage(`{"deposit_info":{"denom":{"native":"ujuno"},"amount":"100","refund_policy":"only_passed"},"open_proposal_submission":false}`), nil)
	cfg, err := q.Config(ctx)
	require.NoError(t, err)
	require.NotNil(t, cfg.DepositInfo)
	require.NotNil(t, cfg.DepositInfo.Denom.Native)
	assert.Equal(t, "ujuno", *cfg.DepositInfo.Denom.Native)
	assert.Nil(t, cfg.DepositInfo.Denom.Cw20)
	assert.Equal(t, Uint128("100"), cfg.DepositInfo.Amount)
	assert.Equal(t, DepositRefundPolicyOnlyPassed, cfg.DepositInfo.RefundPolicy)
	assert.False(t, cfg.OpenProposalSubmission)

	m.EXPECT().QueryContractSmart(ctx, contractAddr, wire(`{"deposit_info":{"proposal_id":5}}`)).
		Return(json.RawMessage(`{"deposit_info":null,"proposer":"juno1proposer"}`), nil)
	di, err := q.DepositInfo(ctx, 5)
	require.NoError(t, err)
	assert.Nil(t, di.DepositInfo)
	assert.Equal(t, Addr("juno1proposer"), di.Proposer)

	m.EXPECT().QueryContractSmart(ctx, contractAddr, wire(`{"proposal_submitted_hooks":{}}`)).
		Return(json.RawMessage(`{"hooks":["juno1a","juno1b"]}`), nil)
	hooks, err := q.ProposalSubmittedHooks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"juno1a", "juno1b"}, hooks.Hooks)

	m.EXPECT().QueryContractSmart(ctx, contractAddr, wire(`{"query_extension":{"msg":{"pre_propose_approval_contract":{}}}}`)).
		Return(json.RawMessage(`"juno1preprop"`), nil)
	b, err := q.QueryExtension(ctx, QueryExt{PreProposeApprovalContract: &Empty{}})
	require.NoError(t, err)
	assert.Equal(t, `"juno1preprop"`, string(b))
}

func Test_QueryExtensionHelpers(t *testing.T) {
	ctx := context.Background()
	q, m := newQueryClient(t)

	m.EXPECT().QueryContractSmart(ctx, contractAddr, wire(`{"query_extension":{"msg":{"pre_propose_approval_contract":{}}}}`)).
		Return(json.RawMessage(`"juno1preprop"`), nil)
	addr, err := q.PreProposeApprovalContract(ctx)
	require.NoError(t, err)
	assert.Equal(t, Addr("juno1preprop"), addr)

	m.EXPECT().QueryContractSmart(ctx, contractAddr,
		wire(`{"query_extension":{"msg":{"pre_propose_approval_id_for_approver_proposal_id":{"id":3}}}}`)).
		Return(json.RawMessage(`7`), nil)
	id, err := q.PreProposeApprovalIDForApproverProposalID(ctx, 3)
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, uint64(7), *id)

	m.EXPECT().QueryContractSmart(ctx, contractAddr,
		wire(`{"query_extension":{"msg":{"approver_proposal_id_for_pre_propose_approval_id":{"id":7}}}}`)).
		Return(json.RawMessage(`null`), nil)
	id, err = q.ApproverProposalIDForPreProposeApprovalID(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, id)
}

func Test_QueryError(t *testing.T) {
	ctx := context.Background()
	q, m := newQueryClient(t)

	chainErr := errors.New("connection refused")
	m.EXPECT().QueryContractSmart(ctx, contractAddr, gomock.Any()).Return(nil, chainErr).Times(2)
	_, err := q.Config(ctx)
	assert.Equal(t, chainErr, err)
	_, err = q.QueryExtension(ctx, QueryExt{PreProposeApprovalContract: &Empty{}})
	assert.Equal(t, chainErr, err)

	m.EXPECT().QueryContractSmart(ctx, contractAddr, wire(`{"dao":{}}`)).
		Return(json.RawMessage(`{"unexpected":true}`), nil)
	_, err = q.Dao(ctx)
	assert.Equal(t, contract.ErrorCodeInvalidResult, errors.CodeOf(err))
}

func Test_QuerySameAddress(t *testing.T) {
	ctx := context.Background()
	q, m := newQueryClient(t)
	m.EXPECT().QueryContractSmart(ctx, contractAddr, wire(`{"dao":{}}`)).
		Return(json.RawMessage(`"juno1dao"`), nil).Times(2)
	for i := 0; i < 2; i++ {
		_, err := q.Dao(ctx)
		require.NoError(t, err)
	}
	assert.Equal(t, contractAddr, q.ContractAddress())
}

func Test_ExecuteWire(t *testing.T) {
	ctx := context.Background()
	c, m := newClient(t)
	result := &contract.ExecuteResult{TransactionHash: "AB", Height: 3}
	cw20 := "juno1cw20"

	cases := []struct {
		name string
		wire string
		call func(opt *contract.ExecuteOptions) (*contract.ExecuteResult, error)
	}{
		{
			name: "propose",
			wire: `{"propose":{"msg":{"propose":{"title":"t","description":"d","approval_id":9}}}}`,
			call: func(opt *contract.ExecuteOptions) (*contract.ExecuteResult, error) {
				return c.Propose(ctx, NewApproverProposeMessage("t", "d", 9), opt)
			},
		},
		{
			name: "update_config",
			wire: `{"update_config":{"deposit_info":{"denom":{"token":{"denom":{"cw20":"juno1cw20"}}},"amount":"10","refund_policy":"always"},"open_proposal_submission":true}}`,
			call: func(opt *contract.ExecuteOptions) (*contract.ExecuteResult, error) {
				return c.UpdateConfig(ctx, &UncheckedDepositInfo{
					Denom:        DepositToken{Token: &DepositTokenToken{Denom: UncheckedDenom{Cw20: &cw20}}},
					Amount:       "10",
					RefundPolicy: DepositRefundPolicyAlways,
				}, true, opt)
			},
		},
		{
			name: "update_config_voting_module_token",
			wire: `{"update_config":{"deposit_info":{"denom":{"voting_module_token":{}},"amount":"1","refund_policy":"never"},"open_proposal_submission":false}}`,
			call: func(opt *contract.ExecuteOptions) (*contract.ExecuteResult, error) {
				return c.UpdateConfig(ctx, &UncheckedDepositInfo{
					Denom:        DepositToken{VotingModuleToken: &Empty{}},
					Amount:       "1",
					RefundPolicy: DepositRefundPolicyNever,
				}, false, opt)
			},
		},
		{
			name: "update_config_without_deposit",
			wire: `{"update_config":{"open_proposal_submission":true}}`,
			call: func(opt *contract.ExecuteOptions) (*contract.ExecuteResult, error) {
				return c.UpdateConfig(ctx, nil, true, opt)
			},
		},
		{
			name: "withdraw",
			wire: `{"withdraw":{"denom":{"native":"ujuno"}}}`,
			call: func(opt *contract.ExecuteOptions) (*contract.ExecuteResult, error) {
				return c.Withdraw(ctx, NativeDenom("ujuno"), opt)
			},
		},
		{
			name: "withdraw_without_denom",
			wire: `{"withdraw":{}}`,
			call: func(opt *contract.ExecuteOptions) (*contract.ExecuteResult, error) {
				return c.Withdraw(ctx, nil, opt)
			},
		},
		{
			name: "extension",
			wire: `{"extension":{"msg":{}}}`,
			call: func(opt *contract.ExecuteOptions) (*contract.ExecuteResult, error) {
				return c.Extension(ctx, Empty{}, opt)
			},
		},
		{
			name: "add_proposal_submitted_hook",
			wire: `{"add_proposal_submitted_hook":{"address":"juno1hook"}}`,
			call: func(opt *contract.ExecuteOptions) (*contract.ExecuteResult, error) {
				return c.AddProposalSubmittedHook(ctx, "juno1hook", opt)
			},
		},
		{
			name: "remove_proposal_submitted_hook",
			wire: `{"remove_proposal_submitted_hook":{"address":"juno1hook"}}`,
			call: func(opt *contract.ExecuteOptions) (*contract.ExecuteResult, error) {
				return c.RemoveProposalSubmittedHook(ctx, "juno1hook", opt)
			},
		},
		{
			name: "proposal_completed_hook",
			wire: `{"proposal_completed_hook":{"new_status":"execution_failed","proposal_id":4}}`,
			call: func(opt *contract.ExecuteOptions) (*contract.ExecuteResult, error) {
				return c.ProposalCompletedHook(ctx, 4, StatusExecutionFailed, opt)
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m.EXPECT().Execute(ctx, senderAddr, contractAddr, wire(tc.wire), contract.FeeAuto, "", contract.Coins(nil)).
				Return(result, nil)
			r, err := tc.call(nil)
			require.NoError(t, err)
			assert.Equal(t, result, r)

			opt := &contract.ExecuteOptions{
				Fee:   contract.FeeOfMultiplier(1.5),
				Memo:  "memo",
				Funds: contract.Coins{{Denom: "ujuno", Amount: "1"}},
			}
			m.EXPECT().Execute(ctx, senderAddr, contractAddr, wire(tc.wire), opt.Fee, opt.Memo, opt.Funds).
				Return(result, nil)
			r, err = tc.call(opt)
			require.NoError(t, err)
			assert.Equal(t, result, r)
		})
	}
}

func Test_ExecuteError(t *testing.T) {
	ctx := context.Background()
	c, m := newClient(t)
	chainErr := &contract.TxFailedError{TxHash: "AB", Height: 3, Code: 5, RawLog: "unauthorized"}
	m.EXPECT().Execute(ctx, senderAddr, contractAddr, gomock.Any(), contract.FeeAuto, "", gomock.Any()).
		Return(nil, chainErr)
	r, err := c.Withdraw(ctx, nil, nil)
	assert.Nil(t, r)
	assert.Equal(t, error(chainErr), err)
}

func Test_ClientQueries(t *testing.T) {
	ctx := context.Background()
	c, m := newClient(t)
	assert.Equal(t, senderAddr, c.Sender())
	assert.Equal(t, contractAddr, c.ContractAddress())
	m.EXPECT().QueryContractSmart(ctx, contractAddr, wire(`{"config":{}}`)).
		Return(json.RawMessage(`{"open_proposal_submission":true}`), nil)
	cfg, err := c.Config(ctx)
	require.NoError(t, err)
	assert.Nil(t, cfg.DepositInfo)
	assert.True(t, cfg.OpenProposalSubmission)
}
