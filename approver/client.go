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

// Client executes the messages of a cwd-pre-propose-approver contract as sender.
type Client struct {
	*QueryClient
	c      contract.SigningClient
	sender contract.Address
}

func NewClient(c contract.SigningClient, sender, address contract.Address) *Client {
	return &Client{
		QueryClient: NewQueryClient(c, address),
		c:           c,
		sender:      sender,
	}
}

func (c *Client) Sender() contract.Address {
	return c.sender
}

func (c *Client) execute(ctx context.Context, msg *ExecuteMsg, opt *contract.ExecuteOptions) (*contract.ExecuteResult, error) {
	return c.c.Execute(ctx, c.sender, c.address, msg, opt.GetFee(), opt.GetMemo(), opt.GetFunds())
}

func (c *Client) Propose(ctx context.Context, msg ApproverProposeMessage, opt *contract.ExecuteOptions) (*contract.ExecuteResult, error) {
	return c.execute(ctx, &ExecuteMsg{Propose: &ProposeMsg{Msg: msg}}, opt)
}

func (c *Client) UpdateConfig(ctx context.Context, depositInfo *UncheckedDepositInfo, openProposalSubmission bool,
	opt *contract.ExecuteOptions) (*contract.ExecuteResult, error) {
	return c.execute(ctx, &ExecuteMsg{UpdateConfig: &UpdateConfigMsg{
		DepositInfo:            depositInfo,
		OpenProposalSubmission: openProposalSubmission,
	}}, opt)
}

// Withdraw with nil denom withdraws the configured deposit denom.
func (c *Client) Withdraw(ctx context.Context, denom *UncheckedDenom, opt *contract.ExecuteOptions) (*contract.ExecuteResult, error) {
	return c.execute(ctx, &ExecuteMsg{Withdraw: &WithdrawMsg{Denom: denom}}, opt)
}

func (c *Client) Extension(ctx context.Context, msg Empty, opt *contract.ExecuteOptions) (*contract.ExecuteResult, error) {
	return c.execute(ctx, &ExecuteMsg{Extension: &ExtensionMsg{Msg: msg}}, opt)
}

func (c *Client) AddProposalSubmittedHook(ctx context.Context, address string, opt *contract.ExecuteOptions) (*contract.ExecuteResult, error) {
	return c.execute(ctx, &ExecuteMsg{AddProposalSubmittedHook: &HookAddressMsg{Address: address}}, opt)
}

func (c *Client) RemoveProposalSubmittedHook(ctx context.Context, address string, opt *contract.ExecuteOptions) (*contract.ExecuteResult, error) {
	return c.execute(ctx, &ExecuteMsg{RemoveProposalSubmittedHook: &HookAddressMsg{Address: address}}, opt)
}

func (c *Client) ProposalCompletedHook(ctx context.Context, proposalID uint64, newStatus Status,
	opt *contract.ExecuteOptions) (*contract.ExecuteResult, error) {
	return c.execute(ctx, &ExecuteMsg{ProposalCompletedHook: &ProposalCompletedHookMsg{
		NewStatus:  newStatus,
		ProposalID: proposalID,
	}}, opt)
}
