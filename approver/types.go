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
	"encoding/json"

	"github.com/icon-project/cwd-sdk/contract"
)

type Addr = contract.Address

// Uint128 is a decimal string encoded 128 bits unsigned integer.
type Uint128 string

// Binary is the payload of an extension query, kept as returned by the contract.
type Binary = json.RawMessage

type Empty struct{}

type UncheckedDenom struct {
	Native *string `json:"native,omitempty"`
	Cw20   *string `json:"cw20,omitempty"`
}

func NativeDenom(denom string) *UncheckedDenom {
	return &UncheckedDenom{Native: &denom}
}

func Cw20Denom(addr string) *UncheckedDenom {
	return &UncheckedDenom{Cw20: &addr}
}

type CheckedDenom struct {
	Native *string `json:"native,omitempty"`
	Cw20   *Addr   `json:"cw20,omitempty"`
}

type DepositTokenToken struct {
	Denom UncheckedDenom `json:"denom"`
}

type DepositToken struct {
	Token             *DepositTokenToken `json:"token,omitempty"`
	VotingModuleToken *Empty             `json:"voting_module_token,omitempty"`
}

type DepositRefundPolicy string

const (
	DepositRefundPolicyAlways     DepositRefundPolicy = "always"
	DepositRefundPolicyOnlyPassed DepositRefundPolicy = "only_passed"
	DepositRefundPolicyNever      DepositRefundPolicy = "never"
)

type Status string

const (
	StatusOpen            Status = "open"
	StatusRejected        Status = "rejected"
	StatusPassed          Status = "passed"
	StatusExecuted        Status = "executed"
	StatusClosed          Status = "closed"
	StatusExecutionFailed Status = "execution_failed"
)

type UncheckedDepositInfo struct {
	Denom        DepositToken        `json:"denom"`
	Amount       Uint128             `json:"amount"`
	RefundPolicy DepositRefundPolicy `json:"refund_policy"`
}

type CheckedDepositInfo struct {
	Denom        CheckedDenom        `json:"denom"`
	Amount       Uint128             `json:"amount"`
	RefundPolicy DepositRefundPolicy `json:"refund_policy"`
}

type Config struct {
	DepositInfo            *CheckedDepositInfo `json:"deposit_info,omitempty"`
	OpenProposalSubmission bool                `json:"open_proposal_submission"`
}

type DepositInfoResponse struct {
	DepositInfo *CheckedDepositInfo `json:"deposit_info,omitempty"`
	Proposer    Addr                `json:"proposer"`
}

type HooksResponse struct {
	Hooks []string `json:"hooks"`
}

type InstantiateMsg struct {
	PreProposeApprovalContract string `json:"pre_propose_approval_contract"`
}

type ApproverProposeMessagePropose struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ApprovalID  uint64 `json:"approval_id"`
}

type ApproverProposeMessage struct {
	Propose *ApproverProposeMessagePropose `json:"propose,omitempty"`
}

func NewApproverProposeMessage(title, description string, approvalID uint64) ApproverProposeMessage {
	return ApproverProposeMessage{
		Propose: &ApproverProposeMessagePropose{
			Title:       title,
			Description: description,
			ApprovalID:  approvalID,
		},
	}
}
