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

// Query and execute messages are tagged unions: exactly one variant is set and
// it is encoded as the single top level key.

type QueryExtID struct {
	ID uint64 `json:"id"`
}

type QueryExt struct {
	PreProposeApprovalContract                *Empty      `json:"pre_propose_approval_contract,omitempty"`
	PreProposeApprovalIDForApproverProposalID *QueryExtID `json:"pre_propose_approval_id_for_approver_proposal_id,omitempty"`
	ApproverProposalIDForPreProposeApprovalID *QueryExtID `json:"approver_proposal_id_for_pre_propose_approval_id,omitempty"`
}

type DepositInfoQuery struct {
	ProposalID uint64 `json:"proposal_id"`
}

type QueryExtensionQuery struct {
	Msg QueryExt `json:"msg"`
}

type QueryMsg struct {
	ProposalModule         *Empty               `json:"proposal_module,omitempty"`
	Dao                    *Empty               `json:"dao,omitempty"`
	Config                 *Empty               `json:"config,omitempty"`
	DepositInfo            *DepositInfoQuery    `json:"deposit_info,omitempty"`
	ProposalSubmittedHooks *Empty               `json:"proposal_submitted_hooks,omitempty"`
	QueryExtension         *QueryExtensionQuery `json:"query_extension,omitempty"`
}

type ProposeMsg struct {
	Msg ApproverProposeMessage `json:"msg"`
}

type UpdateConfigMsg struct {
	DepositInfo            *UncheckedDepositInfo `json:"deposit_info,omitempty"`
	OpenProposalSubmission bool                  `json:"open_proposal_submission"`
}

type WithdrawMsg struct {
	Denom *UncheckedDenom `json:"denom,omitempty"`
}

type ExtensionMsg struct {
	Msg Empty `json:"msg"`
}

type HookAddressMsg struct {
	Address string `json:"address"`
}

type ProposalCompletedHookMsg struct {
	NewStatus  Status `json:"new_status"`
	ProposalID uint64 `json:"proposal_id"`
}

type ExecuteMsg struct {
	Propose                     *ProposeMsg               `json:"propose,omitempty"`
	UpdateConfig                *UpdateConfigMsg          `json:"update_config,omitempty"`
	Withdraw                    *WithdrawMsg              `json:"withdraw,omitempty"`
	Extension                   *ExtensionMsg             `json:"extension,omitempty"`
	AddProposalSubmittedHook    *HookAddressMsg           `json:"add_proposal_submitted_hook,omitempty"`
	RemoveProposalSubmittedHook *HookAddressMsg           `json:"remove_proposal_submitted_hook,omitempty"`
	ProposalCompletedHook       *ProposalCompletedHookMsg `json:"proposal_completed_hook,omitempty"`
}
