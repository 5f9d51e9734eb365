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

package cwdapprover

import (
	"github.com/icon-project/cwd-sdk/approver"
	"github.com/icon-project/cwd-sdk/contract"
	"github.com/icon-project/cwd-sdk/contract/cosmwasm"
	"github.com/icon-project/cwd-sdk/service"
)

const (
	MethodProposalModule                            = "proposal_module"
	MethodDao                                       = "dao"
	MethodConfig                                    = "config"
	MethodDepositInfo                               = "deposit_info"
	MethodProposalSubmittedHooks                    = "proposal_submitted_hooks"
	MethodQueryExtension                            = "query_extension"
	MethodPreProposeApprovalContract                = "pre_propose_approval_contract"
	MethodPreProposeApprovalIDForApproverProposalID = "pre_propose_approval_id_for_approver_proposal_id"
	MethodApproverProposalIDForPreProposeApprovalID = "approver_proposal_id_for_pre_propose_approval_id"

	MethodPropose                     = "propose"
	MethodUpdateConfig                = "update_config"
	MethodWithdraw                    = "withdraw"
	MethodExtension                   = "extension"
	MethodAddProposalSubmittedHook    = "add_proposal_submitted_hook"
	MethodRemoveProposalSubmittedHook = "remove_proposal_submitted_hook"
	MethodProposalCompletedHook       = "proposal_completed_hook"
)

var (
	networkTypes = []string{cosmwasm.NetworkTypeCosmWasm}
)

func query(name string, inputs, output interface{}) *service.MethodSpec {
	return &service.MethodSpec{
		Name:     name,
		Readonly: true,
		Inputs:   inputs,
		Output:   output,
	}
}

func execute(name string, inputs interface{}) *service.MethodSpec {
	return &service.MethodSpec{
		Name:   name,
		Inputs: inputs,
		Output: contract.ExecuteResult{},
	}
}

func NewSpec() service.Spec {
	var id uint64
	return service.NewSpec(ServiceName, networkTypes,
		query(MethodProposalModule, nil, approver.Addr("")),
		query(MethodDao, nil, approver.Addr("")),
		query(MethodConfig, nil, approver.Config{}),
		query(MethodDepositInfo, approver.DepositInfoQuery{}, approver.DepositInfoResponse{}),
		query(MethodProposalSubmittedHooks, nil, approver.HooksResponse{}),
		query(MethodQueryExtension, approver.QueryExtensionQuery{}, nil),
		query(MethodPreProposeApprovalContract, nil, approver.Addr("")),
		query(MethodPreProposeApprovalIDForApproverProposalID, approver.QueryExtID{}, &id),
		query(MethodApproverProposalIDForPreProposeApprovalID, approver.QueryExtID{}, &id),
		execute(MethodPropose, approver.ProposeMsg{}),
		execute(MethodUpdateConfig, approver.UpdateConfigMsg{}),
		execute(MethodWithdraw, approver.WithdrawMsg{}),
		execute(MethodExtension, approver.ExtensionMsg{}),
		execute(MethodAddProposalSubmittedHook, approver.HookAddressMsg{}),
		execute(MethodRemoveProposalSubmittedHook, approver.HookAddressMsg{}),
		execute(MethodProposalCompletedHook, approver.ProposalCompletedHookMsg{}),
	)
}
