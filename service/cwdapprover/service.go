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
	"context"

	"github.com/icon-project/btp2/common/log"

	"github.com/icon-project/cwd-sdk/approver"
	"github.com/icon-project/cwd-sdk/contract"
	"github.com/icon-project/cwd-sdk/service"
)

const (
	ServiceName = "approver"
)

func init() {
	service.RegisterFactory(ServiceName, NewService)
}

type Service struct {
	*service.DefaultService
	l log.Logger
}

func NewService(networks map[string]service.Network, l log.Logger) (service.Service, error) {
	s, err := service.NewDefaultService(NewSpec(), networks, newHandler, l)
	if err != nil {
		return nil, err
	}
	return &Service{
		DefaultService: s,
		l:              l,
	}, nil
}

type handler struct {
	q *approver.QueryClient
	c *approver.Client
}

func newHandler(network string, n service.Network, opt service.DefaultServiceOptions) (service.Handler, error) {
	h := &handler{}
	if n.Signer != nil {
		h.c = approver.NewClient(n.Adaptor.SigningClient(n.Signer), n.Signer.Address(), opt.ContractAddress)
		h.q = h.c.QueryClient
	} else {
		h.q = approver.NewQueryClient(n.Adaptor, opt.ContractAddress)
	}
	return h, nil
}

func (h *handler) Call(ctx context.Context, method string, params contract.Params) (contract.ReturnValue, error) {
	switch method {
	case MethodProposalModule:
		return h.q.ProposalModule(ctx)
	case MethodDao:
		return h.q.Dao(ctx)
	case MethodConfig:
		return h.q.Config(ctx)
	case MethodDepositInfo:
		p := approver.DepositInfoQuery{}
		if err := contract.DecodeParams(params, &p); err != nil {
			return nil, err
		}
		return h.q.DepositInfo(ctx, p.ProposalID)
	case MethodProposalSubmittedHooks:
		return h.q.ProposalSubmittedHooks(ctx)
	case MethodQueryExtension:
		p := approver.QueryExtensionQuery{}
		if err := contract.DecodeParams(params, &p); err != nil {
			return nil, err
		}
		return h.q.QueryExtension(ctx, p.Msg)
	case MethodPreProposeApprovalContract:
		return h.q.PreProposeApprovalContract(ctx)
	case MethodPreProposeApprovalIDForApproverProposalID:
		p := approver.QueryExtID{}
		if err := contract.DecodeParams(params, &p); err != nil {
			return nil, err
		}
		return optionalID(h.q.PreProposeApprovalIDForApproverProposalID(ctx, p.ID))
	case MethodApproverProposalIDForPreProposeApprovalID:
		p := approver.QueryExtID{}
		if err := contract.DecodeParams(params, &p); err != nil {
			return nil, err
		}
		return optionalID(h.q.ApproverProposalIDForPreProposeApprovalID(ctx, p.ID))
	default:
		return nil, contract.ErrorCodeNotFoundMethod.Errorf("not found method:%s", method)
	}
}

// optionalID keeps an absent id as untyped nil in the ReturnValue.
func optionalID(id *uint64, err error) (contract.ReturnValue, error) {
	if err != nil || id == nil {
		return nil, err
	}
	return *id, nil
}

func (h *handler) Invoke(ctx context.Context, method string, params contract.Params, options contract.Options) (*contract.ExecuteResult, error) {
	if h.c == nil {
		return nil, contract.ErrorCodeRequireSigner.Errorf("require signer method:%s", method)
	}
	opt := &contract.ExecuteOptions{}
	if err := contract.DecodeOptions(options, opt); err != nil {
		return nil, err
	}
	switch method {
	case MethodPropose:
		p := approver.ProposeMsg{}
		if err := contract.DecodeParams(params, &p); err != nil {
			return nil, err
		}
		return h.c.Propose(ctx, p.Msg, opt)
	case MethodUpdateConfig:
		p := approver.UpdateConfigMsg{}
		if err := contract.DecodeParams(params, &p); err != nil {
			return nil, err
		}
		return h.c.UpdateConfig(ctx, p.DepositInfo, p.OpenProposalSubmission, opt)
	case MethodWithdraw:
		p := approver.WithdrawMsg{}
		if err := contract.DecodeParams(params, &p); err != nil {
			return nil, err
		}
		return h.c.Withdraw(ctx, p.Denom, opt)
	case MethodExtension:
		p := approver.ExtensionMsg{}
		if err := contract.DecodeParams(params, &p); err != nil {
			return nil, err
		}
		return h.c.Extension(ctx, p.Msg, opt)
	case MethodAddProposalSubmittedHook, MethodRemoveProposalSubmittedHook:
		p := approver.HookAddressMsg{}
		if err := contract.DecodeParams(params, &p); err != nil {
			return nil, err
		}
		if method == MethodAddProposalSubmittedHook {
			return h.c.AddProposalSubmittedHook(ctx, p.Address, opt)
		}
		return h.c.RemoveProposalSubmittedHook(ctx, p.Address, opt)
	case MethodProposalCompletedHook:
		p := approver.ProposalCompletedHookMsg{}
		if err := contract.DecodeParams(params, &p); err != nil {
			return nil, err
		}
		return h.c.ProposalCompletedHook(ctx, p.ProposalID, p.NewStatus, opt)
	default:
		return nil, contract.ErrorCodeNotFoundMethod.Errorf("not found method:%s", method)
	}
}
