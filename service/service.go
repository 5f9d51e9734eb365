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

package service

import (
	"context"
	"sort"

	"github.com/icon-project/btp2/common/errors"
	"github.com/icon-project/btp2/common/log"

	"github.com/icon-project/cwd-sdk/contract"
)

type DefaultServiceOptions struct {
	ContractAddress contract.Address `json:"contract_address"`
}

// Handler serves the methods of one contract on one network.
type Handler interface {
	Call(ctx context.Context, method string, params contract.Params) (contract.ReturnValue, error)
	Invoke(ctx context.Context, method string, params contract.Params, options contract.Options) (*contract.ExecuteResult, error)
}

type HandlerFactory func(network string, n Network, opt DefaultServiceOptions) (Handler, error)

// DefaultService dispatches methods of its Spec to a Handler per network.
type DefaultService struct {
	spec Spec
	m    map[string]Handler
	l    log.Logger
}

func NewDefaultService(spec Spec, networks map[string]Network, hf HandlerFactory, l log.Logger) (*DefaultService, error) {
	hMap := make(map[string]Handler)
	for network, n := range networks {
		if !spec.IsSupport(n.NetworkType) {
			return nil, errors.Errorf("not supported networkType:%s network:%s service:%s",
				n.NetworkType, network, spec.Name)
		}
		opt := DefaultServiceOptions{}
		if err := contract.DecodeOptions(n.Options, &opt); err != nil {
			return nil, err
		}
		if len(opt.ContractAddress) == 0 {
			return nil, contract.ErrorCodeInvalidOption.Errorf("required contract_address network:%s", network)
		}
		h, err := hf(network, n, opt)
		if err != nil {
			return nil, err
		}
		l.Debugf("network:%s contract_address:%s signer:%v", network, opt.ContractAddress, n.Signer != nil)
		hMap[network] = h
	}
	return &DefaultService{
		spec: spec,
		m:    hMap,
		l:    l,
	}, nil
}

func (s *DefaultService) Name() string {
	return s.spec.Name
}

func (s *DefaultService) Spec() Spec {
	return CopySpec(s.spec)
}

func (s *DefaultService) Networks() []string {
	l := make([]string, 0, len(s.m))
	for k := range s.m {
		l = append(l, k)
	}
	sort.Strings(l)
	return l
}

func (s *DefaultService) handler(network, method string, readonly bool) (Handler, error) {
	m, err := s.spec.Method(method)
	if err != nil {
		return nil, err
	}
	if m.Readonly != readonly {
		return nil, contract.ErrorCodeMismatchReadonly.Errorf("mismatch readonly method:%s readonly:%v", method, m.Readonly)
	}
	h, ok := s.m[network]
	if !ok {
		return nil, errors.Errorf("not found handler network:%s", network)
	}
	return h, nil
}

func (s *DefaultService) Invoke(ctx context.Context, network, method string, params contract.Params, options contract.Options) (*contract.ExecuteResult, error) {
	h, err := s.handler(network, method, false)
	if err != nil {
		return nil, err
	}
	return h.Invoke(ctx, method, params, options)
}

func (s *DefaultService) Call(ctx context.Context, network, method string, params contract.Params) (contract.ReturnValue, error) {
	h, err := s.handler(network, method, true)
	if err != nil {
		return nil, err
	}
	return h.Call(ctx, method, params)
}
