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

const (
	FieldKeyService = "service"
)

type Service interface {
	Name() string
	Spec() Spec
	Networks() []string
	Invoke(ctx context.Context, network, method string, params contract.Params, options contract.Options) (*contract.ExecuteResult, error)
	Call(ctx context.Context, network, method string, params contract.Params) (contract.ReturnValue, error)
}

// Network is a configured chain connection that a service is bound to.
// Signer is nil for query-only networks.
type Network struct {
	NetworkType string
	Adaptor     contract.Adaptor
	Signer      contract.Signer
	Options     contract.Options
}

type Factory func(map[string]Network, log.Logger) (Service, error)

var (
	fMap = make(map[string]Factory)
)

func RegisterFactory(serviceName string, sf Factory) {
	if _, ok := fMap[serviceName]; ok {
		log.Panicln("already registered serviceName:" + serviceName)
	}
	fMap[serviceName] = sf
}

func NewService(name string, networks map[string]Network, l log.Logger) (Service, error) {
	if f, ok := fMap[name]; ok {
		return f(networks, l.WithFields(log.Fields{log.FieldKeyModule: "service", FieldKeyService: name}))
	}
	return nil, errors.Errorf("not found service name:%s", name)
}

func ServiceNames() []string {
	l := make([]string, 0, len(fMap))
	for k := range fMap {
		l = append(l, k)
	}
	sort.Strings(l)
	return l
}
