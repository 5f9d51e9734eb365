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
	"sort"

	"github.com/icon-project/cwd-sdk/contract"
)

const (
	SpecVersion = "1.0"
)

type Spec struct {
	SpecVersion  string                 `json:"specVersion"`
	Name         string                 `json:"name"`
	NetworkTypes []string               `json:"networkTypes"`
	Methods      map[string]*MethodSpec `json:"methods"`
}

type MethodSpec struct {
	Name     string `json:"name"`
	Readonly bool   `json:"readonly"`
	// Inputs and Output hold zero values of the params and return types,
	// used to generate schemas.
	Inputs interface{} `json:"-"`
	Output interface{} `json:"-"`
}

func NewSpec(name string, networkTypes []string, methods ...*MethodSpec) Spec {
	s := Spec{
		SpecVersion:  SpecVersion,
		Name:         name,
		NetworkTypes: networkTypes,
		Methods:      make(map[string]*MethodSpec),
	}
	for _, m := range methods {
		s.Methods[m.Name] = m
	}
	return s
}

func CopySpec(s Spec) Spec {
	cs := NewSpec(s.Name, append([]string{}, s.NetworkTypes...))
	for k, v := range s.Methods {
		m := *v
		cs.Methods[k] = &m
	}
	return cs
}

func (s Spec) Method(name string) (*MethodSpec, error) {
	m, ok := s.Methods[name]
	if !ok {
		return nil, contract.ErrorCodeNotFoundMethod.Errorf("not found method:%s", name)
	}
	return m, nil
}

func (s Spec) MethodNames() []string {
	l := make([]string, 0, len(s.Methods))
	for k := range s.Methods {
		l = append(l, k)
	}
	sort.Strings(l)
	return l
}

func (s Spec) IsSupport(networkType string) bool {
	return StringSetContains(s.NetworkTypes, networkType)
}

func StringSetContains(l []string, s string) bool {
	for _, e := range l {
		if e == s {
			return true
		}
	}
	return false
}
