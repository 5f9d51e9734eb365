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
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/icon-project/btp2/common/errors"
	"github.com/icon-project/btp2/common/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icon-project/cwd-sdk/contract"
	"github.com/icon-project/cwd-sdk/contract/mock_contract"
	"github.com/icon-project/cwd-sdk/database"
)

const (
	networkTypeTest = "test"
	networkTest     = "test_network"
	networkOther    = "other_network"
	serviceTest     = "test_service"
	methodQuery     = "query"
	methodExecute   = "execute"
	senderAddr      = contract.Address("juno1sender")
)

type testHandler struct {
	address contract.Address
	calls   []string
	result  *contract.ExecuteResult
	err     error
}

func (h *testHandler) Call(ctx context.Context, method string, params contract.Params) (contract.ReturnValue, error) {
	h.calls = append(h.calls, method)
	return h.address, h.err
}

func (h *testHandler) Invoke(ctx context.Context, method string, params contract.Params, options contract.Options) (*contract.ExecuteResult, error) {
	h.calls = append(h.calls, method)
	if h.err != nil {
		return nil, h.err
	}
	return h.result, nil
}

func testSpec() Spec {
	return NewSpec(serviceTest, []string{networkTypeTest},
		&MethodSpec{Name: methodQuery, Readonly: true},
		&MethodSpec{Name: methodExecute})
}

func newTestService(t *testing.T, networks map[string]Network) (*DefaultService, map[string]*testHandler) {
	hMap := make(map[string]*testHandler)
	s, err := NewDefaultService(testSpec(), networks,
		func(network string, n Network, opt DefaultServiceOptions) (Handler, error) {
			h := &testHandler{
				address: opt.ContractAddress,
				result:  &contract.ExecuteResult{TransactionHash: "HASH_" + network, Height: 1, GasUsed: 10, GasWanted: 20},
			}
			hMap[network] = h
			return h, nil
		}, log.New())
	if err != nil {
		assert.FailNow(t, err.Error())
	}
	return s, hMap
}

func testNetworks(signer contract.Signer) map[string]Network {
	return map[string]Network{
		networkTest: {
			NetworkType: networkTypeTest,
			Signer:      signer,
			Options:     contract.Options{"contract_address": "juno1test"},
		},
		networkOther: {
			NetworkType: networkTypeTest,
			Options:     contract.Options{"contract_address": "juno1other"},
		},
	}
}

func Test_DefaultService(t *testing.T) {
	ctx := context.Background()
	s, hMap := newTestService(t, testNetworks(nil))
	assert.Equal(t, serviceTest, s.Name())
	assert.Equal(t, []string{networkOther, networkTest}, s.Networks())
	assert.Equal(t, []string{methodExecute, methodQuery}, s.Spec().MethodNames())

	ret, err := s.Call(ctx, networkOther, methodQuery, nil)
	require.NoError(t, err)
	assert.Equal(t, contract.Address("juno1other"), ret)

	r, err := s.Invoke(ctx, networkTest, methodExecute, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "HASH_"+networkTest, r.TransactionHash)
	assert.Equal(t, []string{methodExecute}, hMap[networkTest].calls)

	_, err = s.Call(ctx, networkTest, methodExecute, nil)
	assert.Equal(t, contract.ErrorCodeMismatchReadonly, errors.CodeOf(err))
	_, err = s.Invoke(ctx, networkTest, methodQuery, nil, nil)
	assert.Equal(t, contract.ErrorCodeMismatchReadonly, errors.CodeOf(err))
	_, err = s.Invoke(ctx, networkTest, "unknown", nil, nil)
	assert.Equal(t, contract.ErrorCodeNotFoundMethod, errors.CodeOf(err))
	_, err = s.Call(ctx, "unknown", methodQuery, nil)
	assert.Error(t, err)
}

func Test_DefaultServiceInvalid(t *testing.T) {
	hf := func(network string, n Network, opt DefaultServiceOptions) (Handler, error) {
		return &testHandler{}, nil
	}
	_, err := NewDefaultService(testSpec(), map[string]Network{
		networkTest: {NetworkType: networkTypeTest},
	}, hf, log.New())
	assert.Equal(t, contract.ErrorCodeInvalidOption, errors.CodeOf(err))

	_, err = NewDefaultService(testSpec(), map[string]Network{
		networkTest: {NetworkType: "unknown", Options: contract.Options{"contract_address": "juno1test"}},
	}, hf, log.New())
	assert.Error(t, err)

	_, err = NewService("unknown", nil, log.New())
	assert.Error(t, err)
}

func Test_JournalService(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	signer := mock_contract.NewMockSigner(ctrl)
	signer.EXPECT().Address().Return(senderAddr).AnyTimes()
	networks := testNetworks(signer)
	s, hMap := newTestService(t, networks)

	db, err := database.OpenDatabase(database.Config{
		Driver: database.DriverSQLite,
		DBName: filepath.Join(t.TempDir(), "journal.db"),
	}, log.New())
	if err != nil {
		assert.FailNow(t, err.Error())
	}
	js, err := NewJournalService(s, networks, db, log.New())
	if err != nil {
		assert.FailNow(t, err.Error())
	}

	_, err = js.Call(ctx, networkTest, methodQuery, nil)
	require.NoError(t, err)
	r, err := js.Invoke(ctx, networkTest, methodExecute, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "HASH_"+networkTest, r.TransactionHash)
	_, err = js.Invoke(ctx, networkOther, methodExecute, nil, nil)
	require.NoError(t, err)

	hMap[networkOther].err = contract.ErrorCodeRequireSigner.Errorf("require signer")
	_, err = js.Invoke(ctx, networkOther, methodExecute, nil, nil)
	assert.Equal(t, contract.ErrorCodeRequireSigner, errors.CodeOf(err))

	page, err := js.Records(networkTest, database.Pageable{Size: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalElements)
	rec := page.Content[0]
	assert.Equal(t, networkTest, rec.Network)
	assert.Equal(t, serviceTest, rec.Service)
	assert.Equal(t, methodExecute, rec.Method)
	assert.Equal(t, string(senderAddr), rec.Sender)
	assert.Equal(t, "HASH_"+networkTest, rec.TxHash)
	assert.Equal(t, int64(1), rec.Height)
	assert.Equal(t, int64(20), rec.GasWanted)
	assert.Equal(t, int64(10), rec.GasUsed)

	page, err = js.Records(networkOther, database.Pageable{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalElements)
	assert.Equal(t, "", page.Content[0].Sender)

	// same tx hash violates the unique index, Invoke still succeeds
	_, err = js.Invoke(ctx, networkTest, methodExecute, nil, nil)
	require.NoError(t, err)
	page, err = js.Records(networkTest, database.Pageable{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalElements)
}

func Test_LoadSigner(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock_contract.NewMockAdaptor(ctrl)
	signer := mock_contract.NewMockSigner(ctrl)
	dir := t.TempDir()
	ks, secret := filepath.Join(dir, "keystore.json"), filepath.Join(dir, "keysecret")
	require.NoError(t, os.WriteFile(ks, []byte(`{"version":3}`), 0600))
	require.NoError(t, os.WriteFile(secret, []byte("password\n"), 0600))

	a.EXPECT().NewSigner([]byte(`{"version":3}`), "password").Return(signer, nil)
	s, err := LoadSigner(a, SignerConfig{KeyStore: ks, Secret: secret})
	require.NoError(t, err)
	assert.Equal(t, signer, s)

	_, err = LoadSigner(a, SignerConfig{KeyStore: filepath.Join(dir, "none")})
	assert.Error(t, err)
	assert.True(t, (&SignerConfig{}).IsEmpty())
}
