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
	"os"
	"strings"

	"github.com/icon-project/btp2/common/errors"

	"github.com/icon-project/cwd-sdk/contract"
)

type SignerConfig struct {
	KeyStore string `json:"keystore"`
	Secret   string `json:"secret"`
}

func (c *SignerConfig) IsEmpty() bool {
	return c == nil || len(c.KeyStore) == 0
}

// LoadSigner decrypts the keystore file with the secret file content
// using the signer format of the adaptor.
func LoadSigner(a contract.Adaptor, cfg SignerConfig) (contract.Signer, error) {
	ks, err := os.ReadFile(cfg.KeyStore)
	if err != nil {
		return nil, errors.Wrapf(err, "fail to ReadFile keystore:%s err:%s", cfg.KeyStore, err.Error())
	}
	var secret []byte
	if len(cfg.Secret) > 0 {
		if secret, err = os.ReadFile(cfg.Secret); err != nil {
			return nil, errors.Wrapf(err, "fail to ReadFile secret:%s err:%s", cfg.Secret, err.Error())
		}
	}
	s, err := a.NewSigner(ks, strings.TrimSpace(string(secret)))
	if err != nil {
		return nil, errors.Wrapf(err, "fail to NewSigner err:%s", err.Error())
	}
	return s, nil
}
