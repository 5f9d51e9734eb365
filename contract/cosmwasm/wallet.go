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
package cosmwasm

import (
	"crypto/ecdsa"
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/icon-project/btp2/common/errors"
	"golang.org/x/crypto/ripemd160"

	"github.com/icon-project/cwd-sdk/contract"
)

const (
	DefaultPrefix = "cosmos"
)

// Wallet signs with a secp256k1 key and derives the bech32 account address.
type Wallet struct {
	key     *ecdsa.PrivateKey
	pubKey  []byte
	address contract.Address
}

func NewWallet(key *ecdsa.PrivateKey, prefix string) (*Wallet, error) {
	pubKey := crypto.CompressPubkey(&key.PublicKey)
	addr, err := AddressFromPubKey(pubKey, prefix)
	if err != nil {
		return nil, err
	}
	return &Wallet{
		key:     key,
		pubKey:  pubKey,
		address: addr,
	}, nil
}

// LoadWallet decrypts a web3 secret storage keystore.
func LoadWallet(keyJson []byte, secret string, prefix string) (*Wallet, error) {
	k, err := keystore.DecryptKey(keyJson, secret)
	if err != nil {
		return nil, errors.Wrapf(err, "fail to DecryptKey err:%s", err.Error())
	}
	return NewWallet(k.PrivateKey, prefix)
}

func AddressFromPubKey(pubKey []byte, prefix string) (contract.Address, error) {
	if len(prefix) == 0 {
		prefix = DefaultPrefix
	}
	sha := sha256.Sum256(pubKey)
	h := ripemd160.New()
	h.Write(sha[:])
	conv, err := bech32.ConvertBits(h.Sum(nil), 8, 5, true)
	if err != nil {
		return "", errors.Wrapf(err, "fail to ConvertBits err:%s", err.Error())
	}
	s, err := bech32.Encode(prefix, conv)
	if err != nil {
		return "", errors.Wrapf(err, "fail to bech32.Encode err:%s", err.Error())
	}
	return contract.Address(s), nil
}

func (w *Wallet) Address() contract.Address {
	return w.address
}

func (w *Wallet) PubKey() []byte {
	return w.pubKey
}

// Sign returns the 64 bytes R||S signature over sha256(signBytes).
func (w *Wallet) Sign(signBytes []byte) ([]byte, error) {
	h := sha256.Sum256(signBytes)
	sig, err := crypto.Sign(h[:], w.key)
	if err != nil {
		return nil, errors.Wrapf(err, "fail to Sign err:%s", err.Error())
	}
	return sig[:64], nil
}
