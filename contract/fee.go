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

package contract

import (
	"bytes"
	"encoding/json"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/icon-project/btp2/common/errors"
)

const (
	feeAutoValue         = "auto"
	DefaultGasMultiplier = 1.3
)

var (
	FeeAuto = Fee{}

	gasPriceRegexp = regexp.MustCompile(`^([0-9.]+)([a-zA-Z][a-zA-Z0-9/:._-]{2,127})$`)
)

type StdFee struct {
	Amount Coins  `json:"amount"`
	Gas    string `json:"gas"`
}

func (f StdFee) GasLimit() (uint64, error) {
	return strconv.ParseUint(f.Gas, 10, 64)
}

// Fee is either "auto", a gas multiplier applied to the simulated gas, or an
// explicit StdFee. The zero value is "auto".
type Fee struct {
	Multiplier float64
	Std        *StdFee
}

func FeeOfMultiplier(multiplier float64) Fee {
	return Fee{Multiplier: multiplier}
}

func FeeOfStd(amount Coins, gasLimit uint64) Fee {
	return Fee{Std: &StdFee{
		Amount: amount,
		Gas:    strconv.FormatUint(gasLimit, 10),
	}}
}

func (f Fee) IsAuto() bool {
	return f.Std == nil && f.Multiplier == 0
}

// GasMultiplier returns the multiplier for simulated gas, false if the fee is explicit.
func (f Fee) GasMultiplier() (float64, bool) {
	if f.Std != nil {
		return 0, false
	}
	if f.Multiplier == 0 {
		return DefaultGasMultiplier, true
	}
	return f.Multiplier, true
}

func (f Fee) String() string {
	if f.Std != nil {
		return f.Std.Amount.String() + "/" + f.Std.Gas
	}
	if f.Multiplier != 0 {
		return strconv.FormatFloat(f.Multiplier, 'f', -1, 64)
	}
	return feeAutoValue
}

// MarshalJSON implements json.Marshaler interface.
func (f Fee) MarshalJSON() ([]byte, error) {
	if f.Std != nil {
		return json.Marshal(f.Std)
	}
	if f.Multiplier != 0 {
		return json.Marshal(f.Multiplier)
	}
	return json.Marshal(feeAutoValue)
}

// UnmarshalJSON implements json.Unmarshaler interface.
func (f *Fee) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*f = Fee{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := ParseFee(s)
		if err != nil {
			return err
		}
		*f = v
		return nil
	case '{':
		std := &StdFee{}
		if err := json.Unmarshal(data, std); err != nil {
			return err
		}
		f.Std = std
		return nil
	default:
		var m float64
		if err := json.Unmarshal(data, &m); err != nil {
			return err
		}
		if !validMultiplier(m) {
			return ErrorCodeInvalidOption.Errorf("invalid fee:%s", data)
		}
		f.Multiplier = m
		return nil
	}
}

func validMultiplier(m float64) bool {
	return m > 0 && !math.IsInf(m, 0) && !math.IsNaN(m)
}

// ParseFee parses "auto", a multiplier like "1.5" or an explicit fee
// formatted as "<coins>/<gas>" like "5000uatom/200000".
func ParseFee(s string) (Fee, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || s == feeAutoValue {
		return FeeAuto, nil
	}
	if coins, gas, found := strings.Cut(s, "/"); found {
		amount, err := ParseCoins(coins)
		if err != nil {
			return FeeAuto, err
		}
		gasLimit, err := strconv.ParseUint(gas, 10, 64)
		if err != nil {
			return FeeAuto, ErrorCodeInvalidOption.Wrapf(err, "invalid gas:%s", gas)
		}
		return FeeOfStd(amount, gasLimit), nil
	}
	m, err := strconv.ParseFloat(s, 64)
	if err != nil || !validMultiplier(m) {
		return FeeAuto, ErrorCodeInvalidOption.Errorf("invalid fee:%s", s)
	}
	return FeeOfMultiplier(m), nil
}

type GasPrice struct {
	Amount *big.Rat
	Denom  string
}

func ParseGasPrice(s string) (GasPrice, error) {
	m := gasPriceRegexp.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return GasPrice{}, ErrorCodeInvalidOption.Errorf("invalid gas price:%s", s)
	}
	amount, ok := new(big.Rat).SetString(m[1])
	if !ok {
		return GasPrice{}, ErrorCodeInvalidOption.Errorf("invalid gas price amount:%s", m[1])
	}
	return GasPrice{Amount: amount, Denom: m[2]}, nil
}

func (p GasPrice) IsZero() bool {
	return p.Amount == nil || len(p.Denom) == 0
}

func (p GasPrice) String() string {
	if p.IsZero() {
		return ""
	}
	if p.Amount.IsInt() {
		return p.Amount.Num().String() + p.Denom
	}
	v := strings.TrimRight(p.Amount.FloatString(18), "0")
	return v + p.Denom
}

// MarshalJSON implements json.Marshaler interface.
func (p GasPrice) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON implements json.Unmarshaler interface.
func (p *GasPrice) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if len(s) == 0 {
		*p = GasPrice{}
		return nil
	}
	v, err := ParseGasPrice(s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// CalculateFee returns the fee paying gasLimit at price, rounding the amount up.
func CalculateFee(gasLimit uint64, price GasPrice) StdFee {
	r := new(big.Rat).Mul(price.Amount, new(big.Rat).SetInt(new(big.Int).SetUint64(gasLimit)))
	q, m := new(big.Int).QuoRem(r.Num(), r.Denom(), new(big.Int))
	if m.Sign() > 0 {
		q.Add(q, big.NewInt(1))
	}
	return StdFee{
		Amount: Coins{{Denom: price.Denom, Amount: q.String()}},
		Gas:    strconv.FormatUint(gasLimit, 10),
	}
}

// EstimatedGasLimit applies multiplier to the simulated gas.
func EstimatedGasLimit(gasUsed uint64, multiplier float64) uint64 {
	return uint64(math.Round(float64(gasUsed) * multiplier))
}

func MustParseGasPrice(s string) GasPrice {
	p, err := ParseGasPrice(s)
	if err != nil {
		panic(errors.Wrapf(err, "fail to ParseGasPrice err:%s", err.Error()))
	}
	return p
}
