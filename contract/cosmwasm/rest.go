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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/icon-project/btp2/common/errors"
)

const (
	// gRPC status code carried in REST error bodies
	grpcCodeNotFound   = 5
	// legacy gateways report a missing tx as an internal error
	legacyCodeInternal = 2
)

// Error is the error body returned by the LCD REST endpoint.
type Error struct {
	StatusCode int               `json:"-"`
	Code       int               `json:"code"`
	Message    string            `json:"message"`
	Details    []json.RawMessage `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("status:%d, code:%d, message:%s", e.StatusCode, e.Code, e.Message)
}

func (e *Error) IsNotFound() bool {
	if e.StatusCode == http.StatusNotFound || e.Code == grpcCodeNotFound {
		return true
	}
	return e.Code == legacyCodeInternal && strings.Contains(strings.ToLower(e.Message), "not found")
}

func IsNotFound(err error) bool {
	re, ok := err.(*Error)
	return ok && re.IsNotFound()
}

func (a *Adaptor) request(ctx context.Context, method, path string, body interface{}, resp interface{}) error {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "fail to marshal request err:%s", err.Error())
		}
		r = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, a.endpoint+path, r)
	if err != nil {
		return errors.Wrapf(err, "fail to NewRequest err:%s", err.Error())
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	hr, err := a.c.Do(req)
	if err != nil {
		return err
	}
	defer hr.Body.Close()
	b, err := io.ReadAll(hr.Body)
	if err != nil {
		return errors.Wrapf(err, "fail to read response err:%s", err.Error())
	}
	if hr.StatusCode != http.StatusOK {
		re := &Error{}
		if err = json.Unmarshal(b, re); err != nil || (re.Code == 0 && len(re.Message) == 0) {
			re.Message = string(b)
		}
		re.StatusCode = hr.StatusCode
		return re
	}
	if resp == nil {
		return nil
	}
	if err = json.Unmarshal(b, resp); err != nil {
		return errors.Wrapf(err, "fail to unmarshal response err:%s", err.Error())
	}
	return nil
}

func (a *Adaptor) get(ctx context.Context, path string, resp interface{}) error {
	return a.request(ctx, http.MethodGet, path, nil, resp)
}

func (a *Adaptor) post(ctx context.Context, path string, body interface{}, resp interface{}) error {
	return a.request(ctx, http.MethodPost, path, body, resp)
}
