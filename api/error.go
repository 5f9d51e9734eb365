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

package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/icon-project/btp2/common/errors"
	"github.com/labstack/echo/v4"

	"github.com/icon-project/cwd-sdk/contract"
)

type ErrorResponse struct {
	Code    errors.Code     `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *ErrorResponse) Error() string {
	return fmt.Sprintf("code:%d, message:%s", e.Code, e.Message)
}

func (e *ErrorResponse) ErrorCode() errors.Code {
	return e.Code
}

func (e *ErrorResponse) MarshalData(v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	e.Data = b
	return nil
}

func (e *ErrorResponse) UnmarshalData(v interface{}) error {
	return json.Unmarshal(e.Data, v)
}

// TxFailedData is the Data of ErrorResponse for contract.ErrorCodeTxFailed.
type TxFailedData struct {
	TxHash string `json:"txhash"`
	Height int64  `json:"height"`
	Code   uint32 `json:"code"`
	RawLog string `json:"raw_log"`
}

// Err restores the error carried by the response.
func (e *ErrorResponse) Err() error {
	if contract.ErrorCodeTxFailed.Equals(e) && len(e.Data) > 0 {
		d := &TxFailedData{}
		if err := e.UnmarshalData(d); err == nil {
			return &contract.TxFailedError{
				TxHash: d.TxHash,
				Height: d.Height,
				Code:   d.Code,
				RawLog: d.RawLog,
			}
		}
	}
	return e
}

func StatusCodeOf(code errors.Code) int {
	switch code {
	case contract.ErrorCodeNotFoundMethod, contract.ErrorCodeNotFoundTransaction:
		return http.StatusNotFound
	case contract.ErrorCodeMismatchReadonly:
		return http.StatusMethodNotAllowed
	case contract.ErrorCodeInvalidParam, contract.ErrorCodeInvalidOption:
		return http.StatusBadRequest
	case contract.ErrorCodeRequireSigner:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func HttpErrorHandler(err error, c echo.Context) {
	var code int
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if e, ok := he.Message.(error); ok {
			err = e
		} else {
			err = errors.New(fmt.Sprint(he.Message))
		}
	}
	er := &ErrorResponse{
		Code:    errors.CodeOf(err),
		Message: err.Error(),
	}
	if code == 0 {
		code = StatusCodeOf(er.Code)
	}
	if tfe, ok := err.(*contract.TxFailedError); ok {
		if err = er.MarshalData(&TxFailedData{
			TxHash: tfe.TxHash,
			Height: tfe.Height,
			Code:   tfe.Code,
			RawLog: tfe.RawLog,
		}); err != nil {
			c.Echo().Logger.Error(err)
		}
	}
	if !c.Response().Committed {
		if err = c.JSON(code, er); err != nil {
			c.Echo().Logger.Error(err)
		}
	}
}
