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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/icon-project/btp2/common/errors"
	"github.com/icon-project/btp2/common/log"

	"github.com/icon-project/cwd-sdk/contract"
	"github.com/icon-project/cwd-sdk/database"
	"github.com/icon-project/cwd-sdk/service"
)

type Client struct {
	*http.Client
	baseUrl    string
	baseApiUrl string
	l          log.Logger
}

func NewClient(url string, transportLogLevel log.Level, l log.Logger) *Client {
	l = Logger(l)
	return &Client{
		Client:     contract.NewHttpClient(transportLogLevel, l),
		baseUrl:    url,
		baseApiUrl: url + GroupUrlApi,
		l:          l,
	}
}

func (c *Client) apiUrl(format string, args ...interface{}) string {
	return c.baseApiUrl + fmt.Sprintf(format, args...)
}

func (c *Client) do(ctx context.Context, method, url string, reqPtr, respPtr interface{}) (resp *http.Response, err error) {
	var reqBody io.Reader
	if reqPtr != nil {
		var b []byte
		if b, err = json.Marshal(reqPtr); err != nil {
			c.l.Debugf("fail to encode Request err:%+v", err)
			return nil, err
		}
		reqBody = bytes.NewReader(b)
	}
	if !strings.HasPrefix(url, c.baseUrl) {
		url = c.baseApiUrl + url
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		c.l.Debugf("fail to NewRequest err:%+v", err)
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	c.l.Debugf("url=%s", req.URL)
	if resp, err = c.Client.Do(req); err != nil {
		return
	}
	if resp.StatusCode/100 != 2 {
		er := &ErrorResponse{}
		if err = UnmarshalBody(resp.Body, er); err != nil {
			c.l.Debugf("fail to decode ErrorResponse err:%+v", err)
			err = errors.Errorf("server response not success, StatusCode:%d",
				resp.StatusCode)
			return
		}
		err = er.Err()
		return
	}
	if respPtr != nil {
		if err = UnmarshalBody(resp.Body, respPtr); err != nil {
			c.l.Debugf("fail to decode resp err:%+v", err)
			return
		}
	} else {
		resp.Body.Close()
	}
	return
}

func (c *Client) NetworkInfos(ctx context.Context) (NetworkInfos, error) {
	r := NetworkInfos{}
	if _, err := c.do(ctx, http.MethodGet, c.baseApiUrl, nil, &r); err != nil {
		return nil, err
	}
	return r, nil
}

func (c *Client) ServiceInfos(ctx context.Context, network string) (ServiceInfos, error) {
	r := ServiceInfos{}
	if _, err := c.do(ctx, http.MethodGet, c.apiUrl("/%s", network), nil, &r); err != nil {
		return nil, err
	}
	return r, nil
}

func (c *Client) MethodInfos(ctx context.Context, network, svc string) (MethodInfos, error) {
	r := MethodInfos{}
	if _, err := c.do(ctx, http.MethodGet, c.apiUrl("/%s/%s", network, svc), nil, &r); err != nil {
		return nil, err
	}
	return r, nil
}

func (c *Client) GetResult(ctx context.Context, network, txHash string) (*contract.TxResult, error) {
	r := &contract.TxResult{}
	if _, err := c.do(ctx, http.MethodGet, c.apiUrl("/%s%s/%s", network, UrlGetResult, txHash), nil, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Call decodes the return value of the readonly method into resp.
func (c *Client) Call(ctx context.Context, network, svc, method string, params contract.Params, resp interface{}) error {
	req := &Request{Params: params}
	_, err := c.do(ctx, http.MethodGet, c.apiUrl("/%s/%s/%s", network, svc, method), req, resp)
	return err
}

func (c *Client) Invoke(ctx context.Context, network, svc, method string, req *Request) (*contract.ExecuteResult, error) {
	r := &contract.ExecuteResult{}
	if _, err := c.do(ctx, http.MethodPost, c.apiUrl("/%s/%s/%s", network, svc, method), req, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (c *Client) Journal(ctx context.Context, network, svc string, p database.Pageable) (*database.Page[service.TxRecord], error) {
	q := url.Values{}
	q.Set("page", strconv.FormatUint(uint64(p.Page), 10))
	q.Set("size", strconv.FormatUint(uint64(p.Size), 10))
	if len(p.Sort) > 0 {
		q.Set("sort", p.Sort)
	}
	r := &database.Page[service.TxRecord]{}
	u := c.apiUrl("/%s/%s%s?%s", network, svc, UrlJournal, q.Encode())
	if _, err := c.do(ctx, http.MethodGet, u, nil, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (c *Client) OpenAPISpec(ctx context.Context, svc string) (*openapi3.T, error) {
	r := &openapi3.T{}
	if _, err := c.do(ctx, http.MethodGet, c.baseUrl+GroupUrlApiDocs+"/"+svc, nil, r); err != nil {
		return nil, err
	}
	return r, nil
}
