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
	"io"
	"net/http"

	"github.com/icon-project/btp2/common/errors"
	"github.com/icon-project/btp2/common/log"
)

const (
	DefaultTransportLogLevel = log.TraceLevel
	TransportLogLevelLimit   = log.InfoLevel
)

// HttpTransport dumps request and response bodies at lv.
type HttpTransport struct {
	http.RoundTripper
	lv log.Level
	l  log.Logger
}

func (t *HttpTransport) dump(prefix string, rc io.ReadCloser) (io.ReadCloser, error) {
	if rc == nil || rc == http.NoBody {
		return rc, nil
	}
	b, err := io.ReadAll(rc)
	if err != nil {
		return nil, errors.Wrapf(err, "fail to io.ReadAll err:%s", err.Error())
	}
	_ = rc.Close()
	t.l.Logf(t.lv, "%s %s", prefix, string(b))
	return io.NopCloser(bytes.NewBuffer(b)), nil
}

func (t *HttpTransport) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	t.l.Logf(t.lv, "%s %s", req.Method, req.URL.String())
	if req.Body, err = t.dump("request", req.Body); err != nil {
		return nil, err
	}
	if resp, err = t.RoundTripper.RoundTrip(req); err != nil {
		return nil, errors.Wrapf(err, "fail to RoundTrip err:%s", err.Error())
	}
	if resp.Body, err = t.dump("response", resp.Body); err != nil {
		return nil, err
	}
	return resp, nil
}

func NewHttpTransport(lv log.Level, l log.Logger) *HttpTransport {
	return &HttpTransport{
		RoundTripper: http.DefaultTransport,
		lv:           EnsureTransportLogLevel(lv),
		l:            l,
	}
}

func NewHttpClient(lv log.Level, l log.Logger) *http.Client {
	return &http.Client{
		Transport: NewHttpTransport(lv, l),
	}
}

func EnsureTransportLogLevel(lv log.Level) log.Level {
	if lv < TransportLogLevelLimit {
		return DefaultTransportLogLevel
	}
	return lv
}
