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
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/icon-project/btp2/common/errors"
	"github.com/icon-project/btp2/common/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/icon-project/cwd-sdk/contract"
	"github.com/icon-project/cwd-sdk/database"
	"github.com/icon-project/cwd-sdk/service"
)

const (
	ParamNetwork    = "network"
	ParamTxHash     = "txHash"
	ParamService    = "service"
	ParamMethod     = "method"
	ContextAdaptor  = "adaptor"
	ContextService  = "service"
	ContextRequest  = "request"
	GroupUrlApi     = "/api"
	GroupUrlApiDocs = "/api-docs"
	UrlGetResult    = "/result"
	UrlJournal      = "/journal"
)

func Logger(l log.Logger) log.Logger {
	return l.WithFields(log.Fields{log.FieldKeyModule: "api"})
}

type NetworkInfo struct {
	Name        string   `json:"name"`
	NetworkType string   `json:"networkType"`
	Services    []string `json:"services"`
}

type NetworkInfos []NetworkInfo

type ServiceInfo struct {
	Name    string `json:"name"`
	Journal bool   `json:"journal"`
}

type ServiceInfos []ServiceInfo

type MethodInfo struct {
	Name     string `json:"name"`
	Readonly bool   `json:"readonly"`
}

type MethodInfos []MethodInfo

type Request struct {
	Params  contract.Params  `json:"params" query:"params"`
	Options contract.Options `json:"options" query:"options"`
}

type JournalRequest struct {
	Page uint   `json:"page" query:"page"`
	Size uint   `json:"size" query:"size" validate:"lte=1000"`
	Sort string `json:"sort" query:"sort" validate:"omitempty,sort"`
}

func (r *JournalRequest) Pageable() database.Pageable {
	return database.Pageable{
		Page: r.Page,
		Size: r.Size,
		Sort: r.Sort,
	}
}

type Server struct {
	e    *echo.Echo
	addr string
	aMap map[string]contract.Adaptor
	sMap map[string]service.Service
	mtx  sync.RWMutex
	once sync.Once
	lv   log.Level
	l    log.Logger
}

func NewServer(addr string, transportLogLevel log.Level, l log.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = HttpErrorHandler
	return &Server{
		e:    e,
		addr: addr,
		aMap: make(map[string]contract.Adaptor),
		sMap: make(map[string]service.Service),
		lv:   contract.EnsureTransportLogLevel(transportLogLevel),
		l:    Logger(l),
	}
}

func (s *Server) AddAdaptor(network string, a contract.Adaptor) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.aMap[network] = a
}

func (s *Server) GetAdaptor(network string) contract.Adaptor {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.aMap[network]
}

func (s *Server) AddService(svc service.Service) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.sMap[svc.Name()] = svc
}

func (s *Server) GetService(name string) service.Service {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.sMap[name]
}

func (s *Server) NetworkInfos() NetworkInfos {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	l := make(NetworkInfos, 0, len(s.aMap))
	for network, a := range s.aMap {
		l = append(l, NetworkInfo{
			Name:        network,
			NetworkType: a.NetworkType(),
			Services:    s.serviceNames(network),
		})
	}
	sort.Slice(l, func(i, j int) bool {
		return l[i].Name < l[j].Name
	})
	return l
}

func (s *Server) serviceNames(network string) []string {
	l := make([]string, 0)
	for name, svc := range s.sMap {
		if service.StringSetContains(svc.Networks(), network) {
			l = append(l, name)
		}
	}
	sort.Strings(l)
	return l
}

func (s *Server) ServiceInfos(network string) ServiceInfos {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	names := s.serviceNames(network)
	l := make(ServiceInfos, len(names))
	for i, name := range names {
		_, journal := s.sMap[name].(*service.JournalService)
		l[i] = ServiceInfo{
			Name:    name,
			Journal: journal,
		}
	}
	return l
}

func NewMethodInfos(spec service.Spec) MethodInfos {
	names := spec.MethodNames()
	l := make(MethodInfos, len(names))
	for i, name := range names {
		l[i] = MethodInfo{
			Name:     name,
			Readonly: spec.Methods[name].Readonly,
		}
	}
	return l
}

func (s *Server) registerHandlers() {
	s.once.Do(func() {
		s.e.Use(
			middleware.CORSWithConfig(middleware.CORSConfig{
				MaxAge: 3600,
			}),
			middleware.Recover())
		s.RegisterAPIHandler(s.e.Group(GroupUrlApi))
		s.RegisterAPIDocsHandler(s.e.Group(GroupUrlApiDocs))
	})
}

func (s *Server) Start() error {
	s.l.Infoln("starting the server")
	s.registerHandlers()
	return s.e.Start(s.addr)
}

func (s *Server) RegisterAPIHandler(g *echo.Group) {
	g.Use(middleware.BodyDump(func(c echo.Context, reqBody []byte, resBody []byte) {
		s.l.Debugf("url=%s", c.Request().RequestURI)
		s.l.Logf(s.lv, "request=%s", reqBody)
		s.l.Logf(s.lv, "response=%s", resBody)
	}))
	g.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, s.NetworkInfos())
	})

	networkApi := g.Group("/:"+ParamNetwork, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p := c.Param(ParamNetwork)
			a := s.GetAdaptor(p)
			if a == nil {
				return echo.NewHTTPError(http.StatusNotFound,
					fmt.Sprintf("Network(%s) not found", p))
			}
			c.Set(ContextAdaptor, a)
			return next(c)
		}
	})
	networkApi.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, s.ServiceInfos(c.Param(ParamNetwork)))
	})
	networkApi.GET(UrlGetResult+"/:"+ParamTxHash, func(c echo.Context) error {
		a := c.Get(ContextAdaptor).(contract.Adaptor)
		ret, err := a.GetResult(c.Request().Context(), c.Param(ParamTxHash))
		if err != nil {
			s.l.Debugf("fail to GetResult err:%+v", err)
			return err
		}
		return c.JSON(http.StatusOK, ret)
	})

	serviceApi := networkApi.Group("/:"+ParamService, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p := c.Param(ParamService)
			svc := s.GetService(p)
			if svc == nil || !service.StringSetContains(svc.Networks(), c.Param(ParamNetwork)) {
				return echo.NewHTTPError(http.StatusNotFound,
					fmt.Sprintf("Service(%s) not found", p))
			}
			c.Set(ContextService, svc)
			return next(c)
		}
	})
	serviceApi.GET("", func(c echo.Context) error {
		svc := c.Get(ContextService).(service.Service)
		return c.JSON(http.StatusOK, NewMethodInfos(svc.Spec()))
	})
	serviceApi.GET(UrlJournal, func(c echo.Context) error {
		js, ok := c.Get(ContextService).(*service.JournalService)
		if !ok {
			return echo.NewHTTPError(http.StatusNotFound,
				fmt.Sprintf("Journal of Service(%s) not found", c.Param(ParamService)))
		}
		req := &JournalRequest{}
		if err := c.Bind(req); err != nil {
			s.l.Debugf("fail to Bind err:%+v", err)
			return echo.ErrBadRequest
		}
		if err := c.Validate(req); err != nil {
			s.l.Debugf("fail to Validate err:%+v", err)
			return err
		}
		ret, err := js.Records(c.Param(ParamNetwork), req.Pageable())
		if err != nil {
			s.l.Errorf("fail to Records err:%+v", err)
			return err
		}
		return c.JSON(http.StatusOK, ret)
	})

	methodApi := serviceApi.Group("/:"+ParamMethod, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			svc := c.Get(ContextService).(service.Service)
			pm := c.Param(ParamMethod)
			m, found := svc.Spec().Methods[pm]
			if !found {
				return echo.NewHTTPError(http.StatusNotFound,
					fmt.Sprintf("Method(%s) not found", pm))
			}
			hm := c.Request().Method
			if m.Readonly {
				if hm != http.MethodGet {
					return echo.NewHTTPError(http.StatusMethodNotAllowed,
						fmt.Sprintf("HttpMethod(%s) not allowed, use GET", hm))
				}
			} else {
				if hm != http.MethodPost {
					return echo.NewHTTPError(http.StatusMethodNotAllowed,
						fmt.Sprintf("HttpMethod(%s) not allowed, use POST", hm))
				}
			}

			req, err := BindRequest(c, m)
			if err != nil {
				s.l.Debugf("fail to BindRequest err:%+v", err)
				return echo.ErrBadRequest
			}
			if err = c.Validate(req); err != nil {
				s.l.Debugf("fail to Validate err:%+v", err)
				return err
			}
			c.Set(ContextRequest, req)
			return next(c)
		}
	})
	methodApi.POST("", func(c echo.Context) error {
		req := c.Get(ContextRequest).(*Request)
		svc := c.Get(ContextService).(service.Service)
		ret, err := svc.Invoke(c.Request().Context(), c.Param(ParamNetwork), c.Param(ParamMethod), req.Params, req.Options)
		if err != nil {
			s.l.Errorf("fail to Invoke err:%+v", err)
			return err
		}
		return c.JSON(http.StatusOK, ret)
	})
	methodApi.GET("", func(c echo.Context) error {
		req := c.Get(ContextRequest).(*Request)
		svc := c.Get(ContextService).(service.Service)
		ret, err := svc.Call(c.Request().Context(), c.Param(ParamNetwork), c.Param(ParamMethod), req.Params)
		if err != nil {
			s.l.Errorf("fail to Call err:%+v", err)
			return err
		}
		return c.JSON(http.StatusOK, ret)
	})
}

func (s *Server) RegisterAPIDocsHandler(g *echo.Group) {
	g.GET("/:"+ParamService, func(c echo.Context) error {
		p := c.Param(ParamService)
		svc := s.GetService(p)
		if svc == nil {
			return echo.NewHTTPError(http.StatusNotFound,
				fmt.Sprintf("Service(%s) not found", p))
		}
		s.mtx.RLock()
		networkToType := make(map[string]string)
		for _, network := range svc.Networks() {
			if a, ok := s.aMap[network]; ok {
				networkToType[network] = a.NetworkType()
			}
		}
		s.mtx.RUnlock()
		return c.JSON(http.StatusOK, NewServiceOpenAPISpec(svc, networkToType))
	})
}

func (s *Server) Stop() error {
	s.l.Infoln("shutting down the server")

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()
	return s.e.Shutdown(ctx)
}

var executeOptionsType = reflect.TypeOf(contract.ExecuteOptions{})

// BindRequest reads params and options from the query and the body of c.
// Query values are converted by the input type of m.
func BindRequest(c echo.Context, m *service.MethodSpec) (*Request, error) {
	qm, err := QueryParamsToMap(c)
	if err != nil {
		return nil, err
	}
	var inputs reflect.Type
	if m.Inputs != nil {
		inputs = reflect.TypeOf(m.Inputs)
	}
	req := &Request{}
	if req.Params, err = queryObject(qm["params"], inputs); err != nil {
		return nil, err
	}
	if req.Options, err = queryObject(qm["options"], executeOptionsType); err != nil {
		return nil, err
	}
	if err = UnmarshalRequestBody(c, req); err != nil {
		return nil, err
	}
	return req, nil
}

func queryObject(v interface{}, t reflect.Type) (map[string]interface{}, error) {
	switch tv := v.(type) {
	case nil:
		return nil, nil
	case map[string]interface{}:
		return CoerceQueryValues(tv, t), nil
	case string:
		if m, ok := queryValue(tv).(map[string]interface{}); ok {
			return m, nil
		}
	}
	return nil, errors.Errorf("invalid query object:%v", v)
}

// queryValue decodes a query value as JSON if possible, so that numbers,
// booleans and objects keep their types. Numbers are kept as json.Number.
func queryValue(s string) interface{} {
	d := json.NewDecoder(strings.NewReader(s))
	d.UseNumber()
	var v interface{}
	if err := d.Decode(&v); err != nil || d.More() {
		return s
	}
	return v
}

func indirectType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

func queryFieldType(t reflect.Type, name string) reflect.Type {
	if t = indirectType(t); t == nil {
		return nil
	}
	switch t.Kind() {
	case reflect.Map:
		return t.Elem()
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			tag := strings.Split(f.Tag.Get("json"), ",")[0]
			if tag == "-" || !f.IsExported() {
				continue
			}
			if f.Anonymous && len(tag) == 0 {
				if ft := queryFieldType(f.Type, name); ft != nil {
					return ft
				}
				continue
			}
			if len(tag) == 0 {
				tag = f.Name
			}
			if strings.EqualFold(tag, name) {
				return f.Type
			}
		}
	}
	return nil
}

func coerceQueryValue(v interface{}, t reflect.Type) interface{} {
	t = indirectType(t)
	switch tv := v.(type) {
	case map[string]interface{}:
		return CoerceQueryValues(tv, t)
	case []interface{}:
		var et reflect.Type
		if t != nil && (t.Kind() == reflect.Slice || t.Kind() == reflect.Array) {
			et = t.Elem()
		}
		for i, e := range tv {
			tv[i] = coerceQueryValue(e, et)
		}
		return tv
	case string:
		if t != nil && t.Kind() == reflect.String {
			return tv
		}
		return queryValue(tv)
	default:
		return v
	}
}

// CoerceQueryValues converts string values of m to the JSON kind of the
// matching field of t. Values for string fields stay as they are, the
// others are decoded as JSON if possible.
func CoerceQueryValues(m map[string]interface{}, t reflect.Type) map[string]interface{} {
	for k, v := range m {
		m[k] = coerceQueryValue(v, queryFieldType(t, k))
	}
	return m
}

// QueryParamsToMap converts query params with bracket notation like
// "params[msg][id]=1" to nested maps of raw string values.
func QueryParamsToMap(c echo.Context) (map[string]interface{}, error) {
	m := make(map[string]interface{})
	for k, v := range c.QueryParams() {
		tm := m
		if start := strings.IndexByte(k, '['); start > 0 && k[len(k)-1] == ']' {
			l := []string{k[:start]}
			l = append(l, strings.Split(k[start+1:len(k)-1], "][")...)
			last := len(l) - 1
			for i, p := range l {
				if i == last {
					k = p
					break
				}
				elem, ok := tm[p]
				if !ok {
					cm := make(map[string]interface{})
					tm[p] = cm
					tm = cm
				} else if tm, ok = elem.(map[string]interface{}); !ok {
					return nil, errors.Errorf("fail cast k:%s i:%d p:%s", k, i, p)
				}
			}
		}
		switch len(v) {
		case 0:
			tm[k] = nil
		case 1:
			tm[k] = v[0]
		default:
			l := make([]interface{}, len(v))
			for i, e := range v {
				l[i] = e
			}
			tm[k] = l
		}
	}
	return m, nil
}

func UnmarshalRequestBody(c echo.Context, v interface{}) error {
	if c.Request().ContentLength == 0 {
		return nil
	}
	return UnmarshalBody(c.Request().Body, v)
}

func UnmarshalBody(b io.ReadCloser, v interface{}) error {
	defer b.Close()
	d := json.NewDecoder(b)
	d.UseNumber()
	if err := d.Decode(v); err != nil && err != io.EOF {
		return err
	}
	return nil
}
