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
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
	"github.com/icon-project/btp2/common/log"

	"github.com/icon-project/cwd-sdk/contract"
	"github.com/icon-project/cwd-sdk/service"
)

const (
	openapi3Version     = "3.0.3"
	infoTitlePrefix     = "CWD SDK "
	infoTitleSuffix     = " - OpenAPI " + openapi3Version
	infoDefaultVersion  = "0.1.0"
	tagReadonly         = "Readonly"
	tagWritable         = "Writable"
	schemaRefPrefix     = "#/components/schemas/"
	schemaFee           = "Fee"
	schemaExecuteResult = "ExecuteResult"
	schemaOptions       = "ExecuteOptions"
	schemaErrorResponse = "ErrorResponse"
	schemaMethodInfos   = "MethodInfos"
)

var (
	infoLicenseApache = &openapi3.License{
		Name: "Apache 2.0",
		URL:  "http://www.apache.org/licenses/LICENSE-2.0.html",
	}
	feeSchema = openapi3.NewOneOfSchema(
		openapi3.NewStringSchema().WithEnum("auto"),
		openapi3.NewFloat64Schema().WithExclusiveMin(true).WithMin(0),
		MustGenerateSchema(&contract.StdFee{}),
	)
	defaultSchemas = map[string]*openapi3.Schema{
		schemaFee:           feeSchema,
		schemaExecuteResult: MustGenerateSchema(&contract.ExecuteResult{}),
		schemaOptions: openapi3.NewObjectSchema().
			WithPropertyRef("fee", openapi3.NewSchemaRef(schemaRefPrefix+schemaFee, feeSchema)).
			WithProperty("memo", openapi3.NewStringSchema()).
			WithProperty("funds", MustGenerateSchema(&contract.Coins{})),
		schemaErrorResponse: MustGenerateSchema(&ErrorResponse{}),
		schemaMethodInfos:   MustGenerateSchema(&MethodInfos{}),
	}
	defaultTags = openapi3.Tags{
		NewTag(tagReadonly, "Readonly service method"),
		NewTag(tagWritable, "Writable service method"),
	}
)

func MustGenerateSchema(v interface{}) *openapi3.Schema {
	ref, err := openapi3gen.NewSchemaRefForValue(v, nil)
	if err != nil {
		log.Panicf("%+v", err)
	}
	return ref.Value
}

// ValueSchema returns the schema of v, nil v is any value.
func ValueSchema(v interface{}) *openapi3.Schema {
	if v == nil {
		return openapi3.NewSchema()
	}
	return MustGenerateSchema(v)
}

func DefaultSchemaRef(name string) *openapi3.SchemaRef {
	if s, ok := defaultSchemas[name]; ok {
		return openapi3.NewSchemaRef(schemaRefPrefix+name, s)
	}
	return nil
}

func NewSchemas() openapi3.Schemas {
	schemas := make(openapi3.Schemas)
	for k, s := range defaultSchemas {
		schemas[k] = s.NewRef()
	}
	return schemas
}

func NewTag(name, desc string) *openapi3.Tag {
	return &openapi3.Tag{
		Name:        name,
		Description: desc,
	}
}

func NewTags() openapi3.Tags {
	tags := make(openapi3.Tags, len(defaultTags))
	copy(tags, defaultTags)
	return tags
}

func NewPathParameterWithSchema(name string, s *openapi3.Schema) *openapi3.Parameter {
	return openapi3.NewPathParameter(name).WithRequired(true).WithSchema(s)
}

func NewParameters(ps ...*openapi3.Parameter) openapi3.Parameters {
	parameters := make(openapi3.Parameters, 0, len(ps))
	for _, p := range ps {
		parameters = append(parameters, &openapi3.ParameterRef{Value: p})
	}
	return parameters
}

func NewStringEnumSchema(strs ...string) *openapi3.Schema {
	values := make([]interface{}, len(strs))
	for i := 0; i < len(strs); i++ {
		values[i] = strs[i]
	}
	return openapi3.NewStringSchema().WithEnum(values...)
}

func ResponsesWithResponse(m openapi3.Responses, status int, resp *openapi3.Response) openapi3.Responses {
	if m == nil {
		m = make(openapi3.Responses)
	}
	m[strconv.FormatInt(int64(status), 10)] = &openapi3.ResponseRef{
		Value: resp,
	}
	return m
}

func NewResponses(sr *openapi3.SchemaRef) openapi3.Responses {
	m := ResponsesWithResponse(nil, http.StatusOK,
		openapi3.NewResponse().WithDescription("Successful operation").WithJSONSchemaRef(sr))
	m["default"] = &openapi3.ResponseRef{
		Value: openapi3.NewResponse().WithDescription("Error").
			WithJSONSchemaRef(DefaultSchemaRef(schemaErrorResponse)),
	}
	return m
}

func NewOpenAPISpec(name string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: openapi3Version,
		Info: &openapi3.Info{
			Title:   infoTitlePrefix + name + infoTitleSuffix,
			Version: infoDefaultVersion,
			License: infoLicenseApache,
		},
		Tags:  NewTags(),
		Paths: make(openapi3.Paths),
		Components: &openapi3.Components{
			Schemas: NewSchemas(),
		},
	}
}

func NewPathItemForMethodSpec(serviceName string, m *service.MethodSpec) *openapi3.PathItem {
	pi := &openapi3.PathItem{}
	inputs := ValueSchema(m.Inputs)
	if m.Inputs == nil {
		inputs = openapi3.NewObjectSchema()
	}
	if m.Readonly {
		p := openapi3.NewQueryParameter("params").WithSchema(inputs)
		p.Style = openapi3.SerializationDeepObject
		pi.Get = &openapi3.Operation{
			Tags:        []string{tagReadonly, serviceName},
			OperationID: m.Name,
			Parameters:  NewParameters(p),
			Responses:   NewResponses(ValueSchema(m.Output).NewRef()),
		}
	} else {
		req := openapi3.NewObjectSchema().
			WithProperty("params", inputs).
			WithPropertyRef("options", DefaultSchemaRef(schemaOptions))
		pi.Post = &openapi3.Operation{
			Tags:        []string{tagWritable, serviceName},
			OperationID: m.Name,
			RequestBody: &openapi3.RequestBodyRef{
				Value: openapi3.NewRequestBody().WithContent(
					openapi3.NewContentWithJSONSchema(req)),
			},
			Responses: NewResponses(DefaultSchemaRef(schemaExecuteResult)),
		}
	}
	return pi
}

// NewServiceOpenAPISpec documents the methods of s on the given networks.
func NewServiceOpenAPISpec(s service.Service, networkToType map[string]string) *openapi3.T {
	ss := s.Spec()
	oas := NewOpenAPISpec(ss.Name)
	oas.Tags = append(oas.Tags, NewTag(ss.Name, fmt.Sprintf("%s Service", ss.Name)))
	networks := make([]string, 0, len(networkToType))
	for network := range networkToType {
		networks = append(networks, network)
	}
	sort.Strings(networks)
	networkParam := NewPathParameterWithSchema(ParamNetwork, NewStringEnumSchema(networks...))

	servicePath := fmt.Sprintf("%s/{%s}/%s", GroupUrlApi, ParamNetwork, ss.Name)
	oas.Paths[servicePath] = &openapi3.PathItem{
		Parameters: NewParameters(networkParam),
		Get: &openapi3.Operation{
			Tags:      []string{ss.Name},
			Summary:   "Retrieve methods",
			Responses: NewResponses(DefaultSchemaRef(schemaMethodInfos)),
		},
	}
	for _, name := range ss.MethodNames() {
		pi := NewPathItemForMethodSpec(ss.Name, ss.Methods[name])
		pi.Parameters = NewParameters(networkParam)
		oas.Paths[fmt.Sprintf("%s/%s", servicePath, name)] = pi
	}
	return oas
}
