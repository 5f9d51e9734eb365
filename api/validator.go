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
	"net/http"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/icon-project/btp2/common/log"
	"github.com/labstack/echo/v4"
)

const (
	validationTagSort = "sort"
)

var (
	sortRegexp = regexp.MustCompile(`^[a-z_]+( (asc|desc))?(,[a-z_]+( (asc|desc))?)*$`)
)

type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	if err := v.RegisterValidation(validationTagSort, func(fl validator.FieldLevel) bool {
		return sortRegexp.MatchString(fl.Field().String())
	}); err != nil {
		log.Panicf("fail to RegisterValidation err:%+v", err)
	}
	return &Validator{v: v}
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.v.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
