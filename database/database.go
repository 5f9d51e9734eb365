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

package database

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/icon-project/btp2/common/errors"
	"github.com/icon-project/btp2/common/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	DriverMysql    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Driver   string `json:"driver"`
	User     string `json:"user,omitempty"`
	Password string `json:"password,omitempty"`
	Host     string `json:"host,omitempty"`
	Port     uint   `json:"port,omitempty"`
	DBName   string `json:"dbname"`
}

func (c Config) IsEmpty() bool {
	return len(c.Driver) == 0
}

func (c Config) DSN() (string, error) {
	switch c.Driver {
	case DriverMysql:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True",
			c.User, c.Password, c.Host, c.Port, c.DBName), nil
	case DriverPostgres:
		return fmt.Sprintf("user=%s password=%s host=%s port=%d dbname=%s sslmode=disable",
			c.User, c.Password, c.Host, c.Port, c.DBName), nil
	case DriverSQLite:
		dsn := "file:" + c.DBName
		if len(c.User) > 0 {
			dsn += fmt.Sprintf("?_auth&_auth_user=%s&_auth_pass=%s", c.User, c.Password)
		}
		return dsn, nil
	default:
		return "", errors.Errorf("not support db type:%s", c.Driver)
	}
}

var zeroDefaultDatetimePrecision = 0

func OpenDatabase(cfg Config, l log.Logger) (*gorm.DB, error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}
	gcfg := &gorm.Config{
		Logger: newDatabaseLogger(l),
	}
	switch cfg.Driver {
	case DriverMysql:
		return gorm.Open(mysql.New(mysql.Config{
			DSN:                       dsn,
			DefaultStringSize:         256,
			DisableDatetimePrecision:  true,
			DefaultDatetimePrecision:  &zeroDefaultDatetimePrecision,
			DontSupportRenameIndex:    true,
			DontSupportRenameColumn:   true,
			SkipInitializeWithVersion: false,
		}), gcfg)
	case DriverPostgres:
		return gorm.Open(postgres.Open(dsn), gcfg)
	default:
		return gorm.Open(sqlite.Open(dsn), gcfg)
	}
}
