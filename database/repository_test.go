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
	"path/filepath"
	"testing"
	"time"

	"github.com/icon-project/btp2/common/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Struct struct {
	Model
	Field string
}

func openTestDatabase(t *testing.T) *DefaultRepository[Struct] {
	cfg := Config{
		Driver: DriverSQLite,
		DBName: filepath.Join(t.TempDir(), "test.db"),
	}
	db, err := OpenDatabase(cfg, log.New())
	if err != nil {
		assert.FailNow(t, err.Error())
	}
	r, err := NewDefaultRepository[Struct](db, "struct")
	if err != nil {
		assert.FailNow(t, err.Error())
	}
	return r
}

func assertEqualStruct(t *testing.T, expected, actual Struct) bool {
	if !assert.Equal(t, expected.ID, actual.ID) {
		return false
	}
	if !assert.True(t, expected.CreatedAt.Equal(actual.CreatedAt)) {
		return false
	}
	return assert.Equal(t, expected.Field, actual.Field)
}

func Test_ConfigDSN(t *testing.T) {
	tests := []struct {
		Config Config
		DSN    string
	}{
		{
			Config: Config{Driver: DriverMysql, User: "u", Password: "p", Host: "localhost", Port: 3306, DBName: "cwd"},
			DSN:    "u:p@tcp(localhost:3306)/cwd?charset=utf8mb4&parseTime=True",
		},
		{
			Config: Config{Driver: DriverPostgres, User: "u", Password: "p", Host: "localhost", Port: 5432, DBName: "cwd"},
			DSN:    "user=u password=p host=localhost port=5432 dbname=cwd sslmode=disable",
		},
		{
			Config: Config{Driver: DriverSQLite, DBName: "cwd.db"},
			DSN:    "file:cwd.db",
		},
		{
			Config: Config{Driver: DriverSQLite, User: "u", Password: "p", DBName: "cwd.db"},
			DSN:    "file:cwd.db?_auth&_auth_user=u&_auth_pass=p",
		},
	}
	for _, tt := range tests {
		dsn, err := tt.Config.DSN()
		assert.NoError(t, err)
		assert.Equal(t, tt.DSN, dsn)
	}
	_, err := Config{Driver: "oracle"}.DSN()
	assert.Error(t, err)
	assert.True(t, Config{}.IsEmpty())
}

func Test_Repository(t *testing.T) {
	r := openTestDatabase(t)

	var l []*Struct
	count, err := r.Count(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, int(count))

	rs, err := r.FindOne(Struct{Field: "none"})
	assert.NoError(t, err)
	assert.Nil(t, rs)

	for i := 0; i < 3; i++ {
		s := &Struct{
			Field: fmt.Sprintf("field_%d", i),
		}
		err = r.Save(s)
		require.NoError(t, err)
		assert.True(t, s.ID > 0)
		assert.False(t, time.Time{}.Equal(s.CreatedAt))

		rs, err = r.FindOne(Struct{Field: s.Field})
		assert.NoError(t, err)
		assertEqualStruct(t, *s, *rs)

		rl, err := r.Find(Struct{Field: s.Field})
		assert.NoError(t, err)
		assert.Equal(t, 1, len(rl))
		l = append(l, s)
	}
	count, err = r.Count(nil)
	assert.NoError(t, err)
	assert.Equal(t, len(l), int(count))

	count, err = r.Count("field = ?", "field_1")
	assert.NoError(t, err)
	assert.Equal(t, 1, int(count))

	page, err := r.Page(Pageable{}, nil)
	assert.NoError(t, err)
	assert.Equal(t, len(l), page.TotalElements)
	assert.Equal(t, 1, page.TotalPages)
	for i, s := range l {
		assertEqualStruct(t, *s, page.Content[i])
	}

	p := Pageable{Page: 1, Size: 2, Sort: "field desc"}
	page, err = r.Page(p, nil)
	assert.NoError(t, err)
	assert.Equal(t, len(l), page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 1, len(page.Content))
	assertEqualStruct(t, *l[0], page.Content[0])

	page, err = r.Page(Pageable{Size: 2}, "field = ?", "none")
	assert.NoError(t, err)
	assert.Equal(t, 0, page.TotalElements)
	assert.Equal(t, 0, page.TotalPages)
	assert.NotNil(t, page.Content)
}
