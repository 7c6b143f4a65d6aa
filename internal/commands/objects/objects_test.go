// Copyright 2025 Tom Barlow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package objects

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombee/awsclient/internal/commands/shared"
	"github.com/tombee/awsclient/internal/testing/clitest"
)

func TestGetTagging(t *testing.T) {
	cfg := clitest.Server(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/photos/2024/cat.jpg", r.URL.Path)
		assert.True(t, r.URL.Query().Has("tagging"))
		assert.Equal(t, "v-1", r.URL.Query().Get("versionId"))
		w.Header().Set("x-amz-version-id", "v-1")
		io.WriteString(w, `<Tagging><TagSet><Tag><Key>owner</Key><Value>alice</Value></Tag></TagSet></Tagging>`)
	}))

	res := clitest.Execute(t, cfg, NewCommand(), "get-tagging", "photos", "2024/cat.jpg", "--version-id", "v-1")
	require.NoError(t, res.Err)
	assert.JSONEq(t, `{"TagSet":[{"Key":"owner","Value":"alice"}],"VersionId":"v-1"}`, res.Stdout)
}

func TestPutTagging(t *testing.T) {
	var body string
	cfg := clitest.Server(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "111122223333", r.Header.Get("X-Amz-Expected-Bucket-Owner"))
		b, _ := io.ReadAll(r.Body)
		body = string(b)
	}))

	res := clitest.Execute(t, cfg, NewCommand(), "put-tagging", "photos", "cat.jpg",
		"--tag", "owner=alice", "--tag", "public=false", "--expected-bucket-owner", "111122223333")
	require.NoError(t, res.Err)
	assert.Contains(t, body, "<Tag><Key>owner</Key><Value>alice</Value></Tag>")
	assert.Contains(t, body, "<Tag><Key>public</Key><Value>false</Value></Tag>")
}

func TestGetTagging_NoSuchKey(t *testing.T) {
	cfg := clitest.Server(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("x-amz-request-id", "s3-req")
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `<Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message><Key>cat.jpg</Key></Error>`)
	}))

	res := clitest.Execute(t, cfg, NewCommand(), "get-tagging", "photos", "cat.jpg")
	require.Error(t, res.Err)
	assert.Equal(t, shared.ExitServiceError, shared.ExitCode(res.Err))
	assert.Contains(t, shared.FormatError(res.Err), "s3-req")
}

func TestParseTagSet(t *testing.T) {
	tags, err := parseTagSet([]string{"b=2", "a=1"})
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "b", *tags[0].Key)
	assert.Equal(t, "1", *tags[1].Value)

	_, err = parseTagSet([]string{"a=1", "a=2"})
	assert.ErrorContains(t, err, "duplicate")

	_, err = parseTagSet([]string{"novalue"})
	assert.Error(t, err)
}
