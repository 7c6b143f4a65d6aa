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

package streams

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombee/awsclient/internal/commands/shared"
	"github.com/tombee/awsclient/internal/testing/clitest"
)

type captured struct {
	target string
	body   map[string]any
}

func server(t *testing.T, status int, reply string, got *captured) string {
	return clitest.Server(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.target = r.Header.Get("X-Amz-Target")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got.body))
		w.Header().Set("Content-Type", "application/x-amz-json-1.1")
		w.WriteHeader(status)
		io.WriteString(w, reply)
	}))
}

func TestDescribe(t *testing.T) {
	var got captured
	cfg := server(t, 200, `{"StreamDescription":{"StreamName":"clicks","StreamStatus":"ACTIVE","Shards":[{"ShardId":"shardId-000"}]}}`, &got)

	res := clitest.Execute(t, cfg, NewCommand(), "describe", "clicks", "--limit", "5")
	require.NoError(t, res.Err)

	assert.Equal(t, "Streams_20131202.DescribeStream", got.target)
	assert.Equal(t, "clicks", got.body["StreamName"])
	assert.Equal(t, float64(5), got.body["Limit"])
	assert.Contains(t, res.Stdout, `"StreamStatus": "ACTIVE"`)
}

func TestDescribe_NotFound(t *testing.T) {
	var got captured
	cfg := server(t, 400, `{"__type":"ResourceNotFoundException","message":"Stream clicks not found"}`, &got)

	res := clitest.Execute(t, cfg, NewCommand(), "describe", "clicks")
	require.Error(t, res.Err)
	assert.Equal(t, shared.ExitServiceError, shared.ExitCode(res.Err))
	assert.Contains(t, res.Err.Error(), "ResourceNotFoundException")
}

func TestPut_DataFlag(t *testing.T) {
	var got captured
	cfg := server(t, 200, `{"ShardId":"shardId-000","SequenceNumber":"4960"}`, &got)

	res := clitest.Execute(t, cfg, NewCommand(), "put", "clicks", "--partition-key", "user-1", "--data", "hello")
	require.NoError(t, res.Err)

	assert.Equal(t, "Streams_20131202.PutRecord", got.target)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("hello")), got.body["Data"])
	assert.Equal(t, "user-1", got.body["PartitionKey"])
	assert.Contains(t, res.Stdout, `"SequenceNumber": "4960"`)
}

func TestPut_DataFile(t *testing.T) {
	var got captured
	cfg := server(t, 200, `{"ShardId":"shardId-000","SequenceNumber":"1"}`, &got)

	path := filepath.Join(t.TempDir(), "event.bin")
	require.NoError(t, os.WriteFile(path, []byte{0x00, 0xff, 0x10}, 0o600))

	res := clitest.Execute(t, cfg, NewCommand(), "put", "clicks", "--partition-key", "k", "--data-file", path)
	require.NoError(t, res.Err)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte{0x00, 0xff, 0x10}), got.body["Data"])
}

func TestPut_Errors(t *testing.T) {
	var got captured
	cfg := server(t, 200, `{}`, &got)

	res := clitest.Execute(t, cfg, NewCommand(), "put", "clicks", "--partition-key", "k", "--data-file", filepath.Join(t.TempDir(), "missing"))
	assert.Equal(t, shared.ExitInvalidInput, shared.ExitCode(res.Err))

	res = clitest.Execute(t, cfg, NewCommand(), "put", "clicks", "--data", "x")
	assert.Equal(t, shared.ExitInvalidInput, shared.ExitCode(res.Err), "missing partition key fails serialization")
	assert.Empty(t, got.target)
}
