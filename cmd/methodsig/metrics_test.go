// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"bytes"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraklabs/methodsig/internal/errors"
	sigtest "github.com/kraklabs/methodsig/internal/testing"
)

func scrape(t *testing.T, addr string) (string, error) {
	t.Helper()

	client := &http.Client{Timeout: time.Second}
	resp, err := client.Get("http://" + addr + "/metrics")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	return string(body), err
}

// freeAddr returns a loopback address that was free a moment ago.
func freeAddr(t *testing.T) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func TestServeMetrics(t *testing.T) {
	sigtest.MustParse(t, "public int size()")

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelInfo}))
	stop := serveMetrics(ln, logger)

	body, err := scrape(t, addr)
	require.NoError(t, err)
	assert.Contains(t, body, "methodsig_parse_total")
	assert.Contains(t, body, "methodsig_parse_seconds")

	stop()
	_, err = scrape(t, addr)
	assert.Error(t, err, "server should be down after stop")

	assert.Contains(t, logs.String(), "metrics.http.start")
	assert.Contains(t, logs.String(), "metrics.http.stop")
}

func TestRun_BatchMetricsAddr(t *testing.T) {
	res := runCLI(t, "void a()\n", "-v", "batch", "--metrics-addr", "127.0.0.1:0")

	require.Equal(t, errors.ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stderr, "metrics.http.start")
	assert.Contains(t, res.stderr, "metrics.http.stop")
	assert.NotContains(t, res.stderr, "metrics.http.linger")
}

func TestRun_BatchMetricsFromConfig(t *testing.T) {
	path := sigtest.WriteConfigFile(t, "metrics_addr: 127.0.0.1:0\n")

	res := runCLI(t, "void a()\n", "-v", "--config", path, "batch")
	require.Equal(t, errors.ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stderr, "metrics.http.start")
}

func TestRun_BatchMetricsBadAddr(t *testing.T) {
	res := runCLI(t, "void a()\n", "batch", "--metrics-addr", "no-port")

	assert.Equal(t, errors.ExitInput, res.code)
	assert.Contains(t, res.stderr, "Cannot start metrics server")
	assert.Empty(t, res.stdout, "nothing is parsed when the listener fails")
}

func TestRun_BatchMetricsLinger(t *testing.T) {
	t.Chdir(t.TempDir())
	addr := freeAddr(t)

	var stdout, stderr bytes.Buffer
	done := make(chan int, 1)
	go func() {
		done <- run(
			[]string{"--no-color", "-v", "batch", "--metrics-addr", addr, "--metrics-linger", "2s"},
			strings.NewReader("private void log(String value)\nvoid foo(int)\n"),
			&stdout, &stderr,
		)
	}()

	var body string
	require.Eventually(t, func() bool {
		b, err := scrape(t, addr)
		if err != nil || !strings.Contains(b, `result="malformed"`) {
			return false
		}
		body = b
		return true
	}, 2*time.Second, 20*time.Millisecond, "metrics should be scrapeable after the batch")

	assert.Contains(t, body, `methodsig_parse_total{mode="simple",result="ok"}`)

	select {
	case code := <-done:
		assert.Equal(t, errors.ExitInput, code)
	case <-time.After(5 * time.Second):
		t.Fatal("batch did not stop after --metrics-linger")
	}
	assert.Contains(t, stderr.String(), "metrics.http.linger")
	assert.Contains(t, stdout.String(), "1 of 2 signatures failed to parse")
}
