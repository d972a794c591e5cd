// Copyright 2025 LogArchive Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/LeeDigitalWorks/logarchive/pkg/deletion"
	"github.com/LeeDigitalWorks/logarchive/pkg/handler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunctionCommandsRegistered(t *testing.T) {
	for _, name := range handler.Names {
		c, ok := functionCmds[name]
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
		assert.NotNil(t, c.Flags().Lookup("event"))
		assert.NotNil(t, c.Flags().Lookup("lambda"))
	}
}

func TestReadEvent(t *testing.T) {
	data, err := readEvent(strings.NewReader(`{"bucket_name":"b"}`), "-")
	require.NoError(t, err)
	assert.JSONEq(t, `{"bucket_name":"b"}`, string(data))

	path := filepath.Join(t.TempDir(), "event.json")
	require.NoError(t, os.WriteFile(path, []byte(`["a"]`), 0o600))
	data, err = readEvent(nil, path)
	require.NoError(t, err)
	assert.Equal(t, `["a"]`, string(data))

	_, err = readEvent(strings.NewReader("not json"), "")
	assert.Error(t, err)

	_, err = readEvent(nil, filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	printReport(&buf, &deletion.Report{
		Bucket:          "b",
		Source:          deletion.SourceManifest,
		KeysResolved:    1500,
		VersionsFound:   3000,
		BatchesIssued:   3,
		VersionsRemoved: 2999,
		ItemErrors:      []deletion.ItemError{{Key: "k", Code: "AccessDenied"}},
		ManifestRemoved: true,
	})

	out := buf.String()
	assert.Contains(t, out, "Files:            1,500")
	assert.Contains(t, out, "Versions removed: 2,999")
	assert.Contains(t, out, "Item errors:      1")
	assert.Contains(t, out, "Manifest removed: true")
	assert.Contains(t, out, "Outcome:          completed")
	assert.NotContains(t, out, "Error:")

	buf.Reset()
	printReport(&buf, &deletion.Report{
		Bucket:      "b",
		Source:      deletion.SourceInline,
		StageFailed: deletion.StageEnumerate,
		Err:         errors.New("boom"),
	})
	out = buf.String()
	assert.Contains(t, out, "Outcome:          aborted_enumerate")
	assert.Contains(t, out, "Error:            boom")
	assert.NotContains(t, out, "Manifest removed")
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, nil)
	assert.Contains(t, buf.String(), "logarchive dev")
}
