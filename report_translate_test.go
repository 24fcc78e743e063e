package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func translateFixture(t *testing.T) *session {
	t.Helper()
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"app/A.php":                      "<?php trans('tray.preferences'); trans('tray.status'); trans('locale.name'); __('Quit');",
		"resources/lang/en/tray.yaml":    "preferences: Preferences\nstatus: Running\nunused: Unused\n",
		"resources/lang/en/locale.yaml":  "name: English\n",
		"resources/lang/en.json":         `{"Quit": "Quit"}`,
		"resources/lang/de/tray.yaml":    "preferences: Einstellungen\nremoved: Entfernt\n",
		"resources/lang/de/archive.yaml": "old: Alt\n",
	})
	s := newTestSession(t, root)
	s.cfg.Locale = "de"
	return s
}

func TestReportTranslate(t *testing.T) {
	s := translateFixture(t)

	var out bytes.Buffer
	require.NoError(t, reportTranslate(s, &out, "text", 0, 0))
	assert.Equal(t, "Found 3 used keys missing from de:\n\n"+
		"Quit=Quit\n"+
		"locale.name=English\n"+
		"tray.status=Running\n", out.String())
}

func TestReportTranslateBatches(t *testing.T) {
	s := translateFixture(t)

	var got []translatePair
	for batch := 1; batch <= 2; batch++ {
		var out bytes.Buffer
		require.NoError(t, reportTranslate(s, &out, "json", batch, 2))
		var pairs []translatePair
		require.NoError(t, json.Unmarshal(out.Bytes(), &pairs))
		got = append(got, pairs...)
	}
	assert.Equal(t, []translatePair{
		{Key: "Quit", Value: "Quit"},
		{Key: "locale.name", Value: "English"},
		{Key: "tray.status", Value: "Running"},
	}, got)

	var out bytes.Buffer
	assert.Error(t, reportTranslate(s, &out, "json", 3, 2))
}

func TestReportTranslateMissingFromReference(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.php": "<?php trans('menu.home');"})
	s := newTestSession(t, root)

	var out bytes.Buffer
	require.NoError(t, reportTranslate(s, &out, "text", 0, 0))
	assert.Equal(t, "Found 1 used keys missing from zh_cn:\n\nmenu.home=\n", out.String())
}

func TestReportStale(t *testing.T) {
	s := translateFixture(t)

	var out bytes.Buffer
	require.NoError(t, reportStale(s, &out, "text"))
	assert.Equal(t, "Found 2 stale keys in de:\n  archive.old\n  tray.removed\n", out.String())
}
