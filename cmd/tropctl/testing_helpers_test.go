package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/trophykit/internal/testutil"
	"github.com/joshuapare/trophykit/trophy/conf"
)

var (
	base = time.Date(2021, time.March, 4, 10, 0, 0, 0, time.UTC)
)

// trophyDir writes a small ledger: trophy 0 synchronized, trophies 3 and 5 not.
func trophyDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	testutil.WriteTRNS(t, dir, testutil.TRNSImage{
		AccountID: "acct000000000001",
		TitleID:   "NPWR00001_00",
		Capacity:  8,
		InitTime:  base.Add(-time.Hour),
		Entries: []testutil.TRNSEntry{
			{ID: 0, Type: 4, Time: base, Synced: true},
			{ID: 3, Type: 3, Time: base.Add(time.Hour)},
			{ID: 5, Type: 2, Time: base.Add(2 * time.Hour)},
		},
	})
	return dir
}

const confXML = `<?xml version="1.0" encoding="UTF-8"?>
<trophyconf version="1.1">
<npcommid>NPWR00001_00</npcommid>
<trophyset-version>01.00</trophyset-version>
<parental-level>3</parental-level>
<title-name>Sample</title-name>
<title-detail>Sample set</title-detail>
<trophy id="000" hidden="no" ttype="B" pid="-1"><name>Opening</name><detail>Start</detail></trophy>
<trophy id="003" hidden="no" ttype="S" pid="-1"><name>Middle</name><detail>Halfway</detail></trophy>
<trophy id="005" hidden="no" ttype="G" pid="-1"><name>Late</name><detail>Almost</detail></trophy>
<trophy id="007" hidden="yes" ttype="G" pid="-1"><name>Secret</name><detail>Hidden one</detail></trophy>
</trophyconf>
`

func writeConf(t *testing.T, dir string) {
	t.Helper()
	data := append(make([]byte, 0x40), confXML...)
	require.NoError(t, os.WriteFile(filepath.Join(dir, conf.FileName), data, 0o644))
}

// run executes tropctl with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append(args, "--utc-offset", "0"))
	err := root.Execute()
	return out.String(), err
}

func decodeJSON[T any](t *testing.T, s string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(s), &v), "output: %s", s)
	return v
}
