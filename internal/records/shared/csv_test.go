package shared

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCSVStreamerWritesRows(t *testing.T) {
	var buf bytes.Buffer
	streamer := NewCSVStreamer(&buf)

	require.NoError(t, streamer.WriteRow([]string{"Name", "Status"}))
	require.NoError(t, streamer.WriteRow([]string{"HR", "Active"}))
	require.NoError(t, streamer.WriteRow([]string{"With, comma", `with "quotes"`}))
	require.NoError(t, streamer.Close())

	lines := strings.Split(strings.TrimRight(buf.String(), "\r\n"), "\r\n")
	require.Len(t, lines, 3)
	require.Equal(t, "Name,Status", lines[0])
	require.Equal(t, "HR,Active", lines[1])
	require.Equal(t, `"With, comma","with ""quotes"""`, lines[2])
}
