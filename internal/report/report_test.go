package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gotbb/internal/bearing"
)

func sampleNode() bearing.BearingNode {
	return bearing.BearingNode{
		Name:                "C1",
		Beam1Width:          6,
		Beam1Depth:          10,
		Beam1DeadLoad:       1000,
		Beam1LiveLoad:       1000,
		Beam1RoutingLength:  3,
		Beam2Width:          8,
		Beam2Depth:          12,
		Beam2DeadLoad:       2000,
		Beam2LiveLoad:       3000,
		Beam2RoutingLength:  4,
		ColumnWidth:         8,
		ColumnDepth:         10,
		BaseAllowableStress: 430,
		CharDepth:           1.8,
	}
}

func TestFireLabel(t *testing.T) {
	assert.Equal(t, "1 hour", FireLabel(1.8))
	assert.Equal(t, "0 hour", FireLabel(0))
	assert.Equal(t, "2.5 in char", FireLabel(2.5))
}

func TestCheckMessages(t *testing.T) {
	r := bearing.CheckNode(sampleNode())

	assert.Equal(t, "Non-fire capacity is 11633 lbs. Demand is 2800 lbs. Ratio = 0.241. PASS!",
		CheckMessage(r.Checks[0], "1 hour"))
	assert.Equal(t, "1 hour fire capacity is 3412 lbs. Demand is 2000 lbs. Ratio = 0.586. PASS!",
		CheckMessage(r.Checks[1], "1 hour"))
	assert.Equal(t, "Beam 1 Effective Bearing Area = 4.4 inch wide x 1.2 inch long.",
		BearingAreaMessage(r.Checks[1]))
}

func TestCheckMessageNoBearing(t *testing.T) {
	n := sampleNode()
	n.CharDepth = 3.2
	r := bearing.CheckNode(n)

	assert.Equal(t, "After 2 hour fire, beam 1 has no bearing material remaining. Increase bearing length.",
		CheckMessage(r.Checks[1], "2 hour"))
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	err := WriteText(&buf, bearing.CheckNode(sampleNode()), TextOptions{Label: "C1"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "TIMBER BEAM BEARING CHECK - 1 hour FIRE RATING")
	assert.Contains(t, out, "Node: C1")
	assert.Contains(t, out, "646.29 psi")
	assert.Regexp(t, `Beam\s+Dead\s+Live\s+1\.2D \+ 1\.6L\s+D \+ L`, out)
	assert.Contains(t, out, "NON-FIRE CASE:")
	assert.Contains(t, out, "1 hour FIRE CASE:")
	assert.Contains(t, out, "Beam 2 Effective Bearing Area = 8 inch wide x 4 inch long.")
	assert.Contains(t, out, "ALL CHECKS PASS")
	assert.Contains(t, out, "Governing: beam 2, fire case")
	assert.NotContains(t, out, "WARNINGS:")
}

func TestWriteTextWithWarnings(t *testing.T) {
	n := sampleNode()
	n.Beam1RoutingLength = 7

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, bearing.CheckNode(n), TextOptions{}))

	out := buf.String()
	assert.Contains(t, out, "WARNINGS:")
	assert.Contains(t, out, "Beam routing is overlapping")
	assert.NotContains(t, out, "Node:")
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteTextReturnsWriteError(t *testing.T) {
	err := WriteText(failingWriter{}, bearing.CheckNode(sampleNode()), TextOptions{})
	assert.EqualError(t, err, "disk full")
}

func TestWriteSummaryTable(t *testing.T) {
	failing := sampleNode()
	failing.Name = ""
	failing.CharDepth = 3.2

	var buf bytes.Buffer
	err := WriteSummaryTable(&buf, bearing.CheckAll([]bearing.BearingNode{sampleNode(), failing}))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[2], "C1")
	assert.Contains(t, lines[2], "0.241")
	assert.Contains(t, lines[2], "PASS")
	assert.Contains(t, lines[3], "Node 2")
	assert.Contains(t, lines[3], "no bearing")
	assert.Contains(t, lines[3], "FAIL")
}

func TestDrawSummaryBox(t *testing.T) {
	box := DrawSummaryBox("STATUS", []string{"Ratio = 0.5", "ok"})

	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "  ╔═══════════════╗", lines[0])
	assert.Equal(t, "  ║  STATUS       ║", lines[1])
	assert.Equal(t, "  ║  Ratio = 0.5  ║", lines[3])
	assert.Equal(t, "  ╚═══════════════╝", lines[4])
}

func TestWritePDF(t *testing.T) {
	n := sampleNode()
	n.Beam1RoutingLength = 7

	var buf bytes.Buffer
	err := WritePDF(&buf, bearing.CheckAll([]bearing.BearingNode{n, sampleNode()}), PDFMeta{
		Project: "Mass Timber Office",
		Author:  "J. Engineer",
		Date:    time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 1000)
}

func TestPDFEncodesAccentedNames(t *testing.T) {
	n := sampleNode()
	n.Name = "Poste Ñ-1"

	pdf := buildPDF(bearing.CheckAll([]bearing.BearingNode{n}), PDFMeta{Author: "Zoë"})
	pdf.SetCompression(false)

	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))
	assert.Contains(t, buf.String(), "Poste \xd1-1")
	assert.NotContains(t, buf.String(), "Poste \xc3\x91-1")
	assert.Contains(t, buf.String(), "Author: Zo\xeb")
	assert.Contains(t, buf.String(), "(9.68)")
}
