package progress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReporterPicksCIUnderCI(t *testing.T) {
	t.Setenv("CI", "true")
	_, ok := NewReporter(&bytes.Buffer{}, "Indexing lessons").(*CIReporter)
	assert.True(t, ok)

	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	_, ok = NewReporter(&bytes.Buffer{}, "Indexing lessons").(*TerminalReporter)
	assert.True(t, ok)
}

func TestCIReporterOutput(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{w: &buf, description: "Indexing lessons"}
	r.Start(2)
	r.Update(1, "foundations/osi-model")
	r.Update(2, "addressing/ipv4")
	r.Finish()

	assert.Equal(t, "Indexing lessons: 2 items\n"+
		"[1/2] foundations/osi-model\n"+
		"[2/2] addressing/ipv4\n"+
		"Indexing lessons: done\n", buf.String())
}

func TestTerminalReporterWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalReporter{w: &buf, description: "Indexing lessons"}
	r.Update(1, "ignored before start")
	r.Start(1)
	r.Update(1, "dns")
	r.Finish()
	assert.NotEmpty(t, buf.String())
}
