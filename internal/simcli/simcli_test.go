package simcli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/netcourse/netcourse/internal/course"
)

func TestEveryLessonTopicHasHint(t *testing.T) {
	for _, m := range course.Default().Modules() {
		for _, l := range m.Lessons {
			assert.True(t, HasHint(l.Topic), "%s/%s: topic %q has no hint", m.ID, l.ID, l.Topic)
		}
	}
}

func TestHintFallback(t *testing.T) {
	assert.Equal(t, GenericHint, Hint("quantum-networking"))
	assert.Equal(t, GenericHint, Hint(""))
	assert.NotEqual(t, GenericHint, Hint(" DNS "))
}

func TestRun(t *testing.T) {
	tests := []struct {
		line     string
		contains string
	}{
		{"help", "Available commands"},
		{"ping 8.8.8.8", "Reply from 8.8.8.8"},
		{"PING example.com", "[93.184.216.34]"},
		{"ping 10.255.255.1", "Request timed out."},
		{"ping nowhere.invalid", "could not find host nowhere.invalid"},
		{"ping", "usage: ping"},
		{"ipconfig", "Default Gateway . . . . . . . . . : 192.168.1.1"},
		{"ifconfig", "inet 192.168.1.42"},
		{"tracert 8.8.8.8", "Trace complete."},
		{"traceroute google.com", "142.250.72.14"},
		{"nslookup example.com", "Non-authoritative answer"},
		{"nslookup nope.test", "Non-existent domain"},
		{"netstat", "ESTABLISHED"},
		{"arp -a", "ff-ff-ff-ff-ff-ff"},
		{"arp", "usage: arp -a"},
		{"rm -rf /", "rm: command not found"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			res := Run(tt.line)
			assert.Contains(t, res.Output, tt.contains)
			assert.False(t, res.Clear)
		})
	}
}

func TestRunClearAndBlank(t *testing.T) {
	assert.True(t, Run("clear").Clear)
	assert.Equal(t, Result{}, Run("   "))
}

func TestRunIsDeterministic(t *testing.T) {
	assert.Equal(t, Run("ping google.com"), Run("ping google.com"))
	assert.Equal(t, 4, strings.Count(Run("ping 192.168.1.1").Output, "Reply from"))
}

func TestCommandsSorted(t *testing.T) {
	names := Commands()
	assert.Contains(t, names, "traceroute")
	assert.IsIncreasing(t, names)
}
