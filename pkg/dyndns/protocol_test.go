package dyndns

import (
	"testing"

	"github.com/burrowlabs/burrow/pkg/types"
	"github.com/stretchr/testify/assert"
)

// TestParseResponseOrder tests that mixed response lines classify in order
func TestParseResponseOrder(t *testing.T) {
	body := "good 1.2.3.4\nnochg 1.2.3.4\nbadauth\n911\nfoobar"

	lines := ParseResponse(body)

	want := []types.ResponseCode{
		types.ResponseUpdate,
		types.ResponseNoChange,
		types.ResponseUserError,
		types.ResponseServerError,
		types.ResponseUnsupported,
	}

	assert.Len(t, lines, len(want))
	for i, code := range want {
		assert.Equal(t, code, lines[i].Code, "line %d", i)
	}
}

// TestParseResponseSeparators tests CR/LF handling and blank line removal
func TestParseResponseSeparators(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []types.ResponseCode
	}{
		{
			name: "CRLF separated",
			body: "good 1.2.3.4\r\nnochg 1.2.3.4\r\n",
			want: []types.ResponseCode{types.ResponseUpdate, types.ResponseNoChange},
		},
		{
			name: "CR only",
			body: "good 1.2.3.4\rnochg 1.2.3.4",
			want: []types.ResponseCode{types.ResponseUpdate, types.ResponseNoChange},
		},
		{
			name: "blank and whitespace lines discarded",
			body: "\n\ngood 1.2.3.4\n   \n\t\nnochg 1.2.3.4\n\n",
			want: []types.ResponseCode{types.ResponseUpdate, types.ResponseNoChange},
		},
		{
			name: "lines trimmed before classification",
			body: "  911  \n\tbadauth\t",
			want: []types.ResponseCode{types.ResponseServerError, types.ResponseUserError},
		},
		{
			name: "empty body",
			body: "",
			want: nil,
		},
		{
			name: "whitespace only body",
			body: " \r\n \n",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := ParseResponse(tt.body)
			assert.Len(t, lines, len(tt.want))
			for i, code := range tt.want {
				assert.Equal(t, code, lines[i].Code)
			}
		})
	}
}

// TestClassifyLine tests single line classification
func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		want types.ResponseCode
	}{
		{"good 203.0.113.7", types.ResponseUpdate},
		{"nochg 203.0.113.7", types.ResponseNoChange},
		{"911", types.ResponseServerError},
		{"dnserr", types.ResponseServerError},
		{"badauth", types.ResponseUserError},
		{"badagent", types.ResponseUserError},
		{"!donator", types.ResponseUserError},
		{"nohost", types.ResponseUserError},
		{"notfqdn", types.ResponseUserError},
		{"numhost", types.ResponseUserError},
		{"abuse", types.ResponseUserError},
		// "good" without a trailing address is not a known token
		{"good", types.ResponseUnsupported},
		{"nochg", types.ResponseUnsupported},
		// error codes match exactly, not as prefixes
		{"911 extra", types.ResponseUnsupported},
		{"something new", types.ResponseUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			lines := ParseResponse(tt.line)
			if len(lines) != 1 {
				t.Fatalf("ParseResponse(%q) returned %d lines, want 1", tt.line, len(lines))
			}
			if lines[0].Code != tt.want {
				t.Errorf("ParseResponse(%q) = %s, want %s", tt.line, lines[0].Code, tt.want)
			}
			if lines[0].Raw == "" {
				t.Errorf("ParseResponse(%q) lost the raw line", tt.line)
			}
		})
	}
}
