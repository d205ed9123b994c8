package splitter

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Line
	}{
		{
			name:  "empty input yields no lines",
			input: "",
			want:  nil,
		},
		{
			name:  "trailing terminator is elided",
			input: "1\n2\n",
			want: []Line{
				{Number: 1, Text: "1"},
				{Number: 2, Text: "2"},
			},
		},
		{
			name:  "missing final terminator still yields last line",
			input: "1\n2",
			want: []Line{
				{Number: 1, Text: "1"},
				{Number: 2, Text: "2"},
			},
		},
		{
			name:  "interior empty line is kept",
			input: "1\n\n2\n",
			want: []Line{
				{Number: 1, Text: "1"},
				{Number: 2, Text: ""},
				{Number: 3, Text: "2"},
			},
		},
		{
			name:  "crlf terminators are stripped",
			input: "1\r\n2\n",
			want: []Line{
				{Number: 1, Text: "1"},
				{Number: 2, Text: "2"},
			},
		},
		{
			name:  "lone terminator yields one empty line",
			input: "\n",
			want: []Line{
				{Number: 1, Text: ""},
			},
		},
		{
			name:  "two terminators yield one interior empty line",
			input: "\n\n",
			want: []Line{
				{Number: 1, Text: ""},
				{Number: 2, Text: ""},
			},
		},
		{
			name:  "bare carriage return is content",
			input: "a\rb\n",
			want: []Line{
				{Number: 1, Text: "a\rb"},
			},
		},
		{
			name:  "crlf inside empty interior line",
			input: "1\r\n\r\n2\r\n",
			want: []Line{
				{Number: 1, Text: "1"},
				{Number: 2, Text: ""},
				{Number: 3, Text: "2"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split([]byte(tt.input))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFromLines(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []Line
	}{
		{
			name:  "empty list",
			input: nil,
			want:  []Line{},
		},
		{
			name:  "terminators are stripped",
			input: []string{"{\"a\":1}\n", "true\r\n", "null"},
			want: []Line{
				{Number: 1, Text: "{\"a\":1}"},
				{Number: 2, Text: "true"},
				{Number: 3, Text: "null"},
			},
		},
		{
			name:  "interior empty line survives",
			input: []string{"1\n", "\n", "2\n"},
			want: []Line{
				{Number: 1, Text: "1"},
				{Number: 2, Text: ""},
				{Number: 3, Text: "2"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromLines(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FromLines(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
