package demo

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"
	"time"
)

func TestGenerateASCIICast(t *testing.T) {
	frames := []Frame{
		{Content: "one\ntwo", Delay: 500 * time.Millisecond},
		{Content: "three", Delay: time.Second, Annotation: "step"},
	}

	var buf bytes.Buffer
	if err := GenerateASCIICast(&buf, frames, 80, 24, "demo"); err != nil {
		t.Fatalf("GenerateASCIICast() error = %v", err)
	}

	var lines []string
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	// header, frame, marker, frame
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}

	var hdr castHeader
	if err := json.Unmarshal([]byte(lines[0]), &hdr); err != nil {
		t.Fatalf("header: %v", err)
	}
	if hdr.Version != 2 || hdr.Width != 80 || hdr.Height != 24 || hdr.Title != "demo" {
		t.Errorf("header = %+v", hdr)
	}

	var ev []any
	if err := json.Unmarshal([]byte(lines[1]), &ev); err != nil {
		t.Fatalf("event: %v", err)
	}
	if ev[0].(float64) != 0.5 || ev[1] != "o" {
		t.Errorf("first event = %v", ev)
	}
	if ev[2] != clearScreen+"one\r\ntwo" {
		t.Errorf("frame data = %q", ev[2])
	}

	if err := json.Unmarshal([]byte(lines[2]), &ev); err != nil {
		t.Fatalf("marker: %v", err)
	}
	if ev[0].(float64) != 1.5 || ev[1] != "m" || ev[2] != "step" {
		t.Errorf("marker = %v", ev)
	}
}
