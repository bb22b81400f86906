package ptyproc

import (
	"strings"
	"testing"
	"time"
)

func TestSpawnEchoProducesOutput(t *testing.T) {
	p, err := Spawn("/bin/echo", []string{"hello"}, nil, t.TempDir(), 80, 24)
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	defer p.Close()

	buf := make([]byte, 1024)
	var output strings.Builder
	deadline := time.After(2 * time.Second)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for output, got %q", output.String())
		default:
		}
		n, err := p.Read(buf)
		if n > 0 {
			output.Write(buf[:n])
		}
		if strings.Contains(output.String(), "hello") {
			return
		}
		if err != nil {
			break
		}
	}
	if !strings.Contains(output.String(), "hello") {
		t.Errorf("expected output to contain %q, got %q", "hello", output.String())
	}
}

func TestSpawnWriteRoundTripsThroughCat(t *testing.T) {
	p, err := Spawn("/bin/cat", nil, nil, t.TempDir(), 80, 24)
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	defer p.Close()

	n, err := p.Write([]byte("test input\n"))
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if n == 0 {
		t.Error("Write returned 0 bytes")
	}

	buf := make([]byte, 1024)
	var output strings.Builder
	deadline := time.After(2 * time.Second)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for echoed input, got %q", output.String())
		default:
		}
		n, err := p.Read(buf)
		if n > 0 {
			output.Write(buf[:n])
		}
		if strings.Contains(output.String(), "test input") {
			return
		}
		if err != nil {
			break
		}
	}
}

func TestResizeOnClosedProcessIsNoop(t *testing.T) {
	p, err := Spawn("/bin/cat", nil, nil, t.TempDir(), 80, 24)
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	p.Close()
	if err := p.Resize(100, 30); err != nil {
		t.Errorf("Resize after Close should be a no-op, got error: %v", err)
	}
}
