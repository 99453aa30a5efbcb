package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/notation"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseMode(t *testing.T) {
	for _, c := range []struct {
		name string
		mode Mode
	}{
		{"infix2postfix", InfixToPostfix},
		{"INFIX2POSTFIX", InfixToPostfix},
		{" Postfix2Infix ", PostfixToInfix},
	} {
		m, err := ParseMode(c.name)
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", c.name, err)
		}
		if m != c.mode {
			t.Errorf("ParseMode(%q) = %s, want %s", c.name, m, c.mode)
		}
	}
	if _, err := ParseMode("prefix"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode, got %v", err)
	}
	if InfixToPostfix.String() != "infix2postfix" || PostfixToInfix.String() != "postfix2infix" {
		t.Errorf("unexpected mode names %s, %s", InfixToPostfix, PostfixToInfix)
	}
}

func TestConvertLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notation")
	defer teardown()
	//
	lines := []string{
		"A * ( B + C ) - D / E",
		"",
		"A + $",
		"   \t ",
		"-A + B",
		"( A + B",
	}
	out, err := ConvertLines(InfixToPostfix, lines)
	if err != nil {
		t.Fatal(err.Error())
	}
	if len(out) != len(lines) {
		t.Fatalf("expected %d output lines, have %d", len(lines), len(out))
	}
	want := map[int]string{0: "A B C + * D E / -", 1: "", 3: "", 4: "A ~ B +"}
	for i, w := range want {
		if out[i] != w {
			t.Errorf("line %d: want %q, got %q", i+1, w, out[i])
		}
	}
	if !strings.HasPrefix(out[2], "# Error on line 3: ") {
		t.Errorf("expected diagnostic for line 3, got %q", out[2])
	}
	if !strings.HasPrefix(out[5], "# Error on line 6: ") {
		t.Errorf("expected diagnostic for line 6, got %q", out[5])
	}
}

func TestConvertLinesPostfix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notation")
	defer teardown()
	//
	out, err := ConvertLines(PostfixToInfix, []string{"A B C + * D E / -", "A B +  +", "A B"})
	if err != nil {
		t.Fatal(err.Error())
	}
	if out[0] != "A * (B + C) - D / E" {
		t.Errorf("unexpected conversion %q", out[0])
	}
	var insuff *notation.InsufficientOperandsError
	if _, err := PostfixToInfix.Convert("A B +  +"); !errors.As(err, &insuff) {
		t.Errorf("expected InsufficientOperandsError, got %v", err)
	}
	for i, line := range out[1:] {
		if !strings.HasPrefix(line, "# Error on line ") {
			t.Errorf("line %d: expected diagnostic, got %q", i+2, line)
		}
	}
}

func TestConvertLinesUnknownMode(t *testing.T) {
	if _, err := ConvertLines(Mode(0), []string{"A"}); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode, got %v", err)
	}
}

func TestSubscribe(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notation")
	defer teardown()
	//
	c, err := NewConverter(InfixToPostfix)
	if err != nil {
		t.Fatal(err.Error())
	}
	ch, err := c.Subscribe(context.Background())
	if err != nil {
		t.Fatal(err.Error())
	}
	var results []LineResult
	done := make(chan struct{})
	go func() {
		for r := range ch {
			results = append(results, r)
		}
		close(done)
	}()
	lines := []string{"A + B", "", "A )", "A ^ B ^ C"}
	if _, err := c.ConvertLines(lines); err != nil {
		t.Fatal(err.Error())
	}
	c.Close()
	<-done
	if len(results) != len(lines) {
		t.Fatalf("expected %d results, got %d", len(lines), len(results))
	}
	for i, r := range results {
		if r.Line != i+1 {
			t.Errorf("result %d has line number %d", i, r.Line)
		}
	}
	if results[2].Err == nil || !results[2].Failed() {
		t.Errorf("expected line 3 to fail")
	}
	var mismatch *notation.MismatchedParenthesesError
	if !errors.As(results[2].Err, &mismatch) || mismatch.Col != 3 {
		t.Errorf("expected mismatched parenthesis at column 3, got %v", results[2].Err)
	}
	if results[3].Output != "A B C ^ ^" {
		t.Errorf("unexpected output %q", results[3].Output)
	}
	if _, err := c.ConvertLines(lines); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed after Close, got %v", err)
	}
	if _, err := c.Subscribe(context.Background()); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed for subscription after Close, got %v", err)
	}
}

func TestCancelledSubscriberDoesNotBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notation")
	defer teardown()
	//
	c, err := NewConverter(InfixToPostfix)
	if err != nil {
		t.Fatal(err.Error())
	}
	ctx, cancel := context.WithCancel(context.Background())
	idle, err := c.Subscribe(ctx) // never read until cancelled
	if err != nil {
		t.Fatal(err.Error())
	}
	lines := make([]string, 100)
	for i := range lines {
		lines[i] = fmt.Sprintf("A%d + B * C", i)
	}
	converted := make(chan struct{})
	go func() {
		c.ConvertLines(lines)
		close(converted)
	}()
	time.Sleep(50 * time.Millisecond) // let subscriber buffers fill up
	cancel()
	select {
	case <-converted:
	case <-time.After(5 * time.Second):
		t.Fatalf("conversion blocked after subscriber was cancelled")
	}
	closed := make(chan struct{})
	go func() {
		c.Close()
		close(closed)
	}()
	select {
	case <-closed:
	case <-time.After(5 * time.Second):
		t.Fatalf("Close blocked after subscriber was cancelled")
	}
	for range idle { // channel has to be closed
	}
}

func TestConvertFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notation")
	defer teardown()
	//
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	input := "A * ( B + C ) - D / E\r\n\n3 + 4 * 2 / ( 1 - 5 ) ^ 2 ^ 3\nA # B\n"
	if err := os.WriteFile(in, []byte(input), 0644); err != nil {
		t.Fatal(err.Error())
	}
	if err := ConvertFile(InfixToPostfix, in, out); err != nil {
		t.Fatal(err.Error())
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err.Error())
	}
	got := strings.Split(string(b), "\n")
	if len(got) != 4 {
		t.Fatalf("expected 4 output lines without trailing newline, got %q", string(b))
	}
	if got[0] != "A B C + * D E / -" || got[1] != "" || got[2] != "3 4 2 * 1 5 - 2 3 ^ ^ / +" {
		t.Errorf("unexpected output %q", got)
	}
	if !strings.HasPrefix(got[3], "# Error on line 4: ") {
		t.Errorf("expected diagnostic for line 4, got %q", got[3])
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(dir); !errors.Is(err, ErrNotRegular) {
		t.Errorf("expected ErrNotRegular for a directory, got %v", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.txt")); err == nil {
		t.Errorf("expected error for missing file")
	}
	page := filepath.Join(dir, "exercises.HTML")
	doc := "<html><body><h2>Postfix</h2><ol><li>A B +</li><li>A ~</li></ol></body></html>"
	if err := os.WriteFile(page, []byte(doc), 0644); err != nil {
		t.Fatal(err.Error())
	}
	lines, err := Load(page)
	if err != nil {
		t.Fatal(err.Error())
	}
	if strings.Join(lines, "|") != "Postfix|A B +|A ~" {
		t.Errorf("unexpected lines from HTML: %q", lines)
	}
}
