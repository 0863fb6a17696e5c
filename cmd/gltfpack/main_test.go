package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Faultbox/gltfpack/internal/pipeline"
	"github.com/Faultbox/gltfpack/internal/settings"
)

type recorder struct {
	calls []string
	err   error
}

func (r *recorder) Pack(input, output, report string, s settings.Settings) error {
	r.calls = append(r.calls, input+"|"+output+"|"+report)
	return r.err
}

func runArgs(t *testing.T, p pipeline.Packer, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr, p)
	return code, stdout.String(), stderr.String()
}

func TestRunVersionOnly(t *testing.T) {
	rec := &recorder{}
	code, stdout, stderr := runArgs(t, rec, "-v")

	if code != 0 {
		t.Errorf("expected exit 0, got %d", code)
	}
	if !strings.HasPrefix(stdout, "gltfpack ") || strings.Count(stdout, "\n") != 1 {
		t.Errorf("expected a single version line, got %q", stdout)
	}
	if stderr != "" {
		t.Errorf("expected no usage text, got %q", stderr)
	}
	if len(rec.calls) != 0 {
		t.Errorf("expected no pipeline calls, got %v", rec.calls)
	}
}

func TestRunPack(t *testing.T) {
	rec := &recorder{}
	code, _, stderr := runArgs(t, rec, "-i", "a.gltf", "-o", "b.glb", "-r", "r.json")

	if code != 0 {
		t.Errorf("expected exit 0, got %d (stderr %q)", code, stderr)
	}
	if len(rec.calls) != 1 || rec.calls[0] != "a.gltf|b.glb|r.json" {
		t.Errorf("unexpected pipeline calls %v", rec.calls)
	}
}

func TestRunPackFailure(t *testing.T) {
	rec := &recorder{err: &pipeline.ExitError{Code: 3, Err: errors.New("cannot load")}}
	code, _, stderr := runArgs(t, rec, "-i", "a.gltf", "-o", "b.glb")

	if code != 3 {
		t.Errorf("expected pipeline status 3, got %d", code)
	}
	if !strings.Contains(stderr, "cannot load") {
		t.Errorf("expected pipeline error on stderr, got %q", stderr)
	}

	rec = &recorder{err: errors.New("plain failure")}
	if code, _, _ := runArgs(t, rec, "-i", "a.gltf", "-o", "b.glb"); code != 1 {
		t.Errorf("expected status 1 for plain failure, got %d", code)
	}
}

func TestRunBatch(t *testing.T) {
	rec := &recorder{err: errors.New("every input fails")}
	code, stdout, _ := runArgs(t, rec, "-test", "a.gltf", "b.gltf")

	if code != 0 {
		t.Errorf("expected exit 0 regardless of pipeline outcome, got %d", code)
	}
	if len(rec.calls) != 2 || rec.calls[0] != "a.gltf||" || rec.calls[1] != "b.gltf||" {
		t.Errorf("expected two calls in order with empty output and report, got %v", rec.calls)
	}
	if stdout != "a.gltf\nb.gltf\n" {
		t.Errorf("expected test paths on stdout, got %q", stdout)
	}
}

func TestRunUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"positional", []string{"-i", "a.gltf", "-o", "b.glb", "extra_positional"}, "Expected option, got extra_positional instead"},
		{"unknown flag", []string{"-x"}, "Unrecognized option -x"},
		{"dependency", []string{"-ts", "0.5"}, "Option -ts is only supported when -tc is set as well"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			code, _, stderr := runArgs(t, rec, tt.args...)

			if code != 1 {
				t.Errorf("expected exit 1, got %d", code)
			}
			if stderr != tt.msg+"\n" {
				t.Errorf("expected %q, got %q", tt.msg, stderr)
			}
			if len(rec.calls) != 0 {
				t.Errorf("expected no pipeline calls, got %v", rec.calls)
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	rec := &recorder{}
	code, _, stderr := runArgs(t, rec, "-h")

	if code != 0 {
		t.Errorf("expected exit 0 for help, got %d", code)
	}
	if !strings.Contains(stderr, "\nAnimations:\n") {
		t.Errorf("expected long usage, got %q", stderr)
	}
	if len(rec.calls) != 0 {
		t.Errorf("expected no pipeline calls, got %v", rec.calls)
	}
}

func TestRunMissingPaths(t *testing.T) {
	rec := &recorder{}
	code, _, stderr := runArgs(t, rec, "-i", "a.gltf")

	if code != 1 {
		t.Errorf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr, "Run gltfpack -h to display a full list of options") {
		t.Errorf("expected short usage, got %q", stderr)
	}
	if strings.Contains(stderr, "\nAnimations:\n") {
		t.Error("short usage should not list every section")
	}
}

func TestRunWarnings(t *testing.T) {
	rec := &recorder{}
	code, _, stderr := runArgs(t, rec, "-te", "-i", "a.gltf", "-o", "b.glb")

	if code != 0 {
		t.Errorf("expected exit 0, got %d", code)
	}
	if !strings.HasPrefix(stderr, "WARN -te is deprecated") {
		t.Errorf("expected deprecation warning at WARN level, got %q", stderr)
	}
	if len(rec.calls) != 1 {
		t.Errorf("expected the pipeline to run, got %v", rec.calls)
	}
}

func TestRunVerboseSettingsDump(t *testing.T) {
	rec := &recorder{}
	_, _, stderr := runArgs(t, rec, "-vv", "-vp", "10", "-i", "a.gltf", "-o", "b.glb")

	if !strings.Contains(stderr, "pos_bits: 10") {
		t.Errorf("expected settings dump at -vv, got %q", stderr)
	}
}

func TestRunVerboseSettingsDumpFailure(t *testing.T) {
	orig := dumpSettings
	dumpSettings = func(settings.Settings) ([]byte, error) { return nil, errors.New("marshal failed") }
	defer func() { dumpSettings = orig }()

	rec := &recorder{}
	code, _, stderr := runArgs(t, rec, "-vv", "-i", "a.gltf", "-o", "b.glb")

	if code != 0 {
		t.Errorf("expected exit 0, got %d", code)
	}
	if !strings.Contains(stderr, "WARN cannot dump settings") || !strings.Contains(stderr, "marshal failed") {
		t.Errorf("expected dump failure to be logged, got %q", stderr)
	}
	if len(rec.calls) != 1 {
		t.Errorf("expected the pipeline to run, got %v", rec.calls)
	}
}
