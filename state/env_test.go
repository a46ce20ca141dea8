package state

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"webcheck/common"
)

func TestContextWithEnv(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))

	if env.start.IsZero() {
		t.Error("Environment start time not set")
	}
	if env.Format != common.OutputFmtText {
		t.Errorf("Format = %v, want text", env.Format)
	}
	if _, err := uuid.Parse(env.RunID); err != nil {
		t.Errorf("RunID %q is not a uuid: %v", env.RunID, err)
	}
}

func TestContextWithEnv_DistinctRuns(t *testing.T) {
	a := EnvFromContext(ContextWithEnv(context.Background()))
	b := EnvFromContext(ContextWithEnv(context.Background()))
	if a.RunID == b.RunID {
		t.Errorf("expected distinct run ids, got %q twice", a.RunID)
	}
}

func TestEnvFromContext_PanicsWithoutEnv(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when env not in context")
		}
	}()
	EnvFromContext(context.Background())
}

func TestLocalEnv_Uptime(t *testing.T) {
	env := &LocalEnv{start: time.Now()}

	time.Sleep(10 * time.Millisecond)
	if uptime := env.Uptime(); uptime < 10*time.Millisecond {
		t.Errorf("Uptime() = %v, expected at least 10ms", uptime)
	}
}

func TestLocalEnv_StdLogRedirection(t *testing.T) {
	t.Run("with logger", func(t *testing.T) {
		env := &LocalEnv{
			Log: zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1))),
		}
		for i := range 3 {
			env.RedirectStdLog()
			if env.restoreStdLog == nil {
				t.Errorf("Iteration %d: restoreStdLog not set", i)
			}
			env.RestoreStdLog()
		}
	})

	t.Run("without logger", func(t *testing.T) {
		env := &LocalEnv{}
		env.RedirectStdLog()
		if env.restoreStdLog != nil {
			t.Error("Expected restoreStdLog to remain nil")
		}
		// Should not panic
		env.RestoreStdLog()
	})
}

func TestLocalEnv_ArtifactName(t *testing.T) {
	env := &LocalEnv{RunID: "r1"}

	tests := []struct {
		dir, src, ext string
		want          string
	}{
		{"results", "/tmp/My Site", ".yaml", "results/my-site-r1.yaml"},
		{"snapshot", "/tmp/site.zip", ".txt", "snapshot/site-r1.txt"},
		{"project", "/tmp/site.zip/inner", "", "project/inner-r1"},
		{"project", "/", "", "project/project-r1"},
	}
	for _, tt := range tests {
		if got := env.ArtifactName(tt.dir, tt.src, tt.ext); got != tt.want {
			t.Errorf("ArtifactName(%q, %q, %q) = %q, want %q", tt.dir, tt.src, tt.ext, got, tt.want)
		}
	}
}
