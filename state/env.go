// Package state defines shared program state.
package state

import (
	"context"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"

	"webcheck/common"
	"webcheck/config"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// identifies single run in logs and debug report
	RunID string

	// used by check subcommand
	Format  common.OutputFmt
	Output  string
	Strict  bool
	Charset encoding.Encoding

	start         time.Time
	restoreStdLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}

// ArtifactName names debug report entry for project src under dir, so that
// entries of different runs and projects never collide.
func (e *LocalEnv) ArtifactName(dir, src, ext string) string {
	base := filepath.Base(src)
	name := slug.Make(strings.TrimSuffix(base, filepath.Ext(base)))
	if len(name) == 0 {
		name = "project"
	}
	return path.Join(dir, name+"-"+e.RunID+ext)
}
