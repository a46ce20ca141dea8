// Package check implements the check command: it locates the project,
// evaluates rules over it and renders results.
package check

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"

	"webcheck/archive"
	"webcheck/common"
	"webcheck/config"
	"webcheck/misc"
	"webcheck/project"
	"webcheck/report"
	"webcheck/rules"
	"webcheck/state"
)

// ErrChecksFailed is returned in strict mode when any check did not pass.
var ErrChecksFailed = errors.New("compliance checks failed")

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("check")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no project source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	env.Format, err = common.ParseOutputFmt(cmd.String("format"))
	if err != nil {
		log.Warn("Unknown output format requested, switching to text", zap.Error(err))
		env.Format = common.OutputFmtText
	}
	env.Output, env.Strict = cmd.String("output"), cmd.Bool("strict")

	// legacy sites do not always declare their encoding
	if cs := cmd.String("charset"); len(cs) > 0 {
		env.Charset, err = ianaindex.IANA.Encoding(cs)
		if err != nil || env.Charset == nil {
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cs), zap.Error(err))
			env.Charset = nil
		} else {
			n, _ := ianaindex.IANA.Name(env.Charset)
			log.Debug("Forcing encoding of all HTML documents", zap.String("charset", n))
		}
	}

	log.Info("Checking starting", zap.String("source", src), zap.Stringer("format", env.Format), zap.String("run", env.RunID))
	defer func(start time.Time) {
		log.Info("Checking completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, env, src, log)
}

// process does the work independently of CLI framework.
func process(ctx context.Context, env *state.LocalEnv, src string, log *zap.Logger) error {
	fsys, closeFn, err := openSource(ctx, src)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := env.Rpt.StoreCopy(env.ArtifactName("project", src, ""), fsys); err != nil {
		log.Warn("Unable to store project sources in debug report", zap.Error(err))
	}

	options := []project.Option{project.WithRoot(src)}
	if env.Charset != nil {
		options = append(options, project.WithCharset(env.Charset))
	}
	snap, err := project.Load(ctx, fsys, &env.Cfg.Project, log, options...)
	if err != nil {
		return fmt.Errorf("unable to load project: %w", err)
	}
	if env.Rpt != nil {
		env.Rpt.StoreData(env.ArtifactName("snapshot", src, ".txt"), []byte(snap.String()))
	}

	rpt, err := rules.Evaluate(ctx, snap, &env.Cfg.Rules, log)
	if err != nil {
		return fmt.Errorf("unable to evaluate rules: %w", err)
	}
	doc := report.NewDocument(misc.GetAppName(), misc.GetVersion(), env.RunID, rpt)

	if err := output(env, doc); err != nil {
		return err
	}

	if env.Rpt != nil {
		var buf bytes.Buffer
		if err := report.Write(&buf, doc, common.OutputFmtYaml, false); err == nil {
			env.Rpt.StoreData(env.ArtifactName("results", src, ".yaml"), buf.Bytes())
		}
	}

	s := doc.Summary
	log.Info("Checks done", zap.Int("documents", rpt.Files), zap.Int("skipped", len(snap.Skipped)),
		zap.Int("checks", s.Checks), zap.Int("failed", len(s.Failures)))
	for _, f := range s.Failures {
		log.Debug("Check failed", zap.Stringer("rule", f.Rule), zap.String("file", f.File), zap.String("message", f.Message))
	}

	if env.Strict && !s.Passed() {
		return fmt.Errorf("%w: %d of %d", ErrChecksFailed, len(s.Failures), s.Checks)
	}
	return nil
}

func output(env *state.LocalEnv, doc *report.Document) error {
	var (
		out     io.Writer = os.Stdout
		colored           = config.EnableColorOutput(os.Stdout)
	)
	if len(env.Output) > 0 {
		f, err := os.Create(env.Output)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", env.Output, err)
		}
		defer f.Close()
		out, colored = f, false
	}
	if err := report.Write(out, doc, env.Format, colored); err != nil {
		return fmt.Errorf("unable to write results: %w", err)
	}
	return nil
}

// openSource finds project in src: either a directory or a zip archive
// optionally followed by a path inside it.
func openSource(ctx context.Context, src string) (fs.FS, func() error, error) {
	nop := func() error { return nil }

	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return nil, nop, err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exist - probably path in archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				return nil, nop, fmt.Errorf("project source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			return os.DirFS(head), nop, nil
		}

		if !fi.Mode().IsRegular() {
			return nil, nop, fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		ok, err := archive.IsArchive(head)
		if err != nil {
			return nil, nop, fmt.Errorf("unable to check archive type: %w", err)
		}
		if !ok {
			return nil, nop, fmt.Errorf("project source is neither directory nor zip archive (%s)", head)
		}
		inner := strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator))
		a, err := archive.Open(head, filepath.ToSlash(inner))
		if err != nil {
			return nil, nop, fmt.Errorf("unable to open archive: %w", err)
		}
		return a, a.Close, nil
	}
	return nil, nop, fmt.Errorf("project source was not found (%s)", src)
}
