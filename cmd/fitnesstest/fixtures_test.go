package fitnesstest

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rekby/fixenv"
	"github.com/stretchr/testify/assert"

	"github.com/Yandex-Practicum/ftracker/internal/fork"
)

const runProcessTimeout = 10 * time.Second

type Env struct {
	fixenv.EnvT
	assert.Assertions
	Ctx context.Context

	t testing.TB
}

func New(t testing.TB) *Env {
	ctx, ctxCancel := context.WithCancel(context.Background())
	t.Cleanup(ctxCancel)

	res := Env{
		EnvT:       *fixenv.NewEnv(t),
		Assertions: *assert.New(t),
		t:          t,
		Ctx:        ctx,
	}
	return &res
}

func (e *Env) Fatalf(format string, args ...any) {
	e.t.Fatalf(format, args...)
}

func (e *Env) Logf(format string, args ...any) {
	e.t.Logf(format, args...)
}

func ExistPath(e *Env, filePath string) string {
	return fixenv.Cache(e, filePath, nil, func() (string, error) {
		e.Logf("Проверяю наличие файла: %q", filePath)
		_, err := os.Stat(filePath)
		if err != nil {
			return "", err
		}
		return filePath, nil
	})
}

func BinaryPath(e *Env) string {
	if flagBinaryPath == "" {
		e.t.Skip("-binary-path не задан, пропускаю приемочные тесты")
	}
	return ExistPath(e, flagBinaryPath)
}

// ProcessResult is what a finished process left behind.
type ProcessResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// StdoutLines returns non-empty stdout lines.
func (r ProcessResult) StdoutLines() []string {
	var lines []string
	for _, line := range strings.Split(r.Stdout, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func RunProcess(e *Env, name string, command string, args ...string) ProcessResult {
	cacheKey := append([]string{name, command}, args...)
	return fixenv.Cache(e, cacheKey, nil, func() (ProcessResult, error) {
		ctx, cancel := context.WithTimeout(e.Ctx, runProcessTimeout)
		defer cancel()

		p := fork.NewBackgroundProcess(ctx, command, fork.WithArgs(args...))

		e.Logf("Запускаю %q: %q %#v", name, command, args)
		if err := p.Start(ctx); err != nil {
			return ProcessResult{}, err
		}

		exitCode, err := p.Wait(ctx)
		if err != nil {
			return ProcessResult{}, err
		}
		if exitCode != 0 {
			e.Logf("Ненулевой код возврата: %v", exitCode)
		}

		return ProcessResult{
			ExitCode: exitCode,
			Stdout:   string(p.Stdout()),
			Stderr:   string(p.Stderr()),
		}, nil
	})
}

func Tracker(e *Env, args ...string) ProcessResult {
	return RunProcess(e, "ftracker", BinaryPath(e), args...)
}
