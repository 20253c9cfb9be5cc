package fitnesstest

import (
	"context"
	"strings"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/Yandex-Practicum/ftracker/internal/fork"
)

type LogLevelSuite struct {
	suite.Suite
}

func (suite *LogLevelSuite) SetupSuite() {
	if flagBinaryPath == "" {
		suite.T().Skip("-binary-path не задан, пропускаю приемочные тесты")
	}
}

func (suite *LogLevelSuite) run(env []string, args ...string) (int, string, string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	p := fork.NewBackgroundProcess(ctx, flagBinaryPath, fork.WithArgs(args...), fork.WithEnv(env...))
	err := p.Start(ctx)
	suite.Require().NoError(err, "Невозможно запустить процесс командой %q", p)

	exitCode, err := p.Wait(ctx)
	suite.Require().NoError(err, "Не удалось дождаться завершения процесса %q", p)
	return exitCode, string(p.Stdout()), string(p.Stderr())
}

func (suite *LogLevelSuite) TestDebugFlag() {
	exitCode, stdout, stderr := suite.run(nil, "-log-level=debug")
	suite.Equal(0, exitCode)
	suite.Equal(strings.Join(expectedOutput(), "\n")+"\n", stdout)
	suite.Equal(len(expectedOutput()), strings.Count(stderr, "report printed"),
		"На уровне debug трекер должен логировать каждую строку отчета")
}

func (suite *LogLevelSuite) TestEnvOverridesFlag() {
	exitCode, stdout, stderr := suite.run([]string{"LOG_LEVEL=error"}, "-log-level=debug")
	suite.Equal(0, exitCode)
	suite.Equal(strings.Join(expectedOutput(), "\n")+"\n", stdout)
	suite.Empty(stderr, "Переменная окружения LOG_LEVEL должна иметь приоритет над флагом")
}

func (suite *LogLevelSuite) TestBadLevel() {
	exitCode, stdout, stderr := suite.run(nil, "-log-level=loud")
	suite.Equal(1, exitCode, "Некорректный уровень логирования должен приводить к коду возврата 1")
	suite.Empty(stdout)
	suite.Contains(stderr, "loud")
}
