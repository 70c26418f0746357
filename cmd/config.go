package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"gooze.dev/pkg/goozejs/internal/adapter"
	"gooze.dev/pkg/goozejs/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "goozejs"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName           = "output"
	verboseFlagName          = "verbose"
	runParallelFlagName      = "parallel"
	runTimeoutFlagName       = "timeout"
	runTranspileFlagName     = "transpile"
	jestConfigFlagName       = "jest-config"
	webpackConfigFlagName    = "webpack-config"
	webpackContextFlagName   = "webpack-context"
	webpackSourceMapFlagName = "source-maps"
	sourceDirsFlagName       = "src"
	outDirFlagName           = "out-dir"
	historyLimitFlagName     = "limit"

	runParallelConfigKey   = "run.parallel"
	runTimeoutConfigKey    = "run.timeout"
	runTranspileConfigKey  = "run.transpile"
	jestConfigFileKey      = "jest.config_file"
	webpackConfigFileKey   = "webpack.config_file"
	webpackContextKey      = "webpack.context"
	webpackSilentKey       = "webpack.silent"
	webpackSourceMapsKey   = "webpack.produce_source_maps"
	transpileDirsConfigKey = "transpile.dirs"
	historyDBConfigKey     = "history.db"

	defaultReportsDir   = ".goozejs-reports"
	defaultRunParallel  = 1
	defaultRunTranspile = false
	defaultHistoryDB    = ".goozejs/history.db"

	envPrefix = "GOOZEJS"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".goozejs.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultReportsDir)
	viper.SetDefault(runParallelConfigKey, defaultRunParallel)
	viper.SetDefault(runTimeoutConfigKey, adapter.DefaultJestTimeout)
	viper.SetDefault(runTranspileConfigKey, defaultRunTranspile)
	viper.SetDefault(jestConfigFileKey, "")
	viper.SetDefault(webpackConfigFileKey, "")
	viper.SetDefault(webpackContextKey, "")
	viper.SetDefault(webpackSilentKey, true)
	viper.SetDefault(webpackSourceMapsKey, false)
	viper.SetDefault(transpileDirsConfigKey, domain.DefaultSourceDirs)
	viper.SetDefault(historyDBConfigKey, defaultHistoryDB)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "trace":
		return adapter.LevelTrace
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	logLevel := parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	if verbose && logLevel > slog.LevelDebug {
		logLevel = slog.LevelDebug
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource:   true,
		Level:       logLevel,
		ReplaceAttr: replaceLevelName,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

// replaceLevelName prints the trace level as TRACE instead of DEBUG-4.
func replaceLevelName(_ []string, attr slog.Attr) slog.Attr {
	if attr.Key != slog.LevelKey {
		return attr
	}

	if level, ok := attr.Value.Any().(slog.Level); ok && level == adapter.LevelTrace {
		attr.Value = slog.StringValue("TRACE")
	}

	return attr
}
