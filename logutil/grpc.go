package logutil

import (
	"os"

	"google.golang.org/grpc/grpclog"

	"github.com/couchbase/cblog/envvar"
	"github.com/couchbase/cblog/log"
)

//go:generate mockgen -destination mock_logger_test.go -package logutil github.com/couchbase/cblog/log Logger

// EnvGRPCVerbosity is the environment variable consulted for the maximum enabled verbosity when one isn't provided.
const EnvGRPCVerbosity = "CBLOG_GRPC_VERBOSITY"

// GRPCLogger implements the 'grpclog.LoggerV2' interface routing gRPC diagnostics through a facade logger, install it
// using 'grpclog.SetLoggerV2'.
type GRPCLogger struct {
	logger    log.Logger
	verbosity int
}

var _ grpclog.LoggerV2 = (*GRPCLogger)(nil)

// GRPCLoggerOptions encapsulates the options for creating a new gRPC logger.
type GRPCLoggerOptions struct {
	// Logger is the facade logger diagnostics are routed to.
	//
	// NOTE: Required.
	Logger log.Logger

	// Verbosity is the maximum verbosity 'V' reports as enabled; gRPC internals log at verbosities zero through two.
	//
	// NOTE: Defaults to the value of the 'CBLOG_GRPC_VERBOSITY' environment variable, falling back to zero.
	Verbosity *int
}

// defaults fills any missing attributes to a sane default.
func (g *GRPCLoggerOptions) defaults() {
	if g.Verbosity == nil {
		verbosity, _ := envvar.GetInt(EnvGRPCVerbosity)
		g.Verbosity = &verbosity
	}
}

// NewGRPCLogger returns a new gRPC logger routing through the given facade logger.
func NewGRPCLogger(options GRPCLoggerOptions) *GRPCLogger {
	// Fill out any missing fields with the sane defaults
	options.defaults()

	return &GRPCLogger{logger: options.Logger, verbosity: *options.Verbosity}
}

// Info logs the given arguments at the info level.
func (g *GRPCLogger) Info(args ...any) {
	g.logger.Log(log.LevelInfo, message(args...))
}

// Infoln logs the given arguments at the info level.
func (g *GRPCLogger) Infoln(args ...any) {
	g.logger.Log(log.LevelInfo, messageln(args...))
}

// Infof logs the given arguments at the info level.
func (g *GRPCLogger) Infof(format string, args ...any) {
	g.logger.Log(log.LevelInfo, messagef(format, args...))
}

// Warning logs the given arguments at the warning level.
func (g *GRPCLogger) Warning(args ...any) {
	g.logger.Log(log.LevelWarning, message(args...))
}

// Warningln logs the given arguments at the warning level.
func (g *GRPCLogger) Warningln(args ...any) {
	g.logger.Log(log.LevelWarning, messageln(args...))
}

// Warningf logs the given arguments at the warning level.
func (g *GRPCLogger) Warningf(format string, args ...any) {
	g.logger.Log(log.LevelWarning, messagef(format, args...))
}

// Error logs the given arguments at the error level.
func (g *GRPCLogger) Error(args ...any) {
	g.logger.Log(log.LevelError, message(args...))
}

// Errorln logs the given arguments at the error level.
func (g *GRPCLogger) Errorln(args ...any) {
	g.logger.Log(log.LevelError, messageln(args...))
}

// Errorf logs the given arguments at the error level.
func (g *GRPCLogger) Errorf(format string, args ...any) {
	g.logger.Log(log.LevelError, messagef(format, args...))
}

// Fatal logs the given arguments at the fatal level then terminates the process, as the 'grpclog.LoggerV2' contract
// requires.
func (g *GRPCLogger) Fatal(args ...any) {
	g.logger.Log(log.LevelFatal, message(args...))
	os.Exit(1)
}

// Fatalln logs the given arguments at the fatal level then terminates the process, as the 'grpclog.LoggerV2' contract
// requires.
func (g *GRPCLogger) Fatalln(args ...any) {
	g.logger.Log(log.LevelFatal, messageln(args...))
	os.Exit(1)
}

// Fatalf logs the given arguments at the fatal level then terminates the process, as the 'grpclog.LoggerV2' contract
// requires.
func (g *GRPCLogger) Fatalf(format string, args ...any) {
	g.logger.Log(log.LevelFatal, messagef(format, args...))
	os.Exit(1)
}

// V returns a boolean indicating whether the given gRPC verbosity level is enabled.
func (g *GRPCLogger) V(l int) bool {
	return l <= g.verbosity
}
