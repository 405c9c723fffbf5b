// Package logutil provides adapters exposing facade loggers to third party libraries which accept their own logging
// interfaces.
package logutil

import (
	"github.com/aws/aws-sdk-go/aws"

	"github.com/couchbase/cblog/log"
)

// NewAWSLogger returns an implementation of the AWS SDK's 'aws.Logger' interface routing SDK diagnostics through the
// given facade logger.
//
// NOTE: Statements dispatch at the debug level, the SDK performs its own gating via the log level configured on the
// session/client.
func NewAWSLogger(logger log.Logger) aws.Logger {
	return aws.LoggerFunc(func(args ...interface{}) {
		logger.Log(log.LevelDebug, message(args...))
	})
}
