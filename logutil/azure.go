package logutil

import (
	azlog "github.com/Azure/azure-sdk-for-go/sdk/azcore/log"

	"github.com/couchbase/cblog/log"
)

// RouteAzureEvents installs a listener forwarding Azure SDK log events to the given facade logger, providing no events
// routes everything the SDK emits.
//
// NOTE: The Azure SDK listener is process wide, a subsequent call (or a call to 'azlog.SetListener' elsewhere)
// replaces the routing installed here.
func RouteAzureEvents(logger log.Logger, events ...azlog.Event) {
	azlog.SetEvents(events...)
	azlog.SetListener(forward(logger))
}

// forward returns a listener routing Azure SDK log events into the given facade logger.
func forward(logger log.Logger) func(azlog.Event, string) {
	return func(event azlog.Event, message string) {
		logger.Log(azureLevel(event), func() string { return string(event) + ": " + message })
	}
}

// azureLevel converts an Azure SDK event class to a facade level; retries are interesting enough to warrant the
// warning level, raw request/response diagnostics stay at debug.
func azureLevel(event azlog.Event) log.Level {
	if event == azlog.EventRetryPolicy {
		return log.LevelWarning
	}

	return log.LevelDebug
}
