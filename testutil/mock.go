package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockMatchContext matches any context argument; the backends don't thread request scoped contexts through their
// logging paths, so tests only assert that one was supplied.
var MockMatchContext = mock.MatchedBy(func(_ context.Context) bool { return true })
