package envtest

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"envscope/internal/envscope"
)

// PurgeSuite is a testify suite base that purges Prefix variables after
// every test method. Embed it instead of suite.Suite:
//
//	type BaseSuite struct{ envtest.PurgeSuite }
//	type MySuite struct{ BaseSuite }
//
// Suites embedding it at any depth inherit the behavior without declaring
// anything. The hook sits on SetT, which testify calls for each test
// method before SetupTest, so overriding SetupTest or TearDownTest does not
// disable it. The suite's own *testing.T is armed too, which reverts
// anything SetupSuite or TearDownSuite left behind.
type PurgeSuite struct {
	suite.Suite

	// Prefix defaults to envscope.DefaultPrefix.
	Prefix string

	mu    sync.Mutex
	armed map[*testing.T]struct{}
}

// SetT implements suite.TestingSuite.
func (s *PurgeSuite) SetT(t *testing.T) {
	s.Suite.SetT(t)
	if t == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.armed == nil {
		s.armed = make(map[*testing.T]struct{})
	}
	// testify hands the parent T back after each method
	if _, ok := s.armed[t]; ok {
		return
	}
	s.armed[t] = struct{}{}
	purge(t, s.prefix())
}

func (s *PurgeSuite) prefix() string {
	if s.Prefix == "" {
		return envscope.DefaultPrefix
	}
	return s.Prefix
}
