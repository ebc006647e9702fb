package installer

import (
	"context"
	"sync"

	"go.trai.ch/wcw/internal/core/domain"
)

// Session carries the state shared by every branch of one install run:
// the aggregate report, the package names already warned about, the
// checkouts being installed and the folders whose manifests were already
// walked.
type Session struct {
	report *domain.InstallReport

	mu        sync.Mutex
	warned    map[string]struct{}
	walked    map[string]struct{}
	checkouts map[string]*checkout
}

// NewSession creates an empty Session.
func NewSession() *Session {
	return &Session{
		report:    domain.NewInstallReport(),
		warned:    make(map[string]struct{}),
		walked:    make(map[string]struct{}),
		checkouts: make(map[string]*checkout),
	}
}

// Report returns the report the session records into.
func (s *Session) Report() *domain.InstallReport {
	return s.report
}

// claimWarning reports whether name was not warned about yet, marking it.
func (s *Session) claimWarning(name string) bool {
	return claim(&s.mu, s.warned, name)
}

// claimWalk reports whether folder was not walked yet, marking it.
func (s *Session) claimWalk(folder string) bool {
	return claim(&s.mu, s.walked, folder)
}

// acquireCheckout returns the checkout of folder and whether the caller is
// the branch that installs it. Other branches wait for it to settle.
func (s *Session) acquireCheckout(folder string) (*checkout, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.checkouts[folder]; ok {
		return c, false
	}
	c := &checkout{done: make(chan struct{})}
	s.checkouts[folder] = c
	return c, true
}

// checkout is a folder some branch of the session is installing.
type checkout struct {
	done  chan struct{}
	ready bool
}

// settle publishes whether the folder is on disk. It must be called once.
func (c *checkout) settle(ready bool) {
	c.ready = ready
	close(c.done)
}

// wait blocks until the owning branch settled the checkout.
func (c *checkout) wait(ctx context.Context) (bool, error) {
	select {
	case <-c.done:
		return c.ready, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

func claim(mu *sync.Mutex, set map[string]struct{}, key string) bool {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := set[key]; ok {
		return false
	}
	set[key] = struct{}{}
	return true
}
