// Package sampler reads the pNode membership from the network-status
// endpoint. One Sample call issues a fixed number of fetch attempts and
// resolves them by majority, so a single inconsistent read from a flaky
// endpoint does not masquerade as real membership change.
package sampler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/xandeum/pnodemon/src/pnode"
)

// statusResponse mirrors the document served by the status endpoint.
type statusResponse struct {
	Pods []string `json:"pods"`
}

// Sampler fetches candidate node sets with bounded retries and a fixed
// backoff between failed attempts.
type Sampler struct {
	url      string
	attempts int
	backoff  time.Duration
	client   *http.Client
	sleep    func(time.Duration)
	logger   *logrus.Entry
}

// New creates a Sampler. Each attempt is bounded by timeout; failed attempts
// are followed by a fixed backoff wait.
func New(url string, attempts int, timeout, backoff time.Duration, logger *logrus.Entry) *Sampler {
	return &Sampler{
		url:      url,
		attempts: attempts,
		backoff:  backoff,
		client:   &http.Client{Timeout: timeout},
		sleep:    time.Sleep,
		logger:   logger,
	}
}

// Sample performs the configured number of fetch attempts and resolves the
// successful ones to a single node set. ok is false when every attempt
// failed, in which case the caller must skip the cycle without touching the
// baseline.
func (s *Sampler) Sample() (*pnode.Set, bool) {
	candidates := []*pnode.Set{}

	for i := 0; i < s.attempts; i++ {
		set, err := s.fetch()
		if err != nil {
			s.logger.WithField("attempt", i+1).WithError(err).Warn("Status fetch failed")

			if i < s.attempts-1 {
				s.sleep(s.backoff)
			}

			continue
		}

		candidates = append(candidates, set)
	}

	if len(candidates) == 0 {
		return nil, false
	}

	return resolve(candidates), true
}

// resolve returns the set that a strict majority of candidates agree on, or
// the most recent candidate when no majority exists.
func resolve(candidates []*pnode.Set) *pnode.Set {
	for _, c := range candidates {
		matches := 0
		for _, o := range candidates {
			if c.Equals(o) {
				matches++
			}
		}
		if 2*matches > len(candidates) {
			return c
		}
	}

	return candidates[len(candidates)-1]
}

func (s *Sampler) fetch() (*pnode.Set, error) {
	resp, err := s.client.Get(s.url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("status endpoint returned %s", resp.Status)
	}

	var doc statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, err
	}

	return pnode.NewSet(doc.Pods), nil
}
