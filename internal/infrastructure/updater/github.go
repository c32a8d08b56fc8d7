// Package updater checks GitHub for newer themeroot releases.
package updater

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/bnema/themeroot/internal/application/port"
	"github.com/bnema/themeroot/internal/domain/entity"
	"github.com/bnema/themeroot/internal/logging"
)

const (
	latestReleaseURL = "https://api.github.com/repos/bnema/themeroot/releases/latest"
	requestTimeout   = 10 * time.Second

	// Three attempts in total.
	extraAttempts = 2
	backoffBase   = 250 * time.Millisecond
	backoffCap    = 2 * time.Second
	backoffJitter = 200 * time.Millisecond
)

type release struct {
	Tag         string    `json:"tag_name"`
	URL         string    `json:"html_url"`
	PublishedAt time.Time `json:"published_at"`
}

// statusError is a non-200 answer from the releases API.
type statusError struct{ code int }

func (e statusError) Error() string {
	return "github API returned status " + strconv.Itoa(e.code)
}

// GitHubChecker reads the latest published release of the repository.
type GitHubChecker struct {
	client  *http.Client
	apiURL  string
	backoff func() retry.Backoff
}

var _ port.UpdateChecker = (*GitHubChecker)(nil)

func NewGitHubChecker() *GitHubChecker {
	return &GitHubChecker{
		client:  &http.Client{Timeout: requestTimeout},
		apiURL:  latestReleaseURL,
		backoff: defaultBackoff,
	}
}

// defaultBackoff doubles from backoffBase, adds jitter and never waits
// longer than backoffCap between attempts.
func defaultBackoff() retry.Backoff {
	b := retry.NewExponential(backoffBase)
	b = retry.WithJitter(backoffJitter, b)
	b = retry.WithCappedDuration(backoffCap, b)
	return retry.WithMaxRetries(extraAttempts, b)
}

// CheckForUpdate compares currentVersion with the latest release. Dev builds
// are never compared. Rate limits, timeouts and server errors that outlast
// the retries wrap port.ErrUpdateCheckTransient.
func (g *GitHubChecker) CheckForUpdate(ctx context.Context, currentVersion string) (*entity.UpdateInfo, error) {
	if currentVersion == "" || currentVersion == "dev" {
		logging.FromContext(ctx).Debug().Str("version", currentVersion).Msg("dev build, not checking for updates")
		return entity.UpToDate(currentVersion), nil
	}

	rel, err := g.fetchLatest(ctx, currentVersion)
	if err != nil {
		var se statusError
		if (errors.As(err, &se) && retryableStatus(se.code)) || retryableNetError(err) {
			return nil, fmt.Errorf("%w: %w", port.ErrUpdateCheckTransient, err)
		}
		return nil, fmt.Errorf("failed to fetch latest release: %w", err)
	}

	latest := strings.TrimPrefix(rel.Tag, "v")
	return &entity.UpdateInfo{
		CurrentVersion: currentVersion,
		LatestVersion:  latest,
		IsNewer:        compareVersions(strings.TrimPrefix(currentVersion, "v"), latest) < 0,
		ReleaseURL:     rel.URL,
		PublishedAt:    rel.PublishedAt,
	}, nil
}

func (g *GitHubChecker) fetchLatest(ctx context.Context, currentVersion string) (*release, error) {
	var rel release
	attempt := 0
	err := retry.Do(ctx, g.backoff(), func(ctx context.Context) error {
		attempt++
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.apiURL, http.NoBody)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/vnd.github.v3+json")
		req.Header.Set("User-Agent", "themeroot/"+currentVersion)

		resp, err := g.client.Do(req)
		if err != nil {
			if retryableNetError(err) {
				logging.FromContext(ctx).Debug().Err(err).Int("attempt", attempt).Msg("release check failed, retrying")
				return retry.RetryableError(err)
			}
			return err
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode != http.StatusOK {
			se := statusError{code: resp.StatusCode}
			if retryableStatus(se.code) {
				logging.FromContext(ctx).Debug().Int("status", se.code).Int("attempt", attempt).Msg("release check failed, retrying")
				return retry.RetryableError(se)
			}
			return se
		}
		if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
			return fmt.Errorf("failed to decode release: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

// compareVersions orders two dotted versions by their first three numeric
// parts. Anything after a "-" is ignored and missing parts count as zero.
func compareVersions(a, b string) int {
	pa, pb := versionParts(a), versionParts(b)
	for i := range pa {
		if pa[i] != pb[i] {
			if pa[i] < pb[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func versionParts(v string) [3]int {
	v, _, _ = strings.Cut(v, "-")
	var parts [3]int
	for i, field := range strings.SplitN(v, ".", 4) {
		if i == len(parts) {
			break
		}
		parts[i], _ = strconv.Atoi(field)
	}
	return parts
}

// retryableStatus covers rate limiting (GitHub answers 403 or 429), request
// timeouts and server errors.
func retryableStatus(code int) bool {
	switch code {
	case http.StatusForbidden, http.StatusRequestTimeout, http.StatusTooManyRequests:
		return true
	}
	return code >= http.StatusInternalServerError
}

func retryableNetError(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	for _, errno := range []syscall.Errno{
		syscall.ECONNRESET, syscall.ECONNREFUSED, syscall.EADDRNOTAVAIL,
		syscall.ENETUNREACH, syscall.EHOSTUNREACH,
	} {
		if errors.Is(err, errno) {
			return true
		}
	}
	return false
}
