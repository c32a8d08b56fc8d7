package entity

import "time"

// UpdateInfo describes the latest published release compared to the running build.
type UpdateInfo struct {
	CurrentVersion string    `json:"current_version"`
	LatestVersion  string    `json:"latest_version"`
	IsNewer        bool      `json:"is_newer"`
	ReleaseURL     string    `json:"release_url,omitempty"`
	PublishedAt    time.Time `json:"published_at,omitzero"`
}

// UpToDate returns an UpdateInfo that reports no newer release.
func UpToDate(version string) *UpdateInfo {
	return &UpdateInfo{CurrentVersion: version, LatestVersion: version}
}
