package version

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// UpdateAvailableMsg is sent when a newer prism release exists.
type UpdateAvailableMsg struct {
	CurrentVersion string
	LatestVersion  string
	UpdateCommand  string
	ReleaseURL     string
	InstallMethod  InstallMethod
}

// CheckResult holds the outcome of a release lookup.
type CheckResult struct {
	LatestVersion string
	HasUpdate     bool
	ReleaseURL    string
	Error         error
}

// CacheEntry is the persisted result of the last successful check.
type CacheEntry struct {
	LatestVersion  string    `json:"latestVersion"`
	CurrentVersion string    `json:"currentVersion"`
	CheckedAt      time.Time `json:"checkedAt"`
	HasUpdate      bool      `json:"hasUpdate"`
}

// Overridable for tests.
var (
	releasesURL = "https://api.github.com/repos/prismchat/prism/releases/latest"
	cacheDir    = defaultCacheDir
)

const cacheTTL = 24 * time.Hour

func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "prism")
}

// updateCommand generates the upgrade instruction for the install method.
func updateCommand(version string, method InstallMethod) string {
	switch method {
	case InstallMethodHomebrew:
		return "brew upgrade prism"
	case InstallMethodBinary:
		return fmt.Sprintf("https://github.com/prismchat/prism/releases/tag/%s", version)
	default:
		return fmt.Sprintf(
			"go install -ldflags \"-X main.Version=%s\" github.com/prismchat/prism/cmd/prism@%s",
			version, version,
		)
	}
}

// Check queries the latest release. Dev builds never report an update.
func Check(currentVersion string) CheckResult {
	if !isReleaseVersion(currentVersion) {
		return CheckResult{}
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(releasesURL)
	if err != nil {
		return CheckResult{Error: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return CheckResult{Error: fmt.Errorf("release lookup returned %s", resp.Status)}
	}

	var release struct {
		TagName string `json:"tag_name"`
		HTMLURL string `json:"html_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return CheckResult{Error: err}
	}

	return CheckResult{
		LatestVersion: release.TagName,
		HasUpdate:     IsNewer(release.TagName, currentVersion),
		ReleaseURL:    release.HTMLURL,
	}
}

// CheckAsync returns a Bubble Tea command that checks for updates in the
// background, consulting the cache first.
func CheckAsync(currentVersion string) tea.Cmd {
	return func() tea.Msg {
		method := DetectInstallMethod()

		if cached, err := LoadCache(); err == nil && IsCacheValid(cached, currentVersion) {
			if cached.HasUpdate {
				return UpdateAvailableMsg{
					CurrentVersion: currentVersion,
					LatestVersion:  cached.LatestVersion,
					UpdateCommand:  updateCommand(cached.LatestVersion, method),
					InstallMethod:  method,
				}
			}
			return nil
		}

		result := Check(currentVersion)

		// Only cache successful checks; network errors should retry.
		if result.Error == nil && result.LatestVersion != "" {
			_ = SaveCache(&CacheEntry{
				LatestVersion:  result.LatestVersion,
				CurrentVersion: currentVersion,
				CheckedAt:      time.Now(),
				HasUpdate:      result.HasUpdate,
			})
		}

		if result.HasUpdate {
			return UpdateAvailableMsg{
				CurrentVersion: currentVersion,
				LatestVersion:  result.LatestVersion,
				UpdateCommand:  updateCommand(result.LatestVersion, method),
				ReleaseURL:     result.ReleaseURL,
				InstallMethod:  method,
			}
		}
		return nil
	}
}

func cachePath() string {
	dir := cacheDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "update-check.json")
}

// LoadCache reads the persisted check result.
func LoadCache() (*CacheEntry, error) {
	p := cachePath()
	if p == "" {
		return nil, os.ErrNotExist
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	var entry CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// SaveCache persists a check result.
func SaveCache(entry *CacheEntry) error {
	p := cachePath()
	if p == "" {
		return os.ErrNotExist
	}
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return os.WriteFile(p, data, 0644)
}

// IsCacheValid reports whether a cached result still applies: fresh
// enough and recorded against the same running version.
func IsCacheValid(entry *CacheEntry, currentVersion string) bool {
	if entry == nil {
		return false
	}
	if entry.CurrentVersion != currentVersion {
		return false
	}
	return time.Since(entry.CheckedAt) < cacheTTL
}

// isReleaseVersion filters out dev builds that have no comparable tag.
func isReleaseVersion(v string) bool {
	v = strings.TrimPrefix(v, "v")
	if v == "" || v == "devel" || v == "unknown" {
		return false
	}
	return v[0] >= '0' && v[0] <= '9'
}

// IsNewer reports whether latest is a higher version than current.
// Both may carry a "v" prefix; segments compare numerically.
func IsNewer(latest, current string) bool {
	l := parseVersion(latest)
	c := parseVersion(current)
	if l == nil || c == nil {
		return false
	}
	for i := 0; i < len(l) || i < len(c); i++ {
		li, ci := 0, 0
		if i < len(l) {
			li = l[i]
		}
		if i < len(c) {
			ci = c[i]
		}
		if li != ci {
			return li > ci
		}
	}
	return false
}

func parseVersion(v string) []int {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	if v == "" {
		return nil
	}
	// Ignore pre-release/build suffixes.
	if idx := strings.IndexAny(v, "-+"); idx >= 0 {
		v = v[:idx]
	}
	parts := strings.Split(v, ".")
	nums := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil
		}
		nums = append(nums, n)
	}
	return nums
}
