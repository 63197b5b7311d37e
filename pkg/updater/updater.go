package updater

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/KJ-GM/responsive-csx/pkg/version"
)

type Release struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

const releaseURL = "https://api.github.com/repos/KJ-GM/responsive-csx/releases/latest"

// CheckForUpdates queries GitHub for the latest release.
// Returns the new version tag and its URL if an update is available,
// empty strings otherwise.
func CheckForUpdates() (string, string, error) {
	// Short timeout so a slow network never stalls -version.
	client := http.Client{
		Timeout: 2 * time.Second,
	}

	resp, err := client.Get(releaseURL)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("github api returned status: %s", resp.Status)
	}

	var rel Release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return "", "", err
	}

	if compareVersions(rel.TagName, version.Version) > 0 {
		return rel.TagName, rel.HTMLURL, nil
	}

	return "", "", nil
}

// compareVersions compares two vX.Y.Z tags segment by segment, returning
// 1 if v1 > v2, -1 if v1 < v2, 0 if equal. Non-numeric segments compare
// as strings.
func compareVersions(v1, v2 string) int {
	s1 := strings.Split(strings.TrimPrefix(v1, "v"), ".")
	s2 := strings.Split(strings.TrimPrefix(v2, "v"), ".")

	for i := 0; i < len(s1) && i < len(s2); i++ {
		n1, err1 := strconv.Atoi(s1[i])
		n2, err2 := strconv.Atoi(s2[i])
		switch {
		case err1 == nil && err2 == nil:
			if n1 != n2 {
				if n1 > n2 {
					return 1
				}
				return -1
			}
		default:
			if c := strings.Compare(s1[i], s2[i]); c != 0 {
				return c
			}
		}
	}

	switch {
	case len(s1) > len(s2):
		return 1
	case len(s1) < len(s2):
		return -1
	}
	return 0
}
