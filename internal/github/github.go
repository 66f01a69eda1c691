// Package github provides access to the github API.
package github

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-version"
)

var ErrHttpError = errors.New("HTTP error")

// VersionInfo is the result of an update check against a github repo.
type VersionInfo struct {
	Local         string
	Latest        string
	Newest        string
	IsRemoteNewer bool
}

// AvailableUpdate compares the local version with the latest release on
// github and returns the result. All versions are normalized.
func AvailableUpdate(owner, repo, localVersion string) (VersionInfo, error) {
	return availableUpdate(owner, repo, localVersion, fetchGitHubLatest)
}

func availableUpdate(owner, repo, localVersion string, fetch func(owner, repo string) (string, error)) (VersionInfo, error) {
	remoteVersion, err := fetch(owner, repo)
	if err != nil {
		return VersionInfo{}, err
	}
	local, err := version.NewVersion(localVersion)
	if err != nil {
		return VersionInfo{}, fmt.Errorf("parse local version %q: %w", localVersion, err)
	}
	remote, err := version.NewVersion(remoteVersion)
	if err != nil {
		return VersionInfo{}, fmt.Errorf("parse remote version %q: %w", remoteVersion, err)
	}
	isRemoteNewer := remote.GreaterThan(local)
	newest := local
	if isRemoteNewer {
		newest = remote
	}
	v := VersionInfo{
		Local:         local.String(),
		Latest:        remote.String(),
		Newest:        newest.String(),
		IsRemoteNewer: isRemoteNewer,
	}
	return v, nil
}

func fetchGitHubLatest(owner, repo string) (string, error) {
	url := fmt.Sprintf("https://api.github.com/repos/%s/%s/releases/latest", owner, repo)
	resp, err := http.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("%s: %s: %w", url, resp.Status, ErrHttpError)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	var info struct {
		TagName string `json:"tag_name"`
	}
	if err := json.Unmarshal(data, &info); err != nil {
		return "", err
	}
	return info.TagName, nil
}
