package domain

import (
	"encoding/json"
	"strings"
)

// OriginKind identifies the hosting provider of a remote
type OriginKind int

const (
	OriginGitHub OriginKind = iota
	OriginGitLab
	OriginBitbucket
	OriginGitLabSelfHosted
	OriginCustom
)

// RepoOrigin is the classified provider of a repository's origin remote.
// Host is only set for OriginCustom.
type RepoOrigin struct {
	Host string
	Kind OriginKind
}

func (o RepoOrigin) String() string {
	switch o.Kind {
	case OriginGitHub:
		return "GitHub"
	case OriginGitLab:
		return "GitLab"
	case OriginBitbucket:
		return "Bitbucket"
	case OriginGitLabSelfHosted:
		return "GitLab (self-hosted)"
	default:
		return o.Host
	}
}

// MarshalJSON encodes the origin as its display string
func (o RepoOrigin) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// DetectOrigin classifies a remote URL. Returns nil when no host can be extracted.
func DetectOrigin(remoteURL string) *RepoOrigin {
	host, ok := ExtractHost(remoteURL)
	if !ok {
		return nil
	}
	origin := ClassifyHost(host)
	return &origin
}

// ClassifyHost maps a hostname to a provider (case-insensitive)
func ClassifyHost(host string) RepoOrigin {
	lower := strings.ToLower(host)
	switch {
	case lower == "github.com":
		return RepoOrigin{Kind: OriginGitHub}
	case lower == "gitlab.com":
		return RepoOrigin{Kind: OriginGitLab}
	case lower == "bitbucket.org":
		return RepoOrigin{Kind: OriginBitbucket}
	case strings.Contains(lower, "gitlab"):
		return RepoOrigin{Kind: OriginGitLabSelfHosted}
	default:
		return RepoOrigin{Kind: OriginCustom, Host: host}
	}
}

// ExtractHost returns the hostname of a git remote URL.
// Supported shapes:
//   - user@host:path (scp-like)
//   - scheme://[user@]host[:port]/path
func ExtractHost(remoteURL string) (string, bool) {
	remoteURL = strings.TrimSpace(remoteURL)
	if remoteURL == "" {
		return "", false
	}

	if scheme, rest, found := strings.Cut(remoteURL, "://"); found {
		if scheme == "" || strings.ContainsAny(scheme, "/@:") {
			return "", false
		}
		authority, _, _ := strings.Cut(rest, "/")
		if idx := strings.LastIndex(authority, "@"); idx >= 0 {
			authority = authority[idx+1:]
		}
		host, _, _ := strings.Cut(authority, ":")
		return host, host != ""
	}

	// scp-like: user@host:path
	user, rest, found := strings.Cut(remoteURL, "@")
	if !found || user == "" || strings.Contains(user, "/") {
		return "", false
	}
	host, path, found := strings.Cut(rest, ":")
	if !found || host == "" || path == "" || strings.Contains(host, "/") {
		return "", false
	}
	return host, true
}
