package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devcap/internal/domain"
)

var now = time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC)

func commit(hash, message string, ago time.Duration) domain.Commit {
	return domain.NewCommit(hash, message, now.Add(-ago), now)
}

func sampleProject(origin *domain.RepoOrigin) domain.ProjectLog {
	return domain.ProjectLog{
		Project: "my-app",
		Path:    "/src/my-app",
		Origin:  origin,
		Branches: []domain.BranchLog{
			{Name: "main", Commits: []domain.Commit{
				commit("abc1234", "feat: add login", time.Hour),
				commit("def5678", "fix(auth): resolve crash", 2*time.Hour),
			}},
			{Name: "feature/x", Commits: []domain.Commit{
				commit("aaa1111", "update readme", 3*time.Hour),
			}},
		},
	}
}

func render(projects []domain.ProjectLog, opts Options) string {
	var buf bytes.Buffer
	NewTerminal(&buf, opts).Render(projects)
	return buf.String()
}

func TestTerminal_CommitDepth(t *testing.T) {
	out := render([]domain.ProjectLog{sampleProject(nil)}, Options{Depth: DepthCommits})

	assert.Equal(t, strings.Join([]string{
		":: my-app",
		"  >> main",
		"    * abc1234 feat - add login  1h ago",
		"    * def5678 fix - resolve crash  2h ago",
		"  >> feature/x",
		"    * aaa1111 - update readme  3h ago",
		"",
	}, "\n"), out)
}

func TestTerminal_BranchDepth(t *testing.T) {
	out := render([]domain.ProjectLog{sampleProject(nil)}, Options{Depth: DepthBranches})

	assert.Equal(t, strings.Join([]string{
		":: my-app  (1h ago)",
		"  >> main  (2 commits, 1h ago)",
		"  >> feature/x  (1 commits, 3h ago)",
		"",
	}, "\n"), out)
}

func TestTerminal_ProjectDepthWithOrigin(t *testing.T) {
	github := &domain.RepoOrigin{Kind: domain.OriginGitHub}
	other := sampleProject(nil)
	other.Project = "other"

	out := render([]domain.ProjectLog{sampleProject(github), other},
		Options{Depth: DepthProjects, ShowOrigin: true})

	assert.Equal(t, strings.Join([]string{
		":: my-app [GitHub]  (3 commits, 2 branches, 1h ago)",
		":: other  (3 commits, 2 branches, 1h ago)",
		"",
	}, "\n"), out)
}

func TestTerminal_BlankLineBetweenProjects(t *testing.T) {
	second := sampleProject(nil)
	second.Project = "second"

	out := render([]domain.ProjectLog{sampleProject(nil), second}, Options{Depth: DepthBranches})

	assert.Contains(t, out, "3h ago)\n\n:: second")
}

func TestTerminal_Colour(t *testing.T) {
	projects := []domain.ProjectLog{sampleProject(nil)}

	assert.NotContains(t, render(projects, Options{Color: false}), "\x1b[")
	assert.Contains(t, render(projects, Options{Color: true}), "\x1b[")
}

func TestTerminal_EmptyRendersNothing(t *testing.T) {
	assert.Empty(t, render(nil, Options{}))
}

func TestTerminal_BrowserItems(t *testing.T) {
	term := NewTerminal(&bytes.Buffer{}, Options{ShowOrigin: true})
	github := &domain.RepoOrigin{Kind: domain.OriginGitHub}

	single := domain.ProjectLog{
		Project: "solo",
		Branches: []domain.BranchLog{
			{Name: "main", Commits: []domain.Commit{commit("a", "msg", time.Hour)}},
		},
	}

	assert.Equal(t, ":: solo  (1 commit, 1 branch, 1h ago)", term.ProjectItem(single))
	assert.Equal(t, ":: my-app [GitHub]  (3 commits, 2 branches, 1h ago)", term.ProjectItem(sampleProject(github)))
	assert.Equal(t, ">> main  (1 commit, 1h ago)", term.BranchItem(single.Branches[0]))
	assert.Equal(t, ">> main  (2 commits, 1h ago)", term.BranchItem(sampleProject(nil).Branches[0]))
	assert.Equal(t, "abc1234 feat - add login  1h ago", term.CommitLine(sampleProject(nil).Branches[0].Commits[0]))
}

func TestPlain(t *testing.T) {
	github := &domain.RepoOrigin{Kind: domain.OriginGitHub}
	projects := []domain.ProjectLog{sampleProject(github)}

	t.Run("commit depth", func(t *testing.T) {
		text := Plain(projects, Options{Depth: DepthCommits})
		assert.NotContains(t, text, "\x1b")
		assert.Contains(t, text, ":: my-app\n")
		assert.Contains(t, text, "  >> main\n")
		assert.Contains(t, text, "    * abc1234 feat - add login  1h ago\n")
		assert.Contains(t, text, "    * def5678 fix - resolve crash  2h ago\n")
		assert.Contains(t, text, "    * aaa1111 update readme  3h ago\n")
	})

	t.Run("branch depth", func(t *testing.T) {
		text := Plain(projects, Options{Depth: DepthBranches})
		assert.Contains(t, text, ">> main  (2 commits, 1h ago)")
		assert.NotContains(t, text, "abc1234")
	})

	t.Run("project depth", func(t *testing.T) {
		text := Plain(projects, Options{Depth: DepthProjects})
		assert.Equal(t, ":: my-app  (3 commits, 2 branches, 1h ago)\n", text)
	})

	t.Run("origin shown only when enabled", func(t *testing.T) {
		assert.Contains(t, Plain(projects, Options{Depth: DepthProjects, ShowOrigin: true}), "[GitHub]")
		assert.NotContains(t, Plain(projects, Options{Depth: DepthProjects}), "[GitHub]")
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, EmptyReportMessage, Plain(nil, Options{}))
	})
}

func TestJSON(t *testing.T) {
	t.Run("empty is an empty array", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, JSON(&buf, nil))
		assert.Equal(t, "[]\n", buf.String())
	})

	t.Run("optional fields omitted", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, JSON(&buf, []domain.ProjectLog{sampleProject(nil)}))

		var decoded []map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		require.Len(t, decoded, 1)

		project := decoded[0]
		assert.Equal(t, "my-app", project["project"])
		assert.NotContains(t, project, "origin")

		branches := project["branches"].([]any)
		feature := branches[1].(map[string]any)
		plainCommit := feature["commits"].([]any)[0].(map[string]any)
		assert.NotContains(t, plainCommit, "commit_type")
		assert.Equal(t, "aaa1111", plainCommit["hash"])
		assert.Equal(t, "2025-03-12T09:00:00Z", plainCommit["timestamp"])
	})

	t.Run("origin serialized as provider name", func(t *testing.T) {
		var buf bytes.Buffer
		github := &domain.RepoOrigin{Kind: domain.OriginGitHub}
		require.NoError(t, JSON(&buf, []domain.ProjectLog{sampleProject(github)}))
		assert.Contains(t, buf.String(), `"origin": "GitHub"`)
	})
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	github := &domain.RepoOrigin{Kind: domain.OriginGitHub}

	Table(&buf, []domain.ProjectLog{sampleProject(github)}, Options{ShowOrigin: true})

	out := buf.String()
	assert.Contains(t, out, "PROJECT")
	assert.Contains(t, out, "ORIGIN")
	assert.Contains(t, out, "my-app")
	assert.Contains(t, out, "GitHub")
	assert.Contains(t, out, "/src/my-app")
}

func TestDiagnosticsTable(t *testing.T) {
	var buf bytes.Buffer

	DiagnosticsTable(&buf, []domain.RepoDiagnostic{{Path: "/src/quiet", Reason: domain.ReasonNoCommits}})

	assert.Contains(t, buf.String(), "/src/quiet")
	assert.Contains(t, buf.String(), domain.ReasonNoCommits)
}

func TestSummaryLine(t *testing.T) {
	one := domain.ProjectLog{Project: "a", Branches: []domain.BranchLog{
		{Name: "main", Commits: []domain.Commit{commit("1", "m", time.Hour)}},
	}}
	two := domain.ProjectLog{Project: "b", Branches: []domain.BranchLog{
		{Name: "main", Commits: []domain.Commit{commit("2", "m", time.Hour), commit("3", "m", time.Hour)}},
	}}

	assert.Equal(t, "No commits found.", SummaryLine(nil))
	assert.Equal(t, "Found 1 commit in 1 project", SummaryLine([]domain.ProjectLog{one}))
	assert.Equal(t, "Found 2 commits in 1 project", SummaryLine([]domain.ProjectLog{two}))
	assert.Equal(t, "Found 3 commits in 2 projects", SummaryLine([]domain.ProjectLog{one, two}))
}

func TestParseDepth(t *testing.T) {
	for _, s := range []string{"projects", "branches", "commits"} {
		d, err := ParseDepth(s)
		require.NoError(t, err)
		assert.Equal(t, Depth(s), d)
	}

	d, err := ParseDepth("")
	require.NoError(t, err)
	assert.Equal(t, DepthCommits, d)

	_, err = ParseDepth("files")
	assert.Error(t, err)
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "1 commit", Pluralize(1, "commit"))
	assert.Equal(t, "0 commits", Pluralize(0, "commit"))
	assert.Equal(t, "1 branch", Pluralize(1, "branch"))
	assert.Equal(t, "2 branches", Pluralize(2, "branch"))
}
