package commands_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cram/cmd/cram/commands"
	"go.trai.ch/cram/internal/app"
	"go.trai.ch/cram/internal/build"
	"go.trai.ch/cram/internal/core/domain"
)

// call records one application method invocation.
type call struct {
	method string
	args   []any
}

type mockApp struct {
	calls   []call
	options app.Options
	err     error
}

func (m *mockApp) record(method string, args ...any) error {
	m.calls = append(m.calls, call{method: method, args: args})
	return m.err
}

func (m *mockApp) Configure(opts app.Options) error {
	m.options = opts
	return nil
}

func (m *mockApp) Dashboard(_ context.Context, opts app.DashboardOptions) error {
	return m.record("Dashboard", opts)
}
func (m *mockApp) Login(_ context.Context, name string) error { return m.record("Login", name) }
func (m *mockApp) Logout(context.Context) error               { return m.record("Logout") }
func (m *mockApp) WhoAmI(context.Context) error               { return m.record("WhoAmI") }
func (m *mockApp) ShowProfile(context.Context) error          { return m.record("ShowProfile") }
func (m *mockApp) SetProfile(_ context.Context, name string) error {
	return m.record("SetProfile", name)
}
func (m *mockApp) AssignRole(_ context.Context, user, role string) error {
	return m.record("AssignRole", user, role)
}
func (m *mockApp) ListFlashcards(_ context.Context, f app.FlashcardFilter) error {
	return m.record("ListFlashcards", f)
}
func (m *mockApp) CreateFlashcard(_ context.Context, in domain.FlashcardInput) error {
	return m.record("CreateFlashcard", in)
}
func (m *mockApp) EditFlashcard(_ context.Context, id string, in domain.FlashcardInput) error {
	return m.record("EditFlashcard", id, in)
}
func (m *mockApp) DeleteFlashcard(_ context.Context, id string) error {
	return m.record("DeleteFlashcard", id)
}
func (m *mockApp) Study(_ context.Context, topic string) error { return m.record("Study", topic) }
func (m *mockApp) ListNotes(_ context.Context, f app.NoteFilter) error {
	return m.record("ListNotes", f)
}
func (m *mockApp) ShowNote(_ context.Context, id string) error { return m.record("ShowNote", id) }
func (m *mockApp) CreateNote(_ context.Context, in domain.NoteInput) error {
	return m.record("CreateNote", in)
}
func (m *mockApp) DeleteNote(_ context.Context, id string) error { return m.record("DeleteNote", id) }
func (m *mockApp) ListQuizzes(_ context.Context, topic string) error {
	return m.record("ListQuizzes", topic)
}
func (m *mockApp) ImportQuiz(_ context.Context, path string) error {
	return m.record("ImportQuiz", path)
}
func (m *mockApp) TakeQuiz(_ context.Context, id string) error { return m.record("TakeQuiz", id) }
func (m *mockApp) Attempts(context.Context) error              { return m.record("Attempts") }
func (m *mockApp) ListFiles(_ context.Context, mine bool) error {
	return m.record("ListFiles", mine)
}
func (m *mockApp) UploadFiles(_ context.Context, paths []string, watchDir string) error {
	return m.record("UploadFiles", paths, watchDir)
}
func (m *mockApp) DeleteFile(_ context.Context, id string) error { return m.record("DeleteFile", id) }
func (m *mockApp) Search(_ context.Context, term string) error  { return m.record("Search", term) }
func (m *mockApp) Serve(_ context.Context, opts app.ServeOptions) error {
	return m.record("Serve", opts)
}

func execute(t *testing.T, m *mockApp, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(m)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Dispatch(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want call
	}{
		{
			name: "dashboard",
			args: []string{"dashboard", "--tab", "notes", "-s", "cell"},
			want: call{"Dashboard", []any{app.DashboardOptions{Tab: "notes", Search: "cell"}}},
		},
		{
			name: "login",
			args: []string{"login", "--name", "Ada"},
			want: call{"Login", []any{"Ada"}},
		},
		{
			name: "assign role",
			args: []string{"profile", "assign-role", "p-1", "admin"},
			want: call{"AssignRole", []any{"p-1", "admin"}},
		},
		{
			name: "list flashcards",
			args: []string{"cards", "list", "--topic", "Physics", "--difficulty", "hard"},
			want: call{"ListFlashcards", []any{app.FlashcardFilter{Topic: "Physics", Difficulty: "hard"}}},
		},
		{
			name: "add flashcard defaults to medium",
			args: []string{"flashcards", "add", "--topic", "Physics", "-q", "F = ?", "-a", "m·a"},
			want: call{"CreateFlashcard", []any{domain.FlashcardInput{
				Topic: "Physics", Question: "F = ?", Answer: "m·a", Difficulty: "medium",
			}}},
		},
		{
			name: "edit flashcard keeps omitted fields empty",
			args: []string{"flashcards", "edit", "f-1", "-a", "ma"},
			want: call{"EditFlashcard", []any{"f-1", domain.FlashcardInput{Answer: "ma"}}},
		},
		{
			name: "search joins terms",
			args: []string{"search", "cell", "wall"},
			want: call{"Search", []any{"cell wall"}},
		},
		{
			name: "upload with watch",
			args: []string{"files", "upload", "a.pdf", "b.pdf", "--watch", "docs"},
			want: call{"UploadFiles", []any{[]string{"a.pdf", "b.pdf"}, "docs"}},
		},
		{
			name: "serve",
			args: []string{"serve", "--listen", "127.0.0.1:7070", "--idle-timeout", "5m"},
			want: call{"Serve", []any{app.ServeOptions{Listen: "127.0.0.1:7070", IdleTimeout: 5 * time.Minute}}},
		},
		{
			name: "take quiz",
			args: []string{"quizzes", "take", "q-1"},
			want: call{"TakeQuiz", []any{"q-1"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockApp{}
			_, err := execute(t, m, tt.args...)
			require.NoError(t, err)
			require.Len(t, m.calls, 1)
			assert.Equal(t, tt.want, m.calls[0])
		})
	}
}

func TestCommands_GlobalFlags(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "whoami", "-c", "cram.yaml", "-o", "linear", "--json-log", "-v")
	require.NoError(t, err)

	assert.Equal(t, app.Options{
		ConfigPath: "cram.yaml",
		OutputMode: "linear",
		JSONLog:    true,
		Verbose:    true,
	}, m.options)
}

func TestCommands_NoteContentFromStdin(t *testing.T) {
	m := &mockApp{}
	cli := commands.New(m)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetInput(strings.NewReader("Line one\nLine two\n"))
	cli.SetArgs([]string{"notes", "add", "--title", "Cells", "--topic", "Biology", "--content", "-"})

	require.NoError(t, cli.Execute(context.Background()))
	require.Len(t, m.calls, 1)
	assert.Equal(t, domain.NoteInput{Title: "Cells", Topic: "Biology", Content: "Line one\nLine two\n"}, m.calls[0].args[0])
}

func TestCommands_Errors(t *testing.T) {
	t.Run("returns application errors", func(t *testing.T) {
		m := &mockApp{err: errors.New("simulated error")}
		_, err := execute(t, m, "logout")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("login requires a name", func(t *testing.T) {
		m := &mockApp{}
		_, err := execute(t, m, "login")
		require.Error(t, err)
		assert.Empty(t, m.calls)
	})

	t.Run("upload without paths shows usage", func(t *testing.T) {
		m := &mockApp{}
		out, err := execute(t, m, "files", "upload")
		require.NoError(t, err)
		assert.Contains(t, out, "Usage:")
		assert.Empty(t, m.calls)
	})
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "cram "+build.Version+" (commit ")

	out, err = execute(t, &mockApp{}, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, build.Version+"\n", out)
}
