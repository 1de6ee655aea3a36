package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcanaland/richcard/internal/card"
	"github.com/arcanaland/richcard/internal/cardfile"
	"github.com/arcanaland/richcard/internal/prompt"
)

const welcome = `
[simple]
speech = "Hello"

[card]
title = "Card Title"
text = "Card Content"
image_fill = "GRAY"

[card.image]
url = "https://example.com/x.png"
alt = "logo"
`

func setupServer(t *testing.T) *httptest.Server {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "welcome.toml"), []byte(welcome), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.toml"), []byte("[card"), 0644))

	ts := httptest.NewServer(NewServer(":0", cardfile.NewLibrary(dir)).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body json.RawMessage
	if resp.Header.Get("Content-Type") == "application/json" {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	}
	return resp, body
}

func TestListCards(t *testing.T) {
	ts := setupServer(t)

	resp, body := get(t, ts.URL+"/cards")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"cards":["broken","welcome"]}`, string(body))
}

func TestGetCard(t *testing.T) {
	ts := setupServer(t)

	resp, body := get(t, ts.URL+"/cards/welcome")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var c card.Card
	require.NoError(t, json.Unmarshal(body, &c))
	require.Equal(t, card.New(card.Options{
		Title:     card.String("Card Title"),
		Text:      card.String("Card Content"),
		Image:     &card.Image{URL: "https://example.com/x.png", Alt: "logo"},
		ImageFill: card.Fill(card.FillGray),
	}), c)
}

func TestGetPrompt(t *testing.T) {
	ts := setupServer(t)

	resp, body := get(t, ts.URL+"/cards/welcome/prompt")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Prompt prompt.Prompt `json:"prompt"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	require.Equal(t, "Hello", envelope.Prompt.FirstSimple.Speech)
	require.Equal(t, "Card Title", *envelope.Prompt.Card().Title)
}

func TestGetCard_Errors(t *testing.T) {
	ts := setupServer(t)

	resp, _ := get(t, ts.URL+"/cards/missing")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = get(t, ts.URL+"/cards/broken")
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	resp, _ = get(t, ts.URL+"/cards/..%2Fwelcome")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetCard_NameStaysInLibrary(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Symlink(t.TempDir(), filepath.Join(dir, "foo.toml")))

	cwd := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cwd, "foo"), []byte(welcome), 0644))
	oldwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(cwd))
	t.Cleanup(func() { _ = os.Chdir(oldwd) })

	ts := httptest.NewServer(NewServer(":0", cardfile.NewLibrary(dir)).Handler())
	defer ts.Close()

	resp, _ := get(t, ts.URL+"/cards/foo")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = get(t, ts.URL+"/cards/foo/prompt")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListCards_MissingLibrary(t *testing.T) {
	ts := httptest.NewServer(NewServer(":0", cardfile.NewLibrary(filepath.Join(t.TempDir(), "none"))).Handler())
	defer ts.Close()

	resp, _ := get(t, ts.URL+"/cards")
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
