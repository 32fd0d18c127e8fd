package main

import (
	"context"
	"draftroom/api/services/testutil"
	"draftroom/pkg/database/models"
	"draftroom/pkg/logger"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const export = `{"prospects":[
	{"name":"Travis Hunter","position":"CB","team_name":"Colorado","height":73,"weight":188},
	{"name":"Abdul Carter","position":"EDGE","team_name":"Penn State","height":75,"weight":250}
]}`

type stubLogos struct {
	calls int
}

func (s *stubLogos) Find(ctx context.Context, school string) *string {
	s.calls++
	logo := "http://cdn/" + school + ".svg"
	return &logo
}

func writeExport(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "prospects.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunImport(t *testing.T) {
	ranked := mock.MatchedBy(func(players []*models.Player) bool {
		return len(players) == 2 &&
			players[0].Slug == "travis-hunter" && players[0].Rank == 1 &&
			players[1].Slug == "abdul-carter" && players[1].Rank == 2
	})

	t.Run("upsert", func(t *testing.T) {
		repo := new(testutil.MockPlayerRepository)
		logos := &stubLogos{}
		repo.On("UpsertBySlug", mock.Anything, ranked).Return(nil)

		count, err := runImport(context.Background(), importOptions{source: writeExport(t, export)}, importDeps{
			players: repo,
			logos:   logos,
			log:     logger.Nop(),
		})
		require.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.Zero(t, logos.calls)
		repo.AssertNotCalled(t, "DeleteAll", mock.Anything)
		testutil.VerifyAllMocks(t, repo)
	})

	t.Run("replacewithlogos", func(t *testing.T) {
		repo := new(testutil.MockPlayerRepository)
		logos := &stubLogos{}
		var order []string
		repo.On("DeleteAll", mock.Anything).Return(nil).Run(func(mock.Arguments) {
			order = append(order, "delete")
		})
		repo.On("UpsertBySlug", mock.Anything, mock.MatchedBy(func(players []*models.Player) bool {
			return len(players) == 2 && players[0].SchoolLogo != nil && *players[0].SchoolLogo == "http://cdn/Colorado.svg"
		})).Return(nil).Run(func(mock.Arguments) {
			order = append(order, "upsert")
		})

		count, err := runImport(context.Background(), importOptions{
			source:  writeExport(t, export),
			logos:   true,
			replace: true,
		}, importDeps{players: repo, logos: logos, log: logger.Nop()})
		require.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.Equal(t, 2, logos.calls)
		assert.Equal(t, []string{"delete", "upsert"}, order)
		testutil.VerifyAllMocks(t, repo)
	})

	t.Run("deletefails", func(t *testing.T) {
		repo := new(testutil.MockPlayerRepository)
		repo.On("DeleteAll", mock.Anything).Return(errors.New("couldn't clear the catalog"))

		_, err := runImport(context.Background(), importOptions{source: writeExport(t, export), replace: true}, importDeps{
			players: repo,
			log:     logger.Nop(),
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "couldn't clear the catalog")
		repo.AssertNotCalled(t, "UpsertBySlug", mock.Anything, mock.Anything)
		testutil.VerifyAllMocks(t, repo)
	})

	t.Run("invalidexport", func(t *testing.T) {
		repo := new(testutil.MockPlayerRepository)

		_, err := runImport(context.Background(), importOptions{source: writeExport(t, `{"prospects":[`), replace: true}, importDeps{
			players: repo,
			log:     logger.Nop(),
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "couldn't decode the prospects")
		repo.AssertNotCalled(t, "DeleteAll", mock.Anything)
	})

	t.Run("missingfile", func(t *testing.T) {
		repo := new(testutil.MockPlayerRepository)

		_, err := runImport(context.Background(), importOptions{source: filepath.Join(t.TempDir(), "nope.json")}, importDeps{
			players: repo,
			log:     logger.Nop(),
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "couldn't open the prospects file")
	})
}

func TestImportCommandFlags(t *testing.T) {
	cmd := importCommand()

	for _, name := range []string{"source", "logos", "replace"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}

	cmd.SetArgs([]string{})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "source" not set`)
}
