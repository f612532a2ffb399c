package repository

import (
	"context"
	"strings"
	"testing"

	"legaladvisor-backend/models"
	"legaladvisor-backend/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLawRepository(t *testing.T) (*LawRepository, storage.Storage) {
	t.Helper()
	st, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	return NewLawRepository(st, "", nil), st
}

func TestLawRepository_LoadMissingJurisdiction(t *testing.T) {
	repo, _ := newTestLawRepository(t)

	laws, err := repo.Load(context.Background(), "Atlantis")
	require.NoError(t, err)
	assert.Empty(t, laws)
	assert.NotNil(t, laws)
}

func TestLawRepository_SaveAndLoadCaseInsensitive(t *testing.T) {
	repo, _ := newTestLawRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "USA", SampleLaws()))

	laws, err := repo.Load(ctx, "usa")
	require.NoError(t, err)
	require.Len(t, laws, 2)
	assert.Equal(t, "Sample Legal Law", laws[0].Title)
	assert.Equal(t, models.CategoryLegal, laws[0].Category)
	assert.Equal(t, models.SourceLocal, laws[0].Source)
	assert.Equal(t, "Sample Agency", laws[0].EnforcementAgency)
	assert.Equal(t, models.CategoryIllegal, laws[1].Category)

	exists, err := repo.Exists(ctx, "Usa")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLawRepository_LoadYAMLAndSkipInvalid(t *testing.T) {
	repo, st := newTestLawRepository(t)
	ctx := context.Background()

	doc := `
- title: Noise Ordinance
  text: Loud music after 10pm is prohibited except on public holidays.
  type: illegal
  enforcement_agency: City Council
- title: ""
  text: Entry without a title
  type: Legal
- title: Unknown Type
  text: Has an unknown category
  type: Maybe
`
	require.NoError(t, st.Upload(ctx, "laws/laws_uk.yaml", strings.NewReader(doc)))

	laws, err := repo.Load(ctx, "UK")
	require.NoError(t, err)
	require.Len(t, laws, 1)
	assert.Equal(t, "Noise Ordinance", laws[0].Title)
	assert.Equal(t, models.CategoryIllegal, laws[0].Category)
}

func TestLawRepository_LoadCorruptFile(t *testing.T) {
	repo, st := newTestLawRepository(t)
	ctx := context.Background()

	require.NoError(t, st.Upload(ctx, "laws/laws_india.json", strings.NewReader("{not json")))

	_, err := repo.Load(ctx, "India")
	assert.Error(t, err)
}

func TestLawRepository_RejectsPathLikeJurisdiction(t *testing.T) {
	repo, _ := newTestLawRepository(t)

	laws, err := repo.Load(context.Background(), "../secrets")
	require.NoError(t, err)
	assert.Empty(t, laws)

	assert.Error(t, repo.Save(context.Background(), "a/b", SampleLaws()))
}
