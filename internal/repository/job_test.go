package repository_test

import (
	"context"
	"testing"

	"github.com/conectVagas/ConectaVagas/internal/model"
	"github.com/conectVagas/ConectaVagas/internal/repository"
	"github.com/conectVagas/ConectaVagas/internal/testing/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedJob(t *testing.T, repo *repository.JobRepository, job *model.Job) *model.Job {
	t.Helper()
	if job.CompanyID == "" {
		job.CompanyID = "company:seed"
	}
	require.NoError(t, repo.Create(context.Background(), job))
	return job
}

func TestJobRepository_Create(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	repo := repository.NewJobRepository(tdb.DB)
	ctx := context.Background()

	job := &model.Job{
		Title:       "Desenvolvedor Go Pleno",
		Company:     "Tech Recife",
		Location:    "Recife, PE",
		Type:        "CLT",
		Salary:      "R$ 8.000",
		Description: "Atuar no backend de serviços de pagamento.",
		Tags:        "go, backend, api",
		Urgent:      true,
		NoExp:       false,
		Remote:      true,
		ApplyURL:    "https://techrecife.dev/vagas/1",
		ApplyEmail:  "vagas@techrecife.dev",
		CompanyID:   "company:abc",
	}

	err := repo.Create(ctx, job)
	require.NoError(t, err)

	assert.Contains(t, job.ID, "job:")
	assert.False(t, job.CreatedAt.IsZero())

	found, err := repo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, job.Title, found.Title)
	assert.Equal(t, job.Company, found.Company)
	assert.Equal(t, job.Tags, found.Tags)
	assert.True(t, found.Urgent)
	assert.False(t, found.NoExp)
	assert.True(t, found.Remote)
	assert.Equal(t, "company:abc", found.CompanyID)
}

func TestJobRepository_GetByIDMissing(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	repo := repository.NewJobRepository(tdb.DB)
	ctx := context.Background()

	found, err := repo.GetByID(ctx, "job:doesnotexist")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestJobRepository_GetByIDWrongTable(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	repo := repository.NewJobRepository(tdb.DB)
	ctx := context.Background()

	// IDs outside the job table are rejected before touching the database
	found, err := repo.GetByID(ctx, "company:abc")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestJobRepository_ListQueryFilter(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	repo := repository.NewJobRepository(tdb.DB)
	ctx := context.Background()

	seedJob(t, repo, &model.Job{Title: "Desenvolvedor Go", Company: "Acme", Location: "São Paulo", Description: "Backend em Go."})
	seedJob(t, repo, &model.Job{Title: "Designer", Company: "Acme", Location: "Recife", Description: "Figma e prototipação."})
	seedJob(t, repo, &model.Job{Title: "Analista", Company: "GoDados", Location: "Remoto", Description: "Planilhas."})

	// Case-insensitive substring across title, company, location and description
	jobs, err := repo.List(ctx, repository.JobFilter{Query: "go"}, 20, 0)
	require.NoError(t, err)
	assert.Len(t, jobs, 2)

	jobs, err = repo.List(ctx, repository.JobFilter{Query: "RECIFE"}, 20, 0)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Designer", jobs[0].Title)

	jobs, err = repo.List(ctx, repository.JobFilter{Query: "inexistente"}, 20, 0)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestJobRepository_ListTagFilter(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	repo := repository.NewJobRepository(tdb.DB)
	ctx := context.Background()

	seedJob(t, repo, &model.Job{Title: "Backend", Tags: "go, postgres"})
	seedJob(t, repo, &model.Job{Title: "Frontend", Tags: "react, typescript"})

	jobs, err := repo.List(ctx, repository.JobFilter{Tag: "Postgres"}, 20, 0)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Backend", jobs[0].Title)
}

func TestJobRepository_ListFlagFilters(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	repo := repository.NewJobRepository(tdb.DB)
	ctx := context.Background()

	seedJob(t, repo, &model.Job{Title: "Urgente", Urgent: true})
	seedJob(t, repo, &model.Job{Title: "Sem experiência", NoExp: true})
	seedJob(t, repo, &model.Job{Title: "Comum"})

	jobs, err := repo.List(ctx, repository.JobFilter{Urgent: true}, 20, 0)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Urgente", jobs[0].Title)

	jobs, err = repo.List(ctx, repository.JobFilter{NoExp: true}, 20, 0)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Sem experiência", jobs[0].Title)
}

func TestJobRepository_ListTodayFilter(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	repo := repository.NewJobRepository(tdb.DB)
	ctx := context.Background()

	// Every seeded job gets created_at = time::now(), so all match today
	seedJob(t, repo, &model.Job{Title: "Hoje"})

	jobs, err := repo.List(ctx, repository.JobFilter{Today: true}, 20, 0)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Hoje", jobs[0].Title)
}

func TestJobRepository_ListPagination(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	repo := repository.NewJobRepository(tdb.DB)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		seedJob(t, repo, &model.Job{Title: "Vaga", Company: "Acme"})
	}

	first, err := repo.List(ctx, repository.JobFilter{}, 2, 0)
	require.NoError(t, err)
	assert.Len(t, first, 2)

	second, err := repo.List(ctx, repository.JobFilter{}, 2, 2)
	require.NoError(t, err)
	assert.Len(t, second, 2)

	last, err := repo.List(ctx, repository.JobFilter{}, 2, 4)
	require.NoError(t, err)
	assert.Len(t, last, 1)

	// No overlap between pages
	seen := map[string]bool{}
	for _, j := range append(append(first, second...), last...) {
		assert.False(t, seen[j.ID], "job %s returned twice", j.ID)
		seen[j.ID] = true
	}
}

func TestJobRepository_ListNewestFirst(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	repo := repository.NewJobRepository(tdb.DB)
	ctx := context.Background()

	older := seedJob(t, repo, &model.Job{Title: "Primeira"})
	newer := seedJob(t, repo, &model.Job{Title: "Segunda"})

	jobs, err := repo.List(ctx, repository.JobFilter{}, 20, 0)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, newer.ID, jobs[0].ID)
	assert.Equal(t, older.ID, jobs[1].ID)
	assert.False(t, jobs[0].CreatedAt.Before(jobs[1].CreatedAt))
}

func TestJobRepository_Count(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	repo := repository.NewJobRepository(tdb.DB)
	ctx := context.Background()

	count, err := repo.Count(ctx, repository.JobFilter{})
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	seedJob(t, repo, &model.Job{Title: "Backend", Urgent: true})
	seedJob(t, repo, &model.Job{Title: "Frontend"})
	seedJob(t, repo, &model.Job{Title: "Dados", Urgent: true})

	count, err = repo.Count(ctx, repository.JobFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	// Count honors the same filter as List, before pagination
	count, err = repo.Count(ctx, repository.JobFilter{Urgent: true})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestJobRepository_Delete(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	repo := repository.NewJobRepository(tdb.DB)
	ctx := context.Background()

	job := seedJob(t, repo, &model.Job{Title: "Temporária"})

	existed, err := repo.Delete(ctx, job.ID)
	require.NoError(t, err)
	assert.True(t, existed)

	found, err := repo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	// Deleting again reports that nothing was there
	existed, err = repo.Delete(ctx, job.ID)
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestJobRepository_DeleteWrongTable(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	repo := repository.NewJobRepository(tdb.DB)

	existed, err := repo.Delete(context.Background(), "company:abc")
	require.NoError(t, err)
	assert.False(t, existed)
}
