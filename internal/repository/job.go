package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/conectVagas/ConectaVagas/internal/database"
	"github.com/conectVagas/ConectaVagas/internal/model"
)

// JobRepository handles job posting data access
type JobRepository struct {
	db database.Database
}

// NewJobRepository creates a new job repository
func NewJobRepository(db database.Database) *JobRepository {
	return &JobRepository{db: db}
}

// JobFilter is a conjunction of zero or more listing predicates.
// Zero values disable the corresponding predicate.
type JobFilter struct {
	Query  string // case-insensitive substring over title/company/location/description
	Tag    string // case-insensitive substring over tags
	Urgent bool
	NoExp  bool
	Today  bool // created on the current UTC day
}

// Create persists a new job posting with a server-set created_at.
// The generated ID and timestamp are written back to the passed job.
func (r *JobRepository) Create(ctx context.Context, job *model.Job) error {
	query := `
		CREATE job CONTENT {
			title: $title,
			company: $company,
			location: $location,
			type: $type,
			salary: $salary,
			description: $description,
			tags: $tags,
			urgent: $urgent,
			no_exp: $no_exp,
			remote: $remote,
			apply_url: $apply_url,
			apply_email: $apply_email,
			created_at: time::now(),
			company_id: $company_id
		}
	`

	vars := map[string]interface{}{
		"title":       job.Title,
		"company":     job.Company,
		"location":    job.Location,
		"type":        job.Type,
		"salary":      job.Salary,
		"description": job.Description,
		"tags":        job.Tags,
		"urgent":      job.Urgent,
		"no_exp":      job.NoExp,
		"remote":      job.Remote,
		"apply_url":   job.ApplyURL,
		"apply_email": job.ApplyEmail,
		"company_id":  job.CompanyID,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return err
	}

	created, err := parseJobResult(result)
	if err != nil {
		return err
	}

	job.ID = created.ID
	job.CreatedAt = created.CreatedAt
	return nil
}

// GetByID retrieves a job by its record ID. Returns nil, nil when absent.
func (r *JobRepository) GetByID(ctx context.Context, id string) (*model.Job, error) {
	if !strings.HasPrefix(id, "job:") {
		return nil, nil
	}

	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseJobResult(result)
}

// List returns matching jobs ordered newest first, with LIMIT/START
// pagination applied after filtering.
func (r *JobRepository) List(ctx context.Context, filter JobFilter, limit, offset int) ([]*model.Job, error) {
	where, vars := buildJobWhere(filter)
	vars["limit"] = limit
	vars["offset"] = offset

	query := `SELECT * FROM job` + where + ` ORDER BY created_at DESC LIMIT $limit START $offset`

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	rows, ok := extractQueryResults(result)
	if !ok {
		return []*model.Job{}, nil
	}

	jobs := make([]*model.Job, 0, len(rows))
	for _, row := range rows {
		job, err := parseJobResult(row)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// Count returns the number of jobs matching the filter, before pagination.
func (r *JobRepository) Count(ctx context.Context, filter JobFilter) (int, error) {
	where, vars := buildJobWhere(filter)

	query := `SELECT count() AS count FROM job` + where + ` GROUP ALL`

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	if data, ok := result.(map[string]interface{}); ok {
		return extractCountValue(data["count"]), nil
	}
	return extractCount(result), nil
}

// Delete removes a job by ID and reports whether a record existed.
func (r *JobRepository) Delete(ctx context.Context, id string) (bool, error) {
	if !strings.HasPrefix(id, "job:") {
		return false, nil
	}

	query := `DELETE type::record($id) RETURN BEFORE`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return false, err
	}

	rows, ok := extractQueryResults(result)
	return ok && len(rows) > 0, nil
}

// buildJobWhere assembles the conjunctive WHERE clause for a filter.
// Substring matches are case-insensitive: both sides are lowercased.
func buildJobWhere(filter JobFilter) (string, map[string]interface{}) {
	clauses := []string{}
	vars := map[string]interface{}{}

	if filter.Query != "" {
		clauses = append(clauses, `(string::contains(string::lowercase(title), $q)`+
			` OR string::contains(string::lowercase(company), $q)`+
			` OR string::contains(string::lowercase(location), $q)`+
			` OR string::contains(string::lowercase(description), $q))`)
		vars["q"] = strings.ToLower(filter.Query)
	}
	if filter.Tag != "" {
		clauses = append(clauses, `string::contains(string::lowercase(tags), $tag)`)
		vars["tag"] = strings.ToLower(filter.Tag)
	}
	if filter.Urgent {
		clauses = append(clauses, `urgent = true`)
	}
	if filter.NoExp {
		clauses = append(clauses, `no_exp = true`)
	}
	if filter.Today {
		clauses = append(clauses, `time::floor(created_at, 1d) = time::floor(time::now(), 1d)`)
	}

	if len(clauses) == 0 {
		return "", vars
	}
	return " WHERE " + strings.Join(clauses, " AND "), vars
}

func parseJobResult(result interface{}) (*model.Job, error) {
	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected job result format")
	}

	return &model.Job{
		ID:          convertSurrealID(data["id"]),
		Title:       getString(data, "title"),
		Company:     getString(data, "company"),
		Location:    getString(data, "location"),
		Type:        getString(data, "type"),
		Salary:      getString(data, "salary"),
		Description: getString(data, "description"),
		Tags:        getString(data, "tags"),
		Urgent:      getBool(data, "urgent"),
		NoExp:       getBool(data, "no_exp"),
		Remote:      getBool(data, "remote"),
		ApplyURL:    getString(data, "apply_url"),
		ApplyEmail:  getString(data, "apply_email"),
		CreatedAt:   getTime(data, "created_at"),
		CompanyID:   getString(data, "company_id"),
	}, nil
}
