package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonathan/bachflower-advisor/internal/types"
	"golang.org/x/sync/errgroup"
)

// Queries against the consultation application's tables. The store only reads.
const (
	selectRemediesSQL = `SELECT id::text, name_german, name_english, name_latin, description, affirmation, number::int
		FROM bach_flowers
		ORDER BY name_german, id`

	// Symptoms without a group are kept with an empty category so Normalize reports them.
	selectSymptomsSQL = `SELECT s.id::text, s.name, s.description, COALESCE(g.emotion_category, ''), s.indication_type
		FROM symptoms s
		LEFT JOIN symptom_groups g ON g.id = s.group_id
		ORDER BY s.name, s.id`

	selectRelationsSQL = `SELECT flower_id::text, symptom_id::text, COALESCE(is_primary, false)
		FROM flower_symptom_relations
		WHERE flower_id IS NOT NULL AND symptom_id IS NOT NULL
		ORDER BY flower_id, is_primary DESC, created_at, id`
)

// Store reads catalogs from PostgreSQL
type Store struct {
	pool *pgxpool.Pool
}

// relationRow is a single flower_symptom_relations row
type relationRow struct {
	RemedyID  string
	SymptomID string
	IsPrimary bool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// LoadCatalog reads remedies, symptoms and their relations. The three tables
// are queried concurrently.
func (s *Store) LoadCatalog(ctx context.Context) (*types.Catalog, error) {
	var (
		remedies  []types.Remedy
		symptoms  []types.Symptom
		relations []relationRow
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		remedies, err = s.loadRemedies(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		symptoms, err = s.loadSymptoms(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		relations, err = s.loadRelations(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, &LoadError{Message: "failed to load catalog from database", Cause: err}
	}

	return &types.Catalog{
		Remedies: attachRelations(remedies, relations),
		Symptoms: symptoms,
	}, nil
}

func (s *Store) loadRemedies(ctx context.Context) ([]types.Remedy, error) {
	rows, err := s.pool.Query(ctx, selectRemediesSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query remedies: %w", err)
	}
	defer rows.Close()

	remedies := make([]types.Remedy, 0)
	for rows.Next() {
		var r types.Remedy
		var nameGerman, nameLatin, desc, affirm *string
		var number *int32
		if err := rows.Scan(&r.ID, &nameGerman, &r.NameEnglish, &nameLatin, &desc, &affirm, &number); err != nil {
			return nil, fmt.Errorf("failed to scan remedy: %w", err)
		}
		r.NameGerman = deref(nameGerman)
		r.NameLatin = deref(nameLatin)
		r.Description = deref(desc)
		r.Affirmation = deref(affirm)
		if number != nil {
			r.Number = int(*number)
		}
		remedies = append(remedies, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read remedies: %w", err)
	}

	return remedies, nil
}

func (s *Store) loadSymptoms(ctx context.Context) ([]types.Symptom, error) {
	rows, err := s.pool.Query(ctx, selectSymptomsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query symptoms: %w", err)
	}
	defer rows.Close()

	symptoms := make([]types.Symptom, 0)
	for rows.Next() {
		var (
			sym  types.Symptom
			desc *string
		)
		if err := rows.Scan(&sym.ID, &sym.Name, &desc, &sym.EmotionCategory, &sym.IndicationType); err != nil {
			return nil, fmt.Errorf("failed to scan symptom: %w", err)
		}
		sym.Description = deref(desc)
		symptoms = append(symptoms, sym)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read symptoms: %w", err)
	}

	return symptoms, nil
}

func (s *Store) loadRelations(ctx context.Context) ([]relationRow, error) {
	rows, err := s.pool.Query(ctx, selectRelationsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query symptom relations: %w", err)
	}
	defer rows.Close()

	relations := make([]relationRow, 0)
	for rows.Next() {
		var rel relationRow
		if err := rows.Scan(&rel.RemedyID, &rel.SymptomID, &rel.IsPrimary); err != nil {
			return nil, fmt.Errorf("failed to scan symptom relation: %w", err)
		}
		relations = append(relations, rel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read symptom relations: %w", err)
	}

	return relations, nil
}

// attachRelations distributes relation rows onto their remedies. Every remedy
// gets a non-nil relation slice; rows for unknown remedies are ignored.
func attachRelations(remedies []types.Remedy, relations []relationRow) []types.Remedy {
	byRemedy := make(map[string][]types.SymptomRelation, len(remedies))
	for _, rel := range relations {
		byRemedy[rel.RemedyID] = append(byRemedy[rel.RemedyID], types.SymptomRelation{
			SymptomID: rel.SymptomID,
			IsPrimary: rel.IsPrimary,
		})
	}

	result := make([]types.Remedy, 0, len(remedies))
	for _, r := range remedies {
		r.SymptomRelations = byRemedy[r.ID]
		if r.SymptomRelations == nil {
			r.SymptomRelations = []types.SymptomRelation{}
		}
		result = append(result, r)
	}
	return result
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
