package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"

	"github.com/stefanristic40/golden-eye-api/internal/config"
	"github.com/stefanristic40/golden-eye-api/internal/models"
)

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a unique constraint.
	ErrDuplicate = errors.New("record already exists")
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(cfg config.DatabaseConfig) (*PostgresStore, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.MaxConns)

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// --- Users ---

// CreateUser inserts a new user. Username uniqueness is enforced by the
// users_username_key constraint; a violation surfaces as ErrDuplicate.
func (s *PostgresStore) CreateUser(ctx context.Context, username, passwordHash string) (*models.User, error) {
	u := &models.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
	}
	err := s.pool.QueryRow(ctx,
		`INSERT INTO users (id, username, password_hash) VALUES ($1, $2, $3) RETURNING created_at`,
		u.ID, u.Username, u.PasswordHash,
	).Scan(&u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (s *PostgresStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	u := &models.User{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, created_at FROM users WHERE username = $1`, username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// --- Entries ---

// entryColumns lists the columns scanned into models.Entry for query
// results. face_encoding is deliberately absent: stored vectors are never
// part of an API-visible entry.
const entryColumns = `id, case_id, date, time, organization, division, district, town, village,
	location, perpetrator, victim, killed, injured, arrested, description,
	reporter, source, remark, incident_types, thumbnail, created_at`

func scanEntry(row pgx.Row) (*models.Entry, error) {
	e := &models.Entry{}
	err := row.Scan(&e.ID, &e.CaseID, &e.Date, &e.Time, &e.Organization, &e.Division,
		&e.District, &e.Town, &e.Village, &e.Location, &e.Perpetrator, &e.Victim,
		&e.Killed, &e.Injured, &e.Arrested, &e.Description, &e.Reporter, &e.Source,
		&e.Remark, &e.IncidentTypes, &e.Thumbnail, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (s *PostgresStore) collectEntries(rows pgx.Rows) ([]models.Entry, error) {
	defer rows.Close()
	var entries []models.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

func (s *PostgresStore) CreateEntry(ctx context.Context, e *models.Entry) error {
	e.ID = uuid.New()
	if e.IncidentTypes == nil {
		e.IncidentTypes = []string{}
	}
	var vec *pgvector.Vector
	if len(e.FaceEncoding) > 0 {
		v := pgvector.NewVector(e.FaceEncoding)
		vec = &v
	}
	err := s.pool.QueryRow(ctx,
		`INSERT INTO entries (id, case_id, date, time, organization, division, district, town,
			village, location, perpetrator, victim, killed, injured, arrested, description,
			reporter, source, remark, incident_types, thumbnail, face_encoding)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22)
		 RETURNING created_at`,
		e.ID, e.CaseID, e.Date, e.Time, e.Organization, e.Division, e.District, e.Town,
		e.Village, e.Location, e.Perpetrator, e.Victim, e.Killed, e.Injured, e.Arrested,
		e.Description, e.Reporter, e.Source, e.Remark, e.IncidentTypes, e.Thumbnail, vec,
	).Scan(&e.CreatedAt)
	if err != nil {
		return fmt.Errorf("create entry: %w", err)
	}
	return nil
}

// GetEntriesByIDs returns the entries for the given ids. Order is not
// guaranteed; callers that care about ranking reorder the result.
func (s *PostgresStore) GetEntriesByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Entry, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	strIDs := make([]string, len(ids))
	for i, id := range ids {
		strIDs[i] = id.String()
	}
	rows, err := s.pool.Query(ctx,
		`SELECT `+entryColumns+` FROM entries WHERE id = ANY($1::uuid[])`, strIDs)
	if err != nil {
		return nil, fmt.Errorf("get entries by ids: %w", err)
	}
	return s.collectEntries(rows)
}

// EntryEncoding is one stored face vector with its owning entry id.
type EntryEncoding struct {
	EntryID  uuid.UUID
	Encoding []float32
}

// ListEntryEncodings returns the face vector of every entry that has one.
// Entries without an encoding are not candidates for face matching.
func (s *PostgresStore) ListEntryEncodings(ctx context.Context) ([]EntryEncoding, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, face_encoding FROM entries WHERE face_encoding IS NOT NULL`)
	if err != nil {
		return nil, fmt.Errorf("list entry encodings: %w", err)
	}
	defer rows.Close()

	var encodings []EntryEncoding
	for rows.Next() {
		var enc EntryEncoding
		var vec pgvector.Vector
		if err := rows.Scan(&enc.EntryID, &vec); err != nil {
			return nil, fmt.Errorf("scan entry encoding: %w", err)
		}
		enc.Encoding = vec.Slice()
		encodings = append(encodings, enc)
	}
	return encodings, rows.Err()
}

// FindEntriesByDateRange returns entries whose date falls inside the
// inclusive [start, end] range. Dates are compared as text, so the range
// semantics are lexical. A non-empty incidentType additionally requires
// tag containment.
func (s *PostgresStore) FindEntriesByDateRange(ctx context.Context, start, end, incidentType string) ([]models.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE date >= $1 AND date <= $2`
	args := []interface{}{start, end}
	if incidentType != "" {
		query += ` AND $3 = ANY(incident_types)`
		args = append(args, incidentType)
	}
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find entries by date range: %w", err)
	}
	return s.collectEntries(rows)
}

// FindEntriesByCaseID returns entries whose case_id contains the fragment.
// The match is case-sensitive.
func (s *PostgresStore) FindEntriesByCaseID(ctx context.Context, fragment string) ([]models.Entry, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+entryColumns+` FROM entries WHERE position($1 in case_id) > 0`, fragment)
	if err != nil {
		return nil, fmt.Errorf("find entries by case id: %w", err)
	}
	return s.collectEntries(rows)
}

// FindEntriesByText returns entries where any of the ten designated text
// fields contains the fragment, case-insensitively.
func (s *PostgresStore) FindEntriesByText(ctx context.Context, fragment string) ([]models.Entry, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+entryColumns+` FROM entries
		 WHERE position(lower($1) in lower(organization)) > 0
			OR position(lower($1) in lower(division)) > 0
			OR position(lower($1) in lower(district)) > 0
			OR position(lower($1) in lower(town)) > 0
			OR position(lower($1) in lower(village)) > 0
			OR position(lower($1) in lower(location)) > 0
			OR position(lower($1) in lower(perpetrator)) > 0
			OR position(lower($1) in lower(victim)) > 0
			OR position(lower($1) in lower(description)) > 0
			OR position(lower($1) in lower(source)) > 0`, fragment)
	if err != nil {
		return nil, fmt.Errorf("find entries by text: %w", err)
	}
	return s.collectEntries(rows)
}

// FindEntriesByIncidentType returns entries whose incident_types list
// contains exactly the given tag.
func (s *PostgresStore) FindEntriesByIncidentType(ctx context.Context, tag string) ([]models.Entry, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+entryColumns+` FROM entries WHERE $1 = ANY(incident_types)`, tag)
	if err != nil {
		return nil, fmt.Errorf("find entries by incident type: %w", err)
	}
	return s.collectEntries(rows)
}

// --- Profiles ---

const profileColumns = `id, entry_id, name, alias, father_name, mother_name, gender, date_of_birth,
	age, national_id, religion, ethnicity, nationality, education, occupation,
	marital_status, blood_group, identifying_marks, perm_division, perm_district,
	perm_town, perm_village, perm_street, current_division, current_district,
	current_address, spouse_name, children, siblings, relatives, guardian_name,
	guardian_contact, organization, rank, department, cell, join_date,
	previous_organization, mentor, recruits, phone, alt_phone, email, social_media,
	messenger, habits, skills, languages, vehicles, weapons, associates,
	operation_areas, criminal_record, status, remarks, thumbnail, created_at`

func scanProfile(row pgx.Row) (*models.Profile, error) {
	p := &models.Profile{}
	err := row.Scan(&p.ID, &p.EntryID, &p.Name, &p.Alias, &p.FatherName, &p.MotherName,
		&p.Gender, &p.DateOfBirth, &p.Age, &p.NationalID, &p.Religion, &p.Ethnicity,
		&p.Nationality, &p.Education, &p.Occupation, &p.MaritalStatus, &p.BloodGroup,
		&p.IdentifyingMarks, &p.PermDivision, &p.PermDistrict, &p.PermTown,
		&p.PermVillage, &p.PermStreet, &p.CurrentDivision, &p.CurrentDistrict,
		&p.CurrentAddress, &p.SpouseName, &p.Children, &p.Siblings, &p.Relatives,
		&p.GuardianName, &p.GuardianContact, &p.Organization, &p.Rank, &p.Department,
		&p.Cell, &p.JoinDate, &p.PreviousOrganization, &p.Mentor, &p.Recruits,
		&p.Phone, &p.AltPhone, &p.Email, &p.SocialMedia, &p.Messenger, &p.Habits,
		&p.Skills, &p.Languages, &p.Vehicles, &p.Weapons, &p.Associates,
		&p.OperationAreas, &p.CriminalRecord, &p.Status, &p.Remarks, &p.Thumbnail,
		&p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PostgresStore) CreateProfile(ctx context.Context, p *models.Profile) error {
	p.ID = uuid.New()
	var vec *pgvector.Vector
	if len(p.FaceEncoding) > 0 {
		v := pgvector.NewVector(p.FaceEncoding)
		vec = &v
	}
	err := s.pool.QueryRow(ctx,
		`INSERT INTO profiles (id, entry_id, name, alias, father_name, mother_name, gender,
			date_of_birth, age, national_id, religion, ethnicity, nationality, education,
			occupation, marital_status, blood_group, identifying_marks, perm_division,
			perm_district, perm_town, perm_village, perm_street, current_division,
			current_district, current_address, spouse_name, children, siblings, relatives,
			guardian_name, guardian_contact, organization, rank, department, cell,
			join_date, previous_organization, mentor, recruits, phone, alt_phone, email,
			social_media, messenger, habits, skills, languages, vehicles, weapons,
			associates, operation_areas, criminal_record, status, remarks, thumbnail,
			face_encoding)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31,
			$32, $33, $34, $35, $36, $37, $38, $39, $40, $41, $42, $43, $44, $45, $46,
			$47, $48, $49, $50, $51, $52, $53, $54, $55, $56, $57)
		 RETURNING created_at`,
		p.ID, p.EntryID, p.Name, p.Alias, p.FatherName, p.MotherName, p.Gender,
		p.DateOfBirth, p.Age, p.NationalID, p.Religion, p.Ethnicity, p.Nationality,
		p.Education, p.Occupation, p.MaritalStatus, p.BloodGroup, p.IdentifyingMarks,
		p.PermDivision, p.PermDistrict, p.PermTown, p.PermVillage, p.PermStreet,
		p.CurrentDivision, p.CurrentDistrict, p.CurrentAddress, p.SpouseName,
		p.Children, p.Siblings, p.Relatives, p.GuardianName, p.GuardianContact,
		p.Organization, p.Rank, p.Department, p.Cell, p.JoinDate,
		p.PreviousOrganization, p.Mentor, p.Recruits, p.Phone, p.AltPhone, p.Email,
		p.SocialMedia, p.Messenger, p.Habits, p.Skills, p.Languages, p.Vehicles,
		p.Weapons, p.Associates, p.OperationAreas, p.CriminalRecord, p.Status,
		p.Remarks, p.Thumbnail, vec,
	).Scan(&p.CreatedAt)
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

// GetProfileByEntryID returns the first profile whose entry_id equals the
// given value exactly.
func (s *PostgresStore) GetProfileByEntryID(ctx context.Context, entryID string) (*models.Profile, error) {
	p, err := scanProfile(s.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE entry_id = $1 ORDER BY created_at LIMIT 1`,
		entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get profile by entry id: %w", err)
	}
	return p, nil
}
